package handlers

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/egorrya/pattaya-grad/config"
	"github.com/egorrya/pattaya-grad/db"
	"github.com/egorrya/pattaya-grad/middleware"
	"github.com/egorrya/pattaya-grad/models"
	"github.com/egorrya/pattaya-grad/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	// Use unique shared memory name to isolate tests while allowing shared cache for async tasks
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{})
	assert.NoError(t, err)

	if services.Storage == nil {
		services.Storage = services.NewLocalStorage("tmp/test_uploads")
	}

	err = testDB.AutoMigrate(
		&models.LandingContent{},
		&models.LandingPage{},
		&models.Lead{},
	)
	assert.NoError(t, err)

	// Set global DB
	db.DB = testDB

	// The singleton content cache survives across tests
	services.Landing.Cache.Invalidate()

	return testDB
}

func testConfig() *config.Config {
	return &config.Config{
		Environment:        "test",
		AdminUser:          "admin",
		AdminPass:          "secret-pass",
		SessionSecret:      "test-session-secret-0123456789abcdef",
		DefaultLandingName: "Главная страница",
		EmailTestMode:      true,
	}
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Add config to context
	c.Set(middleware.ContextKeyConfig, testConfig())

	return e, c, rec
}
