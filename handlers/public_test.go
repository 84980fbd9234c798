package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/egorrya/pattaya-grad/templates"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEchoWithRenderer(method, path string) (echo.Context, *httptest.ResponseRecorder) {
	e, c, rec := setupEcho(method, path, nil)
	e.Renderer = templates.NewRenderer()
	return c, rec
}

func TestHomeHandler(t *testing.T) {
	setupTestDB(t)

	c, rec := setupEchoWithRenderer(http.MethodGet, "/")

	err := HomeHandler(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	// Seeded default content renders into the page
	assert.Contains(t, rec.Body.String(), "Получить каталог")
}

func TestHomeSuccessHandler(t *testing.T) {
	setupTestDB(t)

	c, rec := setupEchoWithRenderer(http.MethodGet, "/success")

	err := HomeSuccessHandler(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLandingPageHandler(t *testing.T) {
	db := setupTestDB(t)
	createTestLandingPage(t, db, "promo-a", "Промо A")

	t.Run("Known slug", func(t *testing.T) {
		c, rec := setupEchoWithRenderer(http.MethodGet, "/promo-a")
		c.SetParamNames("slug")
		c.SetParamValues("promo-a")

		err := LandingPageHandler(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Квартиры у моря")
	})

	t.Run("Unknown slug renders the 404 page", func(t *testing.T) {
		c, rec := setupEchoWithRenderer(http.MethodGet, "/nope")
		c.SetParamNames("slug")
		c.SetParamValues("nope")

		err := LandingPageHandler(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestLandingSuccessHandler(t *testing.T) {
	db := setupTestDB(t)
	createTestLandingPage(t, db, "promo-a", "Промо A")

	c, rec := setupEchoWithRenderer(http.MethodGet, "/promo-a/success")
	c.SetParamNames("slug")
	c.SetParamValues("promo-a")

	err := LandingSuccessHandler(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
