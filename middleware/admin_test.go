package middleware

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/egorrya/pattaya-grad/config"
	"github.com/egorrya/pattaya-grad/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminTestConfig() *config.Config {
	return &config.Config{
		Environment:   "test",
		AdminUser:     "admin",
		AdminPass:     "secret-pass",
		SessionSecret: "test-session-secret-0123456789abcdef",
	}
}

func newGuardedContext(path string, cfg *config.Config) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextKeyConfig, cfg)
	return c, rec
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func basicAuth(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

func TestRequireAdminAPI(t *testing.T) {
	guard := RequireAdminAPI()(okHandler)

	t.Run("Valid session cookie", func(t *testing.T) {
		cfg := adminTestConfig()
		token, err := services.GenerateAdminToken(cfg.SessionSecret, time.Now())
		require.NoError(t, err)

		c, rec := newGuardedContext("/api/admin/landing", cfg)
		c.Request().AddCookie(&http.Cookie{Name: AdminCookieName, Value: token})

		require.NoError(t, guard(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Valid basic credentials", func(t *testing.T) {
		cfg := adminTestConfig()
		c, rec := newGuardedContext("/api/admin/landing", cfg)
		c.Request().Header.Set("Authorization", basicAuth("admin", "secret-pass"))

		require.NoError(t, guard(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Password containing a colon", func(t *testing.T) {
		cfg := adminTestConfig()
		cfg.AdminPass = "se:cret"
		c, rec := newGuardedContext("/api/admin/landing", cfg)
		c.Request().Header.Set("Authorization", basicAuth("admin", "se:cret"))

		require.NoError(t, guard(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("No credentials", func(t *testing.T) {
		c, rec := newGuardedContext("/api/admin/landing", adminTestConfig())

		require.NoError(t, guard(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Unauthorized")
	})

	t.Run("Tampered cookie", func(t *testing.T) {
		cfg := adminTestConfig()
		token, err := services.GenerateAdminToken(cfg.SessionSecret, time.Now())
		require.NoError(t, err)

		c, rec := newGuardedContext("/api/admin/landing", cfg)
		c.Request().AddCookie(&http.Cookie{Name: AdminCookieName, Value: token + "x"})

		require.NoError(t, guard(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Expired cookie", func(t *testing.T) {
		cfg := adminTestConfig()
		token, err := services.GenerateAdminToken(cfg.SessionSecret, time.Now().Add(-2*time.Hour))
		require.NoError(t, err)

		c, rec := newGuardedContext("/api/admin/landing", cfg)
		c.Request().AddCookie(&http.Cookie{Name: AdminCookieName, Value: token})

		require.NoError(t, guard(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Wrong basic credentials", func(t *testing.T) {
		c, rec := newGuardedContext("/api/admin/landing", adminTestConfig())
		c.Request().Header.Set("Authorization", basicAuth("admin", "wrong"))

		require.NoError(t, guard(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Malformed authorization header", func(t *testing.T) {
		noColon := "Basic " + base64.StdEncoding.EncodeToString([]byte("no-colon-here"))
		for _, header := range []string{"Basic", "Bearer abc", "Basic %%%", noColon} {
			c, rec := newGuardedContext("/api/admin/landing", adminTestConfig())
			c.Request().Header.Set("Authorization", header)

			require.NoError(t, guard(c))
			assert.Equal(t, http.StatusUnauthorized, rec.Code, header)
		}
	})

	t.Run("Unconfigured credentials answer 500", func(t *testing.T) {
		cfg := adminTestConfig()
		cfg.AdminPass = ""
		c, rec := newGuardedContext("/api/admin/landing", cfg)
		c.Request().Header.Set("Authorization", basicAuth("admin", ""))

		require.NoError(t, guard(c))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "not configured")
	})
}

func TestRequireAdminPage(t *testing.T) {
	guard := RequireAdminPage()(okHandler)

	t.Run("Login page is always reachable", func(t *testing.T) {
		c, rec := newGuardedContext(AdminLoginPath, adminTestConfig())

		require.NoError(t, guard(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Unauthenticated request redirects to login", func(t *testing.T) {
		c, rec := newGuardedContext("/admin", adminTestConfig())

		require.NoError(t, guard(c))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, AdminLoginPath, rec.Header().Get("Location"))
	})

	t.Run("Valid cookie passes through", func(t *testing.T) {
		cfg := adminTestConfig()
		token, err := services.GenerateAdminToken(cfg.SessionSecret, time.Now())
		require.NoError(t, err)

		c, rec := newGuardedContext("/admin/landings", cfg)
		c.Request().AddCookie(&http.Cookie{Name: AdminCookieName, Value: token})

		require.NoError(t, guard(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Unconfigured credentials redirect instead of erroring", func(t *testing.T) {
		cfg := adminTestConfig()
		cfg.AdminUser = ""
		c, rec := newGuardedContext("/admin", cfg)

		require.NoError(t, guard(c))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
	})
}
