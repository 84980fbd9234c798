package middleware

import (
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"github.com/egorrya/pattaya-grad/config"
	"github.com/egorrya/pattaya-grad/services"

	"github.com/labstack/echo/v4"
)

const (
	// AdminCookieName is the name of the admin session cookie
	AdminCookieName = "admin-token"
	// AdminLoginPath is where unauthenticated admin page requests land
	AdminLoginPath = "/admin/login"
	// ContextKeyConfig is the context key for the loaded configuration
	ContextKeyConfig = "config"
)

// GetConfig retrieves the loaded configuration from context
func GetConfig(c echo.Context) *config.Config {
	cfg, ok := c.Get(ContextKeyConfig).(*config.Config)
	if !ok {
		return nil
	}
	return cfg
}

// RequireAdminAPI guards JSON admin endpoints. Unconfigured credentials
// answer 500 so operators can tell misconfiguration apart from a bad login;
// everything else that fails the check gets a detail-free 401.
func RequireAdminAPI() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cfg := GetConfig(c)
			if cfg == nil || !cfg.AdminConfigured() {
				return c.JSON(http.StatusInternalServerError, map[string]interface{}{
					"ok":    false,
					"error": "Admin credentials are not configured",
				})
			}

			if adminAccessAllowed(c, cfg) {
				return next(c)
			}

			return c.JSON(http.StatusUnauthorized, map[string]interface{}{
				"ok":    false,
				"error": "Unauthorized",
			})
		}
	}
}

// RequireAdminPage guards server-rendered admin pages. Requests under the
// admin prefix that fail the check are redirected to the login page; the
// login page itself is always reachable.
func RequireAdminPage() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if path == AdminLoginPath || strings.HasPrefix(path, AdminLoginPath+"/") {
				return next(c)
			}

			cfg := GetConfig(c)
			if cfg == nil || !cfg.AdminConfigured() {
				return c.Redirect(http.StatusSeeOther, AdminLoginPath)
			}

			if adminAccessAllowed(c, cfg) {
				return next(c)
			}

			return c.Redirect(http.StatusSeeOther, AdminLoginPath)
		}
	}
}

// adminAccessAllowed checks the session cookie first, then HTTP Basic
// credentials.
func adminAccessAllowed(c echo.Context, cfg *config.Config) bool {
	if cookie, err := c.Cookie(AdminCookieName); err == nil {
		if services.ValidateAdminToken(cfg.SessionSecret, cookie.Value, time.Now()) {
			return true
		}
	}

	authorization := c.Request().Header.Get("Authorization")
	if authorization == "" {
		return false
	}

	parts := strings.SplitN(authorization, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "basic") {
		return false
	}

	decoded, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return false
	}

	credentials := string(decoded)
	separator := strings.Index(credentials, ":")
	if separator == -1 {
		return false
	}

	return services.VerifyAdminCredentials(cfg, credentials[:separator], credentials[separator+1:])
}

// SetAdminCookie issues the session cookie on successful login.
func SetAdminCookie(c echo.Context, cfg *config.Config, token string) {
	c.SetCookie(&http.Cookie{
		Name:     AdminCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(services.AdminSessionDuration.Seconds()),
		HttpOnly: true,
		Secure:   cfg.Environment == "production",
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearAdminCookie expires the session cookie on logout.
func ClearAdminCookie(c echo.Context, cfg *config.Config) {
	c.SetCookie(&http.Cookie{
		Name:     AdminCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg != nil && cfg.Environment == "production",
		SameSite: http.SameSiteLaxMode,
	})
}
