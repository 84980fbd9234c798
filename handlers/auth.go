package handlers

import (
	"net/http"
	"time"

	"github.com/egorrya/pattaya-grad/middleware"
	"github.com/egorrya/pattaya-grad/services"

	"github.com/labstack/echo/v4"
)

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// LoginHandler handles POST /api/admin/login. On success it issues the
// signed session cookie with a one hour lifetime.
func LoginHandler(c echo.Context) error {
	cfg := middleware.GetConfig(c)
	if cfg == nil || !cfg.AdminConfigured() {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"message": "Переменные ADMIN_USER и ADMIN_PASS не заданы",
		})
	}

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"message": "Неверный запрос",
		})
	}

	if !services.VerifyAdminCredentials(cfg, req.Login, req.Password) {
		return c.JSON(http.StatusUnauthorized, map[string]interface{}{
			"message": "Неверный логин или пароль",
		})
	}

	token, err := services.GenerateAdminToken(cfg.SessionSecret, time.Now())
	if err != nil {
		c.Logger().Errorf("Failed to issue admin token: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"message": "Internal server error",
		})
	}

	middleware.SetAdminCookie(c, cfg, token)
	return c.JSON(http.StatusOK, map[string]interface{}{"success": true})
}

// LogoutHandler handles POST /api/admin/logout by expiring the cookie.
func LogoutHandler(c echo.Context) error {
	middleware.ClearAdminCookie(c, middleware.GetConfig(c))
	return c.JSON(http.StatusOK, map[string]interface{}{"success": true})
}
