package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Minimal server-rendered admin pages backed by the JSON API. All but the
// login page sit behind the redirect guard.

// AdminLoginPageHandler renders the login form.
func AdminLoginPageHandler(c echo.Context) error {
	return c.Render(http.StatusOK, "admin_login.html", nil)
}

// AdminLeadsPageHandler renders the leads dashboard.
func AdminLeadsPageHandler(c echo.Context) error {
	return c.Render(http.StatusOK, "admin_leads.html", nil)
}

// AdminEditPageHandler renders the singleton content editor.
func AdminEditPageHandler(c echo.Context) error {
	return c.Render(http.StatusOK, "admin_edit.html", nil)
}

// AdminLandingsPageHandler renders the multi-page landings manager.
func AdminLandingsPageHandler(c echo.Context) error {
	return c.Render(http.StatusOK, "admin_landings.html", nil)
}
