package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// JSON envelopes shared by the API handlers.

func okData(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, map[string]interface{}{"ok": true, "data": data})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, map[string]interface{}{"ok": false, "error": message})
}

func notFound(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, map[string]interface{}{"ok": false, "error": message})
}

func serverError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, map[string]interface{}{"ok": false, "error": "Internal server error"})
}
