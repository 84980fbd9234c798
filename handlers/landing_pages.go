package handlers

import (
	"errors"
	"net/http"

	"github.com/egorrya/pattaya-grad/db"
	"github.com/egorrya/pattaya-grad/services"

	"github.com/labstack/echo/v4"
)

// Multi-page landings CRUD under /api/admin/landings.

// ListLandingPagesHandler handles GET /api/admin/landings.
func ListLandingPagesHandler(c echo.Context) error {
	pages, err := services.GetLandingPages(db.DB)
	if err != nil {
		c.Logger().Errorf("Failed to list landing pages: %v", err)
		return serverError(c)
	}
	return okData(c, pages)
}

// CreateLandingPageHandler handles POST /api/admin/landings.
func CreateLandingPageHandler(c echo.Context) error {
	payload, ok, err := bindLandingPagePayload(c)
	if !ok {
		return err
	}

	created, err := services.CreateLandingPage(db.DB, payload)
	if err != nil {
		if errors.Is(err, services.ErrURLTaken) {
			return badRequest(c, "URL уже занят")
		}
		c.Logger().Errorf("Failed to create landing page: %v", err)
		return serverError(c)
	}
	return okData(c, created)
}

// GetLandingPageHandler handles GET /api/admin/landings/:id.
func GetLandingPageHandler(c echo.Context) error {
	page, err := services.GetLandingPageByID(db.DB, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrLandingNotFound) {
			return notFound(c, "Landing page not found")
		}
		c.Logger().Errorf("Failed to load landing page: %v", err)
		return serverError(c)
	}
	return okData(c, page)
}

// UpdateLandingPageHandler handles PATCH /api/admin/landings/:id as a full
// idempotent replace.
func UpdateLandingPageHandler(c echo.Context) error {
	payload, ok, err := bindLandingPagePayload(c)
	if !ok {
		return err
	}

	updated, err := services.UpdateLandingPage(db.DB, c.Param("id"), payload)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLandingNotFound):
			return notFound(c, "Landing page not found")
		case errors.Is(err, services.ErrURLTaken):
			return badRequest(c, "URL уже занят")
		default:
			c.Logger().Errorf("Failed to update landing page: %v", err)
			return serverError(c)
		}
	}
	return okData(c, updated)
}

// DeleteLandingPageHandler handles DELETE /api/admin/landings/:id. Leads
// referencing the page survive with the reference detached.
func DeleteLandingPageHandler(c echo.Context) error {
	if err := services.DeleteLandingPage(db.DB, c.Param("id")); err != nil {
		if errors.Is(err, services.ErrLandingNotFound) {
			return notFound(c, "Landing page not found")
		}
		c.Logger().Errorf("Failed to delete landing page: %v", err)
		return serverError(c)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"ok": true})
}

// bindLandingPagePayload decodes and validates the write payload. The bool
// result tells the caller whether to proceed; on false the returned error is
// the already-written response.
func bindLandingPagePayload(c echo.Context) (services.LandingPagePayload, bool, error) {
	var body map[string]interface{}
	if err := c.Bind(&body); err != nil {
		return services.LandingPagePayload{}, false, badRequest(c, "Invalid JSON body")
	}

	payload, err := services.BuildLandingPagePayload(body)
	if err != nil {
		if services.IsValidationError(err) {
			return services.LandingPagePayload{}, false, badRequest(c, err.Error())
		}
		return services.LandingPagePayload{}, false, badRequest(c, "Неверный формат данных")
	}
	return payload, true, nil
}
