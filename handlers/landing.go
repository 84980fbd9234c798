package handlers

import (
	"github.com/egorrya/pattaya-grad/db"
	"github.com/egorrya/pattaya-grad/services"

	"github.com/labstack/echo/v4"
)

// GetLandingContentHandler handles GET /api/admin/landing. The singleton
// content is seeded with defaults on first read.
func GetLandingContentHandler(c echo.Context) error {
	content, err := services.Landing.GetContent(db.DB)
	if err != nil {
		c.Logger().Errorf("Failed to load landing content: %v", err)
		return serverError(c)
	}
	return okData(c, content)
}

// UpdateLandingContentHandler handles PATCH /api/admin/landing. The payload
// must satisfy every field constraint; errors name the offending field.
func UpdateLandingContentHandler(c echo.Context) error {
	var body map[string]interface{}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid JSON body")
	}

	fields, err := services.BuildLandingFields(body)
	if err != nil {
		if services.IsValidationError(err) {
			return badRequest(c, err.Error())
		}
		return badRequest(c, "Неверный формат данных")
	}

	updated, err := services.Landing.UpdateContent(db.DB, fields)
	if err != nil {
		c.Logger().Errorf("Failed to update landing content: %v", err)
		return serverError(c)
	}
	return okData(c, updated)
}
