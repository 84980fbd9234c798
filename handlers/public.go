package handlers

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/egorrya/pattaya-grad/db"
	"github.com/egorrya/pattaya-grad/models"
	"github.com/egorrya/pattaya-grad/services"

	"github.com/labstack/echo/v4"
)

// landingView is the render model for a public landing page.
type landingView struct {
	models.LandingFields
	// Slug is empty for the singleton landing served at the root.
	Slug string
	// Script is the admin-authored custom script, injected verbatim.
	Script template.JS
}

func newLandingView(fields models.LandingFields, slug string) landingView {
	view := landingView{LandingFields: fields, Slug: slug}
	if fields.CustomScript != nil {
		view.Script = template.JS(*fields.CustomScript)
	}
	return view
}

// HomeHandler renders the singleton landing at the site root. Reads go
// through the short-lived content cache.
func HomeHandler(c echo.Context) error {
	content, err := services.Landing.GetContentCached(db.DB)
	if err != nil {
		c.Logger().Errorf("Failed to load landing content: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
	return c.Render(http.StatusOK, "landing.html", newLandingView(content.LandingFields, ""))
}

// HomeSuccessHandler renders the next screen after a root-page submission.
func HomeSuccessHandler(c echo.Context) error {
	content, err := services.Landing.GetContentCached(db.DB)
	if err != nil {
		c.Logger().Errorf("Failed to load landing content: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
	return c.Render(http.StatusOK, "success.html", newLandingView(content.LandingFields, ""))
}

// LandingPageHandler renders a multi-page landing by URL path segment.
// An unknown segment is terminal: the 404 page is rendered, no retries.
func LandingPageHandler(c echo.Context) error {
	slug := c.Param("slug")
	page, err := services.GetLandingPageByURLPath(db.DB, slug)
	if err != nil {
		if errors.Is(err, services.ErrLandingNotFound) {
			return c.Render(http.StatusNotFound, "not_found.html", nil)
		}
		c.Logger().Errorf("Failed to resolve landing %q: %v", slug, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
	return c.Render(http.StatusOK, "landing.html", newLandingView(page.LandingFields, page.URLPath))
}

// LandingSuccessHandler renders the next screen of a multi-page landing.
func LandingSuccessHandler(c echo.Context) error {
	slug := c.Param("slug")
	page, err := services.GetLandingPageByURLPath(db.DB, slug)
	if err != nil {
		if errors.Is(err, services.ErrLandingNotFound) {
			return c.Render(http.StatusNotFound, "not_found.html", nil)
		}
		c.Logger().Errorf("Failed to resolve landing %q: %v", slug, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
	return c.Render(http.StatusOK, "success.html", newLandingView(page.LandingFields, page.URLPath))
}
