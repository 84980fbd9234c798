package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/egorrya/pattaya-grad/db"
	"github.com/egorrya/pattaya-grad/middleware"
	"github.com/egorrya/pattaya-grad/models"
	"github.com/egorrya/pattaya-grad/services"

	"github.com/labstack/echo/v4"
)

type leadRequest struct {
	Channel     string `json:"channel"`
	Contact     string `json:"contact"`
	Honeypot    string `json:"honeypot"`
	LandingSlug string `json:"landingSlug"`
}

// CreateLeadHandler handles the public POST /api/lead. A valid submission
// persists exactly one lead; notification runs after the write commits and
// never changes the response.
func CreateLeadHandler(c echo.Context) error {
	var req leadRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid JSON body")
	}

	// Bots fill the hidden field; answer with the generic message so the
	// trap stays invisible.
	if strings.TrimSpace(req.Honeypot) != "" {
		return badRequest(c, "Неверный запрос")
	}

	contact, err := services.ValidateLeadInput(req.Channel, req.Contact)
	if err != nil {
		return badRequest(c, err.Error())
	}

	// Resolve the target landing: explicit slug, or the singleton default.
	var fields models.LandingFields
	var landingName string
	var landingPageID *string
	if req.LandingSlug != "" {
		page, err := services.GetLandingPageByURLPath(db.DB, req.LandingSlug)
		if err != nil {
			if errors.Is(err, services.ErrLandingNotFound) {
				return notFound(c, "Landing not found")
			}
			c.Logger().Errorf("Failed to resolve landing %q: %v", req.LandingSlug, err)
			return serverError(c)
		}
		fields = page.LandingFields
		landingName = page.Name
		landingPageID = &page.ID
	} else {
		content, err := services.Landing.GetContent(db.DB)
		if err != nil {
			c.Logger().Errorf("Failed to load landing content: %v", err)
			return serverError(c)
		}
		fields = content.LandingFields
	}

	lead := models.Lead{
		Channel:       req.Channel,
		Contact:       contact,
		IPAddress:     requestIP(c),
		Country:       requestCountry(c),
		LandingPageID: landingPageID,
	}
	if err := services.CreateLead(db.DB, &lead); err != nil {
		c.Logger().Errorf("Failed to save lead: %v", err)
		return serverError(c)
	}

	// Fire-and-forget: delivery failures are logged inside and swallowed.
	cfg := middleware.GetConfig(c)
	go services.NotifyLead(cfg, fields, landingName, lead)

	return c.JSON(http.StatusOK, map[string]interface{}{"ok": true})
}

// ListLeadsHandler handles the guarded GET /api/lead.
func ListLeadsHandler(c echo.Context) error {
	rawChannel := c.QueryParam("channel")
	if rawChannel != "" && !models.IsValidChannel(rawChannel) {
		return badRequest(c, "Channel query should be 'whatsapp' or 'telegram'")
	}

	limit, err := parsePositiveInt(c.QueryParam("limit"), services.DefaultLeadPageSize)
	if err != nil {
		return badRequest(c, "Limit must be a positive integer")
	}
	page, err := parsePositiveInt(c.QueryParam("page"), 1)
	if err != nil {
		return badRequest(c, "Page must be a positive integer")
	}

	cfg := middleware.GetConfig(c)
	items, meta, err := services.ListLeads(db.DB, services.LeadListParams{
		Channel: rawChannel,
		Page:    page,
		Limit:   limit,
	}, cfg.DefaultLandingName)
	if err != nil {
		c.Logger().Errorf("Failed to fetch leads: %v", err)
		return serverError(c)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"ok":   true,
		"data": items,
		"meta": meta,
	})
}

// ExportLeadsHandler handles the guarded GET /api/lead/export, streaming the
// filtered leads as a spreadsheet.
func ExportLeadsHandler(c echo.Context) error {
	rawChannel := c.QueryParam("channel")
	if rawChannel != "" && !models.IsValidChannel(rawChannel) {
		return badRequest(c, "Channel query should be 'whatsapp' or 'telegram'")
	}

	cfg := middleware.GetConfig(c)
	f, err := services.ExportLeadsXLSX(db.DB, rawChannel, cfg.DefaultLandingName)
	if err != nil {
		c.Logger().Errorf("Failed to export leads: %v", err)
		return serverError(c)
	}
	defer f.Close()

	filename := fmt.Sprintf("leads-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response().Writer)
}

// requestIP extracts the client address: first X-Forwarded-For value wins,
// then X-Real-Ip.
func requestIP(c echo.Context) *string {
	if forwarded := c.Request().Header.Get("X-Forwarded-For"); forwarded != "" {
		first := strings.TrimSpace(strings.Split(forwarded, ",")[0])
		if first != "" {
			return &first
		}
	}
	if real := strings.TrimSpace(c.Request().Header.Get("X-Real-Ip")); real != "" {
		return &real
	}
	return nil
}

// requestCountry reads the edge geo header, uppercased.
func requestCountry(c echo.Context) *string {
	for _, header := range []string{"CF-IPCountry", "X-Vercel-IP-Country"} {
		if value := strings.TrimSpace(c.Request().Header.Get(header)); value != "" {
			upper := strings.ToUpper(value)
			return &upper
		}
	}
	return nil
}

func parsePositiveInt(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 1 {
		return 0, fmt.Errorf("invalid positive integer %q", raw)
	}
	return parsed, nil
}
