package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/egorrya/pattaya-grad/models"
	"gorm.io/gorm"
)

const (
	// DefaultLeadPageSize is used when the caller does not pass a limit.
	DefaultLeadPageSize = 50
	// MaxLeadPageSize caps a single page of leads; larger requests clamp.
	MaxLeadPageSize = 100
)

// LeadListParams carries the lead dashboard query.
type LeadListParams struct {
	Channel string // empty means all channels
	Page    int
	Limit   int
}

// LeadListItem is a lead row joined with its landing display name.
type LeadListItem struct {
	models.Lead
	LandingName string `json:"landingName"`
}

// LeadListMeta describes the returned page.
type LeadListMeta struct {
	Limit      int   `json:"limit"`
	Page       int   `json:"page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// ValidateLeadInput checks channel and contact against the intake contract
// and returns the normalized contact.
func ValidateLeadInput(channel, contact string) (string, error) {
	if !models.IsValidChannel(channel) {
		return "", NewValidationError("Channel must be either 'whatsapp' or 'telegram'")
	}
	normalized := strings.TrimSpace(contact)
	if len([]rune(normalized)) < models.MinContactLength {
		return "", NewValidationError("Contact must be a string with at least %d characters", models.MinContactLength)
	}
	return normalized, nil
}

// CreateLead persists a single lead row.
func CreateLead(db *gorm.DB, lead *models.Lead) error {
	if err := db.Create(lead).Error; err != nil {
		return fmt.Errorf("failed to save lead: %w", err)
	}
	return nil
}

// ListLeads returns one page of leads, newest first, each joined with the
// display name of its landing. Leads without a page reference fall back to
// defaultLandingName.
func ListLeads(db *gorm.DB, params LeadListParams, defaultLandingName string) ([]LeadListItem, LeadListMeta, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = DefaultLeadPageSize
	}
	if limit > MaxLeadPageSize {
		limit = MaxLeadPageSize
	}
	page := params.Page
	if page < 1 {
		page = 1
	}

	query := db.Model(&models.Lead{})
	if params.Channel != "" {
		query = query.Where("channel = ?", params.Channel)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, LeadListMeta{}, fmt.Errorf("failed to count leads: %w", err)
	}

	var leads []models.Lead
	err := query.Preload("LandingPage").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&leads).Error
	if err != nil {
		return nil, LeadListMeta{}, fmt.Errorf("failed to list leads: %w", err)
	}

	items := make([]LeadListItem, 0, len(leads))
	for _, lead := range leads {
		name := defaultLandingName
		if lead.LandingPage != nil {
			name = lead.LandingPage.Name
		}
		items = append(items, LeadListItem{Lead: lead, LandingName: name})
	}

	meta := LeadListMeta{
		Limit:      limit,
		Page:       page,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}
	return items, meta, nil
}
