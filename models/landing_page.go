package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LandingPage is a standalone landing served under its own URL path segment.
type LandingPage struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// URLPath is the unique path segment the page is served under.
	// Lowercase letters, digits and hyphens only; reserved prefixes are
	// rejected at write time (see services.NormalizeLandingURLPath).
	URLPath string `gorm:"column:url_path;uniqueIndex;not null" json:"urlPath"`
	Name    string `gorm:"not null" json:"name"`

	LandingFields `gorm:"embedded"`
}

// BeforeCreate hook to generate UUID
func (lp *LandingPage) BeforeCreate(tx *gorm.DB) error {
	if lp.ID == "" {
		lp.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for LandingPage model
func (LandingPage) TableName() string {
	return "landing_pages"
}
