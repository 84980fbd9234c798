package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/egorrya/pattaya-grad/models"
	"gorm.io/gorm"
)

// LandingService serves the singleton landing content with a short-lived
// read cache.
type LandingService struct {
	Cache *ContentCache
}

// NewLandingService creates a landing service around the given cache.
func NewLandingService(cache *ContentCache) *LandingService {
	return &LandingService{Cache: cache}
}

// Landing is the process-wide landing service. Tests may replace it with one
// built around a fake clock.
var Landing = NewLandingService(NewContentCache(LandingCacheTTL, time.Now))

// GetContent loads the singleton landing row, creating it with default
// content on first read.
func (s *LandingService) GetContent(db *gorm.DB) (*models.LandingContent, error) {
	var content models.LandingContent
	err := db.Where("id = ?", models.LandingContentID).First(&content).Error
	if err == nil {
		return &content, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load landing content: %w", err)
	}

	content = models.LandingContent{
		ID:            models.LandingContentID,
		LandingFields: models.DefaultLandingFields(),
	}
	if err := db.Create(&content).Error; err != nil {
		return nil, fmt.Errorf("failed to seed landing content: %w", err)
	}
	return &content, nil
}

// GetContentCached returns the singleton content, serving a value up to
// LandingCacheTTL stale.
func (s *LandingService) GetContentCached(db *gorm.DB) (*models.LandingContent, error) {
	if cached, ok := s.Cache.Get(); ok {
		return &cached, nil
	}

	fresh, err := s.GetContent(db)
	if err != nil {
		return nil, err
	}
	s.Cache.Set(*fresh)
	return fresh, nil
}

// UpdateContent upserts the singleton row and invalidates the cache.
func (s *LandingService) UpdateContent(db *gorm.DB, fields models.LandingFields) (*models.LandingContent, error) {
	var content models.LandingContent
	err := db.Where("id = ?", models.LandingContentID).First(&content).Error
	switch {
	case err == nil:
		content.LandingFields = fields
		if err := db.Save(&content).Error; err != nil {
			return nil, fmt.Errorf("failed to update landing content: %w", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		content = models.LandingContent{
			ID:            models.LandingContentID,
			LandingFields: fields,
		}
		if err := db.Create(&content).Error; err != nil {
			return nil, fmt.Errorf("failed to create landing content: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to load landing content: %w", err)
	}

	s.Cache.Invalidate()
	return &content, nil
}
