package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/egorrya/pattaya-grad/models"
	"gorm.io/gorm"
)

var urlPathPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Path segments that handlers own; a landing page may never claim them.
var reservedURLPrefixes = []string{
	"admin",
	"api",
	"landing",
	"assets",
	"static",
	"uploads",
	"success",
	"favicon.ico",
}

// NormalizeLandingURLPath trims, lowercases and validates a landing URL path
// segment. Reserved prefixes are rejected here, at write time; the resolver
// never re-checks them.
func NormalizeLandingURLPath(value interface{}) (string, error) {
	raw, ok := value.(string)
	if !ok {
		return "", NewValidationError("Поле urlPath должно быть строкой")
	}
	trimmed := strings.Trim(strings.ToLower(strings.TrimSpace(raw)), "/")
	if trimmed == "" {
		return "", NewValidationError("Поле urlPath не должно быть пустым")
	}
	if !urlPathPattern.MatchString(trimmed) {
		return "", NewValidationError("URL должен содержать только строчные латинские буквы, цифры и дефисы")
	}
	for _, prefix := range reservedURLPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return "", NewValidationError("URL не может начинаться с %q", prefix)
		}
	}
	return trimmed, nil
}

// GetLandingPages lists all landing pages, newest first.
func GetLandingPages(db *gorm.DB) ([]models.LandingPage, error) {
	var pages []models.LandingPage
	if err := db.Order("created_at DESC").Find(&pages).Error; err != nil {
		return nil, fmt.Errorf("failed to list landing pages: %w", err)
	}
	return pages, nil
}

// GetLandingPageByID fetches one page or ErrLandingNotFound.
func GetLandingPageByID(db *gorm.DB, id string) (*models.LandingPage, error) {
	var page models.LandingPage
	err := db.Where("id = ?", id).First(&page).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrLandingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load landing page: %w", err)
	}
	return &page, nil
}

// GetLandingPageByURLPath resolves a URL path segment to its page or
// ErrLandingNotFound. Not-found is terminal; the caller renders a 404.
func GetLandingPageByURLPath(db *gorm.DB, urlPath string) (*models.LandingPage, error) {
	var page models.LandingPage
	err := db.Where("url_path = ?", urlPath).First(&page).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrLandingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve landing page: %w", err)
	}
	return &page, nil
}

// urlPathTakenBy reports whether another page already owns urlPath.
func urlPathTakenBy(db *gorm.DB, urlPath, excludeID string) (bool, error) {
	var count int64
	query := db.Model(&models.LandingPage{}).Where("url_path = ?", urlPath)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check url path: %w", err)
	}
	return count > 0, nil
}

// CreateLandingPage persists a new page. A duplicate URL path yields
// ErrURLTaken.
func CreateLandingPage(db *gorm.DB, payload LandingPagePayload) (*models.LandingPage, error) {
	taken, err := urlPathTakenBy(db, payload.URLPath, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrURLTaken
	}

	page := &models.LandingPage{
		URLPath:       payload.URLPath,
		Name:          payload.Name,
		LandingFields: payload.LandingFields,
	}
	if err := db.Create(page).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrURLTaken
		}
		return nil, fmt.Errorf("failed to create landing page: %w", err)
	}
	return page, nil
}

// UpdateLandingPage replaces the full payload of an existing page. The
// operation is idempotent: repeating it with the same payload leaves the
// persisted state unchanged.
func UpdateLandingPage(db *gorm.DB, id string, payload LandingPagePayload) (*models.LandingPage, error) {
	page, err := GetLandingPageByID(db, id)
	if err != nil {
		return nil, err
	}

	taken, err := urlPathTakenBy(db, payload.URLPath, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrURLTaken
	}

	page.URLPath = payload.URLPath
	page.Name = payload.Name
	page.LandingFields = payload.LandingFields
	if err := db.Save(page).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrURLTaken
		}
		return nil, fmt.Errorf("failed to update landing page: %w", err)
	}
	return page, nil
}

// DeleteLandingPage hard-deletes a page. Existing leads keep their rows; the
// back-reference is detached.
func DeleteLandingPage(db *gorm.DB, id string) error {
	page, err := GetLandingPageByID(db, id)
	if err != nil {
		return err
	}

	if err := db.Model(&models.Lead{}).Where("landing_page_id = ?", id).
		Update("landing_page_id", nil).Error; err != nil {
		return fmt.Errorf("failed to detach leads: %w", err)
	}
	if err := db.Delete(page).Error; err != nil {
		return fmt.Errorf("failed to delete landing page: %w", err)
	}
	return nil
}
