package repositories

import (
	"fmt"

	"fashionworld/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SettingsRepository defines the interface for site settings access.
// A single settings row is kept; Get returns it and Update replaces it.
type SettingsRepository interface {
	Get() (*models.SiteSettings, error)
	Update(settings *models.SiteSettings) error
}

// GORMSettingsRepository is a GORM implementation of SettingsRepository.
type GORMSettingsRepository struct {
	db *gorm.DB
}

// NewGORMSettingsRepository creates a new instance of GORMSettingsRepository.
func NewGORMSettingsRepository(db *gorm.DB) *GORMSettingsRepository {
	return &GORMSettingsRepository{db: db}
}

// Get retrieves the settings row. gorm.ErrRecordNotFound is passed
// through so callers can fall back to defaults on first run.
func (r *GORMSettingsRepository) Get() (*models.SiteSettings, error) {
	var settings models.SiteSettings
	if err := r.db.First(&settings).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get site settings: %w", err)
	}
	return &settings, nil
}

// Update replaces the settings row, creating it if absent.
func (r *GORMSettingsRepository) Update(settings *models.SiteSettings) error {
	if settings.ID == "" {
		existing, err := r.Get()
		if err == nil {
			settings.ID = existing.ID
		} else {
			settings.ID = uuid.New().String()
		}
	}
	if err := r.db.Save(settings).Error; err != nil {
		return fmt.Errorf("failed to update site settings: %w", err)
	}
	return nil
}
