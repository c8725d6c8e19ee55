package repositories

import (
	"fmt"

	"fashionworld/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BannerRepository defines the interface for banner data access.
type BannerRepository interface {
	GetAll() ([]models.Banner, error)
	Upsert(banner *models.Banner) error
	Delete(id string) error
}

// GORMBannerRepository is a GORM implementation of BannerRepository.
type GORMBannerRepository struct {
	db *gorm.DB
}

// NewGORMBannerRepository creates a new instance of GORMBannerRepository.
func NewGORMBannerRepository(db *gorm.DB) *GORMBannerRepository {
	return &GORMBannerRepository{db: db}
}

// GetAll retrieves all banners.
func (r *GORMBannerRepository) GetAll() ([]models.Banner, error) {
	var banners []models.Banner
	if err := r.db.Find(&banners).Error; err != nil {
		return nil, fmt.Errorf("failed to get all banners: %w", err)
	}
	return banners, nil
}

// Upsert creates the banner if it is new, otherwise replaces it. The
// admin banner form edits in place, so create and update share a path.
func (r *GORMBannerRepository) Upsert(banner *models.Banner) error {
	if banner.ID == "" {
		banner.ID = uuid.New().String()
	}
	if err := r.db.Save(banner).Error; err != nil {
		return fmt.Errorf("failed to save banner: %w", err)
	}
	return nil
}

// Delete removes a banner by its ID.
func (r *GORMBannerRepository) Delete(id string) error {
	res := r.db.Delete(&models.Banner{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete banner: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("banner with ID %s not found for deletion", id)
	}
	return nil
}
