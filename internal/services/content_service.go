package services

import (
	"log"

	"fashionworld/internal/models"
	"fashionworld/internal/repositories"
	"fashionworld/pkg/localstore"

	"gorm.io/gorm"
)

// DefaultSettings are the contact details shown before an admin has
// saved any, and the fallback when the settings row cannot be read.
var DefaultSettings = models.SiteSettings{
	WhatsAppNumber: "916376327343",
	Email:          "contact@fashionworld.in",
	Phone:          "+91 6376327343",
	Address:        "Jaipur, Rajasthan, India",
	InstagramURL:   "https://instagram.com/fashionworld",
	FacebookURL:    "https://facebook.com/fashionworld",
}

// ContentService covers the records with no behavior beyond CRUD:
// banners, reviews and site settings.
type ContentService struct {
	bannerRepo   repositories.BannerRepository
	reviewRepo   repositories.ReviewRepository
	settingsRepo repositories.SettingsRepository
	local        *localstore.Store
}

// NewContentService creates a new ContentService. local may be nil;
// it only mirrors banners and settings into the legacy local slots.
func NewContentService(bannerRepo repositories.BannerRepository, reviewRepo repositories.ReviewRepository, settingsRepo repositories.SettingsRepository, local *localstore.Store) *ContentService {
	return &ContentService{
		bannerRepo:   bannerRepo,
		reviewRepo:   reviewRepo,
		settingsRepo: settingsRepo,
		local:        local,
	}
}

// GetBanners retrieves all banners.
func (s *ContentService) GetBanners() ([]models.Banner, error) {
	return s.bannerRepo.GetAll()
}

// SaveBanner creates or replaces a banner and mirrors the banner list
// into the legacy local slot.
func (s *ContentService) SaveBanner(banner *models.Banner) error {
	if err := s.bannerRepo.Upsert(banner); err != nil {
		return err
	}
	s.mirrorBanners()
	return nil
}

// DeleteBanner removes a banner by its ID.
func (s *ContentService) DeleteBanner(id string) error {
	if err := s.bannerRepo.Delete(id); err != nil {
		return err
	}
	s.mirrorBanners()
	return nil
}

// GetReviews retrieves all reviews.
func (s *ContentService) GetReviews() ([]models.Review, error) {
	return s.reviewRepo.GetAll()
}

// CreateReview stores a new review.
func (s *ContentService) CreateReview(review *models.Review) error {
	return s.reviewRepo.Create(review)
}

// DeleteReview removes a review by its ID.
func (s *ContentService) DeleteReview(id string) error {
	return s.reviewRepo.Delete(id)
}

// GetSettings returns the site settings, falling back to the defaults
// when no row has been saved yet.
func (s *ContentService) GetSettings() models.SiteSettings {
	settings, err := s.settingsRepo.Get()
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Printf("Failed to load site settings, using defaults: %v", err)
		}
		return DefaultSettings
	}
	return *settings
}

// UpdateSettings replaces the site settings and mirrors them into the
// legacy local slot.
func (s *ContentService) UpdateSettings(settings *models.SiteSettings) error {
	if err := s.settingsRepo.Update(settings); err != nil {
		return err
	}
	if s.local != nil {
		if err := s.local.Put(localstore.KeySettings, settings); err != nil {
			log.Printf("Failed to mirror settings to local storage: %v", err)
		}
	}
	return nil
}

func (s *ContentService) mirrorBanners() {
	if s.local == nil {
		return
	}
	banners, err := s.bannerRepo.GetAll()
	if err != nil {
		log.Printf("Failed to read banners for local mirror: %v", err)
		return
	}
	if err := s.local.Put(localstore.KeyBanners, banners); err != nil {
		log.Printf("Failed to mirror banners to local storage: %v", err)
	}
}
