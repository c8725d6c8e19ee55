package handlers

import (
	"fmt"
	"log"
	"strings"

	"fashionworld/internal/models"
	"fashionworld/internal/services"
	"fashionworld/pkg/storage"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ContentHandler covers banners, reviews, site settings and media
// uploads.
type ContentHandler struct {
	service  *services.ContentService
	uploader storage.Uploader
	validate *validator.Validate
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(service *services.ContentService, uploader storage.Uploader) *ContentHandler {
	return &ContentHandler{
		service:  service,
		uploader: uploader,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the public content routes.
func (h *ContentHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/banners", h.HandleListBanners)
	router.Get("/reviews", h.HandleListReviews)
	router.Get("/settings", h.HandleGetSettings)
	router.Post("/reviews", h.HandleCreateReview)
}

// RegisterAdminRoutes registers the content write routes.
func (h *ContentHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Put("/banners", h.HandleSaveBanner)
	router.Delete("/banners/:id", h.HandleDeleteBanner)
	router.Delete("/reviews/:id", h.HandleDeleteReview)
	router.Put("/settings", h.HandleUpdateSettings)
	router.Post("/uploads/:bucket", h.HandleUpload)
}

// HandleListBanners retrieves all banners.
func (h *ContentHandler) HandleListBanners(c *fiber.Ctx) error {
	banners, err := h.service.GetBanners()
	if err != nil {
		log.Printf("Error getting banners: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve banners",
			"error":   err.Error(),
		})
	}
	return c.JSON(banners)
}

// HandleSaveBanner creates or replaces a banner.
func (h *ContentHandler) HandleSaveBanner(c *fiber.Ctx) error {
	var banner models.Banner
	if err := c.BodyParser(&banner); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(banner); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	if err := h.service.SaveBanner(&banner); err != nil {
		log.Printf("Error saving banner: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not save banner",
			"error":   err.Error(),
		})
	}
	return c.JSON(banner)
}

// HandleDeleteBanner deletes a banner.
func (h *ContentHandler) HandleDeleteBanner(c *fiber.Ctx) error {
	bannerID := c.Params("id")
	if err := h.service.DeleteBanner(bannerID); err != nil {
		log.Printf("Error deleting banner %s: %v", bannerID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Banner with ID %s not found", bannerID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete banner",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Banner %s deleted successfully", bannerID),
	})
}

// HandleListReviews retrieves all reviews.
func (h *ContentHandler) HandleListReviews(c *fiber.Ctx) error {
	reviews, err := h.service.GetReviews()
	if err != nil {
		log.Printf("Error getting reviews: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve reviews",
			"error":   err.Error(),
		})
	}
	return c.JSON(reviews)
}

// HandleCreateReview stores a new customer review.
func (h *ContentHandler) HandleCreateReview(c *fiber.Ctx) error {
	var review models.Review
	if err := c.BodyParser(&review); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(review); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	if err := h.service.CreateReview(&review); err != nil {
		log.Printf("Error creating review: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create review",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}

// HandleDeleteReview deletes a review.
func (h *ContentHandler) HandleDeleteReview(c *fiber.Ctx) error {
	reviewID := c.Params("id")
	if err := h.service.DeleteReview(reviewID); err != nil {
		log.Printf("Error deleting review %s: %v", reviewID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Review with ID %s not found", reviewID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete review",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Review %s deleted successfully", reviewID),
	})
}

// HandleGetSettings returns the site settings, defaults included.
func (h *ContentHandler) HandleGetSettings(c *fiber.Ctx) error {
	return c.JSON(h.service.GetSettings())
}

// HandleUpdateSettings replaces the site settings.
func (h *ContentHandler) HandleUpdateSettings(c *fiber.Ctx) error {
	var settings models.SiteSettings
	if err := c.BodyParser(&settings); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(settings); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	if err := h.service.UpdateSettings(&settings); err != nil {
		log.Printf("Error updating settings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update settings",
			"error":   err.Error(),
		})
	}
	return c.JSON(settings)
}

// HandleUpload stores an uploaded file in the named bucket and returns
// its public URL. File names get a UUID prefix to avoid collisions.
func (h *ContentHandler) HandleUpload(c *fiber.Ctx) error {
	bucket := c.Params("bucket")
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "A 'file' form field is required",
			"error":   err.Error(),
		})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not open uploaded file",
			"error":   err.Error(),
		})
	}
	defer f.Close()

	name := fmt.Sprintf("%s-%s", uuid.New().String(), fileHeader.Filename)
	url, err := h.uploader.Upload(bucket, name, f)
	if err != nil {
		log.Printf("Error storing upload %s: %v", name, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not store upload",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"url": url})
}
