package services

import (
	"fmt"

	"fashionworld/internal/models"
	"fashionworld/internal/repositories"
	"fashionworld/internal/store"
)

// CatalogService handles the admin-facing product and category
// lifecycle. Every successful write triggers a refresh of the
// storefront's read cache so shoppers see the change without a restart.
type CatalogService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	store        *store.Store
}

// NewCatalogService creates a new CatalogService. store may be nil when
// no storefront cache needs refreshing (admin-only deployments, tests).
func NewCatalogService(productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository, st *store.Store) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		store:        st,
	}
}

// GetAllProducts retrieves all products.
func (s *CatalogService) GetAllProducts() ([]models.Product, error) {
	return s.productRepo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *CatalogService) GetProductByID(id string) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

// CreateProduct creates a new product. The discount field is derived
// from the price pair, never taken from the caller.
func (s *CatalogService) CreateProduct(product *models.Product) error {
	if err := validateImages(product); err != nil {
		return err
	}
	normalizePricing(product)
	if err := s.productRepo.Create(product); err != nil {
		return err
	}
	s.refresh()
	return nil
}

// UpdateProduct updates an existing product, recomputing the discount.
func (s *CatalogService) UpdateProduct(product *models.Product) error {
	if err := validateImages(product); err != nil {
		return err
	}
	normalizePricing(product)
	if err := s.productRepo.Update(product); err != nil {
		return err
	}
	s.refresh()
	return nil
}

// DeleteProduct deletes a product by its ID.
func (s *CatalogService) DeleteProduct(id string) error {
	if err := s.productRepo.Delete(id); err != nil {
		return err
	}
	s.refresh()
	return nil
}

// GetAllCategories retrieves all categories.
func (s *CatalogService) GetAllCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

// CreateCategory creates a new category.
func (s *CatalogService) CreateCategory(category *models.Category) error {
	if err := s.categoryRepo.Create(category); err != nil {
		return err
	}
	s.refresh()
	return nil
}

// UpdateCategory updates an existing category.
func (s *CatalogService) UpdateCategory(category *models.Category) error {
	if err := s.categoryRepo.Update(category); err != nil {
		return err
	}
	s.refresh()
	return nil
}

// DeleteCategory deletes a category by its ID. Products keep their
// category name; orphaned names simply stop matching a category row.
func (s *CatalogService) DeleteCategory(id string) error {
	if err := s.categoryRepo.Delete(id); err != nil {
		return err
	}
	s.refresh()
	return nil
}

func (s *CatalogService) refresh() {
	if s.store != nil {
		s.store.Refresh()
	}
}

// normalizePricing fills in the derived pricing fields: a missing
// original price defaults to the selling price, and the discount is
// recomputed from the pair.
func normalizePricing(p *models.Product) {
	if p.OriginalPrice == 0 {
		p.OriginalPrice = p.Price
	}
	p.Discount = models.ComputeDiscount(p.Price, p.OriginalPrice)
}

// validateImages rejects products with no images; the storefront card
// always renders images[0].
func validateImages(p *models.Product) error {
	if len(p.Images) == 0 {
		return fmt.Errorf("product %q must have at least one image", p.Name)
	}
	return nil
}
