package handlers

import (
	"fmt"
	"log"

	"fashionworld/internal/services"
	"fashionworld/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler exposes the shopper's cart and wishlist. All mutations go
// through the commerce store; the handler never touches the collections
// directly.
type CartHandler struct {
	store    *store.Store
	catalog  *services.CatalogService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(st *store.Store, catalog *services.CatalogService) *CartHandler {
	return &CartHandler{
		store:    st,
		catalog:  catalog,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart and wishlist routes.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Patch("/items", h.HandleUpdateQuantity)
	cartRoutes.Delete("/items/:productId/:size", h.HandleRemoveItem)
	cartRoutes.Delete("/", h.HandleClearCart)

	wishlistRoutes := router.Group("/wishlist")
	wishlistRoutes.Get("/", h.HandleGetWishlist)
	wishlistRoutes.Post("/:productId", h.HandleAddToWishlist)
	wishlistRoutes.Delete("/:productId", h.HandleRemoveFromWishlist)
}

// HandleGetCart returns the cart lines with the derived totals the
// navigation badge and cart page need.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"items": h.store.Cart(),
		"total": h.store.CartTotal(),
		"count": h.store.CartCount(),
	})
}

// AddItemRequest is the body for adding a product to the cart. The size
// string is taken as given; sizes are not checked against the product's
// declared set.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Size      string `json:"size" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,gt=0"`
}

// HandleAddItem adds a product to the cart. Quantity defaults to 1.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	product, err := h.catalog.GetProductByID(req.ProductID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("Product with ID %s not found", req.ProductID),
		})
	}

	h.store.AddToCart(*product, req.Size, req.Quantity)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"items": h.store.Cart(),
		"count": h.store.CartCount(),
	})
}

// UpdateQuantityRequest is the body for setting a line's quantity.
// Zero or below removes the line.
type UpdateQuantityRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Size      string `json:"size" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// HandleUpdateQuantity sets a cart line's quantity exactly.
func (h *CartHandler) HandleUpdateQuantity(c *fiber.Ctx) error {
	var req UpdateQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	h.store.UpdateCartQuantity(req.ProductID, req.Size, req.Quantity)
	return c.JSON(fiber.Map{
		"items": h.store.Cart(),
		"count": h.store.CartCount(),
	})
}

// HandleRemoveItem removes one cart line. Removing an absent line still
// returns the current cart; it is not an error.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	h.store.RemoveFromCart(c.Params("productId"), c.Params("size"))
	return c.JSON(fiber.Map{
		"items": h.store.Cart(),
		"count": h.store.CartCount(),
	})
}

// HandleClearCart empties the cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	h.store.ClearCart()
	return c.JSON(fiber.Map{"items": h.store.Cart(), "count": 0})
}

// HandleGetWishlist returns the wishlist.
func (h *CartHandler) HandleGetWishlist(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"items": h.store.Wishlist()})
}

// HandleAddToWishlist adds a product to the wishlist; duplicates are a
// silent no-op.
func (h *CartHandler) HandleAddToWishlist(c *fiber.Ctx) error {
	productID := c.Params("productId")
	product, err := h.catalog.GetProductByID(productID)
	if err != nil {
		log.Printf("Wishlist add failed for product %s: %v", productID, err)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("Product with ID %s not found", productID),
		})
	}

	h.store.AddToWishlist(*product)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"items": h.store.Wishlist()})
}

// HandleRemoveFromWishlist removes a product from the wishlist.
func (h *CartHandler) HandleRemoveFromWishlist(c *fiber.Ctx) error {
	h.store.RemoveFromWishlist(c.Params("productId"))
	return c.JSON(fiber.Map{"items": h.store.Wishlist()})
}
