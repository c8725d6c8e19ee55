// Package store implements the commerce state store: the single
// in-process authority for the shopper's cart and wishlist, plus a
// read cache of catalog and category data sourced from the
// repositories. It is constructed once in main and passed to the
// handlers; nothing else holds the mutable collections.
package store

import (
	"log"
	"sync"

	"fashionworld/internal/models"
	"fashionworld/internal/repositories"
	"fashionworld/pkg/localstore"
)

// Store holds cart, wishlist and the catalog read cache. Cart and
// wishlist are written through to local storage on every mutation;
// the catalog cache lives only in memory and is replaced wholesale by
// Refresh. A RWMutex guards the collections because Fiber serves
// handlers concurrently; each operation is atomic under the lock.
type Store struct {
	mu sync.RWMutex

	products   []models.Product
	categories []models.Category
	cart       []models.CartItem
	wishlist   []models.Product
	loading    bool

	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	local        *localstore.Store
}

// New builds a store seeded with the given product list. The seed is
// shown until the first Refresh succeeds; Loading reports true for
// that window. Cart and wishlist are restored from local storage.
func New(productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository, local *localstore.Store, seed []models.Product) *Store {
	s := &Store{
		products:     seed,
		loading:      true,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		local:        local,
	}

	if _, err := local.Get(localstore.KeyCart, &s.cart); err != nil {
		log.Printf("Failed to restore cart from local storage: %v", err)
		s.cart = nil
	}
	if _, err := local.Get(localstore.KeyWishlist, &s.wishlist); err != nil {
		log.Printf("Failed to restore wishlist from local storage: %v", err)
		s.wishlist = nil
	}

	return s
}

// Refresh replaces the whole product and category cache with a fresh
// read from the repositories. A failed read is logged and leaves the
// previous (or seed) cache in place; there is no retry.
func (s *Store) Refresh() {
	products, err := s.productRepo.GetAll()
	if err != nil {
		log.Printf("Failed to refresh products, keeping cached catalog: %v", err)
	}
	categories, catErr := s.categoryRepo.GetAll()
	if catErr != nil {
		log.Printf("Failed to refresh categories, keeping cached list: %v", catErr)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		s.products = products
		s.loading = false
	}
	if catErr == nil {
		s.categories = categories
	}
}

// Loading reports whether the catalog has not yet been refreshed from
// the backing repositories; callers should render a loading state
// rather than trusting the seed list.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// AddToCart adds quantity units of the product in the given size. If a
// line with the same (product ID, size) already exists its quantity is
// incremented; otherwise a new line is appended. The size string is
// accepted as-is, without checking it against the product's declared
// sizes. Always succeeds.
func (s *Store) AddToCart(product models.Product, size string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].Product.ID == product.ID && s.cart[i].Size == size {
			s.cart[i].Quantity += quantity
			s.persistCart()
			return
		}
	}
	s.cart = append(s.cart, models.CartItem{Product: product, Size: size, Quantity: quantity})
	s.persistCart()
}

// RemoveFromCart removes the line matching (productID, size). Removing
// an absent line is a no-op, not an error.
func (s *Store) RemoveFromCart(productID, size string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeCartLine(productID, size)
}

// UpdateCartQuantity sets the line's quantity to exactly quantity. A
// quantity of zero or below removes the line. Updating an absent line
// is a no-op.
func (s *Store) UpdateCartQuantity(productID, size string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeCartLine(productID, size)
		return
	}
	for i := range s.cart {
		if s.cart[i].Product.ID == productID && s.cart[i].Size == size {
			s.cart[i].Quantity = quantity
			s.persistCart()
			return
		}
	}
}

// ClearCart empties the cart unconditionally.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
	s.persistCart()
}

// AddToWishlist adds the product to the wishlist. Adding a product
// that is already present is a no-op.
func (s *Store) AddToWishlist(product models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.wishlist {
		if p.ID == product.ID {
			return
		}
	}
	s.wishlist = append(s.wishlist, product)
	s.persistWishlist()
}

// RemoveFromWishlist removes the product from the wishlist; absent
// products are a no-op.
func (s *Store) RemoveFromWishlist(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.wishlist {
		if p.ID == productID {
			s.wishlist = append(s.wishlist[:i], s.wishlist[i+1:]...)
			s.persistWishlist()
			return
		}
	}
}

// IsInWishlist reports wishlist membership of the product ID.
func (s *Store) IsInWishlist(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.wishlist {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// CartTotal returns the sum of price*quantity over all cart lines,
// recomputed on every call. Prices are read live from the catalog
// cache: a price change picked up by Refresh changes the displayed
// total while the item sits in the cart. Lines whose product has left
// the catalog fall back to the price captured on the line.
func (s *Store) CartTotal() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, item := range s.cart {
		total += s.livePrice(item.Product) * item.Quantity
	}
	return total
}

// livePrice resolves the current catalog price for the product,
// falling back to the cart line's snapshot. Caller must hold the lock.
func (s *Store) livePrice(p models.Product) int {
	for i := range s.products {
		if s.products[i].ID == p.ID {
			return s.products[i].Price
		}
	}
	return p.Price
}

// CartCount returns the sum of quantities across all lines, which is
// what the navigation badge shows. Distinct from the number of lines.
func (s *Store) CartCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, item := range s.cart {
		count += item.Quantity
	}
	return count
}

// Cart returns a copy of the cart lines with each line's price resolved
// against the current catalog, the same price CartTotal sums. Checkout
// snapshots these resolved lines, so the total a shopper sees in the
// cart is the total the order is placed for.
func (s *Store) Cart() []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.CartItem, len(s.cart))
	copy(out, s.cart)
	for i := range out {
		out[i].Product.Price = s.livePrice(out[i].Product)
	}
	return out
}

// Wishlist returns a copy of the wishlist.
func (s *Store) Wishlist() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.wishlist))
	copy(out, s.wishlist)
	return out
}

// Products returns a copy of the cached catalog.
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Categories returns a copy of the cached category list.
func (s *Store) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// removeCartLine removes the matching line. Caller must hold the lock.
func (s *Store) removeCartLine(productID, size string) {
	for i := range s.cart {
		if s.cart[i].Product.ID == productID && s.cart[i].Size == size {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			s.persistCart()
			return
		}
	}
}

// persistCart writes the cart through to local storage. Caller must
// hold the lock. A write failure is logged; the in-memory cart is
// still the authority for this process.
func (s *Store) persistCart() {
	if err := s.local.Put(localstore.KeyCart, s.cart); err != nil {
		log.Printf("Failed to persist cart: %v", err)
	}
}

// persistWishlist writes the wishlist through to local storage.
// Caller must hold the lock.
func (s *Store) persistWishlist() {
	if err := s.local.Put(localstore.KeyWishlist, s.wishlist); err != nil {
		log.Printf("Failed to persist wishlist: %v", err)
	}
}
