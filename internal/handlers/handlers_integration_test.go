package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"fashionworld/internal/handlers"
	"fashionworld/internal/middleware"
	"fashionworld/internal/models"
	"fashionworld/internal/repositories"
	"fashionworld/internal/services"
	"fashionworld/internal/store"
	"fashionworld/pkg/localstore"
	"fashionworld/pkg/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	testAdminEmail    = "admin@fashionworld.in"
	testAdminPassword = "admin123"
)

// setupApp wires the whole API against in-memory SQLite, the way main
// does against Postgres. Each test gets its own database and local
// storage file.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Product{}, &models.Category{}, &models.Order{},
		&models.Banner{}, &models.Review{}, &models.SiteSettings{},
		&models.AdminUser{},
	)
	require.NoError(t, err)

	local, err := localstore.Open(filepath.Join(t.TempDir(), "local.json"))
	require.NoError(t, err)

	productRepo := repositories.NewGORMProductRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	bannerRepo := repositories.NewGORMBannerRepository(db)
	reviewRepo := repositories.NewGORMReviewRepository(db)
	settingsRepo := repositories.NewGORMSettingsRepository(db)
	userRepo := repositories.NewGORMAdminUserRepository(db)

	commerce := store.New(productRepo, categoryRepo, local, nil)
	commerce.Refresh()

	catalogService := services.NewCatalogService(productRepo, categoryRepo, commerce)
	orderService := services.NewOrderService(orderRepo, nil, local)
	contentService := services.NewContentService(bannerRepo, reviewRepo, settingsRepo, local)
	authService := services.NewAuthService(userRepo, "test_jwt_secret")

	require.NoError(t, authService.RegisterAdmin(&models.AdminUser{
		Email:    testAdminEmail,
		Password: testAdminPassword,
	}))

	uploader := storage.NewDiskStorage(t.TempDir(), "http://localhost:8080/uploads")

	productHandler := handlers.NewProductHandler(catalogService, commerce)
	categoryHandler := handlers.NewCategoryHandler(catalogService)
	cartHandler := handlers.NewCartHandler(commerce, catalogService)
	orderHandler := handlers.NewOrderHandler(orderService, contentService, commerce)
	contentHandler := handlers.NewContentHandler(contentService, uploader)
	authHandler := handlers.NewAuthHandler(authService)

	app := fiber.New()
	apiV1 := app.Group("/api/v1")

	productHandler.RegisterRoutes(apiV1)
	categoryHandler.RegisterRoutes(apiV1)
	cartHandler.RegisterRoutes(apiV1)
	orderHandler.RegisterRoutes(apiV1)
	contentHandler.RegisterRoutes(apiV1)
	authHandler.RegisterRoutes(apiV1)

	admin := apiV1.Group("/admin", middleware.AuthRequired(authService))
	productHandler.RegisterAdminRoutes(admin)
	categoryHandler.RegisterAdminRoutes(admin)
	orderHandler.RegisterAdminRoutes(admin)
	contentHandler.RegisterAdminRoutes(admin)

	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &parsed))
	}
	return resp, parsed
}

func login(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, body := doRequest(t, app, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
		"email":    testAdminEmail,
		"password": testAdminPassword,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func createProduct(t *testing.T, app *fiber.App, token string, p fiber.Map) string {
	t.Helper()
	resp, body := doRequest(t, app, http.MethodPost, "/api/v1/admin/products", token, p)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id, _ := body["id"].(string)
	require.NotEmpty(t, id)
	return id
}

func productBody(name string, price int, extra fiber.Map) fiber.Map {
	p := fiber.Map{
		"name":     name,
		"price":    price,
		"images":   []string{"https://cdn.example.com/img.jpg"},
		"category": "Anarkali",
		"sizes":    []string{"S", "M", "L"},
		"in_stock": true,
	}
	for k, v := range extra {
		p[k] = v
	}
	return p
}

func TestLogin(t *testing.T) {
	app := setupApp(t)

	resp, _ := doRequest(t, app, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
		"email":    testAdminEmail,
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body := doRequest(t, app, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
		"email":    testAdminEmail,
		"password": testAdminPassword,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["token"])
}

func TestAdminRoutesRequireToken(t *testing.T) {
	app := setupApp(t)

	resp, _ := doRequest(t, app, http.MethodPost, "/api/v1/admin/products", "", productBody("Chikankari Kurti", 1299, nil))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodGet, "/api/v1/admin/orders", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProductCreateDerivesDiscountAndShowsInListing(t *testing.T) {
	app := setupApp(t)
	token := login(t, app)

	id := createProduct(t, app, token, productBody("Anarkali Kurti", 1499, fiber.Map{
		"original_price": 2499,
		"discount":       7, // authored value is ignored and recomputed
	}))

	resp, body := doRequest(t, app, http.MethodGet, "/api/v1/products/"+id, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(40), body["discount"])
	assert.Equal(t, float64(2499), body["original_price"])

	// The admin write refreshed the storefront cache.
	resp, body = doRequest(t, app, http.MethodGet, "/api/v1/products", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	products, _ := body["products"].([]any)
	require.Len(t, products, 1)
	assert.Equal(t, false, body["loading"])
}

func TestProductCreateRequiresImage(t *testing.T) {
	app := setupApp(t)
	token := login(t, app)

	p := productBody("Imageless Kurti", 999, nil)
	p["images"] = []string{}
	resp, _ := doRequest(t, app, http.MethodPost, "/api/v1/admin/products", token, p)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProductListingFiltersAndSorts(t *testing.T) {
	app := setupApp(t)
	token := login(t, app)

	createProduct(t, app, token, productBody("Cotton Kurti", 899, fiber.Map{"category": "Straight", "fabric": "Cotton"}))
	createProduct(t, app, token, productBody("Silk Kurti", 2499, fiber.Map{"category": "Anarkali", "fabric": "Silk"}))
	createProduct(t, app, token, productBody("Rayon Kurti", 1299, fiber.Map{"category": "Anarkali", "fabric": "Rayon"}))
	soldOut := productBody("Sold Out Kurti", 499, nil)
	soldOut["in_stock"] = false
	createProduct(t, app, token, soldOut)

	listNames := func(query string) []string {
		resp, body := doRequest(t, app, http.MethodGet, "/api/v1/products"+query, "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		raw, _ := body["products"].([]any)
		names := make([]string, 0, len(raw))
		for _, item := range raw {
			names = append(names, item.(map[string]any)["name"].(string))
		}
		return names
	}

	// Out of stock never appears, whatever the filters say.
	assert.NotContains(t, listNames(""), "Sold Out Kurti")
	assert.NotContains(t, listNames("?price_max=500"), "Sold Out Kurti")

	assert.ElementsMatch(t, []string{"Silk Kurti", "Rayon Kurti"}, listNames("?category=Anarkali"))
	assert.Equal(t, []string{"Cotton Kurti"}, listNames("?fabric=Cotton"))
	assert.ElementsMatch(t, []string{"Cotton Kurti", "Rayon Kurti"}, listNames("?price_min=800&price_max=1299"))
	assert.Equal(t, []string{"Cotton Kurti", "Rayon Kurti", "Silk Kurti"}, listNames("?sort=price-low"))
	assert.Equal(t, []string{"Silk Kurti", "Rayon Kurti", "Cotton Kurti"}, listNames("?sort=price-high"))
}

func TestCartFlow(t *testing.T) {
	app := setupApp(t)
	token := login(t, app)
	id := createProduct(t, app, token, productBody("Anarkali Kurti", 1499, nil))

	// Unknown product is rejected.
	resp, _ := doRequest(t, app, http.MethodPost, "/api/v1/cart/items", "", fiber.Map{
		"product_id": "ghost", "size": "M", "quantity": 1,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Adding the same line twice merges quantities.
	resp, _ = doRequest(t, app, http.MethodPost, "/api/v1/cart/items", "", fiber.Map{
		"product_id": id, "size": "M", "quantity": 2,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, body := doRequest(t, app, http.MethodPost, "/api/v1/cart/items", "", fiber.Map{
		"product_id": id, "size": "M",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	items, _ := body["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, float64(3), body["count"])

	resp, body = doRequest(t, app, http.MethodGet, "/api/v1/cart", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1499*3), body["total"])

	// Setting quantity to zero removes the line.
	resp, body = doRequest(t, app, http.MethodPatch, "/api/v1/cart/items", "", fiber.Map{
		"product_id": id, "size": "M", "quantity": 0,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	items, _ = body["items"].([]any)
	assert.Empty(t, items)
}

func TestWishlistFlow(t *testing.T) {
	app := setupApp(t)
	token := login(t, app)
	id := createProduct(t, app, token, productBody("Anarkali Kurti", 1499, nil))

	resp, _ := doRequest(t, app, http.MethodPost, "/api/v1/wishlist/"+id, "", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, body := doRequest(t, app, http.MethodPost, "/api/v1/wishlist/"+id, "", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	items, _ := body["items"].([]any)
	assert.Len(t, items, 1) // duplicate add is a no-op

	resp, _ = doRequest(t, app, http.MethodPost, "/api/v1/wishlist/ghost", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = doRequest(t, app, http.MethodDelete, "/api/v1/wishlist/"+id, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	items, _ = body["items"].([]any)
	assert.Empty(t, items)
}

func checkoutBody() fiber.Map {
	return fiber.Map{
		"name":    "Priya Sharma",
		"phone":   "9876543210",
		"email":   "priya@example.com",
		"address": "12 MI Road, Jaipur, Rajasthan",
	}
}

func TestCheckout(t *testing.T) {
	app := setupApp(t)
	token := login(t, app)
	id := createProduct(t, app, token, productBody("Anarkali Kurti", 1499, nil))

	// An empty cart cannot be checked out.
	resp, _ := doRequest(t, app, http.MethodPost, "/api/v1/checkout", "", checkoutBody())
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodPost, "/api/v1/cart/items", "", fiber.Map{
		"product_id": id, "size": "M", "quantity": 2,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Missing address fails validation before any order is created.
	incomplete := checkoutBody()
	delete(incomplete, "address")
	resp, _ = doRequest(t, app, http.MethodPost, "/api/v1/checkout", "", incomplete)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body := doRequest(t, app, http.MethodPost, "/api/v1/checkout", "", checkoutBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	link, _ := body["whatsapp_link"].(string)
	assert.True(t, strings.HasPrefix(link, "https://wa.me/916376327343?text="))

	order, _ := body["order"].(map[string]any)
	require.NotNil(t, order)
	orderID, _ := order["id"].(string)
	assert.True(t, strings.HasPrefix(orderID, "ORD"))
	assert.Equal(t, "pending", order["status"])
	assert.Equal(t, float64(1499*2), order["total"])

	// Checkout empties the cart.
	resp, body = doRequest(t, app, http.MethodGet, "/api/v1/cart", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), body["count"])
}

func TestOrderStatusTransitions(t *testing.T) {
	app := setupApp(t)
	token := login(t, app)
	id := createProduct(t, app, token, productBody("Anarkali Kurti", 1499, nil))

	resp, _ := doRequest(t, app, http.MethodPost, "/api/v1/cart/items", "", fiber.Map{
		"product_id": id, "size": "M", "quantity": 1,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, body := doRequest(t, app, http.MethodPost, "/api/v1/checkout", "", checkoutBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	orderID := body["order"].(map[string]any)["id"].(string)

	setStatus := func(status string) int {
		resp, _ := doRequest(t, app, http.MethodPatch, "/api/v1/admin/orders/"+orderID+"/status", token, fiber.Map{
			"status": status,
		})
		return resp.StatusCode
	}

	assert.Equal(t, http.StatusBadRequest, setStatus("shipped")) // pending cannot skip to shipped
	assert.Equal(t, http.StatusOK, setStatus("confirmed"))
	assert.Equal(t, http.StatusBadRequest, setStatus("cancelled")) // only pending can be cancelled
	assert.Equal(t, http.StatusOK, setStatus("shipped"))
	assert.Equal(t, http.StatusOK, setStatus("delivered"))
	assert.Equal(t, http.StatusBadRequest, setStatus("confirmed")) // delivered is terminal

	resp, body = doRequest(t, app, http.MethodGet, "/api/v1/admin/orders/"+orderID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "delivered", body["status"])

	resp, _ = doRequest(t, app, http.MethodPatch, "/api/v1/admin/orders/ORD0/status", token, fiber.Map{"status": "confirmed"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCategoryCRUD(t *testing.T) {
	app := setupApp(t)
	token := login(t, app)

	resp, body := doRequest(t, app, http.MethodPost, "/api/v1/admin/categories", token, fiber.Map{
		"name":  "Festive Kurtis",
		"image": "https://cdn.example.com/festive.jpg",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id, _ := body["id"].(string)
	require.NotEmpty(t, id)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	listResp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var categories []map[string]any
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&categories))
	require.Len(t, categories, 1)
	assert.Equal(t, "Festive Kurtis", categories[0]["name"])

	resp, _ = doRequest(t, app, http.MethodDelete, "/api/v1/admin/categories/"+id, token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSettingsDefaultsAndUpdate(t *testing.T) {
	app := setupApp(t)
	token := login(t, app)

	resp, body := doRequest(t, app, http.MethodGet, "/api/v1/settings", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "916376327343", body["whatsapp_number"]) // shipped defaults

	resp, _ = doRequest(t, app, http.MethodPut, "/api/v1/admin/settings", token, fiber.Map{
		"whatsapp_number": "911234567890",
		"email":           "hello@fashionworld.in",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doRequest(t, app, http.MethodGet, "/api/v1/settings", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "911234567890", body["whatsapp_number"])
}
