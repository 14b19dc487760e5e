package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/kafka"
	"storefront/middleware"
	"storefront/models"
	"storefront/repository"
	"storefront/services"

	"github.com/gin-gonic/gin"
)

// fakeCartStore keeps carts in a map (no Redis in tests).
type fakeCartStore struct {
	carts map[string]*models.Cart
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{carts: map[string]*models.Cart{}}
}

func (f *fakeCartStore) GetCart(ctx context.Context, userID string) (*models.Cart, error) {
	cart, ok := f.carts[userID]
	if !ok {
		return nil, nil
	}
	clone := *cart
	clone.Items = append([]models.CartItem(nil), cart.Items...)
	return &clone, nil
}

func (f *fakeCartStore) SaveCart(ctx context.Context, cart *models.Cart) error {
	f.carts[cart.UserID] = cart
	return nil
}

func (f *fakeCartStore) DeleteCart(ctx context.Context, userID string) error {
	delete(f.carts, userID)
	return nil
}

type cartFixture struct {
	router  *gin.Engine
	carts   *fakeCartStore
	catalog *repository.CatalogRepository
	ledger  *repository.SalesRepository
}

func sessionFor(user models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.SessionKey, &services.Session{
			UserID:   user.ID,
			UserName: user.Name,
			Role:     user.Role,
		})
		c.Next()
	}
}

func newCartFixture(t *testing.T, user models.User) *cartFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog := repository.NewCatalogRepository([]models.Product{
		{ID: "p1", Name: "Watch", Price: 10.00, Stock: 5},
		{ID: "p2", Name: "Hoodie", Price: 59.00, Stock: 1},
	})
	ledger := repository.NewSalesRepository(nil)
	users := repository.NewUserRepository([]models.User{user})
	carts := newFakeCartStore()

	controller := NewCartController(
		carts,
		catalog,
		users,
		services.NewCartService(catalog, ledger),
		kafka.NewProducer("", ""),
		NewPersister(nil, catalog, ledger),
	)

	router := gin.New()
	group := router.Group("/cart")
	group.Use(sessionFor(user))
	{
		group.GET("", controller.GetCart)
		group.POST("/add", controller.AddItem)
		group.POST("/update", controller.UpdateItem)
		group.DELETE("/remove/:product_id", controller.RemoveItem)
		group.DELETE("/clear", controller.ClearCart)
		group.POST("/checkout", controller.Checkout)
	}

	return &cartFixture{router: router, carts: carts, catalog: catalog, ledger: ledger}
}

func (f *cartFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, req)
	return recorder
}

func regularUser() models.User {
	return models.User{ID: "user-1", Name: "John Doe", Role: models.RoleUser}
}

func TestGetCartEmpty(t *testing.T) {
	f := newCartFixture(t, regularUser())

	rec := f.do(t, http.MethodGet, "/cart", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var cart models.Cart
	if err := json.Unmarshal(rec.Body.Bytes(), &cart); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if len(cart.Items) != 0 || cart.UserID != "user-1" {
		t.Fatalf("unexpected cart: %+v", cart)
	}
}

func TestAddItemAccumulates(t *testing.T) {
	f := newCartFixture(t, regularUser())

	f.do(t, http.MethodPost, "/cart/add", gin.H{"product_id": "p1"})
	rec := f.do(t, http.MethodPost, "/cart/add", gin.H{"product_id": "p1"})

	var cart models.Cart
	_ = json.Unmarshal(rec.Body.Bytes(), &cart)
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %+v", cart.Items)
	}
}

func TestAddItemUnknownProduct(t *testing.T) {
	f := newCartFixture(t, regularUser())

	rec := f.do(t, http.MethodPost, "/cart/add", gin.H{"product_id": "p99"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUpdateItemFloorsAtOne(t *testing.T) {
	f := newCartFixture(t, regularUser())

	f.do(t, http.MethodPost, "/cart/add", gin.H{"product_id": "p1"})
	rec := f.do(t, http.MethodPost, "/cart/update", gin.H{"product_id": "p1", "delta": -5})

	var cart models.Cart
	_ = json.Unmarshal(rec.Body.Bytes(), &cart)
	if cart.Items[0].Quantity != 1 {
		t.Fatalf("expected quantity floored at 1, got %d", cart.Items[0].Quantity)
	}
}

func TestRemoveItemUnknownIDKeepsCart(t *testing.T) {
	f := newCartFixture(t, regularUser())

	f.do(t, http.MethodPost, "/cart/add", gin.H{"product_id": "p1"})
	rec := f.do(t, http.MethodDelete, "/cart/remove/p99", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var cart models.Cart
	_ = json.Unmarshal(rec.Body.Bytes(), &cart)
	if len(cart.Items) != 1 {
		t.Fatalf("cart changed by removing unknown id: %+v", cart.Items)
	}
}

func TestCheckoutHappyPathOverHTTP(t *testing.T) {
	f := newCartFixture(t, regularUser())

	f.do(t, http.MethodPost, "/cart/add", gin.H{"product_id": "p1"})
	f.do(t, http.MethodPost, "/cart/add", gin.H{"product_id": "p1"})

	rec := f.do(t, http.MethodPost, "/cart/checkout", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Sale models.Sale `json:"sale"`
		Cart models.Cart `json:"cart"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Sale.TotalAmount != 20.00 {
		t.Fatalf("expected total 20.00, got %.2f", resp.Sale.TotalAmount)
	}
	if len(resp.Cart.Items) != 0 {
		t.Fatalf("expected emptied cart, got %+v", resp.Cart.Items)
	}

	p1, _ := f.catalog.Get("p1")
	if p1.Stock != 3 {
		t.Fatalf("expected stock 3, got %d", p1.Stock)
	}
	if len(f.ledger.List()) != 1 {
		t.Fatalf("sale not appended to ledger")
	}
	if cart, _ := f.carts.GetCart(context.Background(), "user-1"); cart != nil {
		t.Fatalf("stored cart should be deleted after checkout")
	}
}

func TestCheckoutEmptyCartOverHTTP(t *testing.T) {
	f := newCartFixture(t, regularUser())

	rec := f.do(t, http.MethodPost, "/cart/checkout", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if len(f.ledger.List()) != 0 {
		t.Fatalf("ledger mutated on failed checkout")
	}
}

func TestCheckoutGuestForbidden(t *testing.T) {
	guest := models.User{ID: "guest-1", Name: "Guest", Role: models.RoleGuest}
	f := newCartFixture(t, guest)

	f.do(t, http.MethodPost, "/cart/add", gin.H{"product_id": "p1"})
	rec := f.do(t, http.MethodPost, "/cart/checkout", nil)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	p1, _ := f.catalog.Get("p1")
	if p1.Stock != 5 {
		t.Fatalf("stock changed on rejected checkout: %d", p1.Stock)
	}
}

func TestCheckoutOversellClampsOverHTTP(t *testing.T) {
	f := newCartFixture(t, regularUser())

	f.do(t, http.MethodPost, "/cart/add", gin.H{"product_id": "p2"})
	f.do(t, http.MethodPost, "/cart/update", gin.H{"product_id": "p2", "delta": 2})

	rec := f.do(t, http.MethodPost, "/cart/checkout", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	p2, _ := f.catalog.Get("p2")
	if p2.Stock != 0 {
		t.Fatalf("expected stock clamped at 0, got %d", p2.Stock)
	}
	sale := f.ledger.List()[0]
	if sale.Items[0].Quantity != 3 {
		t.Fatalf("sale line should record requested quantity 3, got %d", sale.Items[0].Quantity)
	}
}
