package repository

import (
	"context"
	"errors"

	"storefront/models"
)

// ErrNotFound is returned when a mutation references a product or sale
// identifier that does not exist in the store.
var ErrNotFound = errors.New("record not found")

// CatalogStore holds the current set of sellable products. Implementations
// must be safe for concurrent use.
type CatalogStore interface {
	List() []models.Product
	Get(id string) (models.Product, error)
	Create(p models.Product)
	Replace(id string, p models.Product) error
	Delete(id string) error
	// ApplyStockDeltas sets the stock level for every listed product id in
	// one call so a checkout's decrements are observed together.
	ApplyStockDeltas(newStock map[string]int)
}

// SalesLedger is the append-only history of completed sales.
type SalesLedger interface {
	Append(s models.Sale)
	List() []models.Sale
}

// UserDirectory is the fixed set of known users. Users are created at
// process start from seed data, never by the storefront itself.
type UserDirectory interface {
	List() []models.User
	Get(id string) (models.User, error)
	FindByRole(role models.Role) (models.User, error)
	TouchLastActive(id string) error
}

// CartStore holds session-scoped carts keyed by user. A missing cart is
// (nil, nil), not an error.
type CartStore interface {
	GetCart(ctx context.Context, userID string) (*models.Cart, error)
	SaveCart(ctx context.Context, cart *models.Cart) error
	DeleteCart(ctx context.Context, userID string) error
}
