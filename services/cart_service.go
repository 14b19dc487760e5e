package services

import (
	"errors"
	"sync"
	"time"

	"storefront/models"
	"storefront/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrEmptyCart means checkout was attempted with zero cart lines.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrNoActingUser means checkout was attempted without an
	// authenticated, non-guest session.
	ErrNoActingUser = errors.New("no acting user")
)

// AddToCart inserts a new line for the product with quantity 1, or bumps an
// existing line by 1. Either way the line's product snapshot is refreshed to
// the catalog's current values. Stock is not checked here; only checkout
// enforces it.
func AddToCart(cart *models.Cart, product models.Product) *models.Cart {
	next := cloneCart(cart)
	for i := range next.Items {
		if next.Items[i].ID == product.ID {
			quantity := next.Items[i].Quantity + 1
			next.Items[i] = models.CartItem{Product: product, Quantity: quantity}
			return next
		}
	}
	next.Items = append(next.Items, models.CartItem{Product: product, Quantity: 1})
	return next
}

// UpdateQuantity adjusts a line's quantity by delta, flooring at 1. A line
// can only leave the cart through RemoveFromCart. Unknown product ids leave
// the cart unchanged.
func UpdateQuantity(cart *models.Cart, productID string, delta int) *models.Cart {
	next := cloneCart(cart)
	for i := range next.Items {
		if next.Items[i].ID == productID {
			quantity := next.Items[i].Quantity + delta
			if quantity < 1 {
				quantity = 1
			}
			next.Items[i].Quantity = quantity
			break
		}
	}
	return next
}

// RemoveFromCart drops the matching line entirely. Removing an id that is
// not in the cart is a no-op.
func RemoveFromCart(cart *models.Cart, productID string) *models.Cart {
	next := cloneCart(cart)
	items := next.Items[:0]
	for _, item := range next.Items {
		if item.ID != productID {
			items = append(items, item)
		}
	}
	next.Items = items
	return next
}

func cloneCart(cart *models.Cart) *models.Cart {
	if cart == nil {
		return &models.Cart{Items: []models.CartItem{}}
	}
	return &models.Cart{
		UserID:    cart.UserID,
		Items:     append([]models.CartItem(nil), cart.Items...),
		UpdatedAt: cart.UpdatedAt,
	}
}

// CartService runs the checkout transaction against a catalog and a ledger.
type CartService struct {
	catalog repository.CatalogStore
	ledger  repository.SalesLedger

	// checkoutMu serializes checkouts so two concurrent buyers cannot both
	// read stale stock: the stock decrement and the sale append are
	// observed together.
	checkoutMu sync.Mutex
}

func NewCartService(catalog repository.CatalogStore, ledger repository.SalesLedger) *CartService {
	return &CartService{catalog: catalog, ledger: ledger}
}

// Checkout converts the cart into an immutable sale and decrements catalog
// stock, clamped at zero. Line totals use the prices captured on the cart
// lines, which may lag catalog price edits made after the item was added.
// On failure nothing is mutated.
func (s *CartService) Checkout(cart *models.Cart, actingUser *models.User) (*models.Sale, error) {
	if actingUser == nil || !actingUser.Role.CanPurchase() {
		return nil, ErrNoActingUser
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	s.checkoutMu.Lock()
	defer s.checkoutMu.Unlock()

	totalAmount := 0.0
	for _, item := range cart.Items {
		totalAmount += item.Price * float64(item.Quantity)
	}

	sale := models.Sale{
		ID:          uuid.NewString(),
		UserID:      actingUser.ID,
		UserName:    actingUser.Name,
		Items:       append([]models.CartItem(nil), cart.Items...),
		TotalAmount: totalAmount,
		Date:        time.Now().UTC(),
	}

	newStock := make(map[string]int, len(cart.Items))
	for _, item := range cart.Items {
		product, err := s.catalog.Get(item.ID)
		if err != nil {
			// Product was deleted after it entered the cart; the sale
			// line still stands, there is just no stock to decrement.
			continue
		}
		stock := product.Stock - item.Quantity
		if stock < 0 {
			stock = 0
		}
		newStock[product.ID] = stock
	}

	s.catalog.ApplyStockDeltas(newStock)
	s.ledger.Append(sale)

	zap.L().Info("Checkout completed",
		zap.String("sale_id", sale.ID),
		zap.String("user_id", actingUser.ID),
		zap.Int("lines", len(sale.Items)),
		zap.Float64("total", sale.TotalAmount),
	)

	return &sale, nil
}
