package models

import "time"

// CartItem is a snapshot of a product at the time it entered the cart,
// plus the desired quantity. Quantity is always >= 1; a line at zero is
// removed from the cart instead.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Cart is session-scoped: it lives in Redis under the owning user's key
// and is never written into the catalog/ledger snapshot.
type Cart struct {
	UserID    string     `json:"user_id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}