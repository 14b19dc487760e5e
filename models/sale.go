package models

import "time"

// Sale is an immutable record of a completed checkout. Once appended to
// the ledger its items and total are never mutated.
type Sale struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	UserName    string     `json:"userName"`
	Items       []CartItem `json:"items"`
	TotalAmount float64    `json:"totalAmount"`
	Date        time.Time  `json:"date"`
}

// SalesStats is the headline summary shown on the admin financials view.
type SalesStats struct {
	TotalRevenue  float64 `json:"total_revenue"`
	TotalOrders   int     `json:"total_orders"`
	AvgOrderValue float64 `json:"avg_order_value"`
	TopProduct    string  `json:"top_product"`
}

// RevenuePoint is one bucket of a grouped revenue series (per day or per user).
type RevenuePoint struct {
	Label   string  `json:"label"`
	Revenue float64 `json:"revenue"`
}
