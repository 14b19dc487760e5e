package repository

import (
	"sync"

	"storefront/models"
)

// SalesRepository is the in-memory append-only SalesLedger.
type SalesRepository struct {
	mu    sync.RWMutex
	sales []models.Sale
}

func NewSalesRepository(seed []models.Sale) *SalesRepository {
	return &SalesRepository{
		sales: append([]models.Sale(nil), seed...),
	}
}

func (r *SalesRepository) Append(s models.Sale) {
	r.mu.Lock()
	defer r.mu.Unlock()
	// Copy the line items so later cart mutations can't reach the ledger.
	s.Items = append([]models.CartItem(nil), s.Items...)
	r.sales = append(r.sales, s)
}

func (r *SalesRepository) List() []models.Sale {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Sale(nil), r.sales...)
}

// ReplaceAll swaps the full sales history, used when restoring a snapshot.
func (r *SalesRepository) ReplaceAll(sales []models.Sale) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sales = append([]models.Sale(nil), sales...)
}
