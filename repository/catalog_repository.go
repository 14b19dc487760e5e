package repository

import (
	"sync"

	"storefront/models"
)

// CatalogRepository is the in-memory CatalogStore. Products are kept in
// insertion order; all access goes through the lock.
type CatalogRepository struct {
	mu       sync.RWMutex
	products []models.Product
}

func NewCatalogRepository(seed []models.Product) *CatalogRepository {
	return &CatalogRepository{
		products: append([]models.Product(nil), seed...),
	}
}

func (r *CatalogRepository) List() []models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Product(nil), r.products...)
}

func (r *CatalogRepository) Get(id string) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

func (r *CatalogRepository) Create(p models.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = append(r.products, p)
}

func (r *CatalogRepository) Replace(id string, p models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == id {
			p.ID = id
			r.products[i] = p
			return nil
		}
	}
	return ErrNotFound
}

func (r *CatalogRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *CatalogRepository) ApplyStockDeltas(newStock map[string]int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if stock, ok := newStock[r.products[i].ID]; ok {
			r.products[i].Stock = stock
		}
	}
}

// ReplaceAll swaps the full product set, used when restoring a snapshot.
func (r *CatalogRepository) ReplaceAll(products []models.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = append([]models.Product(nil), products...)
}
