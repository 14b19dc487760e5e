package services

import (
	"fmt"
	"math/rand"

	"storefront/models"
	"storefront/repository"

	"github.com/google/uuid"
)

// CatalogService handles admin inventory management.
type CatalogService struct {
	catalog repository.CatalogStore
}

func NewCatalogService(catalog repository.CatalogStore) *CatalogService {
	return &CatalogService{catalog: catalog}
}

func (s *CatalogService) ListProducts() []models.Product {
	return s.catalog.List()
}

func (s *CatalogService) GetProduct(id string) (models.Product, error) {
	return s.catalog.Get(id)
}

// CreateProduct fills in the defaults a new inventory entry starts with and
// inserts it.
func (s *CatalogService) CreateProduct(p models.Product) models.Product {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Category == "" {
		p.Category = "General"
	}
	if p.Image == "" {
		p.Image = fmt.Sprintf("https://picsum.photos/id/%d/400/400", rand.Intn(200))
	}
	if p.Stock == 0 {
		p.Stock = 10
	}
	s.catalog.Create(p)
	return p
}

func (s *CatalogService) UpdateProduct(id string, p models.Product) (models.Product, error) {
	if err := s.catalog.Replace(id, p); err != nil {
		return models.Product{}, err
	}
	p.ID = id
	return p, nil
}

func (s *CatalogService) DeleteProduct(id string) error {
	return s.catalog.Delete(id)
}
