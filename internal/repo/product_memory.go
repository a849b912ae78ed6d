package repo

import (
	"slices"
	"sync"

	"github.com/rogerio-castellano/apm-catalog/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
}

// NewInMemoryProductRepository creates a repository holding the given products.
func NewInMemoryProductRepository(products ...models.Product) *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: slices.Clone(products),
	}
}

// GetAll retrieves all products from the repository.
func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Product, len(r.products))
	for i, p := range r.products {
		p.SupplierIDs = slices.Clone(p.SupplierIDs)
		out[i] = p
	}
	return out, nil
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(id int) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			p.SupplierIDs = slices.Clone(p.SupplierIDs)
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Reset replaces the repository contents. Used by tests.
func (r *InMemoryProductRepository) Reset(products ...models.Product) {
	r.mu.Lock()
	r.products = slices.Clone(products)
	r.mu.Unlock()
}
