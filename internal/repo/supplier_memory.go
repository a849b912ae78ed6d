package repo

import (
	"slices"

	"github.com/rogerio-castellano/apm-catalog/internal/models"
)

type InMemorySupplierRepository struct {
	suppliers []models.Supplier
}

func NewInMemorySupplierRepository(suppliers ...models.Supplier) *InMemorySupplierRepository {
	return &InMemorySupplierRepository{suppliers: slices.Clone(suppliers)}
}

func (r *InMemorySupplierRepository) GetAll() ([]models.Supplier, error) {
	return slices.Clone(r.suppliers), nil
}

func (r *InMemorySupplierRepository) GetByID(id int) (models.Supplier, error) {
	for _, s := range r.suppliers {
		if s.ID == id {
			return s, nil
		}
	}
	return models.Supplier{}, ErrSupplierNotFound
}
