package repo

import (
	"errors"

	"github.com/rogerio-castellano/apm-catalog/internal/models"
)

// ProductRepository defines the backend's read access to products.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id int) (models.Product, error)
}

type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	GetByID(id int) (models.Category, error)
}

type SupplierRepository interface {
	GetAll() ([]models.Supplier, error)
	GetByID(id int) (models.Supplier, error)
}

var (
	// ErrProductNotFound is returned when a product is not found in the repository.
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrSupplierNotFound = errors.New("supplier not found")
)
