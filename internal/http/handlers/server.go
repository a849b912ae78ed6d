package handlers

import (
	"github.com/rogerio-castellano/apm-catalog/internal/catalog"
	repo "github.com/rogerio-castellano/apm-catalog/internal/repo"
	"github.com/sirupsen/logrus"
)

var (
	productRepo  repo.ProductRepository
	categoryRepo repo.CategoryRepository
	supplierRepo repo.SupplierRepository
	userRepo     repo.UserRepository

	store  *catalog.Store
	logger = logrus.StandardLogger()
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetCategoryRepo(r repo.CategoryRepository) {
	categoryRepo = r
}

func SetSupplierRepo(r repo.SupplierRepository) {
	supplierRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

// SetCatalogStore sets the store behind the list and detail views.
func SetCatalogStore(s *catalog.Store) {
	store = s
}

func SetLogger(l *logrus.Logger) {
	logger = l
}

func Logger() *logrus.Logger {
	return logger
}
