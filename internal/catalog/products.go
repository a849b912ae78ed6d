package catalog

import (
	"context"
	"fmt"
	"slices"

	"github.com/rogerio-castellano/apm-catalog/internal/models"
)

const productsKey = "products"

// ProductsWithCategory returns the backend products joined with their
// categories. On failure the result is empty and the error message is
// meant for display.
func (s *Store) ProductsWithCategory(ctx context.Context) ([]models.ProductView, error) {
	views, err := s.join(ctx, nil)
	if err != nil {
		return []models.ProductView{}, s.fail("load products", err)
	}
	return views, nil
}

// ProductsWithAdd is ProductsWithCategory followed by the products added
// through AddProduct, in insertion order.
func (s *Store) ProductsWithAdd(ctx context.Context) ([]models.ProductView, error) {
	views, err := s.join(ctx, s.inserted.Value())
	if err != nil {
		return []models.ProductView{}, s.fail("load products", err)
	}
	return views, nil
}

// ProductList returns the categories and the products of categoryID, both
// derived from one load so a failure is fetched and logged once. Zero means
// all categories.
func (s *Store) ProductList(ctx context.Context, categoryID int) ([]models.Category, []models.ProductView, error) {
	categories, err := s.loadCategories(ctx)
	if err != nil {
		return []models.Category{}, []models.ProductView{}, s.fail("load product list", err)
	}
	products, err := s.loadProducts(ctx)
	if err != nil {
		return slices.Clone(categories), []models.ProductView{}, s.fail("load product list", err)
	}

	views, err := s.joinWith(products, s.inserted.Value(), categories)
	if err != nil {
		return slices.Clone(categories), []models.ProductView{}, s.fail("load product list", err)
	}
	return slices.Clone(categories), FilterByCategory(views, categoryID), nil
}

// ProductsInCategory filters ProductsWithAdd by category. Zero means all.
func (s *Store) ProductsInCategory(ctx context.Context, categoryID int) ([]models.ProductView, error) {
	views, err := s.ProductsWithAdd(ctx)
	if err != nil {
		return views, err
	}
	return FilterByCategory(views, categoryID), nil
}

// AddProduct appends p to the inserted products, or the placeholder product
// when p is nil. Earlier snapshots of the list are left untouched.
func (s *Store) AddProduct(ctx context.Context, p *models.Product) (models.ProductView, error) {
	product := PlaceholderProduct()
	if p != nil {
		product = *p
		product.SupplierIDs = slices.Clone(p.SupplierIDs)
	}

	categories, err := s.loadCategories(ctx)
	if err != nil {
		return models.ProductView{}, s.fail("add product", err)
	}
	name, ok := categoryName(categories, product.CategoryID)
	if !ok {
		return models.ProductView{}, fmt.Errorf("product %d: %w: %d", product.ID, ErrCategoryNotFound, product.CategoryID)
	}

	s.inserted.Update(func(cur []models.Product) []models.Product {
		return append(slices.Clip(cur), product)
	})
	s.log.Infof("Store: added product %d (%s)", product.ID, product.ProductName)

	return toView(product, name, s.opts.PriceMarkup), nil
}

// Inserted returns the products added in this process.
func (s *Store) Inserted() []models.Product {
	return s.inserted.Value()
}

func (s *Store) loadProducts(ctx context.Context) ([]models.Product, error) {
	return loadOnce(ctx, s, productsKey, &s.products, s.client.ListProducts)
}

func (s *Store) join(ctx context.Context, extra []models.Product) ([]models.ProductView, error) {
	products, err := s.loadProducts(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.loadCategories(ctx)
	if err != nil {
		return nil, err
	}
	return s.joinWith(products, extra, categories)
}

func (s *Store) joinWith(products, extra []models.Product, categories []models.Category) ([]models.ProductView, error) {
	all := make([]models.Product, 0, len(products)+len(extra))
	all = append(all, products...)
	all = append(all, extra...)
	return JoinCategories(all, categories, s.opts.PriceMarkup)
}
