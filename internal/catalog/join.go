package catalog

import (
	"errors"
	"fmt"

	"github.com/rogerio-castellano/apm-catalog/internal/models"
)

// ErrCategoryNotFound means a product references a category the backend
// does not know. It fails the whole derivation.
var ErrCategoryNotFound = errors.New("category not found")

// JoinCategories prices every product for display and resolves its
// category name. The input slice is not modified.
func JoinCategories(products []models.Product, categories []models.Category, markup float64) ([]models.ProductView, error) {
	names := make(map[int]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	views := make([]models.ProductView, 0, len(products))
	for _, p := range products {
		name, ok := names[p.CategoryID]
		if !ok {
			return nil, fmt.Errorf("product %d: %w: %d", p.ID, ErrCategoryNotFound, p.CategoryID)
		}
		views = append(views, toView(p, name, markup))
	}
	return views, nil
}

func toView(p models.Product, categoryName string, markup float64) models.ProductView {
	p.Price = p.Price * markup
	if p.SupplierIDs != nil {
		p.SupplierIDs = append([]int(nil), p.SupplierIDs...)
	}
	return models.ProductView{
		Product:      p,
		CategoryName: categoryName,
		SearchKey:    []string{p.ProductName},
	}
}

// FilterByCategory keeps the products of categoryID. Zero keeps everything.
func FilterByCategory(views []models.ProductView, categoryID int) []models.ProductView {
	if categoryID == 0 {
		return views
	}
	out := make([]models.ProductView, 0, len(views))
	for _, v := range views {
		if v.CategoryID == categoryID {
			out = append(out, v)
		}
	}
	return out
}

func findByID(views []models.ProductView, id int) (models.ProductView, bool) {
	for _, v := range views {
		if v.ID == id {
			return v, true
		}
	}
	return models.ProductView{}, false
}
