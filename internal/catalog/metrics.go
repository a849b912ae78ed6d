package catalog

import (
	"context"

	"github.com/rogerio-castellano/apm-catalog/internal/models"
)

// Metrics summarizes the derived catalog for the dashboard.
func (s *Store) Metrics(ctx context.Context) (models.CatalogMetrics, error) {
	m := models.CatalogMetrics{
		SelectedProductID: s.selected.Value(),
		InsertedProducts:  len(s.inserted.Value()),
		ByCategory:        []models.CategoryCount{},
	}

	views, err := s.ProductsWithAdd(ctx)
	if err != nil {
		return m, err
	}
	categories, err := s.Categories(ctx)
	if err != nil {
		return m, err
	}

	m.TotalProducts = len(views)
	m.TotalCategories = len(categories)

	counts := make(map[int]int)
	for _, v := range views {
		if v.QuantityInStock <= 0 {
			m.OutOfStockCount++
		}
		counts[v.CategoryID]++
	}
	for _, c := range categories {
		m.ByCategory = append(m.ByCategory, models.CategoryCount{
			CategoryID:   c.ID,
			CategoryName: c.Name,
			ProductCount: counts[c.ID],
		})
	}
	return m, nil
}
