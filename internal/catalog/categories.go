package catalog

import (
	"context"
	"slices"

	"github.com/rogerio-castellano/apm-catalog/internal/models"
)

const categoriesKey = "categories"

// Categories returns every category. They are fetched once per process.
func (s *Store) Categories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.loadCategories(ctx)
	if err != nil {
		return []models.Category{}, s.fail("load categories", err)
	}
	return slices.Clone(categories), nil
}

func (s *Store) loadCategories(ctx context.Context) ([]models.Category, error) {
	return loadOnce(ctx, s, categoriesKey, &s.categories, s.client.ListCategories)
}

func categoryName(categories []models.Category, id int) (string, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c.Name, true
		}
	}
	return "", false
}
