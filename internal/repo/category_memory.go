package repo

import (
	"slices"

	"github.com/rogerio-castellano/apm-catalog/internal/models"
)

type InMemoryCategoryRepository struct {
	categories []models.Category
}

func NewInMemoryCategoryRepository(categories ...models.Category) *InMemoryCategoryRepository {
	return &InMemoryCategoryRepository{categories: slices.Clone(categories)}
}

func (r *InMemoryCategoryRepository) GetAll() ([]models.Category, error) {
	return slices.Clone(r.categories), nil
}

func (r *InMemoryCategoryRepository) GetByID(id int) (models.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Category{}, ErrCategoryNotFound
}
