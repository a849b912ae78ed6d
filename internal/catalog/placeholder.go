package catalog

import "github.com/rogerio-castellano/apm-catalog/internal/models"

// PlaceholderProduct is the record added when no product is supplied.
func PlaceholderProduct() models.Product {
	return models.Product{
		ID:              42,
		ProductName:     "Another One",
		ProductCode:     "TBX-0042",
		Description:     "Our new product",
		Price:           8.9,
		CategoryID:      3,
		QuantityInStock: 30,
	}
}
