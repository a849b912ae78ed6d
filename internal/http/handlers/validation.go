package handlers

import (
	"strings"
)

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(p ProductRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if p.ID <= 0 {
		errs = append(errs, ProductValidationError{Field: "id", Description: "Id must be greater than zero"})
	}
	if strings.TrimSpace(p.ProductName) == "" {
		errs = append(errs, ProductValidationError{Field: "productName", Description: "Product name is required"})
	}
	if strings.TrimSpace(p.ProductCode) == "" {
		errs = append(errs, ProductValidationError{Field: "productCode", Description: "Product code is required"})
	}
	if p.Price <= 0 {
		errs = append(errs, ProductValidationError{Field: "price", Description: "Price must be greater than zero"})
	}
	if p.CategoryID <= 0 {
		errs = append(errs, ProductValidationError{Field: "categoryId", Description: "Category is required"})
	}
	if p.QuantityInStock < 0 {
		errs = append(errs, ProductValidationError{Field: "quantityInStock", Description: "Quantity cannot be negative"})
	}
	return errs
}
