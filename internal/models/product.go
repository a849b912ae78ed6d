package models

// Product represents a catalog entry as served by the backend.
type Product struct {
	ID              int     `json:"id"`
	ProductName     string  `json:"productName"`
	ProductCode     string  `json:"productCode"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	CategoryID      int     `json:"categoryId"`
	QuantityInStock int     `json:"quantityInStock"`
	SupplierIDs     []int   `json:"supplierIds,omitempty"`
}

// ProductView is a product joined with its category, priced for display.
type ProductView struct {
	Product
	CategoryName string   `json:"categoryName"`
	SearchKey    []string `json:"searchKey"`
}
