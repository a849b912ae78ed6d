package models

type CategoryCount struct {
	CategoryID   int    `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	ProductCount int    `json:"productCount"`
}

// CatalogMetrics summarizes the current derived catalog for the dashboard.
type CatalogMetrics struct {
	TotalProducts     int             `json:"totalProducts"`
	InsertedProducts  int             `json:"insertedProducts"`
	TotalCategories   int             `json:"totalCategories"`
	OutOfStockCount   int             `json:"outOfStockCount"`
	SelectedProductID int             `json:"selectedProductId"`
	ByCategory        []CategoryCount `json:"byCategory"`
}
