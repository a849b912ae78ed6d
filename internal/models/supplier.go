package models

type Supplier struct {
	ID           int     `json:"id"`
	SupplierName string  `json:"supplierName"`
	Cost         float64 `json:"cost"`
	MinQuantity  int     `json:"minQuantity"`
}
