package repo

import "github.com/rogerio-castellano/apm-catalog/internal/models"

// Demo catalog served by the in-memory backend.

func SeedCategories() []models.Category {
	return []models.Category{
		{ID: 1, Name: "Garden"},
		{ID: 3, Name: "Toolbox"},
		{ID: 5, Name: "Gaming"},
	}
}

func SeedProducts() []models.Product {
	return []models.Product{
		{ID: 1, ProductName: "Leaf Rake", ProductCode: "GDN-0011", Description: "Leaf rake with 48-inch wooden handle", Price: 19.95, CategoryID: 1, QuantityInStock: 15, SupplierIDs: []int{1, 2}},
		{ID: 2, ProductName: "Garden Cart", ProductCode: "GDN-0023", Description: "15 gallon capacity rolling garden cart", Price: 32.99, CategoryID: 1, QuantityInStock: 2, SupplierIDs: []int{3, 4}},
		{ID: 5, ProductName: "Hammer", ProductCode: "TBX-0048", Description: "Curved claw steel hammer", Price: 8.9, CategoryID: 3, QuantityInStock: 8, SupplierIDs: []int{5, 6}},
		{ID: 8, ProductName: "Saw", ProductCode: "TBX-0022", Description: "15-inch steel blade hand saw", Price: 11.55, CategoryID: 3, QuantityInStock: 6, SupplierIDs: []int{7, 8}},
		{ID: 10, ProductName: "Video Game Controller", ProductCode: "GMG-0042", Description: "Standard two-button video game controller", Price: 35.95, CategoryID: 5, QuantityInStock: 12, SupplierIDs: []int{9, 10}},
	}
}

func SeedSuppliers() []models.Supplier {
	return []models.Supplier{
		{ID: 1, SupplierName: "Acme Gardening Supply", Cost: 16.95, MinQuantity: 12},
		{ID: 2, SupplierName: "Standard Gardening", Cost: 15.95, MinQuantity: 24},
		{ID: 3, SupplierName: "Acme General Supply", Cost: 25, MinQuantity: 2},
		{ID: 4, SupplierName: "Standard General Supply", Cost: 28, MinQuantity: 1},
		{ID: 5, SupplierName: "Acme Tool Supply", Cost: 4, MinQuantity: 12},
		{ID: 6, SupplierName: "Tools Are Us", Cost: 4.99, MinQuantity: 24},
		{ID: 7, SupplierName: "Acme Tool Supply", Cost: 8, MinQuantity: 12},
		{ID: 8, SupplierName: "Tools Are Us", Cost: 7.5, MinQuantity: 24},
		{ID: 9, SupplierName: "Acme Game Supply", Cost: 24.95, MinQuantity: 12},
		{ID: 10, SupplierName: "Standard Game Supply", Cost: 25, MinQuantity: 24},
	}
}
