package handlers

import "github.com/rogerio-castellano/apm-catalog/internal/models"

type ErrorResponse struct {
	Error string `json:"error"`
}

// ProductRequest is a product sent by an editor. An empty body stands for
// the placeholder product.
type ProductRequest struct {
	ID              int     `json:"id"`
	ProductName     string  `json:"productName"`
	ProductCode     string  `json:"productCode"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	CategoryID      int     `json:"categoryId"`
	QuantityInStock int     `json:"quantityInStock"`
	SupplierIDs     []int   `json:"supplierIds"`
}

func (p ProductRequest) toModel() models.Product {
	return models.Product{
		ID:              p.ID,
		ProductName:     p.ProductName,
		ProductCode:     p.ProductCode,
		Description:     p.Description,
		Price:           p.Price,
		CategoryID:      p.CategoryID,
		QuantityInStock: p.QuantityInStock,
		SupplierIDs:     p.SupplierIDs,
	}
}

type ProductListResponse struct {
	PageTitle    string               `json:"pageTitle"`
	ErrorMessage string               `json:"errorMessage"`
	Categories   []models.Category    `json:"categories"`
	Products     []models.ProductView `json:"products"`
}

type ProductListAltResponse struct {
	PageTitle         string               `json:"pageTitle"`
	ErrorMessage      string               `json:"errorMessage"`
	SelectedProductID int                  `json:"selectedProductId"`
	Products          []models.ProductView `json:"products"`
}

type ProductDetailResponse struct {
	PageTitle    string              `json:"pageTitle"`
	ErrorMessage string              `json:"errorMessage"`
	Product      *models.ProductView `json:"product"`
	Suppliers    []models.Supplier   `json:"suppliers"`
}

type SelectProductRequest struct {
	ProductID int `json:"productId"`
}

type CategoriesResponse struct {
	ErrorMessage string            `json:"errorMessage"`
	Categories   []models.Category `json:"categories"`
}

type UserLogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type ImportProductsResult struct {
	ImportedProductsCount int                      `json:"imported"`
	Errors                []ProductValidationError `json:"errors"`
}
