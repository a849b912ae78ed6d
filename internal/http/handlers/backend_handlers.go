package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	repo "github.com/rogerio-castellano/apm-catalog/internal/repo"
)

// The /api handlers stand in for the catalog web service the views read
// from. They report failures with real status codes and {"error": "..."}.

// GetBackendProductsHandler godoc
// @Summary List raw products
// @Tags backend
// @Produce json
// @Success 200 {array} models.Product
// @Failure 500 {object} ErrorResponse
// @Router /api/products [get]
func GetBackendProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.GetAll()
	if err != nil {
		logger.WithError(err).Error("Backend: could not fetch products")
		writeError(w, http.StatusInternalServerError, "could not fetch products")
		return
	}
	respond(w, http.StatusOK, products)
}

// GetBackendProductByIDHandler godoc
// @Summary Get a raw product by ID
// @Tags backend
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Product
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/products/{id} [get]
func GetBackendProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	product, err := productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		logger.WithError(err).Errorf("Backend: could not fetch product %d", id)
		writeError(w, http.StatusInternalServerError, "could not fetch product")
		return
	}
	respond(w, http.StatusOK, product)
}

// GetBackendCategoriesHandler godoc
// @Summary List product categories
// @Tags backend
// @Produce json
// @Success 200 {array} models.Category
// @Failure 500 {object} ErrorResponse
// @Router /api/categories [get]
func GetBackendCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := categoryRepo.GetAll()
	if err != nil {
		logger.WithError(err).Error("Backend: could not fetch categories")
		writeError(w, http.StatusInternalServerError, "could not fetch categories")
		return
	}
	respond(w, http.StatusOK, categories)
}

// GetBackendCategoryByIDHandler godoc
// @Summary Get a category by ID
// @Tags backend
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} models.Category
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/categories/{id} [get]
func GetBackendCategoryByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category ID")
		return
	}

	category, err := categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrCategoryNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		logger.WithError(err).Errorf("Backend: could not fetch category %d", id)
		writeError(w, http.StatusInternalServerError, "could not fetch category")
		return
	}
	respond(w, http.StatusOK, category)
}

// GetBackendSuppliersHandler godoc
// @Summary List suppliers
// @Tags backend
// @Produce json
// @Success 200 {array} models.Supplier
// @Failure 500 {object} ErrorResponse
// @Router /api/suppliers [get]
func GetBackendSuppliersHandler(w http.ResponseWriter, r *http.Request) {
	suppliers, err := supplierRepo.GetAll()
	if err != nil {
		logger.WithError(err).Error("Backend: could not fetch suppliers")
		writeError(w, http.StatusInternalServerError, "could not fetch suppliers")
		return
	}
	respond(w, http.StatusOK, suppliers)
}

// GetBackendSupplierByIDHandler godoc
// @Summary Get a supplier by ID
// @Tags backend
// @Produce json
// @Param id path int true "Supplier ID"
// @Success 200 {object} models.Supplier
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/suppliers/{id} [get]
func GetBackendSupplierByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid supplier ID")
		return
	}

	supplier, err := supplierRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrSupplierNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		logger.WithError(err).Errorf("Backend: could not fetch supplier %d", id)
		writeError(w, http.StatusInternalServerError, "could not fetch supplier")
		return
	}
	respond(w, http.StatusOK, supplier)
}
