package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/rogerio-castellano/apm-catalog/internal/auth"
	"github.com/rogerio-castellano/apm-catalog/internal/catalog"
	"github.com/rogerio-castellano/apm-catalog/internal/models"
	"github.com/rogerio-castellano/apm-catalog/internal/stream"
)

// Views never fail because the backend did: they answer 200 with empty
// collections and the failure text in errorMessage.

// GetProductListHandler godoc
// @Summary Product list view
// @Description Products joined with their category, optionally filtered by category
// @Tags views
// @Produce json
// @Param categoryId query int false "Category ID, 0 for all"
// @Success 200 {object} ProductListResponse
// @Failure 400 {object} ErrorResponse
// @Router /products [get]
func GetProductListHandler(w http.ResponseWriter, r *http.Request) {
	categoryID := 0
	if s := r.URL.Query().Get("categoryId"); s != "" {
		id, err := strconv.Atoi(s)
		if err != nil || id < 0 {
			writeError(w, http.StatusBadRequest, "invalid category ID")
			return
		}
		categoryID = id
	}

	resp := ProductListResponse{PageTitle: "Product List"}

	categories, products, err := store.ProductList(r.Context(), categoryID)
	if err != nil {
		resp.ErrorMessage = err.Error()
	}

	resp.Categories = categories
	resp.Products = products
	respond(w, http.StatusOK, resp)
}

// GetProductListAltHandler godoc
// @Summary Product list for the master/detail page
// @Tags views
// @Produce json
// @Success 200 {object} ProductListAltResponse
// @Router /products/alt [get]
func GetProductListAltHandler(w http.ResponseWriter, r *http.Request) {
	resp := ProductListAltResponse{
		PageTitle:         "Products",
		SelectedProductID: store.SelectedProductID(),
	}

	products, err := store.ProductsWithCategory(r.Context())
	if err != nil {
		resp.ErrorMessage = err.Error()
	}
	resp.Products = products
	respond(w, http.StatusOK, resp)
}

// GetSelectedProductHandler godoc
// @Summary Product detail view
// @Description The selected product with its suppliers
// @Tags views
// @Produce json
// @Success 200 {object} ProductDetailResponse
// @Router /products/selected [get]
func GetSelectedProductHandler(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, detailResponse(store.Detail(r.Context())))
}

// SelectProductHandler godoc
// @Summary Select a product
// @Description Records the selected product and returns its detail view. 0 clears the selection.
// @Tags views
// @Accept json
// @Produce json
// @Param selection body SelectProductRequest true "Product to select"
// @Success 200 {object} ProductDetailResponse
// @Failure 400 {object} ErrorResponse
// @Router /products/selected [post]
func SelectProductHandler(w http.ResponseWriter, r *http.Request) {
	var req SelectProductRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}
	if req.ProductID < 0 {
		writeError(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	store.SelectProduct(req.ProductID)
	respond(w, http.StatusOK, detailResponse(store.Detail(r.Context())))
}

// StreamSelectedProductHandler godoc
// @Summary Stream the product detail view
// @Description Server-sent events, one data frame per change of the selection or of the added products
// @Tags views
// @Produce text/event-stream
// @Success 200 {object} ProductDetailResponse
// @Router /products/selected/stream [get]
func StreamSelectedProductHandler(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ctx := r.Context()
	for resp := range stream.Map(ctx, store.WatchSelected(ctx), detailResponse) {
		data, err := json.Marshal(resp)
		if err != nil {
			logger.WithError(err).Error("Views: could not encode detail view")
			return
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
			return
		}
		flusher.Flush()
	}
}

// AddProductHandler godoc
// @Summary Add a product
// @Description Appends a product to the list. An empty body adds the placeholder product.
// @Tags views
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest false "Product to add"
// @Success 201 {object} models.ProductView
// @Failure 400 {array} ProductValidationError
// @Failure 401 {string} string "Unauthorized"
// @Failure 502 {object} ErrorResponse
// @Router /products [post]
func AddProductHandler(w http.ResponseWriter, r *http.Request) {
	var product *models.Product

	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		if !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "invalid input")
			return
		}
	} else {
		if validationErrors := validateProduct(req); len(validationErrors) > 0 {
			respond(w, http.StatusBadRequest, validationErrors)
			return
		}
		p := req.toModel()
		product = &p
	}

	view, err := store.AddProduct(r.Context(), product)
	if err != nil {
		if errors.Is(err, catalog.ErrCategoryNotFound) {
			respond(w, http.StatusBadRequest, []ProductValidationError{
				{Field: "categoryId", Description: err.Error()},
			})
			return
		}
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	logger.Infof("Views: %s added product %d", auth.Username(r.Context()), view.ID)
	respond(w, http.StatusCreated, view)
}

func detailResponse(view catalog.SelectedView) ProductDetailResponse {
	resp := ProductDetailResponse{
		PageTitle:    "Product Detail",
		ErrorMessage: view.ErrorMessage,
		Product:      view.Product,
		Suppliers:    view.Suppliers,
	}
	if view.Product != nil {
		resp.PageTitle = "Product Detail for: " + view.Product.ProductName
	}
	return resp
}
