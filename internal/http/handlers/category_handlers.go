package handlers

import "net/http"

// GetCategoriesHandler godoc
// @Summary List categories for the category filter
// @Tags views
// @Produce json
// @Success 200 {object} CategoriesResponse
// @Router /categories [get]
func GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	var resp CategoriesResponse
	categories, err := store.Categories(r.Context())
	if err != nil {
		resp.ErrorMessage = err.Error()
	}
	resp.Categories = categories
	respond(w, http.StatusOK, resp)
}
