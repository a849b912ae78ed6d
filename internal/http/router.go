package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/rogerio-castellano/apm-catalog/docs"
	"github.com/rogerio-castellano/apm-catalog/internal/http/handlers"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(handlers.Logger()))
	r.Use(middleware.Recoverer)

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Post("/login", handlers.LoginHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", handlers.GetBackendProductsHandler)
		r.Get("/products/{id}", handlers.GetBackendProductByIDHandler)
		r.Get("/categories", handlers.GetBackendCategoriesHandler)
		r.Get("/categories/{id}", handlers.GetBackendCategoryByIDHandler)
		r.Get("/suppliers", handlers.GetBackendSuppliersHandler)
		r.Get("/suppliers/{id}", handlers.GetBackendSupplierByIDHandler)
	})

	r.Group(func(r chi.Router) {
		r.Use(RateLimitMiddleware)

		r.Get("/products", handlers.GetProductListHandler)
		r.Get("/products/alt", handlers.GetProductListAltHandler)
		r.Get("/products/selected", handlers.GetSelectedProductHandler)
		r.Post("/products/selected", handlers.SelectProductHandler)
		r.Get("/products/selected/stream", handlers.StreamSelectedProductHandler)
		r.Get("/categories", handlers.GetCategoriesHandler)
		r.Get("/metrics/dashboard", handlers.GetDashboardMetricsHandler)

		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware)
			r.Post("/products", handlers.AddProductHandler)
			r.Post("/products/import", handlers.ImportProductsHandler)
		})
	})

	return r
}
