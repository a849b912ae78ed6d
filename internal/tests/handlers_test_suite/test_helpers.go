package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rogerio-castellano/apm-catalog/internal/catalog"
	"github.com/rogerio-castellano/apm-catalog/internal/client"
	api "github.com/rogerio-castellano/apm-catalog/internal/http"
	handler "github.com/rogerio-castellano/apm-catalog/internal/http/handlers"
	rl "github.com/rogerio-castellano/apm-catalog/internal/http/rate_limiter"
	"github.com/rogerio-castellano/apm-catalog/internal/logging"
	"github.com/rogerio-castellano/apm-catalog/internal/models"
	"github.com/rogerio-castellano/apm-catalog/internal/repo"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"
)

var (
	token       string
	backend     *httptest.Server
	store       *catalog.Store
	productRepo *repo.InMemoryProductRepository
)

func init() {
	handler.SetLogger(logging.Discard())
	rl.Configure(rate.Inf, 0)
	setupTestRepos("secret")

	backend = httptest.NewServer(api.NewRouter())
	resetStore()

	var err error
	token, err = generateToken(api.NewRouter(), "editor", "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	productRepo = repo.NewInMemoryProductRepository(repo.SeedProducts()...)
	handler.SetProductRepo(productRepo)
	handler.SetCategoryRepo(repo.NewInMemoryCategoryRepository(repo.SeedCategories()...))
	handler.SetSupplierRepo(repo.NewInMemorySupplierRepository(repo.SeedSuppliers()...))

	userRepo := repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userRepo.CreateUser(models.User{
		Username:     "editor",
		PasswordHash: string(hash),
		Role:         "editor",
	})
}

// resetStore replaces the catalog store with a fresh one reading from the
// in-memory backend, dropping the selection and added products.
func resetStore() {
	if store != nil {
		store.Close()
	}
	productRepo.Reset(repo.SeedProducts()...)
	store = newStore(backend.URL + "/api")
	handler.SetCatalogStore(store)
}

func newStore(baseURL string) *catalog.Store {
	c := client.NewCatalogClient(baseURL, 2*time.Second, logging.Discard())
	return catalog.NewStore(c, nil, logging.Discard(), catalog.Options{PriceMarkup: 1.5, SupplierConcurrency: 4})
}

// useFailingBackend points the views at a backend that answers every call
// with 500 and {"error": message}.
func useFailingBackend(t *testing.T, message string) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(handler.ErrorResponse{Error: message})
	}))

	store.Close()
	store = newStore(failing.URL + "/api")
	handler.SetCatalogStore(store)

	t.Cleanup(func() {
		failing.Close()
		resetStore()
	})
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.UserLogin{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func addProduct(r http.Handler, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func selectProduct(r http.Handler, productID int) *httptest.ResponseRecorder {
	body, _ := json.Marshal(handler.SelectProductRequest{ProductID: productID})
	req := httptest.NewRequest(http.MethodPost, "/products/selected", bytes.NewReader(body))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	return serve(r, newRequest(http.MethodGet, path, nil))
}

func newRequest(method, path string, body []byte) *http.Request {
	return httptest.NewRequest(method, path, bytes.NewReader(body))
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func almostEqual(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
