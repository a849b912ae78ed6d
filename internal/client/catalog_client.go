package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rogerio-castellano/apm-catalog/internal/models"
	"github.com/sirupsen/logrus"
)

// CatalogClient fetches the raw catalog from the backend web service.
type CatalogClient interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetSupplier(ctx context.Context, id int) (models.Supplier, error)
}

type httpCatalogClient struct {
	baseURL string
	http    *http.Client
	log     *logrus.Logger
}

// NewCatalogClient returns a client for the backend rooted at baseURL,
// e.g. http://localhost:8080/api.
func NewCatalogClient(baseURL string, timeout time.Duration, logger *logrus.Logger) CatalogClient {
	logger.Infof("CatalogClient: using backend %s", baseURL)
	return &httpCatalogClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     logger,
	}
}

func (c *httpCatalogClient) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.get(ctx, "/products", &products); err != nil {
		return nil, err
	}
	c.log.Debugf("CatalogClient: fetched %d products", len(products))
	return products, nil
}

func (c *httpCatalogClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.get(ctx, "/categories", &categories); err != nil {
		return nil, err
	}
	c.log.Debugf("CatalogClient: fetched %d categories", len(categories))
	return categories, nil
}

func (c *httpCatalogClient) GetSupplier(ctx context.Context, id int) (models.Supplier, error) {
	var supplier models.Supplier
	if err := c.get(ctx, "/suppliers/"+strconv.Itoa(id), &supplier); err != nil {
		return models.Supplier{}, err
	}
	return supplier, nil
}

type errorBody struct {
	Error string `json:"error"`
}

func (c *httpCatalogClient) get(ctx context.Context, path string, out any) error {
	url := c.baseURL + path
	c.log.Debugf("CatalogClient: GET %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &FetchError{Message: err.Error(), Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &FetchError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &FetchError{
			StatusCode: resp.StatusCode,
			Message:    readErrorMessage(resp),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &FetchError{Message: fmt.Sprintf("invalid response from %s: %v", path, err), Err: err}
	}
	return nil
}

// readErrorMessage extracts {"error": "..."} from the body, falling back to
// the raw body and then to the status text.
func readErrorMessage(resp *http.Response) string {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		return body.Error
	}
	if msg := strings.TrimSpace(string(raw)); msg != "" {
		return msg
	}
	return http.StatusText(resp.StatusCode)
}
