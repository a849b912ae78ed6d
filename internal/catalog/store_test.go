package catalog

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rogerio-castellano/apm-catalog/internal/client"
	"github.com/rogerio-castellano/apm-catalog/internal/logging"
	"github.com/rogerio-castellano/apm-catalog/internal/models"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

type fakeClient struct {
	products      []models.Product
	categories    []models.Category
	suppliers     map[int]models.Supplier
	productErr    error
	categoryErr   error
	supplierDelay time.Duration

	productCalls  atomic.Int32
	categoryCalls atomic.Int32
	supplierCalls atomic.Int32
}

func (f *fakeClient) ListProducts(ctx context.Context) ([]models.Product, error) {
	f.productCalls.Add(1)
	if f.productErr != nil {
		return nil, f.productErr
	}
	return f.products, nil
}

func (f *fakeClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	f.categoryCalls.Add(1)
	if f.categoryErr != nil {
		return nil, f.categoryErr
	}
	return f.categories, nil
}

func (f *fakeClient) GetSupplier(ctx context.Context, id int) (models.Supplier, error) {
	f.supplierCalls.Add(1)
	if f.supplierDelay > 0 {
		select {
		case <-time.After(f.supplierDelay):
		case <-ctx.Done():
			return models.Supplier{}, ctx.Err()
		}
	}
	s, ok := f.suppliers[id]
	if !ok {
		return models.Supplier{}, &client.FetchError{StatusCode: 404, Message: "supplier not found"}
	}
	return s, nil
}

type memoryCache struct {
	mu   sync.Mutex
	data map[string]any
}

func (c *memoryCache) GetJSON(ctx context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *[]models.Category:
		*d = v.([]models.Category)
	case *[]models.Product:
		*d = v.([]models.Product)
	case *models.Supplier:
		*d = v.(models.Supplier)
	default:
		return false, fmt.Errorf("unexpected type %T", dst)
	}
	return true, nil
}

func (c *memoryCache) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = v
	return nil
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		products: []models.Product{
			{ID: 1, ProductName: "Leaf Rake", ProductCode: "GDN-0011", Price: 10, CategoryID: 1, QuantityInStock: 15, SupplierIDs: []int{1, 2}},
			{ID: 5, ProductName: "Hammer", ProductCode: "TBX-0048", Price: 8, CategoryID: 3, QuantityInStock: 0, SupplierIDs: []int{2}},
		},
		categories: []models.Category{
			{ID: 1, Name: "Garden"},
			{ID: 3, Name: "Toolbox"},
		},
		suppliers: map[int]models.Supplier{
			1: {ID: 1, SupplierName: "Acme Gardening Supply"},
			2: {ID: 2, SupplierName: "Standard Gardening"},
		},
	}
}

func newTestStore(c client.CatalogClient) *Store {
	s := NewStore(c, nil, logging.Discard(), Options{PriceMarkup: 1.5, SupplierConcurrency: 2})
	return s
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestProductsWithCategory_JoinsAndPrices(t *testing.T) {
	s := newTestStore(newFakeClient())

	views, err := s.ProductsWithCategory(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 products, got %d", len(views))
	}

	tests := []struct {
		idx          int
		price        float64
		categoryName string
		searchKey    string
	}{
		{idx: 0, price: 15, categoryName: "Garden", searchKey: "Leaf Rake"},
		{idx: 1, price: 12, categoryName: "Toolbox", searchKey: "Hammer"},
	}
	for _, tt := range tests {
		v := views[tt.idx]
		if !almostEqual(v.Price, tt.price) {
			t.Errorf("product %d: expected price %v, got %v", v.ID, tt.price, v.Price)
		}
		if v.CategoryName != tt.categoryName {
			t.Errorf("product %d: expected category %q, got %q", v.ID, tt.categoryName, v.CategoryName)
		}
		if len(v.SearchKey) != 1 || v.SearchKey[0] != tt.searchKey {
			t.Errorf("product %d: expected search key [%s], got %v", v.ID, tt.searchKey, v.SearchKey)
		}
	}
}

func TestProductsWithCategory_DoesNotMutateFetchedProducts(t *testing.T) {
	fc := newFakeClient()
	s := newTestStore(fc)

	if _, err := s.ProductsWithCategory(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	views, _ := s.ProductsWithCategory(context.Background())

	if fc.products[0].Price != 10 {
		t.Errorf("expected source price 10, got %v", fc.products[0].Price)
	}
	if !almostEqual(views[0].Price, 15) {
		t.Errorf("expected markup applied once, got %v", views[0].Price)
	}
}

func TestProductsWithCategory_MissingCategoryFails(t *testing.T) {
	fc := newFakeClient()
	fc.products = append(fc.products, models.Product{ID: 9, ProductName: "Orphan", CategoryID: 77})
	s := newTestStore(fc)

	views, err := s.ProductsWithCategory(context.Background())
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
	if views == nil || len(views) != 0 {
		t.Errorf("expected empty non-nil result, got %v", views)
	}
}

func TestProductsWithCategory_FetchFailureYieldsEmptyAndMessage(t *testing.T) {
	fc := newFakeClient()
	fc.productErr = &client.FetchError{StatusCode: 500, Message: "boom"}
	s := newTestStore(fc)

	views, err := s.ProductsWithCategory(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if views == nil || len(views) != 0 {
		t.Errorf("expected empty collection, got %v", views)
	}
	if err.Error() != "Backend returned code 500: boom" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestFetchesOnce(t *testing.T) {
	fc := newFakeClient()
	s := newTestStore(fc)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.ProductsWithAdd(context.Background())
		}()
	}
	wg.Wait()
	s.Categories(context.Background())

	if got := fc.productCalls.Load(); got != 1 {
		t.Errorf("expected 1 product fetch, got %d", got)
	}
	if got := fc.categoryCalls.Load(); got != 1 {
		t.Errorf("expected 1 category fetch, got %d", got)
	}
}

func TestFailedFetchIsNotCached(t *testing.T) {
	fc := newFakeClient()
	fc.categoryErr = errors.New("offline")
	s := newTestStore(fc)

	if _, err := s.Categories(context.Background()); err == nil {
		t.Fatal("expected error")
	}

	fc.categoryErr = nil
	categories, err := s.Categories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(categories) != 2 {
		t.Errorf("expected 2 categories, got %d", len(categories))
	}
}

func TestSharedCacheIsUsed(t *testing.T) {
	cache := &memoryCache{data: map[string]any{}}
	fc := newFakeClient()

	first := NewStore(fc, cache, logging.Discard(), Options{})
	if _, err := first.Categories(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second := NewStore(fc, cache, logging.Discard(), Options{})
	if _, err := second.Categories(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := fc.categoryCalls.Load(); got != 1 {
		t.Errorf("expected categories fetched once across stores, got %d", got)
	}
}

func TestSelectedProduct(t *testing.T) {
	s := newTestStore(newFakeClient())
	ctx := context.Background()

	if _, ok, err := s.SelectedProduct(ctx); err != nil || ok {
		t.Fatalf("expected no selection by default, got ok=%v err=%v", ok, err)
	}

	s.SelectProduct(5)
	p, ok, err := s.SelectedProduct(ctx)
	if err != nil || !ok {
		t.Fatalf("expected selected product, got ok=%v err=%v", ok, err)
	}
	if p.ProductName != "Hammer" {
		t.Errorf("expected Hammer, got %q", p.ProductName)
	}

	s.SelectProduct(404)
	if _, ok, err := s.SelectedProduct(ctx); err != nil || ok {
		t.Errorf("expected no match for unknown id, got ok=%v err=%v", ok, err)
	}
}

func TestSelectedSuppliers_PreservesOrder(t *testing.T) {
	fc := newFakeClient()
	fc.supplierDelay = 5 * time.Millisecond
	s := newTestStore(fc)

	s.SelectProduct(1)
	suppliers, err := s.SelectedSuppliers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(suppliers) != 2 {
		t.Fatalf("expected 2 suppliers, got %d", len(suppliers))
	}
	if suppliers[0].ID != 1 || suppliers[1].ID != 2 {
		t.Errorf("expected suppliers in id order [1 2], got [%d %d]", suppliers[0].ID, suppliers[1].ID)
	}
}

func TestSuppliers_FailureYieldsEmpty(t *testing.T) {
	s := newTestStore(newFakeClient())

	suppliers, err := s.Suppliers(context.Background(), []int{1, 99})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(suppliers) != 0 {
		t.Errorf("expected empty result, got %v", suppliers)
	}
	if err.Error() != "Backend returned code 404: supplier not found" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestSelectedSuppliers_NoSelection(t *testing.T) {
	fc := newFakeClient()
	s := newTestStore(fc)

	suppliers, err := s.SelectedSuppliers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(suppliers) != 0 {
		t.Errorf("expected no suppliers, got %v", suppliers)
	}
	if fc.supplierCalls.Load() != 0 {
		t.Error("expected no supplier lookups without a selection")
	}
}

func TestAddProduct_AppendsPlaceholder(t *testing.T) {
	s := newTestStore(newFakeClient())
	ctx := context.Background()

	before, _ := s.ProductsWithAdd(ctx)
	view, err := s.AddProduct(ctx, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	after, _ := s.ProductsWithAdd(ctx)

	if len(after) != len(before)+1 {
		t.Fatalf("expected exactly one more product, got %d -> %d", len(before), len(after))
	}
	if view.ID != 42 || view.ProductName != "Another One" || view.CategoryName != "Toolbox" {
		t.Errorf("unexpected placeholder view %+v", view)
	}
	if !almostEqual(view.Price, 8.9*1.5) {
		t.Errorf("expected display price %v, got %v", 8.9*1.5, view.Price)
	}
	last := after[len(after)-1]
	if last.ID != 42 {
		t.Errorf("expected placeholder appended last, got %d", last.ID)
	}
	for i := range before {
		if before[i].ID != after[i].ID || before[i].Price != after[i].Price {
			t.Errorf("entry %d changed after add", i)
		}
	}
}

func TestAddProduct_DoesNotMutatePriorSnapshots(t *testing.T) {
	s := newTestStore(newFakeClient())
	ctx := context.Background()

	first := models.Product{ID: 100, ProductName: "First", CategoryID: 1, Price: 1}
	if _, err := s.AddProduct(ctx, &first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snapshot := s.Inserted()

	second := models.Product{ID: 101, ProductName: "Second", CategoryID: 1, Price: 2}
	if _, err := s.AddProduct(ctx, &second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(snapshot) != 1 || snapshot[0].ID != 100 {
		t.Errorf("expected earlier snapshot untouched, got %v", snapshot)
	}
	if got := s.Inserted(); len(got) != 2 || got[1].ID != 101 {
		t.Errorf("expected two inserted products, got %v", got)
	}
}

func TestAddProduct_Duplicates(t *testing.T) {
	s := newTestStore(newFakeClient())
	ctx := context.Background()

	s.AddProduct(ctx, nil)
	s.AddProduct(ctx, nil)

	if got := len(s.Inserted()); got != 2 {
		t.Errorf("expected duplicates to be kept, got %d", got)
	}
}

func TestAddProduct_UnknownCategory(t *testing.T) {
	s := newTestStore(newFakeClient())

	_, err := s.AddProduct(context.Background(), &models.Product{ID: 7, ProductName: "Lost", CategoryID: 99, Price: 1})
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
	if len(s.Inserted()) != 0 {
		t.Error("expected nothing inserted")
	}
}

func TestSelectedProduct_FindsInsertedProduct(t *testing.T) {
	s := newTestStore(newFakeClient())
	ctx := context.Background()

	s.AddProduct(ctx, nil)
	s.SelectProduct(42)

	p, ok, err := s.SelectedProduct(ctx)
	if err != nil || !ok {
		t.Fatalf("expected inserted product to be selectable, got ok=%v err=%v", ok, err)
	}
	if p.ProductCode != "TBX-0042" {
		t.Errorf("expected TBX-0042, got %q", p.ProductCode)
	}
}

func TestProductsInCategory(t *testing.T) {
	s := newTestStore(newFakeClient())
	ctx := context.Background()

	garden, err := s.ProductsInCategory(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(garden) != 1 || garden[0].ID != 1 {
		t.Errorf("expected only Leaf Rake, got %v", garden)
	}

	all, _ := s.ProductsInCategory(ctx, 0)
	if len(all) != 2 {
		t.Errorf("expected 2 products for category 0, got %d", len(all))
	}
}

func TestDetail(t *testing.T) {
	s := newTestStore(newFakeClient())

	s.SelectProduct(1)
	view := s.Detail(context.Background())
	if view.Product == nil || view.Product.ID != 1 {
		t.Fatalf("expected product 1, got %+v", view.Product)
	}
	if len(view.Suppliers) != 2 {
		t.Errorf("expected 2 suppliers, got %d", len(view.Suppliers))
	}
	if view.ErrorMessage != "" {
		t.Errorf("unexpected error message %q", view.ErrorMessage)
	}
}

func TestDetail_FetchFailure(t *testing.T) {
	fc := newFakeClient()
	fc.categoryErr = &client.FetchError{Message: "connection refused"}
	s := newTestStore(fc)

	s.SelectProduct(1)
	view := s.Detail(context.Background())
	if view.Product != nil {
		t.Errorf("expected no product, got %+v", view.Product)
	}
	if view.ErrorMessage != "An error occurred: connection refused" {
		t.Errorf("unexpected message %q", view.ErrorMessage)
	}
	if view.Suppliers == nil || len(view.Suppliers) != 0 {
		t.Errorf("expected empty suppliers, got %v", view.Suppliers)
	}
}

func nextView(t *testing.T, ch <-chan SelectedView) SelectedView {
	t.Helper()
	select {
	case v, ok := <-ch:
		if !ok {
			t.Fatal("watch closed unexpectedly")
		}
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for view")
	}
	return SelectedView{}
}

func TestWatchSelected(t *testing.T) {
	s := newTestStore(newFakeClient())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	views := s.WatchSelected(ctx)

	initial := nextView(t, views)
	if initial.Product != nil {
		t.Errorf("expected no product initially, got %+v", initial.Product)
	}

	s.SelectProduct(5)
	selected := nextView(t, views)
	if selected.Product == nil || selected.Product.ID != 5 {
		t.Fatalf("expected product 5, got %+v", selected.Product)
	}
	if len(selected.Suppliers) != 1 || selected.Suppliers[0].ID != 2 {
		t.Errorf("expected supplier 2, got %v", selected.Suppliers)
	}

	cancel()
	for range views {
	}
}

func TestMetrics(t *testing.T) {
	s := newTestStore(newFakeClient())
	ctx := context.Background()

	s.AddProduct(ctx, nil)
	s.SelectProduct(1)

	m, err := s.Metrics(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.TotalProducts != 3 {
		t.Errorf("expected 3 products, got %d", m.TotalProducts)
	}
	if m.InsertedProducts != 1 {
		t.Errorf("expected 1 inserted product, got %d", m.InsertedProducts)
	}
	if m.OutOfStockCount != 1 {
		t.Errorf("expected 1 out of stock, got %d", m.OutOfStockCount)
	}
	if m.SelectedProductID != 1 {
		t.Errorf("expected selected id 1, got %d", m.SelectedProductID)
	}
	if len(m.ByCategory) != 2 || m.ByCategory[1].ProductCount != 2 {
		t.Errorf("unexpected category counts %+v", m.ByCategory)
	}
}

func errorEntries(hook *logtest.Hook) []*logrus.Entry {
	var out []*logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Level <= logrus.ErrorLevel {
			out = append(out, e)
		}
	}
	return out
}

func TestProductList(t *testing.T) {
	s := newTestStore(newFakeClient())
	ctx := context.Background()
	s.AddProduct(ctx, nil)

	categories, products, err := s.ProductList(ctx, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(categories) != 2 {
		t.Errorf("expected 2 categories, got %d", len(categories))
	}
	if len(products) != 2 || products[0].ID != 5 || products[1].ID != 42 {
		t.Errorf("expected Hammer and the placeholder, got %v", products)
	}
}

func TestProductList_FailureFetchedAndLoggedOnce(t *testing.T) {
	fc := newFakeClient()
	fc.categoryErr = &client.FetchError{StatusCode: 500, Message: "database down"}
	logger, hook := logtest.NewNullLogger()
	s := NewStore(fc, nil, logger, Options{})

	categories, products, err := s.ProductList(context.Background(), 0)
	if err == nil || err.Error() != "Backend returned code 500: database down" {
		t.Fatalf("unexpected error %v", err)
	}
	if categories == nil || len(categories) != 0 || products == nil || len(products) != 0 {
		t.Errorf("expected empty collections, got %v and %v", categories, products)
	}
	if got := fc.categoryCalls.Load(); got != 1 {
		t.Errorf("expected 1 category fetch, got %d", got)
	}
	if got := len(errorEntries(hook)); got != 1 {
		t.Errorf("expected 1 error log, got %d", got)
	}
}

func TestWatchSelected_LastSelectionWins(t *testing.T) {
	fc := newFakeClient()
	fc.supplierDelay = 300 * time.Millisecond
	logger, hook := logtest.NewNullLogger()
	s := NewStore(fc, nil, logger, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	views := s.WatchSelected(ctx)
	nextView(t, views)

	s.SelectProduct(1)
	time.Sleep(50 * time.Millisecond)
	s.SelectProduct(5)

	final := nextView(t, views)
	if final.Product == nil || final.Product.ID != 5 {
		t.Fatalf("expected product 5, got %+v", final.Product)
	}
	if final.ErrorMessage != "" {
		t.Errorf("unexpected error message %q", final.ErrorMessage)
	}
	if len(final.Suppliers) != 1 || final.Suppliers[0].ID != 2 {
		t.Errorf("expected supplier 2, got %v", final.Suppliers)
	}

	cancel()
	for range views {
	}
	if entries := errorEntries(hook); len(entries) != 0 {
		t.Errorf("expected no error logs for a replaced selection, got %q", entries[0].Message)
	}
}

func TestSuppliers_CancelledIsNotLogged(t *testing.T) {
	fc := newFakeClient()
	fc.supplierDelay = time.Second
	logger, hook := logtest.NewNullLogger()
	s := NewStore(fc, nil, logger, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	suppliers, err := s.Suppliers(ctx, []int{1, 2})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if len(suppliers) != 0 {
		t.Errorf("expected no suppliers, got %v", suppliers)
	}
	if got := len(errorEntries(hook)); got != 0 {
		t.Errorf("expected no error logs, got %d", got)
	}
}
