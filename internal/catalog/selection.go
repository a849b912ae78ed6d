package catalog

import (
	"context"

	"github.com/rogerio-castellano/apm-catalog/internal/models"
	"github.com/rogerio-castellano/apm-catalog/internal/stream"
)

// SelectedView is the detail view for the current selection.
type SelectedView struct {
	Product      *models.ProductView `json:"product"`
	Suppliers    []models.Supplier   `json:"suppliers"`
	ErrorMessage string              `json:"errorMessage,omitempty"`
}

// SelectProduct records id as the selected product. Zero clears the
// selection.
func (s *Store) SelectProduct(id int) {
	s.log.Debugf("Store: product %d selected", id)
	s.selected.Next(id)
}

// SelectedProductID returns the selected id, 0 when nothing is selected.
func (s *Store) SelectedProductID() int {
	return s.selected.Value()
}

// SelectedProduct looks the selected id up in ProductsWithAdd. ok is false
// when nothing matches.
func (s *Store) SelectedProduct(ctx context.Context) (models.ProductView, bool, error) {
	views, err := s.ProductsWithAdd(ctx)
	if err != nil {
		return models.ProductView{}, false, err
	}
	p, ok := findByID(views, s.selected.Value())
	return p, ok, nil
}

// Detail derives the view for the current selection.
func (s *Store) Detail(ctx context.Context) SelectedView {
	return s.detail(ctx, s.selected.Value())
}

// WatchSelected emits a fresh SelectedView whenever the selection changes
// or a product is added. A newer selection cancels the supplier lookups of
// an older one, so the last selection wins.
func (s *Store) WatchSelected(ctx context.Context) <-chan SelectedView {
	ids := s.selected.Subscribe(ctx)
	inserted := s.inserted.Subscribe(ctx)
	changes := stream.CombineLatest(ctx, ids, inserted, func(id int, _ []models.Product) int {
		return id
	})
	return stream.SwitchMap(ctx, changes, s.detail)
}

func (s *Store) detail(ctx context.Context, id int) SelectedView {
	view := SelectedView{Suppliers: []models.Supplier{}}

	views, err := s.ProductsWithAdd(ctx)
	if err != nil {
		view.ErrorMessage = err.Error()
		return view
	}
	p, ok := findByID(views, id)
	if !ok {
		return view
	}
	view.Product = &p

	suppliers, err := s.Suppliers(ctx, p.SupplierIDs)
	if err != nil {
		if ctx.Err() == nil {
			view.ErrorMessage = err.Error()
		}
		return view
	}
	view.Suppliers = suppliers
	return view
}
