package catalog

import (
	"context"
	"fmt"

	"github.com/rogerio-castellano/apm-catalog/internal/models"
	"golang.org/x/sync/errgroup"
)

// Suppliers looks up every id in parallel and returns the suppliers in the
// order of ids. Any failed lookup fails the whole call with an empty result.
func (s *Store) Suppliers(ctx context.Context, ids []int) ([]models.Supplier, error) {
	if len(ids) == 0 {
		return []models.Supplier{}, nil
	}

	suppliers := make([]models.Supplier, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.SupplierConcurrency)
	for i, id := range ids {
		g.Go(func() error {
			sup, err := s.supplier(gctx, id)
			if err != nil {
				return err
			}
			suppliers[i] = sup
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		// A newer selection cancelled this lookup; nothing failed.
		if ctx.Err() != nil {
			return []models.Supplier{}, ctx.Err()
		}
		return []models.Supplier{}, s.fail("load suppliers", err)
	}
	return suppliers, nil
}

// SelectedSuppliers returns the suppliers of the selected product, or an
// empty list when nothing is selected.
func (s *Store) SelectedSuppliers(ctx context.Context) ([]models.Supplier, error) {
	p, ok, err := s.SelectedProduct(ctx)
	if err != nil || !ok {
		return []models.Supplier{}, err
	}
	return s.Suppliers(ctx, p.SupplierIDs)
}

func (s *Store) supplier(ctx context.Context, id int) (models.Supplier, error) {
	key := fmt.Sprintf("suppliers:%d", id)

	var sup models.Supplier
	if s.cache != nil {
		found, err := s.cache.GetJSON(ctx, key, &sup)
		if err != nil {
			s.log.Warnf("Store: cache read for %s failed: %v", key, err)
		}
		if found {
			return sup, nil
		}
	}

	sup, err := s.client.GetSupplier(ctx, id)
	if err != nil {
		return models.Supplier{}, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, sup, s.opts.CacheTTL); err != nil {
			s.log.Warnf("Store: cache write for %s failed: %v", key, err)
		}
	}
	return sup, nil
}
