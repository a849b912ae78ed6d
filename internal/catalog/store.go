// Package catalog derives the product list and detail views from the
// backend catalog, the current selection and the products added in this
// process.
package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/rogerio-castellano/apm-catalog/internal/client"
	"github.com/rogerio-castellano/apm-catalog/internal/models"
	"github.com/rogerio-castellano/apm-catalog/internal/stream"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// Cache is an optional store shared between instances. redissvc.RedisService
// implements it.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (bool, error)
	SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error
}

// Options tune a Store. Zero values fall back to a 1.5 markup and four
// concurrent supplier lookups; a zero CacheTTL keeps cached entries forever.
type Options struct {
	PriceMarkup         float64
	CacheTTL            time.Duration
	SupplierConcurrency int
}

func (o Options) withDefaults() Options {
	if o.PriceMarkup <= 0 {
		o.PriceMarkup = 1.5
	}
	if o.SupplierConcurrency <= 0 {
		o.SupplierConcurrency = 4
	}
	return o
}

// Store derives the catalog views. Products and categories are fetched once
// per process; the selection and the added products live in memory.
type Store struct {
	client client.CatalogClient
	cache  Cache
	log    *logrus.Logger
	opts   Options

	group      singleflight.Group
	mu         sync.RWMutex
	products   []models.Product
	categories []models.Category

	selected *stream.Subject[int]
	inserted *stream.Subject[[]models.Product]
}

// NewStore builds a store over c. cache may be nil.
func NewStore(c client.CatalogClient, cache Cache, logger *logrus.Logger, opts Options) *Store {
	return &Store{
		client:   c,
		cache:    cache,
		log:      logger,
		opts:     opts.withDefaults(),
		selected: stream.NewSubject(0),
		inserted: stream.NewSubject([]models.Product{}),
	}
}

// Close ends every watch started on the store.
func (s *Store) Close() {
	s.selected.Close()
	s.inserted.Close()
}

// fail logs a failed operation once and hands the error back to the caller,
// whose message is fit for display.
func (s *Store) fail(op string, err error) error {
	s.log.WithError(err).Errorf("Store: %s failed", op)
	return err
}

// loadOnce returns the slice in slot, fetching it on first use. Concurrent
// first callers share one fetch and only a successful result is kept. The
// shared fetch is not cancelled with the caller that started it; the client
// timeout bounds it.
func loadOnce[T any](ctx context.Context, s *Store, key string, slot *[]T, fetch func(context.Context) ([]T, error)) ([]T, error) {
	ctx = context.WithoutCancel(ctx)

	s.mu.RLock()
	cached := *slot
	s.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		s.mu.RLock()
		items := *slot
		s.mu.RUnlock()
		if items != nil {
			return items, nil
		}

		if s.cache != nil {
			found, err := s.cache.GetJSON(ctx, key, &items)
			if err != nil {
				s.log.Warnf("Store: cache read for %s failed: %v", key, err)
			}
			if found && items != nil {
				s.log.Debugf("Store: %s served from cache", key)
				s.keep(func() { *slot = items })
				return items, nil
			}
		}

		items, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		if items == nil {
			items = []T{}
		}

		if s.cache != nil {
			if err := s.cache.SetJSON(ctx, key, items, s.opts.CacheTTL); err != nil {
				s.log.Warnf("Store: cache write for %s failed: %v", key, err)
			}
		}
		s.keep(func() { *slot = items })
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]T), nil
}

func (s *Store) keep(set func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set()
}
