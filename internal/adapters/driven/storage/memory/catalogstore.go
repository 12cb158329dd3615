// Package memory provides in-memory implementations of the driven
// storage ports. All state is process-lifetime only.
package memory

import (
	"context"
	"sync"

	"github.com/Pablo751/dientes/internal/core/domain"
	"github.com/Pablo751/dientes/internal/core/ports/driven"
)

// Ensure CatalogStore implements the interface.
var _ driven.CatalogStore = (*CatalogStore)(nil)

// CatalogStore is an in-memory implementation of driven.CatalogStore.
// The catalog is replaced wholesale on load and only read afterwards;
// record order is preserved because the resolver's tie-break depends on it.
type CatalogStore struct {
	mu       sync.RWMutex
	products []domain.Product
}

// NewCatalogStore creates a new in-memory catalog store.
func NewCatalogStore() *CatalogStore {
	return &CatalogStore{}
}

// Replace swaps the entire catalog for the given records.
func (s *CatalogStore) Replace(_ context.Context, products []domain.Product) error {
	replacement := make([]domain.Product, len(products))
	copy(replacement, products)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = replacement
	return nil
}

// All returns the records in catalog order.
func (s *CatalogStore) All(_ context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

// Count returns the number of records.
func (s *CatalogStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}
