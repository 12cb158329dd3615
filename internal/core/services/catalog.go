// Package services implements the core application logic behind the
// driving ports.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Pablo751/dientes/internal/core/domain"
	"github.com/Pablo751/dientes/internal/core/ports/driven"
	"github.com/Pablo751/dientes/internal/core/ports/driving"
	"github.com/Pablo751/dientes/internal/logger"
)

// Ensure Catalog implements the interface.
var _ driving.CatalogService = (*Catalog)(nil)

// Catalog loads the product dataset and resolves selections to records.
type Catalog struct {
	source driven.CatalogSource
	store  driven.CatalogStore
}

// NewCatalog creates a catalog service.
func NewCatalog(source driven.CatalogSource, store driven.CatalogStore) *Catalog {
	return &Catalog{source: source, store: store}
}

// Load reads and validates the dataset at path, then replaces the catalog
// wholesale. Validation happens entirely in the source, so a malformed
// dataset never leaves a partial catalog behind.
func (c *Catalog) Load(ctx context.Context, path string) error {
	products, err := c.source.Load(ctx, path)
	if err != nil {
		return fmt.Errorf("load catalog %q: %w", path, err)
	}

	if err := c.store.Replace(ctx, products); err != nil {
		return fmt.Errorf("replace catalog: %w", err)
	}

	logger.Info("catalog loaded: %d products from %s", len(products), path)
	return nil
}

// Products returns the loaded records in catalog order.
func (c *Catalog) Products(ctx context.Context) ([]domain.Product, error) {
	return c.store.All(ctx)
}

// Count returns the number of loaded records.
func (c *Catalog) Count(ctx context.Context) int {
	return c.store.Count(ctx)
}

// Resolve maps a selection string to exactly one record.
//
// Matching policy: an exact match on the product name wins; when nothing
// matches exactly, the first record whose name contains the selection
// case-insensitively is returned. In both passes ties break to the first
// record in catalog order, so resolution is deterministic across calls.
// Resolve has no side effects.
func (c *Catalog) Resolve(ctx context.Context, selection string) (domain.Product, error) {
	products, err := c.store.All(ctx)
	if err != nil {
		return domain.Product{}, err
	}

	for _, p := range products {
		if p.Name == selection {
			return p, nil
		}
	}

	needle := strings.ToLower(strings.TrimSpace(selection))
	if needle != "" {
		for _, p := range products {
			if strings.Contains(strings.ToLower(p.Name), needle) {
				return p, nil
			}
		}
	}

	return domain.Product{}, fmt.Errorf("resolve %q: %w", selection, domain.ErrNotFound)
}
