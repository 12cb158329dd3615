package driving

import (
	"context"

	"github.com/Pablo751/dientes/internal/core/domain"
)

// CatalogService manages the product catalog.
type CatalogService interface {
	// Load reads the dataset at path and replaces the catalog wholesale.
	// On error the previous catalog (if any) remains in place.
	Load(ctx context.Context, path string) error

	// Products returns the loaded records in catalog order.
	Products(ctx context.Context) ([]domain.Product, error)

	// Resolve maps a selection string to exactly one record.
	// Returns domain.ErrNotFound when nothing matches.
	Resolve(ctx context.Context, selection string) (domain.Product, error)

	// Count returns the number of loaded records.
	Count(ctx context.Context) int
}
