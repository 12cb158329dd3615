package driven

import (
	"context"

	"github.com/Pablo751/dientes/internal/core/domain"
)

// CatalogStore holds the loaded product records. The catalog is replaced
// wholesale on load and read-only afterwards, so it is safe to share across
// submissions.
type CatalogStore interface {
	// Replace swaps the entire catalog for the given records, preserving
	// their order.
	Replace(ctx context.Context, products []domain.Product) error

	// All returns the records in catalog order.
	All(ctx context.Context) ([]domain.Product, error)

	// Count returns the number of records.
	Count(ctx context.Context) int
}

// CatalogSource supplies product records from an external dataset.
// Implementations validate the dataset fully before returning: a malformed
// or incomplete dataset yields an error and no records.
type CatalogSource interface {
	// Load reads and validates the dataset at path.
	Load(ctx context.Context, path string) ([]domain.Product, error)
}
