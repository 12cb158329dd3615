// Package csvfile loads the product catalog from a CSV dataset and watches
// it for changes.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/Pablo751/dientes/internal/core/domain"
	"github.com/Pablo751/dientes/internal/core/ports/driven"
)

// Ensure Loader implements the interface.
var _ driven.CatalogSource = (*Loader)(nil)

// Column headers recognised in the dataset. The canonical headers are the
// Spanish ones the dataset ships with; English equivalents are accepted too.
var (
	descriptionHeaders  = []string{"Descripción", "Description"}
	instructionsHeaders = []string{"Instrucciones de Uso", "Usage Instructions"}
	advantagesHeaders   = []string{"Ventajas", "Advantages"}
	presentationHeaders = []string{"Presentación", "Presentation"}
	nameHeaders         = []string{"Producto", "Product"}
)

// Loader reads products from a CSV file.
type Loader struct{}

// NewLoader creates a CSV catalog loader.
func NewLoader() *Loader {
	return &Loader{}
}

// columnIndexes maps each product field to its column position.
type columnIndexes struct {
	name         int // -1 when the dataset has no name column
	description  int
	instructions int
	advantages   int
	presentation int
}

// Load reads and validates the full catalog. Any malformed record fails the
// whole load; a partial catalog is never returned.
func (l *Loader) Load(ctx context.Context, path string) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // Validated per row below.

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", domain.ErrInvalidCatalog, path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", domain.ErrInvalidCatalog, path)
	}

	cols, err := resolveColumns(rows[0])
	if err != nil {
		return nil, err
	}

	records := rows[1:]
	products := make([]domain.Product, 0, len(records))
	for i, row := range records {
		product, err := cols.product(row)
		if err != nil {
			// Rows are 1-based and the header is row 1.
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		products = append(products, product)
	}

	if len(products) == 0 {
		return nil, fmt.Errorf("%w: %s has no product records", domain.ErrInvalidCatalog, path)
	}

	return products, nil
}

// resolveColumns maps the header row to field positions. All four product
// fields are required; the name column is optional.
func resolveColumns(header []string) (columnIndexes, error) {
	find := func(names []string) int {
		for i, h := range header {
			h = strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF"))
			for _, name := range names {
				if strings.EqualFold(h, name) {
					return i
				}
			}
		}
		return -1
	}

	cols := columnIndexes{
		name:         find(nameHeaders),
		description:  find(descriptionHeaders),
		instructions: find(instructionsHeaders),
		advantages:   find(advantagesHeaders),
		presentation: find(presentationHeaders),
	}

	var missing []string
	if cols.description < 0 {
		missing = append(missing, descriptionHeaders[0])
	}
	if cols.instructions < 0 {
		missing = append(missing, instructionsHeaders[0])
	}
	if cols.advantages < 0 {
		missing = append(missing, advantagesHeaders[0])
	}
	if cols.presentation < 0 {
		missing = append(missing, presentationHeaders[0])
	}
	if len(missing) > 0 {
		return columnIndexes{}, fmt.Errorf("%w: missing columns: %s",
			domain.ErrInvalidCatalog, strings.Join(missing, ", "))
	}

	return cols, nil
}

// product builds and validates a single record.
func (c columnIndexes) product(row []string) (domain.Product, error) {
	field := func(idx int) string {
		if idx < 0 || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	p := domain.Product{
		Name:              field(c.name),
		Description:       field(c.description),
		UsageInstructions: field(c.instructions),
		Advantages:        field(c.advantages),
		Presentation:      field(c.presentation),
	}

	// Without a name column the display name is the description prefix,
	// e.g. "Floss X: waxed dental floss" -> "Floss X".
	if p.Name == "" {
		p.Name = strings.TrimSpace(strings.SplitN(p.Description, ":", 2)[0])
	}

	if err := p.Validate(); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}
