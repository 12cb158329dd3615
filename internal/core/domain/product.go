// Package domain defines the core types of the dental product assistant.
package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Product is a single catalog record. Records are created at load time,
// validated there, and never mutated afterwards.
type Product struct {
	// Name identifies the product for selection and lookup.
	Name string

	// Description is the product description.
	Description string

	// UsageInstructions explains how the product is used.
	UsageInstructions string

	// Advantages lists the product's benefits.
	Advantages string

	// Presentation describes the packaging/format.
	Presentation string
}

// Validate checks the catalog invariant: every record carries a name and
// all four content fields. Violations are load-time errors, not runtime ones.
func (p Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: record has no product name", ErrInvalidCatalog)
	}

	missing := make([]string, 0, 4)
	for _, f := range []struct {
		name  string
		value string
	}{
		{"Description", p.Description},
		{"UsageInstructions", p.UsageInstructions},
		{"Advantages", p.Advantages},
		{"Presentation", p.Presentation},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: product %q is missing %s",
			ErrInvalidCatalog, p.Name, strings.Join(missing, ", "))
	}
	return nil
}

// CacheKey derives a deterministic key over the full record content and the
// exact question bytes. Identical (record, question) pairs always produce
// the same key; any change to a field or to the question (case included)
// produces a different one. Field values are separated by unit/record
// separators so that concatenation cannot collide across field boundaries.
func CacheKey(p Product, question string) string {
	h := sha256.New()
	for _, v := range []string{
		p.Name,
		p.Description,
		p.UsageInstructions,
		p.Advantages,
		p.Presentation,
	} {
		h.Write([]byte(v))
		h.Write([]byte{0x1f})
	}
	h.Write([]byte{0x1e})
	h.Write([]byte(question))
	return hex.EncodeToString(h.Sum(nil))
}
