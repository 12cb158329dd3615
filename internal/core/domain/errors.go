package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a selection does not resolve to any catalog record.
	ErrNotFound = errors.New("product not found")

	// ErrEmptyQuestion indicates the question text is empty or blank.
	// Detected before any backend call is attempted.
	ErrEmptyQuestion = errors.New("question is empty")

	// ErrInvalidCatalog indicates a dataset is malformed or incomplete.
	// A load that fails with this error must leave no partial catalog.
	ErrInvalidCatalog = errors.New("invalid catalog dataset")

	// ErrLLMUnavailable indicates the LLM backend is not configured.
	ErrLLMUnavailable = errors.New("LLM service unavailable")
)
