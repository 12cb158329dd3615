package tui

import "github.com/Pablo751/dientes/internal/core/domain"

// productsMsg delivers the catalog records to the picker.
type productsMsg struct {
	products []domain.Product
}

// answerMsg delivers a completed generation.
type answerMsg struct {
	answer domain.Answer
}

// errMsg delivers a pipeline error (empty question, unresolved product).
type errMsg struct {
	err error
}

// CatalogReloadedMsg tells the app the dataset changed on disk and the
// catalog was reloaded. Sent from outside the program via Program.Send.
type CatalogReloadedMsg struct{}
