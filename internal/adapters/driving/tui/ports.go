// Package tui provides the interactive chat interface for dientes.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/Pablo751/dientes/internal/core/domain"
	"github.com/Pablo751/dientes/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Catalog provides product lookup and listing.
	Catalog driving.CatalogService

	// Assistant answers product questions.
	Assistant driving.AssistantService

	// Session is the conversation this chat appends to.
	Session *domain.Session
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(catalog driving.CatalogService, assistant driving.AssistantService, session *domain.Session) *Ports {
	return &Ports{
		Catalog:   catalog,
		Assistant: assistant,
		Session:   session,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	if p.Assistant == nil {
		return ErrMissingAssistantService
	}
	if p.Session == nil {
		return ErrMissingSession
	}
	return nil
}
