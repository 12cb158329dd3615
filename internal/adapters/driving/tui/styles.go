package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for the chat interface.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Success indicates positive outcomes.
	Success lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#06B6D4"), // Cyan
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Success:    lipgloss.Color("#A6E3A1"), // Green
		Error:      lipgloss.Color("#F38BA8"), // Red
		Border:     lipgloss.Color("#45475A"), // Border gray
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for hints and metadata.
	Muted lipgloss.Style

	// Selected style for the highlighted product.
	Selected lipgloss.Style

	// Question style for user questions in the transcript.
	Question lipgloss.Style

	// Answer style for assistant answers.
	Answer lipgloss.Style

	// Error style for failed generations.
	Error lipgloss.Style

	// Cached marks answers served from the cache.
	Cached lipgloss.Style
}

// DefaultStyles returns styles built from the default theme.
func DefaultStyles() *Styles {
	t := DefaultTheme()
	return &Styles{
		theme:    t,
		Title:    lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Normal:   lipgloss.NewStyle().Foreground(t.Foreground),
		Muted:    lipgloss.NewStyle().Foreground(t.Muted),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Question: lipgloss.NewStyle().Bold(true).Foreground(t.Foreground),
		Answer:   lipgloss.NewStyle().Foreground(t.Foreground),
		Error:    lipgloss.NewStyle().Foreground(t.Error),
		Cached:   lipgloss.NewStyle().Foreground(t.Success),
	}
}
