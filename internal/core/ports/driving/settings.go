package driving

import "github.com/Pablo751/dientes/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings with defaults applied.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetLLMProvider configures the LLM provider.
	SetLLMProvider(provider domain.AIProvider, model, apiKey string) error

	// SetGeneration updates the per-call output budget and temperature.
	SetGeneration(maxOutputTokens int, temperature float64) error

	// SetHistoryLimit updates the conversation log bound.
	SetHistoryLimit(limit int) error

	// SetCatalogPath updates the default dataset path.
	SetCatalogPath(path string) error

	// Validate checks that current settings are usable.
	Validate() error

	// ValidateLLMConfig validates the LLM configuration by pinging the provider.
	ValidateLLMConfig() error
}
