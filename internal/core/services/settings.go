package services

import (
	"fmt"

	"github.com/Pablo751/dientes/internal/core/domain"
	"github.com/Pablo751/dientes/internal/core/ports/driven"
	"github.com/Pablo751/dientes/internal/core/ports/driving"
)

// Ensure Settings implements the interface.
var _ driving.SettingsService = (*Settings)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyLLMProvider  = "llm.provider"
	keyLLMModel     = "llm.model"
	keyLLMBaseURL   = "llm.base_url"
	keyLLMAPIKey    = "llm.api_key"
	keyGenMaxTokens = "generation.max_output_tokens"
	keyGenTemp      = "generation.temperature"
	keyHistoryLimit = "history.limit"
	keyCatalogPath  = "catalog.path"
)

// LLMValidator validates an LLM configuration by reaching the provider.
type LLMValidator func(settings *domain.LLMSettings) error

// Settings manages application settings on top of a config store.
type Settings struct {
	configStore  driven.ConfigStore
	llmValidator LLMValidator
}

// NewSettings creates a settings service. The validator may be nil, in
// which case ValidateLLMConfig is a no-op.
func NewSettings(configStore driven.ConfigStore, llmValidator LLMValidator) *Settings {
	return &Settings{
		configStore:  configStore,
		llmValidator: llmValidator,
	}
}

// Get retrieves current application settings with defaults applied.
func (s *Settings) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		LLM: domain.LLMSettings{
			Provider: s.getProvider(defaults.LLM.Provider),
			Model:    s.getString(keyLLMModel, defaults.LLM.Model),
			BaseURL:  s.configStore.GetString(keyLLMBaseURL), // No default - empty is valid for cloud providers
			APIKey:   s.configStore.GetString(keyLLMAPIKey),
		},
		Generation: domain.GenerationSettings{
			MaxOutputTokens: s.getInt(keyGenMaxTokens, defaults.Generation.MaxOutputTokens),
			Temperature:     s.getFloat(keyGenTemp, defaults.Generation.Temperature),
		},
		History: domain.HistorySettings{
			Limit: s.getInt(keyHistoryLimit, defaults.History.Limit),
		},
		Catalog: domain.CatalogSettings{
			Path: s.getString(keyCatalogPath, defaults.Catalog.Path),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *Settings) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyLLMProvider, settings.LLM.Provider.String()); err != nil {
		return fmt.Errorf("save llm provider: %w", err)
	}
	if err := s.configStore.Set(keyLLMModel, settings.LLM.Model); err != nil {
		return fmt.Errorf("save llm model: %w", err)
	}
	if err := s.configStore.Set(keyLLMBaseURL, settings.LLM.BaseURL); err != nil {
		return fmt.Errorf("save llm base_url: %w", err)
	}
	if settings.LLM.APIKey != "" {
		if err := s.configStore.Set(keyLLMAPIKey, settings.LLM.APIKey); err != nil {
			return fmt.Errorf("save llm api_key: %w", err)
		}
	}

	if err := s.configStore.Set(keyGenMaxTokens, settings.Generation.MaxOutputTokens); err != nil {
		return fmt.Errorf("save max output tokens: %w", err)
	}
	if err := s.configStore.Set(keyGenTemp, settings.Generation.Temperature); err != nil {
		return fmt.Errorf("save temperature: %w", err)
	}
	if err := s.configStore.Set(keyHistoryLimit, settings.History.Limit); err != nil {
		return fmt.Errorf("save history limit: %w", err)
	}
	if err := s.configStore.Set(keyCatalogPath, settings.Catalog.Path); err != nil {
		return fmt.Errorf("save catalog path: %w", err)
	}

	return nil
}

// SetLLMProvider configures the LLM provider.
func (s *Settings) SetLLMProvider(provider domain.AIProvider, model, apiKey string) error {
	if !provider.IsValid() {
		return fmt.Errorf("invalid LLM provider: %s", provider)
	}
	if provider.RequiresAPIKey() && apiKey == "" {
		return fmt.Errorf("API key required for %s", provider)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.LLM.Provider = provider

	if model != "" {
		settings.LLM.Model = model
	} else if defaultModel, ok := domain.DefaultLLMModels()[provider]; ok {
		settings.LLM.Model = defaultModel
	}

	if provider.IsLocal() {
		if settings.LLM.BaseURL == "" {
			settings.LLM.BaseURL = "http://localhost:11434"
		}
	} else {
		settings.LLM.BaseURL = ""
	}

	settings.LLM.APIKey = apiKey

	return s.Save(settings)
}

// SetGeneration updates the per-call output budget and temperature.
func (s *Settings) SetGeneration(maxOutputTokens int, temperature float64) error {
	if maxOutputTokens <= 0 {
		return fmt.Errorf("max output tokens must be positive, got %d", maxOutputTokens)
	}
	if temperature < 0 || temperature > 2 {
		return fmt.Errorf("temperature must be in [0, 2], got %g", temperature)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Generation.MaxOutputTokens = maxOutputTokens
	settings.Generation.Temperature = temperature
	return s.Save(settings)
}

// SetHistoryLimit updates the conversation log bound.
func (s *Settings) SetHistoryLimit(limit int) error {
	if limit <= 0 {
		return fmt.Errorf("history limit must be positive, got %d", limit)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.History.Limit = limit
	return s.Save(settings)
}

// SetCatalogPath updates the default dataset path.
func (s *Settings) SetCatalogPath(path string) error {
	if path == "" {
		return fmt.Errorf("catalog path must not be empty")
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Catalog.Path = path
	return s.Save(settings)
}

// Validate checks if current settings are valid.
func (s *Settings) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if !settings.LLM.IsConfigured() {
		return fmt.Errorf("%w: run 'dientes settings llm' to configure a provider",
			domain.ErrLLMUnavailable)
	}
	if settings.Generation.MaxOutputTokens <= 0 {
		return fmt.Errorf("invalid max output tokens: %d", settings.Generation.MaxOutputTokens)
	}
	if settings.History.Limit <= 0 {
		return fmt.Errorf("invalid history limit: %d", settings.History.Limit)
	}

	return nil
}

// ValidateLLMConfig validates the current LLM configuration by pinging the provider.
func (s *Settings) ValidateLLMConfig() error {
	if s.llmValidator == nil {
		return nil
	}
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return s.llmValidator(&settings.LLM)
}

// Helper methods for reading config with defaults.

func (s *Settings) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *Settings) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *Settings) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

func (s *Settings) getProvider(defaultVal domain.AIProvider) domain.AIProvider {
	val := s.configStore.GetString(keyLLMProvider)
	if val == "" {
		return defaultVal
	}
	provider := domain.AIProvider(val)
	if !provider.IsValid() {
		return defaultVal
	}
	return provider
}
