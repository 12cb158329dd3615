package domain

const unknownDescription = "Unknown"

// AIProvider identifies an LLM service provider.
type AIProvider string

// Available AI providers.
const (
	// AIProviderOpenAI is OpenAI cloud API.
	AIProviderOpenAI AIProvider = "openai"

	// AIProviderAnthropic is Anthropic cloud API.
	AIProviderAnthropic AIProvider = "anthropic"

	// AIProviderOllama is a local Ollama instance.
	AIProviderOllama AIProvider = "ollama"
)

// IsValid returns true if the AI provider is recognised.
func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderOpenAI, AIProviderAnthropic, AIProviderOllama:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p AIProvider) RequiresAPIKey() bool {
	return p == AIProviderOpenAI || p == AIProviderAnthropic
}

// IsLocal returns true if this provider runs locally.
func (p AIProvider) IsLocal() bool {
	return p == AIProviderOllama
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p AIProvider) Description() string {
	switch p {
	case AIProviderOpenAI:
		return "OpenAI (cloud)"
	case AIProviderAnthropic:
		return "Anthropic (cloud)"
	case AIProviderOllama:
		return "Ollama (local)"
	default:
		return unknownDescription
	}
}

// AllLLMProviders returns the providers selectable for generation.
func AllLLMProviders() []AIProvider {
	return []AIProvider{AIProviderOpenAI, AIProviderAnthropic, AIProviderOllama}
}

// DefaultLLMModels maps each provider to its default model.
func DefaultLLMModels() map[AIProvider]string {
	return map[AIProvider]string{
		AIProviderOpenAI:    "gpt-4o-2024-08-06",
		AIProviderAnthropic: "claude-3-5-sonnet-latest",
		AIProviderOllama:    "llama3.2",
	}
}

// LLMSettings holds LLM provider configuration. The API key is a secret:
// it is never logged and never part of prompts or cache keys.
type LLMSettings struct {
	Provider AIProvider
	Model    string
	BaseURL  string
	APIKey   string
}

// IsConfigured returns true if the provider can be instantiated.
func (s *LLMSettings) IsConfigured() bool {
	if !s.Provider.IsValid() {
		return false
	}
	if s.Provider.RequiresAPIKey() && s.APIKey == "" {
		return false
	}
	return true
}

// GenerationSettings bounds each backend call. These are configuration,
// not hardcoded constants.
type GenerationSettings struct {
	// MaxOutputTokens is the response-length budget per call.
	MaxOutputTokens int

	// Temperature is the fixed sampling temperature.
	Temperature float64
}

// HistorySettings configures the conversation log.
type HistorySettings struct {
	// Limit is the maximum number of retained exchanges per session.
	Limit int
}

// CatalogSettings configures catalog ingestion.
type CatalogSettings struct {
	// Path is the dataset file loaded at startup.
	Path string
}

// AppSettings is the complete application configuration.
type AppSettings struct {
	LLM        LLMSettings
	Generation GenerationSettings
	History    HistorySettings
	Catalog    CatalogSettings
}

// Default configuration values.
const (
	DefaultMaxOutputTokens = 500
	DefaultTemperature     = 0.7
	DefaultCatalogPath     = "Merged_Dental_Products.csv"
)

// DefaultAppSettings returns the defaults applied when nothing is configured.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		LLM: LLMSettings{
			Provider: AIProviderOpenAI,
			Model:    DefaultLLMModels()[AIProviderOpenAI],
		},
		Generation: GenerationSettings{
			MaxOutputTokens: DefaultMaxOutputTokens,
			Temperature:     DefaultTemperature,
		},
		History: HistorySettings{
			Limit: DefaultHistoryLimit,
		},
		Catalog: CatalogSettings{
			Path: DefaultCatalogPath,
		},
	}
}
