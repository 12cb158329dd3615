package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pablo751/dientes/internal/core/domain"
)

// mockConfigStore is an in-memory driven.ConfigStore.
type mockConfigStore struct {
	values map[string]any
	saves  int
}

func newMockConfigStore() *mockConfigStore {
	return &mockConfigStore{values: make(map[string]any)}
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	if v, ok := m.values[key].(string); ok {
		return v
	}
	return ""
}

func (m *mockConfigStore) GetInt(key string) int {
	switch v := m.values[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	}
	return 0
}

func (m *mockConfigStore) GetFloat(key string) float64 {
	switch v := m.values[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func (m *mockConfigStore) GetBool(key string) bool {
	v, _ := m.values[key].(bool)
	return v
}

func (m *mockConfigStore) Set(key string, value any) error {
	m.values[key] = value
	return nil
}

func (m *mockConfigStore) Save() error {
	m.saves++
	return nil
}

func (m *mockConfigStore) Load() error { return nil }

func TestSettings_Get_Defaults(t *testing.T) {
	svc := NewSettings(newMockConfigStore(), nil)

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.AIProviderOpenAI, settings.LLM.Provider)
	assert.Equal(t, "gpt-4o-2024-08-06", settings.LLM.Model)
	assert.Empty(t, settings.LLM.APIKey)
	assert.Equal(t, domain.DefaultMaxOutputTokens, settings.Generation.MaxOutputTokens)
	assert.Equal(t, domain.DefaultTemperature, settings.Generation.Temperature)
	assert.Equal(t, domain.DefaultHistoryLimit, settings.History.Limit)
	assert.Equal(t, domain.DefaultCatalogPath, settings.Catalog.Path)
}

func TestSettings_Get_StoredValuesWin(t *testing.T) {
	store := newMockConfigStore()
	store.values["llm.provider"] = "ollama"
	store.values["llm.model"] = "llama3.2"
	store.values["llm.base_url"] = "http://localhost:11434"
	store.values["generation.max_output_tokens"] = 256
	store.values["generation.temperature"] = 0.2
	store.values["history.limit"] = 10
	store.values["catalog.path"] = "custom.csv"

	svc := NewSettings(store, nil)
	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.AIProviderOllama, settings.LLM.Provider)
	assert.Equal(t, "llama3.2", settings.LLM.Model)
	assert.Equal(t, "http://localhost:11434", settings.LLM.BaseURL)
	assert.Equal(t, 256, settings.Generation.MaxOutputTokens)
	assert.Equal(t, 0.2, settings.Generation.Temperature)
	assert.Equal(t, 10, settings.History.Limit)
	assert.Equal(t, "custom.csv", settings.Catalog.Path)
}

func TestSettings_Get_ZeroTemperatureIsKept(t *testing.T) {
	store := newMockConfigStore()
	store.values["generation.temperature"] = 0.0

	svc := NewSettings(store, nil)
	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, 0.0, settings.Generation.Temperature)
}

func TestSettings_Get_InvalidProviderFallsBack(t *testing.T) {
	store := newMockConfigStore()
	store.values["llm.provider"] = "skynet"

	svc := NewSettings(store, nil)
	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.AIProviderOpenAI, settings.LLM.Provider)
}

func TestSettings_SetLLMProvider(t *testing.T) {
	store := newMockConfigStore()
	svc := NewSettings(store, nil)

	require.NoError(t, svc.SetLLMProvider(domain.AIProviderAnthropic, "", "sk-test"))

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.AIProviderAnthropic, settings.LLM.Provider)
	assert.Equal(t, "claude-3-5-sonnet-latest", settings.LLM.Model, "default model applied when none given")
	assert.Equal(t, "sk-test", settings.LLM.APIKey)
}

func TestSettings_SetLLMProvider_LocalGetsBaseURL(t *testing.T) {
	store := newMockConfigStore()
	svc := NewSettings(store, nil)

	require.NoError(t, svc.SetLLMProvider(domain.AIProviderOllama, "llama3.2", ""))

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:11434", settings.LLM.BaseURL)
}

func TestSettings_SetLLMProvider_Errors(t *testing.T) {
	svc := NewSettings(newMockConfigStore(), nil)

	err := svc.SetLLMProvider("skynet", "", "key")
	assert.ErrorContains(t, err, "invalid LLM provider")

	err = svc.SetLLMProvider(domain.AIProviderOpenAI, "", "")
	assert.ErrorContains(t, err, "API key required")
}

func TestSettings_SetGeneration(t *testing.T) {
	svc := NewSettings(newMockConfigStore(), nil)

	require.NoError(t, svc.SetGeneration(256, 0.2))

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, 256, settings.Generation.MaxOutputTokens)
	assert.Equal(t, 0.2, settings.Generation.Temperature)

	assert.Error(t, svc.SetGeneration(0, 0.5))
	assert.Error(t, svc.SetGeneration(100, -0.1))
	assert.Error(t, svc.SetGeneration(100, 2.5))
}

func TestSettings_SetHistoryLimit(t *testing.T) {
	svc := NewSettings(newMockConfigStore(), nil)

	require.NoError(t, svc.SetHistoryLimit(10))

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, 10, settings.History.Limit)

	assert.Error(t, svc.SetHistoryLimit(0))
	assert.Error(t, svc.SetHistoryLimit(-1))
}

func TestSettings_SetCatalogPath(t *testing.T) {
	svc := NewSettings(newMockConfigStore(), nil)

	require.NoError(t, svc.SetCatalogPath("other.csv"))

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, "other.csv", settings.Catalog.Path)

	assert.Error(t, svc.SetCatalogPath(""))
}

func TestSettings_Validate(t *testing.T) {
	store := newMockConfigStore()
	svc := NewSettings(store, nil)

	// Default provider is openai without an API key.
	err := svc.Validate()
	assert.ErrorIs(t, err, domain.ErrLLMUnavailable)

	require.NoError(t, svc.SetLLMProvider(domain.AIProviderOpenAI, "", "sk-test"))
	assert.NoError(t, svc.Validate())
}

func TestSettings_ValidateLLMConfig(t *testing.T) {
	store := newMockConfigStore()

	// Nil validator is a no-op.
	svc := NewSettings(store, nil)
	assert.NoError(t, svc.ValidateLLMConfig())

	var seen *domain.LLMSettings
	svc = NewSettings(store, func(settings *domain.LLMSettings) error {
		seen = settings
		return errors.New("unreachable")
	})
	require.NoError(t, store.Set("llm.api_key", "sk-test"))

	err := svc.ValidateLLMConfig()
	assert.ErrorContains(t, err, "unreachable")
	require.NotNil(t, seen)
	assert.Equal(t, "sk-test", seen.APIKey)
}
