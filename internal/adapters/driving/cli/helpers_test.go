package cli

import (
	"context"

	"github.com/Pablo751/dientes/internal/core/domain"
)

// mockCatalogService serves a fixed product list.
type mockCatalogService struct {
	products []domain.Product
	loadErr  error
}

func (m *mockCatalogService) Load(_ context.Context, _ string) error { return m.loadErr }

func (m *mockCatalogService) Products(_ context.Context) ([]domain.Product, error) {
	return m.products, nil
}

func (m *mockCatalogService) Resolve(_ context.Context, selection string) (domain.Product, error) {
	for _, p := range m.products {
		if p.Name == selection {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrNotFound
}

func (m *mockCatalogService) Count(_ context.Context) int { return len(m.products) }

// mockAssistantService returns a canned answer or error.
type mockAssistantService struct {
	answer domain.Answer
	err    error

	lastSelection string
	lastQuestion  string
}

func (m *mockAssistantService) Ask(_ context.Context, sess *domain.Session, selection, question string) (domain.Answer, error) {
	m.lastSelection = selection
	m.lastQuestion = question
	if m.err != nil {
		return domain.Answer{}, m.err
	}
	if sess != nil && sess.Conversation != nil {
		sess.Conversation.Append(question, m.answer.Text)
	}
	return m.answer, nil
}

func (m *mockAssistantService) CacheSize() int { return 0 }

// mockSettingsService serves fixed settings.
type mockSettingsService struct {
	settings    domain.AppSettings
	validateErr error

	lastGenerationTokens int
	lastGenerationTemp   float64
	lastHistoryLimit     int
	lastCatalogPath      string
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) Save(_ *domain.AppSettings) error { return nil }

func (m *mockSettingsService) SetLLMProvider(provider domain.AIProvider, model, apiKey string) error {
	m.settings.LLM.Provider = provider
	m.settings.LLM.Model = model
	m.settings.LLM.APIKey = apiKey
	return nil
}

func (m *mockSettingsService) SetGeneration(maxOutputTokens int, temperature float64) error {
	m.lastGenerationTokens = maxOutputTokens
	m.lastGenerationTemp = temperature
	return nil
}

func (m *mockSettingsService) SetHistoryLimit(limit int) error {
	m.lastHistoryLimit = limit
	return nil
}

func (m *mockSettingsService) SetCatalogPath(path string) error {
	m.lastCatalogPath = path
	return nil
}

func (m *mockSettingsService) Validate() error          { return m.validateErr }
func (m *mockSettingsService) ValidateLLMConfig() error { return nil }

// setupTestServices injects mocks for all package-level services and
// returns a cleanup restoring the previous wiring.
func setupTestServices() func() {
	oldCatalog := catalogService
	oldAssistant := assistantService
	oldSettings := settingsService
	oldHistoryLimit := historyLimit

	catalogService = &mockCatalogService{products: []domain.Product{
		{
			Name:              "Floss X",
			Description:       "Floss X: waxed dental floss",
			UsageInstructions: "Use daily",
			Advantages:        "Strong",
			Presentation:      "30m roll",
		},
		{
			Name:              "Brush Y",
			Description:       "Brush Y: soft toothbrush",
			UsageInstructions: "Brush twice a day",
			Advantages:        "Gentle",
			Presentation:      "Single unit",
		},
	}}
	assistantService = &mockAssistantService{answer: domain.Answer{
		Product:  "Floss X",
		Question: "How often?",
		Text:     "Once per day.",
	}}
	settingsService = &mockSettingsService{settings: domain.DefaultAppSettings()}
	historyLimit = domain.DefaultHistoryLimit

	return func() {
		catalogService = oldCatalog
		assistantService = oldAssistant
		settingsService = oldSettings
		historyLimit = oldHistoryLimit
	}
}
