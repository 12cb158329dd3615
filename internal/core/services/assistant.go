package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/Pablo751/dientes/internal/core/domain"
	"github.com/Pablo751/dientes/internal/core/ports/driven"
	"github.com/Pablo751/dientes/internal/core/ports/driving"
	"github.com/Pablo751/dientes/internal/logger"
)

// Ensure Assistant implements the interface.
var _ driving.AssistantService = (*Assistant)(nil)

// AssistantConfig wires the assistant's collaborators and generation budget.
type AssistantConfig struct {
	Catalog driving.CatalogService
	Builder *PromptBuilder
	LLM     driven.LLMService
	Cache   driven.AnswerCache

	// MaxOutputTokens is the response-length budget per backend call.
	MaxOutputTokens int

	// Temperature is the fixed sampling temperature.
	Temperature float64

	// Limiter optionally throttles backend calls. Nil disables throttling.
	Limiter *rate.Limiter
}

// Assistant answers product questions with cache-aware deduplication.
// Identical (record, question) pairs hit the backend at most once: answers
// are memoized by a key derived from the full record content and the exact
// question bytes, and duplicate in-flight generations for the same key are
// coalesced onto a single backend call.
type Assistant struct {
	catalog   driving.CatalogService
	builder   *PromptBuilder
	llm       driven.LLMService
	cache     driven.AnswerCache
	limiter   *rate.Limiter
	maxTokens int
	temp      float64
	group     singleflight.Group
}

// NewAssistant creates an assistant service.
func NewAssistant(cfg AssistantConfig) *Assistant {
	maxTokens := cfg.MaxOutputTokens
	if maxTokens <= 0 {
		maxTokens = domain.DefaultMaxOutputTokens
	}
	temp := cfg.Temperature
	if temp <= 0 {
		temp = domain.DefaultTemperature
	}

	return &Assistant{
		catalog:   cfg.Catalog,
		builder:   cfg.Builder,
		llm:       cfg.LLM,
		cache:     cfg.Cache,
		limiter:   cfg.Limiter,
		maxTokens: maxTokens,
		temp:      temp,
	}
}

// generation is the singleflight result for one backend round trip.
type generation struct {
	text      string
	fromCache bool
}

// Ask answers one question about the selected product. Blank questions and
// unresolvable selections fail before any backend work. Backend failures
// come back as a failed Answer with a user-facing diagnostic and are never
// cached, so a later retry with the same inputs reaches the backend again.
// The exchange is appended to the session's conversation log either way.
func (a *Assistant) Ask(ctx context.Context, sess *domain.Session, selection, question string) (domain.Answer, error) {
	if strings.TrimSpace(question) == "" {
		return domain.Answer{}, domain.ErrEmptyQuestion
	}
	if a.llm == nil {
		return domain.Answer{}, domain.ErrLLMUnavailable
	}

	product, err := a.catalog.Resolve(ctx, selection)
	if err != nil {
		return domain.Answer{}, err
	}

	// The question participates in the key byte-for-byte: case and
	// whitespace variants are distinct inputs.
	key := domain.CacheKey(product, question)

	if text, ok := a.cache.Get(key); ok {
		logger.Debug("cache hit for product %q", product.Name)
		return a.record(sess, domain.Answer{
			Question:  question,
			Text:      text,
			Product:   product.Name,
			FromCache: true,
		}), nil
	}

	v, err, _ := a.group.Do(key, func() (any, error) {
		// A coalesced waiter may arrive after the winner already stored
		// the answer.
		if text, ok := a.cache.Get(key); ok {
			return generation{text: text, fromCache: true}, nil
		}
		text, err := a.generate(ctx, product, question)
		if err != nil {
			return nil, err
		}
		a.cache.Put(key, text)
		return generation{text: text}, nil
	})
	if err != nil {
		logger.Warn("generation failed for product %q: %v", product.Name, err)
		return a.record(sess, domain.Answer{
			Question: question,
			Text:     fmt.Sprintf("Ocurrió un error al procesar tu solicitud: %v", err),
			Product:  product.Name,
			Failed:   true,
			Cause:    err.Error(),
		}), nil
	}

	gen := v.(generation)
	return a.record(sess, domain.Answer{
		Question:  question,
		Text:      gen.text,
		Product:   product.Name,
		FromCache: gen.fromCache,
	}), nil
}

// generate performs one backend round trip and trims the result.
func (a *Assistant) generate(ctx context.Context, product domain.Product, question string) (string, error) {
	pc := a.builder.Build(product, question)

	if a.limiter != nil {
		if err := a.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limit wait: %w", err)
		}
	}

	text, err := a.llm.Chat(ctx, []driven.ChatMessage{
		{Role: "system", Content: pc.System},
		{Role: "user", Content: pc.User},
	}, driven.ChatOptions{
		MaxTokens:   a.maxTokens,
		Temperature: a.temp,
	})
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(text), nil
}

// record appends the exchange to the session log and returns the answer.
func (a *Assistant) record(sess *domain.Session, ans domain.Answer) domain.Answer {
	if sess != nil && sess.Conversation != nil {
		sess.Conversation.Append(ans.Question, ans.Text)
	}
	return ans
}

// CacheSize returns the number of memoized answers.
func (a *Assistant) CacheSize() int {
	if a.cache == nil {
		return 0
	}
	return a.cache.Len()
}
