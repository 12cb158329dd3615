package services

import (
	"fmt"

	"github.com/Pablo751/dientes/internal/core/domain"
	"github.com/Pablo751/dientes/internal/core/ports/driven"
)

// defaultSystemPrompt is the fallback system instruction when no
// PromptStore is configured.
const defaultSystemPrompt = `Eres un asistente dental especializado y respondes siempre en español.`

// defaultAnswerPrompt is the fallback grounded answer template. The five
// placeholders are: description, usage instructions, advantages,
// presentation, question.
const defaultAnswerPrompt = `Eres un asistente dental especializado que ayuda a responder preguntas sobre productos dentales. Usa únicamente la siguiente información para tu respuesta en español.

**Descripción del Producto**: %s
**Instrucciones de Uso**: %s
**Ventajas**: %s
**Presentación**: %s

**Pregunta del Usuario**: %s
**Respuesta**:`

// PromptBuilder renders a (record, question) pair into a grounding-
// constrained prompt plus a fixed system instruction. Building performs no
// external calls and is deterministic: identical inputs always produce
// byte-identical output, which is what keeps the downstream cache key
// well-defined. Record fields are embedded in a fixed order (description,
// usage instructions, advantages, presentation).
type PromptBuilder struct {
	prompts driven.PromptStore
}

// NewPromptBuilder creates a prompt builder. The store may be nil, in which
// case the embedded defaults are used.
func NewPromptBuilder(prompts driven.PromptStore) *PromptBuilder {
	return &PromptBuilder{prompts: prompts}
}

// Build renders the prompt context for one generation request.
func (b *PromptBuilder) Build(product domain.Product, question string) domain.PromptContext {
	template := b.loadPrompt(driven.PromptAnswer, defaultAnswerPrompt)

	return domain.PromptContext{
		System: b.loadPrompt(driven.PromptSystem, defaultSystemPrompt),
		User: fmt.Sprintf(template,
			product.Description,
			product.UsageInstructions,
			product.Advantages,
			product.Presentation,
			question,
		),
	}
}

// loadPrompt loads a template from the store, falling back to the default
// if unavailable.
func (b *PromptBuilder) loadPrompt(name, fallback string) string {
	if b.prompts == nil {
		return fallback
	}
	prompt, err := b.prompts.Load(name)
	if err != nil {
		return fallback
	}
	return prompt
}
