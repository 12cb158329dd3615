package driven

// Prompt names used with PromptStore.
const (
	// PromptSystem is the fixed system instruction asserting the
	// assistant's specialization and output language.
	PromptSystem = "system"

	// PromptAnswer is the grounded answer template. It takes five %s
	// placeholders: description, usage instructions, advantages,
	// presentation, question.
	PromptAnswer = "answer"
)

// PromptStore loads prompt templates, allowing users to customise them.
// Implementations fall back to embedded defaults when a template is
// unavailable.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	Load(name string) (string, error)
}
