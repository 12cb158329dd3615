package driving

import (
	"context"

	"github.com/Pablo751/dientes/internal/core/domain"
)

// AssistantService answers product questions. One submission runs to
// completion before the next is accepted for a given session.
type AssistantService interface {
	// Ask resolves the selected product, builds a grounded prompt, and
	// returns an answer (cached or freshly generated). Blank questions fail
	// with domain.ErrEmptyQuestion before any backend call; unresolvable
	// selections fail with domain.ErrNotFound. Backend failures are not
	// errors: they come back as an Answer with Failed set and are never
	// cached. Each completed generation is appended to the session's
	// conversation log.
	Ask(ctx context.Context, sess *domain.Session, selection, question string) (domain.Answer, error)

	// CacheSize returns the number of memoized answers.
	CacheSize() int
}
