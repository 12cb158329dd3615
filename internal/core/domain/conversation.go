package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultHistoryLimit is the number of exchanges retained per session
// when no limit is configured.
const DefaultHistoryLimit = 5

// Exchange is one (question, answer) pair in a conversation.
type Exchange struct {
	Question string
	Answer   string
}

// Conversation is an ordered, size-bounded log of exchanges. The newest
// exchange is appended last; when the bound is exceeded the oldest entries
// are evicted first. Repeated identical questions produce repeated entries.
type Conversation struct {
	limit   int
	entries []Exchange
}

// NewConversation creates a conversation bounded at limit exchanges.
// A non-positive limit falls back to DefaultHistoryLimit.
func NewConversation(limit int) *Conversation {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &Conversation{limit: limit}
}

// Append adds an exchange at the end and evicts from the front until the
// log is within its bound.
func (c *Conversation) Append(question, answer string) {
	c.entries = append(c.entries, Exchange{Question: question, Answer: answer})
	for len(c.entries) > c.limit {
		c.entries = c.entries[1:]
	}
}

// Entries returns the exchanges in insertion order. The returned slice is
// a copy; callers display entries 1-indexed by convention.
func (c *Conversation) Entries() []Exchange {
	out := make([]Exchange, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of retained exchanges.
func (c *Conversation) Len() int {
	return len(c.entries)
}

// Limit returns the configured bound.
func (c *Conversation) Limit() int {
	return c.limit
}

// Session scopes one user's interactive use of the assistant. It owns the
// conversation log and is discarded when the session ends; nothing in it
// survives a process restart.
type Session struct {
	ID           string
	StartedAt    time.Time
	Conversation *Conversation
}

// NewSession creates a session with a fresh conversation log bounded at
// historyLimit exchanges.
func NewSession(historyLimit int) *Session {
	return &Session{
		ID:           uuid.NewString(),
		StartedAt:    time.Now(),
		Conversation: NewConversation(historyLimit),
	}
}
