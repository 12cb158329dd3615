package memory

import (
	"sync"

	"github.com/Pablo751/dientes/internal/core/ports/driven"
)

// Ensure AnswerCache implements the interface.
var _ driven.AnswerCache = (*AnswerCache)(nil)

// AnswerCache is an in-memory implementation of driven.AnswerCache.
// Entries are never evicted within a session; callers that need a bound
// can swap in an LRU variant behind the same port.
type AnswerCache struct {
	mu      sync.RWMutex
	answers map[string]string
}

// NewAnswerCache creates a new in-memory answer cache.
func NewAnswerCache() *AnswerCache {
	return &AnswerCache{answers: make(map[string]string)}
}

// Get returns the cached answer for key, if present.
func (c *AnswerCache) Get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	answer, ok := c.answers[key]
	return answer, ok
}

// Put stores an answer under key.
func (c *AnswerCache) Put(key, answer string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.answers[key] = answer
}

// Contains reports whether key is cached.
func (c *AnswerCache) Contains(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.answers[key]
	return ok
}

// Len returns the number of cached answers.
func (c *AnswerCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.answers)
}
