package driven

// AnswerCache memoizes generated answers by cache key. Entries are
// populated lazily and live for the process lifetime; the cache is the only
// mutable shared structure, so implementations must be safe for concurrent
// use. Swappable for a bounded (e.g. LRU) variant without touching the
// generation logic.
type AnswerCache interface {
	// Get returns the cached answer for key, if present.
	Get(key string) (string, bool)

	// Put stores an answer under key. Only successful generations are
	// stored; failures must never be cached.
	Put(key, answer string)

	// Contains reports whether key is cached.
	Contains(key string) bool

	// Len returns the number of cached answers.
	Len() int
}
