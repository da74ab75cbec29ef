package session

import "sync"

// MemoryStore is an in-memory implementation of Store. It is concurrency-safe
// and intended for single-process deployments or testing. Concurrent logins
// race with last-write-wins semantics; the lock only guarantees the token is
// replaced as a whole, never observed half-written.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
	held  bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.held = true
}

func (s *MemoryStore) Get() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.held
}

func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.held = false
}
