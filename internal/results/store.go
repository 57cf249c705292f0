// Package results holds the most recent schedule built by the server.
package results

import (
	"sync"

	"github.com/jackzampolin/classgrid/internal/pipeline"
)

// Store holds at most one result. A new run always replaces the previous
// one; results are never merged.
type Store struct {
	mu      sync.RWMutex
	current *pipeline.Result
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Replace installs r as the current result and returns the one it displaced.
// A result without a schedule clears the store.
func (s *Store) Replace(r *pipeline.Result) *pipeline.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.current
	if r == nil || r.Outcome != pipeline.OutcomeScheduled {
		s.current = nil
	} else {
		s.current = r
	}
	return prev
}

// Current returns the current result, if any.
func (s *Store) Current() (*pipeline.Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.current != nil
}

// Clear drops the current result.
func (s *Store) Clear() {
	s.Replace(nil)
}
