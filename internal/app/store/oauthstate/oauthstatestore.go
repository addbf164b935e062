// internal/app/store/oauthstate/oauthstatestore.go
package oauthstate

import (
	"sync"
	"time"
)

// stateTTL is how long an OAuth state token stays valid.
const stateTTL = 10 * time.Minute

// Store holds short-lived OAuth state tokens in memory.
type Store struct {
	mu     sync.Mutex
	states map[string]time.Time // state -> expiry
}

// New creates an OAuth state store.
func New() *Store {
	return &Store{states: make(map[string]time.Time)}
}

// Create stores a new OAuth state token (expires in 10 minutes).
func (s *Store) Create(state string) {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Opportunistically drop expired tokens so the map stays small.
	for st, exp := range s.states {
		if now.After(exp) {
			delete(s.states, st)
		}
	}
	s.states[state] = now.Add(stateTTL)
}

// Verify checks if a state token is valid and deletes it (single use).
func (s *Store) Verify(state string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	exp, ok := s.states[state]
	if !ok {
		return false
	}
	delete(s.states, state)
	return time.Now().Before(exp)
}
