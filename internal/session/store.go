// Package session keeps per-conversation dialog state isolated under
// distinct session keys. The engine itself is stateless; this store is the
// only mutable shared structure, guarded by a single mutex.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/carebridge-sg/carebot-go/internal/dialog"
	apperrors "github.com/carebridge-sg/carebot-go/internal/errors"
)

type entry struct {
	state     dialog.State
	updatedAt time.Time
}

// Store is an in-memory session registry with idle expiry.
// There is no cross-session persistence: a restart clears all sessions.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]entry
	ttl      time.Duration
	now      func() time.Time
}

// NewStore creates a Store. Sessions idle longer than ttl are removed by
// Sweep.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]entry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create registers a new session holding state and returns its key.
func (s *Store) Create(state dialog.State) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = entry{state: state, updatedAt: s.now()}
	s.mu.Unlock()
	return id
}

// Get returns the state for id.
func (s *Store) Get(id string) (dialog.State, error) {
	s.mu.RLock()
	e, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return dialog.State{}, apperrors.ErrSessionNotFound
	}
	return e.state, nil
}

// Put stores the next state for an existing session and refreshes its idle
// timer.
func (s *Store) Put(id string, state dialog.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return apperrors.ErrSessionNotFound
	}
	s.sessions[id] = entry{state: state, updatedAt: s.now()}
	return nil
}

// Delete removes a session. Deleting an unknown id is a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep removes sessions idle longer than the TTL and returns how many were
// removed.
func (s *Store) Sweep() int {
	cutoff := s.now().Add(-s.ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, e := range s.sessions {
		if e.updatedAt.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
