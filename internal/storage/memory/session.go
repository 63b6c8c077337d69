package memory

import (
	"context"
	"sync"

	"github.com/yndnr/memohalo-go/internal/core/domain"
)

// SessionStore provides in-memory session storage keyed by token hash.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

// NewSessionStore creates a new session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*domain.Session),
	}
}

// Create stores a new session.
func (s *SessionStore) Create(_ context.Context, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[session.TokenHash]; exists {
		return domain.ErrTokenConflict
	}

	s.sessions[session.TokenHash] = session.Clone()
	return nil
}

// Touch updates LastActive and returns a copy of the session.
func (s *SessionStore) Touch(_ context.Context, tokenHash string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[tokenHash]
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	session.Touch()
	return session.Clone(), nil
}

// Delete removes a session.
func (s *SessionStore) Delete(_ context.Context, tokenHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[tokenHash]; !ok {
		return domain.ErrUnauthenticated
	}
	delete(s.sessions, tokenHash)
	return nil
}

// Count returns the number of live sessions.
func (s *SessionStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions), nil
}
