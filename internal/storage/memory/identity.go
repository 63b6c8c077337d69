package memory

import (
	"context"
	"sync"

	"github.com/yndnr/memohalo-go/internal/core/domain"
)

// IdentityStore provides in-memory storage for identities.
type IdentityStore struct {
	mu         sync.RWMutex
	identities map[string]*domain.Identity
}

// NewIdentityStore creates a new identity store.
func NewIdentityStore() *IdentityStore {
	return &IdentityStore{
		identities: make(map[string]*domain.Identity),
	}
}

// Create stores a new identity.
func (s *IdentityStore) Create(_ context.Context, identity *domain.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.identities[identity.Username]; exists {
		return domain.ErrIdentityExists
	}

	s.identities[identity.Username] = identity.Clone()
	return nil
}

// Get retrieves an identity by username.
func (s *IdentityStore) Get(_ context.Context, username string) (*domain.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	identity, ok := s.identities[username]
	if !ok {
		return nil, domain.ErrIdentityNotFound
	}
	return identity.Clone(), nil
}

// Count returns the number of identities.
func (s *IdentityStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.identities), nil
}
