package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/yndnr/memohalo-go/internal/core/domain"
)

const identityKeyPrefix = "identity/"

// KVIdentityStore keeps identities as JSON records in a KVEngine.
type KVIdentityStore struct {
	kv KVEngine
}

// NewKVIdentityStore creates an identity store over kv.
func NewKVIdentityStore(kv KVEngine) *KVIdentityStore {
	return &KVIdentityStore{kv: kv}
}

func identityKey(username string) []byte {
	return []byte(identityKeyPrefix + username)
}

// Create stores a new identity.
func (s *KVIdentityStore) Create(ctx context.Context, identity *domain.Identity) error {
	value, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}

	err = s.kv.SetIfAbsent(ctx, identityKey(identity.Username), value)
	if errors.Is(err, ErrKeyExists) {
		return domain.ErrIdentityExists
	}
	return err
}

// Get retrieves an identity by username.
func (s *KVIdentityStore) Get(ctx context.Context, username string) (*domain.Identity, error) {
	value, err := s.kv.Get(ctx, identityKey(username))
	if errors.Is(err, ErrKeyNotFound) {
		return nil, domain.ErrIdentityNotFound
	}
	if err != nil {
		return nil, err
	}

	var identity domain.Identity
	if err := json.Unmarshal(value, &identity); err != nil {
		return nil, fmt.Errorf("decode identity %q: %w", username, err)
	}
	return &identity, nil
}

// Count returns the number of stored identities.
func (s *KVIdentityStore) Count(ctx context.Context) (int, error) {
	n := 0
	err := s.kv.Scan(ctx, []byte(identityKeyPrefix), func(_, _ []byte) bool {
		n++
		return true
	})
	return n, err
}
