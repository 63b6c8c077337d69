// Package service provides domain services for MemoHalo.
//
// IdentityService is the credential store: it registers identities and
// verifies secrets.
package service

import (
	"context"
	"errors"

	"github.com/yndnr/memohalo-go/internal/core/domain"
)

// IdentityRepository defines the storage interface for identities.
type IdentityRepository interface {
	// Create stores a new identity. It fails with domain.ErrIdentityExists
	// if the username is taken; the check and insert are atomic.
	Create(ctx context.Context, identity *domain.Identity) error

	// Get retrieves an identity by username.
	// Returns domain.ErrIdentityNotFound if it does not exist.
	Get(ctx context.Context, username string) (*domain.Identity, error)

	// Count returns the number of registered identities.
	Count(ctx context.Context) (int, error)
}

// IdentityService handles registration and sign-in verification.
type IdentityService struct {
	repo IdentityRepository

	// dummyHash is verified against when the username is unknown so that
	// both failure paths cost one Argon2 derivation.
	dummyHash string
}

// NewIdentityService creates a new IdentityService.
func NewIdentityService(repo IdentityRepository) *IdentityService {
	dummy, err := domain.HashSecret("memohalo-dummy-secret")
	if err != nil {
		// crypto/rand failure; unknown users still fail verification.
		dummy = ""
	}
	return &IdentityService{
		repo:      repo,
		dummyHash: dummy,
	}
}

// Register creates a new identity.
// Returns domain.ErrIdentityExists if the username is already registered.
func (s *IdentityService) Register(ctx context.Context, username, secret string) (*domain.Identity, error) {
	if username == "" {
		return nil, domain.ErrInvalidArgument.WithDetails("username is required")
	}

	identity, err := domain.NewIdentity(username, secret)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, identity); err != nil {
		return nil, storageErr(err)
	}
	return identity.Clone(), nil
}

// Verify checks username and secret.
// Unknown usernames and wrong secrets both return domain.ErrAuthFailure.
func (s *IdentityService) Verify(ctx context.Context, username, secret string) (*domain.Identity, error) {
	identity, err := s.repo.Get(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrIdentityNotFound) {
			domain.VerifySecretHash(secret, s.dummyHash)
			return nil, domain.ErrAuthFailure
		}
		return nil, storageErr(err)
	}

	if !identity.VerifySecret(secret) {
		return nil, domain.ErrAuthFailure
	}
	return identity, nil
}

// Count returns the number of registered identities.
func (s *IdentityService) Count(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	return n, storageErr(err)
}
