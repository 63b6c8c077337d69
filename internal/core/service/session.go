// Package service provides domain services for MemoHalo.
//
// SessionService issues, resolves and ends session tokens.
package service

import (
	"context"
	"errors"

	"github.com/yndnr/memohalo-go/internal/core/domain"
)

// maxTokenAttempts bounds token regeneration on hash collision.
const maxTokenAttempts = 3

// SessionRepository defines the storage interface for sessions.
// Sessions are keyed by token hash; the plaintext token is never stored.
type SessionRepository interface {
	// Create stores a new session.
	// Returns domain.ErrTokenConflict if the token hash is already live.
	Create(ctx context.Context, session *domain.Session) error

	// Touch marks the session as active and returns a copy of it.
	// Returns domain.ErrUnauthenticated if no session has the hash.
	Touch(ctx context.Context, tokenHash string) (*domain.Session, error)

	// Delete removes the session.
	// Returns domain.ErrUnauthenticated if no session has the hash.
	Delete(ctx context.Context, tokenHash string) error

	// Count returns the number of live sessions.
	Count(ctx context.Context) (int, error)
}

// SessionService handles session lifecycle operations.
type SessionService struct {
	repo     SessionRepository
	generate func() (plaintext, hash string, err error)
}

// NewSessionService creates a new SessionService.
func NewSessionService(repo SessionRepository) *SessionService {
	return &SessionService{
		repo:     repo,
		generate: domain.GenerateToken,
	}
}

// CreateSessionResponse contains the result of session creation.
type CreateSessionResponse struct {
	// Token is the plaintext token. It is returned only here.
	Token string

	// Session is a copy of the stored session.
	Session *domain.Session
}

// Create issues a new session for identity.
// The token is unique among live sessions.
func (s *SessionService) Create(ctx context.Context, identity *domain.Identity) (*CreateSessionResponse, error) {
	if identity == nil || identity.Username == "" {
		return nil, domain.ErrInvalidArgument.WithDetails("identity is required")
	}

	for attempt := 0; attempt < maxTokenAttempts; attempt++ {
		plaintext, hash, err := s.generate()
		if err != nil {
			return nil, err
		}

		session, err := domain.NewSession(identity.Username, hash)
		if err != nil {
			return nil, err
		}

		err = s.repo.Create(ctx, session)
		if errors.Is(err, domain.ErrTokenConflict) {
			continue
		}
		if err != nil {
			return nil, storageErr(err)
		}

		return &CreateSessionResponse{
			Token:   plaintext,
			Session: session.Clone(),
		}, nil
	}

	return nil, domain.ErrTokenConflict.WithDetails("token generation kept colliding")
}

// Resolve returns the session bound to token.
// Returns domain.ErrUnauthenticated when the token is empty, malformed or unknown.
func (s *SessionService) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	if !domain.ValidateTokenFormat(token) {
		return nil, domain.ErrUnauthenticated
	}

	session, err := s.repo.Touch(ctx, domain.HashToken(token))
	if err != nil {
		return nil, storageErr(err)
	}
	return session, nil
}

// End invalidates token. Later Resolve calls for it fail.
// Returns domain.ErrUnauthenticated if the token was not live.
func (s *SessionService) End(ctx context.Context, token string) error {
	if !domain.ValidateTokenFormat(token) {
		return domain.ErrUnauthenticated
	}
	return storageErr(s.repo.Delete(ctx, domain.HashToken(token)))
}

// Count returns the number of live sessions.
func (s *SessionService) Count(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	return n, storageErr(err)
}
