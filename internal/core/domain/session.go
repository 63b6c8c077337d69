package domain

import (
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// SessionIDPrefix is the prefix for session IDs.
const SessionIDPrefix = "mhss-"

// Session binds a token hash to a username until sign-out or process exit.
// There is no expiry.
type Session struct {
	// ID is a public, sortable identifier for logs. Never used for lookup.
	ID string `json:"id"`

	// TokenHash is HashToken of the plaintext token, the store's lookup key.
	TokenHash string `json:"token_hash"`

	Username string `json:"username"`

	// Unix milliseconds.
	CreatedAt  int64 `json:"created_at"`
	LastActive int64 `json:"last_active"`
}

// NewSession creates a session for username bound to tokenHash.
func NewSession(username, tokenHash string) (*Session, error) {
	id, err := GenerateSessionID()
	if err != nil {
		return nil, err
	}

	now := time.Now().UnixMilli()
	return &Session{
		ID:         id,
		TokenHash:  tokenHash,
		Username:   username,
		CreatedAt:  now,
		LastActive: now,
	}, nil
}

// GenerateSessionID returns "mhss-" and a lower-case ULID. IDs issued by
// one process increase monotonically.
func GenerateSessionID() (id string, err error) {
	defer func() {
		// ulid.Make panics only if the entropy source fails.
		if r := recover(); r != nil {
			err = ErrInternalServer.WithDetails("session id entropy exhausted")
		}
	}()
	return SessionIDPrefix + strings.ToLower(ulid.Make().String()), nil
}

// Touch records activity now.
func (s *Session) Touch() {
	s.LastActive = time.Now().UnixMilli()
}

// Clone returns a copy of the session.
func (s *Session) Clone() *Session {
	c := *s
	return &c
}
