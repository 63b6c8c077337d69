// Package domain defines the core domain models for MemoHalo.
package domain

import "github.com/yndnr/memohalo-go/pkg/token"

// Token constants.
const (
	// TokenPrefix is the prefix for session tokens.
	TokenPrefix = "mhtk_"

	// TokenHashPrefix is the prefix for token hashes.
	TokenHashPrefix = "mhth_"

	// TokenLength is the total token length (prefix + 43 body chars).
	TokenLength = 5 + 43

	// TokenHashLength is the total token hash length (prefix + hex SHA-256).
	TokenHashLength = 5 + 64
)

// GenerateToken generates a cryptographically secure session token.
// Returns the plaintext token (mhtk_...) and its hash (mhth_...).
//
// The plaintext is handed to the client once, in the session cookie.
// Only the hash is stored.
func GenerateToken() (plaintext string, hash string, err error) {
	plaintext, err = token.GeneratePrefixed(TokenPrefix)
	if err != nil {
		return "", "", ErrInternalServer.WithCause(err)
	}
	return plaintext, HashToken(plaintext), nil
}

// HashToken computes the SHA-256 hash of a token.
// Returns the hash in format: mhth_{hex_sha256}.
func HashToken(plaintext string) string {
	return token.HashPrefixed(plaintext, TokenHashPrefix)
}

// ValidateTokenFormat checks if a string has valid session token format.
func ValidateTokenFormat(tok string) bool {
	return len(tok) == TokenLength && token.HasValidBody(tok, TokenPrefix)
}
