// Package token provides token generation, hashing and signing utilities.
package token

import (
	"crypto/rand"
	"encoding/base64"
	"strings"
)

// DefaultLength is the default token length in bytes.
const DefaultLength = 32

// Generate generates a cryptographically secure random token.
//
// The returned token is Base64 RawURL encoded for safe cookie transmission.
func Generate() (string, error) {
	return GenerateWithLength(DefaultLength)
}

// GenerateWithLength generates a token with the specified byte length.
func GenerateWithLength(length int) (string, error) {
	b, err := GenerateBytes(length)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// GeneratePrefixed generates a DefaultLength token and prepends prefix.
func GeneratePrefixed(prefix string) (string, error) {
	body, err := Generate()
	if err != nil {
		return "", err
	}
	return prefix + body, nil
}

// GenerateBytes generates random bytes.
func GenerateBytes(length int) ([]byte, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

// HasValidBody reports whether s is prefix followed by a Base64 RawURL
// body that decodes to exactly DefaultLength bytes.
func HasValidBody(s, prefix string) bool {
	if !strings.HasPrefix(s, prefix) {
		return false
	}
	decoded, err := base64.RawURLEncoding.DecodeString(s[len(prefix):])
	if err != nil {
		return false
	}
	return len(decoded) == DefaultLength
}
