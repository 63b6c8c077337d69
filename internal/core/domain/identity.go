// Package domain defines the core domain models for MemoHalo.
package domain

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/argon2"
)

// Argon2 parameters for identity secret hashing.
const (
	// Argon2Memory is the memory parameter in KB (16 MB).
	Argon2Memory uint32 = 16384

	// Argon2Time is the iteration count.
	Argon2Time uint32 = 2

	// Argon2Parallelism is the parallelism factor.
	Argon2Parallelism uint8 = 2

	// Argon2KeyLen is the output hash length in bytes.
	Argon2KeyLen uint32 = 32

	// Argon2SaltLen is the salt length in bytes.
	Argon2SaltLen = 16
)

// MaxUsernameLength bounds usernames accepted at the boundary.
const MaxUsernameLength = 64

// Identity is a registered user. It is created on registration and never
// mutated afterwards.
type Identity struct {
	// Username is the unique, immutable name of the identity.
	Username string `json:"username"`

	// SecretHash is the Argon2id encoded hash of the secret.
	SecretHash string `json:"secret_hash"`

	// CreatedAt is the registration timestamp (Unix milliseconds).
	CreatedAt int64 `json:"created_at"`
}

// NewIdentity creates an Identity with the secret hashed.
func NewIdentity(username, secret string) (*Identity, error) {
	hash, err := HashSecret(secret)
	if err != nil {
		return nil, ErrInternalServer.WithCause(err)
	}

	return &Identity{
		Username:   username,
		SecretHash: hash,
		CreatedAt:  time.Now().UnixMilli(),
	}, nil
}

// VerifySecret reports whether secret matches the stored hash.
func (i *Identity) VerifySecret(secret string) bool {
	return VerifySecretHash(secret, i.SecretHash)
}

// Clone returns a copy of the identity.
func (i *Identity) Clone() *Identity {
	c := *i
	return &c
}

// HashSecret hashes a secret using Argon2id.
// Format: $argon2id$v=19$m=16384,t=2,p=2$<salt>$<hash>
func HashSecret(secret string) (string, error) {
	salt := make([]byte, Argon2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	hash := argon2.IDKey([]byte(secret), salt, Argon2Time, Argon2Memory, Argon2Parallelism, Argon2KeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, Argon2Memory, Argon2Time, Argon2Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// VerifySecretHash verifies a secret against an Argon2id encoded hash.
func VerifySecretHash(secret, encoded string) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false
	}

	var memory, iterations uint32
	var parallelism uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &parallelism); err != nil {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false
	}

	computed := argon2.IDKey([]byte(secret), salt, iterations, memory, parallelism, uint32(len(expected)))
	return subtle.ConstantTimeCompare(computed, expected) == 1
}
