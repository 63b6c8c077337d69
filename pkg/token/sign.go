// Package token provides token generation, hashing and signing utilities.
package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
)

// signatureSeparator separates a value from its signature.
const signatureSeparator = "."

// Sign returns value with an HMAC-SHA256 signature appended.
// An empty secret returns value unchanged.
func Sign(value, secret string) string {
	if secret == "" {
		return value
	}
	return value + signatureSeparator + signature(value, secret)
}

// Unsign verifies a signed value and returns the original value.
// An empty secret returns signed unchanged.
func Unsign(signed, secret string) (string, bool) {
	if secret == "" {
		return signed, signed != ""
	}

	idx := strings.LastIndex(signed, signatureSeparator)
	if idx <= 0 || idx == len(signed)-1 {
		return "", false
	}

	value, sig := signed[:idx], signed[idx+1:]
	if !hmac.Equal([]byte(sig), []byte(signature(value, secret))) {
		return "", false
	}
	return value, true
}

func signature(value, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(value))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
