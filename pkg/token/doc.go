// Package token provides token generation, hashing and signing utilities.
//
// Session Token Format:
//
//   - Prefix: mhtk_ (5 characters)
//   - Body: 43 characters of Base64 RawURL encoded random bytes
//   - Total: 48 characters
//
// Token Hash Format:
//
//   - Prefix: mhth_ (5 characters)
//   - Body: 64 characters of hex-encoded SHA-256 hash
//   - Total: 69 characters
//
// Signed values carry an HMAC-SHA256 signature after a "." separator and
// are used for the session cookie when a cookie secret is configured.
//
// Security:
//
//   - Uses crypto/rand for CSPRNG
//   - Constant-time comparison for hashes and signatures
//   - Only hashes are stored, plaintext tokens are handed to the client once
package token
