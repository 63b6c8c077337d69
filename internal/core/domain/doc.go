// Package domain defines the core domain models for MemoHalo.
//
// Domain models are pure value objects and entities without any
// IO dependencies or framework coupling. This package contains:
//
//   - Identity: a registered username and its hashed secret
//   - Session: a live binding from a session token to an identity
//   - Token: session token generation and hashing
//   - Memo: the shared, index-addressed note entity
//   - Errors: Domain-specific error definitions
package domain
