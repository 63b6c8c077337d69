// Package service provides domain services for MemoHalo.
//
// Services implement business logic on top of domain models. They define
// interfaces for storage dependencies, allowing for dependency injection
// and testability.
//
// This package contains:
//
//   - IdentityService: registration and credential verification
//   - SessionService: session token issue, resolution and sign-out
//   - MemoService: index-addressed CRUD on the shared memo list
//
// Services hold no state of their own; each repository serializes its
// own mutations.
package service
