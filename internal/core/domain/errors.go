// Package domain defines the core domain models for MemoHalo.
package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business domain error with a structured error code.
// Codes follow the format MH-<AREA>-<NNNN>; the last four digits start with
// the HTTP status the boundary maps them to.
type DomainError struct {
	Code    string // Error code (e.g., "MH-MEMO-4040")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// WithDetails returns a copy of the error carrying details.
// Sentinels are shared, so they are never modified in place.
func (e *DomainError) WithDetails(details string) *DomainError {
	c := *e
	c.Details = details
	return &c
}

// WithCause returns a copy of the error wrapping cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	c := *e
	c.Cause = cause
	return &c
}

// IsDomainError reports whether err wraps a DomainError with code.
// An empty code matches any DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	return errors.As(err, &de) && (code == "" || de.Code == code)
}

// GetErrorCode returns the code of the DomainError in err's chain, or "".
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// Identity and session errors.
var (
	// ErrUnauthenticated: the session token is absent or unknown.
	ErrUnauthenticated = NewDomainError("MH-AUTH-4010", "unauthenticated")
	// ErrAuthFailure: unknown username or wrong secret. Both look the same
	// to the caller.
	ErrAuthFailure = NewDomainError("MH-AUTH-4011", "invalid username or password")
	// ErrIdentityNotFound is a storage-level miss. Services report it as
	// ErrAuthFailure.
	ErrIdentityNotFound = NewDomainError("MH-AUTH-4040", "identity not found")
	ErrIdentityExists   = NewDomainError("MH-AUTH-4090", "username already exists")
	// ErrTokenConflict: a new token hashed to a live session's hash.
	ErrTokenConflict = NewDomainError("MH-AUTH-4091", "session token conflict")
)

// Memo list errors.
var (
	// ErrInvalidIndex: the index is outside [0, len).
	ErrInvalidIndex = NewDomainError("MH-MEMO-4040", "invalid memo index")
	// ErrInvalidMemo: a field is empty, or an update supplied no field.
	ErrInvalidMemo = NewDomainError("MH-MEMO-4220", "invalid memo")
)

// Request and system errors.
var (
	ErrBadRequest      = NewDomainError("MH-SYS-4000", "bad request")
	ErrRateLimited     = NewDomainError("MH-SYS-4290", "too many requests")
	ErrInternalServer  = NewDomainError("MH-SYS-5000", "internal server error")
	ErrStorageError    = NewDomainError("MH-SYS-5001", "storage error")
	ErrInvalidArgument = NewDomainError("MH-ARG-1001", "invalid argument")
)
