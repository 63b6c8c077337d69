package handler

import "time"

// Response is the standard API response envelope.
// All JSON responses use this format (except /metrics which uses Prometheus format).
type Response struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
	Timestamp int64  `json:"timestamp"`
	Data      any    `json:"data,omitempty"`
	Details   any    `json:"details,omitempty"`
}

// NewResponse creates a success response.
func NewResponse(requestID string, data any) *Response {
	return &Response{
		Code:      "OK",
		Message:   "Success",
		RequestID: requestID,
		Timestamp: time.Now().UnixMilli(),
		Data:      data,
	}
}

// NewErrorResponse creates an error response.
func NewErrorResponse(requestID, code, message string, details any) *Response {
	return &Response{
		Code:      code,
		Message:   message,
		RequestID: requestID,
		Timestamp: time.Now().UnixMilli(),
		Details:   details,
	}
}

// CredentialsRequest is the body of POST /user/sign-up and /user/sign-in.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse identifies a user.
type UserResponse struct {
	Username string `json:"username"`
}

// SignOutResponse is the body of a successful POST /user/sign-out.
type SignOutResponse struct {
	Success bool `json:"success"`
}

// MemoRequest is the body of PUT /memo and PATCH /memo/{index}.
// Data is required; a client-supplied author is ignored.
type MemoRequest struct {
	Data *string `json:"data"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	GoVersion string `json:"go_version"`
	Time      string `json:"time"`
}

// ReadyResponse is the body of GET /ready.
type ReadyResponse struct {
	Status     string `json:"status"`
	Version    string `json:"version"`
	Identities int    `json:"identities"`
	Sessions   int    `json:"sessions"`
	Memos      int    `json:"memos"`
}
