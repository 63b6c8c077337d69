// Package logger provides structured logging for MemoHalo.
//
// It wraps log/slog:
//
//   - logger.go: handler construction, runtime level control
//   - context.go: request ID propagation
//   - redact.go: sensitive data redaction
//
// Every handler built here adds the request ID carried by the context of a
// *Context call. Session tokens (mhtk_) are partially masked wherever they
// appear as a string value, and values under credential-like keys are
// replaced entirely.
package logger
