// Package httpserver provides the HTTP/HTTPS server for MemoHalo.
//
// This package implements the external API using stdlib net/http:
//
//   - User endpoints: /user/sign-up, /user/sign-in, /user/sign-out, /user/profile
//   - Memo endpoints: /memo, /memo/{index}
//   - Health endpoints: /health, /ready, /metrics
//
// Every request passes RequestID, Recover, Audit and Metrics. Routes that
// need a caller identity are additionally wrapped in Identity, which
// resolves the session cookie; sign-in is throttled per client IP.
package httpserver
