// Package handler provides HTTP request handlers for MemoHalo.
//
// Handlers decode and validate request bodies, call the core services and
// write the standard JSON envelope. Routing and middleware live in the
// parent httpserver package.
package handler
