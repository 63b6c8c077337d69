package command

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
)

// mockServer creates a test HTTP server with custom handlers.
type mockServer struct {
	*httptest.Server
	handlers map[string]http.HandlerFunc
	requests []*http.Request
	bodies   []string
}

// newMockServer creates a new mock server. Handlers are keyed by
// "METHOD /path".
func newMockServer(t *testing.T) *mockServer {
	m := &mockServer{
		handlers: make(map[string]http.HandlerFunc),
	}
	m.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		m.requests = append(m.requests, r)
		m.bodies = append(m.bodies, string(body))

		if handler, ok := m.handlers[r.Method+" "+r.URL.Path]; ok {
			handler(w, r)
			return
		}
		errorResponse(w, http.StatusNotFound, "MH-REQ-4040", "not found")
	}))
	t.Cleanup(m.Close)
	return m
}

// handle registers a handler for a method and path.
func (m *mockServer) handle(pattern string, handler http.HandlerFunc) {
	m.handlers[pattern] = handler
}

// last returns the most recent request and its body.
func (m *mockServer) last(t *testing.T) (*http.Request, string) {
	t.Helper()
	if len(m.requests) == 0 {
		t.Fatal("server received no requests")
	}
	n := len(m.requests) - 1
	return m.requests[n], m.bodies[n]
}

// jsonResponse writes data inside the server envelope.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"code":       "OK",
		"message":    "Success",
		"request_id": "req-test",
		"timestamp":  0,
		"data":       data,
	})
}

// errorResponse writes an error envelope.
func errorResponse(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"code":    code,
		"message": message,
	})
}

// cliRunner runs memohalo-cli commands against a mock server with a private
// state file.
type cliRunner struct {
	server    *mockServer
	statePath string
}

func newCLIRunner(t *testing.T, server *mockServer) *cliRunner {
	return &cliRunner{
		server:    server,
		statePath: filepath.Join(t.TempDir(), "cli.yaml"),
	}
}

// run executes the app and returns what it printed.
func (r *cliRunner) run(args ...string) (string, error) {
	var out bytes.Buffer
	app := App()
	app.Writer = &out
	app.ErrWriter = io.Discard

	full := append([]string{"memohalo-cli", "--server", r.server.URL, "--state", r.statePath}, args...)
	err := app.Run(full)
	return out.String(), err
}

func sampleMemos() []memo {
	return []memo{
		{Data: "Moonhalo", Author: "saltyaom"},
		{Data: "hello", Author: "alice"},
	}
}
