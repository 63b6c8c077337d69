package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
)

func TestNewSession(t *testing.T) {
	session, err := NewSession("alice", "mhth_abc")
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}

	if !strings.HasPrefix(session.ID, SessionIDPrefix) {
		t.Errorf("ID should have prefix %q, got %q", SessionIDPrefix, session.ID)
	}
	if len(session.ID) != 31 {
		t.Errorf("ID length = %d, want 31", len(session.ID))
	}
	if session.Username != "alice" || session.TokenHash != "mhth_abc" {
		t.Errorf("session = %+v", session)
	}

	now := time.Now().UnixMilli()
	if session.CreatedAt == 0 || session.CreatedAt > now {
		t.Error("CreatedAt should be set to current time")
	}
	if session.LastActive != session.CreatedAt {
		t.Error("LastActive should equal CreatedAt initially")
	}
}

func TestGenerateSessionID(t *testing.T) {
	ids := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := GenerateSessionID()
		if err != nil {
			t.Fatalf("GenerateSessionID() error = %v", err)
		}
		body, ok := strings.CutPrefix(id, SessionIDPrefix)
		if !ok {
			t.Fatalf("ID %q lacks prefix %q", id, SessionIDPrefix)
		}
		if _, err := ulid.ParseStrict(strings.ToUpper(body)); err != nil || body != strings.ToLower(body) {
			t.Errorf("ID body %q is not a lower-case ULID: %v", body, err)
		}
		if ids[id] {
			t.Errorf("Duplicate ID generated: %q", id)
		}
		ids[id] = true
	}
}

func TestGenerateSessionID_Monotonic(t *testing.T) {
	prev, _ := GenerateSessionID()
	for i := 0; i < 1000; i++ {
		id, _ := GenerateSessionID()
		if id <= prev {
			t.Fatalf("GenerateSessionID() = %q after %q, want increasing", id, prev)
		}
		prev = id
	}
}

func TestSession_Touch(t *testing.T) {
	session := &Session{LastActive: 1}
	session.Touch()
	if session.LastActive <= 1 {
		t.Error("Touch() should advance LastActive")
	}
}

func TestSession_Clone(t *testing.T) {
	session, _ := NewSession("alice", "mhth_abc")
	clone := session.Clone()
	clone.Username = "bob"
	if session.Username != "alice" {
		t.Error("Clone() shares state with the original")
	}
}

func TestSession_JSON(t *testing.T) {
	session := &Session{ID: "mhss-x", TokenHash: "mhth_y", Username: "alice", CreatedAt: 10, LastActive: 20}
	b, err := json.Marshal(session)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	for _, key := range []string{`"id"`, `"token_hash"`, `"username"`, `"created_at"`, `"last_active"`} {
		if !strings.Contains(string(b), key) {
			t.Errorf("JSON %s missing key %s", b, key)
		}
	}
}
