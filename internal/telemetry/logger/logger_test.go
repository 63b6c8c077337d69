package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func newBufferLogger(t *testing.T, level, format string) (Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l, err := New(Config{Level: level, Format: format, Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return l, &buf
}

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse JSON log %q: %v", buf.String(), err)
	}
	return entry
}

func TestLogger_Levels(t *testing.T) {
	l, buf := newBufferLogger(t, "debug", "json")

	tests := []struct {
		level   string
		logFunc func(string, ...any)
	}{
		{"DEBUG", l.Debug},
		{"INFO", l.Info},
		{"WARN", l.Warn},
		{"ERROR", l.Error},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			buf.Reset()
			tt.logFunc("test message", "component", "test-value")

			entry := decodeEntry(t, buf)
			if entry["level"] != tt.level {
				t.Errorf("level = %v, want %s", entry["level"], tt.level)
			}
			if entry["msg"] != "test message" {
				t.Errorf("msg = %v", entry["msg"])
			}
			if entry["component"] != "test-value" {
				t.Errorf("component = %v", entry["component"])
			}
		})
	}
}

func TestLogger_With(t *testing.T) {
	l, buf := newBufferLogger(t, "info", "json")

	l.With("service", "memo").WithContext(context.Background()).Info("test message")

	if entry := decodeEntry(t, buf); entry["service"] != "memo" {
		t.Errorf("service = %v, want memo", entry["service"])
	}
}

func TestSetLevel(t *testing.T) {
	l, buf := newBufferLogger(t, "error", "json")

	l.Info("info message")
	if buf.Len() > 0 {
		t.Error("Info should be filtered at error level")
	}

	SetLevel("debug")
	l.Info("info message after level change")
	if buf.Len() == 0 {
		t.Error("Info should be logged after level changed to debug")
	}
	if level := GetLevel(); level != "debug" {
		t.Errorf("GetLevel() = %q, want %q", level, "debug")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"debug", "debug"},
		{"DEBUG", "debug"},
		{"info", "info"},
		{"warn", "warn"},
		{"warning", "warn"},
		{"error", "error"},
		{"invalid", "info"},
		{"", "info"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			SetLevel(tt.input)
			if got := GetLevel(); got != tt.expected {
				t.Errorf("SetLevel(%q); GetLevel() = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRequestIDHandler(t *testing.T) {
	l, buf := newBufferLogger(t, "info", "json")
	ctx := WithRequestID(context.Background(), "req-7")

	Slog(l).With("component", "memo").InfoContext(ctx, "with attrs")
	entry := decodeEntry(t, buf)
	if entry["request_id"] != "req-7" || entry["component"] != "memo" {
		t.Errorf("entry = %v", entry)
	}

	buf.Reset()
	Slog(l).Info("no context")
	if _, ok := decodeEntry(t, buf)["request_id"]; ok {
		t.Error("request_id added without a request context")
	}
}

func TestSlog(t *testing.T) {
	l, buf := newBufferLogger(t, "info", "json")

	Slog(l).Info("through slog", "token", "mhtk_ABCDEFGHIJKLMNOP")
	entry := decodeEntry(t, buf)
	if entry["token"] != "mhtk_ABC...NOP" {
		t.Errorf("token = %v, want masked value", entry["token"])
	}
}

func TestLogger_TextFormat(t *testing.T) {
	l, buf := newBufferLogger(t, "info", "text")

	l.Info("test message", "component", "memo")

	output := buf.String()
	if !strings.Contains(output, "test message") || !strings.Contains(output, "component=memo") {
		t.Errorf("unexpected text output: %s", output)
	}
}
