package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

// TestNew verifies that a fresh logger writes structured JSON.
func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf)

	logger.Info().Str("check", "duplicate-anchor").Msg("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if entry["message"] != "hello" {
		t.Errorf("message = %v, want hello", entry["message"])
	}
	if entry["check"] != "duplicate-anchor" {
		t.Errorf("check = %v, want duplicate-anchor", entry["check"])
	}
	if _, ok := entry["time"]; !ok {
		t.Error("expected a timestamp field")
	}
}

// TestDefault verifies the default logger is always available.
func TestDefault(t *testing.T) {
	if Default() == nil {
		t.Fatal("Default() returned nil")
	}
}

// TestSetDefault verifies swapping the default logger.
func TestSetDefault(t *testing.T) {
	original := *Default()
	defer SetDefault(original)

	var buf bytes.Buffer
	SetDefault(New(&buf))

	Info().Msg("through default")
	if !strings.Contains(buf.String(), "through default") {
		t.Errorf("package-level Info did not use the new default: %q", buf.String())
	}
}

// TestNop verifies the no-op logger discards everything.
func TestNop(t *testing.T) {
	// Must not panic
	Nop.Info().Msg("discarded")
	Nop.Error().Msg("discarded")
}
