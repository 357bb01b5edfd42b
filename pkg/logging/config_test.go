package logging

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// TestDefaultConfig verifies default configuration values.
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Level != "info" {
		t.Errorf("Level = %q, want info", cfg.Level)
	}
	if cfg.Format != "auto" {
		t.Errorf("Format = %q, want auto", cfg.Format)
	}
	if cfg.Output != "stderr" {
		t.Errorf("Output = %q, want stderr", cfg.Output)
	}
}

// TestParseLevel verifies level string parsing.
func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"disabled", zerolog.Disabled},
		{"DEBUG", zerolog.DebugLevel},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

// TestParseTimeFormat verifies time format parsing.
func TestParseTimeFormat(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"kitchen", time.Kitchen},
		{"rfc3339", time.RFC3339},
		{"rfc3339nano", time.RFC3339Nano},
		{"unix", ""},
		{"stamp", time.Stamp},
		{"2006-01-02 15:04:05", "2006-01-02 15:04:05"},
		{"mystery", time.Kitchen},
	}

	for _, tt := range tests {
		if got := parseTimeFormat(tt.input); got != tt.want {
			t.Errorf("parseTimeFormat(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

// TestNewLoggerFromConfig verifies logger construction from config.
func TestNewLoggerFromConfig(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logger := NewLoggerFromConfig(&Config{
		Level:  "debug",
		Format: "json",
		Output: "discard",
	})
	if logger.GetLevel() != zerolog.DebugLevel {
		t.Errorf("logger level = %v, want debug", logger.GetLevel())
	}

	// Nil config falls back to defaults
	logger = NewLoggerFromConfig(nil)
	if logger.GetLevel() != zerolog.InfoLevel {
		t.Errorf("nil config logger level = %v, want info", logger.GetLevel())
	}
}
