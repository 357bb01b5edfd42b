package app

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/code-review-checklists/checklint/pkg/logging"
)

// TestSetupCommandConfiguresLogging verifies that flag-driven logger
// settings reach both the package default logger and the command context.
func TestSetupCommandConfiguresLogging(t *testing.T) {
	original := *logging.Default()
	defer logging.SetDefault(original)
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	a, err := New("test", "none", "now", "tests")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	root := a.createRootCommand()
	root.SetContext(context.Background())
	if err := root.ParseFlags([]string{"--log-level", "debug"}); err != nil {
		t.Fatalf("ParseFlags() failed: %v", err)
	}

	if err := a.setupCommand(root, nil); err != nil {
		t.Fatalf("setupCommand() failed: %v", err)
	}

	if got := logging.Default().GetLevel(); got != zerolog.DebugLevel {
		t.Errorf("default logger level = %v, want debug", got)
	}
	if logging.FromContext(root.Context()) != a.Logger() {
		t.Error("command context does not carry the configured logger")
	}
}
