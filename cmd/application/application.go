// Package application provides the application interface for checklint commands.
//
// The Application interface defines the contract between the application layer and
// command implementations, enabling dependency injection and testability.
//
// Usage in Commands:
//
//	import (
//	    "github.com/code-review-checklists/checklint/cmd/application"
//	)
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            doc, err := app.Document()
//	            if err != nil {
//	                return err
//	            }
//	            // ... use doc
//	            return nil
//	        },
//	    }
//	}
//
// Testing with Mocks:
//
//	mock := &application.Mock{
//	    DocumentFunc: func() (*checklist.Document, error) {
//	        return testDoc, nil
//	    },
//	}
//	cmd := NewCommand(mock)
//	// ... test command behavior
package application

import (
	"github.com/rs/zerolog"

	checklint "github.com/code-review-checklists/checklint"
	"github.com/code-review-checklists/checklint/pkg/checklist"
)

// Application provides the application interface that commands need.
// The App struct from cmd/checklint/app automatically implements this
// interface. Commands should accept this interface rather than the
// concrete App type, allowing for easier testing with mocks.
//
// Thread Safety: All methods must be safe for concurrent access.
type Application interface {
	// Document returns the parsed checklist from the default linter
	// instance. Convenience for commands that only inspect the document.
	Document() (*checklist.Document, error)

	// Linter returns the linter instance with optional configuration.
	// Without options the default cached instance is returned; with
	// options a new instance is created.
	Linter(opts ...checklint.Option) (*checklint.Linter, error)

	// Logger returns the configured logger instance.
	// Commands should use this for all logging operations.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, etc).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
