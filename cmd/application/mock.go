package application

import (
	"github.com/rs/zerolog"

	checklint "github.com/code-review-checklists/checklint"
	"github.com/code-review-checklists/checklint/pkg/checklist"
)

// Mock provides a mock implementation of Application for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
type Mock struct {
	DocumentFunc     func() (*checklist.Document, error)
	LinterFunc       func(opts ...checklint.Option) (*checklint.Linter, error)
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string
}

// Document returns a document using the mock function or nil.
func (m *Mock) Document() (*checklist.Document, error) {
	if m.DocumentFunc != nil {
		return m.DocumentFunc()
	}
	return nil, nil
}

// Linter returns a linter using the mock function or a default one.
func (m *Mock) Linter(opts ...checklint.Option) (*checklint.Linter, error) {
	if m.LinterFunc != nil {
		return m.LinterFunc(opts...)
	}
	return checklint.New(opts...)
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns output format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

// Ensure Mock implements Application at compile time.
var _ Application = (*Mock)(nil)
