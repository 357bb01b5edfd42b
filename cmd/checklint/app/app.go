// Package app provides the application context and dependency management
// for the checklint CLI. It centralizes configuration, dependency
// injection and lifecycle management.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	checklint "github.com/code-review-checklists/checklint"
	"github.com/code-review-checklists/checklint/cmd/application"
	"github.com/code-review-checklists/checklint/pkg/checklist"
)

// App represents the checklint application with all its dependencies.
// It provides a centralized place for configuration, logging, and the
// linter instance, following the dependency injection pattern.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Linter instance (lazy-initialized, singleton)
	mu     sync.RWMutex
	linter *checklint.Linter
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Linter returns the linter instance. Without options the default
// instance is returned, creating it lazily. With options a new
// instance is created with the app configuration plus the options.
func (a *App) Linter(opts ...checklint.Option) (*checklint.Linter, error) {
	if len(opts) > 0 {
		return checklint.New(append(a.buildLinterOptions(), opts...)...)
	}

	a.mu.RLock()
	if a.linter != nil {
		l := a.linter
		a.mu.RUnlock()
		return l, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.linter != nil {
		return a.linter, nil
	}

	l, err := checklint.New(a.buildLinterOptions()...)
	if err != nil {
		return nil, err
	}
	a.linter = l
	return l, nil
}

// Document returns the parsed checklist from the default linter.
func (a *App) Document() (*checklist.Document, error) {
	l, err := a.Linter()
	if err != nil {
		return nil, err
	}
	return l.Document()
}

// Shutdown performs graceful shutdown of the application.
func (a *App) Shutdown(_ context.Context) error {
	// The linter holds no background resources; the history store is
	// opened per operation.
	return nil
}

// buildLinterOptions constructs linter options from the app configuration.
func (a *App) buildLinterOptions() []checklint.Option {
	var opts []checklint.Option

	if a.config.DocumentPath != "" {
		opts = append(opts, checklint.WithPath(a.config.DocumentPath))
	}
	if len(a.config.Checks) > 0 {
		opts = append(opts, checklint.WithChecks(a.config.Checks...))
	}
	if len(a.config.SkipChecks) > 0 {
		opts = append(opts, checklint.WithoutChecks(a.config.SkipChecks...))
	}
	if a.config.Strict {
		opts = append(opts, checklint.WithStrict())
	}
	if a.config.StorePath != "" {
		opts = append(opts, checklint.WithHistory(a.config.StorePath))
	}

	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithLinter sets a custom linter instance (useful for testing).
func WithLinter(l *checklint.Linter) Option {
	return func(a *App) error {
		a.linter = l
		return nil
	}
}

// Ensure App implements application.Application at compile time.
var _ application.Application = (*App)(nil)
