// Package constants provides shared constants used throughout the
// checklint codebase: timeouts, limits and file permissions that should
// be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultTimeout is the standard timeout for general operations
	DefaultTimeout = 10 * time.Second

	// LintTimeout is the timeout for a full lint run over one document
	LintTimeout = 1 * time.Minute

	// DescribeTimeout is the timeout for a single Gemini describe call
	DescribeTimeout = 30 * time.Second

	// ServerShutdownTimeout is how long the preview server waits for
	// in-flight requests during graceful shutdown
	ServerShutdownTimeout = 5 * time.Second

	// WatchDebounce is how long file events are coalesced before the
	// preview server re-renders and broadcasts a reload
	WatchDebounce = 250 * time.Millisecond

	// RenderCacheTTL is the default TTL for cached rendered pages
	RenderCacheTTL = 5 * time.Minute

	// RenderCacheCleanup is how often expired render cache entries are purged
	RenderCacheCleanup = 10 * time.Minute

	// StoreOpenTimeout bounds how long we wait for the bolt file lock
	StoreOpenTimeout = 1 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644

	// SecureFilePermissions is for private files like the history store (rw-------)
	SecureFilePermissions = 0600
)

// Limit constants define various limits and capacities
const (
	// MaxSuggestionDistance is the maximum edit distance at which a
	// near-miss anchor is offered as a suggestion for a broken link
	MaxSuggestionDistance = 3

	// MaxContextLength is the maximum length of a finding's context snippet
	MaxContextLength = 80

	// DefaultHistoryLimit is the default number of runs shown by history
	DefaultHistoryLimit = 20

	// MaxHistoryRuns is the number of runs kept in the history store
	MaxHistoryRuns = 500
)

// Server defaults
const (
	// DefaultServeAddr is the default listen address for the preview server
	DefaultServeAddr = "localhost:8799"
)
