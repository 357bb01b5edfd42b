// Package emoji provides symbol constants for CLI output.
// These symbols create a consistent visual language across all command-line commands.
package emoji

// Symbol constants for CLI output provide a consistent visual language across commands.
const (
	// Success represents successful completion of an operation.
	// Used for: clean lint runs, fixed findings, recorded history.
	Success = "✓"

	// Error represents failures or integrity errors.
	// Used for: broken anchors, unresolved references, failed operations.
	Error = "✗"

	// Warning represents warnings or non-critical findings.
	// Used for: numbering gaps, items missing from the table of contents.
	Warning = "!"

	// Info represents informational messages.
	// Used for: general information, tips, context.
	Info = "i"

	// Unknown represents unknown or indeterminate states.
	Unknown = "?"
)
