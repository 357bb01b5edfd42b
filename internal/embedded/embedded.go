// Package embedded provides the sample checklist document compiled into
// the binary. It backs offline demos and the test suite, and is what
// the CLI falls back to when no document path is configured.
package embedded

import "embed"

// FS holds the embedded sample document.
//
//go:embed sample/java-concurrency.md
var FS embed.FS

// SamplePath is the path of the sample document inside FS.
const SamplePath = "sample/java-concurrency.md"
