package checklist

import (
	"io/fs"
	"os"

	"github.com/code-review-checklists/checklint/pkg/errors"
)

// ParseFile reads and parses a checklist document from disk.
func ParseFile(path string) (*Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return Parse(src, path)
}

// ParseFS reads and parses a checklist document from a filesystem.
// This supports embedded documents and testing with fstest.MapFS.
func ParseFS(fsys fs.FS, name string) (*Document, error) {
	src, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, errors.WrapIO("read", name, err)
	}
	return Parse(src, name)
}
