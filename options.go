package checklint

import (
	"io/fs"

	"github.com/code-review-checklists/checklint/internal/embedded"
	"github.com/code-review-checklists/checklint/pkg/errors"
)

// options holds the Linter configuration assembled by Option funcs.
type options struct {
	path   string
	fsys   fs.FS
	fsName string

	include []string
	exclude []string
	strict  bool

	storePath string
}

// defaultOptions lints the embedded sample with all checks.
func defaultOptions() *options {
	return &options{
		fsys:   embedded.FS,
		fsName: embedded.SamplePath,
	}
}

// Option configures a Linter.
type Option func(*options) error

// WithPath lints the document at the given file path.
func WithPath(path string) Option {
	return func(o *options) error {
		if path == "" {
			return errors.NewConfigError("linter", "document path is empty", nil)
		}
		o.path = path
		o.fsys = nil
		o.fsName = ""
		return nil
	}
}

// WithFS lints the named document inside the given filesystem.
func WithFS(fsys fs.FS, name string) Option {
	return func(o *options) error {
		if fsys == nil {
			return errors.NewConfigError("linter", "filesystem is nil", nil)
		}
		o.fsys = fsys
		o.fsName = name
		o.path = ""
		return nil
	}
}

// WithEmbeddedSample lints the sample checklist compiled into the binary.
func WithEmbeddedSample() Option {
	return WithFS(embedded.FS, embedded.SamplePath)
}

// WithChecks runs only the named checks.
func WithChecks(names ...string) Option {
	return func(o *options) error {
		o.include = append(o.include, names...)
		return nil
	}
}

// WithoutChecks runs all checks except the named ones.
func WithoutChecks(names ...string) Option {
	return func(o *options) error {
		o.exclude = append(o.exclude, names...)
		return nil
	}
}

// WithStrict promotes warnings to failures.
func WithStrict() Option {
	return func(o *options) error {
		o.strict = true
		return nil
	}
}

// WithHistory records lint runs in the bolt store at the given path.
func WithHistory(path string) Option {
	return func(o *options) error {
		o.storePath = path
		return nil
	}
}
