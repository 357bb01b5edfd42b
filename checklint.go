// Package checklint lints markdown review checklists for reference
// integrity: unresolved anchors, duplicate anchor names, dangling item
// references, numbering gaps and table-of-contents coverage.
//
// Example usage:
//
//	linter, err := checklint.New(checklint.WithPath("java-concurrency.md"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	rep, err := linter.Lint(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if rep.Failed(false) {
//	    os.Exit(1)
//	}
package checklint

import (
	"context"
	"sync"
	"time"

	"github.com/code-review-checklists/checklint/internal/store"
	"github.com/code-review-checklists/checklint/pkg/checklist"
	"github.com/code-review-checklists/checklint/pkg/checks"
	"github.com/code-review-checklists/checklint/pkg/errors"
	"github.com/code-review-checklists/checklint/pkg/logging"
	"github.com/code-review-checklists/checklint/pkg/report"
)

// Linter parses a checklist document and runs integrity checks over it.
// A Linter is safe for concurrent use; the parsed document is cached
// until Reload is called.
type Linter struct {
	options *options

	mu  sync.RWMutex
	doc *checklist.Document
}

// New creates a Linter with the given options. With no source option
// the embedded sample checklist is linted.
func New(opts ...Option) (*Linter, error) {
	options := defaultOptions()
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	return &Linter{options: options}, nil
}

// Document returns the parsed document, parsing it on first use.
func (l *Linter) Document() (*checklist.Document, error) {
	l.mu.RLock()
	if l.doc != nil {
		doc := l.doc
		l.mu.RUnlock()
		return doc, nil
	}
	l.mu.RUnlock()

	l.mu.Lock()
	defer l.mu.Unlock()

	// Double-check after acquiring the write lock
	if l.doc != nil {
		return l.doc, nil
	}

	doc, err := l.parse()
	if err != nil {
		return nil, err
	}
	l.doc = doc
	return doc, nil
}

// Reload discards the cached document so the next access re-parses.
func (l *Linter) Reload() {
	l.mu.Lock()
	l.doc = nil
	l.mu.Unlock()
}

// Checks returns the checks this linter is configured to run.
func (l *Linter) Checks() ([]checks.Check, error) {
	return checks.Select(l.options.include, l.options.exclude)
}

// Strict reports whether warnings fail the run.
func (l *Linter) Strict() bool {
	return l.options.strict
}

// Path returns the configured document path, empty for in-memory and
// embedded sources.
func (l *Linter) Path() string {
	return l.options.path
}

// Lint parses the document, runs the configured checks and returns the
// report. When a history store is configured the run is recorded.
func (l *Linter) Lint(ctx context.Context) (*report.Report, error) {
	start := time.Now()

	doc, err := l.Document()
	if err != nil {
		return nil, err
	}

	selected, err := l.Checks()
	if err != nil {
		return nil, err
	}

	ctx = logging.WithDocument(ctx, doc.Path)
	logger := logging.FromContext(ctx)

	var findings []checks.Finding
	names := make([]string, 0, len(selected))
	for _, check := range selected {
		if err := ctx.Err(); err != nil {
			return nil, errors.ErrCanceled
		}
		results := check.Run(doc)
		logging.FromContext(logging.WithCheck(ctx, check.Name())).Debug().
			Int("findings", len(results)).
			Msg("Check complete")
		findings = append(findings, results...)
		names = append(names, check.Name())
	}

	rep := report.New(doc, names, findings, time.Since(start))

	if l.options.storePath != "" {
		if err := l.record(rep); err != nil {
			return nil, err
		}
	}

	logger.Info().
		Int("errors", rep.Summary.Errors).
		Int("warnings", rep.Summary.Warnings).
		Dur("duration", rep.Duration).
		Msg("Lint complete")

	return rep, nil
}

// record appends the report to the history store.
func (l *Linter) record(rep *report.Report) error {
	s, err := store.Open(l.options.storePath)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()
	return s.Record(rep)
}

// parse reads the document from the configured source.
func (l *Linter) parse() (*checklist.Document, error) {
	switch {
	case l.options.fsys != nil:
		return checklist.ParseFS(l.options.fsys, l.options.fsName)
	case l.options.path != "":
		return checklist.ParseFile(l.options.path)
	default:
		return nil, errors.NewConfigError("linter", "no document source configured", nil)
	}
}
