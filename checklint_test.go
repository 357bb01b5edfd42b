package checklint

import (
	"context"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-review-checklists/checklint/internal/store"
	"github.com/code-review-checklists/checklint/pkg/errors"
)

func TestLint_EmbeddedSampleIsClean(t *testing.T) {
	linter, err := New()
	require.NoError(t, err)

	rep, err := linter.Lint(context.Background())
	require.NoError(t, err)

	assert.True(t, rep.Clean(), "embedded sample should lint clean, got: %+v", rep.Findings)
	assert.False(t, rep.Failed(true))
	assert.Greater(t, rep.Summary.Items, 0)
	assert.Greater(t, rep.Summary.Anchors, 0)
	assert.Len(t, rep.ChecksRun, 8)
}

func TestLint_BrokenDocument(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.md": &fstest.MapFile{Data: []byte(`# Broken

[dead](#nowhere)

<a name="rc-1"></a> RC.1. Mentions RC.7 which does not exist.
`)},
	}

	linter, err := New(WithFS(fsys, "broken.md"))
	require.NoError(t, err)

	rep, err := linter.Lint(context.Background())
	require.NoError(t, err)

	assert.True(t, rep.HasErrors())
	assert.True(t, rep.Failed(false))

	names := make(map[string]bool)
	for _, f := range rep.Findings {
		names[f.Check] = true
	}
	assert.True(t, names["broken-anchor"])
	assert.True(t, names["unresolved-ref"])
}

func TestLint_CheckSelection(t *testing.T) {
	linter, err := New(WithChecks("broken-anchor"))
	require.NoError(t, err)

	rep, err := linter.Lint(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"broken-anchor"}, rep.ChecksRun)
}

func TestLint_UnknownCheck(t *testing.T) {
	linter, err := New(WithChecks("no-such-check"))
	require.NoError(t, err)

	_, err = linter.Lint(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestLint_CanceledContext(t *testing.T) {
	linter, err := New()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = linter.Lint(ctx)
	assert.True(t, errors.IsCanceled(err))
}

func TestLint_RecordsHistory(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "history.db")

	linter, err := New(WithHistory(storePath))
	require.NoError(t, err)

	_, err = linter.Lint(context.Background())
	require.NoError(t, err)
	_, err = linter.Lint(context.Background())
	require.NoError(t, err)

	s, err := store.Open(storePath)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	runs, err := s.List(10)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestDocument_CachedUntilReload(t *testing.T) {
	linter, err := New()
	require.NoError(t, err)

	first, err := linter.Document()
	require.NoError(t, err)

	again, err := linter.Document()
	require.NoError(t, err)
	assert.Same(t, first, again)

	linter.Reload()
	reloaded, err := linter.Document()
	require.NoError(t, err)
	assert.NotSame(t, first, reloaded)
	assert.Equal(t, first.Digest, reloaded.Digest)
}

func TestNew_InvalidOptions(t *testing.T) {
	_, err := New(WithPath(""))
	assert.Error(t, err)

	_, err = New(WithFS(nil, "x.md"))
	assert.Error(t, err)
}

func TestStrict(t *testing.T) {
	linter, err := New(WithStrict())
	require.NoError(t, err)
	assert.True(t, linter.Strict())
}
