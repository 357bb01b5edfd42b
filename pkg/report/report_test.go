package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-review-checklists/checklint/pkg/checklist"
	"github.com/code-review-checklists/checklint/pkg/checks"
)

func testDocument(t *testing.T) *checklist.Document {
	t.Helper()
	doc, err := checklist.Parse([]byte(`# Test Checklist

<a name="rc-1"></a> RC.1. First item.
<a name="rc-2"></a> RC.2. Second item, see RC.1.
[link](#rc-1)
`), "test.md")
	require.NoError(t, err)
	return doc
}

func TestNew(t *testing.T) {
	doc := testDocument(t)
	findings := []checks.Finding{
		{Check: "orphan-anchor", Severity: checks.SeverityWarning, Line: 4, Message: "b"},
		{Check: "broken-anchor", Severity: checks.SeverityError, Line: 2, Message: "a"},
	}

	rep := New(doc, []string{"broken-anchor", "orphan-anchor"}, findings, 5*time.Millisecond)

	assert.Equal(t, "test.md", rep.Document)
	assert.Equal(t, "Test Checklist", rep.Title)
	assert.Equal(t, doc.Digest, rep.Digest)
	assert.Equal(t, 5*time.Millisecond, rep.Duration)
	assert.False(t, rep.GeneratedAt.IsZero())

	assert.Equal(t, 2, rep.Summary.Items)
	assert.Equal(t, 2, rep.Summary.Anchors)
	assert.Equal(t, 1, rep.Summary.Errors)
	assert.Equal(t, 1, rep.Summary.Warnings)

	// Sorted by line
	require.Len(t, rep.Findings, 2)
	assert.Equal(t, 2, rep.Findings[0].Line)
	assert.Equal(t, 4, rep.Findings[1].Line)
}

func TestReport_Failed(t *testing.T) {
	doc := testDocument(t)

	clean := New(doc, nil, nil, 0)
	assert.True(t, clean.Clean())
	assert.False(t, clean.Failed(false))
	assert.False(t, clean.Failed(true))

	warned := New(doc, nil, []checks.Finding{
		{Check: "bare-link", Severity: checks.SeverityWarning, Line: 1, Message: "w"},
	}, 0)
	assert.False(t, warned.Failed(false))
	assert.True(t, warned.Failed(true))
	assert.True(t, warned.HasWarnings())

	errored := New(doc, nil, []checks.Finding{
		{Check: "broken-anchor", Severity: checks.SeverityError, Line: 1, Message: "e"},
	}, 0)
	assert.True(t, errored.Failed(false))
	assert.True(t, errored.HasErrors())
}

func TestWriteMarkdown(t *testing.T) {
	doc := testDocument(t)
	rep := New(doc, []string{"broken-anchor"}, []checks.Finding{
		{Check: "broken-anchor", Severity: checks.SeverityError, Line: 3, Message: "missing anchor"},
	}, time.Millisecond)

	var sb strings.Builder
	require.NoError(t, rep.WriteMarkdown(&sb))

	out := sb.String()
	assert.Contains(t, out, "# Lint report: Test Checklist")
	assert.Contains(t, out, "## Summary")
	assert.Contains(t, out, "## Findings")
	assert.Contains(t, out, "missing anchor")
}

func TestWriteMarkdown_Clean(t *testing.T) {
	doc := testDocument(t)
	rep := New(doc, nil, nil, 0)

	var sb strings.Builder
	require.NoError(t, rep.WriteMarkdown(&sb))
	assert.Contains(t, sb.String(), "No findings.")
}
