package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-review-checklists/checklint/pkg/checklist"
	"github.com/code-review-checklists/checklint/pkg/checks"
	"github.com/code-review-checklists/checklint/pkg/errors"
	"github.com/code-review-checklists/checklint/pkg/report"
)

// openTestStore opens a store in a temp dir and closes it with the test.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// testReport builds a report with the given findings.
func testReport(t *testing.T, findings ...checks.Finding) *report.Report {
	t.Helper()
	doc, err := checklist.Parse([]byte(`# Test

<a name="rc-1"></a> RC.1. An item.
`), "test.md")
	require.NoError(t, err)
	return report.New(doc, []string{"broken-anchor"}, findings, time.Millisecond)
}

func TestStore_RecordAndList(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Record(testReport(t)))
	require.NoError(t, s.Record(testReport(t, checks.Finding{
		Check: "broken-anchor", Severity: checks.SeverityError, Line: 3, Message: "dead link",
	})))

	runs, err := s.List(10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first
	assert.Equal(t, 1, runs[0].Errors)
	assert.Equal(t, 0, runs[1].Errors)
	assert.Equal(t, "test.md", runs[0].Document)
	assert.NotEmpty(t, runs[0].Digest)
}

func TestStore_ListLimit(t *testing.T) {
	s := openTestStore(t)
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Record(testReport(t)))
	}

	runs, err := s.List(3)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}

func TestStore_Latest(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Latest()
	assert.True(t, errors.IsNotFound(err))

	require.NoError(t, s.Record(testReport(t)))
	run, err := s.Latest()
	require.NoError(t, err)
	assert.Equal(t, "test.md", run.Document)
}

func TestDiffRuns(t *testing.T) {
	stale := checks.Finding{Check: "broken-anchor", Severity: checks.SeverityError, Line: 3, Message: "dead link"}
	kept := checks.Finding{Check: "orphan-anchor", Severity: checks.SeverityWarning, Line: 8, Message: "never linked"}
	fresh := checks.Finding{Check: "numbering-gap", Severity: checks.SeverityWarning, Line: 4, Message: "missing RC.2"}

	prev := &Run{Findings: []checks.Finding{stale, kept}}
	curr := &Run{Findings: []checks.Finding{kept, fresh}}

	diff := DiffRuns(prev, curr)
	require.Len(t, diff.New, 1)
	assert.Equal(t, "numbering-gap", diff.New[0].Check)
	require.Len(t, diff.Fixed, 1)
	assert.Equal(t, "broken-anchor", diff.Fixed[0].Check)
}

func TestDiffRuns_LineShiftIsNotChurn(t *testing.T) {
	prev := &Run{Findings: []checks.Finding{
		{Check: "orphan-anchor", Line: 10, Message: "never linked"},
	}}
	curr := &Run{Findings: []checks.Finding{
		{Check: "orphan-anchor", Line: 14, Message: "never linked"},
	}}

	diff := DiffRuns(prev, curr)
	assert.Empty(t, diff.New)
	assert.Empty(t, diff.Fixed)
}

func TestDiffRuns_DuplicateFindingsSurviveLineShifts(t *testing.T) {
	// Duplicate findings keep line numbers in the suggestion, not the
	// message, so a shifted first definition is not churn either.
	prev := &Run{Findings: []checks.Finding{{
		Check:      "duplicate-anchor",
		Line:       12,
		Message:    `anchor "dup" is defined more than once`,
		Suggestion: "first defined at line 3",
	}}}
	curr := &Run{Findings: []checks.Finding{{
		Check:      "duplicate-anchor",
		Line:       17,
		Message:    `anchor "dup" is defined more than once`,
		Suggestion: "first defined at line 5",
	}}}

	diff := DiffRuns(prev, curr)
	assert.Empty(t, diff.New)
	assert.Empty(t, diff.Fixed)
}
