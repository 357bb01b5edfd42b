// Package report aggregates check findings into a lint report and
// renders it for humans and machines.
package report

import (
	"sort"
	"time"

	"github.com/agentstation/utc"

	"github.com/code-review-checklists/checklint/pkg/checklist"
	"github.com/code-review-checklists/checklint/pkg/checks"
)

// Report is the outcome of one lint run over one document.
type Report struct {
	// Document is the path of the linted document.
	Document string `json:"document"`

	// Title is the document's title, if it has one.
	Title string `json:"title,omitempty"`

	// Digest is the SHA-256 of the linted content, for correlating
	// runs in the history store.
	Digest string `json:"digest"`

	// GeneratedAt is when the run finished.
	GeneratedAt utc.Time `json:"generated_at"`

	// Duration is how long the parse and checks took.
	Duration time.Duration `json:"duration"`

	// ChecksRun names the checks that produced this report.
	ChecksRun []string `json:"checks_run"`

	// Summary counts what was seen and what was found.
	Summary Summary `json:"summary"`

	// Findings are ordered by line, then message.
	Findings []checks.Finding `json:"findings"`
}

// Summary counts document structure and finding severities.
type Summary struct {
	Sections int `json:"sections"`
	Items    int `json:"items"`
	Anchors  int `json:"anchors"`
	Links    int `json:"links"`
	Refs     int `json:"refs"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

// New assembles a report from a parsed document and its findings.
// Findings are sorted by line then message for stable output.
func New(doc *checklist.Document, checksRun []string, findings []checks.Finding, duration time.Duration) *Report {
	sorted := make([]checks.Finding, len(findings))
	copy(sorted, findings)
	sortFindings(sorted)

	summary := Summary{
		Sections: len(doc.Sections),
		Items:    len(doc.Items),
		Anchors:  len(doc.Anchors),
		Links:    len(doc.Links),
		Refs:     len(doc.Refs),
	}
	for _, f := range sorted {
		if f.Severity == checks.SeverityError {
			summary.Errors++
		} else {
			summary.Warnings++
		}
	}

	return &Report{
		Document:    doc.Path,
		Title:       doc.Title,
		Digest:      doc.Digest,
		GeneratedAt: utc.Now(),
		Duration:    duration,
		ChecksRun:   checksRun,
		Summary:     summary,
		Findings:    sorted,
	}
}

// HasErrors reports whether any finding is at error severity.
func (r *Report) HasErrors() bool {
	return r.Summary.Errors > 0
}

// HasWarnings reports whether any finding is at warning severity.
func (r *Report) HasWarnings() bool {
	return r.Summary.Warnings > 0
}

// Clean reports whether the run produced no findings at all.
func (r *Report) Clean() bool {
	return len(r.Findings) == 0
}

// Failed reports whether the run should fail the process. Errors always
// fail; strict mode promotes warnings to failures too.
func (r *Report) Failed(strict bool) bool {
	if r.HasErrors() {
		return true
	}
	return strict && r.HasWarnings()
}

// sortFindings orders findings by line, then message.
func sortFindings(findings []checks.Finding) {
	sort.Slice(findings, func(i, j int) bool {
		if findings[i].Line != findings[j].Line {
			return findings[i].Line < findings[j].Line
		}
		return findings[i].Message < findings[j].Message
	})
}
