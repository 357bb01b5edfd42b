// Package checks implements the document-integrity checks checklint runs
// against a parsed checklist: anchor resolution, duplicate detection,
// item-reference resolution, numbering and table-of-contents coverage.
//
// Checks are pure functions over an immutable checklist.Document; they
// never touch the filesystem or network, which keeps them trivially safe
// to run concurrently and cheap to test.
package checks

import (
	"sort"
	"strconv"
	"strings"

	"github.com/code-review-checklists/checklint/pkg/checklist"
	"github.com/code-review-checklists/checklint/pkg/errors"
)

// Severity grades a finding.
type Severity int

const (
	// SeverityWarning marks findings that degrade the document but do
	// not break navigation.
	SeverityWarning Severity = iota
	// SeverityError marks findings that break navigation or reference
	// integrity.
	SeverityError
)

// String returns the severity as a lowercase word.
func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// MarshalJSON encodes the severity as its string form.
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(s.String())), nil
}

// UnmarshalJSON decodes the severity from its string form.
func (s *Severity) UnmarshalJSON(data []byte) error {
	str, err := strconv.Unquote(string(data))
	if err != nil {
		return err
	}
	if str == "error" {
		*s = SeverityError
	} else {
		*s = SeverityWarning
	}
	return nil
}

// Finding is a single problem located in the document.
type Finding struct {
	Check      string   `json:"check"`
	Severity   Severity `json:"severity"`
	Line       int      `json:"line"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion,omitempty"`
}

// Check inspects a document and reports findings.
type Check interface {
	// Name is the stable identifier used for check selection.
	Name() string

	// Severity is the severity all of this check's findings carry.
	Severity() Severity

	// Description is a one-line summary for `list checks`.
	Description() string

	// Run inspects the document. Returned findings are ordered by line.
	Run(doc *checklist.Document) []Finding
}

// Default returns the full set of checks in their canonical order.
func Default() []Check {
	return []Check{
		&brokenAnchor{},
		&duplicateAnchor{},
		&unresolvedRef{},
		&duplicateItem{},
		&numberingGap{},
		&tocCoverage{},
		&orphanAnchor{},
		&bareLink{},
	}
}

// Select filters the default checks by name. Include wins over exclude:
// with a non-empty include list only those checks run, otherwise all
// defaults minus the excluded ones. Names match case-insensitively;
// unknown names are an error.
func Select(include, exclude []string) ([]Check, error) {
	all := Default()
	byName := make(map[string]Check, len(all))
	for _, c := range all {
		byName[strings.ToLower(c.Name())] = c
	}

	for _, name := range append(append([]string{}, include...), exclude...) {
		if _, ok := byName[strings.ToLower(name)]; !ok {
			return nil, errors.NewNotFoundError("check", name)
		}
	}

	if len(include) > 0 {
		selected := make([]Check, 0, len(include))
		for _, c := range all {
			if contains(include, c.Name()) {
				selected = append(selected, c)
			}
		}
		return selected, nil
	}

	var selected []Check
	for _, c := range all {
		if !contains(exclude, c.Name()) {
			selected = append(selected, c)
		}
	}
	return selected, nil
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

// sortFindings orders findings by line, then message, for stable output.
func sortFindings(findings []Finding) {
	sort.Slice(findings, func(i, j int) bool {
		if findings[i].Line != findings[j].Line {
			return findings[i].Line < findings[j].Line
		}
		return findings[i].Message < findings[j].Message
	})
}
