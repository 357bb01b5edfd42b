package checks

import (
	"fmt"

	"github.com/code-review-checklists/checklint/pkg/checklist"
	"github.com/code-review-checklists/checklint/pkg/constants"
)

// brokenAnchor reports fragment links whose target anchor does not
// exist. Both explicit `<a name>` anchors and GitHub's auto-generated
// heading slugs count as valid targets.
type brokenAnchor struct{}

func (c *brokenAnchor) Name() string       { return "broken-anchor" }
func (c *brokenAnchor) Severity() Severity { return SeverityError }
func (c *brokenAnchor) Description() string {
	return "in-document link points at an anchor that is not defined"
}

func (c *brokenAnchor) Run(doc *checklist.Document) []Finding {
	targets := anchorTargets(doc)

	var findings []Finding
	for _, link := range doc.FragmentLinks() {
		name := link.Fragment()
		if name == "" {
			findings = append(findings, Finding{
				Check:    c.Name(),
				Severity: c.Severity(),
				Line:     link.Line,
				Message:  fmt.Sprintf("link %q has an empty fragment", link.Text),
			})
			continue
		}
		if targets[name] {
			continue
		}
		findings = append(findings, Finding{
			Check:      c.Name(),
			Severity:   c.Severity(),
			Line:       link.Line,
			Message:    fmt.Sprintf("link %q points at missing anchor #%s", link.Text, name),
			Suggestion: nearestTarget(name, targets),
		})
	}
	return findings
}

// duplicateAnchor reports anchor names defined more than once. Deep
// links to a duplicated name land on whichever definition the renderer
// picks, so every extra definition is an error.
type duplicateAnchor struct{}

func (c *duplicateAnchor) Name() string       { return "duplicate-anchor" }
func (c *duplicateAnchor) Severity() Severity { return SeverityError }
func (c *duplicateAnchor) Description() string {
	return "two anchors share the same name"
}

func (c *duplicateAnchor) Run(doc *checklist.Document) []Finding {
	var findings []Finding
	for _, name := range doc.AnchorNames() {
		defs := doc.AnchorsNamed(name)
		for _, dup := range defs[1:] {
			// Line numbers stay out of the message so history diffs
			// can match the finding across unrelated edits.
			findings = append(findings, Finding{
				Check:      c.Name(),
				Severity:   c.Severity(),
				Line:       dup.Line,
				Message:    fmt.Sprintf("anchor %q is defined more than once", name),
				Suggestion: fmt.Sprintf("first defined at line %d", defs[0].Line),
			})
		}
	}
	sortFindings(findings)
	return findings
}

// orphanAnchor reports anchors that no fragment link targets. An
// unreferenced anchor usually means a TOC entry was deleted without
// its item, or the anchor name drifted.
type orphanAnchor struct{}

func (c *orphanAnchor) Name() string       { return "orphan-anchor" }
func (c *orphanAnchor) Severity() Severity { return SeverityWarning }
func (c *orphanAnchor) Description() string {
	return "anchor is never targeted by any in-document link"
}

func (c *orphanAnchor) Run(doc *checklist.Document) []Finding {
	targeted := make(map[string]bool)
	for _, link := range doc.FragmentLinks() {
		targeted[link.Fragment()] = true
	}

	var findings []Finding
	for _, anchor := range doc.Anchors {
		if targeted[anchor.Name] {
			continue
		}
		findings = append(findings, Finding{
			Check:    c.Name(),
			Severity: c.Severity(),
			Line:     anchor.Line,
			Message:  fmt.Sprintf("anchor %q is never linked to", anchor.Name),
		})
	}
	return findings
}

// anchorTargets collects every name a fragment link may resolve to:
// explicit anchors plus heading slugs.
func anchorTargets(doc *checklist.Document) map[string]bool {
	targets := make(map[string]bool, len(doc.Anchors)+len(doc.Sections))
	for _, a := range doc.Anchors {
		targets[a.Name] = true
	}
	for _, s := range doc.Sections {
		targets[s.Slug] = true
	}
	return targets
}

// nearestTarget suggests the closest existing target by edit distance,
// or empty when nothing is near enough to be a plausible typo.
func nearestTarget(name string, targets map[string]bool) string {
	best, bestDist := "", constants.MaxSuggestionDistance+1
	for t := range targets {
		if d := editDistance(name, t); d < bestDist || (d == bestDist && t < best) {
			best, bestDist = t, d
		}
	}
	if bestDist > constants.MaxSuggestionDistance {
		return ""
	}
	return "did you mean #" + best + "?"
}

// editDistance is the Levenshtein distance between two strings.
// Small inputs only (anchor names), so the quadratic table is fine.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)

	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = minInt(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func minInt(vals ...int) int {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
