package checks

import (
	"fmt"

	"github.com/code-review-checklists/checklint/pkg/checklist"
)

// tocCoverage reports items that the table of contents never links to.
// A reader scanning the TOC cannot discover such items. Documents
// without a recognizable TOC section produce no findings.
type tocCoverage struct{}

func (c *tocCoverage) Name() string       { return "toc-coverage" }
func (c *tocCoverage) Severity() Severity { return SeverityWarning }
func (c *tocCoverage) Description() string {
	return "checklist item is not linked from the table of contents"
}

func (c *tocCoverage) Run(doc *checklist.Document) []Finding {
	toc := doc.TOC()
	if toc == nil {
		return nil
	}

	linked := make(map[string]bool)
	for _, link := range doc.FragmentLinks() {
		if link.Line >= toc.Line && link.Line <= toc.EndLine {
			linked[link.Fragment()] = true
		}
	}

	var findings []Finding
	for _, item := range doc.Items {
		// Items only parse off anchor-defining lines, so an empty
		// Anchor means the definition used an empty name attribute.
		if item.Anchor == "" {
			findings = append(findings, Finding{
				Check:    c.Name(),
				Severity: c.Severity(),
				Line:     item.Line,
				Message:  fmt.Sprintf("item %s has no anchor, so the table of contents cannot link it", item.ID),
			})
			continue
		}
		if linked[item.Anchor] {
			continue
		}
		findings = append(findings, Finding{
			Check:    c.Name(),
			Severity: c.Severity(),
			Line:     item.Line,
			Message:  fmt.Sprintf("item %s (#%s) is not linked from the table of contents", item.ID, item.Anchor),
		})
	}
	return findings
}
