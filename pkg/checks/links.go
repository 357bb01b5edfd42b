package checks

import (
	"fmt"
	"net/url"

	"github.com/code-review-checklists/checklint/pkg/checklist"
)

// bareLink reports external links whose destination does not parse as
// an absolute URL. Liveness is deliberately not checked; the lint run
// stays offline.
type bareLink struct{}

func (c *bareLink) Name() string       { return "bare-link" }
func (c *bareLink) Severity() Severity { return SeverityWarning }
func (c *bareLink) Description() string {
	return "external link destination is not a well-formed URL"
}

func (c *bareLink) Run(doc *checklist.Document) []Finding {
	var findings []Finding
	for _, link := range doc.Links {
		if link.Kind != checklist.LinkExternal {
			continue
		}
		u, err := url.Parse(link.Destination)
		if err == nil && u.Scheme != "" && (u.Host != "" || u.Scheme == "mailto") {
			continue
		}
		findings = append(findings, Finding{
			Check:    c.Name(),
			Severity: c.Severity(),
			Line:     link.Line,
			Message:  fmt.Sprintf("link %q has malformed destination %q", link.Text, link.Destination),
		})
	}
	return findings
}
