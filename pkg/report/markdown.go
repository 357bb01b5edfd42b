package report

import (
	"fmt"
	"io"

	md "github.com/nao1215/markdown"
)

// WriteMarkdown renders the report as a markdown document, suitable for
// pasting into a pull request or publishing alongside the checklist.
func (r *Report) WriteMarkdown(w io.Writer) error {
	title := r.Title
	if title == "" {
		title = r.Document
	}

	builder := md.NewMarkdown(w).
		H1("Lint report: "+title).
		PlainTextf("Document: `%s`", r.Document).
		LF().
		PlainTextf("Generated: %s", r.GeneratedAt.Format("2006-01-02 15:04:05 MST")).
		LF()

	builder.H2("Summary").
		Table(md.TableSet{
			Header: []string{"Sections", "Items", "Anchors", "Links", "Refs", "Errors", "Warnings"},
			Rows: [][]string{{
				fmt.Sprintf("%d", r.Summary.Sections),
				fmt.Sprintf("%d", r.Summary.Items),
				fmt.Sprintf("%d", r.Summary.Anchors),
				fmt.Sprintf("%d", r.Summary.Links),
				fmt.Sprintf("%d", r.Summary.Refs),
				fmt.Sprintf("%d", r.Summary.Errors),
				fmt.Sprintf("%d", r.Summary.Warnings),
			}},
		}).
		LF()

	if r.Clean() {
		builder.PlainText("No findings.")
		return builder.Build()
	}

	rows := make([][]string, 0, len(r.Findings))
	for _, f := range r.Findings {
		rows = append(rows, []string{
			fmt.Sprintf("%d", f.Line),
			f.Severity.String(),
			f.Check,
			f.Message,
			f.Suggestion,
		})
	}

	builder.H2("Findings").
		Table(md.TableSet{
			Header: []string{"Line", "Severity", "Check", "Message", "Suggestion"},
			Rows:   rows,
		})

	return builder.Build()
}
