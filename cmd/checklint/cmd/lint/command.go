// Package lint provides the lint command, the core checklint operation.
package lint

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	checklint "github.com/code-review-checklists/checklint"
	"github.com/code-review-checklists/checklint/cmd/application"
	"github.com/code-review-checklists/checklint/internal/cmd/emoji"
	"github.com/code-review-checklists/checklint/internal/cmd/output"
	"github.com/code-review-checklists/checklint/pkg/checks"
	"github.com/code-review-checklists/checklint/pkg/constants"
	"github.com/code-review-checklists/checklint/pkg/errors"
	"github.com/code-review-checklists/checklint/pkg/report"
)

// NewCommand creates the lint command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "lint",
		GroupID: "core",
		Short:   "Check a review checklist for integrity problems",
		Long: `Lint parses the checklist and runs integrity checks over it.

Errors (broken anchors, duplicate anchors, unresolved item references,
duplicate item numbers) always fail the run. Warnings (numbering gaps,
table-of-contents omissions, orphan anchors, bare links) fail only
with --strict.`,
		Example: `  checklint lint                                # Lint the embedded sample
  checklint lint -d java-concurrency.md         # Lint a file
  checklint lint --strict                       # Warnings fail too
  checklint lint --checks broken-anchor         # Run one check
  checklint lint --report report.md             # Write a markdown report`,
		RunE: func(cmd *cobra.Command, args []string) error {
			strict, _ := cmd.Flags().GetBool("strict")
			include, _ := cmd.Flags().GetStringSlice("checks")
			exclude, _ := cmd.Flags().GetStringSlice("skip-checks")
			reportPath, _ := cmd.Flags().GetString("report")

			var opts []checklint.Option
			if strict {
				opts = append(opts, checklint.WithStrict())
			}
			if len(include) > 0 {
				opts = append(opts, checklint.WithChecks(include...))
			}
			if len(exclude) > 0 {
				opts = append(opts, checklint.WithoutChecks(exclude...))
			}

			linter, err := app.Linter(opts...)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), constants.LintTimeout)
			defer cancel()

			rep, err := linter.Lint(ctx)
			if err != nil {
				return err
			}

			if reportPath != "" {
				if err := writeReportFile(rep, reportPath); err != nil {
					return err
				}
			}

			if err := printReport(app, rep); err != nil {
				return err
			}

			if rep.Failed(strict || linter.Strict()) {
				return errors.NewValidationError("document", rep.Document,
					fmt.Sprintf("%d error(s), %d warning(s)", rep.Summary.Errors, rep.Summary.Warnings))
			}
			return nil
		},
	}

	cmd.Flags().Bool("strict", false, "treat warnings as failures")
	cmd.Flags().StringSlice("checks", nil, "run only the named checks")
	cmd.Flags().StringSlice("skip-checks", nil, "skip the named checks")
	cmd.Flags().String("report", "", "write a markdown report to this file")

	return cmd
}

// printReport writes the findings in the configured output format.
func printReport(app application.Application, rep *report.Report) error {
	format := output.DetectFormat(app.OutputFormat())
	formatter := output.NewFormatter(format)

	switch format {
	case output.FormatTable, output.FormatWide:
		if rep.Clean() {
			fmt.Fprintf(os.Stderr, "%s %s: no findings\n", emoji.Success, rep.Document)
			return nil
		}

		data := output.Data{
			Headers: []string{"Line", "Severity", "Check", "Message", "Suggestion"},
			ColumnAlignment: []output.Align{
				output.AlignRight, output.AlignLeft, output.AlignLeft, output.AlignLeft, output.AlignLeft,
			},
		}
		for _, f := range rep.Findings {
			data.Rows = append(data.Rows, []string{
				fmt.Sprintf("%d", f.Line),
				severityCell(f.Severity),
				f.Check,
				f.Message,
				f.Suggestion,
			})
		}
		if err := formatter.Format(os.Stdout, data); err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "%s %d error(s), %d warning(s) in %s\n",
			summarySymbol(rep), rep.Summary.Errors, rep.Summary.Warnings, rep.Document)
		return nil

	default:
		return formatter.Format(os.Stdout, rep)
	}
}

func severityCell(s checks.Severity) string {
	if s == checks.SeverityError {
		return emoji.Error + " error"
	}
	return emoji.Warning + " warning"
}

func summarySymbol(rep *report.Report) string {
	if rep.HasErrors() {
		return emoji.Error
	}
	return emoji.Warning
}

// writeReportFile renders the markdown report to a file.
func writeReportFile(rep *report.Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	defer func() { _ = f.Close() }()

	if err := rep.WriteMarkdown(f); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
