package list

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/code-review-checklists/checklint/cmd/application"
	"github.com/code-review-checklists/checklint/internal/cmd/output"
	"github.com/code-review-checklists/checklint/pkg/checks"
)

// NewChecksCommand creates the list checks subcommand.
func NewChecksCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "checks",
		Short:   "List available integrity checks",
		Aliases: []string{"check"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data := output.Data{
				Headers: []string{"Check", "Severity", "Description"},
			}
			for _, check := range checks.Default() {
				data.Rows = append(data.Rows, []string{
					check.Name(),
					check.Severity().String(),
					check.Description(),
				})
			}

			formatter := output.NewFormatter(output.DetectFormat(app.OutputFormat()))
			return formatter.Format(os.Stdout, data)
		},
	}

	return cmd
}
