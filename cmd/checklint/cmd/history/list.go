package history

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/code-review-checklists/checklint/cmd/application"
	"github.com/code-review-checklists/checklint/internal/cmd/output"
	"github.com/code-review-checklists/checklint/internal/store"
	"github.com/code-review-checklists/checklint/pkg/constants"
)

// NewListCommand creates the history list subcommand.
func NewListCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded lint runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := storePath(cmd)
			if err != nil {
				return err
			}
			limit, _ := cmd.Flags().GetInt("limit")

			s, err := store.Open(path)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			runs, err := s.List(limit)
			if err != nil {
				return err
			}

			data := output.Data{
				Headers: []string{"Recorded", "Document", "Digest", "Errors", "Warnings", "Duration"},
				ColumnAlignment: []output.Align{
					output.AlignLeft, output.AlignLeft, output.AlignLeft,
					output.AlignRight, output.AlignRight, output.AlignRight,
				},
			}
			for _, run := range runs {
				data.Rows = append(data.Rows, []string{
					run.RecordedAt.Format("2006-01-02 15:04:05"),
					run.Document,
					shortDigest(run.Digest),
					fmt.Sprintf("%d", run.Errors),
					fmt.Sprintf("%d", run.Warnings),
					run.Duration.String(),
				})
			}

			formatter := output.NewFormatter(output.DetectFormat(app.OutputFormat()))
			if err := formatter.Format(os.Stdout, data); err != nil {
				return err
			}

			fmt.Fprintf(os.Stderr, "Found %d runs\n", len(runs))
			return nil
		},
	}

	cmd.Flags().Int("limit", constants.DefaultHistoryLimit, "maximum number of runs to show")

	return cmd
}

// shortDigest truncates a SHA-256 hex digest for table display.
func shortDigest(digest string) string {
	if len(digest) > 12 {
		return digest[:12]
	}
	return digest
}
