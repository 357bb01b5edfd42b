package history

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/code-review-checklists/checklint/cmd/application"
	"github.com/code-review-checklists/checklint/internal/cmd/emoji"
	"github.com/code-review-checklists/checklint/internal/cmd/output"
	"github.com/code-review-checklists/checklint/internal/store"
)

// NewDiffCommand creates the history diff subcommand.
func NewDiffCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Show new and fixed findings between the last two runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := storePath(cmd)
			if err != nil {
				return err
			}

			s, err := store.Open(path)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			runs, err := s.List(2)
			if err != nil {
				return err
			}
			if len(runs) < 2 {
				return fmt.Errorf("need at least two recorded runs to diff, have %d", len(runs))
			}

			// List returns newest first
			curr, prev := &runs[0], &runs[1]
			diff := store.DiffRuns(prev, curr)

			format := output.DetectFormat(app.OutputFormat())
			formatter := output.NewFormatter(format)

			if format != output.FormatTable && format != output.FormatWide {
				return formatter.Format(os.Stdout, diff)
			}

			if len(diff.New) == 0 && len(diff.Fixed) == 0 {
				fmt.Fprintf(os.Stderr, "%s No changes between the last two runs\n", emoji.Success)
				return nil
			}

			data := output.Data{
				Headers: []string{"Change", "Check", "Line", "Message"},
				ColumnAlignment: []output.Align{
					output.AlignLeft, output.AlignLeft, output.AlignRight, output.AlignLeft,
				},
			}
			for _, f := range diff.New {
				data.Rows = append(data.Rows, []string{
					emoji.Error + " new", f.Check, fmt.Sprintf("%d", f.Line), f.Message,
				})
			}
			for _, f := range diff.Fixed {
				data.Rows = append(data.Rows, []string{
					emoji.Success + " fixed", f.Check, fmt.Sprintf("%d", f.Line), f.Message,
				})
			}

			if err := formatter.Format(os.Stdout, data); err != nil {
				return err
			}

			fmt.Fprintf(os.Stderr, "%d new, %d fixed since %s\n",
				len(diff.New), len(diff.Fixed), prev.RecordedAt.Format("2006-01-02 15:04:05"))
			return nil
		},
	}

	return cmd
}
