package list

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/code-review-checklists/checklint/cmd/application"
	"github.com/code-review-checklists/checklint/internal/cmd/output"
)

// NewSectionsCommand creates the list sections subcommand.
func NewSectionsCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sections",
		Short:   "List document sections",
		Aliases: []string{"section"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := app.Document()
			if err != nil {
				return err
			}

			data := output.Data{
				Headers: []string{"Section", "Slug", "Lines", "Items"},
				ColumnAlignment: []output.Align{
					output.AlignLeft, output.AlignLeft, output.AlignLeft, output.AlignRight,
				},
			}

			for _, section := range doc.Sections {
				items := 0
				for _, item := range doc.Items {
					if item.Section == section.Title {
						items++
					}
				}
				indent := strings.Repeat("  ", maxInt(section.Level-1, 0))
				data.Rows = append(data.Rows, []string{
					indent + section.Title,
					section.Slug,
					fmt.Sprintf("%d-%d", section.Line, section.EndLine),
					fmt.Sprintf("%d", items),
				})
			}

			formatter := output.NewFormatter(output.DetectFormat(app.OutputFormat()))
			if err := formatter.Format(os.Stdout, data); err != nil {
				return err
			}

			fmt.Fprintf(os.Stderr, "Found %d sections\n", len(doc.Sections))
			return nil
		},
	}

	return cmd
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
