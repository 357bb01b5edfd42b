package list

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/code-review-checklists/checklint/cmd/application"
	"github.com/code-review-checklists/checklint/internal/cmd/output"
)

// NewAnchorsCommand creates the list anchors subcommand.
func NewAnchorsCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "anchors",
		Short:   "List deep-link anchor definitions",
		Aliases: []string{"anchor"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := app.Document()
			if err != nil {
				return err
			}

			// Count fragment links per anchor so unused ones stand out
			linked := make(map[string]int)
			for _, link := range doc.FragmentLinks() {
				linked[link.Fragment()]++
			}

			data := output.Data{
				Headers: []string{"Anchor", "Line", "Item", "Inbound Links"},
				ColumnAlignment: []output.Align{
					output.AlignLeft, output.AlignRight, output.AlignLeft, output.AlignRight,
				},
			}

			for _, anchor := range doc.Anchors {
				item := ""
				if !anchor.Item.IsZero() {
					item = anchor.Item.String()
				}
				data.Rows = append(data.Rows, []string{
					anchor.Name,
					fmt.Sprintf("%d", anchor.Line),
					item,
					fmt.Sprintf("%d", linked[anchor.Name]),
				})
			}

			formatter := output.NewFormatter(output.DetectFormat(app.OutputFormat()))
			if err := formatter.Format(os.Stdout, data); err != nil {
				return err
			}

			fmt.Fprintf(os.Stderr, "Found %d anchors\n", len(doc.Anchors))
			return nil
		},
	}

	return cmd
}
