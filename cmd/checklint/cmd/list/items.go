package list

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/code-review-checklists/checklint/cmd/application"
	"github.com/code-review-checklists/checklint/internal/cmd/output"
	"github.com/code-review-checklists/checklint/pkg/checklist"
	"github.com/code-review-checklists/checklint/pkg/errors"
)

// NewItemsCommand creates the list items subcommand.
func NewItemsCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "items [item-id]",
		Short:   "List numbered checklist items",
		Aliases: []string{"item"},
		Args:    cobra.MaximumNArgs(1),
		Example: `  checklint list items                     # List all items
  checklint list items RC.1                # Show one item
  checklint list items --prefix Dn         # Items in the Dn series
  checklint list items --section "Design"  # Items in a section`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return showItem(app, args[0])
			}

			prefix, _ := cmd.Flags().GetString("prefix")
			section, _ := cmd.Flags().GetString("section")
			return listItems(app, prefix, section)
		},
	}

	cmd.Flags().String("prefix", "", "filter by item prefix (e.g. RC, Dn)")
	cmd.Flags().String("section", "", "filter by enclosing section title")

	return cmd
}

func listItems(app application.Application, prefix, section string) error {
	doc, err := app.Document()
	if err != nil {
		return err
	}

	data := output.Data{
		Headers: []string{"ID", "Title", "Anchor", "Line", "Section"},
		ColumnAlignment: []output.Align{
			output.AlignLeft, output.AlignLeft, output.AlignLeft, output.AlignRight, output.AlignLeft,
		},
	}

	count := 0
	for _, item := range doc.Items {
		if prefix != "" && !strings.EqualFold(item.ID.Prefix, prefix) {
			continue
		}
		if section != "" && !strings.EqualFold(item.Section, section) {
			continue
		}
		count++
		data.Rows = append(data.Rows, []string{
			item.ID.String(),
			item.Title,
			item.Anchor,
			fmt.Sprintf("%d", item.Line),
			item.Section,
		})
	}

	formatter := output.NewFormatter(output.DetectFormat(app.OutputFormat()))
	if err := formatter.Format(os.Stdout, data); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Found %d items\n", count)
	return nil
}

func showItem(app application.Application, raw string) error {
	doc, err := app.Document()
	if err != nil {
		return err
	}

	id, err := checklist.ParseID(raw)
	if err != nil {
		return err
	}
	item, ok := doc.Item(id)
	if !ok {
		return errors.NewNotFoundError("item", raw)
	}

	formatter := output.NewFormatter(output.DetectFormat(app.OutputFormat()))
	return formatter.Format(os.Stdout, *item)
}
