// Package list provides commands for listing checklist resources.
package list

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/code-review-checklists/checklint/cmd/application"
)

// NewCommand creates the list command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list [resource]",
		GroupID: "document",
		Short:   "List items, sections and anchors from the checklist",
		Long: `List displays resources from the checklist document.

Available subcommands:
  items       - Numbered checklist items
  sections    - Document sections
  anchors     - Deep-link anchor definitions
  checks      - Available integrity checks`,
		Example: `  checklint list items                     # List all items
  checklint list items --prefix RC         # Items in the RC series
  checklint list sections                  # List sections
  checklint list anchors                   # List anchors
  checklint list checks                    # List integrity checks`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to help if no subcommand
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("unknown resource: %s", args[0])
		},
	}

	cmd.AddCommand(NewItemsCommand(app))
	cmd.AddCommand(NewSectionsCommand(app))
	cmd.AddCommand(NewAnchorsCommand(app))
	cmd.AddCommand(NewChecksCommand(app))

	return cmd
}
