// Package inspect provides commands for inspecting the embedded filesystem.
package inspect

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the inspect command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Inspect the embedded filesystem",
		Long: `Inspect lists and prints the files compiled into the binary,
including the embedded sample checklist.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newLsCommand())
	cmd.AddCommand(newCatCommand())

	return cmd
}
