// Package history provides commands for the lint run history store.
package history

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/code-review-checklists/checklint/cmd/application"
)

// NewCommand creates the history command with app dependencies.
// defaultStore is the store path from configuration, used when the
// --store flag is not given.
func NewCommand(app application.Application, defaultStore string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "history",
		GroupID: "core",
		Short:   "Inspect recorded lint runs",
		Long: `History reads the local store of recorded lint runs.

Runs are recorded by "checklint lint" when a store path is configured
(store_path in the config file, or --store here).`,
		Example: `  checklint history list                    # Recent runs, newest first
  checklint history list --limit 5          # Only the last five
  checklint history diff                    # New and fixed findings since the previous run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("unknown subcommand: %s", args[0])
		},
	}

	cmd.PersistentFlags().String("store", defaultStore, "path of the history store")

	cmd.AddCommand(NewListCommand(app))
	cmd.AddCommand(NewDiffCommand(app))

	return cmd
}

// storePath resolves the store path flag, erroring when unset.
func storePath(cmd *cobra.Command) (string, error) {
	path, _ := cmd.Flags().GetString("store")
	if path == "" {
		return "", fmt.Errorf("no history store configured: set store_path or pass --store")
	}
	return path, nil
}
