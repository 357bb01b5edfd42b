package inspect

import (
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/code-review-checklists/checklint/internal/embedded"
)

// newCatCommand creates the inspect cat subcommand.
func newCatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cat <path>",
		Short: "Print an embedded file",
		Args:  cobra.ExactArgs(1),
		Example: `  checklint inspect cat ` + embedded.SamplePath,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := fs.ReadFile(embedded.FS, args[0])
			if err != nil {
				return fmt.Errorf("cannot read %q: %w", args[0], err)
			}
			cmd.Print(string(data))
			return nil
		},
	}
}
