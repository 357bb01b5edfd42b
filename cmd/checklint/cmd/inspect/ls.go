package inspect

import (
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/code-review-checklists/checklint/internal/embedded"
)

// newLsCommand creates the inspect ls subcommand.
func newLsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls [path]",
		Short: "List embedded files and directories",
		Args:  cobra.MaximumNArgs(1),
		Example: `  checklint inspect ls                # List the embedded root
  checklint inspect ls sample         # List the sample directory
  checklint inspect ls -l sample      # Long format with sizes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			long, _ := cmd.Flags().GetBool("long")

			target := "."
			if len(args) > 0 {
				target = args[0]
			}

			info, err := fs.Stat(embedded.FS, target)
			if err != nil {
				return fmt.Errorf("cannot access %q: %w", target, err)
			}

			if !info.IsDir() {
				printEntry(cmd, target, info, long)
				return nil
			}

			entries, err := fs.ReadDir(embedded.FS, target)
			if err != nil {
				return fmt.Errorf("cannot read %q: %w", target, err)
			}
			for _, entry := range entries {
				entryInfo, err := entry.Info()
				if err != nil {
					return err
				}
				printEntry(cmd, entry.Name(), entryInfo, long)
			}
			return nil
		},
	}

	cmd.Flags().BoolP("long", "l", false, "use a long listing format")

	return cmd
}

func printEntry(cmd *cobra.Command, name string, info fs.FileInfo, long bool) {
	display := name
	if info.IsDir() {
		display += "/"
	}
	if long {
		cmd.Printf("%10d  %s\n", info.Size(), display)
		return
	}
	cmd.Println(display)
}
