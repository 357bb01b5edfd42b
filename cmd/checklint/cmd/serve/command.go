// Package serve provides the preview server command.
package serve

import (
	"github.com/spf13/cobra"

	"github.com/code-review-checklists/checklint/cmd/application"
	"github.com/code-review-checklists/checklint/internal/server"
	"github.com/code-review-checklists/checklint/pkg/constants"
)

// NewCommand creates the serve command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		GroupID: "core",
		Short:   "Serve a live HTML preview of the checklist",
		Long: `Serve renders the checklist to HTML and serves it locally.

When linting a file on disk the server watches it for changes and
reloads connected browsers automatically. The current lint report is
available as JSON at /api/report.`,
		Example: `  checklint serve                            # Preview the embedded sample
  checklint serve -d java-concurrency.md     # Preview with live reload
  checklint serve --addr localhost:9000      # Custom listen address`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("addr")

			linter, err := app.Linter()
			if err != nil {
				return err
			}

			srv := server.New(server.Config{
				Addr:   addr,
				Linter: linter,
				Logger: app.Logger(),
			})
			return srv.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().String("addr", constants.DefaultServeAddr, "listen address")

	return cmd
}
