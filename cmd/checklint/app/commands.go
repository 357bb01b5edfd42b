package app

import (
	"github.com/spf13/cobra"

	"github.com/code-review-checklists/checklint/cmd/checklint/cmd/describe"
	"github.com/code-review-checklists/checklint/cmd/checklint/cmd/history"
	"github.com/code-review-checklists/checklint/cmd/checklint/cmd/inspect"
	"github.com/code-review-checklists/checklint/cmd/checklint/cmd/lint"
	"github.com/code-review-checklists/checklint/cmd/checklint/cmd/list"
	"github.com/code-review-checklists/checklint/cmd/checklint/cmd/serve"
	"github.com/code-review-checklists/checklint/cmd/checklint/cmd/toc"
)

// registerCommands registers all subcommands with the root command.
// This is where we wire up all the command handlers.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(a.CreateLintCommand())
	rootCmd.AddCommand(a.CreateServeCommand())
	rootCmd.AddCommand(a.CreateHistoryCommand())

	// Document commands
	rootCmd.AddCommand(a.CreateListCommand())
	rootCmd.AddCommand(a.CreateTocCommand())
	rootCmd.AddCommand(a.CreateDescribeCommand())

	// Utility commands
	rootCmd.AddCommand(a.CreateInspectCommand())
	rootCmd.AddCommand(a.CreateVersionCommand())
}

// CreateLintCommand creates the lint command with app dependencies.
func (a *App) CreateLintCommand() *cobra.Command {
	return lint.NewCommand(a)
}

// CreateServeCommand creates the serve command with app dependencies.
func (a *App) CreateServeCommand() *cobra.Command {
	return serve.NewCommand(a)
}

// CreateHistoryCommand creates the history command with app dependencies.
func (a *App) CreateHistoryCommand() *cobra.Command {
	return history.NewCommand(a, a.config.StorePath)
}

// CreateListCommand creates the list command with app dependencies.
func (a *App) CreateListCommand() *cobra.Command {
	return list.NewCommand(a)
}

// CreateTocCommand creates the toc command with app dependencies.
func (a *App) CreateTocCommand() *cobra.Command {
	return toc.NewCommand(a)
}

// CreateDescribeCommand creates the describe command with app dependencies.
func (a *App) CreateDescribeCommand() *cobra.Command {
	return describe.NewCommand(a, a.config.DescribeModel)
}

// CreateInspectCommand creates the inspect command.
func (a *App) CreateInspectCommand() *cobra.Command {
	return inspect.NewCommand()
}

// CreateVersionCommand creates the version command.
func (a *App) CreateVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("checklint %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}
