// Package describe provides the AI-assisted describe command.
package describe

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/code-review-checklists/checklint/cmd/application"
	"github.com/code-review-checklists/checklint/internal/describe"
	"github.com/code-review-checklists/checklint/pkg/constants"
)

// NewCommand creates the describe command with app dependencies.
// defaultModel is the model from configuration, used when --model is
// not given.
func NewCommand(app application.Application, defaultModel string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "describe",
		GroupID: "document",
		Short:   "Summarize the checklist with Gemini",
		Long: `Describe generates a natural-language summary of the checklist.

Requires a Gemini API key in the GEMINI_API_KEY environment variable
(a .env file works too).`,
		Example: `  checklint describe                          # Summarize the whole checklist
  checklint describe --section "Race conditions"
  checklint describe --model gemini-2.5-pro`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model, _ := cmd.Flags().GetString("model")
			section, _ := cmd.Flags().GetString("section")

			doc, err := app.Document()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), constants.DescribeTimeout)
			defer cancel()

			describer, err := describe.New(ctx, "", model)
			if err != nil {
				return err
			}

			var summary string
			if section != "" {
				summary, err = describer.Section(ctx, doc, section)
			} else {
				summary, err = describer.Document(ctx, doc)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), summary)
			return nil
		},
	}

	if defaultModel == "" {
		defaultModel = describe.DefaultModel
	}
	cmd.Flags().String("model", defaultModel, "Gemini model to use")
	cmd.Flags().String("section", "", "summarize only the named section")

	return cmd
}
