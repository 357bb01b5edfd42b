// Package toc provides the table-of-contents generator command.
package toc

import (
	"os"

	md "github.com/nao1215/markdown"
	"github.com/spf13/cobra"

	"github.com/code-review-checklists/checklint/cmd/application"
)

// NewCommand creates the toc command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "toc",
		GroupID: "document",
		Short:   "Generate a table of contents for the checklist",
		Long: `Toc prints a markdown table of contents built from the document's
items and their anchors, ready to paste into the Contents section.

Items without an anchor are listed by title only; run "checklint lint"
to find them.`,
		Example: `  checklint toc                              # TOC for the embedded sample
  checklint toc -d java-concurrency.md       # TOC for a file
  checklint toc --sections                   # Section-level TOC instead`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sectionsOnly, _ := cmd.Flags().GetBool("sections")

			doc, err := app.Document()
			if err != nil {
				return err
			}

			builder := md.NewMarkdown(os.Stdout).H2("Contents").LF()

			if sectionsOnly {
				var entries []string
				for _, section := range doc.Sections {
					if section.Level != 2 {
						continue
					}
					entries = append(entries, md.Link(section.Title, "#"+section.Slug))
				}
				builder.BulletList(entries...)
				return builder.Build()
			}

			// One bullet per section, items nested beneath it. The
			// BulletList helper is flat, so nested entries are indented
			// plain text.
			for _, section := range doc.Sections {
				if section.Level != 2 {
					continue
				}
				builder.PlainText("- " + md.Link(section.Title, "#"+section.Slug))
				for _, item := range doc.Items {
					if item.Section != section.Title {
						continue
					}
					label := item.ID.String() + ". " + item.Title
					if item.Anchor != "" {
						builder.PlainText("    - " + md.Link(label, "#"+item.Anchor))
					} else {
						builder.PlainText("    - " + label)
					}
				}
			}

			return builder.Build()
		},
	}

	cmd.Flags().Bool("sections", false, "list sections only, not items")

	return cmd
}
