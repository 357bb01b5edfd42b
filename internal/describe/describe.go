// Package describe generates natural-language summaries of a checklist
// using the Gemini API. It is an optional convenience for maintainers
// writing release notes or section overviews.
package describe

import (
	"context"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"

	"github.com/code-review-checklists/checklint/pkg/checklist"
	"github.com/code-review-checklists/checklint/pkg/errors"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.0-flash"

// APIKeyEnv is the environment variable holding the Gemini API key.
const APIKeyEnv = "GEMINI_API_KEY"

// Describer summarizes checklist documents via the Gemini API.
type Describer struct {
	client *genai.Client
	model  string
}

// New creates a Describer. The API key is read from the environment
// when key is empty; without one ErrAPIKeyRequired is returned.
func New(ctx context.Context, key, model string) (*Describer, error) {
	if key == "" {
		key = os.Getenv(APIKeyEnv)
	}
	if key == "" {
		return nil, errors.ErrAPIKeyRequired
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: key,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}

	return &Describer{client: client, model: model}, nil
}

// Document summarizes the whole checklist: what it covers, how it is
// organized and how reviewers are meant to use it.
func (d *Describer) Document(ctx context.Context, doc *checklist.Document) (string, error) {
	var b strings.Builder
	b.WriteString("Summarize the following code review checklist in a few short paragraphs. ")
	b.WriteString("Describe what it covers, how its sections are organized and how a reviewer would use it. ")
	b.WriteString("Be concrete and do not invent content that is not in the checklist.\n\n")
	writeOutline(&b, doc)
	return d.generate(ctx, b.String())
}

// Section summarizes a single section by title.
func (d *Describer) Section(ctx context.Context, doc *checklist.Document, title string) (string, error) {
	var section *checklist.Section
	for i := range doc.Sections {
		if strings.EqualFold(doc.Sections[i].Title, title) {
			section = &doc.Sections[i]
			break
		}
	}
	if section == nil {
		return "", errors.NewNotFoundError("section", title)
	}

	var b strings.Builder
	b.WriteString("Summarize this section of a code review checklist in one short paragraph. ")
	b.WriteString("Explain what class of problems its items catch.\n\n")
	fmt.Fprintf(&b, "Section: %s\n\n", section.Title)
	for _, item := range doc.Items {
		if item.Section != section.Title {
			continue
		}
		fmt.Fprintf(&b, "- %s %s\n", item.ID, item.Title)
	}
	return d.generate(ctx, b.String())
}

// generate sends the prompt and returns the response text.
func (d *Describer) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := d.client.Models.GenerateContent(ctx, d.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generating summary: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model %s", d.model)
	}
	return strings.TrimSpace(text), nil
}

// writeOutline renders a compact outline of the document for prompting.
func writeOutline(b *strings.Builder, doc *checklist.Document) {
	fmt.Fprintf(b, "Title: %s\n\n", doc.Title)
	for _, section := range doc.Sections {
		if section.Level < 2 {
			continue
		}
		fmt.Fprintf(b, "%s %s\n", strings.Repeat("#", section.Level), section.Title)
		for _, item := range doc.Items {
			if item.Section != section.Title {
				continue
			}
			fmt.Fprintf(b, "- %s %s\n", item.ID, item.Title)
		}
		b.WriteString("\n")
	}
}
