package checklist

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/code-review-checklists/checklint/pkg/constants"
	"github.com/code-review-checklists/checklint/pkg/errors"
)

var (
	// anchorPattern matches HTML anchor definitions such as
	// <a name="reference-counting"></a>.
	anchorPattern = regexp.MustCompile(`<a\s+name\s*=\s*"([^"]*)"\s*>(?:</a>)?`)

	// linkPattern matches inline markdown links. The optional leading
	// bang distinguishes images, which are not navigation links.
	linkPattern = regexp.MustCompile(`(!)?\[([^\]]*)\]\(\s*([^)\s]+)(?:\s+"[^"]*")?\s*\)`)
)

// markdown is the shared goldmark instance used for structural parsing.
// GFM matches how the checklists are rendered on GitHub.
var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Parse parses raw markdown into a Document. The path is recorded for
// reporting only; no file access happens here.
func Parse(src []byte, path string) (*Document, error) {
	if len(bytes.TrimSpace(src)) == 0 {
		return nil, errors.NewParseError("markdown", path, "empty document", nil)
	}

	sum := sha256.Sum256(src)
	lines := strings.Split(string(src), "\n")

	doc := &Document{
		Path:      path,
		Digest:    hex.EncodeToString(sum[:]),
		LineCount: len(lines),
	}

	doc.Sections = parseSections(src)
	for i := range doc.Sections {
		if i+1 < len(doc.Sections) {
			doc.Sections[i].EndLine = doc.Sections[i+1].Line - 1
		} else {
			doc.Sections[i].EndLine = doc.LineCount
		}
	}
	for _, s := range doc.Sections {
		if s.Level == 1 {
			doc.Title = s.Title
			break
		}
	}

	scanLines(doc, lines)
	doc.buildIndexes()
	return doc, nil
}

// parseSections extracts headings from the goldmark AST. Line numbers
// come from the heading segment's byte offset.
func parseSections(src []byte) []Section {
	var sections []Section

	root := markdown.Parser().Parse(text.NewReader(src))
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok || heading.Lines().Len() == 0 {
			return ast.WalkContinue, nil
		}

		start := heading.Lines().At(0).Start
		title := cleanTitle(nodeText(heading, src))
		sections = append(sections, Section{
			Title: title,
			Level: heading.Level,
			Slug:  slugify(title),
			Line:  1 + bytes.Count(src[:start], []byte("\n")),
		})
		return ast.WalkContinue, nil
	})

	return sections
}

// nodeText flattens the text content of an inline tree.
func nodeText(n ast.Node, src []byte) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(src))
		default:
			sb.WriteString(nodeText(c, src))
		}
	}
	return sb.String()
}

// scanLines performs the line-oriented extraction of anchors, links,
// item definitions and item references. Line numbers are 1-based.
func scanLines(doc *Document, lines []string) {
	// Anchor name -> item defined on the same line, filled as items
	// are discovered so anchors can be attributed to their item.
	itemByLine := make(map[int]ID)

	for i, line := range lines {
		lineNo := i + 1

		for _, m := range anchorPattern.FindAllStringSubmatch(line, -1) {
			doc.Anchors = append(doc.Anchors, Anchor{Name: m[1], Line: lineNo})
		}

		for _, m := range linkPattern.FindAllStringSubmatch(line, -1) {
			if m[1] == "!" {
				continue // image, not a navigation link
			}
			doc.Links = append(doc.Links, Link{
				Text:        m[2],
				Destination: m[3],
				Kind:        classifyDestination(m[3]),
				Line:        lineNo,
			})
		}

		ids := idPattern.FindAllStringSubmatchIndex(line, -1)
		if len(ids) == 0 {
			continue
		}

		// A line that defines an anchor and carries an item ID is an
		// item definition; every other ID occurrence is a reference.
		defines := anchorPattern.MatchString(line)
		for idx, loc := range ids {
			id := mustID(line[loc[0]:loc[1]])
			if defines && idx == 0 {
				doc.Items = append(doc.Items, newItem(doc, id, line, loc[1], lineNo))
				itemByLine[lineNo] = id
				continue
			}
			doc.Refs = append(doc.Refs, Ref{
				ID:      id,
				Line:    lineNo,
				Context: contextAround(line, loc[0], loc[1]),
			})
		}
	}

	for i := range doc.Anchors {
		if id, ok := itemByLine[doc.Anchors[i].Line]; ok {
			doc.Anchors[i].Item = id
		}
	}
}

// newItem builds an Item from its definition line. titleStart is the
// byte offset just past the ID match.
func newItem(doc *Document, id ID, line string, titleStart, lineNo int) Item {
	title := strings.TrimLeft(line[titleStart:], ". ")
	item := Item{
		ID:        id,
		Title:     cleanTitle(title),
		Line:      lineNo,
		Citations: citationPattern.FindAllString(line, -1),
	}
	if m := anchorPattern.FindStringSubmatch(line); m != nil {
		item.Anchor = m[1]
	}
	if s := sectionBefore(doc.Sections, lineNo); s != nil {
		item.Section = s.Title
	}
	return item
}

// sectionBefore returns the nearest section starting at or before line.
func sectionBefore(sections []Section, line int) *Section {
	var found *Section
	for i := range sections {
		if sections[i].Line <= line {
			found = &sections[i]
		}
	}
	return found
}

// classifyDestination buckets a link destination by how it navigates.
func classifyDestination(dest string) LinkKind {
	switch {
	case strings.HasPrefix(dest, "#"):
		return LinkFragment
	case strings.Contains(dest, "://"), strings.HasPrefix(dest, "mailto:"):
		return LinkExternal
	default:
		return LinkRelative
	}
}

// mustID parses an ID already matched by idPattern.
func mustID(s string) ID {
	id, err := ParseID(s)
	if err != nil {
		panic("checklist: idPattern matched unparseable ID " + s)
	}
	return id
}

// slugify converts a heading title to a GitHub-style fragment slug.
func slugify(title string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == ' ', r == '-':
			sb.WriteByte('-')
		}
	}
	return sb.String()
}

// contextAround returns a snippet of the line surrounding the [start,
// end) byte span, capped at constants.MaxContextLength runes, so long
// lines still show the mention the snippet exists for.
func contextAround(line string, start, end int) string {
	line = strings.TrimRight(line, " \t")
	if end > len(line) {
		end = len(line)
	}

	runes := []rune(line)
	max := constants.MaxContextLength
	if len(runes) <= max {
		return strings.TrimSpace(line)
	}

	// Center the window on the matched span.
	mid := (utf8.RuneCountInString(line[:start]) + utf8.RuneCountInString(line[:end])) / 2
	lo := mid - max/2
	if lo < 0 {
		lo = 0
	}
	hi := lo + max
	if hi > len(runes) {
		hi = len(runes)
		lo = hi - max
	}

	snippet := strings.TrimSpace(string(runes[lo:hi]))
	if lo > 0 {
		snippet = "..." + snippet
	}
	if hi < len(runes) {
		snippet += "..."
	}
	return snippet
}
