// Package checklist provides the document model for markdown review
// checklists. A checklist is a single markdown file made of sections and
// numbered items (e.g. "RC.1"), where each item carries an HTML anchor
// (`<a name="...">`) that the table of contents and prose deep-link to.
//
// The package parses a document into a structured, read-only catalog of
// sections, items, anchors, links and item references. A parsed Document
// is immutable and safe for concurrent use.
//
// An item definition is recognized only on a line that also defines an
// anchor; an item ID on an anchor-less line is recorded as a reference,
// which the integrity checks flag when no anchored definition exists.
//
// Example usage:
//
//	doc, err := checklist.ParseFile("java-concurrency.md")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, item := range doc.Items {
//	    fmt.Printf("%s: %s\n", item.ID, item.Title)
//	}
package checklist

import (
	"strings"
)

// Document is a parsed checklist file. All slices are ordered by line
// number. Documents are immutable after parsing.
type Document struct {
	// Path is the file path the document was parsed from, or a synthetic
	// name for in-memory sources.
	Path string `json:"path"`

	// Title is the text of the first level-1 heading, if any.
	Title string `json:"title"`

	// Digest is the hex-encoded SHA-256 of the raw document bytes.
	Digest string `json:"digest"`

	// LineCount is the number of lines in the source.
	LineCount int `json:"line_count"`

	// Sections are the markdown headings of the document.
	Sections []Section `json:"sections"`

	// Items are the numbered checklist items.
	Items []Item `json:"items"`

	// Anchors are all `<a name="...">` definitions.
	Anchors []Anchor `json:"anchors"`

	// Links are all markdown links, including TOC fragment links.
	Links []Link `json:"links"`

	// Refs are prose mentions of item IDs outside their own definition.
	Refs []Ref `json:"refs"`

	itemIndex   map[ID][]int
	anchorIndex map[string][]int
}

// Section is a markdown heading and the span of lines it owns.
type Section struct {
	Title   string `json:"title"`
	Level   int    `json:"level"`
	Slug    string `json:"slug"`
	Line    int    `json:"line"`
	EndLine int    `json:"end_line"`
}

// Anchor is an in-document named location created by `<a name="...">`.
type Anchor struct {
	Name string `json:"name"`
	Line int    `json:"line"`

	// Item is the ID of the item defined on the same line, if any.
	Item ID `json:"item,omitempty"`
}

// LinkKind classifies a markdown link destination.
type LinkKind int

const (
	// LinkFragment is an in-document link such as "#anchor-name".
	LinkFragment LinkKind = iota
	// LinkExternal is a link with a scheme, such as "https://...".
	LinkExternal
	// LinkRelative is a repository-relative link such as "other.md".
	LinkRelative
)

// String returns the kind as a short lowercase word.
func (k LinkKind) String() string {
	switch k {
	case LinkFragment:
		return "fragment"
	case LinkExternal:
		return "external"
	default:
		return "relative"
	}
}

// Link is a markdown link occurrence.
type Link struct {
	Text        string   `json:"text"`
	Destination string   `json:"destination"`
	Kind        LinkKind `json:"kind"`
	Line        int      `json:"line"`
}

// Fragment returns the anchor name a fragment link points at,
// without the leading '#'. Empty for non-fragment links.
func (l Link) Fragment() string {
	if l.Kind != LinkFragment {
		return ""
	}
	return strings.TrimPrefix(l.Destination, "#")
}

// Ref is a prose mention of an item ID, e.g. "see also RC.3".
type Ref struct {
	ID      ID     `json:"id"`
	Line    int    `json:"line"`
	Context string `json:"context"`
}

// Item returns the first item with the given ID.
func (d *Document) Item(id ID) (*Item, bool) {
	idxs, ok := d.itemIndex[id]
	if !ok || len(idxs) == 0 {
		return nil, false
	}
	return &d.Items[idxs[0]], true
}

// ItemsWithID returns every item claiming the given ID. More than one
// entry indicates a duplicate definition.
func (d *Document) ItemsWithID(id ID) []Item {
	idxs := d.itemIndex[id]
	items := make([]Item, 0, len(idxs))
	for _, i := range idxs {
		items = append(items, d.Items[i])
	}
	return items
}

// AnchorsNamed returns every anchor definition with the given name.
func (d *Document) AnchorsNamed(name string) []Anchor {
	idxs := d.anchorIndex[name]
	anchors := make([]Anchor, 0, len(idxs))
	for _, i := range idxs {
		anchors = append(anchors, d.Anchors[i])
	}
	return anchors
}

// HasAnchor reports whether an anchor with the given name is defined.
func (d *Document) HasAnchor(name string) bool {
	return len(d.anchorIndex[name]) > 0
}

// AnchorNames returns the set of defined anchor names.
func (d *Document) AnchorNames() []string {
	names := make([]string, 0, len(d.anchorIndex))
	for name := range d.anchorIndex {
		names = append(names, name)
	}
	return names
}

// FragmentLinks returns all in-document links.
func (d *Document) FragmentLinks() []Link {
	var links []Link
	for _, l := range d.Links {
		if l.Kind == LinkFragment {
			links = append(links, l)
		}
	}
	return links
}

// TOC returns the table-of-contents section, identified by a heading
// containing "contents". Returns nil when the document has none.
func (d *Document) TOC() *Section {
	for i := range d.Sections {
		if strings.Contains(strings.ToLower(d.Sections[i].Title), "contents") {
			return &d.Sections[i]
		}
	}
	return nil
}

// SectionAt returns the innermost section whose span contains the line.
func (d *Document) SectionAt(line int) *Section {
	var found *Section
	for i := range d.Sections {
		s := &d.Sections[i]
		if s.Line <= line && line <= s.EndLine {
			if found == nil || s.Level >= found.Level {
				found = s
			}
		}
	}
	return found
}

// Prefixes returns the distinct item ID prefixes in definition order.
func (d *Document) Prefixes() []string {
	seen := make(map[string]bool)
	var prefixes []string
	for _, item := range d.Items {
		if !seen[item.ID.Prefix] {
			seen[item.ID.Prefix] = true
			prefixes = append(prefixes, item.ID.Prefix)
		}
	}
	return prefixes
}

// buildIndexes populates the lookup maps. Called once at parse time.
func (d *Document) buildIndexes() {
	d.itemIndex = make(map[ID][]int, len(d.Items))
	for i, item := range d.Items {
		d.itemIndex[item.ID] = append(d.itemIndex[item.ID], i)
	}
	d.anchorIndex = make(map[string][]int, len(d.Anchors))
	for i, a := range d.Anchors {
		d.anchorIndex[a.Name] = append(d.anchorIndex[a.Name], i)
	}
}
