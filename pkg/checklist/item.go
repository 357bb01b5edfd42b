package checklist

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ID identifies a checklist item, e.g. "RC.1" or "Dn.3". The prefix
// groups items by topic and the ordinal numbers them within the group.
type ID struct {
	Prefix  string `json:"prefix"`
	Ordinal int    `json:"ordinal"`
}

// idPattern matches item IDs such as "RC.1", "Dn.12" or "TE.4".
// A leading capital keeps version numbers like "v1.2" out; requiring
// letters before the dot keeps citations like "5.6" out.
var idPattern = regexp.MustCompile(`\b([A-Z][A-Za-z]{0,3})\.(\d+)\b`)

// ParseID parses an item ID from its string form.
func ParseID(s string) (ID, error) {
	m := idPattern.FindStringSubmatch(s)
	if m == nil || m[0] != s {
		return ID{}, fmt.Errorf("invalid item ID %q", s)
	}
	ordinal, err := strconv.Atoi(m[2])
	if err != nil {
		return ID{}, fmt.Errorf("invalid item ID %q: %w", s, err)
	}
	return ID{Prefix: m[1], Ordinal: ordinal}, nil
}

// String returns the canonical "Prefix.Ordinal" form.
func (id ID) String() string {
	return id.Prefix + "." + strconv.Itoa(id.Ordinal)
}

// IsZero reports whether the ID is unset.
func (id ID) IsZero() bool {
	return id.Prefix == "" && id.Ordinal == 0
}

// MarshalJSON encodes the ID in its string form.
func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(id.String())), nil
}

// UnmarshalJSON decodes the ID from its string form.
func (id *ID) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return err
	}
	parsed, err := ParseID(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Item is a single numbered checklist entry.
type Item struct {
	ID ID `json:"id"`

	// Title is the item's question or recommendation, with markdown
	// emphasis stripped.
	Title string `json:"title"`

	// Anchor is the name of the anchor defined on the item's line,
	// empty when the item has no deep-link target.
	Anchor string `json:"anchor,omitempty"`

	// Line is the 1-based line of the item definition.
	Line int `json:"line"`

	// Section is the title of the enclosing section.
	Section string `json:"section,omitempty"`

	// Citations are reading references found on the definition line,
	// e.g. "JCIP 5.6" or "EJ Item 83".
	Citations []string `json:"citations,omitempty"`
}

// citationPattern matches the JCIP / EJ shorthand citations used in
// review checklists to point at the standard references.
var citationPattern = regexp.MustCompile(`\b(?:JCIP\s+\d+(?:\.\d+)*|EJ\s+Item\s+\d+)\b`)

// cleanTitle strips markdown emphasis, trailing anchors and list
// markers from an item title.
func cleanTitle(s string) string {
	s = anchorPattern.ReplaceAllString(s, "")
	s = strings.NewReplacer("**", "", "*", "", "`", "").Replace(s)
	return strings.TrimSpace(s)
}
