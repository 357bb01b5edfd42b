package checklist

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-review-checklists/checklint/pkg/constants"
)

const testDoc = `# Java Concurrency Checklist

## Contents

- [Design](#design)
    - [Dn.1. Threading model documented?](#threading-documented)
    - [Dn.2. Immutable by default?](#immutable-first)

## Design

1. <a name="threading-documented"></a> **Dn.1. Is the threading model documented?** JCIP 2.1

2. <a name="immutable-first"></a> **Dn.2. Are classes immutable by default?** See Dn.1.`

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(testDoc), "test.md")
	require.NoError(t, err)

	assert.Equal(t, "test.md", doc.Path)
	assert.Equal(t, "Java Concurrency Checklist", doc.Title)
	assert.Len(t, doc.Digest, 64)
	assert.Equal(t, 13, doc.LineCount)
}

func TestParse_Sections(t *testing.T) {
	doc, err := Parse([]byte(testDoc), "test.md")
	require.NoError(t, err)
	require.Len(t, doc.Sections, 3)

	assert.Equal(t, "Java Concurrency Checklist", doc.Sections[0].Title)
	assert.Equal(t, 1, doc.Sections[0].Level)
	assert.Equal(t, 1, doc.Sections[0].Line)

	contents := doc.Sections[1]
	assert.Equal(t, "Contents", contents.Title)
	assert.Equal(t, "contents", contents.Slug)
	assert.Equal(t, 3, contents.Line)
	assert.Equal(t, 8, contents.EndLine)

	design := doc.Sections[2]
	assert.Equal(t, "design", design.Slug)
	assert.Equal(t, 9, design.Line)
	assert.Equal(t, doc.LineCount, design.EndLine)
}

func TestParse_Items(t *testing.T) {
	doc, err := Parse([]byte(testDoc), "test.md")
	require.NoError(t, err)
	require.Len(t, doc.Items, 2)

	want := Item{
		ID:        ID{Prefix: "Dn", Ordinal: 1},
		Title:     "Is the threading model documented? JCIP 2.1",
		Anchor:    "threading-documented",
		Line:      11,
		Section:   "Design",
		Citations: []string{"JCIP 2.1"},
	}
	if diff := cmp.Diff(want, doc.Items[0]); diff != "" {
		t.Errorf("first item mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, ID{Prefix: "Dn", Ordinal: 2}, doc.Items[1].ID)
	assert.Equal(t, "immutable-first", doc.Items[1].Anchor)
}

func TestParse_AnchorsAttributedToItems(t *testing.T) {
	doc, err := Parse([]byte(testDoc), "test.md")
	require.NoError(t, err)
	require.Len(t, doc.Anchors, 2)

	assert.Equal(t, "threading-documented", doc.Anchors[0].Name)
	assert.Equal(t, ID{Prefix: "Dn", Ordinal: 1}, doc.Anchors[0].Item)
	assert.Equal(t, ID{Prefix: "Dn", Ordinal: 2}, doc.Anchors[1].Item)
	assert.True(t, doc.HasAnchor("immutable-first"))
	assert.False(t, doc.HasAnchor("no-such-anchor"))
}

func TestParse_LinksAndRefs(t *testing.T) {
	doc, err := Parse([]byte(testDoc), "test.md")
	require.NoError(t, err)

	// Three TOC links, all fragments
	require.Len(t, doc.Links, 3)
	assert.Len(t, doc.FragmentLinks(), 3)
	assert.Equal(t, "design", doc.Links[0].Fragment())

	// Two mentions inside TOC entries plus the "See Dn.1" prose mention
	require.Len(t, doc.Refs, 3)
	assert.Equal(t, ID{Prefix: "Dn", Ordinal: 1}, doc.Refs[0].ID)
	assert.Equal(t, 6, doc.Refs[0].Line)
	last := doc.Refs[len(doc.Refs)-1]
	assert.Equal(t, ID{Prefix: "Dn", Ordinal: 1}, last.ID)
	assert.Equal(t, 13, last.Line)
	assert.Contains(t, last.Context, "See Dn.1")
}

func TestParse_RefContextWindowsLongLines(t *testing.T) {
	src := "# T\n\n<a name=\"rc-1\"></a> RC.1. " +
		strings.Repeat("padding ", 15) + "compare with RC.9 before merging.\n"
	doc, err := Parse([]byte(src), "long.md")
	require.NoError(t, err)

	require.Len(t, doc.Refs, 1)
	assert.Contains(t, doc.Refs[0].Context, "RC.9")
	// Window plus at most two ellipses
	assert.LessOrEqual(t, len([]rune(doc.Refs[0].Context)), constants.MaxContextLength+6)
}

func TestParse_ItemRequiresAnchor(t *testing.T) {
	doc, err := Parse([]byte("# T\n\n**RC.1. No anchor on this line.**\n"), "bare.md")
	require.NoError(t, err)

	// Without an anchor the line is not an item definition; the ID
	// registers as a reference instead.
	assert.Empty(t, doc.Items)
	require.Len(t, doc.Refs, 1)
	assert.Equal(t, ID{Prefix: "RC", Ordinal: 1}, doc.Refs[0].ID)
}

func TestParse_TOC(t *testing.T) {
	doc, err := Parse([]byte(testDoc), "test.md")
	require.NoError(t, err)

	toc := doc.TOC()
	require.NotNil(t, toc)
	assert.Equal(t, "Contents", toc.Title)

	noTOC, err := Parse([]byte("# Title\n\n## Body\n"), "plain.md")
	require.NoError(t, err)
	assert.Nil(t, noTOC.TOC())
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse([]byte("  \n\t\n"), "empty.md")
	assert.Error(t, err)
}

func TestParse_ImageIsNotLink(t *testing.T) {
	doc, err := Parse([]byte("# T\n\n![diagram](images/diagram.png)\n"), "img.md")
	require.NoError(t, err)
	assert.Empty(t, doc.Links)
}

func TestClassifyDestination(t *testing.T) {
	assert.Equal(t, LinkFragment, classifyDestination("#anchor"))
	assert.Equal(t, LinkExternal, classifyDestination("https://jcip.net"))
	assert.Equal(t, LinkExternal, classifyDestination("mailto:a@b.c"))
	assert.Equal(t, LinkRelative, classifyDestination("other.md"))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "race-conditions", slugify("Race conditions"))
	assert.Equal(t, "testable-concurrent-code", slugify("Testable Concurrent Code"))
	assert.Equal(t, "java-85", slugify("Java 8.5!"))
}
