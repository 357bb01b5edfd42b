package checks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrokenAnchor(t *testing.T) {
	doc := mustParse(t, `# Title

[good](#target) and [bad](#targte)

<a name="target"></a> anchored text
`)

	findings := run(t, "broken-anchor", doc)
	require.Len(t, findings, 1)
	assert.Equal(t, SeverityError, findings[0].Severity)
	assert.Equal(t, 3, findings[0].Line)
	assert.Contains(t, findings[0].Message, "#targte")
	assert.Equal(t, "did you mean #target?", findings[0].Suggestion)
}

func TestBrokenAnchor_HeadingSlugResolves(t *testing.T) {
	doc := mustParse(t, `# Title

## Race conditions

[see](#race-conditions)
`)

	assert.Empty(t, run(t, "broken-anchor", doc))
}

func TestBrokenAnchor_NoSuggestionWhenFar(t *testing.T) {
	doc := mustParse(t, `# Title

[link](#completely-unrelated-name)

<a name="x"></a>
`)

	findings := run(t, "broken-anchor", doc)
	require.Len(t, findings, 1)
	assert.Empty(t, findings[0].Suggestion)
}

func TestDuplicateAnchor(t *testing.T) {
	doc := mustParse(t, `# Title

<a name="dup"></a> first
<a name="dup"></a> second
[ok](#dup)
`)

	findings := run(t, "duplicate-anchor", doc)
	require.Len(t, findings, 1)
	assert.Equal(t, 4, findings[0].Line)
	assert.Contains(t, findings[0].Message, `"dup"`)
	assert.NotContains(t, findings[0].Message, "line")
	assert.Equal(t, "first defined at line 3", findings[0].Suggestion)
}

func TestOrphanAnchor(t *testing.T) {
	doc := mustParse(t, `# Title

<a name="linked"></a> linked
<a name="orphan"></a> never targeted
[go](#linked)
`)

	findings := run(t, "orphan-anchor", doc)
	require.Len(t, findings, 1)
	assert.Equal(t, SeverityWarning, findings[0].Severity)
	assert.Contains(t, findings[0].Message, `"orphan"`)
}

func TestEditDistance(t *testing.T) {
	assert.Equal(t, 0, editDistance("anchor", "anchor"))
	assert.Equal(t, 1, editDistance("anchor", "anchors"))
	assert.Equal(t, 2, editDistance("targte", "target"))
	assert.Equal(t, 5, editDistance("", "abcde"))
}
