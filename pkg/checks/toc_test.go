package checks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTocCoverage(t *testing.T) {
	doc := mustParse(t, `# Title

## Contents

- [RC.1](#rc-1)

## Items

<a name="rc-1"></a> RC.1. Linked from the TOC.
<a name="rc-2"></a> RC.2. Missing from the TOC.
`)

	findings := run(t, "toc-coverage", doc)
	require.Len(t, findings, 1)
	assert.Equal(t, 10, findings[0].Line)
	assert.Contains(t, findings[0].Message, "RC.2")
	assert.Contains(t, findings[0].Message, "#rc-2")
}

func TestTocCoverage_ItemNotLinked(t *testing.T) {
	doc := mustParse(t, `# Title

## Contents

- [items](#items)

## Items

<a name="rc-1"></a> RC.1. Has an anchor but TOC skips RC.9.
`)

	findings := run(t, "toc-coverage", doc)
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Message, "RC.1")
}

func TestTocCoverage_NoTOC(t *testing.T) {
	doc := mustParse(t, `# Title

<a name="rc-1"></a> RC.1. No contents section at all.
`)

	assert.Empty(t, run(t, "toc-coverage", doc))
}
