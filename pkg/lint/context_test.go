package lint_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdstyle/pkg/config"
	"github.com/yaklabco/mdstyle/pkg/lint"
	"github.com/yaklabco/mdstyle/pkg/mdast"
	mdparser "github.com/yaklabco/mdstyle/pkg/parser/goldmark"
)

func parseDoc(t *testing.T, content string) *mdast.Document {
	t.Helper()
	doc, err := mdparser.New(mdparser.FlavorCommonMark).Parse(
		context.Background(), "test.md", []byte(content))
	require.NoError(t, err)
	return doc
}

func TestContext_SpanIndexBuiltOnce(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, "# Title\n\nPara.\n\n```go\ncode\n```\n")
	c := lint.NewContext(doc, config.New())

	assert.Zero(t, c.IndexWalks())

	headings := c.SpansFor(mdast.NodeHeading)
	require.Len(t, headings, 1)
	assert.Equal(t, 1, c.IndexWalks())

	// Every later lookup, any kind, reuses the same build.
	c.SpansFor(mdast.NodeCodeBlock)
	c.SpansFor(mdast.NodeParagraph)
	c.SpansFor(mdast.NodeList)
	assert.Equal(t, 1, c.IndexWalks())
}

func TestContext_IsLineInCode(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, "# Title\n\n```\nfoo\tbar\n```\n\ntext\n")
	c := lint.NewContext(doc, config.New())

	assert.False(t, c.IsLineInCode(0))
	assert.True(t, c.IsLineInCode(2))
	assert.True(t, c.IsLineInCode(3))
	assert.True(t, c.IsLineInCode(4))
	assert.False(t, c.IsLineInCode(6))
}

func TestContext_IsLineExcluded(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, "text\n\n<div>\nraw html\n</div>\n\n```\ncode\n```\n")
	c := lint.NewContext(doc, config.New())

	assert.False(t, c.IsLineExcluded(0))
	assert.True(t, c.IsLineExcluded(2))
	assert.True(t, c.IsLineExcluded(3))
	assert.True(t, c.IsLineExcluded(4))
	assert.True(t, c.IsLineExcluded(7))

	// HTML rows are excluded without being code.
	assert.False(t, c.IsLineInCode(3))
}

func TestContext_SpansDocumentOrder(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, "# A\n\n## B\n\n### C\n")
	c := lint.NewContext(doc, config.New())

	spans := c.SpansFor(mdast.NodeHeading)
	require.Len(t, spans, 3)
	assert.Equal(t, 0, spans[0].Start)
	assert.Equal(t, 2, spans[1].Start)
	assert.Equal(t, 4, spans[2].Start)
}

func TestContext_EmptyDocument(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, "")
	c := lint.NewContext(doc, config.New())

	assert.Empty(t, c.SpansFor(mdast.NodeHeading))
	assert.False(t, c.IsLineInCode(0))
}

func TestRuleContext_Options(t *testing.T) {
	t.Parallel()

	rc := &lint.RuleContext{
		Options: map[string]any{
			"line_length": 120,
			"style":       "dash",
			"code_blocks": false,
			"allowed":     []any{"go", "bash"},
		},
	}

	assert.Equal(t, 120, rc.OptionInt("line_length", 80))
	assert.Equal(t, 80, rc.OptionInt("missing", 80))
	assert.Equal(t, "dash", rc.OptionString("style", "consistent"))
	assert.False(t, rc.OptionBool("code_blocks", true))
	assert.Equal(t, []string{"go", "bash"}, rc.OptionStringSlice("allowed", nil))
	assert.Equal(t, []string{"x"}, rc.OptionStringSlice("missing", []string{"x"}))
}
