package goldmark_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdstyle/pkg/mdast"
	"github.com/yaklabco/mdstyle/pkg/parser/goldmark"
)

func parse(t *testing.T, content string) *mdast.Document {
	t.Helper()
	doc, err := goldmark.New(goldmark.FlavorCommonMark).
		Parse(context.Background(), "test.md", []byte(content))
	require.NoError(t, err)
	require.NotNil(t, doc.Root)
	return doc
}

func TestNew_FlavorDefaults(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "commonmark", goldmark.New("bogus").Flavor())
	assert.Equal(t, "gfm", goldmark.New(goldmark.FlavorGFM).Flavor())
}

func TestParse_EmptyDocument(t *testing.T) {
	t.Parallel()

	doc := parse(t, "")

	assert.Equal(t, mdast.NodeDocument, doc.Root.Kind)
	assert.False(t, doc.Root.HasChildren())
	assert.Equal(t, 0, doc.Root.StartOffset)
	assert.Equal(t, 0, doc.Root.EndOffset)
}

func TestParse_HeadingSpans(t *testing.T) {
	t.Parallel()

	doc := parse(t, "# H1\n### H3\n")

	headings := mdast.FindByKind(doc.Root, mdast.NodeHeading)
	require.Len(t, headings, 2)

	first := headings[0]
	assert.Equal(t, 1, first.Block.HeadingLevel)
	assert.Equal(t, 0, first.StartRow())
	assert.Equal(t, mdast.Position{Line: 0, Character: 0}, first.Span().Start)
	assert.Equal(t, "# H1", string(first.Text()))

	second := headings[1]
	assert.Equal(t, 3, second.Block.HeadingLevel)
	assert.Equal(t, 1, second.StartRow())
	assert.Equal(t, "### H3", string(second.Text()))
}

func TestParse_ListItemMarkers(t *testing.T) {
	t.Parallel()

	doc := parse(t, "* Item 1\n * Item 2\n")

	lists := mdast.FindByKind(doc.Root, mdast.NodeList)
	require.Len(t, lists, 1)
	assert.False(t, lists[0].Block.List.Ordered)
	assert.Equal(t, byte('*'), lists[0].Block.List.Marker)

	items := mdast.FindByKind(doc.Root, mdast.NodeListItem)
	require.Len(t, items, 2)

	// Item spans start at the bullet, not the content.
	assert.Equal(t, mdast.Position{Line: 0, Character: 0}, items[0].Span().Start)
	assert.Equal(t, mdast.Position{Line: 1, Character: 1}, items[1].Span().Start)
}

func TestParse_OrderedList(t *testing.T) {
	t.Parallel()

	doc := parse(t, "1. one\n2. two\n")

	lists := mdast.FindByKind(doc.Root, mdast.NodeList)
	require.Len(t, lists, 1)
	assert.True(t, lists[0].Block.List.Ordered)
	assert.Equal(t, 1, lists[0].Block.List.StartNumber)
}

func TestParse_FencedCodeBlock(t *testing.T) {
	t.Parallel()

	doc := parse(t, "before\n\n```go\nx := 1\n```\n\nafter\n")

	blocks := mdast.FindByKind(doc.Root, mdast.NodeCodeBlock)
	require.Len(t, blocks, 1)

	cb := blocks[0]
	require.NotNil(t, cb.Block.CodeBlock)
	assert.False(t, cb.Block.CodeBlock.Indented)
	assert.Equal(t, "go", cb.Block.CodeBlock.Info)
	assert.Equal(t, byte('`'), cb.Block.CodeBlock.FenceChar)
	assert.Equal(t, 3, cb.Block.CodeBlock.FenceLength)

	// The span covers both fence lines.
	assert.Equal(t, 2, cb.StartRow())
	assert.Equal(t, 4, cb.EndRow())
}

func TestParse_TildeFence(t *testing.T) {
	t.Parallel()

	doc := parse(t, "~~~\ncode\n~~~\n")

	blocks := mdast.FindByKind(doc.Root, mdast.NodeCodeBlock)
	require.Len(t, blocks, 1)
	assert.Equal(t, byte('~'), blocks[0].Block.CodeBlock.FenceChar)
	assert.Equal(t, 0, blocks[0].StartRow())
	assert.Equal(t, 2, blocks[0].EndRow())
}

func TestParse_IndentedCodeBlock(t *testing.T) {
	t.Parallel()

	doc := parse(t, "para\n\n    code line\n")

	blocks := mdast.FindByKind(doc.Root, mdast.NodeCodeBlock)
	require.Len(t, blocks, 1)
	assert.True(t, blocks[0].Block.CodeBlock.Indented)
	assert.Equal(t, 2, blocks[0].StartRow())
}

func TestParse_ThematicBreakPlacement(t *testing.T) {
	t.Parallel()

	doc := parse(t, "a\n\n---\n\nb\n")

	breaks := mdast.FindByKind(doc.Root, mdast.NodeThematicBreak)
	require.Len(t, breaks, 1)
	assert.Equal(t, 2, breaks[0].StartRow())
	assert.Equal(t, "---", string(breaks[0].Text()))
}

func TestParse_EmphasisMarkers(t *testing.T) {
	t.Parallel()

	doc := parse(t, "*em* and __strong__\n")

	emph := mdast.FindByKind(doc.Root, mdast.NodeEmphasis)
	require.Len(t, emph, 1)
	assert.Equal(t, byte('*'), emph[0].Inline.Marker)
	assert.Equal(t, "*em*", string(emph[0].Text()))

	strong := mdast.FindByKind(doc.Root, mdast.NodeStrong)
	require.Len(t, strong, 1)
	assert.Equal(t, byte('_'), strong[0].Inline.Marker)
	assert.Equal(t, "__strong__", string(strong[0].Text()))
}

func TestParse_CodeSpan(t *testing.T) {
	t.Parallel()

	doc := parse(t, "use `go build` here\n")

	spans := mdast.FindByKind(doc.Root, mdast.NodeCodeSpan)
	require.Len(t, spans, 1)
	assert.Equal(t, "`go build`", string(spans[0].Text()))
	assert.Equal(t, "go build", string(spans[0].Inline.Text))
}

func TestParse_LinkSpan(t *testing.T) {
	t.Parallel()

	doc := parse(t, "see [docs](https://example.com) now\n")

	links := mdast.FindByKind(doc.Root, mdast.NodeLink)
	require.Len(t, links, 1)
	assert.Equal(t, "https://example.com", links[0].Inline.Link.Destination)
	assert.Equal(t, "[docs](https://example.com)", string(links[0].Text()))
}

func TestParse_BlockquoteSpan(t *testing.T) {
	t.Parallel()

	doc := parse(t, "> quoted\n")

	quotes := mdast.FindByKind(doc.Root, mdast.NodeBlockquote)
	require.Len(t, quotes, 1)
	assert.Equal(t, mdast.Position{Line: 0, Character: 0}, quotes[0].Span().Start)
}

func TestParse_EveryNodePositioned(t *testing.T) {
	t.Parallel()

	doc := parse(t, "# T\n\n> quote with *em*\n\n- item `code`\n\n---\n")

	err := mdast.Walk(doc.Root, func(n *mdast.Node) error {
		assert.True(t, n.HasValidSpan(), "kind %s has no span", n.Kind)
		return nil
	})
	require.NoError(t, err)
}

func TestParse_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := goldmark.New(goldmark.FlavorCommonMark).Parse(ctx, "x.md", []byte("# hi"))
	require.Error(t, err)
}
