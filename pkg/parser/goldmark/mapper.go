package goldmark

import (
	"strings"

	gast "github.com/yuin/goldmark/ast"

	"github.com/yaklabco/mdstyle/pkg/mdast"
)

// mapper converts a goldmark AST into an mdast.Node tree, deriving
// byte spans from goldmark segments. Where goldmark carries no
// position (markers, fences, thematic breaks), the mapper scans the
// raw source to recover one; nodes whose span cannot be derived
// inherit their parent's span rather than failing the parse.
type mapper struct {
	source []byte
	lines  *mdast.LineIndex
}

func newMapper(source []byte, lines *mdast.LineIndex) *mapper {
	return &mapper{source: source, lines: lines}
}

// mapTree converts the goldmark document node into a positioned tree.
func (m *mapper) mapTree(gmRoot gast.Node) *mdast.Node {
	root := m.mapNode(gmRoot)
	if root == nil || root.Kind != mdast.NodeDocument {
		root = mdast.NewNode(mdast.NodeDocument)
	}
	root.StartOffset = 0
	root.EndOffset = len(m.source)

	m.placeThematicBreaks(root)
	inheritSpans(root)

	return root
}

// mapChildren recursively maps all children of a goldmark node.
func (m *mapper) mapChildren(gmParent gast.Node, parent *mdast.Node) {
	for child := gmParent.FirstChild(); child != nil; child = child.NextSibling() {
		if node := m.mapNode(child); node != nil {
			parent.AppendChild(node)
		}
	}
}

// mapNode converts a single goldmark node, children included.
// Children are mapped before the node's own span fixups run, so every
// fixup sees fully-positioned children.
func (m *mapper) mapNode(gmNode gast.Node) *mdast.Node {
	switch gmn := gmNode.(type) {
	// Block-level nodes.
	case *gast.Document:
		node := mdast.NewNode(mdast.NodeDocument)
		m.mapChildren(gmNode, node)
		return node

	case *gast.Heading:
		return m.mapHeading(gmn)

	case *gast.Paragraph:
		node := mdast.NewNode(mdast.NodeParagraph)
		m.spanFromLines(node, gmn)
		m.mapChildren(gmNode, node)
		return node

	case *gast.TextBlock:
		node := mdast.NewNode(mdast.NodeParagraph)
		m.spanFromLines(node, gmn)
		m.mapChildren(gmNode, node)
		return node

	case *gast.List:
		return m.mapList(gmn)

	case *gast.ListItem:
		node := mdast.NewNode(mdast.NodeListItem)
		m.mapChildren(gmNode, node)
		coverFromChildren(node)
		m.extendToLineIndent(node)
		return node

	case *gast.Blockquote:
		node := mdast.NewNode(mdast.NodeBlockquote)
		m.mapChildren(gmNode, node)
		coverFromChildren(node)
		m.extendToLineIndent(node)
		return node

	case *gast.FencedCodeBlock:
		return m.mapFencedCodeBlock(gmn)

	case *gast.CodeBlock:
		node := mdast.NewNode(mdast.NodeCodeBlock)
		node.Block = &mdast.BlockAttrs{CodeBlock: &mdast.CodeBlockAttrs{Indented: true}}
		m.spanFromLines(node, gmn)
		return node

	case *gast.ThematicBreak:
		// goldmark carries no position for breaks; placed in a later pass.
		return mdast.NewNode(mdast.NodeThematicBreak)

	case *gast.HTMLBlock:
		return m.mapHTMLBlock(gmn)

	// Inline-level nodes.
	case *gast.Text:
		node := mdast.NewNode(mdast.NodeText)
		node.StartOffset = gmn.Segment.Start
		node.EndOffset = gmn.Segment.Stop
		node.Inline = &mdast.InlineAttrs{Text: gmn.Segment.Value(m.source)}
		return node

	case *gast.String:
		node := mdast.NewNode(mdast.NodeText)
		node.Inline = &mdast.InlineAttrs{Text: gmn.Value}
		return node

	case *gast.Emphasis:
		return m.mapEmphasis(gmn)

	case *gast.CodeSpan:
		return m.mapCodeSpan(gmn)

	case *gast.Link:
		return m.mapLinkOrImage(gmn, mdast.NodeLink, string(gmn.Destination), string(gmn.Title))

	case *gast.Image:
		return m.mapLinkOrImage(gmn, mdast.NodeImage, string(gmn.Destination), string(gmn.Title))

	case *gast.AutoLink:
		node := mdast.NewNode(mdast.NodeLink)
		node.Inline = &mdast.InlineAttrs{
			Link: &mdast.LinkAttrs{
				Destination: string(gmn.URL(m.source)),
				AutoLink:    true,
			},
		}
		return node

	case *gast.RawHTML:
		node := mdast.NewNode(mdast.NodeHTMLInline)
		if gmn.Segments != nil && gmn.Segments.Len() > 0 {
			node.StartOffset = gmn.Segments.At(0).Start
			node.EndOffset = gmn.Segments.At(gmn.Segments.Len() - 1).Stop
		}
		return node

	default:
		// GFM extension nodes and anything unrecognized.
		node := mdast.NewNode(mdast.NodeRaw)
		m.mapChildren(gmNode, node)
		coverFromChildren(node)
		return node
	}
}

// spanFromLines sets a block node's span from goldmark line segments.
func (m *mapper) spanFromLines(node *mdast.Node, gmn gast.Node) {
	lines := gmn.Lines()
	if lines == nil || lines.Len() == 0 {
		return
	}
	node.StartOffset = lines.At(0).Start
	node.EndOffset = lines.At(lines.Len() - 1).Stop
	// Trim a trailing newline out of the span.
	for node.EndOffset > node.StartOffset {
		ch := m.source[node.EndOffset-1]
		if ch != '\n' && ch != '\r' {
			break
		}
		node.EndOffset--
	}
}

func (m *mapper) mapHeading(h *gast.Heading) *mdast.Node {
	node := mdast.NewNode(mdast.NodeHeading)
	node.Block = &mdast.BlockAttrs{HeadingLevel: h.Level}
	m.spanFromLines(node, h)
	m.mapChildren(h, node)
	// ATX heading segments start after the hash markers; pull the span
	// back to the first non-space byte of the line.
	m.extendToLineIndent(node)
	return node
}

func (m *mapper) mapList(list *gast.List) *mdast.Node {
	node := mdast.NewNode(mdast.NodeList)
	node.Block = &mdast.BlockAttrs{
		List: &mdast.ListAttrs{
			Ordered:     list.IsOrdered(),
			Marker:      list.Marker,
			StartNumber: list.Start,
			Tight:       list.IsTight,
		},
	}
	m.mapChildren(list, node)
	coverFromChildren(node)
	return node
}

func (m *mapper) mapFencedCodeBlock(f *gast.FencedCodeBlock) *mdast.Node {
	node := mdast.NewNode(mdast.NodeCodeBlock)
	attrs := &mdast.CodeBlockAttrs{Indented: false}
	if f.Info != nil {
		attrs.Info = strings.TrimSpace(string(f.Info.Segment.Value(m.source)))
	}

	// Locate the rows around the content so the span covers the fences.
	openRow, closeRow := -1, -1
	if lines := f.Lines(); lines.Len() > 0 {
		first := lines.At(0)
		last := lines.At(lines.Len() - 1)
		node.StartOffset = first.Start
		node.EndOffset = last.Stop
		row, _ := m.lines.RowCol(first.Start)
		openRow = row - 1
		row, _ = m.lines.RowCol(last.Stop - 1)
		closeRow = row + 1
	} else if f.Info != nil {
		row, _ := m.lines.RowCol(f.Info.Segment.Start)
		openRow = row
		closeRow = row + 1
	}

	if openRow >= 0 {
		if ch, length, ok := fenceOnRow(m.lines, openRow); ok {
			attrs.FenceChar = ch
			attrs.FenceLength = length
			start := m.lines.LineStart(openRow) + m.lines.Indent(openRow)
			if !node.HasValidSpan() || start < node.StartOffset {
				node.StartOffset = start
			}
			if node.EndOffset < node.StartOffset {
				node.EndOffset = m.lines.LineStart(openRow) + len(m.lines.Line(openRow))
			}
		}
	}
	if closeRow >= 0 && closeRow < m.lines.Count() {
		if ch, _, ok := fenceOnRow(m.lines, closeRow); ok &&
			(attrs.FenceChar == 0 || ch == attrs.FenceChar) {
			end := m.lines.LineStart(closeRow) + len(m.lines.Line(closeRow))
			if end > node.EndOffset {
				node.EndOffset = end
			}
		}
	}

	if attrs.FenceChar == 0 {
		attrs.FenceChar = '`'
		attrs.FenceLength = 3
	}
	node.Block = &mdast.BlockAttrs{CodeBlock: attrs}
	return node
}

func (m *mapper) mapHTMLBlock(h *gast.HTMLBlock) *mdast.Node {
	node := mdast.NewNode(mdast.NodeHTMLBlock)
	m.spanFromLines(node, h)
	if h.HasClosure() {
		if end := h.ClosureLine.Stop; end > node.EndOffset {
			node.EndOffset = end
		}
	}
	return node
}

func (m *mapper) mapEmphasis(e *gast.Emphasis) *mdast.Node {
	kind := mdast.NodeEmphasis
	if e.Level >= 2 {
		kind = mdast.NodeStrong
	}
	node := mdast.NewNode(kind)
	node.Inline = &mdast.InlineAttrs{EmphasisLevel: e.Level}
	m.mapChildren(e, node)
	coverFromChildren(node)

	// The markers sit just outside the children's text span.
	if node.HasValidSpan() && node.StartOffset >= e.Level {
		marker := m.source[node.StartOffset-1]
		if marker == '*' || marker == '_' {
			if m.surroundedBy(node, marker, e.Level) {
				node.StartOffset -= e.Level
				node.EndOffset += e.Level
			}
			node.Inline.Marker = marker
		}
	}
	return node
}

// surroundedBy reports whether count marker bytes immediately precede
// and follow the node's span.
func (m *mapper) surroundedBy(node *mdast.Node, marker byte, count int) bool {
	if node.StartOffset < count || node.EndOffset+count > len(m.source) {
		return false
	}
	for i := 1; i <= count; i++ {
		if m.source[node.StartOffset-i] != marker || m.source[node.EndOffset+i-1] != marker {
			return false
		}
	}
	return true
}

func (m *mapper) mapCodeSpan(cs *gast.CodeSpan) *mdast.Node {
	node := mdast.NewNode(mdast.NodeCodeSpan)

	var content []byte
	for child := cs.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*gast.Text); ok {
			content = append(content, t.Segment.Value(m.source)...)
			if !node.HasValidSpan() {
				node.StartOffset = t.Segment.Start
				node.EndOffset = t.Segment.Stop
			} else if t.Segment.Stop > node.EndOffset {
				node.EndOffset = t.Segment.Stop
			}
		}
	}
	node.Inline = &mdast.InlineAttrs{Text: content}

	// Pull the backtick delimiters into the span.
	if node.HasValidSpan() {
		for node.StartOffset > 0 && m.source[node.StartOffset-1] == '`' {
			node.StartOffset--
		}
		for node.EndOffset < len(m.source) && m.source[node.EndOffset] == '`' {
			node.EndOffset++
		}
	}
	return node
}

func (m *mapper) mapLinkOrImage(gmn gast.Node, kind mdast.NodeKind, dest, title string) *mdast.Node {
	node := mdast.NewNode(kind)
	node.Inline = &mdast.InlineAttrs{
		Link: &mdast.LinkAttrs{Destination: dest, Title: title},
	}
	m.mapChildren(gmn, node)
	coverFromChildren(node)

	if !node.HasValidSpan() {
		return node
	}

	// Pull in the surrounding syntax: [text](dest), ![alt](dest),
	// [text][label]. Reference definitions are normalized by goldmark,
	// so only the usage site is recoverable.
	if node.StartOffset > 0 && m.source[node.StartOffset-1] == '[' {
		node.StartOffset--
		if kind == mdast.NodeImage && node.StartOffset > 0 && m.source[node.StartOffset-1] == '!' {
			node.StartOffset--
		}
	}
	if node.EndOffset < len(m.source) && m.source[node.EndOffset] == ']' {
		node.EndOffset++
		if node.EndOffset < len(m.source) {
			switch m.source[node.EndOffset] {
			case '(':
				if end, ok := m.scanTo(node.EndOffset, ')'); ok {
					node.EndOffset = end
				}
			case '[':
				if end, ok := m.scanTo(node.EndOffset, ']'); ok {
					node.EndOffset = end
				}
			}
		}
	}
	return node
}

// scanTo returns the offset just past the next occurrence of close on
// the same line, starting after from.
func (m *mapper) scanTo(from int, close byte) (int, bool) {
	for i := from + 1; i < len(m.source); i++ {
		switch m.source[i] {
		case close:
			return i + 1, true
		case '\n':
			return 0, false
		}
	}
	return 0, false
}

// extendToLineIndent pulls the node's start back to the first
// non-space byte of its start row, capturing list markers, blockquote
// markers, and ATX hashes that goldmark segments exclude.
func (m *mapper) extendToLineIndent(node *mdast.Node) {
	if !node.HasValidSpan() {
		return
	}
	row, _ := m.lines.RowCol(node.StartOffset)
	indent := m.lines.Indent(row)
	if indent < 0 {
		return
	}
	start := m.lines.LineStart(row) + indent
	if start < node.StartOffset {
		node.StartOffset = start
	}
}

// placeThematicBreaks locates break rows by scanning the source lines
// between each break's positioned neighbors.
func (m *mapper) placeThematicBreaks(root *mdast.Node) {
	//nolint:errcheck // visitor never returns an error
	mdast.Walk(root, func(n *mdast.Node) error {
		if n.Kind != mdast.NodeThematicBreak || n.HasValidSpan() {
			return nil
		}

		fromRow := 0
		if n.Parent != nil && n.Parent.HasValidSpan() {
			fromRow, _ = m.lines.RowCol(n.Parent.StartOffset)
		}
		if n.Prev != nil && n.Prev.HasValidSpan() {
			row, _ := m.lines.RowCol(n.Prev.EndOffset - 1)
			fromRow = row + 1
		}
		toRow := m.lines.Count() - 1
		if n.Next != nil && n.Next.HasValidSpan() {
			toRow, _ = m.lines.RowCol(n.Next.StartOffset)
			toRow--
		}

		for row := fromRow; row <= toRow && row < m.lines.Count(); row++ {
			if !isThematicBreakLine(m.lines.Line(row)) {
				continue
			}
			indent := m.lines.Indent(row)
			n.StartOffset = m.lines.LineStart(row) + indent
			n.EndOffset = m.lines.LineStart(row) + len(m.lines.Line(row))
			break
		}
		return nil
	})
}

// coverFromChildren widens a node's span to include every positioned child.
func coverFromChildren(n *mdast.Node) {
	for c := n.FirstChild; c != nil; c = c.Next {
		if !c.HasValidSpan() {
			continue
		}
		if !n.HasValidSpan() {
			n.StartOffset = c.StartOffset
			n.EndOffset = c.EndOffset
			continue
		}
		if c.StartOffset < n.StartOffset {
			n.StartOffset = c.StartOffset
		}
		if c.EndOffset > n.EndOffset {
			n.EndOffset = c.EndOffset
		}
	}
}

// inheritSpans gives any still-unpositioned node its parent's span so
// every node reports some location rather than none.
func inheritSpans(root *mdast.Node) {
	//nolint:errcheck // visitor never returns an error
	mdast.Walk(root, func(n *mdast.Node) error {
		if !n.HasValidSpan() && n.Parent != nil && n.Parent.HasValidSpan() {
			n.StartOffset = n.Parent.StartOffset
			n.EndOffset = n.Parent.EndOffset
		}
		return nil
	})
}

// fenceOnRow reports the fence character and length if the row opens
// or closes a fenced code block.
func fenceOnRow(lines *mdast.LineIndex, row int) (byte, int, bool) {
	line := lines.Line(row)
	if line == nil {
		return 0, 0, false
	}
	trimmed := strings.TrimLeft(string(line), " \t")
	if len(trimmed) < 3 {
		return 0, 0, false
	}
	ch := trimmed[0]
	if ch != '`' && ch != '~' {
		return 0, 0, false
	}
	length := 0
	for length < len(trimmed) && trimmed[length] == ch {
		length++
	}
	if length < 3 {
		return 0, 0, false
	}
	return ch, length, true
}

// isThematicBreakLine reports whether a line is a thematic break:
// three or more of the same marker (-, _, *), optionally interleaved
// with spaces, and nothing else.
func isThematicBreakLine(line []byte) bool {
	var marker byte
	count := 0
	for _, ch := range line {
		switch {
		case ch == ' ' || ch == '\t':
			continue
		case ch == '-' || ch == '_' || ch == '*':
			if marker == 0 {
				marker = ch
			}
			if ch != marker {
				return false
			}
			count++
		default:
			return false
		}
	}
	return count >= 3
}
