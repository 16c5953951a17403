package mdast

// Position is a 0-based location in a document. Character counts
// runes, not bytes. Front ends renumber to 1-based for display.
type Position struct {
	Line      int
	Character int
}

// Before returns true if p comes before other in document order.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Character < other.Character
}

// Span is a half-open position range with Start <= End in document order.
type Span struct {
	Start Position
	End   Position
}

// IsSingleLine returns true if start and end are on the same line.
func (s Span) IsSingleLine() bool {
	return s.Start.Line == s.End.Line
}

// Span returns the node's position range, derived from its byte span
// via the owning document's line index. Nodes without a document or a
// resolved byte span yield a zero span.
func (n *Node) Span() Span {
	if n.Doc == nil || n.Doc.Lines == nil || !n.HasValidSpan() {
		return Span{}
	}
	return Span{
		Start: n.Doc.Lines.Position(n.StartOffset),
		End:   n.Doc.Lines.Position(n.EndOffset),
	}
}

// StartRow returns the 0-based row of the node's first byte, or -1 if
// the span is unresolved.
func (n *Node) StartRow() int {
	if n.Doc == nil || !n.HasValidSpan() {
		return -1
	}
	row, _ := n.Doc.Lines.RowCol(n.StartOffset)
	return row
}

// EndRow returns the 0-based row of the node's last byte, or -1 if the
// span is unresolved. For empty spans this equals StartRow.
func (n *Node) EndRow() int {
	if n.Doc == nil || !n.HasValidSpan() {
		return -1
	}
	end := n.EndOffset
	if end > n.StartOffset {
		end--
	}
	row, _ := n.Doc.Lines.RowCol(end)
	return row
}

// Text returns the source bytes covered by the node's span.
// Returns nil if the node has no document or no resolved span.
func (n *Node) Text() []byte {
	if n.Doc == nil || !n.HasValidSpan() || n.EndOffset > len(n.Doc.Content) {
		return nil
	}
	return n.Doc.Content[n.StartOffset:n.EndOffset]
}
