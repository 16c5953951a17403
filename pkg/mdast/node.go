// Package mdast provides the Markdown document tree for mdstyle.
// It defines an immutable view of one parsed document:
// - Document: raw content, line index, and tree root
// - Node: structural representation with byte spans
// - LineIndex: byte-offset to row/column mapping
package mdast

// NodeKind classifies the type of a tree node.
type NodeKind uint16

// Node kinds for block-level and inline-level Markdown elements.
const (
	NodeDocument NodeKind = iota

	// Block-level nodes.
	NodeParagraph
	NodeHeading
	NodeList
	NodeListItem
	NodeBlockquote
	NodeCodeBlock
	NodeThematicBreak
	NodeHTMLBlock

	// Inline-level nodes.
	NodeText
	NodeEmphasis
	NodeStrong
	NodeCodeSpan
	NodeLink
	NodeImage
	NodeHTMLInline

	// Fallback for unrecognized content.
	NodeRaw

	// kindCount is the number of node kinds. Keep last.
	kindCount
)

// KindCount returns the number of distinct node kinds.
func KindCount() int {
	return int(kindCount)
}

// String returns the lowercase tag name for the kind (e.g. "heading").
func (k NodeKind) String() string {
	switch k {
	case NodeDocument:
		return "document"
	case NodeParagraph:
		return "paragraph"
	case NodeHeading:
		return "heading"
	case NodeList:
		return "list"
	case NodeListItem:
		return "list_item"
	case NodeBlockquote:
		return "blockquote"
	case NodeCodeBlock:
		return "code_block"
	case NodeThematicBreak:
		return "thematic_break"
	case NodeHTMLBlock:
		return "html_block"
	case NodeText:
		return "text"
	case NodeEmphasis:
		return "emphasis"
	case NodeStrong:
		return "strong"
	case NodeCodeSpan:
		return "code_span"
	case NodeLink:
		return "link"
	case NodeImage:
		return "image"
	case NodeHTMLInline:
		return "html_inline"
	case NodeRaw:
		return "raw"
	default:
		return "unknown"
	}
}

// Node represents a single node in the document tree.
// Nodes form a tree structure with parent/child/sibling relationships
// and carry a byte span into the owning document's content.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Tree structure pointers.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node

	// Byte span into Doc.Content. StartOffset <= EndOffset.
	// Both are -1 for nodes whose span could not be derived.
	StartOffset int
	EndOffset   int

	// Doc is a back-reference to the containing Document.
	Doc *Document

	// Block holds attributes for block-level nodes.
	Block *BlockAttrs

	// Inline holds attributes for inline-level nodes.
	Inline *InlineAttrs
}

// NewNode creates a node of the given kind with an unset span.
func NewNode(kind NodeKind) *Node {
	return &Node{Kind: kind, StartOffset: -1, EndOffset: -1}
}

// AppendChild adds child as the last child of n.
func (n *Node) AppendChild(child *Node) {
	child.Parent = n
	if n.LastChild == nil {
		n.FirstChild = child
		n.LastChild = child
		return
	}
	child.Prev = n.LastChild
	n.LastChild.Next = child
	n.LastChild = child
}

// HasValidSpan returns true if the node's byte span has been resolved.
func (n *Node) HasValidSpan() bool {
	return n.StartOffset >= 0 && n.EndOffset >= n.StartOffset
}

// IsBlock returns true if this is a block-level node.
func (n *Node) IsBlock() bool {
	switch n.Kind {
	case NodeDocument, NodeParagraph, NodeHeading, NodeList, NodeListItem,
		NodeBlockquote, NodeCodeBlock, NodeThematicBreak, NodeHTMLBlock:
		return true
	default:
		return false
	}
}

// IsInline returns true if this is an inline-level node.
func (n *Node) IsInline() bool {
	switch n.Kind {
	case NodeText, NodeEmphasis, NodeStrong, NodeCodeSpan, NodeLink,
		NodeImage, NodeHTMLInline:
		return true
	default:
		return false
	}
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// Children returns a slice of all direct children.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
	}
	return children
}

// Ancestor returns the nearest ancestor of the given kind, or nil.
// It is the parent-lookup operation used by rules that test ancestry,
// e.g. "is this node inside a code span".
func (n *Node) Ancestor(kind NodeKind) *Node {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Kind == kind {
			return p
		}
	}
	return nil
}
