package mdast

// Document is an immutable view of one parsed Markdown document.
// It owns the raw content, the line index, and the tree root.
// Documents are single-use: one per file per analysis run.
type Document struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Content is the full document bytes.
	Content []byte

	// Lines is the byte-offset to row/column index over Content.
	Lines *LineIndex

	// Root is the tree root node (Document kind).
	Root *Node
}

// NewDocument creates a Document shell from content. It builds the
// line index but not the tree (that requires a parser).
func NewDocument(path string, content []byte) *Document {
	return &Document{
		Path:    path,
		Content: content,
		Lines:   NewLineIndex(content),
	}
}

// SetDoc sets the Doc back-reference on every node in the tree.
func SetDoc(root *Node, doc *Document) {
	if root == nil {
		return
	}
	root.Doc = doc
	for child := root.FirstChild; child != nil; child = child.Next {
		SetDoc(child, doc)
	}
}
