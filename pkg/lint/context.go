package lint

import (
	"github.com/yaklabco/mdstyle/pkg/config"
	"github.com/yaklabco/mdstyle/pkg/mdast"
)

// LineSpan is an inclusive range of 0-based rows covered by a node.
type LineSpan struct {
	Start int
	End   int
}

// Contains reports whether row falls inside the span.
func (s LineSpan) Contains(row int) bool {
	return row >= s.Start && row <= s.End
}

// Context is the per-file state shared by every analyzer working on a
// document. It owns the parsed document and a lazy index of node line
// spans by kind.
//
// Context is not safe for concurrent use. File-level parallelism is safe
// because each file gets its own Context.
type Context struct {
	// Doc is the parsed document.
	Doc *mdast.Document

	// Config is the resolved configuration.
	Config *config.Config

	// spans caches node line spans by kind. Built lazily: the first miss
	// walks the tree once and populates every kind, so no later lookup
	// walks again.
	spans map[mdast.NodeKind][]LineSpan

	// indexWalks counts span cache builds. Tests assert it stays at one.
	indexWalks int
}

// NewContext creates a Context for the given document and configuration.
func NewContext(doc *mdast.Document, cfg *config.Config) *Context {
	return &Context{Doc: doc, Config: cfg}
}

// SpansFor returns the line spans of all nodes of the given kind, in
// document order. The slice is shared; callers must not mutate it.
func (c *Context) SpansFor(kind mdast.NodeKind) []LineSpan {
	if c.spans == nil {
		c.buildSpanIndex()
	}
	return c.spans[kind]
}

// buildSpanIndex walks the tree once and records line spans for every
// node kind encountered.
func (c *Context) buildSpanIndex() {
	c.spans = make(map[mdast.NodeKind][]LineSpan)
	c.indexWalks++

	if c.Doc == nil || c.Doc.Root == nil {
		return
	}

	//nolint:errcheck // visitor never fails
	mdast.Walk(c.Doc.Root, func(n *mdast.Node) error {
		if !n.HasValidSpan() {
			return nil
		}
		c.spans[n.Kind] = append(c.spans[n.Kind], LineSpan{
			Start: n.StartRow(),
			End:   n.EndRow(),
		})
		return nil
	})
}

// IsLineInSpans reports whether row falls inside any span of the given
// kind.
func (c *Context) IsLineInSpans(row int, kind mdast.NodeKind) bool {
	for _, s := range c.SpansFor(kind) {
		if s.Contains(row) {
			return true
		}
	}
	return false
}

// IsLineInCode reports whether row is part of a code block (fenced or
// indented). Line-scanning rules use this to skip code content.
func (c *Context) IsLineInCode(row int) bool {
	return c.IsLineInSpans(row, mdast.NodeCodeBlock)
}

// IsLineExcluded reports whether row is part of a code block or an HTML
// block. Rules that scan raw text for Markdown syntax use this so that
// literal content is never flagged.
func (c *Context) IsLineExcluded(row int) bool {
	return c.IsLineInCode(row) || c.IsLineInSpans(row, mdast.NodeHTMLBlock)
}

// IndexWalks returns how many times the span index has been built.
func (c *Context) IndexWalks() int {
	return c.indexWalks
}
