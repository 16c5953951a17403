package lint

import (
	"strings"

	"github.com/yaklabco/mdstyle/pkg/mdast"
)

// Node accessor helpers shared by the rule catalog.

// HeadingLevel returns the heading level for a heading node, or 0 if not
// a heading.
func HeadingLevel(n *mdast.Node) int {
	if n == nil || n.Kind != mdast.NodeHeading || n.Block == nil {
		return 0
	}
	return n.Block.HeadingLevel
}

// HeadingText returns the rendered text content of a heading, with ATX
// markers and surrounding whitespace stripped.
func HeadingText(n *mdast.Node) string {
	if n == nil || n.Kind != mdast.NodeHeading {
		return ""
	}
	var sb strings.Builder
	//nolint:errcheck // visitor never fails
	mdast.Walk(n, func(child *mdast.Node) error {
		if child.Inline != nil && len(child.Inline.Text) > 0 {
			sb.Write(child.Inline.Text)
		}
		return nil
	})
	return strings.TrimSpace(sb.String())
}

// IsOrderedList returns true if the node is an ordered list.
func IsOrderedList(n *mdast.Node) bool {
	if n == nil || n.Kind != mdast.NodeList || n.Block == nil || n.Block.List == nil {
		return false
	}
	return n.Block.List.Ordered
}

// ListMarker returns the bullet or delimiter byte for a list node, or 0.
func ListMarker(n *mdast.Node) byte {
	if n == nil || n.Kind != mdast.NodeList || n.Block == nil || n.Block.List == nil {
		return 0
	}
	return n.Block.List.Marker
}

// CodeBlockAttrs returns the code block attributes, or nil.
func CodeBlockAttrs(n *mdast.Node) *mdast.CodeBlockAttrs {
	if n == nil || n.Kind != mdast.NodeCodeBlock || n.Block == nil {
		return nil
	}
	return n.Block.CodeBlock
}

// EmphasisMarker returns the marker byte ('*' or '_') for an emphasis or
// strong node, or 0 when unknown.
func EmphasisMarker(n *mdast.Node) byte {
	if n == nil || n.Inline == nil {
		return 0
	}
	return n.Inline.Marker
}
