package lint

import (
	"context"

	"github.com/yaklabco/mdstyle/pkg/mdast"
)

// Parser parses Markdown content into a Document.
//
// The lint package defines this interface as the consumer; implementations
// (e.g., parser/goldmark) provide the concrete parsing logic.
//
// Implementations must be:
//   - deterministic for a given (path, content) pair,
//   - safe for concurrent use by multiple goroutines,
//   - side-effect free (no I/O, no global state mutation).
type Parser interface {
	// Parse converts raw Markdown bytes into a positioned Document.
	//
	// The returned Document must satisfy:
	//   - doc.Path == path
	//   - bytes.Equal(doc.Content, content)
	//   - doc.Root != nil && doc.Root.Kind == mdast.NodeDocument
	//   - doc.Lines has at least one row, even for empty content
	Parse(ctx context.Context, path string, content []byte) (*mdast.Document, error)
}
