// Package goldmark provides a lint.Parser implementation using the
// goldmark library. It maps goldmark ASTs into mdast documents whose
// nodes carry byte spans into the raw source.
package goldmark

import (
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/mdstyle/pkg/mdast"
)

// Flavor identifies the Markdown flavor supported by the parser.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// Parser implements lint.Parser using goldmark.
type Parser struct {
	flavor string
	md     goldmark.Markdown
}

// New creates a new goldmark-based parser for the given flavor.
// Supported flavors are "commonmark" and "gfm".
// Invalid flavors default to "commonmark".
func New(flavor string) *Parser {
	f := flavorOrDefault(flavor)
	return &Parser{
		flavor: f,
		md:     newGoldmarkInstance(f),
	}
}

// Flavor returns the configured Markdown flavor.
func (p *Parser) Flavor() string {
	return p.flavor
}

// Parse converts raw Markdown bytes into a fully-positioned mdast.Document.
//
// The method:
//  1. Checks for context cancellation.
//  2. Builds a Document shell with path, content, and line index.
//  3. Parses content with goldmark.
//  4. Maps the goldmark AST to mdast nodes, deriving byte spans from
//     goldmark segments with source-scan fixups for markers and fences.
//  5. Sets Doc back-references throughout the tree.
//
// Returns nil and an error if parsing fails or the context is cancelled.
// A parse failure is fatal for the document only; callers keep going
// with other documents.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*mdast.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	doc := mdast.NewDocument(path, copyContent(content))

	reader := text.NewReader(doc.Content)
	gmRoot := p.md.Parser().Parse(reader, parser.WithContext(parser.NewContext()))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	m := newMapper(doc.Content, doc.Lines)
	doc.Root = m.mapTree(gmRoot)

	mdast.SetDoc(doc.Root, doc)

	return doc, nil
}

// flavorOrDefault returns the flavor if valid, otherwise CommonMark.
func flavorOrDefault(flavor string) string {
	switch flavor {
	case FlavorCommonMark, FlavorGFM:
		return flavor
	default:
		return FlavorCommonMark
	}
}

// newGoldmarkInstance creates a configured goldmark.Markdown instance.
//
//nolint:ireturn // goldmark.Markdown is an external interface type
func newGoldmarkInstance(flavor string) goldmark.Markdown {
	var opts []goldmark.Option

	switch flavor {
	case FlavorGFM:
		opts = append(opts,
			goldmark.WithExtensions(
				extension.GFM,
			),
		)
	case FlavorCommonMark:
		// No extensions for pure CommonMark.
	}

	return goldmark.New(opts...)
}

// copyContent creates a copy of the content slice to ensure immutability.
func copyContent(content []byte) []byte {
	if content == nil {
		return nil
	}
	cp := make([]byte, len(content))
	copy(cp, content)
	return cp
}
