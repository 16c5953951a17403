package rules

import (
	"bytes"
	"fmt"

	"github.com/yaklabco/mdstyle/pkg/config"
	"github.com/yaklabco/mdstyle/pkg/lint"
	"github.com/yaklabco/mdstyle/pkg/mdast"
)

// HeadingIncrement (MD001) checks that heading levels increment by one
// level at a time.
func HeadingIncrement() *lint.Descriptor {
	return &lint.Descriptor{
		ID:              "MD001",
		Alias:           "heading-increment",
		Description:     "Heading levels should only increment by one level at a time",
		Tags:            []string{"headings"},
		Class:           lint.ClassToken,
		Kinds:           []mdast.NodeKind{mdast.NodeHeading},
		DefaultSeverity: config.SeverityWarning,
		New: func(rc *lint.RuleContext) lint.Analyzer {
			return &headingIncrement{rc: rc}
		},
	}
}

type headingIncrement struct {
	rc        *lint.RuleContext
	prevLevel int
	found     []lint.Violation
}

func (a *headingIncrement) Feed(n *mdast.Node) {
	level := lint.HeadingLevel(n)
	if level == 0 {
		return
	}

	// The first heading can be any level.
	if a.prevLevel > 0 && level > a.prevLevel+1 {
		v := a.rc.Violation(headingRange(n), "Heading levels should only increment by one level at a time")
		v.Detail = fmt.Sprintf("Expected: h%d; Actual: h%d", a.prevLevel+1, level)
		a.found = append(a.found, v)
	}

	a.prevLevel = level
}

func (a *headingIncrement) Finalize() []lint.Violation {
	return a.found
}

// Heading styles recognized by MD003.
const (
	styleConsistent = "consistent"
	styleATX        = "atx"
	styleATXClosed  = "atx_closed"
	styleSetext     = "setext"
)

// HeadingStyle (MD003) checks that all headings use the same style.
func HeadingStyle() *lint.Descriptor {
	return &lint.Descriptor{
		ID:              "MD003",
		Alias:           "heading-style",
		Description:     "Heading style should be consistent",
		Tags:            []string{"headings", "style"},
		Class:           lint.ClassToken,
		Kinds:           []mdast.NodeKind{mdast.NodeHeading},
		DefaultSeverity: config.SeverityWarning,
		New: func(rc *lint.RuleContext) lint.Analyzer {
			return &headingStyle{
				rc:   rc,
				norm: rc.OptionString("style", styleConsistent),
			}
		},
	}
}

type headingStyle struct {
	rc    *lint.RuleContext
	norm  string // expected style; "consistent" until the first heading sets it
	found []lint.Violation
}

func (a *headingStyle) Feed(n *mdast.Node) {
	if n.Kind != mdast.NodeHeading || !n.HasValidSpan() {
		return
	}

	style := headingStyleOf(n)
	if style == "" {
		return
	}

	// Under "consistent", the first heading establishes the norm.
	if a.norm == styleConsistent {
		a.norm = style
		return
	}

	if style != a.norm {
		v := a.rc.Violation(headingRange(n), "Heading style should be consistent")
		v.Detail = fmt.Sprintf("Expected: %s; Actual: %s", a.norm, style)
		a.found = append(a.found, v)
	}
}

func (a *headingStyle) Finalize() []lint.Violation {
	return a.found
}

// headingStyleOf classifies a heading from its raw first line.
func headingStyleOf(n *mdast.Node) string {
	line := n.Doc.Lines.Line(n.StartRow())
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return ""
	}
	if trimmed[0] != '#' {
		return styleSetext
	}
	if trimmed[len(trimmed)-1] == '#' {
		return styleATXClosed
	}
	return styleATX
}

// NoMultipleSpaceATX (MD019) checks for multiple spaces after the hash
// marks of an ATX heading.
func NoMultipleSpaceATX() *lint.Descriptor {
	return &lint.Descriptor{
		ID:              "MD019",
		Alias:           "no-multiple-space-atx",
		Description:     "Multiple spaces after hash on ATX style heading",
		Tags:            []string{"headings", "whitespace"},
		Class:           lint.ClassToken,
		Kinds:           []mdast.NodeKind{mdast.NodeHeading},
		DefaultSeverity: config.SeverityWarning,
		New: func(rc *lint.RuleContext) lint.Analyzer {
			return &noMultipleSpaceATX{rc: rc}
		},
	}
}

type noMultipleSpaceATX struct {
	rc    *lint.RuleContext
	found []lint.Violation
}

func (a *noMultipleSpaceATX) Feed(n *mdast.Node) {
	if n.Kind != mdast.NodeHeading || !n.HasValidSpan() {
		return
	}

	row := n.StartRow()
	line := n.Doc.Lines.Line(row)
	trimmed := bytes.TrimLeft(line, " ")
	indent := len(line) - len(trimmed)
	if len(trimmed) == 0 || trimmed[0] != '#' {
		return
	}

	hashes := 0
	for hashes < len(trimmed) && trimmed[hashes] == '#' {
		hashes++
	}
	spaces := 0
	for hashes+spaces < len(trimmed) && trimmed[hashes+spaces] == ' ' {
		spaces++
	}
	if spaces > 1 && hashes+spaces < len(trimmed) {
		start := indent + hashes
		v := a.rc.Violation(lint.LineRange(row, start, start+spaces),
			"Multiple spaces after hash on ATX style heading")
		a.found = append(a.found, v)
	}
}

func (a *noMultipleSpaceATX) Finalize() []lint.Violation {
	return a.found
}

// headingRange covers the heading's first line from its start column to
// the end of its span on that line.
func headingRange(n *mdast.Node) lint.Range {
	start := n.Doc.Lines.Position(n.StartOffset)
	end := n.Doc.Lines.Position(n.EndOffset)
	if end.Line > start.Line {
		// Setext headings span two rows; report the text row only.
		return lint.LineRange(start.Line, start.Character, lineRunes(n.Doc.Lines, start.Line))
	}
	return lint.Range{Start: start, End: end}
}
