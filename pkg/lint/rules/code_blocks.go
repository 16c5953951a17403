package rules

import (
	"fmt"

	"github.com/yaklabco/mdstyle/pkg/config"
	"github.com/yaklabco/mdstyle/pkg/langdetect"
	"github.com/yaklabco/mdstyle/pkg/lint"
	"github.com/yaklabco/mdstyle/pkg/mdast"
)

// FencedCodeLanguage (MD040) checks that fenced code blocks declare a
// language. When the content is recognizable, the violation suggests
// one.
func FencedCodeLanguage() *lint.Descriptor {
	return &lint.Descriptor{
		ID:              "MD040",
		Alias:           "fenced-code-language",
		Description:     "Fenced code blocks should have a language specified",
		Tags:            []string{"code", "language"},
		Class:           lint.ClassToken,
		Kinds:           []mdast.NodeKind{mdast.NodeCodeBlock},
		DefaultSeverity: config.SeverityWarning,
		New: func(rc *lint.RuleContext) lint.Analyzer {
			return &fencedCodeLanguage{rc: rc}
		},
	}
}

type fencedCodeLanguage struct {
	rc    *lint.RuleContext
	found []lint.Violation
}

func (a *fencedCodeLanguage) Feed(n *mdast.Node) {
	attrs := lint.CodeBlockAttrs(n)
	if attrs == nil || attrs.Indented || attrs.Info != "" || !n.HasValidSpan() {
		return
	}

	row := n.StartRow()
	v := a.rc.Violation(lint.LineRange(row, 0, lineRunes(n.Doc.Lines, row)),
		"Fenced code blocks should have a language specified")
	if lang := langdetect.Suggest(fenceContent(n)); lang != "" {
		v.Detail = fmt.Sprintf("Suggested: %s", lang)
	}
	a.found = append(a.found, v)
}

func (a *fencedCodeLanguage) Finalize() []lint.Violation {
	return a.found
}

// fenceContent returns the code between the fences, excluding the fence
// rows themselves.
func fenceContent(n *mdast.Node) []byte {
	lines := n.Doc.Lines
	first, last := n.StartRow()+1, n.EndRow()-1
	if first > last {
		return nil
	}
	start := lines.LineStart(first)
	end := lines.LineStart(last) + len(lines.Line(last))
	return n.Doc.Content[start:end]
}

// Code fence styles recognized by MD048.
const (
	fenceStyleBacktick = "backtick"
	fenceStyleTilde    = "tilde"
)

// CodeFenceStyle (MD048) checks that code fences use the same character
// throughout the document.
func CodeFenceStyle() *lint.Descriptor {
	return &lint.Descriptor{
		ID:              "MD048",
		Alias:           "code-fence-style",
		Description:     "Code fence style should be consistent",
		Tags:            []string{"code", "style"},
		Class:           lint.ClassToken,
		Kinds:           []mdast.NodeKind{mdast.NodeCodeBlock},
		DefaultSeverity: config.SeverityWarning,
		New: func(rc *lint.RuleContext) lint.Analyzer {
			return &codeFenceStyle{
				rc:   rc,
				norm: rc.OptionString("style", styleConsistent),
			}
		},
	}
}

type codeFenceStyle struct {
	rc    *lint.RuleContext
	norm  string
	found []lint.Violation
}

func (a *codeFenceStyle) Feed(n *mdast.Node) {
	attrs := lint.CodeBlockAttrs(n)
	if attrs == nil || attrs.Indented || !n.HasValidSpan() {
		return
	}

	style := fenceStyleBacktick
	if attrs.FenceChar == '~' {
		style = fenceStyleTilde
	}

	if a.norm == styleConsistent {
		a.norm = style
		return
	}

	if style != a.norm {
		row := n.StartRow()
		v := a.rc.Violation(lint.LineRange(row, 0, attrs.FenceLength),
			"Code fence style should be consistent")
		v.Detail = fmt.Sprintf("Expected: %s; Actual: %s", a.norm, style)
		a.found = append(a.found, v)
	}
}

func (a *codeFenceStyle) Finalize() []lint.Violation {
	return a.found
}
