package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mdstyle/pkg/config"
	"github.com/yaklabco/mdstyle/pkg/lint"
	"github.com/yaklabco/mdstyle/pkg/mdast"
)

// NoDuplicateHeading (MD024) checks for multiple headings with the same
// text content. With the siblings_only option, duplicates are only
// flagged among headings under the same parent section.
func NoDuplicateHeading() *lint.Descriptor {
	return &lint.Descriptor{
		ID:              "MD024",
		Alias:           "no-duplicate-heading",
		Description:     "Multiple headings with the same content",
		Tags:            []string{"headings"},
		Class:           lint.ClassDocument,
		Kinds:           []mdast.NodeKind{mdast.NodeHeading},
		DefaultSeverity: config.SeverityWarning,
		New: func(rc *lint.RuleContext) lint.Analyzer {
			return &noDuplicateHeading{
				rc:           rc,
				siblingsOnly: rc.OptionBool("siblings_only", false),
				seen:         make(map[string]int),
			}
		},
	}
}

type noDuplicateHeading struct {
	rc           *lint.RuleContext
	siblingsOnly bool
	seen         map[string]int // normalized key -> first row
	path         []string       // heading text per level, for sibling scoping
	found        []lint.Violation
}

func (a *noDuplicateHeading) Feed(n *mdast.Node) {
	if n.Kind != mdast.NodeHeading || !n.HasValidSpan() {
		return
	}

	text := strings.ToLower(lint.HeadingText(n))
	if text == "" {
		return
	}

	key := text
	if a.siblingsOnly {
		level := lint.HeadingLevel(n)
		if level >= 1 {
			if level-1 <= len(a.path) {
				a.path = a.path[:level-1]
			}
			key = strings.Join(a.path, ">") + "|" + text
			a.path = append(a.path, text)
		}
	}

	if firstRow, ok := a.seen[key]; ok {
		v := a.rc.Violation(headingRange(n), "Multiple headings with the same content")
		v.Detail = fmt.Sprintf("First seen on line %d", firstRow+1)
		a.found = append(a.found, v)
		return
	}
	a.seen[key] = n.StartRow()
}

func (a *noDuplicateHeading) Finalize() []lint.Violation {
	return a.found
}

// SingleH1 (MD025) checks that the document has at most one top-level
// heading.
func SingleH1() *lint.Descriptor {
	return &lint.Descriptor{
		ID:              "MD025",
		Alias:           "single-h1",
		Description:     "Multiple top-level headings in the same document",
		Tags:            []string{"headings"},
		Class:           lint.ClassDocument,
		Kinds:           []mdast.NodeKind{mdast.NodeHeading},
		DefaultSeverity: config.SeverityWarning,
		New: func(rc *lint.RuleContext) lint.Analyzer {
			return &singleH1{
				rc:    rc,
				level: rc.OptionInt("level", 1),
			}
		},
	}
}

type singleH1 struct {
	rc    *lint.RuleContext
	level int
	count int
	found []lint.Violation
}

func (a *singleH1) Feed(n *mdast.Node) {
	if lint.HeadingLevel(n) != a.level || !n.HasValidSpan() {
		return
	}

	a.count++
	if a.count > 1 {
		v := a.rc.Violation(headingRange(n),
			"Multiple top-level headings in the same document")
		a.found = append(a.found, v)
	}
}

func (a *singleH1) Finalize() []lint.Violation {
	return a.found
}

// FirstLineHeading (MD041) checks that the first content line of the
// document is a top-level heading.
func FirstLineHeading() *lint.Descriptor {
	return &lint.Descriptor{
		ID:              "MD041",
		Alias:           "first-line-heading",
		Description:     "First line in a file should be a top-level heading",
		Tags:            []string{"headings"},
		Class:           lint.ClassHybrid,
		Kinds:           []mdast.NodeKind{mdast.NodeHeading},
		DefaultSeverity: config.SeverityWarning,
		New: func(rc *lint.RuleContext) lint.Analyzer {
			return &firstLineHeading{
				rc:    rc,
				level: rc.OptionInt("level", 1),
			}
		},
	}
}

type firstLineHeading struct {
	rc    *lint.RuleContext
	level int
	first *mdast.Node // first heading fed, if any
}

func (a *firstLineHeading) Feed(n *mdast.Node) {
	if n.Kind != mdast.NodeHeading {
		return
	}
	if a.first == nil && n.HasValidSpan() {
		a.first = n
	}
}

func (a *firstLineHeading) Finalize() []lint.Violation {
	lines := a.rc.Doc.Lines

	// Find the first row with content.
	contentRow := -1
	for row := 0; row < lines.Count(); row++ {
		if !isBlankLine(lines, row) {
			contentRow = row
			break
		}
	}
	if contentRow == -1 {
		// Empty or whitespace-only document.
		return nil
	}

	if a.first != nil &&
		a.first.StartRow() == contentRow &&
		lint.HeadingLevel(a.first) == a.level {
		return nil
	}

	v := a.rc.Violation(lint.LineRange(contentRow, 0, lineRunes(lines, contentRow)),
		"First line in a file should be a top-level heading")
	v.Detail = fmt.Sprintf("Expected: h%d", a.level)
	return []lint.Violation{v}
}
