package rules

import (
	"fmt"

	"github.com/yaklabco/mdstyle/pkg/config"
	"github.com/yaklabco/mdstyle/pkg/lint"
	"github.com/yaklabco/mdstyle/pkg/mdast"
)

// Unordered list marker styles recognized by MD004.
const (
	ulStyleAsterisk = "asterisk"
	ulStylePlus     = "plus"
	ulStyleDash     = "dash"
)

func ulStyleOf(marker byte) string {
	switch marker {
	case '*':
		return ulStyleAsterisk
	case '+':
		return ulStylePlus
	case '-':
		return ulStyleDash
	default:
		return ""
	}
}

// ULStyle (MD004) checks that unordered list markers are consistent
// across the document.
func ULStyle() *lint.Descriptor {
	return &lint.Descriptor{
		ID:              "MD004",
		Alias:           "ul-style",
		Description:     "Unordered list style should be consistent",
		Tags:            []string{"lists", "style"},
		Class:           lint.ClassToken,
		Kinds:           []mdast.NodeKind{mdast.NodeList},
		DefaultSeverity: config.SeverityWarning,
		New: func(rc *lint.RuleContext) lint.Analyzer {
			return &ulStyle{
				rc:   rc,
				norm: rc.OptionString("style", styleConsistent),
			}
		},
	}
}

type ulStyle struct {
	rc    *lint.RuleContext
	norm  string
	found []lint.Violation
}

func (a *ulStyle) Feed(n *mdast.Node) {
	if lint.IsOrderedList(n) || !n.HasValidSpan() {
		return
	}

	style := ulStyleOf(lint.ListMarker(n))
	if style == "" {
		return
	}

	if a.norm == styleConsistent {
		a.norm = style
		return
	}

	if style != a.norm {
		row := n.StartRow()
		col := runeCol(n.Doc.Lines, row, n.Doc.Lines.Indent(row))
		v := a.rc.Violation(lint.LineRange(row, col, col+1),
			"Unordered list style should be consistent")
		v.Detail = fmt.Sprintf("Expected: %s; Actual: %s", a.norm, style)
		a.found = append(a.found, v)
	}
}

func (a *ulStyle) Finalize() []lint.Violation {
	return a.found
}

// ListIndent (MD005) checks that sibling list items share the same
// indentation.
func ListIndent() *lint.Descriptor {
	return &lint.Descriptor{
		ID:              "MD005",
		Alias:           "list-indent",
		Description:     "Inconsistent indentation for list items at the same level",
		Tags:            []string{"lists", "indentation"},
		Class:           lint.ClassToken,
		Kinds:           []mdast.NodeKind{mdast.NodeList},
		DefaultSeverity: config.SeverityWarning,
		New: func(rc *lint.RuleContext) lint.Analyzer {
			return &listIndent{rc: rc}
		},
	}
}

type listIndent struct {
	rc    *lint.RuleContext
	found []lint.Violation
}

func (a *listIndent) Feed(n *mdast.Node) {
	if n.Kind != mdast.NodeList {
		return
	}
	lines := n.Doc.Lines
	expected := -1

	for _, item := range n.Children() {
		if item.Kind != mdast.NodeListItem || !item.HasValidSpan() {
			continue
		}
		pos := lines.Position(item.StartOffset)

		// The first item fixes the indentation for its siblings.
		if expected == -1 {
			expected = pos.Character
			continue
		}

		if pos.Character != expected {
			v := a.rc.Violation(lint.LineRange(pos.Line, 0, pos.Character+1),
				"Inconsistent indentation for list items at the same level")
			v.Detail = fmt.Sprintf("Expected: %d; Actual: %d", expected, pos.Character)
			a.found = append(a.found, v)
		}
	}
}

func (a *listIndent) Finalize() []lint.Violation {
	return a.found
}

// Ordered list numbering styles recognized by MD029.
const (
	olStyleOne          = "one"
	olStyleOrdered      = "ordered"
	olStyleOneOrOrdered = "one_or_ordered"
	olStyleZero         = "zero"
)

// OLPrefix (MD029) checks ordered list item numbering.
func OLPrefix() *lint.Descriptor {
	return &lint.Descriptor{
		ID:              "MD029",
		Alias:           "ol-prefix",
		Description:     "Ordered list item prefix",
		Tags:            []string{"lists"},
		Class:           lint.ClassToken,
		Kinds:           []mdast.NodeKind{mdast.NodeList},
		DefaultSeverity: config.SeverityWarning,
		New: func(rc *lint.RuleContext) lint.Analyzer {
			return &olPrefix{
				rc:    rc,
				style: rc.OptionString("style", olStyleOneOrOrdered),
			}
		},
	}
}

type olPrefix struct {
	rc    *lint.RuleContext
	style string
	found []lint.Violation
}

func (a *olPrefix) Feed(n *mdast.Node) {
	if !lint.IsOrderedList(n) || !n.HasValidSpan() {
		return
	}

	lines := n.Doc.Lines
	var numbers []int
	var items []*mdast.Node
	for _, item := range n.Children() {
		if item.Kind != mdast.NodeListItem || !item.HasValidSpan() {
			continue
		}
		num, ok := itemNumber(lines, item)
		if !ok {
			continue
		}
		numbers = append(numbers, num)
		items = append(items, item)
	}
	if len(numbers) == 0 {
		return
	}

	style := a.style
	if style == olStyleOneOrOrdered {
		// Decide per list: a second item of 2 means ordered, else one.
		style = olStyleOne
		if len(numbers) > 1 && numbers[1] == numbers[0]+1 {
			style = olStyleOrdered
		}
	}

	for i, num := range numbers {
		expected := 0
		switch style {
		case olStyleOne:
			expected = 1
		case olStyleOrdered:
			expected = numbers[0] + i
		case olStyleZero:
			expected = 0
		default:
			return
		}
		if num != expected {
			pos := lines.Position(items[i].StartOffset)
			v := a.rc.Violation(lint.LineRange(pos.Line, pos.Character, pos.Character+digits(num)),
				"Ordered list item prefix")
			v.Detail = fmt.Sprintf("Expected: %d; Actual: %d; Style: %s", expected, num, style)
			a.found = append(a.found, v)
		}
	}
}

func (a *olPrefix) Finalize() []lint.Violation {
	return a.found
}

// itemNumber parses the number prefix of an ordered list item from the
// raw source at the item's start.
func itemNumber(lines *mdast.LineIndex, item *mdast.Node) (int, bool) {
	row, col := lines.RowCol(item.StartOffset)
	line := lines.Line(row)
	num, seen := 0, false
	for i := col; i < len(line); i++ {
		ch := line[i]
		if ch < '0' || ch > '9' {
			break
		}
		num = num*10 + int(ch-'0')
		seen = true
	}
	return num, seen
}

func digits(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}
