package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mdstyle/pkg/config"
	"github.com/yaklabco/mdstyle/pkg/lint"
	"github.com/yaklabco/mdstyle/pkg/mdast"
)

// HRStyle (MD035) checks that horizontal rules are written the same way
// throughout the document. The style option is either "consistent" or a
// literal rule such as "---" or "* * *".
func HRStyle() *lint.Descriptor {
	return &lint.Descriptor{
		ID:              "MD035",
		Alias:           "hr-style",
		Description:     "Horizontal rule style should be consistent",
		Tags:            []string{"hr", "style"},
		Class:           lint.ClassToken,
		Kinds:           []mdast.NodeKind{mdast.NodeThematicBreak},
		DefaultSeverity: config.SeverityWarning,
		New: func(rc *lint.RuleContext) lint.Analyzer {
			return &hrStyle{
				rc:   rc,
				norm: rc.OptionString("style", styleConsistent),
			}
		},
	}
}

type hrStyle struct {
	rc    *lint.RuleContext
	norm  string
	found []lint.Violation
}

func (a *hrStyle) Feed(n *mdast.Node) {
	if n.Kind != mdast.NodeThematicBreak || !n.HasValidSpan() {
		return
	}

	row := n.StartRow()
	actual := strings.TrimSpace(string(n.Doc.Lines.Line(row)))
	if actual == "" {
		return
	}

	if a.norm == styleConsistent {
		a.norm = actual
		return
	}

	if actual != a.norm {
		v := a.rc.Violation(lint.LineRange(row, 0, lineRunes(n.Doc.Lines, row)),
			"Horizontal rule style should be consistent")
		v.Detail = fmt.Sprintf("Expected: %s; Actual: %s", a.norm, actual)
		a.found = append(a.found, v)
	}
}

func (a *hrStyle) Finalize() []lint.Violation {
	return a.found
}
