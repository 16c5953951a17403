package rules

import (
	"fmt"

	"github.com/yaklabco/mdstyle/pkg/config"
	"github.com/yaklabco/mdstyle/pkg/lint"
	"github.com/yaklabco/mdstyle/pkg/mdast"
)

// LineLength (MD013) checks that lines do not exceed the configured
// maximum length, measured in runes. Code blocks and headings can be
// exempted via the code_blocks and headings options.
func LineLength() *lint.Descriptor {
	return &lint.Descriptor{
		ID:              "MD013",
		Alias:           "line-length",
		Description:     "Line length",
		Tags:            []string{"line_length"},
		Class:           lint.ClassLine,
		DefaultSeverity: config.SeverityWarning,
		New: func(rc *lint.RuleContext) lint.Analyzer {
			return &lineLength{
				rc:         rc,
				limit:      rc.OptionInt("line_length", 80),
				codeBlocks: rc.OptionBool("code_blocks", true),
				headings:   rc.OptionBool("headings", true),
			}
		},
	}
}

type lineLength struct {
	lineScan
	rc         *lint.RuleContext
	limit      int
	codeBlocks bool
	headings   bool
}

func (a *lineLength) Finalize() []lint.Violation {
	lines := a.rc.Doc.Lines
	var found []lint.Violation

	for row := 0; row < lines.Count(); row++ {
		length := lineRunes(lines, row)
		if length <= a.limit {
			continue
		}
		if !a.codeBlocks && a.rc.IsLineInCode(row) {
			continue
		}
		if !a.headings && a.rc.IsLineInSpans(row, mdast.NodeHeading) {
			continue
		}

		v := a.rc.Violation(lint.LineRange(row, a.limit, length), "Line length")
		v.Detail = fmt.Sprintf("Expected: %d; Actual: %d", a.limit, length)
		found = append(found, v)
	}

	return found
}
