package rules

import (
	"regexp"

	"github.com/yaklabco/mdstyle/pkg/config"
	"github.com/yaklabco/mdstyle/pkg/lint"
)

// reversedLinkPattern matches (text)[url], the inversion of Markdown
// link syntax.
var reversedLinkPattern = regexp.MustCompile(`\([^()]*\)\[[^\]]*\]`)

// NoReversedLinks (MD011) checks for reversed link syntax.
func NoReversedLinks() *lint.Descriptor {
	return &lint.Descriptor{
		ID:              "MD011",
		Alias:           "no-reversed-links",
		Description:     "Reversed link syntax",
		Tags:            []string{"links"},
		Class:           lint.ClassLine,
		DefaultSeverity: config.SeverityWarning,
		New: func(rc *lint.RuleContext) lint.Analyzer {
			return &noReversedLinks{rc: rc}
		},
	}
}

type noReversedLinks struct {
	lineScan
	rc *lint.RuleContext
}

func (a *noReversedLinks) Finalize() []lint.Violation {
	lines := a.rc.Doc.Lines
	var found []lint.Violation

	for row := 0; row < lines.Count(); row++ {
		if a.rc.IsLineExcluded(row) {
			continue
		}
		line := lines.Line(row)
		for _, loc := range reversedLinkPattern.FindAllIndex(line, -1) {
			v := a.rc.Violation(
				lint.LineRange(row, runeCol(lines, row, loc[0]), runeCol(lines, row, loc[1])),
				"Reversed link syntax")
			v.Detail = string(line[loc[0]:loc[1]])
			found = append(found, v)
		}
	}

	return found
}
