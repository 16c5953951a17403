package pretty

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/yaklabco/mdstyle/pkg/config"
	"github.com/yaklabco/mdstyle/pkg/lint"
)

// FormatViolation formats a single violation for terminal output.
// Violations carry 0-based positions; display is 1-based.
func (s *Styles) FormatViolation(
	v *lint.Violation,
	showContext bool,
	sourceLine string,
	ruleFormat config.RuleFormat,
) string {
	var builder strings.Builder

	location := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(v.FilePath),
		v.Range.Start.Line+1,
		v.Range.Start.Character+1,
	)

	severity := s.FormatSeverity(v.Severity)

	ruleIdentifier := config.FormatRuleID(ruleFormat, v.RuleID, v.RuleName)
	ruleDisplay := s.RuleID.Render("(" + ruleIdentifier + ")")

	// Main line: location  severity  message  (rule-id)
	builder.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
		location,
		severity,
		s.Message.Render(v.Message),
		ruleDisplay,
	))

	if showContext && sourceLine != "" {
		builder.WriteString(s.FormatSourceContext(sourceLine, v.Range.Start.Character))
	}

	if v.Detail != "" {
		builder.WriteString("    " + s.Dim.Render("Detail:") + " " +
			s.Detail.Render(v.Detail) + "\n")
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	default:
		return string(sev)
	}
}

// FormatSourceContext formats the source line with a caret under the
// violation column. Padding is computed from the display width of the
// preceding text so the caret lines up under wide characters too.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	const indent = "        "

	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	runes := []rune(line)
	if column > len(runes) {
		column = len(runes)
	}
	width := runewidth.StringWidth(string(runes[:column]))
	builder.WriteString(indent + strings.Repeat(" ", width) + s.Caret.Render("^") + "\n")

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	if issueCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d issues)", issueCount))
	}
	return header
}
