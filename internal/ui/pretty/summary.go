package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mdstyle/pkg/config"
	"github.com/yaklabco/mdstyle/pkg/runner"
)

// FormatSummaryOneLine renders a single-line run summary.
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.ViolationsTotal == 0 && stats.FilesErrored == 0 {
		return s.Success.Render("✓") + fmt.Sprintf(" %s checked, no issues found\n",
			pluralize(stats.FilesProcessed, "file"))
	}

	var parts []string
	if errors := stats.ViolationsBySeverity[config.SeverityError]; errors > 0 {
		parts = append(parts, s.Error.Render(pluralize(errors, "error")))
	}
	if warnings := stats.ViolationsBySeverity[config.SeverityWarning]; warnings > 0 {
		parts = append(parts, s.Warning.Render(pluralize(warnings, "warning")))
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(
			fmt.Sprintf("%s could not be checked", pluralize(stats.FilesErrored, "file"))))
	}

	return s.Failure.Render("✖") + fmt.Sprintf(" %s (%s) in %s\n",
		pluralize(stats.ViolationsTotal, "issue"),
		strings.Join(parts, ", "),
		pluralize(stats.FilesProcessed, "file"))
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
