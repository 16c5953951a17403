package cli

import (
	"github.com/yaklabco/mdstyle/pkg/config"
	"github.com/yaklabco/mdstyle/pkg/runner"
)

// Exit codes for mdstyle.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitCheckErrors indicates the check completed but found
	// error-severity violations.
	ExitCheckErrors = 1

	// ExitCheckWarnings indicates the check completed but found
	// warnings (strict mode only).
	ExitCheckWarnings = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code based on result and
// strict mode. Files that could not be read count as errors.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	errors := result.Stats.ViolationsBySeverity[config.SeverityError]
	warnings := result.Stats.ViolationsBySeverity[config.SeverityWarning]

	if errors > 0 || result.Stats.FilesErrored > 0 {
		return ExitCheckErrors
	}
	if strict && warnings > 0 {
		return ExitCheckWarnings
	}
	return ExitSuccess
}
