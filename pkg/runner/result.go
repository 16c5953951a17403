package runner

import (
	"github.com/yaklabco/mdstyle/pkg/config"
	"github.com/yaklabco/mdstyle/pkg/lint"
)

// FileOutcome pairs a checked file with its result or error.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Result contains the check result for this file.
	// Nil if the file could not be processed.
	Result *lint.FileResult

	// Err is set if the file could not be read or parsed.
	Err error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully processed.
	FilesProcessed int

	// FilesErrored is the number of files that could not be processed.
	FilesErrored int

	// FilesWithIssues is the number of files with at least one violation.
	FilesWithIssues int

	// ViolationsTotal is the total number of violations across all files.
	ViolationsTotal int

	// ViolationsBySeverity maps severity levels to counts.
	ViolationsBySeverity map[config.Severity]int

	// RuleFailures counts rules whose analyzers failed, summed across
	// files.
	RuleFailures int
}

// Result is the overall runner result. Files are ordered by path.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// HasFailures reports whether any error-severity violations occurred.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.ViolationsBySeverity[config.SeverityError] > 0
}

// HasIssues reports whether any violations were found.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.ViolationsTotal > 0
}

func newStats() Stats {
	return Stats{
		ViolationsBySeverity: make(map[config.Severity]int),
	}
}

// accumulate folds one file outcome into the aggregate result.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Err != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Result == nil {
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.RuleFailures += len(outcome.Result.RuleErrors)

	count := len(outcome.Result.Violations)
	r.Stats.ViolationsTotal += count
	if count > 0 {
		r.Stats.FilesWithIssues++
	}

	for i := range outcome.Result.Violations {
		sev := outcome.Result.Violations[i].Severity
		if sev == "" {
			sev = config.SeverityWarning
		}
		r.Stats.ViolationsBySeverity[sev]++
	}
}
