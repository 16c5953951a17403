package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/mdstyle/pkg/config"
	"github.com/yaklabco/mdstyle/pkg/runner"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path       string          `json:"path"`
	Violations []JSONViolation `json:"violations"`
	RuleErrors []JSONRuleError `json:"ruleErrors,omitempty"`
	Error      string          `json:"error,omitempty"`
}

// JSONViolation represents a single violation. Lines and columns are
// 1-based, matching the text output.
type JSONViolation struct {
	RuleID      string `json:"ruleId"`
	RuleName    string `json:"ruleName"`
	Severity    string `json:"severity"`
	Message     string `json:"message"`
	Detail      string `json:"detail,omitempty"`
	StartLine   int    `json:"startLine"`
	StartColumn int    `json:"startColumn"`
	EndLine     int    `json:"endLine"`
	EndColumn   int    `json:"endColumn"`
}

// JSONRuleError records a rule whose analyzer failed on a file.
type JSONRuleError struct {
	RuleID string `json:"ruleId"`
	Error  string `json:"error"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked    int            `json:"filesChecked"`
	FilesWithIssues int            `json:"filesWithIssues"`
	FilesErrored    int            `json:"filesErrored"`
	TotalIssues     int            `json:"totalIssues"`
	BySeverity      map[string]int `json:"bySeverity"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalIssues, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{
			BySeverity: make(map[string]int),
		},
	}
	if result == nil {
		return output
	}

	if len(result.Files) > 0 {
		output.Files = make([]JSONFileResult, 0, len(result.Files))
	}

	for i := range result.Files {
		file := &result.Files[i]

		fileResult := JSONFileResult{
			Path:       displayPath(file.Path, r.opts.WorkingDir),
			Violations: make([]JSONViolation, 0),
		}

		if file.Err != nil {
			fileResult.Error = file.Err.Error()
			output.Summary.FilesErrored++
		}

		if file.Result != nil {
			for j := range file.Result.Violations {
				v := &file.Result.Violations[j]
				fileResult.Violations = append(fileResult.Violations, JSONViolation{
					RuleID:      v.RuleID,
					RuleName:    v.RuleName,
					Severity:    string(v.Severity),
					Message:     v.Message,
					Detail:      v.Detail,
					StartLine:   v.Range.Start.Line + 1,
					StartColumn: v.Range.Start.Character + 1,
					EndLine:     v.Range.End.Line + 1,
					EndColumn:   v.Range.End.Character + 1,
				})
				output.Summary.TotalIssues++

				severity := string(v.Severity)
				if severity == "" {
					severity = string(config.SeverityWarning)
				}
				output.Summary.BySeverity[severity]++
			}

			for _, re := range sortedRuleErrors(file.Result.RuleErrors) {
				fileResult.RuleErrors = append(fileResult.RuleErrors, JSONRuleError{
					RuleID: re.id,
					Error:  re.err.Error(),
				})
			}
		}

		if len(fileResult.Violations) > 0 {
			output.Summary.FilesWithIssues++
		}

		output.Files = append(output.Files, fileResult)
		output.Summary.FilesChecked++
	}

	return output
}
