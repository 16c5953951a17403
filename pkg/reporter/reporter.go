// Package reporter formats and writes check results.
package reporter

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/yaklabco/mdstyle/pkg/config"
	"github.com/yaklabco/mdstyle/pkg/runner"
)

// Reporter formats and writes check results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of violations reported and any write errors.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = config.FormatText
	}

	switch format {
	case config.FormatJSON:
		return NewJSONReporter(opts), nil
	case config.FormatSummary:
		return NewSummaryReporter(opts), nil
	case config.FormatText:
		return NewTextReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// displayPath makes path relative to workingDir when that produces a
// shorter, dot-free path. Otherwise the path is returned unchanged.
func displayPath(path, workingDir string) string {
	if workingDir == "" {
		return path
	}
	rel, err := filepath.Rel(workingDir, path)
	if err != nil || len(rel) >= len(path) {
		return path
	}
	return rel
}

// ruleError pairs a rule ID with its analyzer failure.
type ruleError struct {
	id  string
	err error
}

// sortedRuleErrors flattens a rule-error map into a deterministic,
// ID-ordered slice for output.
func sortedRuleErrors(errs map[string]error) []ruleError {
	out := make([]ruleError, 0, len(errs))
	for id, err := range errs {
		out = append(out, ruleError{id: id, err: err})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}
