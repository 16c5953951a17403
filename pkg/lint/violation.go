// Package lint provides the analyzer engine, violation model, and registry
// for mdstyle.
package lint

import (
	"github.com/yaklabco/mdstyle/pkg/config"
	"github.com/yaklabco/mdstyle/pkg/mdast"
)

// Range is a half-open region of a document in 0-based line/character
// coordinates. End points one past the last character of the region.
type Range struct {
	Start mdast.Position
	End   mdast.Position
}

// LineRange returns a Range covering the given row from startCol to endCol.
func LineRange(row, startCol, endCol int) Range {
	return Range{
		Start: mdast.Position{Line: row, Character: startCol},
		End:   mdast.Position{Line: row, Character: endCol},
	}
}

// Violation represents a single style issue found in a file.
type Violation struct {
	// RuleID is the identifier of the rule that produced this violation.
	RuleID string

	// RuleName is the human-readable alias of the rule (e.g., "no-hard-tabs").
	RuleName string

	// Message is the human-readable description of the issue.
	Message string

	// Severity is the resolved severity for this violation.
	Severity config.Severity

	// FilePath is the path to the file containing the issue.
	FilePath string

	// Range locates the issue in 0-based coordinates.
	Range Range

	// Detail carries optional expected/actual context, rendered after the
	// message when present (e.g., "Expected: h2; Actual: h3").
	Detail string
}

// StartLine returns the 0-based row where the violation starts.
func (v *Violation) StartLine() int {
	return v.Range.Start.Line
}

// FullMessage joins Message and Detail for display.
func (v *Violation) FullMessage() string {
	if v.Detail == "" {
		return v.Message
	}
	return v.Message + " [" + v.Detail + "]"
}
