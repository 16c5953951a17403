package rules

import (
	"fmt"

	"github.com/yaklabco/mdstyle/pkg/config"
	"github.com/yaklabco/mdstyle/pkg/lint"
	"github.com/yaklabco/mdstyle/pkg/mdast"
)

// Emphasis marker styles recognized by MD049 and MD050.
const (
	emStyleAsterisk   = "asterisk"
	emStyleUnderscore = "underscore"
)

func emStyleOf(marker byte) string {
	switch marker {
	case '*':
		return emStyleAsterisk
	case '_':
		return emStyleUnderscore
	default:
		return ""
	}
}

// markerConsistency is the shared state machine behind MD049 and MD050:
// the first marker seen sets the norm, later mismatches are flagged.
// Each instance watches a single node kind, emphasis or strong.
type markerConsistency struct {
	rc      *lint.RuleContext
	kind    mdast.NodeKind
	message string
	norm    string
	found   []lint.Violation
}

func (a *markerConsistency) Feed(n *mdast.Node) {
	if n.Kind != a.kind {
		return
	}
	style := emStyleOf(lint.EmphasisMarker(n))
	if style == "" || !n.HasValidSpan() {
		return
	}

	if a.norm == styleConsistent {
		a.norm = style
		return
	}

	if style != a.norm {
		span := n.Span()
		v := a.rc.Violation(lint.Range{Start: span.Start, End: span.End}, a.message)
		v.Detail = fmt.Sprintf("Expected: %s; Actual: %s", a.norm, style)
		a.found = append(a.found, v)
	}
}

func (a *markerConsistency) Finalize() []lint.Violation {
	return a.found
}

// EmphasisStyle (MD049) checks that emphasis markers are consistent.
func EmphasisStyle() *lint.Descriptor {
	return &lint.Descriptor{
		ID:              "MD049",
		Alias:           "emphasis-style",
		Description:     "Emphasis style should be consistent",
		Tags:            []string{"emphasis", "style"},
		Class:           lint.ClassToken,
		Kinds:           []mdast.NodeKind{mdast.NodeEmphasis},
		DefaultSeverity: config.SeverityWarning,
		New: func(rc *lint.RuleContext) lint.Analyzer {
			return &markerConsistency{
				rc:      rc,
				kind:    mdast.NodeEmphasis,
				message: "Emphasis style should be consistent",
				norm:    rc.OptionString("style", styleConsistent),
			}
		},
	}
}

// StrongStyle (MD050) checks that strong markers are consistent.
func StrongStyle() *lint.Descriptor {
	return &lint.Descriptor{
		ID:              "MD050",
		Alias:           "strong-style",
		Description:     "Strong style should be consistent",
		Tags:            []string{"emphasis", "style"},
		Class:           lint.ClassToken,
		Kinds:           []mdast.NodeKind{mdast.NodeStrong},
		DefaultSeverity: config.SeverityWarning,
		New: func(rc *lint.RuleContext) lint.Analyzer {
			return &markerConsistency{
				rc:      rc,
				kind:    mdast.NodeStrong,
				message: "Strong style should be consistent",
				norm:    rc.OptionString("style", styleConsistent),
			}
		},
	}
}
