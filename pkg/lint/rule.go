package lint

import (
	"github.com/yaklabco/mdstyle/pkg/config"
	"github.com/yaklabco/mdstyle/pkg/mdast"
)

// Class describes the scanning shape of a rule. It is informational,
// surfaced by the rules listing, and does not affect dispatch.
type Class string

const (
	// ClassToken rules react to individual nodes as they are fed.
	ClassToken Class = "token"
	// ClassLine rules scan the raw line index, usually in Finalize.
	ClassLine Class = "line"
	// ClassDocument rules aggregate state across the whole document and
	// report only in Finalize.
	ClassDocument Class = "document"
	// ClassHybrid rules combine node feeding with line or document scans.
	ClassHybrid Class = "hybrid"
)

// Analyzer is the per-file state machine behind a rule.
//
// The engine constructs one analyzer per enabled rule per file, feeds it
// nodes from a single pre-order traversal, then calls Finalize exactly once.
// Analyzers are never reused across files and need no internal locking.
type Analyzer interface {
	// Feed is called for every traversed node in document pre-order,
	// regardless of the rule's declared Kinds. Analyzers ignore the
	// kinds they do not handle.
	Feed(n *mdast.Node)

	// Finalize reports all violations found. It is called once, after the
	// traversal completes. Violations must be emitted in the order the
	// rule discovered them; the engine does not re-sort by location.
	Finalize() []Violation
}

// Descriptor declares a rule: its identity, the node kinds its analyzer
// consumes, and the factory that builds a fresh analyzer per file.
type Descriptor struct {
	// ID is the unique identifier (e.g., "MD001").
	ID string

	// Alias is the human-readable name (e.g., "heading-increment").
	Alias string

	// Description explains what the rule checks.
	Description string

	// Tags categorize the rule (e.g., ["headings", "style"]).
	Tags []string

	// Class is the rule's scanning shape.
	Class Class

	// Kinds lists the node kinds the analyzer inspects. The engine uses
	// them only to pre-warm the shared span index; they do not restrict
	// which nodes reach Feed. An empty list is fine for rules that work
	// entirely from the line index in Finalize.
	Kinds []mdast.NodeKind

	// DefaultSeverity applies when configuration does not override it.
	DefaultSeverity config.Severity

	// New constructs the analyzer for one file. It is never called for
	// rules resolved to severity off.
	New func(rc *RuleContext) Analyzer
}

// RuleContext is what a rule's analyzer sees: the shared per-file Context
// plus the rule's own resolved configuration.
type RuleContext struct {
	*Context

	// Desc is the rule's own descriptor.
	Desc *Descriptor

	// Severity is the resolved severity for this rule.
	Severity config.Severity

	// Options holds the rule-specific option map (may be nil).
	Options map[string]any
}

// Violation builds a violation pre-filled with the rule's identity, the
// file path, and the resolved severity.
func (rc *RuleContext) Violation(r Range, message string) Violation {
	return Violation{
		RuleID:   rc.Desc.ID,
		RuleName: rc.Desc.Alias,
		Message:  message,
		Severity: rc.Severity,
		FilePath: rc.Doc.Path,
		Range:    r,
	}
}

// Option returns a rule-specific option value, or the default if not set.
func (rc *RuleContext) Option(key string, defaultValue any) any {
	if rc.Options == nil {
		return defaultValue
	}
	if v, ok := rc.Options[key]; ok {
		return v
	}
	return defaultValue
}

// OptionInt returns a rule-specific integer option, or the default.
func (rc *RuleContext) OptionInt(key string, defaultValue int) int {
	switch val := rc.Option(key, defaultValue).(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		return int(val)
	default:
		return defaultValue
	}
}

// OptionString returns a rule-specific string option, or the default.
func (rc *RuleContext) OptionString(key string, defaultValue string) string {
	if s, ok := rc.Option(key, defaultValue).(string); ok {
		return s
	}
	return defaultValue
}

// OptionBool returns a rule-specific boolean option, or the default.
func (rc *RuleContext) OptionBool(key string, defaultValue bool) bool {
	if b, ok := rc.Option(key, defaultValue).(bool); ok {
		return b
	}
	return defaultValue
}

// OptionStringSlice returns a rule-specific string slice option, or the
// default. YAML and TOML decoders hand slices back as []any, so both
// shapes are accepted.
func (rc *RuleContext) OptionStringSlice(key string, defaultValue []string) []string {
	v := rc.Option(key, defaultValue)
	if slice, ok := v.([]string); ok {
		return slice
	}
	if iface, ok := v.([]any); ok {
		result := make([]string, 0, len(iface))
		for _, item := range iface {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return defaultValue
}
