package lint

import (
	"context"
	"fmt"

	"github.com/yaklabco/mdstyle/pkg/config"
	"github.com/yaklabco/mdstyle/pkg/mdast"
)

// FileResult contains the results of checking a single file.
type FileResult struct {
	// Doc is the parsed document.
	Doc *mdast.Document

	// Violations contains all issues found. Ordering is registry order
	// first, then each rule's own emission order; the engine never
	// re-sorts by location.
	Violations []Violation

	// RuleErrors records rules whose analyzer failed, keyed by rule ID.
	// A failed rule contributes no violations but does not abort the
	// rest of the check.
	RuleErrors map[string]error
}

// HasIssues returns true if any violations were found.
func (fr *FileResult) HasIssues() bool {
	return len(fr.Violations) > 0
}

// CountBySeverity returns the number of violations at the given severity.
func (fr *FileResult) CountBySeverity(sev config.Severity) int {
	n := 0
	for i := range fr.Violations {
		if fr.Violations[i].Severity == sev {
			n++
		}
	}
	return n
}

// Engine coordinates parsing and analyzer dispatch for checking files.
type Engine struct {
	// Parser parses Markdown files into Documents.
	Parser Parser

	// Registry holds all available rules.
	Registry *Registry
}

// NewEngine creates an Engine with the given parser and registry.
func NewEngine(parser Parser, registry *Registry) *Engine {
	return &Engine{Parser: parser, Registry: registry}
}

// analyzerSlot tracks one constructed analyzer during a check. A slot
// that fails (panic during Feed or Finalize) is marked dead and skipped
// for the rest of the file.
type analyzerSlot struct {
	desc     *Descriptor
	analyzer Analyzer
	dead     bool
}

// CheckFile parses and checks a single file.
//
// All enabled analyzers are fed from one pre-order traversal of the tree;
// the tree is never walked once per rule.
func (e *Engine) CheckFile(
	ctx context.Context,
	path string,
	content []byte,
	cfg *config.Config,
) (*FileResult, error) {
	doc, err := e.Parser.Parse(ctx, path, content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	resolved := ResolveRules(e.Registry, cfg)

	result := &FileResult{
		Doc:        doc,
		RuleErrors: make(map[string]error),
	}

	shared := NewContext(doc, cfg)

	// Construct one analyzer per enabled rule. Declared kinds are a
	// caching hint, not a dispatch filter: warm the span index for them
	// up front so no analyzer pays for the first lookup mid-check.
	slots := make([]*analyzerSlot, 0, len(resolved))
	for _, rr := range resolved {
		slot := &analyzerSlot{desc: rr.Desc}
		rc := &RuleContext{
			Context:  shared,
			Desc:     rr.Desc,
			Severity: rr.Severity,
			Options:  rr.Options,
		}
		if err := guard(slot.desc.ID, func() {
			slot.analyzer = rr.Desc.New(rc)
		}); err != nil {
			result.RuleErrors[slot.desc.ID] = err
			slot.dead = true
		}
		slots = append(slots, slot)
		if slot.dead {
			continue
		}
		for _, kind := range rr.Desc.Kinds {
			shared.SpansFor(kind)
		}
	}

	// Single traversal. Every live analyzer sees every node; analyzers
	// skip the kinds they do not care about.
	if len(slots) > 0 {
		err := mdast.Walk(doc.Root, func(n *mdast.Node) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			for _, slot := range slots {
				if slot.dead {
					continue
				}
				if err := guard(slot.desc.ID, func() {
					slot.analyzer.Feed(n)
				}); err != nil {
					result.RuleErrors[slot.desc.ID] = err
					slot.dead = true
				}
			}
			return nil
		})
		if err != nil {
			return result, fmt.Errorf("check cancelled: %w", err)
		}
	}

	// Finalize in registry order; violations concatenate in that order.
	for _, slot := range slots {
		if slot.dead {
			continue
		}
		var vs []Violation
		if err := guard(slot.desc.ID, func() {
			vs = slot.analyzer.Finalize()
		}); err != nil {
			result.RuleErrors[slot.desc.ID] = err
			continue
		}
		result.Violations = append(result.Violations, vs...)
	}

	return result, nil
}

// guard runs fn, converting a panic into an error so one broken rule
// cannot take down the whole check.
func guard(ruleID string, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("rule %s panicked: %v", ruleID, r)
		}
	}()
	fn()
	return nil
}
