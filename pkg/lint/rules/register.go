package rules

import "github.com/yaklabco/mdstyle/pkg/lint"

// RegisterAll registers all built-in rules with the given registry.
// Registration order fixes the order violations are reported in.
func RegisterAll(registry *lint.Registry) {
	// Headings
	registry.Register(HeadingIncrement())   // MD001
	registry.Register(HeadingStyle())       // MD003
	registry.Register(NoMultipleSpaceATX()) // MD019
	registry.Register(NoDuplicateHeading()) // MD024
	registry.Register(SingleH1())           // MD025
	registry.Register(FirstLineHeading())   // MD041

	// Lists
	registry.Register(ULStyle())    // MD004
	registry.Register(ListIndent()) // MD005
	registry.Register(OLPrefix())   // MD029

	// Whitespace
	registry.Register(NoTrailingSpaces())      // MD009
	registry.Register(NoHardTabs())            // MD010
	registry.Register(NoMultipleBlanks())      // MD012
	registry.Register(SingleTrailingNewline()) // MD047

	// Line length
	registry.Register(LineLength()) // MD013

	// Links
	registry.Register(NoReversedLinks()) // MD011

	// Code blocks
	registry.Register(FencedCodeLanguage()) // MD040
	registry.Register(CodeFenceStyle())     // MD048

	// Emphasis
	registry.Register(EmphasisStyle()) // MD049
	registry.Register(StrongStyle())   // MD050

	// Horizontal rules
	registry.Register(HRStyle()) // MD035
}

// NewRegistry returns a fresh registry with every built-in rule
// registered.
func NewRegistry() *lint.Registry {
	registry := lint.NewRegistry()
	RegisterAll(registry)
	return registry
}
