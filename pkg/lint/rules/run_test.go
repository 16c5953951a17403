package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdstyle/pkg/config"
	"github.com/yaklabco/mdstyle/pkg/lint"
	"github.com/yaklabco/mdstyle/pkg/parser/goldmark"
)

// runRule checks content against a single rule and returns its
// violations.
func runRule(t *testing.T, d *lint.Descriptor, content string, opts map[string]any) []lint.Violation {
	t.Helper()

	registry := lint.NewRegistry()
	registry.Register(d)

	cfg := config.New()
	if opts != nil {
		cfg.Rules[d.ID] = config.RuleConfig{Options: opts}
	}

	engine := lint.NewEngine(goldmark.New(goldmark.FlavorCommonMark), registry)
	result, err := engine.CheckFile(context.Background(), "test.md", []byte(content), cfg)
	require.NoError(t, err)
	require.Empty(t, result.RuleErrors)
	return result.Violations
}
