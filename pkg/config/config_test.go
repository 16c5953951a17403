package config_test

import (
	"testing"

	"github.com/yaklabco/mdstyle/pkg/config"
)

func strPtr(s string) *string { return &s }

func TestSeverity_IsValid(t *testing.T) {
	t.Parallel()

	valid := []config.Severity{
		config.SeverityError,
		config.SeverityWarning,
		config.SeverityOff,
	}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("%q should be valid", s)
		}
	}
	if config.Severity("info").IsValid() {
		t.Error("unknown severity should be invalid")
	}
}

func TestConfig_RuleSeverity(t *testing.T) {
	t.Parallel()

	cfg := config.New()
	cfg.Rules["MD001"] = config.RuleConfig{Severity: strPtr("error")}
	cfg.Rules["no-hard-tabs"] = config.RuleConfig{Severity: strPtr("off")}
	cfg.Rules["MD013"] = config.RuleConfig{Severity: strPtr("loud")}

	sev, ok := cfg.RuleSeverity("MD001", "heading-increment")
	if !ok || sev != config.SeverityError {
		t.Errorf("got (%v, %v), want (error, true)", sev, ok)
	}

	// Alias lookup after ID miss.
	sev, ok = cfg.RuleSeverity("MD010", "no-hard-tabs")
	if !ok || sev != config.SeverityOff {
		t.Errorf("got (%v, %v), want (off, true)", sev, ok)
	}

	// Invalid values are ignored.
	if _, ok := cfg.RuleSeverity("MD013", "line-length"); ok {
		t.Error("invalid severity value must not resolve")
	}

	// Unconfigured rule.
	if _, ok := cfg.RuleSeverity("MD999"); ok {
		t.Error("unconfigured rule must not resolve")
	}
}

func TestConfig_RuleOptions(t *testing.T) {
	t.Parallel()

	cfg := config.New()
	cfg.Rules["line-length"] = config.RuleConfig{
		Options: map[string]any{"line_length": 100},
	}

	opts := cfg.RuleOptions("MD013", "line-length")
	if opts == nil || opts["line_length"] != 100 {
		t.Errorf("RuleOptions = %v", opts)
	}

	if cfg.RuleOptions("MD001") != nil {
		t.Error("expected nil options for unconfigured rule")
	}
}

func TestFormatRuleID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format config.RuleFormat
		want   string
	}{
		{config.RuleFormatID, "MD001"},
		{config.RuleFormatAlias, "heading-increment"},
		{config.RuleFormatCombined, "MD001/heading-increment"},
		{config.RuleFormat(""), "MD001/heading-increment"},
	}

	for _, tt := range tests {
		got := config.FormatRuleID(tt.format, "MD001", "heading-increment")
		if got != tt.want {
			t.Errorf("FormatRuleID(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}

	if got := config.FormatRuleID(config.RuleFormatAlias, "MD001", ""); got != "MD001" {
		t.Errorf("empty alias: got %q, want MD001", got)
	}
}
