package lint

import "github.com/yaklabco/mdstyle/pkg/config"

// ResolvedRule pairs a Descriptor with its effective configuration.
type ResolvedRule struct {
	// Desc is the rule descriptor.
	Desc *Descriptor

	// Severity is the resolved severity for violations from this rule.
	// Never off: rules resolved to off are excluded entirely.
	Severity config.Severity

	// Options is the rule-specific option map (may be nil).
	Options map[string]any
}

// ResolveRules determines which rules run, in registry order. A rule
// resolved to severity off is dropped here, before any analyzer exists.
func ResolveRules(registry *Registry, cfg *config.Config) []ResolvedRule {
	var resolved []ResolvedRule

	for _, d := range registry.Descriptors() {
		rr, on := resolveRule(d, cfg)
		if on {
			resolved = append(resolved, rr)
		}
	}

	return resolved
}

func resolveRule(d *Descriptor, cfg *config.Config) (ResolvedRule, bool) {
	rr := ResolvedRule{Desc: d, Severity: d.DefaultSeverity}
	if rr.Severity == "" {
		rr.Severity = config.SeverityWarning
	}

	if cfg == nil {
		return rr, true
	}

	enabled := true
	for _, key := range cfg.DisableRules {
		if key == d.ID || key == d.Alias {
			enabled = false
			break
		}
	}
	for _, key := range cfg.EnableRules {
		if key == d.ID || key == d.Alias {
			enabled = true
			break
		}
	}

	if sev, ok := cfg.RuleSeverity(d.ID, d.Alias); ok {
		rr.Severity = sev
	}
	rr.Options = cfg.RuleOptions(d.ID, d.Alias)

	if !enabled || rr.Severity == config.SeverityOff {
		return rr, false
	}
	return rr, true
}
