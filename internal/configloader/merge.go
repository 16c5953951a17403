package configloader

import "github.com/yaklabco/mdstyle/pkg/config"

// merge combines two configurations, with override taking precedence:
//   - Scalars: override overwrites base when non-zero
//   - Maps: deep merge, override's values winning
//   - Slices: override replaces base entirely when non-nil
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Flavor != "" {
		result.Flavor = override.Flavor
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.RuleFormat != "" {
		result.RuleFormat = override.RuleFormat
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	// Strict is a bool, so only a true override is detectable. CLI
	// --strict can turn it on but a config file cannot turn it back off.
	if override.Strict {
		result.Strict = override.Strict
	}

	result.Rules = mergeRules(base.Rules, override.Rules)

	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}
	if override.EnableRules != nil {
		result.EnableRules = override.EnableRules
	}
	if override.DisableRules != nil {
		result.DisableRules = override.DisableRules
	}

	return &result
}

// mergeRules performs a deep merge of rule configurations.
func mergeRules(base, override map[string]config.RuleConfig) map[string]config.RuleConfig {
	if base == nil && override == nil {
		return nil
	}

	result := make(map[string]config.RuleConfig, len(base)+len(override))
	for key, val := range base {
		result[key] = val
	}
	for key, val := range override {
		if existing, ok := result[key]; ok {
			result[key] = mergeRuleConfig(existing, val)
		} else {
			result[key] = val
		}
	}
	return result
}

// mergeRuleConfig merges individual rule configurations, with
// override's values taking precedence.
func mergeRuleConfig(base, override config.RuleConfig) config.RuleConfig {
	result := base

	if override.Severity != nil {
		result.Severity = override.Severity
	}

	if override.Options != nil {
		merged := make(map[string]any, len(base.Options)+len(override.Options))
		for key, val := range base.Options {
			merged[key] = val
		}
		for key, val := range override.Options {
			merged[key] = val
		}
		result.Options = merged
	}

	return result
}

// MergeAll merges multiple configurations in order, with later configs
// taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
