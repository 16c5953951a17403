package configloader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/mdstyle/pkg/config"
	"github.com/yaklabco/mdstyle/pkg/lint"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "rules.MD001.severity").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error, if known.
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., unknown rule keys).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

//nolint:gochecknoglobals // Read-only lookup table.
var knownFlavors = map[config.Flavor]bool{
	config.FlavorCommonMark: true,
	config.FlavorGFM:        true,
}

//nolint:gochecknoglobals // Read-only lookup table.
var knownFormats = map[config.OutputFormat]bool{
	config.FormatText:    true,
	config.FormatJSON:    true,
	config.FormatSummary: true,
}

//nolint:gochecknoglobals // Read-only lookup table.
var knownRuleFormats = map[config.RuleFormat]bool{
	config.RuleFormatID:       true,
	config.RuleFormatAlias:    true,
	config.RuleFormatCombined: true,
}

// Validate checks a configuration for errors and warnings. Unknown
// rule keys are warnings so that shared configs can carry rules this
// build does not know about; invalid severities are errors.
func Validate(cfg *config.Config, registry *lint.Registry) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}
	if registry == nil {
		registry = lint.DefaultRegistry
	}

	if cfg.Flavor != "" && !knownFlavors[cfg.Flavor] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "flavor",
			Value:   cfg.Flavor,
			Message: fmt.Sprintf("invalid flavor %q; must be one of: commonmark, gfm", cfg.Flavor),
		})
	}

	if cfg.Format != "" && !knownFormats[cfg.Format] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: text, json, summary", cfg.Format),
		})
	}

	if cfg.RuleFormat != "" && !knownRuleFormats[cfg.RuleFormat] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "rule_format",
			Value:   cfg.RuleFormat,
			Message: fmt.Sprintf("invalid rule format %q; must be one of: id, alias, combined", cfg.RuleFormat),
		})
	}

	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: "jobs must be >= 0 (0 means auto)",
		})
	}

	validateRules(cfg, registry, result)
	validateIgnorePatterns(cfg, result)

	return result
}

func validateRules(cfg *config.Config, registry *lint.Registry, result *ValidationResult) {
	for ruleKey, ruleCfg := range cfg.Rules {
		if _, found := registry.Resolve(ruleKey); !found {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   "rules." + ruleKey,
				Value:   ruleKey,
				Message: fmt.Sprintf("unknown rule %q; it will be ignored", ruleKey),
			})
		}

		// An invalid severity is a warning, not an error: the engine
		// ignores unresolvable values and falls back to the rule's
		// default severity.
		if ruleCfg.Severity != nil && !config.Severity(*ruleCfg.Severity).IsValid() {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   "rules." + ruleKey + ".severity",
				Value:   *ruleCfg.Severity,
				Message: fmt.Sprintf("invalid severity %q; must be one of: error, warning, off; using the rule default", *ruleCfg.Severity),
			})
		}
	}
}

func validateIgnorePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Ignore {
		// filepath.Match errors only on malformed patterns.
		if _, err := filepath.Match(pattern, ""); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("ignore[%d]", i),
				Value:   pattern,
				Message: fmt.Sprintf("invalid glob pattern: %v", err),
			})
		}
	}
}

// ValidateWithFile validates configuration and stamps the file path
// onto all findings.
func ValidateWithFile(cfg *config.Config, registry *lint.Registry, filePath string) *ValidationResult {
	result := Validate(cfg, registry)
	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}
	return result
}
