// Package config defines core configuration types for mdstyle.
// These types are pure data structures with no dependency on the
// config loaders; the loaders in internal/configloader materialize
// them from YAML/TOML files, environment variables, and CLI flags.
package config

// Severity represents the severity level of a rule.
// SeverityOff disables a rule entirely: its analyzer is never
// constructed, not merely silenced.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityOff     Severity = "off"
)

// IsValid returns true for a recognized severity value.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityOff:
		return true
	default:
		return false
	}
}

// RuleConfig holds per-rule configuration options.
type RuleConfig struct {
	Severity *string        `yaml:"severity" toml:"severity"`
	Options  map[string]any `yaml:"options" toml:"options"`
}

// OutputFormat specifies the output format for violations.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatSummary OutputFormat = "summary"
)

// RuleFormat controls how rule identifiers appear in output.
type RuleFormat string

const (
	RuleFormatAlias    RuleFormat = "alias"    // "heading-increment"
	RuleFormatID       RuleFormat = "id"       // "MD001"
	RuleFormatCombined RuleFormat = "combined" // "MD001/heading-increment"
)

// Flavor specifies the Markdown flavor to use for parsing.
type Flavor string

const (
	FlavorCommonMark Flavor = "commonmark"
	FlavorGFM        Flavor = "gfm"
)

// Config is the root configuration structure for mdstyle.
type Config struct {
	// Flavor specifies the Markdown flavor ("commonmark" or "gfm").
	Flavor Flavor `yaml:"flavor" toml:"flavor"`

	// Rules contains per-rule configuration keyed by rule ID or alias.
	Rules map[string]RuleConfig `yaml:"rules" toml:"rules"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `yaml:"ignore" toml:"ignore"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `yaml:"-" toml:"-"`

	// RuleFormat controls how rule identifiers appear in output.
	RuleFormat RuleFormat `yaml:"-" toml:"-"`

	// Jobs specifies the number of parallel workers (0 = NumCPU).
	Jobs int `yaml:"-" toml:"-"`

	// EnableRules contains rule keys to force on at default severity.
	EnableRules []string `yaml:"-" toml:"-"`

	// DisableRules contains rule keys to force off.
	DisableRules []string `yaml:"-" toml:"-"`

	// Strict escalates warnings to a failing exit code.
	Strict bool `yaml:"-" toml:"-"`
}

// New returns a Config with sensible defaults.
func New() *Config {
	return &Config{
		Flavor:     FlavorCommonMark,
		Rules:      make(map[string]RuleConfig),
		Format:     FormatText,
		RuleFormat: RuleFormatCombined,
		Jobs:       0,
	}
}

// RuleSeverity returns the configured severity for the given rule
// keys (typically ID and alias), or ok=false if none is configured.
func (c *Config) RuleSeverity(keys ...string) (Severity, bool) {
	for _, key := range keys {
		rc, found := c.Rules[key]
		if !found || rc.Severity == nil {
			continue
		}
		sev := Severity(*rc.Severity)
		if sev.IsValid() {
			return sev, true
		}
	}
	return "", false
}

// RuleOptions returns the configured options map for the given rule
// keys, or nil if none is configured.
func (c *Config) RuleOptions(keys ...string) map[string]any {
	for _, key := range keys {
		if rc, found := c.Rules[key]; found && rc.Options != nil {
			return rc.Options
		}
	}
	return nil
}
