package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/mdstyle/pkg/config"
)

// envVarPrefix is the prefix for all mdstyle environment variables.
const envVarPrefix = "MDSTYLE_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"FLAVOR":      {field: "flavor", typ: envTypeString},
	"FORMAT":      {field: "format", typ: envTypeString},
	"RULE_FORMAT": {field: "rule_format", typ: envTypeString},
	"JOBS":        {field: "jobs", typ: envTypeInt},
	"IGNORE":      {field: "ignore", typ: envTypeSlice},
	"ENABLE":      {field: "enable", typ: envTypeSlice},
	"DISABLE":     {field: "disable", typ: envTypeSlice},
	"STRICT":      {field: "strict", typ: envTypeBool},
}

// LoadFromEnv applies environment variable overrides to the
// configuration. Variables are prefixed with MDSTYLE_ (e.g.,
// MDSTYLE_FLAVOR).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}
		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice with
// each element trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "flavor":
		cfg.Flavor = config.Flavor(value)
	case "format":
		cfg.Format = config.OutputFormat(value)
	case "rule_format":
		cfg.RuleFormat = config.RuleFormat(value)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "strict":
		cfg.Strict = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "ignore":
		cfg.Ignore = value
	case "enable":
		cfg.EnableRules = value
	case "disable":
		cfg.DisableRules = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// ListEnvVars returns all supported environment variables with their
// descriptions, for help output.
func ListEnvVars() map[string]string {
	return map[string]string{
		"MDSTYLE_FLAVOR":      "Markdown flavor: commonmark or gfm",
		"MDSTYLE_FORMAT":      "Output format: text, json, or summary",
		"MDSTYLE_RULE_FORMAT": "Rule identifier format: id, alias, or combined",
		"MDSTYLE_JOBS":        "Number of parallel workers (0 = auto)",
		"MDSTYLE_IGNORE":      "Comma-separated list of ignore patterns",
		"MDSTYLE_ENABLE":      "Comma-separated list of rules to force on",
		"MDSTYLE_DISABLE":     "Comma-separated list of rules to force off",
		"MDSTYLE_STRICT":      "Fail on warnings: true or false",
	}
}
