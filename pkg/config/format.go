package config

// FormatRuleID formats a rule identifier based on the given format.
// Falls back to the ID if the alias is empty.
func FormatRuleID(format RuleFormat, ruleID, alias string) string {
	if alias == "" {
		return ruleID
	}

	switch format {
	case RuleFormatID:
		return ruleID
	case RuleFormatCombined:
		return ruleID + "/" + alias
	case RuleFormatAlias:
		return alias
	default:
		return ruleID + "/" + alias
	}
}
