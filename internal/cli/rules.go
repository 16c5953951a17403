package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/mdstyle/internal/ui/pretty"
	"github.com/yaklabco/mdstyle/pkg/config"
	"github.com/yaklabco/mdstyle/pkg/lint"
	"github.com/yaklabco/mdstyle/pkg/lint/rules"
)

type rulesFlags struct {
	ruleFormat string
	format     string
}

const formatJSON = "json"

// fallbackTermWidth is used when the output is not a terminal.
const fallbackTermWidth = 100

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string   `json:"id"`
	Alias       string   `json:"alias"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Class       string   `json:"class"`
	Severity    string   `json:"severity"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available style rules",
		Long: `List all available style rules with their IDs, aliases,
descriptions, tags, and default severity.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			descriptors := rules.NewRegistry().Descriptors()

			if flags.format == formatJSON {
				return outputRulesJSON(cmd, descriptors)
			}
			return outputRulesText(cmd, descriptors, flags)
		},
	}

	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "combined",
		"rule identifier format in output: id, alias, combined")
	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")

	return cmd
}

func outputRulesText(cmd *cobra.Command, descriptors []*lint.Descriptor, flags *rulesFlags) error {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))

	width := terminalWidth()
	ruleFormat := config.RuleFormat(flags.ruleFormat)

	out := cmd.OutOrStdout()
	for _, desc := range descriptors {
		identifier := config.FormatRuleID(ruleFormat, desc.ID, desc.Alias)

		line := fmt.Sprintf("%s  %s  %s",
			styles.RuleID.Render(fmt.Sprintf("%-28s", identifier)),
			styles.Dim.Render(fmt.Sprintf("%-7s", string(desc.DefaultSeverity))),
			truncate(desc.Description, width-40),
		)
		fmt.Fprintln(out, line)

		if len(desc.Tags) > 0 {
			fmt.Fprintln(out, "  "+styles.Dim.Render("tags: "+strings.Join(desc.Tags, ", ")))
		}
	}

	return nil
}

func outputRulesJSON(cmd *cobra.Command, descriptors []*lint.Descriptor) error {
	infos := make([]ruleInfo, 0, len(descriptors))
	for _, desc := range descriptors {
		infos = append(infos, ruleInfo{
			ID:          desc.ID,
			Alias:       desc.Alias,
			Description: desc.Description,
			Tags:        desc.Tags,
			Class:       string(desc.Class),
			Severity:    string(desc.DefaultSeverity),
		})
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}

// terminalWidth returns the width of the attached terminal, or a
// fallback when stdout is not a terminal.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallbackTermWidth
	}
	return width
}

func truncate(s string, limit int) string {
	if limit < 20 {
		limit = 20
	}
	if len(s) <= limit {
		return s
	}
	return s[:limit-1] + "…"
}
