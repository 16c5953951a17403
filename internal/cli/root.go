// Package cli provides the Cobra command structure for mdstyle.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdstyle/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root mdstyle command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var logLevel string
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "mdstyle",
		Short: "A fast Markdown style checker",
		Long: `mdstyle checks Markdown files for style and consistency issues.

It targets CommonMark and GitHub Flavored Markdown (GFM), evaluating a
catalog of style rules in a single pass over each document. Rules can be
enabled, disabled, and tuned per project through .mdstyle.yaml or
.mdstyle.toml configuration files.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if !logging.SetLevel(logLevel) {
				logging.Default().Warn("unknown log level, keeping default",
					"level", logLevel)
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logging.DefaultLevel,
		"log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
