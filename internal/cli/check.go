package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdstyle/internal/configloader"
	"github.com/yaklabco/mdstyle/internal/logging"
	"github.com/yaklabco/mdstyle/pkg/config"
	"github.com/yaklabco/mdstyle/pkg/lint"
	"github.com/yaklabco/mdstyle/pkg/lint/rules"
	goldmarkparser "github.com/yaklabco/mdstyle/pkg/parser/goldmark"
	"github.com/yaklabco/mdstyle/pkg/reporter"
	"github.com/yaklabco/mdstyle/pkg/runner"
)

// ErrIssuesFound is returned when the check finds violations. It
// carries no message beyond the exit code signal.
var ErrIssuesFound = errors.New("style issues found")

type checkFlags struct {
	format     string
	flavor     string
	ignore     []string
	enable     []string
	disable    []string
	jobs       int
	strict     bool
	noContext  bool
	noSummary  bool
	compact    bool
	ruleFormat string
}

func newCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:     "check [paths...]",
		Aliases: []string{"lint"},
		Short:   "Check Markdown files for style issues",
		Long:    checkLongDescription,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	addCheckFlags(cmd, flags)

	return cmd
}

const checkLongDescription = `Check Markdown files for style and consistency issues.

By default, checks all .md and .markdown files in the current directory
and subdirectories. Specify paths to check specific files or directories.

Examples:
  mdstyle check                  # Check current directory
  mdstyle check docs/            # Check docs directory
  mdstyle check README.md        # Check single file
  mdstyle check --format json    # Output as JSON for CI
  mdstyle check --strict         # Treat warnings as errors`

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags) error {
	logger := logging.Default()

	// Map string flags to typed config values. Only values the user
	// explicitly provided should override config files.
	cliCfg := &config.Config{}
	if cmd.Flags().Changed("format") {
		cliCfg.Format = config.OutputFormat(flags.format)
	}
	if cmd.Flags().Changed("flavor") {
		cliCfg.Flavor = config.Flavor(flags.flavor)
	}
	if cmd.Flags().Changed("rule-format") {
		cliCfg.RuleFormat = config.RuleFormat(flags.ruleFormat)
	}
	cliCfg.Jobs = flags.jobs
	cliCfg.Ignore = flags.ignore
	cliCfg.EnableRules = flags.enable
	cliCfg.DisableRules = flags.disable
	cliCfg.Strict = flags.strict

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	registry := rules.NewRegistry()

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		Registry:     registry,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}
	logger.Debug("configuration loaded",
		logging.FieldFlavor, finalCfg.Flavor,
		logging.FieldFormat, finalCfg.Format,
		logging.FieldJobs, finalCfg.Jobs,
	)

	parser := goldmarkparser.New(string(finalCfg.Flavor))
	engine := lint.NewEngine(parser, registry)
	checkRunner := runner.New(engine)

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   runner.DefaultExtensions(),
		ExcludeGlobs: finalCfg.Ignore,
		Jobs:         finalCfg.Jobs,
		Config:       finalCfg,
	}

	logger.Debug("starting check run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := checkRunner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("check run failed"), err)
	}

	logger.Debug("check run complete",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldViolationsTotal, result.Stats.ViolationsTotal,
		logging.FieldRuleFailures, result.Stats.RuleFailures,
	)

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      finalCfg.Format,
		Color:       colorMode,
		ShowContext: !flags.noContext,
		ShowSummary: !flags.noSummary,
		GroupByFile: true,
		Compact:     flags.compact,
		RuleFormat:  finalCfg.RuleFormat,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	if ExitCodeFromResult(result, finalCfg.Strict) != ExitSuccess {
		return ErrIssuesFound
	}
	return nil
}

func addCheckFlags(cmd *cobra.Command, flags *checkFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json, summary")
	cmd.Flags().StringVar(&flags.flavor, "flavor", "commonmark",
		"Markdown flavor: commonmark, gfm")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "rule IDs or aliases to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule IDs or aliases to disable")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat warnings as errors for exit code")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.noSummary, "no-summary", false, "hide the run summary line")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output where applicable")
	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "combined",
		"rule identifier format in output: id, alias, combined")
}
