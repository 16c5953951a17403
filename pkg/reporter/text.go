package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/mdstyle/internal/ui/pretty"
	"github.com/yaklabco/mdstyle/pkg/lint"
	"github.com/yaklabco/mdstyle/pkg/runner"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(ctx context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	var total int
	if r.opts.GroupByFile {
		total = r.reportGrouped(result)
	} else {
		total = r.reportFlat(result)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return total, nil
}

// reportGrouped writes violations grouped by file, with a header per
// file and a blank line between files.
func (r *TextReporter) reportGrouped(result *runner.Result) int {
	var total int

	for i := range result.Files {
		file := &result.Files[i]

		if file.Err != nil {
			r.writeFileError(file)
			continue
		}
		if file.Result == nil || len(file.Result.Violations) == 0 {
			r.writeRuleErrors(file)
			continue
		}

		path := displayPath(file.Path, r.opts.WorkingDir)
		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(path, len(file.Result.Violations)))

		for j := range file.Result.Violations {
			r.writeViolation(file, &file.Result.Violations[j])
			total++
		}
		r.writeRuleErrors(file)

		fmt.Fprintln(r.bw)
	}

	return total
}

// reportFlat writes violations without grouping.
func (r *TextReporter) reportFlat(result *runner.Result) int {
	var total int

	for i := range result.Files {
		file := &result.Files[i]

		if file.Err != nil {
			r.writeFileError(file)
			continue
		}
		if file.Result == nil {
			continue
		}

		for j := range file.Result.Violations {
			r.writeViolation(file, &file.Result.Violations[j])
			total++
		}
		r.writeRuleErrors(file)
	}

	return total
}

func (r *TextReporter) writeViolation(file *runner.FileOutcome, v *lint.Violation) {
	var sourceLine string
	if r.opts.ShowContext {
		sourceLine = r.sourceLine(file, v)
	}
	fmt.Fprint(r.bw, r.styles.FormatViolation(v, r.opts.ShowContext, sourceLine, r.opts.RuleFormat))
}

func (r *TextReporter) writeFileError(file *runner.FileOutcome) {
	fmt.Fprintf(r.bw, "%s: %s\n",
		r.styles.FilePath.Render(displayPath(file.Path, r.opts.WorkingDir)),
		r.styles.Error.Render(fmt.Sprintf("error: %v", file.Err)),
	)
}

// writeRuleErrors surfaces rules whose analyzers failed on this file.
func (r *TextReporter) writeRuleErrors(file *runner.FileOutcome) {
	if file.Result == nil || len(file.Result.RuleErrors) == 0 {
		return
	}
	for _, desc := range sortedRuleErrors(file.Result.RuleErrors) {
		fmt.Fprintf(r.bw, "  %s %s\n",
			r.styles.Warning.Render("rule "+desc.id+" failed:"),
			r.styles.Dim.Render(desc.err.Error()),
		)
	}
}

// sourceLine returns the source text for the violation's start row.
func (r *TextReporter) sourceLine(file *runner.FileOutcome, v *lint.Violation) string {
	if file.Result == nil || file.Result.Doc == nil || file.Result.Doc.Lines == nil {
		return ""
	}
	line := file.Result.Doc.Lines.Line(v.Range.Start.Line)
	if line == nil {
		return ""
	}
	return string(line)
}
