package reporter

import (
	"bufio"
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/mdstyle/internal/ui/pretty"
	"github.com/yaklabco/mdstyle/pkg/config"
	"github.com/yaklabco/mdstyle/pkg/runner"
)

// Table layout constants for summary output.
const (
	tableWidth    = 80
	nameColWidth  = 50
	numColWidth   = 7
	warnColWidth  = 9
	maxNameLength = 48
)

// padRight pads a string to the given width with spaces on the right.
// Must be called before applying ANSI styles.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// padLeft pads a string to the given width with spaces on the left.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// summaryRow is one aggregated line in a summary table.
type summaryRow struct {
	name     string
	count    int
	errors   int
	warnings int
}

// SummaryReporter formats results as aggregated per-rule and per-file
// tables instead of listing individual violations.
type SummaryReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewSummaryReporter creates a new summary reporter.
func NewSummaryReporter(opts Options) *SummaryReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *SummaryReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || result.Stats.ViolationsTotal == 0 {
		fmt.Fprintln(r.bw, r.styles.Success.Render("No issues found"))
		return 0, nil
	}

	byRule, byFile := r.aggregate(result)

	r.renderTable("Rules Summary", "Rule", byRule)
	fmt.Fprintln(r.bw)
	r.renderTable("Files Summary", "File", byFile)
	fmt.Fprintln(r.bw)
	fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))

	return result.Stats.ViolationsTotal, nil
}

// aggregate builds per-rule and per-file rows, sorted by descending
// count with name as the tiebreak.
func (r *SummaryReporter) aggregate(result *runner.Result) (byRule, byFile []summaryRow) {
	ruleRows := make(map[string]*summaryRow)
	fileRows := make(map[string]*summaryRow)

	for i := range result.Files {
		file := &result.Files[i]
		if file.Result == nil {
			continue
		}

		for j := range file.Result.Violations {
			v := &file.Result.Violations[j]

			ruleKey := config.FormatRuleID(r.opts.RuleFormat, v.RuleID, v.RuleName)
			fileKey := displayPath(file.Path, r.opts.WorkingDir)

			for _, row := range []*summaryRow{
				upsertRow(ruleRows, ruleKey),
				upsertRow(fileRows, fileKey),
			} {
				row.count++
				switch v.Severity {
				case config.SeverityError:
					row.errors++
				default:
					row.warnings++
				}
			}
		}
	}

	return sortRows(ruleRows), sortRows(fileRows)
}

func upsertRow(rows map[string]*summaryRow, key string) *summaryRow {
	if row, ok := rows[key]; ok {
		return row
	}
	row := &summaryRow{name: key}
	rows[key] = row
	return row
}

func sortRows(rows map[string]*summaryRow) []summaryRow {
	out := make([]summaryRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].name < out[j].name
	})
	return out
}

func (r *SummaryReporter) renderTable(title, nameHeader string, rows []summaryRow) {
	if len(rows) == 0 {
		return
	}

	separator := r.styles.Dim.Render(strings.Repeat("─", tableWidth))

	fmt.Fprintln(r.bw, r.styles.SummaryTitle.Render(title))
	fmt.Fprintln(r.bw, separator)
	fmt.Fprintf(r.bw, "%s %s %s %s\n",
		r.styles.Bold.Render(padRight(nameHeader, nameColWidth)),
		r.styles.Bold.Render(padLeft("Count", numColWidth)),
		r.styles.Bold.Render(padLeft("Errors", numColWidth)),
		r.styles.Bold.Render(padLeft("Warnings", warnColWidth)),
	)
	fmt.Fprintln(r.bw, separator)

	for _, row := range rows {
		name := row.name
		if len(name) > maxNameLength {
			name = name[:maxNameLength] + "…"
		}

		paddedName := padRight(name, nameColWidth)
		styledName := paddedName
		if row.errors > 0 {
			styledName = r.styles.Error.Render(paddedName)
		}

		fmt.Fprintf(r.bw, "%s %s %s %s\n",
			styledName,
			padLeft(strconv.Itoa(row.count), numColWidth),
			padLeft(strconv.Itoa(row.errors), numColWidth),
			padLeft(strconv.Itoa(row.warnings), warnColWidth),
		)
	}
	fmt.Fprintln(r.bw, separator)
}
