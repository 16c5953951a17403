package rules

import (
	"bytes"
	"fmt"

	"github.com/yaklabco/mdstyle/pkg/config"
	"github.com/yaklabco/mdstyle/pkg/lint"
)

// NoTrailingSpaces (MD009) checks for trailing whitespace at the end of
// lines. The br_spaces option permits exactly that many trailing spaces
// as a hard line break (values below 2 disable the allowance).
func NoTrailingSpaces() *lint.Descriptor {
	return &lint.Descriptor{
		ID:              "MD009",
		Alias:           "no-trailing-spaces",
		Description:     "Trailing spaces",
		Tags:            []string{"whitespace"},
		Class:           lint.ClassLine,
		DefaultSeverity: config.SeverityWarning,
		New: func(rc *lint.RuleContext) lint.Analyzer {
			return &noTrailingSpaces{
				rc:       rc,
				brSpaces: rc.OptionInt("br_spaces", 2),
			}
		},
	}
}

type noTrailingSpaces struct {
	lineScan
	rc       *lint.RuleContext
	brSpaces int
}

func (a *noTrailingSpaces) Finalize() []lint.Violation {
	lines := a.rc.Doc.Lines
	var found []lint.Violation

	for row := 0; row < lines.Count(); row++ {
		line := lines.Line(row)
		trimmed := bytes.TrimRight(line, " \t")
		trailing := len(line) - len(trimmed)
		if trailing == 0 || len(trimmed) == 0 {
			// Whitespace-only lines belong to no-multiple-blanks.
			continue
		}

		// A run of exactly br_spaces spaces is a hard line break.
		if a.brSpaces >= 2 && trailing == a.brSpaces &&
			!bytes.ContainsRune(line[len(trimmed):], '\t') {
			continue
		}

		startCol := runeCol(lines, row, len(trimmed))
		v := a.rc.Violation(lint.LineRange(row, startCol, startCol+trailing), "Trailing spaces")
		v.Detail = fmt.Sprintf("Expected: 0 or %d; Actual: %d", a.brSpaces, trailing)
		found = append(found, v)
	}

	return found
}

// NoHardTabs (MD010) checks for hard tab characters. With the
// code_blocks option set to false, tabs inside code blocks are ignored.
func NoHardTabs() *lint.Descriptor {
	return &lint.Descriptor{
		ID:              "MD010",
		Alias:           "no-hard-tabs",
		Description:     "Hard tabs",
		Tags:            []string{"whitespace", "hard_tab"},
		Class:           lint.ClassLine,
		DefaultSeverity: config.SeverityWarning,
		New: func(rc *lint.RuleContext) lint.Analyzer {
			return &noHardTabs{
				rc:         rc,
				codeBlocks: rc.OptionBool("code_blocks", true),
			}
		},
	}
}

type noHardTabs struct {
	lineScan
	rc         *lint.RuleContext
	codeBlocks bool
}

func (a *noHardTabs) Finalize() []lint.Violation {
	lines := a.rc.Doc.Lines
	var found []lint.Violation

	for row := 0; row < lines.Count(); row++ {
		if !a.codeBlocks && a.rc.IsLineInCode(row) {
			continue
		}
		line := lines.Line(row)
		for i := 0; i < len(line); i++ {
			if line[i] != '\t' {
				continue
			}
			col := runeCol(lines, row, i)
			v := a.rc.Violation(lint.LineRange(row, col, col+1), "Hard tabs")
			v.Detail = fmt.Sprintf("Column: %d", col+1)
			found = append(found, v)
		}
	}

	return found
}

// NoMultipleBlanks (MD012) checks for runs of blank lines longer than
// the configured maximum. Blank lines inside code or HTML blocks are
// exempt.
func NoMultipleBlanks() *lint.Descriptor {
	return &lint.Descriptor{
		ID:              "MD012",
		Alias:           "no-multiple-blanks",
		Description:     "Multiple consecutive blank lines",
		Tags:            []string{"whitespace", "blank_lines"},
		Class:           lint.ClassLine,
		DefaultSeverity: config.SeverityWarning,
		New: func(rc *lint.RuleContext) lint.Analyzer {
			return &noMultipleBlanks{
				rc:      rc,
				maximum: rc.OptionInt("maximum", 1),
			}
		},
	}
}

type noMultipleBlanks struct {
	lineScan
	rc      *lint.RuleContext
	maximum int
}

func (a *noMultipleBlanks) Finalize() []lint.Violation {
	lines := a.rc.Doc.Lines
	var found []lint.Violation

	// A trailing newline yields a synthetic empty final row; it is not a
	// blank line of the file and must not extend a run.
	last := lines.Count()
	if bytes.HasSuffix(a.rc.Doc.Content, []byte("\n")) {
		last--
	}

	run := 0
	for row := 0; row < last; row++ {
		if !isBlankLine(lines, row) || a.rc.IsLineExcluded(row) {
			run = 0
			continue
		}
		run++
		if run > a.maximum {
			v := a.rc.Violation(lint.LineRange(row, 0, 0), "Multiple consecutive blank lines")
			v.Detail = fmt.Sprintf("Expected: %d; Actual: %d", a.maximum, run)
			found = append(found, v)
		}
	}

	return found
}

// SingleTrailingNewline (MD047) checks that the file ends with exactly
// one newline character.
func SingleTrailingNewline() *lint.Descriptor {
	return &lint.Descriptor{
		ID:              "MD047",
		Alias:           "single-trailing-newline",
		Description:     "Files should end with a single newline character",
		Tags:            []string{"whitespace", "blank_lines"},
		Class:           lint.ClassDocument,
		DefaultSeverity: config.SeverityWarning,
		New: func(rc *lint.RuleContext) lint.Analyzer {
			return &singleTrailingNewline{rc: rc}
		},
	}
}

type singleTrailingNewline struct {
	lineScan
	rc *lint.RuleContext
}

func (a *singleTrailingNewline) Finalize() []lint.Violation {
	content := a.rc.Doc.Content
	if len(content) == 0 {
		return nil
	}

	ok := bytes.HasSuffix(content, []byte("\n")) &&
		!bytes.HasSuffix(content, []byte("\n\n"))
	if ok {
		return nil
	}

	lines := a.rc.Doc.Lines
	row := lines.Count() - 1
	col := lineRunes(lines, row)
	v := a.rc.Violation(lint.LineRange(row, col, col),
		"Files should end with a single newline character")
	return []lint.Violation{v}
}
