package rules

import (
	"unicode/utf8"

	"github.com/yaklabco/mdstyle/pkg/mdast"
)

// Column helpers. Violations report rune columns, while most scanning
// happens over raw bytes; these convert at the reporting boundary.

// runeCol converts a byte column within row to a rune column.
func runeCol(lines *mdast.LineIndex, row, byteCol int) int {
	line := lines.Line(row)
	if byteCol > len(line) {
		byteCol = len(line)
	}
	return utf8.RuneCount(line[:byteCol])
}

// lineRunes returns the rune length of row.
func lineRunes(lines *mdast.LineIndex, row int) int {
	return utf8.RuneCount(lines.Line(row))
}

// isBlankLine reports whether row contains only spaces and tabs.
func isBlankLine(lines *mdast.LineIndex, row int) bool {
	return lines.Indent(row) == -1
}

// lineScan is embedded by analyzers that ignore the node feed and do
// all their work in Finalize over the line index.
type lineScan struct{}

func (lineScan) Feed(*mdast.Node) {}
