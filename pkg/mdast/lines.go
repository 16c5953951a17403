package mdast

import (
	"sort"
	"unicode/utf8"
)

// LineIndex maps byte offsets to 0-based row/column coordinates and
// segments the document content into lines. It is immutable after
// construction and index-aligned with tree node rows: line i of the
// index is row i of every node position.
type LineIndex struct {
	content []byte
	// starts holds the byte offset of the first byte of each row.
	// Always has at least one entry, even for empty content.
	starts []int
}

// NewLineIndex builds a line index over content.
// Lines are split on line-feed boundaries; CRLF endings are handled
// when slicing line content.
func NewLineIndex(content []byte) *LineIndex {
	starts := []int{0}
	for idx, ch := range content {
		if ch == '\n' && idx+1 < len(content) {
			starts = append(starts, idx+1)
		}
	}
	// A trailing newline opens a final empty row.
	if len(content) > 0 && content[len(content)-1] == '\n' {
		starts = append(starts, len(content))
	}
	return &LineIndex{content: content, starts: starts}
}

// Count returns the number of rows, including a trailing empty row
// after a final newline. Always at least 1.
func (li *LineIndex) Count() int {
	return len(li.starts)
}

// LineStart returns the byte offset of the first byte of row.
// Returns -1 for out-of-range rows.
func (li *LineIndex) LineStart(row int) int {
	if row < 0 || row >= len(li.starts) {
		return -1
	}
	return li.starts[row]
}

// Line returns the content of row without its trailing newline
// (LF or CRLF). Returns nil for out-of-range rows.
func (li *LineIndex) Line(row int) []byte {
	if row < 0 || row >= len(li.starts) {
		return nil
	}
	start := li.starts[row]
	end := len(li.content)
	if row+1 < len(li.starts) {
		end = li.starts[row+1]
	}
	// Trim the newline bytes.
	if end > start && li.content[end-1] == '\n' {
		end--
		if end > start && li.content[end-1] == '\r' {
			end--
		}
	}
	return li.content[start:end]
}

// RowCol converts a byte offset to a 0-based (row, byte column) pair.
// Offsets at or past the end of content map to the last row.
func (li *LineIndex) RowCol(offset int) (int, int) {
	if offset < 0 {
		return 0, 0
	}
	if offset > len(li.content) {
		offset = len(li.content)
	}
	// Find the last row whose start is <= offset.
	row := sort.Search(len(li.starts), func(i int) bool {
		return li.starts[i] > offset
	}) - 1
	if row < 0 {
		row = 0
	}
	return row, offset - li.starts[row]
}

// Position converts a byte offset to a 0-based position whose Character
// counts runes, not bytes, so multi-byte text reports correct columns.
func (li *LineIndex) Position(offset int) Position {
	row, byteCol := li.RowCol(offset)
	start := li.starts[row]
	char := utf8.RuneCount(li.content[start : start+byteCol])
	return Position{Line: row, Character: char}
}

// Indent returns the byte column of the first non-space, non-tab byte
// of row, or -1 if the row is blank or out of range.
func (li *LineIndex) Indent(row int) int {
	line := li.Line(row)
	if line == nil {
		return -1
	}
	for i, ch := range line {
		if ch != ' ' && ch != '\t' {
			return i
		}
	}
	return -1
}
