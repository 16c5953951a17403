package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineLength(t *testing.T) {
	long := strings.Repeat("a", 90)

	tests := []struct {
		name  string
		input string
		opts  map[string]any
		want  int
	}{
		{"short lines", "short\nlines\n", nil, 0},
		{"exactly at limit", strings.Repeat("a", 80) + "\n", nil, 0},
		{"one over default limit", long + "\n", nil, 1},
		{"raised limit", long + "\n", map[string]any{"line_length": 100}, 0},
		{"two long lines", long + "\n" + long + "\n", nil, 2},
		{
			"code exempt when disabled",
			"```\n" + long + "\n```\n",
			map[string]any{"code_blocks": false},
			0,
		},
		{
			"heading exempt when disabled",
			"# " + long + "\n",
			map[string]any{"headings": false},
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runRule(t, LineLength(), tt.input, tt.opts)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestLineLength_CountsRunes(t *testing.T) {
	// 85 multi-byte runes must be flagged as 85, not as their byte count.
	input := strings.Repeat("é", 85) + "\n"
	got := runRule(t, LineLength(), input, nil)
	require.Len(t, got, 1)
	assert.Equal(t, 80, got[0].Range.Start.Character)
	assert.Equal(t, 85, got[0].Range.End.Character)
	assert.Contains(t, got[0].FullMessage(), "Actual: 85")
}
