package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHRStyle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  map[string]any
		want  int
	}{
		{"all dashes", "a\n\n---\n\nb\n\n---\n\nc\n", nil, 0},
		{"dash then asterisk", "a\n\n---\n\nb\n\n***\n\nc\n", nil, 1},
		{"explicit style", "a\n\n***\n\nb\n", map[string]any{"style": "---"}, 1},
		{"spaced rule differs", "a\n\n---\n\nb\n\n- - -\n\nc\n", nil, 1},
		{"no rules", "just text\n", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runRule(t, HRStyle(), tt.input, tt.opts)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestHRStyle_Detail(t *testing.T) {
	got := runRule(t, HRStyle(), "a\n\n---\n\nb\n\n***\n\nc\n", nil)
	require.Len(t, got, 1)
	assert.Equal(t, 6, got[0].Range.Start.Line)
	assert.Contains(t, got[0].FullMessage(), "Expected: ---")
	assert.Contains(t, got[0].FullMessage(), "Actual: ***")
}
