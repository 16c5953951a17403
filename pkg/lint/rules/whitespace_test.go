package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoTrailingSpaces(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  map[string]any
		want  int
	}{
		{"clean lines", "one\ntwo\n", nil, 0},
		{"one trailing space", "one \ntwo\n", nil, 1},
		{"trailing tab", "one\t\n", nil, 1},
		{"hard break allowed", "line with break  \nnext\n", nil, 0},
		{"three spaces not a break", "line   \n", nil, 1},
		{"br_spaces zero flags breaks", "line  \n", map[string]any{"br_spaces": 0}, 1},
		{"blank line ignored", "one\n   \ntwo\n", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runRule(t, NoTrailingSpaces(), tt.input, tt.opts)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestNoHardTabs(t *testing.T) {
	input := "text\twith tab\n\n```\ncode\there\n```\n"

	t.Run("code_blocks default includes code", func(t *testing.T) {
		got := runRule(t, NoHardTabs(), input, nil)
		require.Len(t, got, 2)
		assert.Equal(t, 0, got[0].Range.Start.Line)
		assert.Equal(t, 3, got[1].Range.Start.Line)
	})

	t.Run("code_blocks false skips code", func(t *testing.T) {
		got := runRule(t, NoHardTabs(), input, map[string]any{"code_blocks": false})
		require.Len(t, got, 1)
		assert.Equal(t, 0, got[0].Range.Start.Line)
	})

	t.Run("code_blocks false resumes after fence", func(t *testing.T) {
		after := "```\ncode\there\n```\nafter\ttab\n"
		got := runRule(t, NoHardTabs(), after, map[string]any{"code_blocks": false})
		require.Len(t, got, 1)
		assert.Equal(t, 3, got[0].Range.Start.Line)
	})

	t.Run("no tabs", func(t *testing.T) {
		got := runRule(t, NoHardTabs(), "no tabs here\n", nil)
		assert.Empty(t, got)
	})

	t.Run("multiple tabs on one line", func(t *testing.T) {
		got := runRule(t, NoHardTabs(), "a\tb\tc\n", nil)
		assert.Len(t, got, 2)
	})
}

func TestNoMultipleBlanks(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  map[string]any
		want  int
	}{
		{"single blanks", "a\n\nb\n", nil, 0},
		{"double blank", "a\n\n\nb\n", nil, 1},
		{"triple blank", "a\n\n\n\nb\n", nil, 2},
		{"maximum two", "a\n\n\nb\n", map[string]any{"maximum": 2}, 0},
		{"blank in code fence exempt", "a\n\n```\nx\n\n\ny\n```\n", nil, 0},
		{"trailing single blank", "a\n\n", nil, 0},
		{"trailing single blank after two lines", "a\nb\n\n", nil, 0},
		{"trailing double blank", "a\n\n\n", nil, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runRule(t, NoMultipleBlanks(), tt.input, tt.opts)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestSingleTrailingNewline(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"single newline", "content\n", 0},
		{"missing newline", "content", 1},
		{"double newline", "content\n\n", 1},
		{"empty file", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runRule(t, SingleTrailingNewline(), tt.input, nil)
			assert.Len(t, got, tt.want)
		})
	}
}
