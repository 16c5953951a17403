package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFencedCodeLanguage(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"language present", "```go\npackage main\n```\n", 0},
		{"language missing", "```\nsome code\n```\n", 1},
		{"indented block exempt", "    indented code\n", 0},
		{"two bare fences", "```\na\n```\n\n```\nb\n```\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runRule(t, FencedCodeLanguage(), tt.input, nil)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestFencedCodeLanguage_Suggestion(t *testing.T) {
	got := runRule(t, FencedCodeLanguage(), "```\npackage main\n\nfunc main() {}\n```\n", nil)
	require.Len(t, got, 1)
	assert.Equal(t, "MD040", got[0].RuleID)
	assert.Equal(t, 0, got[0].Range.Start.Line)
	assert.Contains(t, got[0].FullMessage(), "Suggested: go")
}

func TestCodeFenceStyle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  map[string]any
		want  int
	}{
		{"all backticks", "```go\na\n```\n\n```go\nb\n```\n", nil, 0},
		{"backtick then tilde", "```go\na\n```\n\n~~~go\nb\n~~~\n", nil, 1},
		{"explicit tilde flags backtick", "```go\na\n```\n", map[string]any{"style": "tilde"}, 1},
		{"indented blocks ignored", "    code\n", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runRule(t, CodeFenceStyle(), tt.input, tt.opts)
			assert.Len(t, got, tt.want)
		})
	}
}
