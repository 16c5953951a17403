package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoReversedLinks(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"correct link", "See [text](https://example.com) here.\n", 0},
		{"reversed link", "See (text)[https://example.com] here.\n", 1},
		{"two reversed links", "(a)[x] and (b)[y]\n", 2},
		{"inside code fence ignored", "```\n(a)[x]\n```\n", 0},
		{"inside html block ignored", "<div>\n(a)[x]\n</div>\n", 0},
		{"plain parens and brackets", "Call f(x) on list[0].\n", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runRule(t, NoReversedLinks(), tt.input, nil)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestNoReversedLinks_Range(t *testing.T) {
	got := runRule(t, NoReversedLinks(), "See (text)[url] here.\n", nil)
	require.Len(t, got, 1)
	assert.Equal(t, 4, got[0].Range.Start.Character)
	assert.Equal(t, 15, got[0].Range.End.Character)
	assert.Contains(t, got[0].FullMessage(), "(text)[url]")
}
