package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSubPatternOf(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		parent    string
		want      bool
	}{
		{
			name:      "literal query value under wildcarded value",
			candidate: "https://h/items?id=42",
			parent:    "https://h/items?id=(.*?)",
			want:      true,
		},
		{
			name:      "equal patterns never refine each other",
			candidate: "https://h/items?id=(.*?)",
			parent:    "https://h/items?id=(.*?)",
			want:      false,
		},
		{
			name:      "candidate with more wildcards",
			candidate: "https://h/items?id=(.*?)&tab=(.*?)",
			parent:    "https://h/items?id=(.*?)&tab=summary",
			want:      false,
		},
		{
			name:      "different structure",
			candidate: "https://h/items?id=42&tab=summary",
			parent:    "https://h/items?id=(.*?)",
			want:      false,
		},
		{
			name:      "literal mismatch outside wildcard",
			candidate: "https://h/other?id=42",
			parent:    "https://h/items?id=(.*?)",
			want:      false,
		},
		{
			name:      "wildcard embedded in a larger part does not refine",
			candidate: "https://h/users/123456/posts",
			parent:    "https://h/users/(.*?)/posts",
			want:      false,
		},
		{
			name:      "whole part wildcard accepts anything",
			candidate: "https://h/users?token=abc",
			parent:    "(.*?)?token=(.*?)",
			want:      true,
		},
		{
			name:      "multiple wildcarded values",
			candidate: "https://h/t?a=1&b=2",
			parent:    "https://h/t?a=(.*?)&b=(.*?)",
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSubPatternOf(tt.candidate, tt.parent))
		})
	}
}

func TestSplitOnDelims(t *testing.T) {
	assert.Equal(t, []string{"a", "?", "b", "=", "c"}, splitOnDelims("a?b=c"))
	assert.Equal(t, []string{"a", "?", "", "?", ""}, splitOnDelims("a??"))
	assert.Equal(t, []string{"plain"}, splitOnDelims("plain"))
	assert.Equal(t, []string{"", "=", ""}, splitOnDelims("="))
}
