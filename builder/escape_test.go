package builder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLiteral(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"no metacharacters", "users/profile", "users/profile"},
		{"dots", "api.example.com", `api\.example\.com`},
		{"question mark", "a?b", `a\?b`},
		{"backslash gains exactly one escape", `a\b`, `a\\b`},
		{"parens and braces", "f(x){y}", `f\(x\)\{y\}`},
		{"brackets and pipe", "[a]|[b]", `\[a\]\|\[b\]`},
		{"anchors and quantifiers", "^a$+*", `\^a\$\+\*`},
		{"slash and colon untouched", "https://h/x", "https://h/x"},
		{"wildcard preserved", "users/(.*?)/posts", `users/(.*?)/posts`},
		{"wildcard next to metachars", "(.*?).js", `(.*?)\.js`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeLiteral(tt.in))
		})
	}
}

// Escaping must be idempotent-free in the sense that each metacharacter
// in the input gains exactly one backslash, no matter where it sits in
// the escape list.
func TestEscapeLiteral_SinglePass(t *testing.T) {
	got := EscapeLiteral(`a.b\c.d`)
	assert.Equal(t, `a\.b\\c\.d`, got)
	assert.Equal(t, 3, strings.Count(got, `\`)-strings.Count(got, `\\`), "each metacharacter escaped once")
}
