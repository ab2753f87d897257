package builder

import "strings"

// Wildcard is the token substituted for volatile parts of a request.
// It doubles as a lazy regex capture group when patterns are used for
// matching downstream.
const Wildcard = "(.*?)"

// wildcardPlaceholder protects existing wildcards while literal text is
// being escaped, so a wildcard's own metacharacters are never escaped.
const wildcardPlaceholder = "___WILDCARD___"

// SpecialChars are the regex metacharacters escaped in literal pattern
// text. '/' and ':' are intentionally absent so URLs stay readable.
var SpecialChars = []rune{'.', '^', '$', '*', '+', '?', '{', '}', '[', ']', '\\', '|', '(', ')'}

var specialSet = func() map[rune]bool {
	m := make(map[rune]bool, len(SpecialChars))
	for _, c := range SpecialChars {
		m[c] = true
	}
	return m
}()

// EscapeLiteral backslash-escapes every regex metacharacter in text
// while leaving embedded wildcards intact. Each metacharacter gains
// exactly one backslash; escaping is a single pass, so a backslash in
// the input becomes "\\" and nothing is escaped twice.
func EscapeLiteral(text string) string {
	if text == "" {
		return text
	}

	protected := strings.ReplaceAll(text, Wildcard, wildcardPlaceholder)

	var b strings.Builder
	b.Grow(len(protected) + 8)
	for _, r := range protected {
		if specialSet[r] {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}

	return strings.ReplaceAll(b.String(), wildcardPlaceholder, Wildcard)
}
