package builder

import "strings"

// IsSubPatternOf reports whether candidate refines parent: the two
// patterns must have identical structure around the query delimiters,
// candidate must not use more wildcards than parent, and candidate may
// put anything where parent has a standalone wildcard. A pattern is
// never a sub-pattern of itself.
func IsSubPatternOf(candidate, parent string) bool {
	if candidate == parent {
		return false
	}

	if strings.Count(candidate, Wildcard) > strings.Count(parent, Wildcard) {
		return false
	}

	parentParts := splitOnDelims(strings.ReplaceAll(parent, Wildcard, wildcardPlaceholder))
	candidateParts := splitOnDelims(strings.ReplaceAll(candidate, Wildcard, wildcardPlaceholder))

	if len(parentParts) != len(candidateParts) {
		return false
	}

	for i, p := range parentParts {
		if p == wildcardPlaceholder {
			continue
		}
		if p != candidateParts[i] {
			return false
		}
	}
	return true
}

// splitOnDelims splits s at '?', '&', and '=' while keeping each
// delimiter as its own part, so the delimiters themselves take part in
// the structural comparison.
func splitOnDelims(s string) []string {
	parts := make([]string, 0, 8)
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '?', '&', '=':
			parts = append(parts, s[start:i], string(s[i]))
			start = i + 1
		}
	}
	return append(parts, s[start:])
}
