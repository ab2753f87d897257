package parser

import (
	"regexp"
	"strings"
)

// Methods is the fixed set of HTTP methods recognized at the start of a
// request line. Matching is case-sensitive.
var Methods = []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS", "HEAD"}

// requestLineRe matches "<METHOD> <url> [HTTP/x.y]" where the URL is an
// absolute http(s) URL with no embedded whitespace.
var requestLineRe = regexp.MustCompile(`^(GET|POST|PUT|DELETE|PATCH|OPTIONS|HEAD)\s+(https?://\S+)(?:\s+HTTP/\d\.\d)?$`)

// RequestLine is the parsed form of a raw request string. Method is empty
// when the raw text did not carry one.
type RequestLine struct {
	Method string
	URL    string
}

// SplitMethod extracts the HTTP method and URL portion from a raw request
// string. Surrounding whitespace and double quotes are stripped first. If
// the string does not match the request-line shape, Method is empty and URL
// is the whole stripped string.
func SplitMethod(raw string) RequestLine {
	clean := strings.TrimSpace(raw)
	clean = strings.Trim(clean, `"`)

	if m := requestLineRe.FindStringSubmatch(clean); m != nil {
		return RequestLine{Method: m[1], URL: m[2]}
	}
	return RequestLine{URL: clean}
}

// IsMethod reports whether s is one of the recognized HTTP methods.
func IsMethod(s string) bool {
	for _, m := range Methods {
		if s == m {
			return true
		}
	}
	return false
}
