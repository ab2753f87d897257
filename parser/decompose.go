package parser

import (
	"fmt"
	"net/url"
	"strings"
)

// QueryParam holds all values observed for a single query key, in input
// order. Keys appear once; repeated keys accumulate values.
type QueryParam struct {
	Key    string
	Values []string
}

// DecomposedURL is the structural form of a single request string.
// Segments and Query preserve source order. Instances are produced fresh
// per Decompose call and are never cached.
type DecomposedURL struct {
	Method   string
	Scheme   string
	Host     string
	Segments []string
	Query    []QueryParam
}

// Decompose parses a raw request string into its structural parts. The
// method, if present, is split off first; the remainder is parsed with
// standard URL syntax. Host includes the port when one is present. Path
// segments keep their original percent-encoding; empty segments are
// dropped. The raw query string is percent-decoded once and then split on
// '&' and '='; pairs without '=' and pairs with an empty value are
// discarded, matching the reference decomposition behavior.
//
// Decompose returns an error only when the URL portion fails standard URL
// parsing. Callers in the pattern pipeline treat that as a signal to
// degrade to the raw string, never as a batch failure.
func Decompose(raw string) (*DecomposedURL, error) {
	line := SplitMethod(raw)

	u, err := url.Parse(line.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing url %q: %w", line.URL, err)
	}

	d := &DecomposedURL{
		Method: line.Method,
		Scheme: u.Scheme,
		Host:   u.Host,
	}

	// EscapedPath keeps the original encoding so that encoded separators
	// inside a segment do not change the segment count.
	for _, seg := range strings.Split(u.EscapedPath(), "/") {
		if seg != "" {
			d.Segments = append(d.Segments, seg)
		}
	}

	d.Query = splitQuery(u.RawQuery)
	return d, nil
}

// splitQuery decodes a raw query string once and splits it into ordered
// key/value groups.
func splitQuery(rawQuery string) []QueryParam {
	if rawQuery == "" {
		return nil
	}

	decoded := percentDecode(rawQuery)

	var params []QueryParam
	index := make(map[string]int)

	for _, pair := range strings.Split(decoded, "&") {
		if pair == "" {
			continue
		}
		key, value, found := strings.Cut(pair, "=")
		if !found || value == "" {
			continue
		}
		if i, ok := index[key]; ok {
			params[i].Values = append(params[i].Values, value)
			continue
		}
		index[key] = len(params)
		params = append(params, QueryParam{Key: key, Values: []string{value}})
	}

	return params
}

// percentDecode decodes %XX escapes, leaving malformed escapes untouched.
// Unlike url.QueryUnescape it never fails and never converts '+' to space.
func percentDecode(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHexDigit(s[i+1]) && isHexDigit(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func unhex(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
