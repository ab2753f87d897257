package builder

import (
	"regexp"
	"strings"

	"github.com/erraggy/urlpatterns/classifier"
	"github.com/erraggy/urlpatterns/parser"
)

// Aggressive-mode thresholds. Path segments and query values shorter
// than these always survive as literals.
const (
	// maxLiteralSegmentLen is the longest digit-bearing path segment
	// kept literal before the segment-part rule is consulted.
	maxLiteralSegmentLen = 8
	// maxLiteralPartLen is the longest all-digit part within a split
	// segment still treated as literal.
	maxLiteralPartLen = 3
	// maxLiteralValueLen is the longest query value kept literal
	// regardless of its shape.
	maxLiteralValueLen = 15
)

var (
	// segmentPartRe splits a path segment into parts at common
	// separator characters for the aggressive digit check.
	segmentPartRe = regexp.MustCompile(`[_\-. ]`)
	// hexDashValueRe matches hex-and-dash query values such as
	// truncated UUIDs or request trace IDs.
	hexDashValueRe = regexp.MustCompile(`^[a-fA-F0-9-]{12,}$`)
)

// Builder normalizes raw request strings into wildcard patterns.
// The zero value produces unescaped sub-patterns; set Aggressive and
// Escape for parent patterns.
type Builder struct {
	// Aggressive additionally wildcards digit-bearing path segments
	// and volatile query values.
	Aggressive bool

	// Escape backslash-escapes regex metacharacters in literal parts
	// of the pattern.
	Escape bool

	// Logger receives a warning when a request cannot be parsed and
	// the builder degrades to the raw string. Defaults to NopLogger.
	Logger parser.Logger
}

// New creates a Builder with default settings.
func New() *Builder {
	return &Builder{Logger: parser.NopLogger{}}
}

// Build normalizes a single raw request string into a pattern.
//
// Build never fails: when the URL portion cannot be parsed the raw
// string itself is returned, escaped if Escape is set, so one bad
// request degrades to a literal group instead of failing a batch.
func (b *Builder) Build(raw string) string {
	logger := b.Logger
	if logger == nil {
		logger = parser.NopLogger{}
	}

	d, err := parser.Decompose(raw)
	if err != nil {
		logger.Warn("degrading unparsable request to a literal pattern", "request", raw, "error", err)
		if b.Escape {
			return EscapeLiteral(raw)
		}
		return raw
	}

	scheme := d.Scheme
	host := d.Host
	if b.Escape {
		scheme = EscapeLiteral(scheme)
		host = EscapeLiteral(host)
	}

	segments := make([]string, 0, len(d.Segments))
	for _, seg := range d.Segments {
		segments = append(segments, b.buildSegment(seg))
	}

	var sb strings.Builder
	sb.WriteString(scheme)
	sb.WriteString("://")
	sb.WriteString(host)
	sb.WriteString("/")
	sb.WriteString(strings.Join(segments, "/"))

	if parts := b.buildQuery(d.Query); len(parts) > 0 {
		if b.Escape {
			sb.WriteString(`\?`)
		} else {
			sb.WriteString("?")
		}
		sb.WriteString(strings.Join(parts, "&"))
	}

	pattern := sb.String()
	if d.Method != "" {
		pattern = d.Method + " " + pattern
	}
	return pattern
}

// buildSegment normalizes one path segment.
func (b *Builder) buildSegment(seg string) string {
	if classifier.IsVolatile(seg) {
		return Wildcard
	}

	if b.Aggressive && containsDigit(seg) && len(seg) > maxLiteralSegmentLen {
		for _, part := range segmentPartRe.Split(seg, -1) {
			if classifier.IsAllDigits(part) && len(part) > maxLiteralPartLen {
				return Wildcard
			}
		}
	}

	if b.Escape {
		return EscapeLiteral(seg)
	}
	return seg
}

// buildQuery normalizes query parameters into key=value parts, one per
// observed value, preserving input order.
func (b *Builder) buildQuery(params []parser.QueryParam) []string {
	var parts []string
	for _, p := range params {
		key := p.Key
		if b.Escape {
			key = EscapeLiteral(key)
		}
		for _, value := range p.Values {
			if b.Aggressive && volatileQueryValue(value) {
				parts = append(parts, key+"="+Wildcard)
				continue
			}
			if b.Escape {
				value = EscapeLiteral(value)
			}
			parts = append(parts, key+"="+value)
		}
	}
	return parts
}

// volatileQueryValue reports whether a query value should be wildcarded
// in aggressive mode. Query values are generalized more eagerly than
// path segments: any all-digit value, any long hex-and-dash value, and
// any value over 15 characters is treated as volatile.
func volatileQueryValue(value string) bool {
	return classifier.IsAllDigits(value) ||
		hexDashValueRe.MatchString(value) ||
		len(value) > maxLiteralValueLen ||
		classifier.IsVolatile(value)
}

func containsDigit(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			return true
		}
	}
	return false
}

// ParentPattern builds the aggressive, escaped pattern used as the top
// level of the hierarchy.
func ParentPattern(raw string) string {
	b := Builder{Aggressive: true, Escape: true, Logger: parser.NopLogger{}}
	return b.Build(raw)
}

// SubPattern builds the conservative, unescaped pattern used to refine
// groups beneath a parent.
func SubPattern(raw string) string {
	b := Builder{Logger: parser.NopLogger{}}
	return b.Build(raw)
}
