package clusterer

import (
	"math"
	"strings"

	"github.com/erraggy/urlpatterns/builder"
)

// Analysis summarizes how well clustering compressed the input.
type Analysis struct {
	// TotalURIs is the number of input requests, duplicates included.
	TotalURIs int `json:"totalUris"`

	// UniquePatterns is the number of distinct surfaced patterns:
	// every parent plus every entry URI that itself looks like a
	// pattern rather than a literal request.
	UniquePatterns int `json:"uniquePatterns"`

	// PatternCompression is (1 - UniquePatterns/TotalURIs) * 100,
	// rounded to one decimal place. Zero when there is no input.
	PatternCompression float64 `json:"patternCompression"`
}

// metaChars are the characters that mark an entry URI as pattern-like
// when it carries no wildcard. '/' and ':' appear in every URL and are
// excluded.
const metaChars = ".^$*+?{}[]\\|()"

func computeAnalysis(total int, groups *PatternGroups) Analysis {
	if total == 0 {
		return Analysis{}
	}

	surfaced := make(map[string]struct{})
	for _, parent := range groups.Keys() {
		surfaced[parent] = struct{}{}
		entries, _ := groups.Get(parent)
		for _, e := range entries {
			if patternLike(e.URI) {
				surfaced[e.URI] = struct{}{}
			}
			for _, sub := range e.SubPatterns {
				surfaced[sub] = struct{}{}
			}
		}
	}

	unique := len(surfaced)
	compression := math.Round((1-float64(unique)/float64(total))*100*10) / 10

	return Analysis{
		TotalURIs:          total,
		UniquePatterns:     unique,
		PatternCompression: compression,
	}
}

// patternLike reports whether an entry URI should count as a pattern in
// the uniquePatterns metric. Any wildcard qualifies, as does any regex
// metacharacter, so a literal URL with dots in its host also counts.
func patternLike(uri string) bool {
	return strings.Contains(uri, builder.Wildcard) || strings.ContainsAny(uri, metaChars)
}
