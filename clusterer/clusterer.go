package clusterer

import (
	"strings"

	"github.com/erraggy/urlpatterns/builder"
	"github.com/erraggy/urlpatterns/parser"
)

// Clusterer groups raw request strings into the two-level pattern
// hierarchy. The zero value is ready to use.
type Clusterer struct {
	// Logger receives warnings from the underlying pattern builders.
	// Defaults to NopLogger.
	Logger parser.Logger
}

// New creates a Clusterer with default settings.
func New() *Clusterer {
	return &Clusterer{Logger: parser.NopLogger{}}
}

// Result is the full outcome of a clustering run.
type Result struct {
	Analysis Analysis       `json:"analysis"`
	Data     *PatternGroups `json:"data"`
}

// Cluster groups urls by parent pattern, refines each group by
// sub-pattern, and computes the compression metrics. Input order
// determines group order. Duplicate inputs are counted, not collapsed.
func (c *Clusterer) Cluster(urls []string) *Result {
	logger := c.Logger
	if logger == nil {
		logger = parser.NopLogger{}
	}

	groups := NewPatternGroups()
	if len(urls) == 0 {
		return &Result{Analysis: Analysis{}, Data: groups}
	}

	parentBuilder := builder.Builder{Aggressive: true, Escape: true, Logger: logger}

	var parents []string
	members := make(map[string][]string)
	for _, url := range urls {
		parent := parentBuilder.Build(url)
		if _, ok := members[parent]; !ok {
			parents = append(parents, parent)
		}
		members[parent] = append(members[parent], url)
	}

	for _, parent := range parents {
		groups.Set(parent, c.refine(members[parent], parent, logger))
	}

	result := &Result{Data: groups}
	result.Analysis = computeAnalysis(len(urls), groups)
	return result
}

// refine splits one parent group by sub-pattern. Sub-groups whose
// pattern collapses back to the parent, and sub-groups covering a
// single request, surface as literal request entries; the rest surface
// as one sub-pattern entry with a count.
func (c *Clusterer) refine(urls []string, parent string, logger parser.Logger) []ClusterEntry {
	if len(urls) == 1 {
		return []ClusterEntry{literalEntry(urls[0])}
	}

	subBuilder := builder.Builder{Logger: logger}

	var subs []string
	members := make(map[string][]string)
	for _, url := range urls {
		sub := subBuilder.Build(url)
		if _, ok := members[sub]; !ok {
			subs = append(subs, sub)
		}
		members[sub] = append(members[sub], url)
	}

	// The parent carries escaping that sub-patterns never have; strip
	// it before comparing the two levels.
	parentClean := strings.ReplaceAll(parent, `\`, "")

	var entries []ClusterEntry
	for _, sub := range subs {
		subURLs := members[sub]
		if sub == parentClean || len(subURLs) == 1 {
			for _, url := range subURLs {
				entries = append(entries, literalEntry(url))
			}
			continue
		}
		entries = append(entries, ClusterEntry{
			URI:         sub,
			SubPatterns: []string{},
			Count:       len(subURLs),
		})
	}
	return entries
}

func literalEntry(url string) ClusterEntry {
	return ClusterEntry{URI: url, SubPatterns: []string{}, Count: 1}
}
