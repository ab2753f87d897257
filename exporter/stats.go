package exporter

import (
	"sort"

	"github.com/erraggy/urlpatterns/clusterer"
)

// Distribution counts the two kinds of surfaced rows: entries under a
// parent, and the deeper sub-patterns those entries carry.
type Distribution struct {
	URIPatterns int
	SubPatterns int
}

// ComputeDistribution tallies the entry rows in a result.
func ComputeDistribution(result *clusterer.Result) Distribution {
	var d Distribution
	for _, parent := range result.Data.Keys() {
		entries, _ := result.Data.Get(parent)
		for _, e := range entries {
			d.URIPatterns++
			d.SubPatterns += len(e.SubPatterns)
		}
	}
	return d
}

// PatternStat is one entry row paired with its parent, used for the
// top-patterns report.
type PatternStat struct {
	Parent string
	URI    string
	Count  int
}

// TopPatterns returns the n entries covering the most requests.
// Ties keep first-seen order. n <= 0 returns all entries.
func TopPatterns(result *clusterer.Result, n int) []PatternStat {
	var stats []PatternStat
	for _, parent := range result.Data.Keys() {
		entries, _ := result.Data.Get(parent)
		for _, e := range entries {
			stats = append(stats, PatternStat{Parent: parent, URI: e.URI, Count: e.Count})
		}
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})

	if n > 0 && n < len(stats) {
		stats = stats[:n]
	}
	return stats
}
