// Package urlpatterns provides tools for inferring generalized URL patterns
// from raw HTTP request strings and organizing them into a two-level
// hierarchy of parent patterns and sub-patterns.
//
// Given a list of request lines such as:
//
//	GET https://api.example.com/services/users/812345 HTTP/1.1
//	GET https://api.example.com/services/users/997210 HTTP/1.1
//	POST https://api.example.com/services/users HTTP/1.1
//
// urlpatterns replaces volatile components (UUIDs, hex identifiers, long
// numeric IDs, high-entropy query values) with the wildcard token (.*?),
// groups requests that share a generalized shape, and reports how much the
// input compresses into distinct patterns.
//
// # Overview
//
// The library consists of five primary packages:
//
//   - parser: Decompose raw request strings into method, scheme, host,
//     path segments, and ordered query parameters
//   - classifier: Decide whether a path segment or query value is a stable
//     literal or a volatile identifier
//   - builder: Construct wildcard patterns from decomposed URLs, with
//     configurable aggressiveness and regex-metacharacter escaping
//   - clusterer: Group URLs by parent pattern, detect sub-patterns inside
//     each group, and compute compression metrics
//   - exporter: Serialize analysis results as JSON, YAML, or flattened CSV
//     and derive report statistics
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/urlpatterns
//
// # Quick Start
//
// Analyze a list of request lines:
//
//	import "github.com/erraggy/urlpatterns/clusterer"
//
//	result := clusterer.Analyze([]string{
//		"GET https://api.example.com/v1/users/550e8400-e29b-41d4-a716-446655440000 HTTP/1.1",
//		"GET https://api.example.com/v1/users/7c9e6679-7425-40de-944b-e07fc1f90ae7 HTTP/1.1",
//	})
//	fmt.Printf("patterns: %d compression: %.1f%%\n",
//		result.Analysis.UniquePatterns, result.Analysis.PatternCompression)
//
// Build a single pattern:
//
//	import "github.com/erraggy/urlpatterns/builder"
//
//	parent := builder.ParentPattern("GET https://api.example.com/v1/users/812345")
//	// "GET https://api\.example\.com/v1/users/(.*?)"
//
// # Command Line
//
// The urlpatterns CLI exposes the same capabilities:
//
//	urlpatterns analyze requests.json
//	urlpatterns analyze -format csv -o patterns.csv requests.txt
//	cat access.log | urlpatterns analyze -format json -
//	urlpatterns serve
//	urlpatterns mcp
//
// # Pattern Semantics
//
// Patterns are template strings containing the literal wildcard token (.*?);
// they are not compiled regular expressions and are not intended for
// production request routing. Two pattern variants are produced per URL: an
// aggressive, escaped parent pattern used for top-level grouping, and a
// lenient, unescaped sub pattern used to organize each group. A candidate
// pattern is a sub-pattern of a parent when it has the same delimiter
// structure, no more wildcards, and matches the parent literally at every
// position where the parent is not a wildcard.
package urlpatterns
