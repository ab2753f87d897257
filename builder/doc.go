// Package builder turns raw request strings into wildcard patterns.
//
// A pattern is the original request with volatile tokens replaced by the
// wildcard "(.*?)". Two normalization strengths exist:
//
//   - sub-pattern (non-aggressive): only tokens the classifier flags as
//     volatile are wildcarded, and the result is left unescaped
//   - parent pattern (aggressive): additionally wildcards digit-bearing
//     path segments and volatile query values, and escapes regex
//     metacharacters in the literal parts
//
// The clusterer groups requests by parent pattern and then refines each
// group by sub-pattern, so the two strengths form the two levels of the
// pattern hierarchy.
package builder
