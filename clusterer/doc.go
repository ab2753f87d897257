// Package clusterer groups raw request strings into a two-level pattern
// hierarchy and reports compression metrics over the result.
//
// Clustering runs in two stages. First every request is normalized to
// its aggressive, escaped parent pattern; requests sharing a parent
// form a group. Then each group is refined by the conservative
// sub-pattern: sub-groups that still generalize usefully surface as a
// single entry with a count, while sub-groups that collapse back to the
// parent or cover a single request surface as literal request entries.
//
// Group order follows first appearance in the input, and the ordering
// survives JSON marshaling.
package clusterer
