// Package exporter serializes clustering results to JSON, YAML, and a
// flattened CSV form, and derives the summary statistics used by the
// CLI text report and the demo view.
package exporter
