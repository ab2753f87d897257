package exporter

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/urlpatterns/clusterer"
	"github.com/erraggy/urlpatterns/uperrors"
)

// csvHeader is the flattened CSV layout: one row per entry, with the
// entry's sub-patterns joined into a single column.
var csvHeader = []string{"Parent Pattern", "URI Pattern", "SubPatterns Count", "SubPatterns"}

// WriteJSON writes the result as JSON, optionally indented. Group
// order is preserved.
func WriteJSON(w io.Writer, result *clusterer.Result, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(result); err != nil {
		return &uperrors.ExportError{Format: "json", Message: "encoding result", Cause: err}
	}
	return nil
}

// WriteYAML writes the result as YAML. The document is built from
// explicit mapping nodes so parents keep their insertion order.
func WriteYAML(w io.Writer, result *clusterer.Result) error {
	doc := yamlDocument(result)
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(doc); err != nil {
		return &uperrors.ExportError{Format: "yaml", Message: "encoding result", Cause: err}
	}
	if err := enc.Close(); err != nil {
		return &uperrors.ExportError{Format: "yaml", Message: "flushing encoder", Cause: err}
	}
	return nil
}

// yamlDocument rebuilds the result as ordered yaml nodes so parents
// keep their insertion order in the output.
func yamlDocument(result *clusterer.Result) *yaml.Node {
	data := &yaml.Node{Kind: yaml.MappingNode}
	for _, parent := range result.Data.Keys() {
		entries, _ := result.Data.Get(parent)
		var entriesNode yaml.Node
		if err := entriesNode.Encode(entries); err != nil {
			// Entries are plain structs; encoding them cannot fail.
			entriesNode = yaml.Node{Kind: yaml.SequenceNode}
		}
		data.Content = append(data.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: parent},
			&entriesNode,
		)
	}

	var analysisNode yaml.Node
	_ = analysisNode.Encode(result.Analysis)

	return &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: "analysis"},
			&analysisNode,
			{Kind: yaml.ScalarNode, Value: "data"},
			data,
		},
	}
}

// WriteCSV writes the flattened entry rows with a header line.
func WriteCSV(w io.Writer, result *clusterer.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return &uperrors.ExportError{Format: "csv", Message: "writing header", Cause: err}
	}
	for _, parent := range result.Data.Keys() {
		entries, _ := result.Data.Get(parent)
		for _, e := range entries {
			row := []string{
				parent,
				e.URI,
				strconv.Itoa(len(e.SubPatterns)),
				strings.Join(e.SubPatterns, " | "),
			}
			if err := cw.Write(row); err != nil {
				return &uperrors.ExportError{Format: "csv", Message: "writing row", Cause: err}
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return &uperrors.ExportError{Format: "csv", Message: "flushing writer", Cause: err}
	}
	return nil
}
