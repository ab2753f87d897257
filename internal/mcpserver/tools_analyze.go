package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/urlpatterns/clusterer"
	"github.com/erraggy/urlpatterns/exporter"
)

type analyzeInput struct {
	URLs    []string `json:"urls,omitempty"    jsonschema:"Request strings to analyze\\, one per element"`
	File    string   `json:"file,omitempty"    jsonschema:"Path to a request list file (free text or JSON array)"`
	Content string   `json:"content,omitempty" jsonschema:"Inline request list content (free text or JSON array)"`
	Top     int      `json:"top,omitempty"     jsonschema:"Number of top parent patterns in the summary. Defaults to URLPATTERNS_TOP."`
	Full    bool     `json:"full,omitempty"    jsonschema:"Include the complete result JSON. Can be large for big inputs."`
}

type topPattern struct {
	Parent string `json:"parent"`
	URI    string `json:"uri"`
	Count  int    `json:"count"`
}

type analyzeOutput struct {
	TotalURIs          int          `json:"total_uris"`
	UniquePatterns     int          `json:"unique_patterns"`
	PatternCompression float64      `json:"pattern_compression"`
	ParentPatterns     int          `json:"parent_patterns"`
	TopPatterns        []topPattern `json:"top_patterns,omitempty"`
	Result             string       `json:"result,omitempty"`
}

func handleAnalyze(_ context.Context, _ *mcp.CallToolRequest, input analyzeInput) (*mcp.CallToolResult, analyzeOutput, error) {
	urls, err := requestsInput{URLs: input.URLs, File: input.File, Content: input.Content}.resolve()
	if err != nil {
		return errResult(err), analyzeOutput{}, nil
	}

	result := clusterer.Analyze(urls)

	top := input.Top
	if top <= 0 {
		top = cfg.Top
	}
	stats := exporter.TopPatterns(result, top)

	output := analyzeOutput{
		TotalURIs:          result.Analysis.TotalURIs,
		UniquePatterns:     result.Analysis.UniquePatterns,
		PatternCompression: result.Analysis.PatternCompression,
		ParentPatterns:     result.Data.Len(),
	}

	output.TopPatterns = makeSlice[topPattern](len(stats))
	for _, s := range stats {
		output.TopPatterns = append(output.TopPatterns, topPattern{
			Parent: s.Parent,
			URI:    s.URI,
			Count:  s.Count,
		})
	}

	if input.Full {
		data, err := json.Marshal(result)
		if err != nil {
			return errResult(fmt.Errorf("encoding full result: %w", err)), analyzeOutput{}, nil
		}
		output.Result = string(data)
	}

	return nil, output, nil
}
