package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/urlpatterns/classifier"
)

type classifyInput struct {
	Segment string `json:"segment" jsonschema:"The path segment or query value to classify"`
}

type classifyOutput struct {
	Segment  string `json:"segment"`
	Volatile bool   `json:"volatile"`
	Rule     string `json:"rule"`
}

func handleClassify(_ context.Context, _ *mcp.CallToolRequest, input classifyInput) (*mcp.CallToolResult, classifyOutput, error) {
	if input.Segment == "" {
		return errResult(fmt.Errorf("segment is required")), classifyOutput{}, nil
	}

	rule := classifier.Classify(input.Segment)
	return nil, classifyOutput{
		Segment:  input.Segment,
		Volatile: rule != classifier.RuleNone,
		Rule:     string(rule),
	}, nil
}
