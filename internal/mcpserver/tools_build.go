package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/urlpatterns/builder"
)

type buildInput struct {
	URL        string `json:"url"                  jsonschema:"The raw request string to normalize"`
	Aggressive bool   `json:"aggressive,omitempty" jsonschema:"Also wildcard digit-bearing path segments and volatile query values"`
	Escape     bool   `json:"escape,omitempty"     jsonschema:"Backslash-escape regex metacharacters in literal parts"`
}

type buildOutput struct {
	Pattern    string `json:"pattern"`
	Aggressive bool   `json:"aggressive"`
	Escaped    bool   `json:"escaped"`
}

func handleBuild(_ context.Context, _ *mcp.CallToolRequest, input buildInput) (*mcp.CallToolResult, buildOutput, error) {
	if input.URL == "" {
		return errResult(fmt.Errorf("url is required")), buildOutput{}, nil
	}

	b := builder.Builder{Aggressive: input.Aggressive, Escape: input.Escape}
	return nil, buildOutput{
		Pattern:    b.Build(input.URL),
		Aggressive: input.Aggressive,
		Escaped:    input.Escape,
	}, nil
}
