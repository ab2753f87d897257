// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes urlpatterns capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/urlpatterns"
)

const serverInstructions = `urlpatterns MCP server — clusters raw HTTP request strings into wildcard patterns and reports compression metrics.

Configuration: All defaults are configurable via URLPATTERNS_* environment variables set in your MCP client config.

Key settings:
- URLPATTERNS_MAX_URLS (default: 100000) — maximum request list size per analyze call
- URLPATTERNS_TOP (default: 20) — default number of parent patterns in analyze summaries

Patterns use the wildcard token (.*?) for volatile parts (UUIDs, long numeric IDs, hashes). The analyze tool returns summary metrics by default; use full=true for the complete hierarchy JSON.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "urlpatterns", Version: urlpatterns.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze",
		Description: "Cluster HTTP request strings into a two-level wildcard pattern hierarchy. Accepts a request list via urls (array), file (path), or content (inline text or JSON array). Returns totals, compression, and the top parent patterns by coverage; use top to change how many, full=true to include the complete result JSON. List size is capped via URLPATTERNS_MAX_URLS.",
	}, handleAnalyze)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "classify_segment",
		Description: "Decide whether a single path segment or query value looks like a volatile identifier (UUID, long numeric ID, hex hash, fingerprinted asset name). Returns the verdict and the matching rule.",
	}, handleClassify)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "build_pattern",
		Description: "Normalize one raw request string into a wildcard pattern. aggressive=true additionally wildcards digit-bearing path segments and volatile query values; escape=true backslash-escapes regex metacharacters in literal parts. Defaults produce the conservative sub-pattern form.",
	}, handleBuild)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
