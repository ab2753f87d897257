package main

import (
	"fmt"
	"os"

	"github.com/erraggy/urlpatterns"
	"github.com/erraggy/urlpatterns/cmd/urlpatterns/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("urlpatterns v%s\n", urlpatterns.Version())
	case "help", "-h", "--help":
		printUsage()
	case "analyze":
		if err := commands.HandleAnalyze(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "serve":
		if err := commands.HandleServe(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// knownCommands are the commands offered as typo suggestions.
var knownCommands = []string{"analyze", "serve", "mcp", "version", "help"}

// suggestCommand returns the closest known command within edit
// distance 2, or the empty string when nothing is close enough.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, cmd := range knownCommands {
		if d := editDistance(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Printf("urlpatterns v%s - URL pattern inference and clustering\n\n", urlpatterns.Version())
	fmt.Println("Usage: urlpatterns <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  analyze   Cluster a request list into wildcard patterns")
	fmt.Println("  serve     Run the HTTP analysis API")
	fmt.Println("  mcp       Run the MCP server over stdio")
	fmt.Println("  version   Print version information")
	fmt.Println("  help      Show this help message")
	fmt.Println()
	fmt.Println("Run 'urlpatterns <command> -h' for command-specific flags.")
}
