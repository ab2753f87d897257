package commands

import (
	"context"
	"errors"
	"flag"
	"os/signal"
	"syscall"

	"github.com/erraggy/urlpatterns/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: urlpatterns mcp\n\n")
		Writef(fs.Output(), "Run the MCP server over stdio. Intended to be launched by an MCP\n")
		Writef(fs.Output(), "client; tools: analyze, classify_segment, build_pattern.\n\n")
		Writef(fs.Output(), "Configuration via URLPATTERNS_MAX_URLS and URLPATTERNS_TOP env vars.\n")
	}

	return fs
}

// HandleMCP executes the mcp command. It blocks until the client
// disconnects or the process is signalled.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	return mcpserver.Run(ctx)
}
