package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/erraggy/urlpatterns/httpapi"
	"github.com/erraggy/urlpatterns/parser"
)

// shutdownTimeout bounds how long in-flight requests may run after a
// shutdown signal before the server gives up on them.
const shutdownTimeout = 15 * time.Second

// ServeFlags contains flags for the serve command
type ServeFlags struct {
	Addr string
}

// SetupServeFlags creates and configures a FlagSet for the serve command.
func SetupServeFlags() (*flag.FlagSet, *ServeFlags) {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	flags := &ServeFlags{}

	fs.StringVar(&flags.Addr, "addr", "", "listen address (overrides HTTP_ADDR, default :8080)")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: urlpatterns serve [flags]\n\n")
		Writef(fs.Output(), "Run the HTTP analysis API.\n\n")
		Writef(fs.Output(), "Endpoints:\n")
		Writef(fs.Output(), "  POST /analyze   Cluster the request list in the JSON body\n")
		Writef(fs.Output(), "  GET  /health    Health check\n")
		Writef(fs.Output(), "  GET  /metrics   Internal counters as plain text\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nConfiguration is read from HTTP_ADDR, MAX_BODY_SIZE, READ_TIMEOUT,\n")
		Writef(fs.Output(), "WRITE_TIMEOUT, and IDLE_TIMEOUT env vars; a .env file is honored.\n")
	}

	return fs, flags
}

// HandleServe executes the serve command. It blocks until the process
// receives SIGTERM or SIGINT, then shuts down gracefully.
func HandleServe(args []string) error {
	fs, flags := SetupServeFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	logger := parser.NewSlogAdapter(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg := httpapi.LoadConfig(logger)
	if flags.Addr != "" {
		cfg.Addr = flags.Addr
	}

	h := httpapi.NewHandler(cfg, httpapi.NewMetrics(), logger)
	srv := httpapi.NewServer(cfg, h)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

		sig := <-sigCh
		logger.Info("shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("http shutdown", "error", err)
		}
	}()

	logger.Info("analysis server listening", "addr", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server terminated: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
