package httpapi

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/erraggy/urlpatterns/parser"
)

// Defaults for every Config field. The server runs with no environment
// at all; env vars only override.
const (
	DefaultAddr         = ":8080"
	DefaultMaxBodySize  = int64(1 << 20) // 1 MiB of request lines is roughly 10k URLs
	DefaultReadTimeout  = 8 * time.Second
	DefaultWriteTimeout = 15 * time.Second
	DefaultIdleTimeout  = 60 * time.Second
)

// Config holds the HTTP server settings. Values are fixed at load time
// and never change while the server runs.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// MaxBodySize caps a single request body in bytes. Oversized
	// bodies are rejected with 413.
	MaxBodySize int64

	// Server timeouts. Analysis is CPU-bound and fast; short read and
	// write timeouts keep slow connections from pinning resources.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DefaultConfig returns a Config with all defaults applied.
func DefaultConfig() Config {
	return Config{
		Addr:         DefaultAddr,
		MaxBodySize:  DefaultMaxBodySize,
		ReadTimeout:  DefaultReadTimeout,
		WriteTimeout: DefaultWriteTimeout,
		IdleTimeout:  DefaultIdleTimeout,
	}
}

// LoadConfig builds a Config from the environment, after overlaying a
// .env file when one exists in the working directory. Malformed values
// log a warning and fall back to the default rather than failing
// startup.
func LoadConfig(logger parser.Logger) Config {
	if logger == nil {
		logger = parser.NopLogger{}
	}

	// A missing .env file is the normal case outside development.
	_ = godotenv.Load()

	cfg := DefaultConfig()
	cfg.Addr = envString("HTTP_ADDR", cfg.Addr)
	cfg.MaxBodySize = envInt64(logger, "MAX_BODY_SIZE", cfg.MaxBodySize)
	cfg.ReadTimeout = envDuration(logger, "READ_TIMEOUT", cfg.ReadTimeout)
	cfg.WriteTimeout = envDuration(logger, "WRITE_TIMEOUT", cfg.WriteTimeout)
	cfg.IdleTimeout = envDuration(logger, "IDLE_TIMEOUT", cfg.IdleTimeout)
	return cfg
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt64(logger parser.Logger, key string, def int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		logger.Warn("ignoring invalid env value", "key", key, "value", v)
		return def
	}
	return n
}

func envDuration(logger parser.Logger, key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		logger.Warn("ignoring invalid env value", "key", key, "value", v)
		return def
	}
	return d
}
