package clusterer

import (
	"io"

	"github.com/erraggy/urlpatterns/parser"
	"github.com/erraggy/urlpatterns/uperrors"
)

// config holds settings applied via functional options.
type config struct {
	urls     []string
	urlsSet  bool
	reader   io.Reader
	filePath string
	logger   parser.Logger
}

// Option configures an AnalyzeWithOptions call.
type Option func(*config) error

func (c *config) applyOptions(opts ...Option) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// WithURLs analyzes an in-memory request list.
func WithURLs(urls []string) Option {
	return func(c *config) error {
		c.urls = urls
		c.urlsSet = true
		return nil
	}
}

// WithReader analyzes requests read from r, in any format the loader
// accepts.
func WithReader(r io.Reader) Option {
	return func(c *config) error {
		if r == nil {
			return &uperrors.ConfigError{Option: "WithReader", Message: "reader must not be nil"}
		}
		c.reader = r
		return nil
	}
}

// WithFilePath analyzes requests loaded from the file at path.
func WithFilePath(path string) Option {
	return func(c *config) error {
		if path == "" {
			return &uperrors.ConfigError{Option: "WithFilePath", Message: "path must not be empty"}
		}
		c.filePath = path
		return nil
	}
}

// WithLogger sets the logger used during loading and clustering.
func WithLogger(logger parser.Logger) Option {
	return func(c *config) error {
		if logger == nil {
			return &uperrors.ConfigError{Option: "WithLogger", Message: "logger must not be nil"}
		}
		c.logger = logger
		return nil
	}
}

// Analyze clusters an in-memory request list with default settings.
func Analyze(urls []string) *Result {
	return New().Cluster(urls)
}

// AnalyzeWithOptions clusters requests from exactly one source option:
// WithURLs, WithReader, or WithFilePath.
func AnalyzeWithOptions(opts ...Option) (*Result, error) {
	cfg := config{logger: parser.NopLogger{}}
	if err := cfg.applyOptions(opts...); err != nil {
		return nil, err
	}

	sources := 0
	if cfg.urlsSet {
		sources++
	}
	if cfg.reader != nil {
		sources++
	}
	if cfg.filePath != "" {
		sources++
	}
	if sources != 1 {
		return nil, &uperrors.ConfigError{
			Option:  "source",
			Message: "exactly one of WithURLs, WithReader, or WithFilePath is required",
		}
	}

	urls := cfg.urls
	switch {
	case cfg.reader != nil:
		loader := parser.Loader{Logger: cfg.logger}
		loaded, err := loader.Load(cfg.reader)
		if err != nil {
			return nil, err
		}
		urls = loaded
	case cfg.filePath != "":
		loader := parser.Loader{Logger: cfg.logger}
		loaded, err := loader.LoadFile(cfg.filePath)
		if err != nil {
			return nil, err
		}
		urls = loaded
	}

	c := &Clusterer{Logger: cfg.logger}
	return c.Cluster(urls), nil
}
