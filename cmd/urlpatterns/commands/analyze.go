package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/urlpatterns"
	"github.com/erraggy/urlpatterns/clusterer"
	"github.com/erraggy/urlpatterns/exporter"
	"github.com/erraggy/urlpatterns/parser"
)

// AnalyzeFlags contains flags for the analyze command
type AnalyzeFlags struct {
	Format string
	Output string
	Top    int
	Quiet  bool
}

// SetupAnalyzeFlags creates and configures a FlagSet for the analyze command.
// Returns the FlagSet and an AnalyzeFlags struct with bound flag variables.
func SetupAnalyzeFlags() (*flag.FlagSet, *AnalyzeFlags) {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	flags := &AnalyzeFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, yaml, or csv")
	fs.StringVar(&flags.Output, "output", "", "write output to file instead of stdout")
	fs.StringVar(&flags.Output, "o", "", "write output to file instead of stdout")
	fs.IntVar(&flags.Top, "top", 10, "number of top patterns in the text report")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the summary line")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the summary line")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: urlpatterns analyze [flags] <file|->\n\n")
		Writef(fs.Output(), "Cluster a request list into wildcard patterns and report compression.\n\n")
		Writef(fs.Output(), "The input is a file of request lines (one per line) or a JSON array,\n")
		Writef(fs.Output(), "or '-' to read from stdin.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  urlpatterns analyze requests.txt\n")
		Writef(fs.Output(), "  urlpatterns analyze --format json requests.json\n")
		Writef(fs.Output(), "  urlpatterns analyze --format csv -o patterns.csv requests.txt\n")
		Writef(fs.Output(), "  cat access.log | urlpatterns analyze -q -\n")
	}

	return fs, flags
}

// HandleAnalyze executes the analyze command
func HandleAnalyze(args []string) error {
	fs, flags := SetupAnalyzeFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("analyze command requires exactly one file path or '-' for stdin")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	inputPath := fs.Arg(0)

	var (
		urls []string
		err  error
	)
	if inputPath == StdinFilePath {
		urls, err = parser.LoadRequests(os.Stdin)
	} else {
		urls, err = parser.LoadRequestsFromFile(inputPath)
	}
	if err != nil {
		return fmt.Errorf("loading request list: %w", err)
	}

	result := clusterer.Analyze(urls)

	out := io.Writer(os.Stdout)
	if flags.Output != "" {
		f, err := os.Create(flags.Output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch flags.Format {
	case FormatJSON:
		return exporter.WriteJSON(out, result, true)
	case FormatYAML:
		return exporter.WriteYAML(out, result)
	case FormatCSV:
		return exporter.WriteCSV(out, result)
	default:
		renderTextReport(out, result, inputPath, flags)
		return nil
	}
}

// renderTextReport prints the human-readable analysis summary.
func renderTextReport(w io.Writer, result *clusterer.Result, inputPath string, flags *AnalyzeFlags) {
	summary := fmt.Sprintf("requests=%d parents=%d unique=%d compression=%.1f%%",
		result.Analysis.TotalURIs,
		result.Data.Len(),
		result.Analysis.UniquePatterns,
		result.Analysis.PatternCompression,
	)

	if flags.Quiet {
		Writef(w, "%s\n", summary)
		return
	}

	Writef(w, "URL Pattern Analyzer\n")
	Writef(w, "====================\n\n")
	Writef(w, "urlpatterns version: %s\n", urlpatterns.Version())
	Writef(w, "Input: %s\n", FormatInputPath(inputPath))
	Writef(w, "Requests: %d\n", result.Analysis.TotalURIs)
	Writef(w, "Parent Patterns: %d\n", result.Data.Len())
	Writef(w, "Unique Patterns: %d\n", result.Analysis.UniquePatterns)
	Writef(w, "Pattern Compression: %.1f%%\n\n", result.Analysis.PatternCompression)

	top := exporter.TopPatterns(result, flags.Top)
	if len(top) > 0 {
		Writef(w, "Top Patterns by Coverage:\n")
		for _, s := range top {
			Writef(w, "  %6d  %s\n", s.Count, s.URI)
		}
		Writef(w, "\n")
	}

	if result.Analysis.PatternCompression > 0 {
		Writef(w, "✓ %s\n", summary)
	} else {
		Writef(w, "✗ no compression achieved: %s\n", summary)
	}
}
