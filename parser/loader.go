package parser

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/erraggy/urlpatterns/uperrors"
)

// Loader reads request lists from external sources. Two input shapes are
// accepted:
//
//   - a JSON array whose items are either bare strings or objects with a
//     string "name" field holding the request line
//   - free text, one request line per line
//
// Blank lines and JSON items of any other shape are skipped; skipped JSON
// items are logged as warnings rather than failing the load.
type Loader struct {
	// Logger receives warnings about skipped items. Defaults to NopLogger.
	Logger Logger
}

// NewLoader creates a Loader with default settings.
func NewLoader() *Loader {
	return &Loader{Logger: NopLogger{}}
}

// Load reads all request lines from r.
func (l *Loader) Load(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &uperrors.InputError{Message: "reading request list", Cause: err}
	}
	return l.parse(data, "")
}

// LoadFile reads all request lines from the file at path.
func (l *Loader) LoadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &uperrors.InputError{Source: path, Message: "reading request list", Cause: err}
	}
	return l.parse(data, path)
}

func (l *Loader) parse(data []byte, source string) ([]string, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return []string{}, nil
	}

	if strings.HasPrefix(trimmed, "[") {
		return l.parseJSON([]byte(trimmed), source)
	}
	return parseLines(trimmed), nil
}

// parseJSON extracts request lines from a JSON array of strings or of
// {"name": "<request line>"} objects.
func (l *Loader) parseJSON(data []byte, source string) ([]string, error) {
	var items []any
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, &uperrors.InputError{Source: source, Message: "invalid JSON request list", Cause: err}
	}

	urls := make([]string, 0, len(items))
	for i, item := range items {
		switch v := item.(type) {
		case string:
			if strings.TrimSpace(v) != "" {
				urls = append(urls, v)
			}
		case map[string]any:
			name, ok := v["name"].(string)
			if !ok || strings.TrimSpace(name) == "" {
				l.Logger.Warn("skipping item without a usable name field", "index", i, "source", source)
				continue
			}
			urls = append(urls, name)
		default:
			l.Logger.Warn("skipping non-string request item", "index", i, "source", source)
		}
	}
	return urls, nil
}

func parseLines(text string) []string {
	var urls []string
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			urls = append(urls, line)
		}
	}
	return urls
}

// LoadRequests reads request lines from r using a default Loader.
func LoadRequests(r io.Reader) ([]string, error) {
	return NewLoader().Load(r)
}

// LoadRequestsFromFile reads request lines from the file at path using a
// default Loader.
func LoadRequestsFromFile(path string) ([]string, error) {
	return NewLoader().LoadFile(path)
}
