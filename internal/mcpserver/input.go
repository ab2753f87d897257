package mcpserver

import (
	"fmt"
	"strings"

	"github.com/erraggy/urlpatterns/parser"
)

// requestsInput represents the three ways a request list can be provided
// to a tool. Exactly one of URLs, File, or Content must be set.
type requestsInput struct {
	URLs    []string `json:"urls,omitempty"    jsonschema:"Request strings to analyze\\, one per element"`
	File    string   `json:"file,omitempty"    jsonschema:"Path to a request list file (free text or JSON array)"`
	Content string   `json:"content,omitempty" jsonschema:"Inline request list content (free text or JSON array)"`
}

// resolve loads the request list from whichever input was provided and
// enforces the configured size cap.
func (in requestsInput) resolve() ([]string, error) {
	count := 0
	if len(in.URLs) > 0 {
		count++
	}
	if in.File != "" {
		count++
	}
	if in.Content != "" {
		count++
	}
	if count != 1 {
		return nil, fmt.Errorf("exactly one of urls, file, or content must be provided (got %d)", count)
	}

	var (
		urls []string
		err  error
	)
	switch {
	case len(in.URLs) > 0:
		urls = in.URLs
	case in.File != "":
		urls, err = parser.LoadRequestsFromFile(in.File)
	default:
		urls, err = parser.LoadRequests(strings.NewReader(in.Content))
	}
	if err != nil {
		return nil, err
	}

	if len(urls) > cfg.MaxURLs {
		return nil, fmt.Errorf("request list has %d entries, exceeding the maximum %d; set URLPATTERNS_MAX_URLS to raise the cap",
			len(urls), cfg.MaxURLs)
	}
	return urls, nil
}
