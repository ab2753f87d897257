package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitMethod(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantMethod string
		wantURL    string
	}{
		{
			name:       "full request line with protocol suffix",
			raw:        "GET https://api.example.com/services/users/12345 HTTP/1.1",
			wantMethod: "GET",
			wantURL:    "https://api.example.com/services/users/12345",
		},
		{
			name:       "request line without protocol suffix",
			raw:        "POST https://api.example.com/services/users",
			wantMethod: "POST",
			wantURL:    "https://api.example.com/services/users",
		},
		{
			name:       "bare URL",
			raw:        "https://api.example.com/health",
			wantMethod: "",
			wantURL:    "https://api.example.com/health",
		},
		{
			name:       "surrounding quotes stripped",
			raw:        `"DELETE https://api.example.com/items/9 HTTP/1.1"`,
			wantMethod: "DELETE",
			wantURL:    "https://api.example.com/items/9",
		},
		{
			name:       "surrounding whitespace stripped",
			raw:        "  PATCH https://api.example.com/items/9  ",
			wantMethod: "PATCH",
			wantURL:    "https://api.example.com/items/9",
		},
		{
			name:       "lowercase method is not recognized",
			raw:        "get https://api.example.com/health",
			wantMethod: "",
			wantURL:    "get https://api.example.com/health",
		},
		{
			name:       "unknown method is not recognized",
			raw:        "FETCH https://api.example.com/health",
			wantMethod: "",
			wantURL:    "FETCH https://api.example.com/health",
		},
		{
			name:       "non-http scheme is not split",
			raw:        "GET ftp://example.com/file",
			wantMethod: "",
			wantURL:    "GET ftp://example.com/file",
		},
		{
			name:       "relative path keeps whole string",
			raw:        "GET /api/users",
			wantMethod: "",
			wantURL:    "GET /api/users",
		},
		{
			name:       "empty string",
			raw:        "",
			wantMethod: "",
			wantURL:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitMethod(tt.raw)
			assert.Equal(t, tt.wantMethod, got.Method)
			assert.Equal(t, tt.wantURL, got.URL)
		})
	}
}

func TestIsMethod(t *testing.T) {
	for _, m := range Methods {
		assert.True(t, IsMethod(m), m)
	}
	assert.False(t, IsMethod("get"))
	assert.False(t, IsMethod(""))
	assert.False(t, IsMethod("TRACE"))
}
