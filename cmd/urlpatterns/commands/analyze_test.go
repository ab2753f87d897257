package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/urlpatterns/clusterer"
)

func writeRequestsFile(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "requests.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o600))
	return path
}

func TestSetupAnalyzeFlags(t *testing.T) {
	fs, flags := SetupAnalyzeFlags()
	require.NoError(t, fs.Parse([]string{"-format", "csv", "-o", "out.csv", "-top", "3", "-q", "requests.txt"}))

	assert.Equal(t, FormatCSV, flags.Format)
	assert.Equal(t, "out.csv", flags.Output)
	assert.Equal(t, 3, flags.Top)
	assert.True(t, flags.Quiet)
	assert.Equal(t, 1, fs.NArg())
}

func TestHandleAnalyze_JSONToFile(t *testing.T) {
	reqPath := writeRequestsFile(t,
		"GET https://api.example.com/users/123456",
		"GET https://api.example.com/users/654321",
	)
	outPath := filepath.Join(t.TempDir(), "out.json")

	err := HandleAnalyze([]string{"-format", "json", "-o", outPath, reqPath})
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"totalUris": 2`)
}

func TestHandleAnalyze_CSVToFile(t *testing.T) {
	reqPath := writeRequestsFile(t, "GET https://api.example.com/users/123456")
	outPath := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, HandleAnalyze([]string{"-format", "csv", "-o", outPath, reqPath}))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Parent Pattern,URI Pattern"))
}

func TestHandleAnalyze_TextToFile(t *testing.T) {
	reqPath := writeRequestsFile(t, "GET https://h/ping")
	outPath := filepath.Join(t.TempDir(), "out.txt")

	require.NoError(t, HandleAnalyze([]string{"-o", outPath, reqPath}))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "URL Pattern Analyzer")
	assert.Contains(t, string(data), "Requests: 1")
}

func TestHandleAnalyze_InvalidFormat(t *testing.T) {
	reqPath := writeRequestsFile(t, "GET https://h/ping")
	err := HandleAnalyze([]string{"-format", "xml", reqPath})
	assert.ErrorContains(t, err, "invalid format")
}

func TestHandleAnalyze_MissingArg(t *testing.T) {
	err := HandleAnalyze([]string{"-format", "json"})
	assert.ErrorContains(t, err, "exactly one file path")
}

func TestHandleAnalyze_MissingFile(t *testing.T) {
	err := HandleAnalyze([]string{filepath.Join(t.TempDir(), "nope.txt")})
	assert.ErrorContains(t, err, "loading request list")
}

func TestRenderTextReport_Quiet(t *testing.T) {
	result := clusterer.Analyze([]string{"GET https://h/ping"})

	var buf bytes.Buffer
	renderTextReport(&buf, result, "requests.txt", &AnalyzeFlags{Quiet: true, Top: 10})

	out := buf.String()
	assert.Equal(t, "requests=1 parents=1 unique=1 compression=0.0%\n", out)
}

func TestRenderTextReport_TopPatterns(t *testing.T) {
	result := clusterer.Analyze([]string{
		"GET https://api.example.com/sessions/550e8400-e29b-41d4-a716-446655440000?destination=UserDataWarehouse1",
		"GET https://api.example.com/sessions/6ba7b810-9dad-11d1-80b4-00c04fd430c8?destination=UserDataWarehouse1",
		"GET https://api.example.com/sessions/f47ac10b-58cc-4372-a567-0e02b2c3d479?destination=UserDataWarehouse1",
	})

	var buf bytes.Buffer
	renderTextReport(&buf, result, StdinFilePath, &AnalyzeFlags{Top: 5})

	out := buf.String()
	assert.Contains(t, out, "Input: <stdin>")
	assert.Contains(t, out, "Top Patterns by Coverage:")
	assert.Contains(t, out, "✓ ")
}
