package clusterer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCluster_Empty(t *testing.T) {
	res := Analyze(nil)

	assert.Equal(t, 0, res.Analysis.TotalURIs)
	assert.Equal(t, 0, res.Analysis.UniquePatterns)
	assert.Equal(t, 0.0, res.Analysis.PatternCompression)
	assert.Equal(t, 0, res.Data.Len())
}

func TestCluster_ShortIDsStayDistinct(t *testing.T) {
	// Five-digit IDs sit below the volatility threshold, so these
	// requests do not share a parent and nothing is generalized.
	urls := []string{
		"GET https://api.example.com/services/users/12345",
		"GET https://api.example.com/services/users/67890",
		"POST https://api.example.com/services/orders",
	}

	res := Analyze(urls)

	require.Equal(t, 3, res.Data.Len())
	assert.Equal(t, []string{
		`GET https://api\.example\.com/services/users/12345`,
		`GET https://api\.example\.com/services/users/67890`,
		`POST https://api\.example\.com/services/orders`,
	}, res.Data.Keys())

	for i, parent := range res.Data.Keys() {
		entries, ok := res.Data.Get(parent)
		require.True(t, ok)
		require.Len(t, entries, 1)
		assert.Equal(t, urls[i], entries[0].URI)
		assert.Equal(t, 1, entries[0].Count)
		assert.Equal(t, []string{}, entries[0].SubPatterns)
	}

	assert.Equal(t, 3, res.Analysis.TotalURIs)
	// Three parents plus three literal entries whose host dots make
	// them count as patterns.
	assert.Equal(t, 6, res.Analysis.UniquePatterns)
	assert.Equal(t, -100.0, res.Analysis.PatternCompression)
}

func TestCluster_LongIDsShareParent(t *testing.T) {
	urls := []string{
		"GET https://api.example.com/services/users/123456",
		"GET https://api.example.com/services/users/678901",
		"POST https://api.example.com/services/orders",
	}

	res := Analyze(urls)

	require.Equal(t, 2, res.Data.Len())
	assert.Equal(t, []string{
		`GET https://api\.example\.com/services/users/(.*?)`,
		`POST https://api\.example\.com/services/orders`,
	}, res.Data.Keys())

	// The shared sub-pattern equals the cleaned parent, so the group
	// collapses to literal requests.
	entries, ok := res.Data.Get(`GET https://api\.example\.com/services/users/(.*?)`)
	require.True(t, ok)
	require.Len(t, entries, 2)
	assert.Equal(t, urls[0], entries[0].URI)
	assert.Equal(t, urls[1], entries[1].URI)
	assert.Equal(t, 1, entries[0].Count)
	assert.Equal(t, 1, entries[1].Count)

	assert.Equal(t, 3, res.Analysis.TotalURIs)
	assert.Equal(t, 5, res.Analysis.UniquePatterns)
	assert.Equal(t, -66.7, res.Analysis.PatternCompression)
}

func TestCluster_SubPatternWithCount(t *testing.T) {
	// The parent wildcards both the session ID and the long query
	// value; the sub-pattern keeps the query literal, so it differs
	// from the cleaned parent and surfaces once with a count.
	urls := []string{
		"GET https://api.example.com/sessions/550e8400-e29b-41d4-a716-446655440000?destination=UserDataWarehouse1",
		"GET https://api.example.com/sessions/6ba7b810-9dad-11d1-80b4-00c04fd430c8?destination=UserDataWarehouse1",
		"GET https://api.example.com/sessions/f47ac10b-58cc-4372-a567-0e02b2c3d479?destination=UserDataWarehouse1",
	}

	res := Analyze(urls)

	require.Equal(t, 1, res.Data.Len())
	parent := `GET https://api\.example\.com/sessions/(.*?)\?destination=(.*?)`
	assert.Equal(t, []string{parent}, res.Data.Keys())

	entries, ok := res.Data.Get(parent)
	require.True(t, ok)
	require.Len(t, entries, 1)
	assert.Equal(t, "GET https://api.example.com/sessions/(.*?)?destination=UserDataWarehouse1", entries[0].URI)
	assert.Equal(t, 3, entries[0].Count)
	assert.Equal(t, []string{}, entries[0].SubPatterns)

	assert.Equal(t, 3, res.Analysis.TotalURIs)
	assert.Equal(t, 2, res.Analysis.UniquePatterns)
	assert.Equal(t, 33.3, res.Analysis.PatternCompression)
}

func TestCluster_MixedSubGroups(t *testing.T) {
	// Two requests share a sub-pattern, one has its own; the shared
	// group surfaces with a count, the singleton surfaces literally.
	urls := []string{
		"GET https://api.example.com/files/550e8400-e29b-41d4-a716-446655440000?ticket=UserDataWarehouse1",
		"GET https://api.example.com/files/6ba7b810-9dad-11d1-80b4-00c04fd430c8?ticket=UserDataWarehouse1",
		"GET https://api.example.com/files/f47ac10b-58cc-4372-a567-0e02b2c3d479?ticket=AnotherWarehouseName9",
	}

	res := Analyze(urls)

	require.Equal(t, 1, res.Data.Len())
	parent := res.Data.Keys()[0]
	entries, ok := res.Data.Get(parent)
	require.True(t, ok)
	require.Len(t, entries, 2)

	assert.Equal(t, "GET https://api.example.com/files/(.*?)?ticket=UserDataWarehouse1", entries[0].URI)
	assert.Equal(t, 2, entries[0].Count)
	assert.Equal(t, urls[2], entries[1].URI)
	assert.Equal(t, 1, entries[1].Count)
}

func TestCluster_DuplicatesCounted(t *testing.T) {
	urls := []string{
		"GET https://api.example.com/users/123456",
		"GET https://api.example.com/users/123456",
		"GET https://api.example.com/users/123456",
	}

	res := Analyze(urls)

	assert.Equal(t, 3, res.Analysis.TotalURIs)
	require.Equal(t, 1, res.Data.Len())
	entries, _ := res.Data.Get(res.Data.Keys()[0])
	// All duplicates share one sub-pattern equal to the cleaned
	// parent, so each occurrence surfaces literally.
	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.Equal(t, urls[0], e.URI)
		assert.Equal(t, 1, e.Count)
	}
}

func TestCluster_GroupOrderFollowsInput(t *testing.T) {
	urls := []string{
		"POST https://h/beta",
		"GET https://h/alpha",
		"POST https://h/beta",
		"DELETE https://h/gamma",
	}

	res := Analyze(urls)

	assert.Equal(t, []string{
		"POST https://h/beta",
		"GET https://h/alpha",
		"DELETE https://h/gamma",
	}, res.Data.Keys())
}

func TestCluster_UnparsableInputDegrades(t *testing.T) {
	raw := "GET https://h/\x00broken"
	res := Analyze([]string{raw})

	require.Equal(t, 1, res.Data.Len())
	entries, _ := res.Data.Get(res.Data.Keys()[0])
	require.Len(t, entries, 1)
	assert.Equal(t, raw, entries[0].URI)
}
