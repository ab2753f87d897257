package clusterer

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ClusterEntry is one row beneath a parent pattern: either a literal
// request (Count is 1) or a sub-pattern covering several requests.
type ClusterEntry struct {
	// URI is the literal request string or the sub-pattern.
	URI string `json:"uri"`

	// SubPatterns is reserved for deeper refinement levels. It is
	// always present in output, currently always empty.
	SubPatterns []string `json:"subPatterns"`

	// Count is the number of input requests the entry covers.
	Count int `json:"count"`
}

// PatternGroups maps parent patterns to their entries while preserving
// insertion order, which encoding/json's map type would destroy.
type PatternGroups struct {
	keys    []string
	entries map[string][]ClusterEntry
}

// NewPatternGroups creates an empty PatternGroups.
func NewPatternGroups() *PatternGroups {
	return &PatternGroups{entries: make(map[string][]ClusterEntry)}
}

// Set stores entries under parent, appending parent to the key order on
// first use.
func (g *PatternGroups) Set(parent string, entries []ClusterEntry) {
	if _, ok := g.entries[parent]; !ok {
		g.keys = append(g.keys, parent)
	}
	g.entries[parent] = entries
}

// Get returns the entries stored under parent.
func (g *PatternGroups) Get(parent string) ([]ClusterEntry, bool) {
	entries, ok := g.entries[parent]
	return entries, ok
}

// Keys returns the parent patterns in insertion order. The returned
// slice is shared; callers must not modify it.
func (g *PatternGroups) Keys() []string {
	return g.keys
}

// Len returns the number of parent patterns.
func (g *PatternGroups) Len() int {
	return len(g.keys)
}

// MarshalJSON writes the groups as a JSON object whose keys appear in
// insertion order.
func (g *PatternGroups) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range g.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, fmt.Errorf("marshaling parent pattern %q: %w", key, err)
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		entriesJSON, err := json.Marshal(g.entries[key])
		if err != nil {
			return nil, fmt.Errorf("marshaling entries for %q: %w", key, err)
		}
		buf.Write(entriesJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object and preserves its key order.
func (g *PatternGroups) UnmarshalJSON(data []byte) error {
	g.keys = nil
	g.entries = make(map[string][]ClusterEntry)

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected string key, got %v", tok)
		}
		var entries []ClusterEntry
		if err := dec.Decode(&entries); err != nil {
			return fmt.Errorf("decoding entries for %q: %w", key, err)
		}
		g.Set(key, entries)
	}

	_, err = dec.Token()
	return err
}
