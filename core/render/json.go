package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/glosswalk/core"
)

// JSONRenderer produces the transcript as indented JSON.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render marshals the transcript. Nil slices are written as empty arrays.
func (r *JSONRenderer) Render(t core.Transcript) ([]byte, error) {
	if t.Entries == nil {
		t.Entries = []core.TermEntry{}
	}
	entries := make([]core.TermEntry, len(t.Entries))
	for i, e := range t.Entries {
		if e.Definitions == nil {
			e.Definitions = []core.Definition{}
		}
		entries[i] = e
	}
	t.Entries = entries

	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
