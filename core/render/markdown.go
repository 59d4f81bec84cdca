// Package render provides transcript renderers for GlossWalk.
// This file implements the Markdown renderer, the default transcript format.
package render

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/glosswalk/core"
	"github.com/gaurav-prasanna/glosswalk/core/normalize"
)

// MarkdownRenderer writes a transcript as a Markdown document.
// Definition bodies are converted from their source HTML by the normalizer.
type MarkdownRenderer struct {
	normalizer core.Normalizer
}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer(n core.Normalizer) *MarkdownRenderer {
	return &MarkdownRenderer{normalizer: n}
}

// Render converts the transcript into Markdown bytes.
func (r *MarkdownRenderer) Render(t core.Transcript) ([]byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "# Glossary walk: %s\n\n", t.Source)
	if t.GeneratedAt != "" {
		fmt.Fprintf(&b, "_Generated %s_\n\n", t.GeneratedAt)
	}

	for _, entry := range t.Entries {
		fmt.Fprintf(&b, "## %s (%d/%d)\n\n", entry.Term, entry.Index, entry.Total)
		if len(entry.Definitions) == 0 {
			b.WriteString("_No glossary definitions found._\n\n")
			continue
		}
		for _, def := range entry.Definitions {
			body, err := normalize.Body(r.normalizer, def)
			if err != nil {
				return nil, fmt.Errorf("rendering %q: %w", def.Title, err)
			}
			fmt.Fprintf(&b, "### %s\n\n%s\n\n", def.Title, body)
			if def.Source != "" {
				fmt.Fprintf(&b, "_Source: %s_\n\n", def.Source)
			}
		}
	}

	return []byte(b.String()), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
