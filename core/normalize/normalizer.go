// Package normalize implements the Normalizer interface.
// It turns the HTML of a definition paragraph into Markdown for transcripts.
package normalize

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/gaurav-prasanna/glosswalk/core"
)

// MarkdownNormalizer converts HTML to Markdown using html-to-markdown.
type MarkdownNormalizer struct{}

// New creates a MarkdownNormalizer.
func New() *MarkdownNormalizer {
	return &MarkdownNormalizer{}
}

// Normalize converts an HTML fragment into trimmed Markdown.
func (n *MarkdownNormalizer) Normalize(html string) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("%w: converting HTML to markdown: %v", core.ErrParse, err)
	}
	return strings.TrimSpace(markdown), nil
}

// Body returns the Markdown body of def, falling back to its plain text
// when there is no HTML or it converts to nothing.
func Body(n core.Normalizer, def core.Definition) (string, error) {
	if def.HTML == "" {
		return def.Text, nil
	}
	md, err := n.Normalize(def.HTML)
	if err != nil {
		return "", err
	}
	if md == "" {
		return def.Text, nil
	}
	return md, nil
}
