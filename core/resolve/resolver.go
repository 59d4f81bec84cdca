// Package resolve implements the Resolver interface.
// It composes the pipeline for one term: search → links → definitions.
package resolve

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gaurav-prasanna/glosswalk/core"
)

const (
	// DefaultSearchURL is the glossary search endpoint; the term is appended verbatim.
	DefaultSearchURL = "https://www.alleydog.com/search-results.php?q="

	// GlossaryMarker must appear in a link title for it to count as a glossary entry.
	GlossaryMarker = "Glossary"

	// MaxDefinitions caps the definitions returned per term.
	MaxDefinitions = 4
)

// TermResolver resolves a term to at most MaxDefinitions glossary definitions.
type TermResolver struct {
	SearchURL  string
	Fetcher    core.Fetcher
	Links      core.LinkExtractor
	Definition core.DefinitionExtractor
	Logger     *slog.Logger
}

// Resolve searches for term (escaped by EscapeQuery), keeps the links whose
// title contains GlossaryMarker, and extracts the first MaxDefinitions of them in order.
// A term with no glossary links yields an empty slice. The first fetch or
// parse error aborts; later links are not fetched.
func (r *TermResolver) Resolve(ctx context.Context, term string) ([]core.Definition, error) {
	logger := r.logger()

	searchURL := r.searchURL() + EscapeQuery(term)
	doc, err := r.Fetcher.Fetch(ctx, searchURL)
	if err != nil {
		return nil, fmt.Errorf("searching %q: %w", term, err)
	}

	links, err := r.Links.ExtractLinks(doc)
	if err != nil {
		return nil, fmt.Errorf("searching %q: %w", term, err)
	}

	selected := SelectGlossaryLinks(links)
	logger.DebugContext(ctx, "resolved links",
		"term", term,
		"found", len(links),
		"selected", len(selected),
	)

	defs := make([]core.Definition, 0, len(selected))
	for _, link := range selected {
		page, err := r.Fetcher.Fetch(ctx, link.Href)
		if err != nil {
			return nil, fmt.Errorf("definition %q: %w", link.Title, err)
		}
		def, err := r.Definition.ExtractDefinition(page)
		if err != nil {
			return nil, fmt.Errorf("definition %q at %s: %w", link.Title, link.Href, err)
		}
		def.Source = link.Href
		defs = append(defs, def)
	}
	return defs, nil
}

// SelectGlossaryLinks filters links to glossary entries and caps them at
// MaxDefinitions, preserving order.
func SelectGlossaryLinks(links []core.DefinitionLink) []core.DefinitionLink {
	var selected []core.DefinitionLink
	for _, link := range links {
		if len(selected) == MaxDefinitions {
			break
		}
		if strings.Contains(link.Title, GlossaryMarker) {
			selected = append(selected, link)
		}
	}
	return selected
}

// EscapeQuery percent-encodes the bytes of term that cannot appear raw in a
// URL query: controls, space, quotes, '#', '<', '>' and anything non-ASCII.
// Existing escapes and query delimiters ('%', '&', '=') pass through.
func EscapeQuery(term string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	for i := 0; i < len(term); i++ {
		c := term[i]
		switch {
		case c <= 0x20, c >= 0x7F, c == '"', c == '#', c == '\'', c == '<', c == '>':
			b.WriteByte('%')
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&0x0F])
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func (r *TermResolver) searchURL() string {
	if r.SearchURL == "" {
		return DefaultSearchURL
	}
	return r.SearchURL
}

func (r *TermResolver) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default()
	}
	return r.Logger
}
