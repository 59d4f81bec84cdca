// Package core defines the pipeline types and interfaces for GlossWalk.
// Each stage of the definition-retrieval pipeline is a small, testable interface.
package core

import (
	"context"

	"github.com/PuerkitoBio/goquery"
)

// DefinitionLink is one candidate result found on a search-results page.
type DefinitionLink struct {
	Title string `json:"title"`
	Href  string `json:"href"`
}

// Definition is a single extracted glossary entry.
type Definition struct {
	Title  string `json:"title"`
	Text   string `json:"text"`
	Source string `json:"source,omitempty"`

	// HTML is the inner HTML of the paragraph Text was taken from.
	HTML string `json:"-"`
}

// TermEntry records what was displayed for one term of a walk.
type TermEntry struct {
	Term        string       `json:"term"`
	Index       int          `json:"index"`
	Total       int          `json:"total"`
	Definitions []Definition `json:"definitions"`
}

// Transcript is the recorded output of a walk.
type Transcript struct {
	Source      string      `json:"source"`
	GeneratedAt string      `json:"generated_at"` // ISO8601
	Entries     []TermEntry `json:"entries"`
}

// Fetcher retrieves a URL and parses it into a document tree.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*goquery.Document, error)
}

// LinkExtractor pulls candidate definition links from a search-results page.
type LinkExtractor interface {
	ExtractLinks(doc *goquery.Document) ([]DefinitionLink, error)
}

// DefinitionExtractor pulls a definition from a definition page.
type DefinitionExtractor interface {
	ExtractDefinition(doc *goquery.Document) (Definition, error)
}

// Resolver turns a term into its glossary definitions.
type Resolver interface {
	Resolve(ctx context.Context, term string) ([]Definition, error)
}

// Presenter displays walk progress to the operator.
type Presenter interface {
	Term(term string, index, total int) error
	Definition(def Definition) error
	Prompt() error
}

// Advancer blocks until the operator asks for the next term.
type Advancer interface {
	Advance(ctx context.Context) error
}

// Normalizer converts an HTML fragment into Markdown.
type Normalizer interface {
	Normalize(html string) (string, error)
}

// Renderer converts a transcript into a final output format.
type Renderer interface {
	Render(t Transcript) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}
