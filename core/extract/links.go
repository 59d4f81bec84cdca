// Package extract implements the LinkExtractor and DefinitionExtractor interfaces.
// The page-structure assumptions here belong to one glossary site:
//  1. Search results live in a single container marked by a CSS class.
//  2. A definition page has one <article> holding an <h1> and a <p>.
package extract

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	"github.com/gaurav-prasanna/glosswalk/core"
)

const (
	// DefaultResultsClass marks the results container on the search page.
	DefaultResultsClass = "results"

	// StopMarker starts the site's "suggest a definition" prompt.
	// Nothing after it is a real result.
	StopMarker = "are we missing"
)

// LinkExtractor finds candidate definition links on a search-results page.
type LinkExtractor struct {
	class     string
	container cascadia.Selector
}

// NewLinkExtractor creates a LinkExtractor for the given results-container class.
func NewLinkExtractor(class string) (*LinkExtractor, error) {
	class = strings.TrimSpace(class)
	if class == "" {
		return nil, fmt.Errorf("%w: empty results container class", core.ErrArgument)
	}
	sel, err := cascadia.Compile("." + class)
	if err != nil {
		return nil, fmt.Errorf("%w: results container class %q: %v", core.ErrArgument, class, err)
	}
	return &LinkExtractor{class: class, container: sel}, nil
}

// ExtractLinks returns the anchors of the results container in document order,
// stopping at the first anchor whose text starts with StopMarker.
// Anchors without an href are skipped. Relative hrefs are resolved against doc.Url.
func (e *LinkExtractor) ExtractLinks(doc *goquery.Document) ([]core.DefinitionLink, error) {
	container := doc.FindMatcher(e.container).First()
	if container.Length() == 0 {
		return nil, fmt.Errorf("%w: no %q results container found", core.ErrParse, e.class)
	}

	links := []core.DefinitionLink{}
	container.Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		title := a.Text()
		if strings.HasPrefix(title, StopMarker) {
			return false
		}
		href, exists := a.Attr("href")
		if !exists {
			return true
		}
		links = append(links, core.DefinitionLink{
			Title: title,
			Href:  resolveURL(href, doc.Url),
		})
		return true
	})

	return links, nil
}

// resolveURL resolves a potentially relative URL against a base.
// The href is returned untouched when there is no base or it does not parse.
func resolveURL(href string, base *url.URL) string {
	if base == nil {
		return href
	}
	parsed, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(parsed).String()
}
