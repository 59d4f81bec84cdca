package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/glosswalk/core"
)

// DefinitionExtractor reads the glossary entry from a definition page.
type DefinitionExtractor struct{}

// NewDefinitionExtractor creates a DefinitionExtractor.
func NewDefinitionExtractor() *DefinitionExtractor {
	return &DefinitionExtractor{}
}

// ExtractDefinition takes the first <h1> and the first <p> of the page's
// first <article>. Both are trimmed; an empty element is still a valid result.
func (e *DefinitionExtractor) ExtractDefinition(doc *goquery.Document) (core.Definition, error) {
	article := doc.Find("article").First()
	if article.Length() == 0 {
		return core.Definition{}, fmt.Errorf("%w: no article element", core.ErrParse)
	}

	heading := article.Find("h1").First()
	if heading.Length() == 0 {
		return core.Definition{}, fmt.Errorf("%w: no h1 in article", core.ErrParse)
	}

	para := article.Find("p").First()
	if para.Length() == 0 {
		return core.Definition{}, fmt.Errorf("%w: no paragraph in article", core.ErrParse)
	}

	inner, err := para.Html()
	if err != nil {
		return core.Definition{}, fmt.Errorf("%w: serializing paragraph: %v", core.ErrParse, err)
	}

	return core.Definition{
		Title: strings.TrimSpace(heading.Text()),
		Text:  strings.TrimSpace(para.Text()),
		HTML:  strings.TrimSpace(inner),
	}, nil
}
