package render

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/glosswalk/core"
	"github.com/gaurav-prasanna/glosswalk/core/normalize"
)

// Formats lists the transcript formats accepted by New.
var Formats = []string{"markdown", "json", "pdf"}

// New returns the renderer for a transcript format name.
func New(format string) (core.Renderer, error) {
	switch strings.ToLower(format) {
	case "markdown", "md":
		return NewMarkdownRenderer(normalize.New()), nil
	case "json":
		return NewJSONRenderer(), nil
	case "pdf":
		return NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("%w: unknown transcript format %q (want one of %s)",
			core.ErrArgument, format, strings.Join(Formats, ", "))
	}
}
