// Package output handles the operator console and transcript files.
// Transcript filenames are derived from the term file (e.g. terms.txt → terms_txt.md).
package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gaurav-prasanna/glosswalk/core"
)

// Writer writes rendered transcripts to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("%w: getting working directory: %v", core.ErrIO, err)
		}
		outputDir = wd
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating output directory: %v", core.ErrIO, err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// Write stores data under a name derived from the term file path.
// It returns the path written.
func (w *Writer) Write(termFile string, data []byte, ext string) (string, error) {
	path := filepath.Join(w.OutputDir, filenameFromPath(termFile)+ext)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("%w: writing file %s: %v", core.ErrIO, path, err)
	}
	return path, nil
}

// filenameFromPath flattens the base name of a path into a filename.
// Example: lists/psych-101.txt → psych_101_txt
func filenameFromPath(p string) string {
	base := filepath.Base(p)
	if base == "." || base == string(filepath.Separator) {
		base = "transcript"
	}
	return sanitize(base)
}

// sanitize replaces non-alphanumeric characters with underscores.
func sanitize(s string) string {
	b := []rune(s)
	for i, ch := range b {
		if !((ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9')) {
			b[i] = '_'
		}
	}
	return string(b)
}
