package walk

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/gaurav-prasanna/glosswalk/core"
)

// State tracks progress through a term list.
// TotalCount is fixed at load time as StartIndex + len(Terms) - 1.
type State struct {
	Terms        []string
	StartIndex   int
	CurrentIndex int
	TotalCount   int
}

// Load reads one term per line from r, skipping the first start-1 lines.
// Lines that are not valid UTF-8 are dropped from what remains; skipped
// lines count toward the offset whether or not they are valid.
func Load(r io.Reader, start int) (*State, error) {
	if start < 1 {
		return nil, fmt.Errorf("%w: start position must be at least 1, got %d", core.ErrArgument, start)
	}

	br := bufio.NewReader(r)
	var terms []string
	for lineNo := 1; ; lineNo++ {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: reading terms: %v", core.ErrIO, err)
		}
		if line == "" && err != nil {
			break
		}

		if lineNo >= start {
			if strings.HasSuffix(line, "\n") {
				line = strings.TrimSuffix(line, "\n")
				line = strings.TrimSuffix(line, "\r")
			}
			if utf8.ValidString(line) {
				terms = append(terms, line)
			}
		}

		if err != nil {
			break
		}
	}

	return &State{
		Terms:        terms,
		StartIndex:   start,
		CurrentIndex: start,
		TotalCount:   len(terms) + start - 1,
	}, nil
}
