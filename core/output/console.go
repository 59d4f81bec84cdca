package output

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gookit/color"

	"github.com/gaurav-prasanna/glosswalk/core"
)

var (
	termStyle  = color.New(color.FgYellow, color.OpItalic, color.OpUnderscore)
	titleStyle = color.New(color.OpBold)
)

// Console presents a walk on a terminal and reads the operator's advance signal.
type Console struct {
	out   io.Writer
	in    *bufio.Reader
	plain bool
}

// NewConsole creates a Console. When plain is set no styling is emitted.
func NewConsole(in io.Reader, out io.Writer, plain bool) *Console {
	return &Console{
		out:   out,
		in:    bufio.NewReader(in),
		plain: plain,
	}
}

// Term prints the term with its position, e.g. "bias (2/3)".
func (c *Console) Term(term string, index, total int) error {
	_, err := fmt.Fprintf(c.out, "%s (%d/%d)\n", c.styled(termStyle, term), index, total)
	return ioErr("writing term", err)
}

// Definition prints the bold title, the text and a blank separator line.
func (c *Console) Definition(def core.Definition) error {
	_, err := fmt.Fprintf(c.out, "%s:\n%s\n\n", c.styled(titleStyle, def.Title), def.Text)
	return ioErr("writing definition", err)
}

// Prompt prints the advance prompt.
func (c *Console) Prompt() error {
	_, err := fmt.Fprintln(c.out, ">")
	return ioErr("writing prompt", err)
}

// Advance blocks until one line of input is read.
// End of input counts as an advance.
func (c *Console) Advance(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := c.in.ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
		return ioErr("reading operator input", err)
	}
	return nil
}

func (c *Console) styled(s color.Style, text string) string {
	if c.plain {
		return text
	}
	return s.Sprint(text)
}

func ioErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %v", core.ErrIO, op, err)
}
