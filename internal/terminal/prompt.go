package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompter asks questions and reads one line of input per answer.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a prompter reading answers from in and writing questions to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

type answer struct {
	text string
	err  error
}

// Ask writes question and returns the next line of input without its line ending.
// Returns io.EOF if input ends before any text is read, or ctx.Err() if ctx is
// cancelled while waiting. After a cancellation the prompter must not be reused.
func (p *Prompter) Ask(ctx context.Context, question string) (string, error) {
	fmt.Fprintf(p.out, "%s%s%s ", Color(Bold), question, Color(Reset))

	ch := make(chan answer, 1)
	go func() {
		text, err := p.in.ReadString('\n')
		ch <- answer{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		fmt.Fprintln(p.out)
		return "", ctx.Err()
	case a := <-ch:
		if a.err != nil && (!errors.Is(a.err, io.EOF) || a.text == "") {
			fmt.Fprintln(p.out)
			return "", a.err
		}
		return strings.TrimRight(a.text, "\r\n"), nil
	}
}
