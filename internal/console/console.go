// Package console implements the line-oriented prompt and re-prompt loop
// used by the interactive game.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Console reads one line per prompt from in and writes prompts and
// messages to out. It is not safe for concurrent use.
type Console struct {
	reader *bufio.Reader
	out    io.Writer
}

// New creates a Console over the given streams
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Printf writes formatted text to the output
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Println writes a line to the output
func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// Prompt writes text and returns the next input line with surrounding
// whitespace trimmed. Lines have no length limit. It returns io.EOF once
// the input is exhausted.
func (c *Console) Prompt(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprint(c.out, text)
	line, err := c.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			// Last line without a trailing newline
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Ask prompts until parse accepts the input, printing reject after every
// refused line. Only read errors (including io.EOF) end the loop early.
func Ask[T any](ctx context.Context, c *Console, text, reject string, parse func(string) (T, bool)) (T, error) {
	for {
		line, err := c.Prompt(ctx, text)
		if err != nil {
			var zero T
			return zero, err
		}
		if v, ok := parse(line); ok {
			return v, nil
		}
		c.Println(reject)
	}
}
