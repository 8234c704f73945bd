package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/pterm/pterm"
)

// Input reads answers one line at a time from a reader such as os.Stdin
type Input struct {
	scanner *bufio.Scanner
	lines   chan string
	err     error
	once    sync.Once
}

func NewInput(r io.Reader) *Input {
	return &Input{
		scanner: bufio.NewScanner(r),
		lines:   make(chan string),
	}
}

// PlayerCount returns the next line
func (in *Input) PlayerCount(ctx context.Context) (string, error) {
	return in.next(ctx)
}

// PlayerName returns the next line
func (in *Input) PlayerName(ctx context.Context, index int) (string, error) {
	return in.next(ctx)
}

// next waits for a line or for ctx to end. It returns io.EOF once the reader is exhausted.
func (in *Input) next(ctx context.Context) (string, error) {
	in.once.Do(func() {
		go in.read()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-in.lines:
		if !ok {
			if in.err != nil {
				return "", in.err
			}
			return "", io.EOF
		}
		return strings.TrimRight(line, "\r"), nil
	}
}

func (in *Input) read() {
	for in.scanner.Scan() {
		in.lines <- in.scanner.Text()
	}
	in.err = in.scanner.Err()
	close(in.lines)
}

// Output writes game lines to a writer. Colour follows pterm's styling switch.
type Output struct {
	w io.Writer
}

func NewOutput(w io.Writer) *Output {
	return &Output{w: w}
}

func (o *Output) Println(line string) error {
	_, err := fmt.Fprintln(o.w, line)
	return err
}

// Announce writes a line that deserves attention, such as the winner
func (o *Output) Announce(line string) error {
	return o.Println(pterm.LightGreen(line))
}
