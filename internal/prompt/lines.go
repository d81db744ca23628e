package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Lines prints the choices as a numbered list and reads the answer from a
// single input line. Entries are separated by spaces or commas and may be
// either 1-based numbers or choice names. A blank line selects nothing.
type Lines struct {
	In  io.Reader
	Out io.Writer
}

// MultiSelect reads one line of input and resolves it against choices.
// End of input before any answer counts as a cancellation.
func (l Lines) MultiSelect(ctx context.Context, title string, choices []string) ([]string, error) {
	out := l.Out
	if out == nil {
		out = io.Discard
	}

	fmt.Fprintf(out, "\n%s\n", title)
	for i, c := range choices {
		fmt.Fprintf(out, "  %d) %s\n", i+1, c)
	}
	fmt.Fprintf(out, "Enter numbers or names separated by spaces (blank for none): ")

	if l.In == nil {
		return nil, ErrCancelled
	}

	type result struct {
		line string
		err  error
	}
	// The read cannot be interrupted; on cancellation the goroutine is left
	// blocked until the input is closed.
	done := make(chan result, 1)
	go func() {
		line, err := readLine(l.In)
		done <- result{line, err}
	}()

	var r result
	select {
	case <-ctx.Done():
		return nil, ErrCancelled
	case r = <-done:
	}

	switch {
	case errors.Is(r.err, io.EOF) && r.line == "":
		return nil, ErrCancelled
	case r.err != nil && !errors.Is(r.err, io.EOF):
		return nil, fmt.Errorf("reading selection: %w", r.err)
	}

	return parseSelection(r.line, choices)
}

// readLine reads up to and including the first '\n', one byte at a time.
// Nothing past the newline is consumed, so a subprocess sharing the same
// stdin still sees the rest of the input.
func readLine(r io.Reader) (string, error) {
	var b strings.Builder
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			b.WriteByte(buf[0])
			if buf[0] == '\n' {
				return b.String(), nil
			}
		}
		if err != nil {
			return b.String(), err
		}
	}
}

// parseSelection resolves a line of numbers or names into choices.
// Duplicates collapse and the result follows the order of choices.
func parseSelection(line string, choices []string) ([]string, error) {
	index := make(map[string]int, len(choices))
	for i, c := range choices {
		index[c] = i
	}

	checked := make(map[int]bool)
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	for _, f := range fields {
		if n, err := strconv.Atoi(f); err == nil {
			if n < 1 || n > len(choices) {
				return nil, fmt.Errorf("selection %d out of range [1-%d]", n, len(choices))
			}
			checked[n-1] = true
			continue
		}
		i, ok := index[f]
		if !ok {
			return nil, fmt.Errorf("unknown choice %q", f)
		}
		checked[i] = true
	}

	return pick(choices, checked), nil
}
