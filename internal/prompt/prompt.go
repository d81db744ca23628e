// Package prompt asks the operator to pick components from a checklist.
//
// Three MultiSelector implementations exist:
//   - Checklist: a bubbletea checkbox list for interactive terminals
//   - Lines: a numbered list answered on a single input line, for pipes and CI
//   - Static: a fixed answer, for callers that already know the selection
//
// Auto chooses between Checklist and Lines by looking at whether the input is
// a terminal.
package prompt

import (
	"context"
	"errors"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrCancelled is returned when the operator aborts the prompt instead of
// submitting a selection.
var ErrCancelled = errors.New("prompt cancelled")

// MultiSelector presents a titled list of choices and returns the subset the
// operator picked, in the order the choices were given. An empty selection is
// valid and is returned as an empty, non-nil slice.
type MultiSelector interface {
	MultiSelect(ctx context.Context, title string, choices []string) ([]string, error)
}

// Static answers every prompt with the same selection.
type Static struct {
	Selected []string
	Err      error
}

// MultiSelect returns the configured selection or error. The selection is
// passed through as is, without checking it against choices.
func (s Static) MultiSelect(_ context.Context, _ string, _ []string) ([]string, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]string, len(s.Selected))
	copy(out, s.Selected)
	return out, nil
}

// Auto uses Checklist when In is a terminal and Lines otherwise.
type Auto struct {
	In  *os.File
	Out io.Writer
}

// NewAuto returns an Auto bound to the process's stdin and stdout.
func NewAuto() Auto {
	return Auto{In: os.Stdin, Out: os.Stdout}
}

// MultiSelect dispatches to the selector matching the input stream.
func (a Auto) MultiSelect(ctx context.Context, title string, choices []string) ([]string, error) {
	if a.In == nil {
		return Lines{Out: a.Out}.MultiSelect(ctx, title, choices)
	}
	if term.IsTerminal(int(a.In.Fd())) {
		return Checklist{In: a.In, Out: a.Out}.MultiSelect(ctx, title, choices)
	}
	return Lines{In: a.In, Out: a.Out}.MultiSelect(ctx, title, choices)
}

// pick returns choices[i] for every checked index, preserving choice order.
func pick(choices []string, checked map[int]bool) []string {
	out := make([]string, 0, len(checked))
	for i, c := range choices {
		if checked[i] {
			out = append(out, c)
		}
	}
	return out
}
