package runner

import (
	"context"
	"sync"
)

// Recorder is a Runner that records every command instead of executing it.
// Commands whose String() form is a key in Fail return that error.
type Recorder struct {
	Fail map[string]error

	mu       sync.Mutex
	commands []Command
}

// Run records cmd and returns the configured failure, if any.
func (r *Recorder) Run(_ context.Context, cmd Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.commands = append(r.commands, cmd)
	if err, ok := r.Fail[cmd.String()]; ok {
		return err
	}
	return nil
}

// Commands returns the recorded commands in invocation order.
func (r *Recorder) Commands() []Command {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Lines returns the recorded commands rendered with Command.String.
func (r *Recorder) Lines() []string {
	cmds := r.Commands()
	lines := make([]string, len(cmds))
	for i, c := range cmds {
		lines[i] = c.String()
	}
	return lines
}
