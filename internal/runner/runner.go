// Package runner runs external commands on behalf of the scaffolding steps.
//
// Every step that shells out (package manager, tailwind initializer, shadcn-ui)
// goes through the Runner interface so tests can record invocations instead of
// spawning real processes.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"frontend-setup/internal/logger"
)

// Command describes a single external invocation.
type Command struct {
	Name string   // Executable name, resolved through PATH (e.g. "npm", "npx")
	Args []string // Arguments passed verbatim
	Dir  string   // Working directory, usually the target frontend directory
}

// String renders the command the way an operator would type it.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Runner executes a Command and waits for it to exit.
// A non-zero exit status is reported as an *ExitError.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// ExitError reports a command that started but exited unsuccessfully.
type ExitError struct {
	Command Command
	Code    int
	Err     error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command %q exited with status %d", e.Command.String(), e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Exec runs commands as real subprocesses. The child inherits the given
// streams so the operator sees package manager output and can answer the
// prompts of interactive initializers.
type Exec struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Log    *logger.Logger
}

// NewExec returns an Exec wired to the current process's standard streams.
func NewExec(log *logger.Logger) *Exec {
	return &Exec{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Log:    log,
	}
}

// Run starts the command and blocks until it exits. Cancelling ctx kills the
// child process.
func (e *Exec) Run(ctx context.Context, c Command) error {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if e.Log != nil {
		e.Log.Debug("Running command in %s: %s", c.Dir, strings.Join(cmd.Args, " "))
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Command: c, Code: exitErr.ExitCode(), Err: err}
		}
		return fmt.Errorf("failed to run %q: %w", c.String(), err)
	}
	return nil
}
