package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color" // Colored console output for the different log levels
)

// Logger writes leveled, colorized messages to a single sink.
// Each level is a printf-style function built from a fatih/color attribute:
//   - Info  (green): normal progress of a scaffolding step
//   - Warn  (bright magenta): something the operator should look at, run continues
//   - Error (red): a failed step or command
//   - Debug (cyan): command lines and config diffs, only when debug is enabled
//
// A Logger is passed into the scaffolding code rather than written to a global
// stream, so tests can capture every message in a buffer.
type Logger struct {
	mu    sync.Mutex // serializes writes; steps may log from several goroutines
	out   io.Writer
	debug bool

	info func(w io.Writer, format string, a ...any)
	warn func(w io.Writer, format string, a ...any)
	errf func(w io.Writer, format string, a ...any)
	dbg  func(w io.Writer, format string, a ...any)
}

// New returns a Logger writing to out. Debug messages are dropped unless
// enableDebug is true.
func New(out io.Writer, enableDebug bool) *Logger {
	return &Logger{
		out:   out,
		debug: enableDebug,
		info:  fprintf(color.New(color.FgGreen)),
		warn:  fprintf(color.New(color.FgHiMagenta)),
		errf:  fprintf(color.New(color.FgRed)),
		dbg:   fprintf(color.New(color.FgCyan)),
	}
}

// fprintf adapts color.FprintfFunc to the signature used by Logger.
// FprintfFunc discards the byte count and error, which is what a console
// logger wants anyway.
func fprintf(c *color.Color) func(w io.Writer, format string, a ...any) {
	f := c.FprintfFunc()
	return func(w io.Writer, format string, a ...any) {
		f(w, format, a...)
	}
}

func (l *Logger) write(fn func(w io.Writer, format string, a ...any), format string, a ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.out, format, a...)
}

// Info logs an informational message prefixed with [INFO].
func (l *Logger) Info(format string, a ...any) {
	l.write(l.info, "[INFO] "+withNewline(format), a...)
}

// Warn logs a warning prefixed with [WARN].
func (l *Logger) Warn(format string, a ...any) {
	l.write(l.warn, "[WARN] "+withNewline(format), a...)
}

// Error logs an error prefixed with [ERROR].
func (l *Logger) Error(format string, a ...any) {
	l.write(l.errf, "[ERROR] "+withNewline(format), a...)
}

// Debug logs a message prefixed with [DEBUG] when debug output is enabled.
func (l *Logger) Debug(format string, a ...any) {
	if !l.debug {
		return
	}
	l.write(l.dbg, "[DEBUG] "+withNewline(format), a...)
}

// DebugEnabled reports whether Debug messages are written.
func (l *Logger) DebugEnabled() bool {
	return l.debug
}

// Step prints a banner marking the start of a major step:
//
//	====================
//	Installing dependencies
//	====================
func (l *Logger) Step(title string) {
	l.write(l.info, "\n====================\n%s\n====================\n\n", title)
}

// withNewline terminates format with a newline unless it already ends in one.
func withNewline(format string) string {
	if strings.HasSuffix(format, "\n") {
		return format
	}
	return format + "\n"
}

// std is the process-wide logger used by the cobra layer.
var std = New(os.Stdout, false)

// Init replaces the process-wide logger, enabling or disabling debug output.
// It is called from the root command's PersistentPreRun.
func Init(enableDebug bool) {
	std = New(os.Stdout, enableDebug)
}

// Default returns the process-wide logger configured by Init.
func Default() *Logger {
	return std
}

// Error logs an error on the process-wide logger.
func Error(format string, a ...any) { std.Error(format, a...) }
