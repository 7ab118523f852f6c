package log

import (
	"fmt"
	"io"
	"os"
)

// Logger writes verbose diagnostic messages when Enabled is true.
// Output goes to the configured writer (typically stderr).
// A nil *Logger is valid and discards everything, so pipeline code can
// thread a logger through without nil checks at every call site.
type Logger struct {
	Enabled bool
	W       io.Writer
}

// New returns a logger that writes to stderr when verbose is true.
func New(verbose bool) *Logger {
	return &Logger{Enabled: verbose, W: os.Stderr}
}

// Printf writes a formatted message to W when Enabled is true.
// It is a no-op when the logger is nil or disabled.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil || !l.Enabled {
		return
	}
	_, _ = fmt.Fprintf(l.W, format+"\n", args...)
}
