// Package log provides the minimal verbose logger shared by the
// cornsmith subcommands.
package log

import (
	"fmt"
	"io"
)

// Logger writes verbose diagnostic messages when Enabled is true.
// Output goes to the configured writer (typically stderr), each line
// prefixed with Prefix.
type Logger struct {
	Enabled bool
	Prefix  string
	W       io.Writer
}

// Printf writes a formatted message to W when Enabled is true.
// It is a no-op when Enabled is false or no writer is set.
func (l *Logger) Printf(format string, args ...any) {
	if !l.Enabled || l.W == nil {
		return
	}
	_, _ = fmt.Fprintf(l.W, l.Prefix+format+"\n", args...)
}
