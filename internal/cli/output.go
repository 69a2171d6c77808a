package cli

import (
	"io"

	"github.com/fatih/color"
)

var (
	errorColor = color.New(color.FgRed, color.Bold)
	warnColor  = color.New(color.FgYellow)
)

// output prints user-facing messages to stderr; stdout is reserved for CEF lines.
type output struct {
	w io.Writer
}

func newOutput(w io.Writer) *output {
	return &output{w: w}
}

func (o *output) Error(format string, a ...any) {
	errorColor.Fprintf(o.w, "✗ "+format+"\n", a...)
}

func (o *output) Warn(format string, a ...any) {
	warnColor.Fprintf(o.w, "⚠ "+format+"\n", a...)
}
