// internal/printer/printer.go
package printer

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)
)

// Printer writes command output. Color follows fatih/color rules
// (disabled for non-TTY output and when NO_COLOR is set).
type Printer struct {
	Out io.Writer
	Err io.Writer
}

// Std prints to the process stdout and stderr.
func Std() *Printer {
	return &Printer{Out: os.Stdout, Err: os.Stderr}
}

// Found prints a slot that resolved or qualified.
func (p *Printer) Found(slot int, path string) {
	green.Fprintf(p.Out, "%02d", slot)
	fmt.Fprintf(p.Out, "  %s\n", path)
}

// Skipped prints a slot that was passed over, with the reason.
func (p *Printer) Skipped(slot int, reason string) {
	yellow.Fprintf(p.Err, "slot %d skipped: %s\n", slot, reason)
}

// Line prints one line of program content.
func (p *Printer) Line(s string) {
	fmt.Fprintln(p.Out, s)
}

// Header prints a section title.
func (p *Printer) Header(format string, a ...any) {
	cyan.Fprintf(p.Out, format+"\n", a...)
}

// Info prints an informational line.
func (p *Printer) Info(format string, a ...any) {
	fmt.Fprintf(p.Out, format+"\n", a...)
}

// Error prints a titled error to stderr and returns a plain error for cobra.
func (p *Printer) Error(title string, err error) error {
	red.Fprintf(p.Err, "%s\n", title)
	fmt.Fprintf(p.Err, "  %v\n", err)
	return fmt.Errorf("%s: %w", title, err)
}
