package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/mesh-intelligence/shipyard/pkg/types"
)

// Printer formats status lines onto a writer.
type Printer struct {
	out    io.Writer
	cyan   *color.Color
	green  *color.Color
	red    *color.Color
	yellow *color.Color
	alarm  *color.Color
	dim    *color.Color
}

// New returns a Printer writing to w. When noColor is true, color codes
// are never emitted; otherwise fatih/color decides based on the terminal.
func New(w io.Writer, noColor bool) *Printer {
	p := &Printer{
		out:    w,
		cyan:   color.New(color.FgCyan),
		green:  color.New(color.FgGreen),
		red:    color.New(color.FgRed),
		yellow: color.New(color.FgYellow),
		alarm:  color.New(color.FgRed, color.Bold),
		dim:    color.New(color.Faint),
	}
	if noColor {
		for _, c := range []*color.Color{p.cyan, p.green, p.red, p.yellow, p.alarm, p.dim} {
			c.DisableColor()
		}
	}
	return p
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer { return p.out }

func (p *Printer) line(marker *color.Color, symbol, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(p.out, "  %s %s\n", marker.Sprint(symbol), msg)
}

// Info prints an informational message.
func (p *Printer) Info(format string, args ...any) { p.line(p.cyan, "→", format, args...) }

// Success prints a success message.
func (p *Printer) Success(format string, args ...any) { p.line(p.green, "✔", format, args...) }

// Fail prints an error message.
func (p *Printer) Fail(format string, args ...any) { p.line(p.red, "✘", format, args...) }

// Warn prints a warning message.
func (p *Printer) Warn(format string, args ...any) { p.line(p.yellow, "○", format, args...) }

// Dim prints a dimmed secondary message.
func (p *Printer) Dim(format string, args ...any) {
	fmt.Fprintf(p.out, "  %s\n", p.dim.Sprintf(format, args...))
}

// Loaded confirms a successful load into c.
func (p *Printer) Loaded(c types.Container, amount float64) {
	p.Success("loaded %g kg into %s container %s (%g/%g kg)",
		amount, c.Kind(), c.ID(), c.CurrentLoad(), c.MaxCapacity())
}

// Hazard returns a writer suitable for types.WithHazardOutput. Every line
// written to it is printed with the hazard marker.
func (p *Printer) Hazard() io.Writer {
	return hazardWriter{p: p}
}

type hazardWriter struct {
	p *Printer
}

func (h hazardWriter) Write(b []byte) (int, error) {
	msg := string(b)
	for len(msg) > 0 && msg[len(msg)-1] == '\n' {
		msg = msg[:len(msg)-1]
	}
	h.p.line(h.p.alarm, "⚠", "%s", msg)
	return len(b), nil
}
