// Package readyio centralizes stream wiring and terminal capabilities for
// go-readycli applications: stdin/stdout/stderr overrides, TTY detection and
// color styling.
package readyio

import (
	stdio "io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// IOManager bundles the three standard streams together with color and
// terminal detection. The zero configuration binds to process stdio.
type IOManager struct {
	in  stdio.Reader
	out stdio.Writer
	err stdio.Writer

	forceColor bool
	noColor    bool
}

// New returns a manager bound to process stdio.
func New() *IOManager {
	return &IOManager{in: os.Stdin, out: os.Stdout, err: os.Stderr}
}

// WithIn sets the input reader and returns the manager for chaining.
func (m *IOManager) WithIn(r stdio.Reader) *IOManager { m.in = r; return m }

// WithOut sets the standard output writer and returns the manager for chaining.
func (m *IOManager) WithOut(w stdio.Writer) *IOManager { m.out = w; return m }

// WithErr sets the standard error writer and returns the manager for chaining.
func (m *IOManager) WithErr(w stdio.Writer) *IOManager { m.err = w; return m }

// ForceColor forces color output on, regardless of environment.
func (m *IOManager) ForceColor() *IOManager { m.forceColor = true; m.noColor = false; return m }

// NoColor disables color output, regardless of environment.
func (m *IOManager) NoColor() *IOManager { m.noColor = true; m.forceColor = false; return m }

// In returns the configured input reader.
func (m *IOManager) In() stdio.Reader { return m.in }

// Out returns the configured standard output writer.
func (m *IOManager) Out() stdio.Writer { return m.out }

// Err returns the configured standard error writer.
func (m *IOManager) Err() stdio.Writer { return m.err }

// IsTTY reports whether stdout is connected to a terminal.
func (m *IOManager) IsTTY() bool {
	f, ok := m.out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// IsInteractive reports whether stdin is a terminal outside CI.
func (m *IOManager) IsInteractive() bool {
	f, ok := m.in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) && os.Getenv("CI") == ""
}

// Width returns the terminal width, or 80 when it cannot be determined.
func (m *IOManager) Width() int {
	if f, ok := m.out.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return 80
}

// SupportsColor determines whether ANSI styling should be emitted on Out.
func (m *IOManager) SupportsColor() bool {
	if m.noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	if m.forceColor || os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if !m.IsTTY() {
		return false
	}
	t := os.Getenv("TERM")
	return t != "" && t != "dumb"
}

// sprint applies the given attributes when color is supported, otherwise
// returns s unchanged.
func (m *IOManager) sprint(s string, attrs ...color.Attribute) string {
	if !m.SupportsColor() {
		return s
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(s)
}

// Bold returns s in bold when color is supported.
func (m *IOManager) Bold(s string) string { return m.sprint(s, color.Bold) }

// Faint returns s in faint intensity when color is supported.
func (m *IOManager) Faint(s string) string { return m.sprint(s, color.Faint) }

// Red returns s in red when color is supported.
func (m *IOManager) Red(s string) string { return m.sprint(s, color.FgRed) }

// Green returns s in green when color is supported.
func (m *IOManager) Green(s string) string { return m.sprint(s, color.FgGreen) }

// Yellow returns s in yellow when color is supported.
func (m *IOManager) Yellow(s string) string { return m.sprint(s, color.FgYellow) }

// Cyan returns s in cyan when color is supported.
func (m *IOManager) Cyan(s string) string { return m.sprint(s, color.FgCyan) }
