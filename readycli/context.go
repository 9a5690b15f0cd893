package readycli

import (
	"context"
	"io"

	"github.com/readycli/go-readycli/middleware"
)

// CommandContext is the immutable per-invocation bundle handed to an
// executor: the resolved required-argument values, the resolved option
// values (explicit or defaulted), the invocation's I/O streams and the
// caller's context.Context. It is constructed fresh for every dispatch and
// discarded when the executor returns.
type CommandContext struct {
	command   *Command
	arguments map[string]string
	options   map[string]*OptionValues
	out       io.Writer
	in        io.Reader
	ctx       context.Context
}

// Command returns the descriptor of the command being executed.
func (c *CommandContext) Command() middleware.Command { return c.command }

// Argument returns the value bound to the named required argument, or ""
// when no such argument was declared.
func (c *CommandContext) Argument(name string) string { return c.arguments[name] }

// Arguments returns a copy of the argument-name to value mapping.
func (c *CommandContext) Arguments() map[string]string {
	out := make(map[string]string, len(c.arguments))
	for k, v := range c.arguments {
		out[k] = v
	}
	return out
}

// Option returns the resolved values for the named option. Every declared
// option is present: invoked options carry Flag()==true and the supplied
// parameter values, the rest carry their declared defaults.
func (c *CommandContext) Option(name string) *OptionValues { return c.options[name] }

// Options returns a copy of the option-name to values mapping.
func (c *CommandContext) Options() map[string]*OptionValues {
	out := make(map[string]*OptionValues, len(c.options))
	for k, v := range c.options {
		out[k] = v
	}
	return out
}

// Out returns the invocation's output stream.
func (c *CommandContext) Out() io.Writer { return c.out }

// In returns the invocation's input stream.
func (c *CommandContext) In() io.Reader { return c.in }

// Context returns the context.Context threaded through ExecuteContext, or
// context.Background() for the plain Execute variants. The resolver itself
// never blocks; the context exists for executors that do.
func (c *CommandContext) Context() context.Context { return c.ctx }
