// Package middleware provides composable wrappers around command executors:
// logging, panic recovery and execution timing.
//
// The package defines its contracts as interfaces to avoid an import cycle:
// the readycli package imports middleware, and *readycli.CommandContext
// satisfies Context.
package middleware

import "io"

// Command describes the command being executed. Implemented by
// *readycli.Command.
type Command interface {
	Name() string
	Description() string
}

// Context is the per-invocation view middleware can rely on. Implemented by
// *readycli.CommandContext.
type Context interface {
	// Command returns the command descriptor, for logging and error messages.
	Command() Command

	// Argument returns the value bound to the named required argument, or ""
	// when no such argument was declared.
	Argument(name string) string

	// Out returns the invocation's output stream.
	Out() io.Writer

	// In returns the invocation's input stream.
	In() io.Reader
}

// ActionFunc is the executor signature middleware wraps.
type ActionFunc func(ctx Context) error

// Middleware wraps an ActionFunc, returning a new one.
type Middleware func(next ActionFunc) ActionFunc

// Chain is an ordered list of middleware.
type Chain []Middleware

// Apply wraps action with the chain. Middleware run in the order they appear:
// the first element is outermost.
func (c Chain) Apply(action ActionFunc) ActionFunc {
	for i := len(c) - 1; i >= 0; i-- {
		action = c[i](action)
	}
	return action
}

// Use returns a new chain with the provided middleware appended.
func (c Chain) Use(middleware ...Middleware) Chain {
	return append(c, middleware...)
}

// New creates a chain from the provided middleware, preserving order.
func New(middleware ...Middleware) Chain {
	return Chain(middleware)
}

func commandName(ctx Context) string {
	cmd := ctx.Command()
	if cmd == nil {
		return "unknown"
	}
	return cmd.Name()
}
