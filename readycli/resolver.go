package readycli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/readycli/go-readycli/internal/fuzzy"
	"github.com/readycli/go-readycli/middleware"
)

// suggestion edit distance for unexpected-token diagnostics
const suggestMaxDistance = 2

// Execute resolves args against this command using process stdio. The first
// element of args is treated as part of the argument stream, not as the
// command's own name: callers parsing a main() vector pass os.Args[1:].
func (c *Command) Execute(args []string) ExitCause {
	return c.ExecuteWithIO(args, os.Stdout, os.Stdin)
}

// ExecuteWithIO resolves args against this command, writing diagnostics and
// help to out and handing both streams to the executor.
func (c *Command) ExecuteWithIO(args []string, out io.Writer, in io.Reader) ExitCause {
	return c.ExecuteContext(context.Background(), args, out, in)
}

// ExecuteLine tokenizes line per Tokenize and resolves the result.
func (c *Command) ExecuteLine(line string, out io.Writer, in io.Reader) ExitCause {
	return c.ExecuteWithIO(Tokenize(line), out, in)
}

// ExecuteContext is ExecuteWithIO with a caller-supplied context that is
// made available to the executor through CommandContext. Resolution itself
// is a bounded synchronous computation and does not observe ctx.
func (c *Command) ExecuteContext(ctx context.Context, args []string, out io.Writer, in io.Reader) ExitCause {
	cause, _ := c.resolve(ctx, args, out, in)
	return cause
}

// ExecuteLineContext is ExecuteLine with a caller-supplied context.
func (c *Command) ExecuteLineContext(ctx context.Context, line string, out io.Writer, in io.Reader) ExitCause {
	return c.ExecuteContext(ctx, Tokenize(line), out, in)
}

// resolve runs the decision sequence on the token list presented to this
// node, strictly in priority order:
//
//  1. documentation alias as first token -> render help
//  2. sub-command as first token -> recurse with the tail
//  3. single left-to-right scan: option keys consume their declared
//     parameter count, other tokens fill positional slots in order
//  4. completeness check on positional arguments
//  5. default backfill for options not found under any of their keys
//  6. dispatch to the executor
//
// Every failure is rendered to out and folded into an ExitCause; nothing
// propagates past this boundary. The second return value carries an
// executor's *ExitRequest (treated as ordinary success) so that an outer
// run loop can observe it.
func (c *Command) resolve(ctx context.Context, tokens []string, out io.Writer, in io.Reader) (ExitCause, error) {
	if len(tokens) > 0 && c.hasDocumentationAlias(tokens[0]) {
		return c.PrintDocumentation(out), nil
	}

	if len(tokens) > 0 {
		if sub, ok := c.subCommands[tokens[0]]; ok {
			return sub.resolve(ctx, tokens[1:], out, in)
		}
	}

	arguments := make(map[string]string, len(c.requiredArguments))
	options := make(map[string]*OptionValues, len(c.options))
	found := make(map[*Option]bool)

	argCursor := 0
	for i := 0; i < len(tokens); i++ {
		token := tokens[i]

		if opt, ok := c.options[token]; ok {
			start := i + 1
			end := start + len(opt.parameters)
			if end > len(tokens) {
				missing := opt.parameters[len(tokens)-start]
				return c.report(out, &ResolveError{
					Cause:   ExitExpectedOptionParameter,
					Message: fmt.Sprintf("expected parameter <%s> for option --%s", missing.name, opt.name),
				}), nil
			}
			options[opt.name] = opt.values(tokens[start:end])
			found[opt] = true
			i = end - 1
			continue
		}

		if argCursor < len(c.requiredArguments) {
			arguments[c.requiredArguments[argCursor].name] = token
			argCursor++
			continue
		}

		return c.report(out, &ResolveError{
			Cause:      ExitUnexpectedOption,
			Message:    fmt.Sprintf("unexpected token %q at position %d", token, i),
			Suggestion: c.suggestFor(token),
		}), nil
	}

	if argCursor < len(c.requiredArguments) {
		return c.report(out, &ResolveError{
			Cause:   ExitExpectedArgument,
			Message: fmt.Sprintf("expected argument <%s>", c.requiredArguments[argCursor].name),
		}), nil
	}

	// backfill defaults by option identity, so an option invoked under any of
	// its keys is never defaulted
	for _, opt := range c.distinctOptions() {
		if !found[opt] {
			options[opt.name] = opt.defaults()
		}
	}

	if c.executor == nil {
		return c.report(out, &ResolveError{
			Cause:   ExitNotImplemented,
			Message: fmt.Sprintf("command %q is not implemented", c.name),
		}), nil
	}

	cctx := &CommandContext{
		command:   c,
		arguments: arguments,
		options:   options,
		out:       out,
		in:        in,
		ctx:       ctx,
	}
	err := c.dispatch(cctx)
	if err != nil {
		var req *ExitRequest
		if errors.As(err, &req) {
			return ExitSuccess, req
		}
		return c.report(out, &ResolveError{
			Cause:   ExitExecutorError,
			Message: fmt.Sprintf("command %q failed: %v", c.name, err),
		}), nil
	}
	return ExitSuccess, nil
}

// dispatch runs the executor through the command's middleware chain,
// recovering panics at the boundary so no executor failure can escape an
// Execute call.
func (c *Command) dispatch(cctx *CommandContext) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("executor panicked: %v", r)
		}
	}()

	action := func(mctx middleware.Context) error {
		return c.executor(mctx.(*CommandContext))
	}
	return c.middleware.Apply(action)(cctx)
}

// suggestFor builds a "did you mean" hint for an unexpected token from the
// command's option keys and sub-command names.
func (c *Command) suggestFor(token string) string {
	candidates := make([]string, 0, len(c.options)+len(c.subCommands))
	for key := range c.options {
		candidates = append(candidates, key)
	}
	for name := range c.subCommands {
		candidates = append(candidates, name)
	}
	best := fuzzy.FindBest(token, candidates, suggestMaxDistance)
	if best == "" {
		return ""
	}
	return fmt.Sprintf("Did you mean %q?", best)
}
