package readycli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"unicode"
)

// CLI is an interactive read-eval loop over a flat registry of commands.
// Each input line is split into a leading command name and a raw argument
// tail; the tail is tokenized and resolved by the named command. The
// registry is guarded by a mutex so host code may add and remove commands
// while the loop is running; the command trees themselves are immutable.
type CLI struct {
	mu       sync.Mutex
	title    string
	prompt   string
	commands map[string]*Command
}

// NewCLI creates an interactive CLI with the given title, printed once when
// the loop starts.
func NewCLI(title string) *CLI {
	return &CLI{
		title:    title,
		commands: make(map[string]*Command),
	}
}

// SetTitle replaces the CLI title.
func (c *CLI) SetTitle(title string) *CLI {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.title = title
	return c
}

// SetPrompt sets the string printed before each input line. An empty prompt
// prints nothing.
func (c *CLI) SetPrompt(prompt string) *CLI {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prompt = prompt
	return c
}

// AddCommand registers a command under its name. Registering a second
// command with the same name panics: duplicate names are a programming
// mistake in the CLI definition.
func (c *CLI) AddCommand(cmd *Command) *CLI {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.commands[cmd.name]; ok {
		panic(fmt.Sprintf("readycli: command name %q already assigned", cmd.name))
	}
	c.commands[cmd.name] = cmd
	return c
}

// RemoveCommand unregisters the named command. Removing an unknown name is a
// no-op.
func (c *CLI) RemoveCommand(name string) *CLI {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.commands, name)
	return c
}

// lookup returns the named command under the registry lock.
func (c *CLI) lookup(name string) (*Command, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cmd, ok := c.commands[name]
	return cmd, ok
}

// PrintHelp writes a one-line summary of every registered command.
func (c *CLI) PrintHelp(out io.Writer) {
	c.mu.Lock()
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	commands := make(map[string]*Command, len(c.commands))
	for name, cmd := range c.commands {
		commands[name] = cmd
	}
	c.mu.Unlock()

	sort.Strings(names)

	fmt.Fprintln(out, "Available commands:")
	for _, name := range names {
		cmd := commands[name]
		fmt.Fprintf(out, "\t%s: %s", name, cmd.description)
		if len(cmd.documentationAliases) > 0 {
			fmt.Fprintf(out, " (type: %s %s to get its documentation)",
				name, cmd.documentationAliases[0])
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, "Type ? to print this list again.")
}

// Run executes the read-eval loop until in is exhausted or an executor
// returns an ExitRequest. The returned error is nil on a requested exit or
// clean EOF, and the reader's error otherwise.
func (c *CLI) Run(out io.Writer, in io.Reader) error {
	return c.RunContext(context.Background(), out, in)
}

// RunContext is Run with a caller-supplied context, checked between lines
// and passed through to executors.
func (c *CLI) RunContext(ctx context.Context, out io.Writer, in io.Reader) error {
	scanner := bufio.NewScanner(in)

	if c.title != "" {
		fmt.Fprintln(out, c.title)
		fmt.Fprintln(out, "Type ? to list the available commands.")
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if c.prompt != "" {
			fmt.Fprint(out, c.prompt)
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		name, rest := splitCommandLine(line)
		switch {
		case name == "?":
			c.PrintHelp(out)
		default:
			cmd, ok := c.lookup(name)
			if !ok {
				fmt.Fprintf(out, "Unknown command: %s\n", name)
				break
			}
			_, err := cmd.resolve(ctx, Tokenize(rest), out, in)
			var req *ExitRequest
			if errors.As(err, &req) {
				return nil
			}
		}
		fmt.Fprintln(out)
	}
}

// splitCommandLine separates the leading command name from the raw argument
// tail. The tail keeps its original spelling so the command tokenizer can
// honor quoting.
func splitCommandLine(line string) (name, rest string) {
	idx := strings.IndexFunc(line, unicode.IsSpace)
	if idx < 0 {
		return line, ""
	}
	return line[:idx], strings.TrimSpace(line[idx:])
}
