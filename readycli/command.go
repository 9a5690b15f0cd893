package readycli

import (
	"fmt"
	"sort"

	"github.com/readycli/go-readycli/middleware"
)

// Executor is the user-supplied handler invoked with the built context once
// resolution succeeds. Returning *ExitRequest asks the surrounding run loop
// to terminate; any other non-nil error is reported as an executor failure.
type Executor func(ctx *CommandContext) error

// Command is a node in the command tree: a name, documentation, required
// positional arguments, named options, sub-commands and an optional executor.
// A Command is built once via Builder and is read-only afterwards, so
// concurrent Execute calls on the same tree are always safe.
type Command struct {
	name        string
	description string
	usageString string

	requiredArguments    []RequiredArgument
	options              map[string]*Option // keyed by "--name" and "-alias"
	subCommands          map[string]*Command
	documentationAliases []string

	// non-owning back-reference, used only to compose usage strings
	parent *Command

	executor   Executor
	middleware middleware.Chain
}

// Name returns the command name.
func (c *Command) Name() string { return c.name }

// Description returns the one-line command description.
func (c *Command) Description() string { return c.description }

// UsageString returns this node's own usage fragment. Full usage lines are
// composed from the parent chain during help rendering.
func (c *Command) UsageString() string { return c.usageString }

// Parent returns the owning command, or nil for a root.
func (c *Command) Parent() *Command { return c.parent }

// RequiredArguments returns a copy of the declared positional arguments in
// consumption order.
func (c *Command) RequiredArguments() []RequiredArgument {
	out := make([]RequiredArgument, len(c.requiredArguments))
	copy(out, c.requiredArguments)
	return out
}

// Options returns a copy of the option table. Keys are the command-line
// spellings ("--name", "-alias"); aliased options appear under every key.
func (c *Command) Options() map[string]*Option {
	out := make(map[string]*Option, len(c.options))
	for k, v := range c.options {
		out[k] = v
	}
	return out
}

// SubCommands returns a copy of the sub-command table keyed by name.
func (c *Command) SubCommands() map[string]*Command {
	out := make(map[string]*Command, len(c.subCommands))
	for k, v := range c.subCommands {
		out[k] = v
	}
	return out
}

// DocumentationAliases returns the sorted set of first tokens that trigger
// help rendering for this node.
func (c *Command) DocumentationAliases() []string {
	out := make([]string, len(c.documentationAliases))
	copy(out, c.documentationAliases)
	return out
}

// distinctOptions returns the command's options de-duplicated across their
// alias keys, sorted by canonical name. Help rendering and default
// backfilling both work on option identity, not table keys.
func (c *Command) distinctOptions() []*Option {
	seen := make(map[*Option]bool, len(c.options))
	out := make([]*Option, 0, len(c.options))
	for _, opt := range c.options {
		if !seen[opt] {
			seen[opt] = true
			out = append(out, opt)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// hasDocumentationAlias reports whether token is one of this node's
// documentation aliases.
func (c *Command) hasDocumentationAlias(token string) bool {
	for _, alias := range c.documentationAliases {
		if alias == token {
			return true
		}
	}
	return false
}

// Builder accumulates the definition of one Command. It is one-shot: Build
// freezes the command and invalidates the builder, so every builder instance
// produces exactly one Command. All mutators panic on identifier collisions
// or after Build — tree-definition mistakes are fatal at construction time.
type Builder struct {
	command *Command
}

// NewCommand starts building a command with the given name, description,
// usage fragment and documentation aliases. The name must match
// [A-Za-z][A-Za-z0-9-]*.
func NewCommand(name, description, usageString string, docAliases ...string) *Builder {
	checkIdentifier(name)
	b := &Builder{command: &Command{
		name:        name,
		description: description,
		usageString: usageString,
		options:     make(map[string]*Option),
		subCommands: make(map[string]*Command),
	}}
	return b.DocumentationAlias(docAliases...)
}

// ForMain starts building a command that parses a main() argument vector:
// empty usage fragment and the standard documentation aliases "?", "--help"
// and "-h".
func ForMain(name, description string) *Builder {
	return NewCommand(name, description, "", "?", "--help", "-h")
}

// ForCLI starts building a command intended for an interactive CLI: the
// usage fragment is the command name itself, with the standard documentation
// aliases.
func ForCLI(name, description string) *Builder {
	return NewCommand(name, description, name, "?", "--help", "-h")
}

// checkState panics when the builder has already produced its command.
func (b *Builder) checkState() {
	if b.command == nil {
		panic("readycli: builder already used, each builder builds exactly one command")
	}
}

// checkCollision panics when name is already taken by a required argument,
// an option key, a sub-command or a documentation alias. All four share one
// namespace within a command.
func (b *Builder) checkCollision(name string) {
	for _, arg := range b.command.requiredArguments {
		if arg.name == name {
			b.collide(name)
		}
	}
	if _, ok := b.command.options[name]; ok {
		b.collide(name)
	}
	if _, ok := b.command.subCommands[name]; ok {
		b.collide(name)
	}
	if b.command.hasDocumentationAlias(name) {
		b.collide(name)
	}
}

func (b *Builder) collide(name string) {
	panic(fmt.Sprintf("readycli: the name or alias %q is already assigned in command %q", name, b.command.name))
}

// RequiredArgument appends a positional argument. Declaration order defines
// consumption order.
func (b *Builder) RequiredArgument(name, description string) *Builder {
	b.checkState()
	arg := newRequiredArgument(name, description)
	b.checkCollision(name)
	b.command.requiredArguments = append(b.command.requiredArguments, arg)
	return b
}

// Flag adds a parameterless option, i.e. a boolean flag.
func (b *Builder) Flag(name, description string) *Builder {
	b.checkState()
	return b.Option(NewOption(name, description).Build())
}

// Option adds a fully built option under its "--name" key and one "-alias"
// key per alias. Every key maps to the same Option identity.
func (b *Builder) Option(option *Option) *Builder {
	b.checkState()
	b.checkCollision("--" + option.name)
	for _, alias := range option.aliases {
		b.checkCollision("-" + alias)
	}
	b.command.options["--"+option.name] = option
	for _, alias := range option.aliases {
		b.command.options["-"+alias] = option
	}
	return b
}

// SubCommand attaches a built command as a child, wiring its parent
// back-reference for usage-string composition.
func (b *Builder) SubCommand(sub *Command) *Builder {
	b.checkState()
	b.checkCollision(sub.name)
	sub.parent = b.command
	b.command.subCommands[sub.name] = sub
	return b
}

// DocumentationAlias registers first-token strings that trigger help
// rendering instead of normal resolution.
func (b *Builder) DocumentationAlias(aliases ...string) *Builder {
	b.checkState()
	for _, alias := range aliases {
		b.checkCollision(alias)
		b.command.documentationAliases = append(b.command.documentationAliases, alias)
	}
	sort.Strings(b.command.documentationAliases)
	return b
}

// Use appends middleware applied around the executor at dispatch, outermost
// first.
func (b *Builder) Use(middleware ...middleware.Middleware) *Builder {
	b.checkState()
	b.command.middleware = b.command.middleware.Use(middleware...)
	return b
}

// Build attaches the executor (which may be nil for a documentation stub or
// a pure sub-command router) and returns the finished Command. The builder
// is invalidated: any further call panics.
func (b *Builder) Build(executor Executor) *Command {
	b.checkState()
	b.command.executor = executor

	cmd := b.command
	b.command = nil
	return cmd
}
