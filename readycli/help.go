package readycli

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// PrintDocumentation renders this command's documentation to out and returns
// ExitHelp unconditionally. The rendering reflects the resolver's own rules:
// aliased options appear once under their canonical name, and sub-commands
// are summarized without their arguments or options so help output stays
// bounded per level.
func (c *Command) PrintDocumentation(out io.Writer) ExitCause {
	if c.executor == nil && len(c.subCommands) == 0 {
		fmt.Fprintln(out, "No documentation available for this command.")
		return ExitHelp
	}

	fullUsage := c.fullUsage()

	fmt.Fprintln(out, "Command:")
	fmt.Fprintf(out, "\t%s - %s\n", c.name, c.description)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Usage:")
	if c.executor != nil {
		fmt.Fprintf(out, "\t%s", fullUsage)
		for _, arg := range c.requiredArguments {
			fmt.Fprintf(out, " <%s>", arg.name)
		}
		for _, opt := range c.distinctOptions() {
			fmt.Fprintf(out, " [--%s", opt.name)
			for _, param := range opt.parameters {
				fmt.Fprintf(out, " <%s>", param.name)
			}
			fmt.Fprint(out, "]")
		}
		fmt.Fprintln(out)
	}
	if len(c.subCommands) > 0 {
		fmt.Fprintf(out, "\t%s {<sub-command> <sub-command arguments ...>}\n", fullUsage)
	}

	if c.executor != nil && len(c.requiredArguments) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Required arguments:")
		for i, arg := range c.requiredArguments {
			fmt.Fprintf(out, "\t(%d)\t<%s>:  %s\n", i+1, arg.name, arg.description)
		}
	}

	if len(c.documentationAliases) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Documentation options:")
		fmt.Fprintf(out, "\t%s:  prints this documentation\n",
			strings.Join(c.documentationAliases, ", "))
	}

	if c.executor != nil && len(c.options) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Options:")
		for _, opt := range c.distinctOptions() {
			fmt.Fprintf(out, "\t--%s", opt.name)
			for _, alias := range opt.aliases {
				fmt.Fprintf(out, ", -%s", alias)
			}
			fmt.Fprintf(out, ":  %s\n", opt.description)
			if len(opt.parameters) > 0 {
				fmt.Fprintln(out, "\t\tParameters:")
				for i, param := range opt.parameters {
					fmt.Fprintf(out, "\t\t(%d)\t%s:  %s (default value: %q)\n",
						i+1, param.name, param.description, param.defaultValue)
				}
			}
		}
	}

	if len(c.subCommands) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Sub-commands:")
		for _, name := range c.sortedSubCommandNames() {
			sub := c.subCommands[name]
			fmt.Fprintf(out, "\t%s: %s", sub.name, sub.description)
			if len(sub.documentationAliases) > 0 {
				fmt.Fprintf(out, " (type: %s to get its documentation)",
					strings.Join(sub.documentationAliases, " or "))
			}
			fmt.Fprintln(out)
		}
	}
	fmt.Fprintln(out)
	return ExitHelp
}

// fullUsage composes the usage line by walking the parent chain from this
// node to the root and joining each usage fragment root-first.
func (c *Command) fullUsage() string {
	fragments := make([]string, 0, 4)
	for node := c; node != nil; node = node.parent {
		if node.usageString != "" {
			fragments = append(fragments, node.usageString)
		}
	}
	// reverse: collected leaf-first, rendered root-first
	for i, j := 0, len(fragments)-1; i < j; i, j = i+1, j-1 {
		fragments[i], fragments[j] = fragments[j], fragments[i]
	}
	return strings.Join(fragments, " ")
}

func (c *Command) sortedSubCommandNames() []string {
	names := make([]string, 0, len(c.subCommands))
	for name := range c.subCommands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
