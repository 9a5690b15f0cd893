package readycli

import (
	"fmt"
	"sort"
	"strings"
)

// Parameter describes one positional parameter of an option. Parameters are
// consumed from the tokens that immediately follow the option key, in
// declaration order. Every parameter carries a default used when the option
// is not present on the command line.
type Parameter struct {
	name         string
	description  string
	defaultValue string
}

// Name returns the parameter name.
func (p Parameter) Name() string { return p.name }

// Description returns the parameter description used in documentation.
func (p Parameter) Description() string { return p.description }

// DefaultValue returns the value used when the owning option is not invoked.
func (p Parameter) DefaultValue() string { return p.defaultValue }

// Option is a named, optionally aliased, optionally parameterized switch.
// An option with no parameters is a boolean flag. Options are immutable once
// built; a command references the same Option under its "--name" key and one
// "-alias" key per alias.
type Option struct {
	name        string
	description string
	aliases     []string
	parameters  []Parameter
}

// Name returns the canonical option name (without the "--" prefix).
func (o *Option) Name() string { return o.name }

// Description returns the option description used in documentation.
func (o *Option) Description() string { return o.description }

// Aliases returns a copy of the alias list in declaration order.
func (o *Option) Aliases() []string {
	out := make([]string, len(o.aliases))
	copy(out, o.aliases)
	return out
}

// Parameters returns a copy of the parameter list in declaration order.
func (o *Option) Parameters() []Parameter {
	out := make([]Parameter, len(o.parameters))
	copy(out, o.parameters)
	return out
}

// values builds the OptionValues for an explicit invocation. supplied holds
// exactly one token per declared parameter, in declaration order.
func (o *Option) values(supplied []string) *OptionValues {
	params := make(map[string]string, len(o.parameters))
	for i, v := range supplied {
		params[o.parameters[i].name] = v
	}
	return &OptionValues{optionName: o.name, flag: true, parameters: params}
}

// defaults builds the OptionValues for an option that was not invoked: the
// flag is false and every parameter carries its declared default.
func (o *Option) defaults() *OptionValues {
	params := make(map[string]string, len(o.parameters))
	for _, p := range o.parameters {
		params[p.name] = p.defaultValue
	}
	return &OptionValues{optionName: o.name, flag: false, parameters: params}
}

// OptionBuilder accumulates the definition of one Option via a fluent API.
type OptionBuilder struct {
	option Option
}

// NewOption starts building an option with the given canonical name and
// description. The name must match [A-Za-z][A-Za-z0-9-]*; a violation panics.
func NewOption(name, description string) *OptionBuilder {
	checkIdentifier(name)
	return &OptionBuilder{option: Option{name: name, description: description}}
}

// Alias adds one or more aliases, each usable on the command line as
// "-alias". Invalid alias names panic.
func (b *OptionBuilder) Alias(aliases ...string) *OptionBuilder {
	for _, alias := range aliases {
		checkIdentifier(alias)
	}
	b.option.aliases = append(b.option.aliases, aliases...)
	return b
}

// Parameter appends a parameter with its description and default value.
// Declaration order is the consumption order on the command line.
func (b *OptionBuilder) Parameter(name, description, defaultValue string) *OptionBuilder {
	checkIdentifier(name)
	b.option.parameters = append(b.option.parameters, Parameter{
		name:         name,
		description:  description,
		defaultValue: defaultValue,
	})
	return b
}

// Build returns the finished Option as a defensive copy, so the builder can
// no longer affect it.
func (b *OptionBuilder) Build() *Option {
	opt := &Option{
		name:        b.option.name,
		description: b.option.description,
		aliases:     make([]string, len(b.option.aliases)),
		parameters:  make([]Parameter, len(b.option.parameters)),
	}
	copy(opt.aliases, b.option.aliases)
	copy(opt.parameters, b.option.parameters)
	return opt
}

// OptionValues holds the resolved state of one option for a single
// invocation. Flag reports whether the option appeared explicitly on the
// command line; Parameters always contains every declared parameter, mapped
// to either the supplied value or the declared default.
type OptionValues struct {
	optionName string
	flag       bool
	parameters map[string]string
}

// OptionName returns the canonical name of the option these values belong to.
func (v *OptionValues) OptionName() string { return v.optionName }

// Flag reports whether the option was explicitly present on the command line.
func (v *OptionValues) Flag() bool { return v.flag }

// Parameters returns a copy of the parameter-name to value mapping.
func (v *OptionValues) Parameters() map[string]string {
	out := make(map[string]string, len(v.parameters))
	for k, val := range v.parameters {
		out[k] = val
	}
	return out
}

// Get returns the value bound to the named parameter, or "" when the
// parameter was never declared.
func (v *OptionValues) Get(name string) string { return v.parameters[name] }

func (v *OptionValues) String() string {
	keys := make([]string, 0, len(v.parameters))
	for k := range v.parameters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var sb strings.Builder
	fmt.Fprintf(&sb, "{flag=%t, parameters={", v.flag)
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%s", k, v.parameters[k])
	}
	sb.WriteString("}}")
	return sb.String()
}
