package readycli

import (
	"fmt"
	"regexp"
)

// identifierPattern constrains command, argument, option and alias names.
var identifierPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9-]*$`)

// checkIdentifier panics when name is not a valid identifier. Identifier
// problems are programming mistakes in the tree definition and are fatal at
// construction time.
func checkIdentifier(name string) {
	if !identifierPattern.MatchString(name) {
		panic(fmt.Sprintf("readycli: invalid name %q: must match %s", name, identifierPattern.String()))
	}
}

// RequiredArgument describes one positional argument of a command. Arguments
// are consumed from the command line in declaration order.
type RequiredArgument struct {
	name        string
	description string
}

func newRequiredArgument(name, description string) RequiredArgument {
	checkIdentifier(name)
	return RequiredArgument{name: name, description: description}
}

// Name returns the argument name.
func (a RequiredArgument) Name() string { return a.name }

// Description returns the argument description used in documentation.
func (a RequiredArgument) Description() string { return a.description }
