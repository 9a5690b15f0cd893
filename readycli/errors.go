package readycli

import (
	"fmt"
	"io"
	"strings"
)

// ResolveError describes one resolution failure: the ExitCause
// classification, a human-readable message and an optional "did you mean"
// suggestion. Resolution failures never escape Execute; they are rendered to
// the output stream and folded into the returned ExitCause.
type ResolveError struct {
	Cause      ExitCause
	Message    string
	Suggestion string
}

func (e *ResolveError) Error() string { return e.Message }

// report writes the diagnostic for a failed resolution: the message, the
// suggestion when present, and a reminder of the command's documentation
// aliases.
func (c *Command) report(out io.Writer, e *ResolveError) ExitCause {
	fmt.Fprintf(out, "Error: %s\n", e.Message)
	if e.Suggestion != "" {
		fmt.Fprintf(out, "  %s\n", e.Suggestion)
	}
	if len(c.documentationAliases) > 0 {
		fmt.Fprintf(out, "\nType %s to get the documentation of this command.\n",
			strings.Join(c.documentationAliases, " or "))
	}
	return e.Cause
}
