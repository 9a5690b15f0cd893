package readycli

import "fmt"

// ExitCause classifies the outcome of one resolution attempt. The set is
// closed: every Execute call returns exactly one of these values and never
// panics or returns an error past its boundary.
type ExitCause int

const (
	// ExitSuccess means the command executed normally.
	ExitSuccess ExitCause = iota
	// ExitHelp means a documentation alias was recognized and help was
	// rendered instead of executing.
	ExitHelp
	// ExitExpectedArgument means a declared required argument was missing.
	ExitExpectedArgument
	// ExitExpectedOptionParameter means an option was invoked with fewer
	// parameter tokens than it declares.
	ExitExpectedOptionParameter
	// ExitUnexpectedOption means a token matched neither an option key nor an
	// open positional slot.
	ExitUnexpectedOption
	// ExitNotImplemented means the resolved command has no executor attached.
	ExitNotImplemented
	// ExitExecutorError means the executor itself failed or panicked.
	ExitExecutorError
)

// Code returns the numeric code surfaced to a process boundary by a thin
// caller. Help intentionally shares the success code.
func (c ExitCause) Code() int {
	switch c {
	case ExitSuccess, ExitHelp:
		return 0
	case ExitExpectedArgument:
		return -1
	case ExitExpectedOptionParameter:
		return -2
	case ExitUnexpectedOption:
		return -3
	case ExitNotImplemented:
		return -4
	case ExitExecutorError:
		return -5
	default:
		return -5
	}
}

// Failed reports whether the cause represents a resolution or execution
// failure. Help rendering is not a failure.
func (c ExitCause) Failed() bool {
	return c != ExitSuccess && c != ExitHelp
}

func (c ExitCause) String() string {
	switch c {
	case ExitSuccess:
		return "success"
	case ExitHelp:
		return "help"
	case ExitExpectedArgument:
		return "expected-argument"
	case ExitExpectedOptionParameter:
		return "expected-option-parameter"
	case ExitUnexpectedOption:
		return "unexpected-option"
	case ExitNotImplemented:
		return "command-not-implemented"
	case ExitExecutorError:
		return "command-executor-error"
	default:
		return fmt.Sprintf("ExitCause(%d)", int(c))
	}
}

// ExitRequest is a sentinel an executor may return to ask the surrounding run
// loop to terminate. The resolver treats it as ordinary completion; only an
// outer loop such as CLI.Run interprets it.
type ExitRequest struct {
	Code int
}

func (e *ExitRequest) Error() string {
	return fmt.Sprintf("exit requested (code %d)", e.Code)
}

// Exit returns an ExitRequest with the given process exit code. Intended for
// use inside executors: `return readycli.Exit(0)`.
func Exit(code int) error {
	return &ExitRequest{Code: code}
}
