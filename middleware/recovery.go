package middleware

import "runtime"

const defaultStackSize = 4096

// RecoveryError reports a panic recovered during command execution.
type RecoveryError struct {
	Panic   any
	Command string
	Stack   []byte
}

func (e *RecoveryError) Error() string {
	return "command '" + e.Command + "' panicked: " + panicString(e.Panic)
}

// Recovery creates a middleware that converts executor panics into a
// *RecoveryError return, capturing the goroutine stack.
func Recovery() Middleware {
	return func(next ActionFunc) ActionFunc {
		return func(ctx Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					stack := make([]byte, defaultStackSize)
					n := runtime.Stack(stack, false)
					err = &RecoveryError{
						Panic:   r,
						Command: commandName(ctx),
						Stack:   stack[:n],
					}
				}
			}()
			return next(ctx)
		}
	}
}

func panicString(v any) string {
	switch x := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return x
	case error:
		return x.Error()
	default:
		return "<unknown>"
	}
}
