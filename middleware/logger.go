package middleware

import (
	"time"

	readyio "github.com/readycli/go-readycli/io"
)

// Logging creates a middleware that logs command start, completion and
// failure through the given logger.
func Logging(logger *readyio.Logger) Middleware {
	return func(next ActionFunc) ActionFunc {
		return func(ctx Context) error {
			name := commandName(ctx)
			logger.Debugf("running command '%s'", name)

			start := time.Now()
			err := next(ctx)
			elapsed := time.Since(start)

			if err != nil {
				logger.Errorf("command '%s' failed after %s: %v", name, elapsed, err)
				return err
			}
			logger.Debugf("command '%s' completed in %s", name, elapsed)
			return nil
		}
	}
}

// Timing creates a middleware that records the execution duration of every
// invocation through the callback. Useful for metrics hooks in host
// applications.
func Timing(record func(command string, elapsed time.Duration)) Middleware {
	return func(next ActionFunc) ActionFunc {
		return func(ctx Context) error {
			start := time.Now()
			err := next(ctx)
			record(commandName(ctx), time.Since(start))
			return err
		}
	}
}
