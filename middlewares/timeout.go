package middlewares

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrymomot/msgfmt/internal"
)

// DefaultTimeout is the default request timeout.
const DefaultTimeout = 30 * time.Second

// Timeout returns middleware that puts a deadline on the request context.
// Handlers observe it through the context they pass down (the pattern
// compiler and cache stores do). When the deadline passes before anything
// was written, a *TimeoutError goes to the error handler.
func Timeout(timeout time.Duration) internal.Middleware {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			ctx, cancel := context.WithTimeout(c.Context(), timeout)
			defer cancel()
			c.SetContext(ctx)

			err := next(c)
			if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Written() {
				c.LogWarn("request timeout", "timeout", timeout.String())
				return &TimeoutError{Duration: timeout, Err: err}
			}
			return err
		}
	}
}
