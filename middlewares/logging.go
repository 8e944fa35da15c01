package middlewares

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/msgfmt/internal"
)

// RequestLogger returns middleware that logs one line per request with the
// method, path, status, response size and duration. Server errors log at
// error level, client errors at warn, everything else at info.
func RequestLogger() internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			start := time.Now()
			err := next(c)

			status, size := 0, int64(0)
			if rw, ok := c.Response().(*internal.ResponseWriter); ok {
				status, size = rw.Status(), rw.Size()
			}
			if err != nil && !c.Written() {
				// The error handler writes later; report the status it will use.
				status = statusForError(err)
			}

			attrs := []any{
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.Int("status", status),
				slog.Int64("size", size),
				slog.Duration("duration", time.Since(start)),
			}
			if err != nil {
				attrs = append(attrs, slog.Any("error", err))
			}

			switch {
			case status >= 500:
				c.LogError("request completed", attrs...)
			case status >= 400:
				c.LogWarn("request completed", attrs...)
			default:
				c.LogInfo("request completed", attrs...)
			}
			return err
		}
	}
}
