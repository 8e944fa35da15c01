package logger

import (
	"context"
	"errors"
	"log/slog"
)

// Tee returns a handler that sends each record to every handler enabled for
// its level. A failing handler does not stop the others; their errors are
// joined.
//
// The server uses it to keep console output flowing while the same records
// are shipped to Sentry.
func Tee(handlers ...slog.Handler) slog.Handler {
	return teeHandler(handlers)
}

type teeHandler []slog.Handler

func (h teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h teeHandler) Handle(ctx context.Context, rec slog.Record) error {
	var errs []error
	for _, handler := range h {
		if !handler.Enabled(ctx, rec.Level) {
			continue
		}
		if err := handler.Handle(ctx, rec.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (h teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.each(func(handler slog.Handler) slog.Handler { return handler.WithAttrs(attrs) })
}

func (h teeHandler) WithGroup(name string) slog.Handler {
	return h.each(func(handler slog.Handler) slog.Handler { return handler.WithGroup(name) })
}

func (h teeHandler) each(fn func(slog.Handler) slog.Handler) teeHandler {
	out := make(teeHandler, len(h))
	for i, handler := range h {
		out[i] = fn(handler)
	}
	return out
}
