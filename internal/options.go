package internal

import (
	"log/slog"

	"github.com/dmitrymomot/msgfmt/pkg/logger"
)

// Option configures the application.
type Option func(*App)

// WithMiddleware adds global middleware to the application.
// Middleware is applied in the order provided.
func WithMiddleware(mw ...Middleware) Option {
	return func(a *App) {
		a.middlewares = append(a.middlewares, mw...)
	}
}

// WithHandlers registers handlers that declare routes.
// Each handler's Routes method is called during setup.
func WithHandlers(h ...Handler) Option {
	return func(a *App) {
		a.handlers = append(a.handlers, h...)
	}
}

// WithErrorHandler sets a custom error handler for handler errors.
// Called when a handler returns a non-nil error.
//
// Example:
//
//	msgfmt.WithErrorHandler(middlewares.JSONErrorHandler())
func WithErrorHandler(h ErrorHandler) Option {
	return func(a *App) {
		a.errorHandler = h
	}
}

// WithNotFoundHandler sets a custom 404 handler.
func WithNotFoundHandler(h HandlerFunc) Option {
	return func(a *App) {
		a.notFoundHandler = h
	}
}

// WithMethodNotAllowedHandler sets a custom 405 handler.
func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return func(a *App) {
		a.methodNotAllowedHandler = h
	}
}

// WithHealthChecks enables health check endpoints.
// Liveness (/healthz) always answers OK while the process runs.
// Readiness (/readyz) runs all configured checks.
//
// Example:
//
//	msgfmt.WithHealthChecks(
//	    msgfmt.WithReadinessCheck("redis", patterncache.RedisHealthcheck(client)),
//	)
func WithHealthChecks(opts ...HealthOption) Option {
	return func(a *App) {
		cfg := &healthConfig{
			livenessPath:  defaultLivenessPath,
			readinessPath: defaultReadinessPath,
			checks:        make(healthChecks),
		}
		for _, opt := range opts {
			opt(cfg)
		}
		a.healthConfig = cfg
	}
}

// WithLogger builds the application logger with a component name and
// context extractors (e.g. the request id).
//
// Example:
//
//	msgfmt.New(
//	    msgfmt.WithLogger(base, "api", middlewares.RequestIDExtractor()),
//	)
func WithLogger(base *slog.Logger, component string, extractors ...logger.ContextExtractor) Option {
	return func(a *App) {
		if base == nil {
			return
		}
		if len(extractors) > 0 {
			base = slog.New(logger.NewLogHandlerDecorator(base.Handler(), extractors...))
		}
		if component != "" {
			base = base.With(slog.String("component", component))
		}
		a.logger = base
	}
}
