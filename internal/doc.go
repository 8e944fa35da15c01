// Package internal implements the HTTP layer behind the msgfmt API server.
//
// Import "github.com/dmitrymomot/msgfmt" instead; it re-exports the public
// surface of this package.
//
// # Core Types
//
//   - App: routing, middleware, health probes and graceful shutdown
//   - Context: request/response access, JSON binding, logging and translation
//   - Router: interface handlers use to declare routes
//   - Handler: implemented by types that declare routes on a router
//   - HandlerFunc: a route handler that returns an error
//   - Middleware: wraps handlers with cross-cutting behaviour
//   - HTTPError: an error that knows its status code and response fields
//
// # Context as context.Context
//
// Context embeds context.Context, so it can be handed to anything that
// takes a context, such as the pattern compiler:
//
//	func (h *PatternHandler) parse(c msgfmt.Context) error {
//	    mp, err := h.compiler.Compile(c, patterncache.KindMessage, pattern)
//	    ...
//	}
//
// # Application Structure
//
//	app := internal.New(
//	    internal.WithHandlers(patternHandler),
//	    internal.WithMiddleware(requestID, recoverer),
//	    internal.WithHealthChecks(internal.WithReadinessCheck("redis", ping)),
//	)
//
// Handlers receive their dependencies through constructors. Errors returned
// from handlers and middleware go to the ErrorHandler configured with
// WithErrorHandler; responses that were already written are left alone.
package internal
