// Package middlewares provides the HTTP middleware stack of the msgfmt server.
//
// A typical stack, outermost first:
//
//	app := msgfmt.New(
//	    msgfmt.WithLogger(log, "api", middlewares.RequestIDExtractor()),
//	    msgfmt.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.RequestLogger(),
//	        middlewares.Recover(),
//	        middlewares.CORS(),
//	        middlewares.Timeout(10*time.Second),
//	        middlewares.BodyLimit(64<<10),
//	        middlewares.I18n(catalog, middlewares.WithI18nNamespace("api")),
//	    ),
//	    msgfmt.WithErrorHandler(middlewares.ErrorHandler()),
//	    msgfmt.WithNotFoundHandler(middlewares.NotFound),
//	    msgfmt.WithMethodNotAllowedHandler(middlewares.MethodNotAllowed),
//	)
//
// # Request ID
//
// RequestID keeps an upstream X-Request-ID or generates a UUID, stores it
// in the context and echoes it in the response. RequestIDExtractor adds it
// to every log line.
//
// # Recover and Timeout
//
// Recover turns panics into *PanicError; Timeout puts a deadline on the
// request context and reports *TimeoutError when it passes. Both are
// rendered by ErrorHandler (500 and 503).
//
// # Errors
//
// ErrorHandler renders every error as a JSON object. HTTPError fields are
// merged into the body so clients get structured data, for example the
// offset and kind of a pattern syntax error.
//
// # I18n
//
// I18n resolves the request language from ?lang=, the "lang" cookie or
// Accept-Language and stores an i18n.Translator in the context.
package middlewares
