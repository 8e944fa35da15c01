// Package msgfmt is a small HTTP service and toolkit around ICU
// MessageFormat patterns.
//
// The heavy lifting lives in the library packages:
//
//   - [github.com/dmitrymomot/msgfmt/pkg/messagepattern] parses patterns
//     into a flat list of parts.
//   - [github.com/dmitrymomot/msgfmt/pkg/patterncache] parses each pattern
//     once, freezes it and shares it through a memory or Redis store.
//   - [github.com/dmitrymomot/msgfmt/pkg/i18n] formats parsed patterns and
//     serves translation catalogs.
//
// This package re-exports the HTTP application used by cmd/msgfmt so that
// handlers can be declared without importing internal packages.
//
// # Handlers
//
// Handlers implement the [Handler] interface to declare routes:
//
//	type PatternHandler struct {
//	    compiler *patterncache.Compiler
//	}
//
//	func (h *PatternHandler) Routes(r msgfmt.Router) {
//	    r.Route("/v1", func(r msgfmt.Router) {
//	        r.POST("/parse", h.parse)
//	        r.POST("/format", h.format)
//	    })
//	}
//
// Handlers return errors instead of writing them. The [ErrorHandler]
// configured with [WithErrorHandler] renders them; [HTTPError] carries
// the status code, a message and extra fields for the response body.
//
// # Shutdown
//
// [App.Run] handles SIGINT and SIGTERM. Register cleanup with
// [ShutdownHook]:
//
//	err := app.Run(":8080",
//	    msgfmt.ShutdownHook(func(ctx context.Context) error {
//	        return store.Close()
//	    }),
//	)
package msgfmt
