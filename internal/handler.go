package internal

// Handler declares routes on a router.
//
// Example:
//
//	type PatternHandler struct {
//	    compiler *patterncache.Compiler
//	}
//
//	func (h *PatternHandler) Routes(r msgfmt.Router) {
//	    r.POST("/v1/parse", h.parse)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// Returning a non-nil error triggers the error handler.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc to add cross-cutting concerns.
//
// Example:
//
//	func RequireJSON(next msgfmt.HandlerFunc) msgfmt.HandlerFunc {
//	    return func(c msgfmt.Context) error {
//	        if !strings.HasPrefix(c.Header("Content-Type"), "application/json") {
//	            return msgfmt.ErrUnsupportedMediaType("expected application/json")
//	        }
//	        return next(c)
//	    }
//	}
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler handles errors returned from handlers.
type ErrorHandler func(Context, error) error
