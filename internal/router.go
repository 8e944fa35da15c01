package internal

import (
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
)

// Router declares the routes of the pattern API. The API reads and
// formats patterns, so only GET, POST and OPTIONS (for CORS preflights) are
// offered. Routes are normally grouped under a version prefix:
//
//	r.Route("/v1", func(r msgfmt.Router) {
//	    r.POST("/parse", h.parse)
//	    r.GET("/arguments/{name}", h.validateName)
//	})
type Router interface {
	GET(path string, h HandlerFunc, mw ...Middleware)
	POST(path string, h HandlerFunc, mw ...Middleware)
	OPTIONS(path string, h HandlerFunc, mw ...Middleware)

	// Group shares middleware between routes without a path prefix.
	Group(fn func(r Router))

	// Route shares a path prefix, such as an API version.
	Route(pattern string, fn func(r Router))

	// Use appends middleware for the routes declared after it.
	Use(mw ...Middleware)

	// Mount attaches a plain http.Handler, for example a debug endpoint.
	Mount(pattern string, h http.Handler)
}

// routerAdapter routes through chi so "{name}" path params reach Context.Param.
type routerAdapter struct {
	router chi.Router
	app    *App
}

func (r *routerAdapter) GET(path string, h HandlerFunc, mw ...Middleware) {
	r.router.Get(path, r.wrap(h, mw...))
}

func (r *routerAdapter) POST(path string, h HandlerFunc, mw ...Middleware) {
	r.router.Post(path, r.wrap(h, mw...))
}

func (r *routerAdapter) OPTIONS(path string, h HandlerFunc, mw ...Middleware) {
	r.router.Options(path, r.wrap(h, mw...))
}

func (r *routerAdapter) Group(fn func(Router)) {
	r.router.Group(func(cr chi.Router) {
		fn(&routerAdapter{router: cr, app: r.app})
	})
}

func (r *routerAdapter) Route(pattern string, fn func(Router)) {
	r.router.Route(pattern, func(cr chi.Router) {
		fn(&routerAdapter{router: cr, app: r.app})
	})
}

func (r *routerAdapter) Use(mw ...Middleware) {
	for _, m := range mw {
		r.router.Use(r.app.adaptMiddleware(m))
	}
}

func (r *routerAdapter) Mount(pattern string, h http.Handler) {
	r.router.Mount(pattern, h)
}

// wrap applies route middleware so that the first one listed runs first.
func (r *routerAdapter) wrap(h HandlerFunc, mw ...Middleware) http.HandlerFunc {
	for _, m := range slices.Backward(mw) {
		h = m(h)
	}
	return r.adaptHandler(h)
}

func (r *routerAdapter) adaptHandler(h HandlerFunc) http.HandlerFunc {
	return r.app.wrapHandler(h)
}

// adaptMiddleware converts a Middleware to chi middleware.
// Middleware is written against Context while chi expects
// http.Handler wrappers; values stored with Context.Set reach the next
// handler through the request passed down the chain.
func (a *App) adaptMiddleware(mw Middleware) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextFunc := func(c Context) error {
				next.ServeHTTP(c.Response(), c.Request())
				return nil
			}
			c := newContext(w, r, a.logger)
			if err := mw(nextFunc)(c); err != nil {
				a.handleError(c, err)
			}
		})
	}
}
