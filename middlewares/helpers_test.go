package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrymomot/msgfmt/internal"
	"github.com/dmitrymomot/msgfmt/middlewares"
)

type routeHandler struct {
	h internal.HandlerFunc
}

func (rh routeHandler) Routes(r internal.Router) {
	r.GET("/", rh.h)
	r.POST("/", rh.h)
	r.OPTIONS("/", rh.h)
}

// serve runs req through an App with the given middleware, the JSON error
// handler and h mounted at "/".
func serve(t *testing.T, req *http.Request, mw []internal.Middleware, h internal.HandlerFunc, opts ...internal.Option) *httptest.ResponseRecorder {
	t.Helper()

	opts = append([]internal.Option{
		internal.WithMiddleware(mw...),
		internal.WithHandlers(routeHandler{h: h}),
		internal.WithErrorHandler(middlewares.ErrorHandler()),
	}, opts...)
	app := internal.New(opts...)

	w := httptest.NewRecorder()
	app.ServeHTTP(w, req)
	return w
}

func ok(c internal.Context) error {
	return c.String(http.StatusOK, "ok")
}
