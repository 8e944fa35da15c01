package internal_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/msgfmt/internal"
)

// funcHandler registers a single route backed by fn.
type funcHandler struct {
	method string
	path   string
	fn     internal.HandlerFunc
	mw     []internal.Middleware
}

func (h *funcHandler) Routes(r internal.Router) {
	switch h.method {
	case http.MethodPost:
		r.POST(h.path, h.fn, h.mw...)
	default:
		r.GET(h.path, h.fn, h.mw...)
	}
}

// requestVia serves req through an App whose only route is GET /
// and runs fn inside that handler.
func requestVia(t *testing.T, req *http.Request, opts []internal.Option, fn func(c internal.Context)) *httptest.ResponseRecorder {
	t.Helper()

	h := &funcHandler{path: "/", fn: func(c internal.Context) error {
		fn(c)
		return nil
	}}
	app := internal.New(append(opts, internal.WithHandlers(h))...)

	w := httptest.NewRecorder()
	app.ServeHTTP(w, req)
	return w
}

func TestApp_ErrorHandling(t *testing.T) {
	t.Parallel()

	failing := &funcHandler{path: "/fail", fn: func(c internal.Context) error {
		return internal.ErrUnprocessable("bad pattern")
	}}

	t.Run("default handler answers 500", func(t *testing.T) {
		t.Parallel()
		app := internal.New(internal.WithHandlers(failing))

		w := httptest.NewRecorder()
		app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))
		require.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("custom error handler receives the error", func(t *testing.T) {
		t.Parallel()
		app := internal.New(
			internal.WithHandlers(failing),
			internal.WithErrorHandler(func(c internal.Context, err error) error {
				httpErr := internal.AsHTTPError(err)
				require.NotNil(t, httpErr)
				return c.String(httpErr.Code, httpErr.Message)
			}),
		)

		w := httptest.NewRecorder()
		app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		require.Equal(t, "bad pattern", w.Body.String())
	})

	t.Run("error after write is not rendered twice", func(t *testing.T) {
		t.Parallel()
		called := false
		app := internal.New(
			internal.WithHandlers(&funcHandler{path: "/", fn: func(c internal.Context) error {
				_ = c.String(http.StatusOK, "partial")
				return errors.New("late failure")
			}}),
			internal.WithErrorHandler(func(c internal.Context, err error) error {
				called = true
				return nil
			}),
		)

		w := httptest.NewRecorder()
		app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "partial", w.Body.String())
		require.False(t, called)
	})
}

func TestApp_NotFoundAndMethodNotAllowed(t *testing.T) {
	t.Parallel()

	app := internal.New(
		internal.WithHandlers(&funcHandler{method: http.MethodPost, path: "/v1/parse", fn: func(c internal.Context) error {
			return c.NoContent(http.StatusNoContent)
		}}),
		internal.WithNotFoundHandler(func(c internal.Context) error {
			return c.String(http.StatusNotFound, "nothing here")
		}),
		internal.WithMethodNotAllowedHandler(func(c internal.Context) error {
			return c.String(http.StatusMethodNotAllowed, "use POST")
		}),
	)

	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "nothing here", w.Body.String())

	w = httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/parse", nil))
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	require.Equal(t, "use POST", w.Body.String())

	w = httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/parse", nil))
	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestApp_MiddlewareOrder(t *testing.T) {
	t.Parallel()

	var order []string
	trace := func(name string) internal.Middleware {
		return func(next internal.HandlerFunc) internal.HandlerFunc {
			return func(c internal.Context) error {
				order = append(order, name)
				return next(c)
			}
		}
	}

	type key struct{}
	setter := func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			c.Set(key{}, "from-global")
			return next(c)
		}
	}

	var seen string
	app := internal.New(
		internal.WithMiddleware(trace("global-1"), setter, trace("global-2")),
		internal.WithHandlers(&funcHandler{
			path: "/",
			fn: func(c internal.Context) error {
				order = append(order, "handler")
				seen = internal.ContextValue[string](c, key{})
				return c.NoContent(http.StatusOK)
			},
			mw: []internal.Middleware{trace("route-1"), trace("route-2")},
		}),
	)

	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, []string{"global-1", "global-2", "route-1", "route-2", "handler"}, order)
	require.Equal(t, "from-global", seen)
}

func TestApp_MiddlewareError(t *testing.T) {
	t.Parallel()

	deny := func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			return internal.ErrUnsupportedMediaType("nope")
		}
	}

	app := internal.New(
		internal.WithMiddleware(deny),
		internal.WithHandlers(&funcHandler{path: "/", fn: func(c internal.Context) error {
			t.Fatal("handler must not run")
			return nil
		}}),
		internal.WithErrorHandler(func(c internal.Context, err error) error {
			return c.String(internal.AsHTTPError(err).Code, err.Error())
		}),
	)

	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	require.Equal(t, "nope", w.Body.String())
}

func TestApp_RouteGroups(t *testing.T) {
	t.Parallel()

	grouped := handlerFunc(func(r internal.Router) {
		r.Route("/v1", func(r internal.Router) {
			r.GET("/ping", func(c internal.Context) error {
				return c.String(http.StatusOK, "pong")
			})
		})
		r.Group(func(r internal.Router) {
			r.Use(func(next internal.HandlerFunc) internal.HandlerFunc {
				return func(c internal.Context) error {
					c.SetHeader("X-Group", "yes")
					return next(c)
				}
			})
			r.GET("/items/{id}", func(c internal.Context) error {
				return c.String(http.StatusOK, "item "+c.Param("id"))
			})
		})
		r.Mount("/raw", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("raw"))
		}))
	})

	app := internal.New(internal.WithHandlers(grouped))

	tests := []struct {
		path   string
		body   string
		header string
	}{
		{"/v1/ping", "pong", ""},
		{"/items/42", "item 42", "yes"},
		{"/raw/", "raw", ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			w := httptest.NewRecorder()
			app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.Equal(t, http.StatusOK, w.Code)
			require.Equal(t, tt.body, w.Body.String())
			require.Equal(t, tt.header, w.Header().Get("X-Group"))
		})
	}
}

// handlerFunc adapts a function to internal.Handler.
type handlerFunc func(r internal.Router)

func (f handlerFunc) Routes(r internal.Router) { f(r) }

func TestApp_HealthChecks(t *testing.T) {
	t.Parallel()

	t.Run("disabled by default", func(t *testing.T) {
		t.Parallel()
		app := internal.New()
		w := httptest.NewRecorder()
		app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("liveness", func(t *testing.T) {
		t.Parallel()
		app := internal.New(internal.WithHealthChecks())

		w := httptest.NewRecorder()
		app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "OK", w.Body.String())

		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set("Accept", "application/json")
		w = httptest.NewRecorder()
		app.ServeHTTP(w, req)
		require.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
	})

	t.Run("readiness reports failing checks", func(t *testing.T) {
		t.Parallel()
		app := internal.New(internal.WithHealthChecks(
			internal.WithReadinessPath("/ready"),
			internal.WithLivenessPath("/live"),
			internal.WithReadinessCheck("cache", func(context.Context) error { return nil }),
			internal.WithReadinessCheck("redis", func(context.Context) error { return errors.New("connection refused") }),
			internal.WithReadinessCheck("ignored", nil),
		))

		w := httptest.NewRecorder()
		app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready?format=json", nil))
		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		require.JSONEq(t, `{
			"status": "unhealthy",
			"checks": {
				"cache": {"status": "healthy"},
				"redis": {"status": "unhealthy", "error": "connection refused"}
			}
		}`, w.Body.String())

		w = httptest.NewRecorder()
		app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/live", nil))
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("readiness passes", func(t *testing.T) {
		t.Parallel()
		app := internal.New(internal.WithHealthChecks(
			internal.WithReadinessCheck("cache", func(context.Context) error { return nil }),
		))

		w := httptest.NewRecorder()
		app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		require.Equal(t, http.StatusOK, w.Code)
		require.True(t, strings.HasPrefix(w.Body.String(), "OK"))
	})
}
