package internal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/msgfmt/pkg/i18n"
)

// TranslatorKey is the context key used to store the i18n Translator.
type TranslatorKey struct{}

// LanguageKey is the context key used to store the resolved language string.
type LanguageKey struct{}

// Context provides request/response access and helper methods.
// It also implements context.Context by delegating to the underlying request context.
type Context interface {
	context.Context

	// Request returns the underlying *http.Request.
	Request() *http.Request

	// Response returns the underlying http.ResponseWriter.
	Response() http.ResponseWriter

	// Context returns the request's context.Context.
	Context() context.Context

	// Param returns the URL parameter value by name.
	Param(name string) string

	// Query returns the query parameter value by name.
	Query(name string) string

	// QueryDefault returns the query parameter value or a default.
	QueryDefault(name, defaultValue string) string

	// Header returns the request header value by name.
	Header(name string) string

	// SetHeader sets a response header.
	SetHeader(name, value string)

	// JSON writes a JSON response with the given status code.
	JSON(code int, v any) error

	// String writes a plain text response with the given status code.
	String(code int, s string) error

	// NoContent writes a response with no body.
	NoContent(code int) error

	// Error creates an HTTPError without writing a response.
	// Return it from the handler to trigger the error handler.
	Error(code int, message string, opts ...HTTPErrorOption) *HTTPError

	// BindJSON decodes the JSON request body into v. Unknown fields,
	// trailing data and oversized bodies are rejected with an HTTPError.
	BindJSON(v any) error

	// Written returns true if a response has already been written.
	Written() bool

	// Logger returns the logger for advanced usage.
	Logger() *slog.Logger

	// LogDebug logs a debug message with optional attributes.
	LogDebug(msg string, attrs ...any)

	// LogInfo logs an info message with optional attributes.
	LogInfo(msg string, attrs ...any)

	// LogWarn logs a warning message with optional attributes.
	LogWarn(msg string, attrs ...any)

	// LogError logs an error message with optional attributes.
	LogError(msg string, attrs ...any)

	// Set stores a value in the request context.
	// The value can be retrieved using Get or from c.Context().Value(key).
	Set(key any, value any)

	// Get retrieves a value from the request context.
	// Returns nil if the key is not found.
	Get(key any) any

	// SetContext replaces the request context, e.g. with one that has a deadline.
	SetContext(ctx context.Context)

	// Translator returns the request translator set by the i18n middleware,
	// or nil when the middleware is not installed.
	Translator() *i18n.Translator

	// T translates a key in the translator's namespace.
	// Returns the key itself when no translator is available.
	T(key string, args ...i18n.M) string

	// Tn translates a key with plural forms selected by n.
	Tn(key string, n int, args ...i18n.M) string

	// Language returns the resolved request language, or "".
	Language() string
}

// requestContext implements the Context interface.
type requestContext struct {
	request        *http.Request
	responseWriter *ResponseWriter
	logger         *slog.Logger
}

// newContext creates a request context. The writer is wrapped once;
// nested middleware layers share the same ResponseWriter.
func newContext(w http.ResponseWriter, r *http.Request, logger *slog.Logger) *requestContext {
	rw, ok := w.(*ResponseWriter)
	if !ok {
		rw = NewResponseWriter(w)
	}
	return &requestContext{
		request:        r,
		responseWriter: rw,
		logger:         logger,
	}
}

func (c *requestContext) Request() *http.Request {
	return c.request
}

func (c *requestContext) Response() http.ResponseWriter {
	return c.responseWriter
}

func (c *requestContext) Context() context.Context {
	return c.request.Context()
}

func (c *requestContext) Deadline() (time.Time, bool) {
	return c.request.Context().Deadline()
}

func (c *requestContext) Done() <-chan struct{} {
	return c.request.Context().Done()
}

func (c *requestContext) Err() error {
	return c.request.Context().Err()
}

func (c *requestContext) Value(key any) any {
	return c.request.Context().Value(key)
}

func (c *requestContext) Param(name string) string {
	return chi.URLParam(c.request, name)
}

func (c *requestContext) Query(name string) string {
	return c.request.URL.Query().Get(name)
}

func (c *requestContext) QueryDefault(name, defaultValue string) string {
	v := c.request.URL.Query().Get(name)
	if v == "" {
		return defaultValue
	}
	return v
}

func (c *requestContext) Header(name string) string {
	return c.request.Header.Get(name)
}

func (c *requestContext) SetHeader(name, value string) {
	c.responseWriter.Header().Set(name, value)
}

func (c *requestContext) JSON(code int, v any) error {
	c.responseWriter.Header().Set("Content-Type", "application/json; charset=utf-8")
	c.responseWriter.WriteHeader(code)
	return json.NewEncoder(c.responseWriter).Encode(v)
}

func (c *requestContext) String(code int, s string) error {
	c.responseWriter.Header().Set("Content-Type", "text/plain; charset=utf-8")
	c.responseWriter.WriteHeader(code)
	_, err := io.WriteString(c.responseWriter, s)
	return err
}

func (c *requestContext) NoContent(code int) error {
	c.responseWriter.WriteHeader(code)
	return nil
}

func (c *requestContext) Error(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(code, message, opts...)
}

func (c *requestContext) BindJSON(v any) error {
	if ct := c.request.Header.Get("Content-Type"); ct != "" {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil || mediaType != "application/json" {
			return ErrUnsupportedMediaType("content type must be application/json")
		}
	}
	if c.request.Body == nil {
		return ErrBadRequest("request body is empty")
	}

	dec := json.NewDecoder(c.request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return ErrRequestTooLarge(fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit), WithError(err))
		case errors.Is(err, io.EOF):
			return ErrBadRequest("request body is empty", WithError(err))
		default:
			return ErrBadRequest("invalid JSON body", WithError(err), WithDetail(err.Error()))
		}
	}
	if dec.More() {
		return ErrBadRequest("request body must contain a single JSON value")
	}
	return nil
}

func (c *requestContext) Written() bool {
	return c.responseWriter.Written()
}

func (c *requestContext) Logger() *slog.Logger {
	return c.logger
}

func (c *requestContext) LogDebug(msg string, attrs ...any) {
	c.logger.DebugContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogInfo(msg string, attrs ...any) {
	c.logger.InfoContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogWarn(msg string, attrs ...any) {
	c.logger.WarnContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogError(msg string, attrs ...any) {
	c.logger.ErrorContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) Set(key, value any) {
	ctx := context.WithValue(c.request.Context(), key, value)
	c.request = c.request.WithContext(ctx)
}

func (c *requestContext) SetContext(ctx context.Context) {
	c.request = c.request.WithContext(ctx)
}

func (c *requestContext) Get(key any) any {
	return c.request.Context().Value(key)
}

func (c *requestContext) Translator() *i18n.Translator {
	if tr, ok := c.Get(TranslatorKey{}).(*i18n.Translator); ok {
		return tr
	}
	return nil
}

func (c *requestContext) T(key string, args ...i18n.M) string {
	if tr := c.Translator(); tr != nil {
		return tr.T(key, args...)
	}
	return key
}

func (c *requestContext) Tn(key string, n int, args ...i18n.M) string {
	if tr := c.Translator(); tr != nil {
		return tr.Tn(key, n, args...)
	}
	return key
}

func (c *requestContext) Language() string {
	if lang, ok := c.Get(LanguageKey{}).(string); ok {
		return lang
	}
	if tr := c.Translator(); tr != nil {
		return tr.Language()
	}
	return ""
}
