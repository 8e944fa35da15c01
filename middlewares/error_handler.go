package middlewares

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/msgfmt/internal"
	"github.com/dmitrymomot/msgfmt/pkg/i18n"
)

// StatusClientClosedRequest is reported when the client went away
// before the handler finished.
const StatusClientClosedRequest = 499

// ErrorHandler returns an internal.ErrorHandler that renders errors as JSON:
//
//	{"error": "...", "code": "...", "detail": "...", "request_id": "...", <fields>}
//
// HTTPError fields are merged into the body. When the request carries a
// translator and the error has a code, the message is looked up under
// "errors.<code>" with the fields as arguments. Unexpected errors become a
// generic 500 and are logged; their text never reaches the client.
func ErrorHandler() internal.ErrorHandler {
	return func(c internal.Context, err error) error {
		status := statusForError(err)
		body := make(map[string]any)

		message := http.StatusText(status)
		if httpErr := internal.AsHTTPError(err); httpErr != nil {
			for k, v := range httpErr.Fields {
				body[k] = v
			}
			message = translateError(c, httpErr)
			if httpErr.ErrorCode != "" {
				body["code"] = httpErr.ErrorCode
			}
			if httpErr.Detail != "" {
				body["detail"] = httpErr.Detail
			}
		} else if status == http.StatusInternalServerError {
			c.LogError("unhandled error", slog.Any("error", err))
		}

		body["error"] = message
		if id := GetRequestID(c); id != "" {
			body["request_id"] = id
		}

		if status == StatusClientClosedRequest {
			return nil
		}
		return c.JSON(status, body)
	}
}

// NotFound renders a JSON 404 for unknown routes.
func NotFound(c internal.Context) error {
	return internal.ErrNotFound("route not found", internal.WithField("path", c.Request().URL.Path))
}

// MethodNotAllowed renders a JSON 405 for known routes with the wrong method.
func MethodNotAllowed(c internal.Context) error {
	return internal.ErrMethodNotAllowed("method not allowed", internal.WithField("method", c.Request().Method))
}

// statusForError maps an error to the HTTP status it is rendered with.
func statusForError(err error) int {
	if httpErr := internal.AsHTTPError(err); httpErr != nil {
		return httpErr.Code
	}
	switch {
	case IsPanicError(err):
		return http.StatusInternalServerError
	case IsTimeoutError(err), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest
	default:
		return http.StatusInternalServerError
	}
}

func translateError(c internal.Context, httpErr *internal.HTTPError) string {
	tr := c.Translator()
	if tr == nil || httpErr.ErrorCode == "" {
		return httpErr.Message
	}
	key := "errors." + httpErr.ErrorCode
	if msg := tr.T(key, i18n.M(httpErr.Fields)); msg != key {
		return msg
	}
	return httpErr.Message
}
