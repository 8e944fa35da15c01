package middlewares

import (
	"net/http"

	"github.com/dmitrymomot/msgfmt/internal"
)

// DefaultBodyLimit caps request bodies at 1 MiB.
const DefaultBodyLimit int64 = 1 << 20

// BodyLimit returns middleware that caps the request body at limit bytes.
// Requests that declare a larger Content-Length are rejected up front;
// the rest fail in Context.BindJSON once the cap is hit.
func BodyLimit(limit int64) internal.Middleware {
	if limit <= 0 {
		limit = DefaultBodyLimit
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			r := c.Request()
			if r.ContentLength > limit {
				return internal.ErrRequestTooLarge("request body too large",
					internal.WithField("limit", limit),
				)
			}
			if r.Body != nil && r.Body != http.NoBody {
				r.Body = http.MaxBytesReader(c.Response(), r.Body, limit)
			}
			return next(c)
		}
	}
}
