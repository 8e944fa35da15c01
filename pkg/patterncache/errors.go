package patterncache

import "errors"

// Sentinel errors for pattern cache operations.
var (
	// ErrNotFound is returned when a pattern is not cached or has expired.
	ErrNotFound = errors.New("patterncache: entry not found")

	// ErrClosed is returned when an operation is attempted on a closed store.
	ErrClosed = errors.New("patterncache: closed")

	// ErrMarshal is returned when a pattern cannot be encoded for storage.
	ErrMarshal = errors.New("patterncache: failed to marshal pattern")

	// ErrUnmarshal is returned when a stored pattern cannot be decoded.
	ErrUnmarshal = errors.New("patterncache: failed to unmarshal pattern")

	// ErrUnknownKind is returned for a pattern kind name that is not recognized.
	ErrUnknownKind = errors.New("patterncache: unknown pattern kind")

	ErrEmptyConnectionURL = errors.New("patterncache: empty redis connection URL")
	ErrFailedToParseURL   = errors.New("patterncache: failed to parse redis connection URL")
	ErrConnectionFailed   = errors.New("patterncache: failed to establish redis connection")
	ErrHealthcheckFailed  = errors.New("patterncache: redis healthcheck failed")
)
