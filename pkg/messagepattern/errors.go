package messagepattern

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	// ErrSyntax is returned for malformed patterns: unmatched braces, bad
	// argument headers, bad separators, missing sub-messages or "other".
	ErrSyntax = errors.New("messagepattern: syntax error")

	// ErrLimitExceeded is returned when a nesting level, substring length,
	// argument number or the numeric side table exceeds its 16-bit budget.
	ErrLimitExceeded = errors.New("messagepattern: limit exceeded")

	// ErrNumericFormat is returned when a numeric literal is not a valid
	// integer, float or infinity token.
	ErrNumericFormat = errors.New("messagepattern: bad numeric value")

	// ErrFrozen is returned when a frozen MessagePattern is mutated.
	ErrFrozen = errors.New("messagepattern: instance is frozen")
)

// maxPrefixLength caps the pattern excerpt quoted in error messages.
const maxPrefixLength = 24

// ParseError describes a failed parse. Kind is one of ErrSyntax,
// ErrLimitExceeded or ErrNumericFormat, so errors.Is works on it.
type ParseError struct {
	Kind    error
	Msg     string
	Context string
	Offset  int
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("messagepattern: ")
	b.WriteString(e.Msg)
	if e.Context != "" {
		b.WriteString(": ")
		b.WriteString(e.Context)
	}
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

func newParseError(kind error, msg, pattern string, offset int) *ParseError {
	return &ParseError{
		Kind:    kind,
		Msg:     msg,
		Offset:  offset,
		Context: prefix(pattern, offset),
	}
}

// prefix quotes the pattern from start, shortened to maxPrefixLength bytes.
func prefix(s string, start int) string {
	if start < 0 || start > len(s) {
		start = len(s)
	}
	var b strings.Builder
	if start == 0 {
		b.WriteByte('"')
	} else {
		b.WriteString("[at pattern index ")
		b.WriteString(strconv.Itoa(start))
		b.WriteString("] \"")
	}
	rest := s[start:]
	if len(rest) <= maxPrefixLength {
		b.WriteString(rest)
	} else {
		limit := maxPrefixLength - 4
		for limit > 0 && !utf8.RuneStart(rest[limit]) {
			limit--
		}
		b.WriteString(rest[:limit])
		b.WriteString(" ...")
	}
	b.WriteByte('"')
	return b.String()
}
