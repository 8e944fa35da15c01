package api

import (
	"errors"
	"strconv"

	"github.com/dmitrymomot/msgfmt"
	"github.com/dmitrymomot/msgfmt/pkg/i18n"
	"github.com/dmitrymomot/msgfmt/pkg/messagepattern"
	"github.com/dmitrymomot/msgfmt/pkg/patterncache"
)

// Error codes rendered in the "code" and "kind" fields of error bodies.
const (
	CodeSyntax          = "syntax_error"
	CodeLimitExceeded   = "limit_exceeded"
	CodeNumericFormat   = "numeric_format"
	CodeInvalidMode     = "invalid_mode"
	CodeInvalidStyle    = "invalid_style"
	CodeMissingArgument = "missing_argument"
	CodeBadArgument     = "bad_argument"
	CodeInvalidPattern  = "invalid_pattern"
	CodeInvalidValue    = "invalid_value"
	CodeKeyNotFound     = "key_not_found"
)

// ParseRequest is the body of POST /v1/parse.
type ParseRequest struct {
	Pattern string `json:"pattern"`
	// Style is message (default), choice, plural or select.
	Style string `json:"style"`
	// Mode is DOUBLE_OPTIONAL or DOUBLE_REQUIRED. Empty uses the server mode.
	Mode string `json:"mode"`
}

// FormatRequest is the body of POST /v1/format.
type FormatRequest struct {
	Pattern string `json:"pattern"`
	Style   string `json:"style"`
	Mode    string `json:"mode"`
	// Lang selects plural rules and number formatting. Empty uses the
	// request language.
	Lang string `json:"lang"`
	Args i18n.M `json:"args"`
	// Value selects the sub-message of a standalone style: a number for
	// choice and plural, a keyword for select.
	Value any `json:"value"`
}

// TranslateRequest is the body of POST /v1/translate.
type TranslateRequest struct {
	Lang      string `json:"lang"`
	Namespace string `json:"namespace"`
	Key       string `json:"key"`
	Args      i18n.M `json:"args"`
}

// resolveOptions parses the style and mode fields of a request.
func resolveOptions(compiler *patterncache.Compiler, style, mode string) (patterncache.Kind, messagepattern.ApostropheMode, error) {
	kind, err := patterncache.ParseKind(style)
	if err != nil {
		return 0, 0, msgfmt.ErrBadRequest("unknown pattern style",
			msgfmt.WithErrorCode(CodeInvalidStyle),
			msgfmt.WithField("style", style),
			msgfmt.WithError(err),
		)
	}

	m := compiler.Mode()
	if mode != "" {
		m, err = messagepattern.ParseApostropheMode(mode)
		if err != nil {
			return 0, 0, msgfmt.ErrBadRequest("unknown apostrophe mode",
				msgfmt.WithErrorCode(CodeInvalidMode),
				msgfmt.WithField("mode", mode),
				msgfmt.WithError(err),
			)
		}
	}
	return kind, m, nil
}

// parseFailure turns a *messagepattern.ParseError into a 422 HTTPError.
// Other errors are returned unchanged.
func parseFailure(err error) error {
	var perr *messagepattern.ParseError
	if !errors.As(err, &perr) {
		return err
	}

	code := CodeSyntax
	switch {
	case errors.Is(perr.Kind, messagepattern.ErrLimitExceeded):
		code = CodeLimitExceeded
	case errors.Is(perr.Kind, messagepattern.ErrNumericFormat):
		code = CodeNumericFormat
	}

	return msgfmt.ErrUnprocessable(perr.Msg,
		msgfmt.WithErrorCode(code),
		msgfmt.WithField("kind", code),
		msgfmt.WithField("offset", perr.Offset),
		msgfmt.WithField("context", perr.Context),
		msgfmt.WithError(err),
	)
}

// formatFailure maps formatter errors to 422 HTTPErrors.
func formatFailure(err error) error {
	var code string
	switch {
	case errors.Is(err, i18n.ErrMissingArgument):
		code = CodeMissingArgument
	case errors.Is(err, i18n.ErrBadArgument):
		code = CodeBadArgument
	case errors.Is(err, i18n.ErrInvalidPattern):
		code = CodeInvalidPattern
	case errors.Is(err, i18n.ErrKeyNotFound):
		return msgfmt.ErrNotFound("translation key not found",
			msgfmt.WithErrorCode(CodeKeyNotFound),
			msgfmt.WithError(err),
		)
	default:
		return err
	}
	return msgfmt.ErrUnprocessable("cannot format pattern",
		msgfmt.WithErrorCode(code),
		msgfmt.WithDetail(err.Error()),
		msgfmt.WithError(err),
	)
}

// numberValue accepts JSON numbers and numeric strings.
func numberValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
