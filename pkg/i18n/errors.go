package i18n

import "errors"

var (
	ErrEmptyLanguage  = errors.New("i18n: language cannot be empty")
	ErrEmptyNamespace = errors.New("i18n: namespace cannot be empty")
	ErrNilPluralRule  = errors.New("i18n: plural rule cannot be nil")
	ErrInvalidFile    = errors.New("i18n: invalid translation file")

	// ErrInvalidPattern is returned by New when a translation is not a valid
	// message pattern, and by Format for patterns it cannot render.
	ErrInvalidPattern = errors.New("i18n: invalid message pattern")

	// ErrKeyNotFound is returned by Format when no language has the key.
	ErrKeyNotFound = errors.New("i18n: translation key not found")

	// ErrMissingArgument is returned when a pattern references an argument
	// that was not supplied.
	ErrMissingArgument = errors.New("i18n: missing argument")

	// ErrBadArgument is returned when a choice or plural argument is not a number.
	ErrBadArgument = errors.New("i18n: argument is not a number")
)
