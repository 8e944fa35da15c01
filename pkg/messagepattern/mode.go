package messagepattern

import (
	"fmt"
	"strings"
)

// ApostropheMode selects how an apostrophe that does not precede special
// syntax is interpreted.
type ApostropheMode uint8

const (
	// DoubleOptional treats a single apostrophe as literal text unless it
	// immediately precedes a syntax character ({, }, and | or # where they
	// are special). A doubled apostrophe is always one literal apostrophe.
	DoubleOptional ApostropheMode = iota

	// DoubleRequired makes every single apostrophe start quoted literal text,
	// the behavior of java.text.MessageFormat.
	DoubleRequired
)

// DefaultApostropheMode is the mode used when no option overrides it.
const DefaultApostropheMode = DoubleOptional

func (m ApostropheMode) String() string {
	switch m {
	case DoubleOptional:
		return "DOUBLE_OPTIONAL"
	case DoubleRequired:
		return "DOUBLE_REQUIRED"
	default:
		return fmt.Sprintf("ApostropheMode(%d)", uint8(m))
	}
}

// ParseApostropheMode parses a mode name as found in configuration.
// It accepts DOUBLE_OPTIONAL / DOUBLE_REQUIRED in any case, with '-' or '_'.
// An empty string yields DefaultApostropheMode.
func ParseApostropheMode(s string) (ApostropheMode, error) {
	norm := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
	switch norm {
	case "":
		return DefaultApostropheMode, nil
	case "DOUBLE_OPTIONAL":
		return DoubleOptional, nil
	case "DOUBLE_REQUIRED":
		return DoubleRequired, nil
	default:
		return DefaultApostropheMode, fmt.Errorf("messagepattern: unknown apostrophe mode %q", s)
	}
}

// UnmarshalText lets ApostropheMode be used directly in env and flag parsing.
func (m *ApostropheMode) UnmarshalText(text []byte) error {
	mode, err := ParseApostropheMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (m ApostropheMode) MarshalText() ([]byte, error) {
	if m > DoubleRequired {
		return nil, fmt.Errorf("messagepattern: unknown apostrophe mode %d", uint8(m))
	}
	return []byte(m.String()), nil
}

// Option configures a MessagePattern during construction.
type Option func(*MessagePattern)

// WithApostropheMode sets the apostrophe quoting mode.
func WithApostropheMode(mode ApostropheMode) Option {
	return func(mp *MessagePattern) {
		mp.aposMode = mode
	}
}
