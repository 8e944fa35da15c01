package messagepattern

import (
	"slices"
)

// MessagePattern is a parsed MessageFormat pattern: the pattern string plus a
// flat sequence of Parts and a side table of numeric literals.
//
// A MessagePattern is mutable until Freeze is called. A frozen instance is
// safe for concurrent reads; use CloneAsThawed to get a private mutable copy.
// It is not safe for concurrent use while mutable.
type MessagePattern struct {
	msg              string
	parts            []Part
	numericValues    []float64
	aposMode         ApostropheMode
	hasArgNames      bool
	hasArgNumbers    bool
	needsAutoQuoting bool
	frozen           bool
}

// New creates an empty MessagePattern.
// The apostrophe mode defaults to DefaultApostropheMode.
func New(opts ...Option) *MessagePattern {
	mp := &MessagePattern{aposMode: DefaultApostropheMode}
	for _, opt := range opts {
		opt(mp)
	}
	return mp
}

// Parse creates a MessagePattern and parses a MessageFormat pattern string.
func Parse(pattern string, opts ...Option) (*MessagePattern, error) {
	mp := New(opts...)
	if err := mp.Parse(pattern); err != nil {
		return nil, err
	}
	return mp, nil
}

// MustParse is like Parse but panics on error.
// Intended for patterns that are compile-time constants.
func MustParse(pattern string, opts ...Option) *MessagePattern {
	mp, err := Parse(pattern, opts...)
	if err != nil {
		panic(err)
	}
	return mp
}

// Parse parses a MessageFormat pattern string, replacing any previous content.
//
// On error the instance is reset to the empty state and must not be queried
// until a later parse succeeds.
func (mp *MessagePattern) Parse(pattern string) error {
	return mp.run(pattern, func() error {
		_, err := mp.parseMessage(0, 0, 0, ArgTypeNone)
		return err
	})
}

// ParseChoiceStyle parses a ChoiceFormat pattern string such as
// "0#no files|1#one file|1<{0} files".
func (mp *MessagePattern) ParseChoiceStyle(pattern string) error {
	return mp.run(pattern, func() error {
		_, err := mp.parseChoiceStyle(0, 0)
		return err
	})
}

// ParsePluralStyle parses a PluralFormat pattern string such as
// "offset:1 one{# item}other{# items}".
func (mp *MessagePattern) ParsePluralStyle(pattern string) error {
	return mp.run(pattern, func() error {
		_, err := mp.parsePluralOrSelectStyle(ArgTypePlural, 0, 0)
		return err
	})
}

// ParseSelectStyle parses a SelectFormat pattern string such as
// "female{she}male{he}other{they}".
func (mp *MessagePattern) ParseSelectStyle(pattern string) error {
	return mp.run(pattern, func() error {
		_, err := mp.parsePluralOrSelectStyle(ArgTypeSelect, 0, 0)
		return err
	})
}

func (mp *MessagePattern) run(pattern string, parse func() error) error {
	if mp.frozen {
		return ErrFrozen
	}
	mp.reset()
	mp.msg = pattern
	if err := parse(); err != nil {
		mp.reset()
		return err
	}
	return nil
}

// Clear resets the instance to the empty state, keeping the apostrophe mode.
func (mp *MessagePattern) Clear() error {
	if mp.frozen {
		return ErrFrozen
	}
	mp.reset()
	return nil
}

// ClearPatternAndSetApostropheMode clears the instance and changes its mode.
func (mp *MessagePattern) ClearPatternAndSetApostropheMode(mode ApostropheMode) error {
	if err := mp.Clear(); err != nil {
		return err
	}
	mp.aposMode = mode
	return nil
}

func (mp *MessagePattern) reset() {
	mp.msg = ""
	mp.hasArgNames = false
	mp.hasArgNumbers = false
	mp.needsAutoQuoting = false
	mp.parts = mp.parts[:0]
	mp.numericValues = mp.numericValues[:0]
}

// Freeze makes the instance immutable. It returns the receiver for chaining.
func (mp *MessagePattern) Freeze() *MessagePattern {
	mp.frozen = true
	return mp
}

// IsFrozen reports whether Freeze has been called.
func (mp *MessagePattern) IsFrozen() bool {
	return mp.frozen
}

// Clone returns the receiver itself when frozen, since it can be shared,
// and a thawed deep copy otherwise.
func (mp *MessagePattern) Clone() *MessagePattern {
	if mp.frozen {
		return mp
	}
	return mp.CloneAsThawed()
}

// CloneAsThawed returns an independent, mutable deep copy.
func (mp *MessagePattern) CloneAsThawed() *MessagePattern {
	return &MessagePattern{
		msg:              mp.msg,
		parts:            slices.Clone(mp.parts),
		numericValues:    slices.Clone(mp.numericValues),
		aposMode:         mp.aposMode,
		hasArgNames:      mp.hasArgNames,
		hasArgNumbers:    mp.hasArgNumbers,
		needsAutoQuoting: mp.needsAutoQuoting,
	}
}

// Equal reports whether both instances hold the same pattern, mode and parts.
func (mp *MessagePattern) Equal(other *MessagePattern) bool {
	if mp == other {
		return true
	}
	if mp == nil || other == nil {
		return false
	}
	return mp.msg == other.msg &&
		mp.aposMode == other.aposMode &&
		slices.EqualFunc(mp.parts, other.parts, func(a, b Part) bool {
			return a.Equal(b) && a.limitPartIndex == b.limitPartIndex
		})
}

func (mp *MessagePattern) addPart(kind PartKind, index, length, value int) {
	mp.parts = append(mp.parts, newPart(kind, index, length, value))
}

func (mp *MessagePattern) addLimitPart(start int, kind PartKind, index, length, value int) {
	mp.parts[start].limitPartIndex = int32(len(mp.parts))
	mp.addPart(kind, index, length, value)
}

func (mp *MessagePattern) addArgDoublePart(value float64, start, length int) error {
	numericIndex := len(mp.numericValues)
	if numericIndex > MaxValue {
		return newParseError(ErrLimitExceeded, "too many numeric values", mp.msg, start)
	}
	mp.numericValues = append(mp.numericValues, value)
	mp.addPart(ArgDouble, start, length, numericIndex)
	return nil
}
