package messagepattern

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// PatternString returns the parsed pattern, or "" after Clear.
func (mp *MessagePattern) PatternString() string {
	return mp.msg
}

// String returns the pattern string.
func (mp *MessagePattern) String() string {
	return mp.msg
}

// ApostropheMode returns the configured apostrophe mode.
func (mp *MessagePattern) ApostropheMode() ApostropheMode {
	return mp.aposMode
}

// HasNamedArguments reports whether the pattern has an argument with a name.
func (mp *MessagePattern) HasNamedArguments() bool {
	return mp.hasArgNames
}

// HasNumberedArguments reports whether the pattern has an argument with a number.
func (mp *MessagePattern) HasNumberedArguments() bool {
	return mp.hasArgNumbers
}

// NeedsAutoQuoting reports whether AutoQuoteApostropheDeep would change the
// pattern, which is the case whenever parsing emitted an InsertChar part:
// for every literal apostrophe in DoubleOptional mode ("I don't know") and
// for quoted text that runs to the end of the pattern.
func (mp *MessagePattern) NeedsAutoQuoting() bool {
	return mp.needsAutoQuoting
}

// CountParts returns the number of parts.
func (mp *MessagePattern) CountParts() int {
	return len(mp.parts)
}

// Part returns the i-th part. It panics if i is out of range.
func (mp *MessagePattern) Part(i int) Part {
	return mp.parts[i]
}

// Parts returns a copy of all parts.
func (mp *MessagePattern) Parts() []Part {
	return slices.Clone(mp.parts)
}

// PartKind returns the kind of the i-th part.
func (mp *MessagePattern) PartKind(i int) PartKind {
	return mp.parts[i].kind
}

// PatternIndex returns the pattern index of the i-th part.
func (mp *MessagePattern) PatternIndex(i int) int {
	return mp.parts[i].Index()
}

// Substring returns the pattern text covered by the part.
func (mp *MessagePattern) Substring(p Part) string {
	return mp.msg[p.Index():p.Limit()]
}

// PartSubstringMatches reports whether the part covers exactly s.
func (mp *MessagePattern) PartSubstringMatches(p Part, s string) bool {
	return p.Length() == len(s) && mp.msg[p.Index():p.Limit()] == s
}

// NumericValue returns the number for ArgInt and ArgDouble parts and
// NoNumericValue for all other parts.
func (mp *MessagePattern) NumericValue(p Part) float64 {
	switch p.kind {
	case ArgInt:
		return float64(p.value)
	case ArgDouble:
		return mp.numericValues[p.value]
	default:
		return NoNumericValue
	}
}

// PluralOffset returns the "offset:" value of a plural style whose first
// part (after ArgStart) is at pluralStart, or 0 if there is none.
func (mp *MessagePattern) PluralOffset(pluralStart int) float64 {
	p := mp.parts[pluralStart]
	if p.kind.HasNumericValue() {
		return mp.NumericValue(p)
	}
	return 0
}

// LimitPartIndex returns the index of the MessageLimit or ArgLimit matching
// the MessageStart or ArgStart at start. For other parts it returns start.
func (mp *MessagePattern) LimitPartIndex(start int) int {
	limit := int(mp.parts[start].limitPartIndex)
	if limit < start {
		return start
	}
	return limit
}

// AutoQuoteApostropheDeep returns the pattern with every InsertChar applied,
// turning literal and dangling apostrophes into their explicitly quoted form.
// It returns the pattern unchanged when no auto-quoting is needed.
func (mp *MessagePattern) AutoQuoteApostropheDeep() string {
	if !mp.needsAutoQuoting {
		return mp.msg
	}
	var modified []byte
	// Back to front, so earlier insertions keep later indexes valid.
	for i := len(mp.parts) - 1; i >= 0; i-- {
		p := mp.parts[i]
		if p.kind != InsertChar {
			continue
		}
		if modified == nil {
			modified = make([]byte, 0, len(mp.msg)+10)
			modified = append(modified, mp.msg...)
		}
		modified = slices.Insert(modified, p.Index(), utf8.AppendRune(nil, rune(p.value))...)
	}
	if modified == nil {
		return mp.msg
	}
	return string(modified)
}

// AppendReducedApostrophes appends s[start:limit] to b, dropping quoting
// apostrophes and collapsing doubled ones. Formatters use it for literal
// text that contains no SkipSyntax parts, e.g. a sub-message without arguments.
func AppendReducedApostrophes(b *strings.Builder, s string, start, limit int) {
	doubleApos := -1
	for {
		i := strings.IndexByte(s[start:limit], '\'')
		if i < 0 {
			b.WriteString(s[start:limit])
			return
		}
		i += start
		if i == doubleApos {
			b.WriteByte('\'')
			start++
			doubleApos = -1
		} else {
			b.WriteString(s[start:i])
			start = i + 1
			doubleApos = start
		}
	}
}
