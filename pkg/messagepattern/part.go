package messagepattern

import (
	"math"
	"strconv"
)

const (
	// MaxLength is the largest substring length a single Part can cover.
	MaxLength = 0xffff

	// MaxValue is the largest Part value, nesting level, argument number
	// and numeric side-table index.
	MaxValue = math.MaxInt16

	// NoNumericValue is returned by NumericValue for parts that carry no number.
	NoNumericValue = -123456789
)

// PartKind identifies what a Part represents.
type PartKind uint8

const (
	// MessageStart starts a message pattern (top-level or a sub-message).
	// Its value is the nesting level; top-level messages have level 0.
	MessageStart PartKind = iota

	// MessageLimit ends a message pattern. Same value as its MessageStart.
	MessageLimit

	// SkipSyntax marks a quoting apostrophe that is dropped when rendering.
	SkipSyntax

	// InsertChar is a zero-width part whose value is a character that
	// must be inserted at its index to auto-quote the pattern.
	//
	// In DoubleOptional mode a literal apostrophe, as in "I don't know",
	// yields no SkipSyntax but an InsertChar holding an apostrophe right
	// after it, so AutoQuoteApostropheDeep returns "I don''t know". Quoted
	// text left open at the end of the pattern yields one at len(pattern).
	InsertChar

	// ReplaceNumber is an unquoted '#' inside a plural-family sub-message,
	// replaced by (number - offset) when rendering.
	ReplaceNumber

	// ArgStart starts an argument. Its value is the ArgType.
	ArgStart

	// ArgLimit ends an argument. Same value as its ArgStart.
	ArgLimit

	// ArgNumber is the argument number; its value is that number.
	ArgNumber

	// ArgName is the argument name. Value is 0.
	ArgName

	// ArgType is the keyword of a simple argument (e.g. "number").
	ArgType

	// ArgStyle is the opaque style text of a simple argument.
	ArgStyle

	// ArgSelector is a plural/select keyword, an explicit "=N" value,
	// or the one-character choice separator.
	ArgSelector

	// ArgInt is an integer literal that fits in the value field.
	ArgInt

	// ArgDouble is a numeric literal whose value is an index into the
	// numeric side table.
	ArgDouble
)

var partKindNames = [...]string{
	MessageStart:  "MessageStart",
	MessageLimit:  "MessageLimit",
	SkipSyntax:    "SkipSyntax",
	InsertChar:    "InsertChar",
	ReplaceNumber: "ReplaceNumber",
	ArgStart:      "ArgStart",
	ArgLimit:      "ArgLimit",
	ArgNumber:     "ArgNumber",
	ArgName:       "ArgName",
	ArgType:       "ArgType",
	ArgStyle:      "ArgStyle",
	ArgSelector:   "ArgSelector",
	ArgInt:        "ArgInt",
	ArgDouble:     "ArgDouble",
}

func (k PartKind) String() string {
	if int(k) < len(partKindNames) {
		return partKindNames[k]
	}
	return "PartKind(" + strconv.Itoa(int(k)) + ")"
}

// HasNumericValue reports whether parts of this kind carry a numeric literal.
func (k PartKind) HasNumericValue() bool {
	return k == ArgInt || k == ArgDouble
}

func (k PartKind) valid() bool {
	return k <= ArgDouble
}

// ArgKind is the type of an argument, stored in the value of
// ArgStart and ArgLimit parts.
type ArgKind uint8

const (
	// ArgTypeNone is an argument with only a name or number: {0}.
	ArgTypeNone ArgKind = iota

	// ArgTypeSimple has a type keyword other than the complex ones,
	// with an optional opaque style: {0,number,#.##}.
	ArgTypeSimple

	// ArgTypeChoice is a ChoiceFormat style argument.
	ArgTypeChoice

	// ArgTypePlural is a cardinal plural argument.
	ArgTypePlural

	// ArgTypeSelect is a keyword select argument.
	ArgTypeSelect

	// ArgTypeSelectOrdinal is an ordinal plural argument.
	ArgTypeSelectOrdinal
)

var argKindNames = [...]string{
	ArgTypeNone:          "None",
	ArgTypeSimple:        "Simple",
	ArgTypeChoice:        "Choice",
	ArgTypePlural:        "Plural",
	ArgTypeSelect:        "Select",
	ArgTypeSelectOrdinal: "SelectOrdinal",
}

func (a ArgKind) String() string {
	if int(a) < len(argKindNames) {
		return argKindNames[a]
	}
	return "ArgKind(" + strconv.Itoa(int(a)) + ")"
}

// HasPluralStyle reports whether the argument uses plural-style sub-messages
// (Plural or SelectOrdinal), where '#' and "offset:" are meaningful.
func (a ArgKind) HasPluralStyle() bool {
	return a == ArgTypePlural || a == ArgTypeSelectOrdinal
}

// Part is one element of a parsed pattern. Parts are small values;
// literal text is never stored, it is the gap between consecutive parts.
type Part struct {
	index          int32
	limitPartIndex int32
	length         uint16
	value          int16
	kind           PartKind
}

func newPart(kind PartKind, index, length, value int) Part {
	return Part{
		kind:           kind,
		index:          int32(index),
		length:         uint16(length),
		value:          int16(value),
		limitPartIndex: -1,
	}
}

// Kind returns the kind of this part.
func (p Part) Kind() PartKind { return p.kind }

// Index returns the byte offset in the pattern where this part starts.
func (p Part) Index() int { return int(p.index) }

// Length returns the number of pattern bytes covered by this part.
func (p Part) Length() int { return int(p.length) }

// Limit returns Index()+Length().
func (p Part) Limit() int { return int(p.index) + int(p.length) }

// Value returns the kind-specific value.
func (p Part) Value() int { return int(p.value) }

// ArgType returns the argument type for ArgStart and ArgLimit parts,
// ArgTypeNone otherwise.
func (p Part) ArgType() ArgKind {
	if p.kind == ArgStart || p.kind == ArgLimit {
		if int(p.value) >= 0 && int(p.value) < len(argKindNames) {
			return ArgKind(p.value)
		}
	}
	return ArgTypeNone
}

// String renders the part as Kind(value)@index for diagnostics.
func (p Part) String() string {
	var v string
	if p.kind == ArgStart || p.kind == ArgLimit {
		v = p.ArgType().String()
	} else {
		v = strconv.Itoa(int(p.value))
	}
	return p.kind.String() + "(" + v + ")@" + strconv.Itoa(int(p.index))
}

// Equal reports whether two parts have the same kind, position, length and value.
// The limit back-reference is derived data and is not compared.
func (p Part) Equal(o Part) bool {
	return p.kind == o.kind &&
		p.index == o.index &&
		p.length == o.length &&
		p.value == o.value
}
