// Package messagepattern parses ICU MessageFormat pattern strings into a flat,
// index-addressable sequence of typed parts.
//
// The parser does not format anything. It records where arguments, selectors,
// numeric literals and quoting apostrophes are, so that a formatter can walk
// the parts and interpolate runtime values without parsing again and without
// a pointer-based tree.
//
// # Basic Usage
//
//	mp, err := messagepattern.Parse("{0,plural,one{# apple}other{# apples}}")
//	if err != nil {
//		return err
//	}
//	for i := range mp.CountParts() {
//		fmt.Println(mp.Part(i)) // MessageStart(0)@0, ArgStart(Plural)@0, ...
//	}
//
// Parse entry points exist for full messages (Parse) and for standalone
// choice, plural and select styles (ParseChoiceStyle, ParsePluralStyle,
// ParseSelectStyle).
//
// # Parts
//
// Every MessageStart and ArgStart has a matching MessageLimit or ArgLimit;
// LimitPartIndex jumps to it in O(1). Literal text is not stored: it is the
// pattern text between the limit of one part and the index of the next,
// minus SkipSyntax parts. Integer literals that fit in 16 bits are stored in
// ArgInt parts; other numbers live in a side table referenced by ArgDouble.
//
// All indexes and lengths are byte offsets into the pattern string.
//
// # Apostrophe Quoting
//
// In DoubleOptional mode (the default) an apostrophe only starts quoted text
// when it precedes '{' or '}', or '|' inside a choice sub-message, or '#'
// inside a plural sub-message. Other single apostrophes are literal text and
// are recorded with InsertChar parts, so AutoQuoteApostropheDeep can produce
// the explicitly quoted form:
//
//	mp := messagepattern.MustParse("I don't know")
//	mp.AutoQuoteApostropheDeep() // "I don''t know"
//
// In DoubleRequired mode every single apostrophe starts quoted text.
// A doubled apostrophe is always one literal apostrophe.
//
// # Errors
//
// Parse errors are *ParseError values wrapping ErrSyntax, ErrLimitExceeded
// or ErrNumericFormat, with the byte offset of the offending construct:
//
//	var perr *messagepattern.ParseError
//	if errors.As(err, &perr) && errors.Is(err, messagepattern.ErrSyntax) {
//		log.Printf("bad pattern at %d", perr.Offset)
//	}
//
// A failed parse leaves the instance empty. Do not query it until another
// parse succeeds.
//
// # Thread Safety
//
// A MessagePattern is mutable until Freeze. Frozen instances reject Parse and
// Clear with ErrFrozen and may be shared between goroutines; CloneAsThawed
// returns an independent mutable copy. The intended use is parse once,
// freeze, cache and share (see package patterncache).
package messagepattern
