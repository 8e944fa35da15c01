package messagepattern

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// ArgNameNotNumber is returned by ValidateArgumentName for a valid
	// pattern identifier that is not all ASCII digits.
	ArgNameNotNumber = -1

	// ArgNameNotValid is returned by ValidateArgumentName for strings that
	// are neither identifiers nor well-formed argument numbers.
	ArgNameNotValid = -2
)

// choiceLessOrEqual is the third ChoiceFormat separator besides '#' and '<'.
const choiceLessOrEqual = "≤"

// parseMessage parses a message (sub-)pattern starting at index and returns
// the index after its terminator. Inside a choice style it returns the index
// of the terminating '|' or '}' so the caller can inspect it.
func (mp *MessagePattern) parseMessage(index, msgStartLength, nestingLevel int, parentType ArgKind) (int, error) {
	if nestingLevel > MaxValue {
		return 0, newParseError(ErrLimitExceeded, "nesting level too deep", mp.msg, index)
	}
	msgStartIndex := index
	msgStart := len(mp.parts)
	mp.addPart(MessageStart, index, msgStartLength, nestingLevel)
	index += msgStartLength
	for index < len(mp.msg) {
		c := mp.msg[index]
		index++
		switch {
		case c == '\'':
			index = mp.parseApostrophe(index, parentType)
		case c == '#' && parentType.HasPluralStyle():
			mp.addPart(ReplaceNumber, index-1, 1, 0)
		case c == '{':
			var err error
			if index, err = mp.parseArg(index-1, 1, nestingLevel); err != nil {
				return 0, err
			}
		case (nestingLevel > 0 && c == '}') || (parentType == ArgTypeChoice && c == '|'):
			// In a choice style the '}' belongs to the following ArgLimit.
			limitLength := 1
			if parentType == ArgTypeChoice && c == '}' {
				limitLength = 0
			}
			mp.addLimitPart(msgStart, MessageLimit, index-1, limitLength, nestingLevel)
			if parentType == ArgTypeChoice {
				return index - 1, nil
			}
			return index, nil
		}
	}
	if nestingLevel > 0 && !mp.inTopLevelChoiceMessage(nestingLevel, parentType) {
		return 0, newParseError(ErrSyntax, "unmatched '{' braces in message", mp.msg, msgStartIndex)
	}
	mp.addLimitPart(msgStart, MessageLimit, index, 0, nestingLevel)
	return index, nil
}

// parseApostrophe handles the apostrophe just before index and returns the
// index where literal-text scanning resumes.
func (mp *MessagePattern) parseApostrophe(index int, parentType ArgKind) int {
	msg := mp.msg
	if index == len(msg) {
		// Dangling apostrophe at the end of the pattern.
		mp.addInsertApostrophe(index)
		return index
	}
	c := msg[index]
	switch {
	case c == '\'':
		mp.addPart(SkipSyntax, index, 1, 0)
		return index + 1
	case mp.aposMode == DoubleRequired ||
		c == '{' || c == '}' ||
		(parentType == ArgTypeChoice && c == '|') ||
		(parentType.HasPluralStyle() && c == '#'):
		mp.addPart(SkipSyntax, index-1, 1, 0)
		for {
			next := strings.IndexByte(msg[index+1:], '\'')
			if next < 0 {
				// Quoted text runs to the end of the pattern.
				mp.addInsertApostrophe(len(msg))
				return len(msg)
			}
			index += 1 + next
			if index+1 < len(msg) && msg[index+1] == '\'' {
				// Doubled apostrophe inside quoted text, still one apostrophe.
				index++
				mp.addPart(SkipSyntax, index, 1, 0)
				continue
			}
			mp.addPart(SkipSyntax, index, 1, 0)
			return index + 1
		}
	default:
		// Literal apostrophe; auto-quoting would double it.
		mp.addInsertApostrophe(index)
		return index
	}
}

func (mp *MessagePattern) addInsertApostrophe(index int) {
	mp.addPart(InsertChar, index, 0, '\'')
	mp.needsAutoQuoting = true
}

func (mp *MessagePattern) parseArg(index, argStartLength, nestingLevel int) (int, error) {
	msg := mp.msg
	argStartIndex := index
	argStart := len(mp.parts)
	argType := ArgTypeNone
	mp.addPart(ArgStart, index, argStartLength, int(argType))

	nameIndex := mp.skipWhiteSpace(index + argStartLength)
	if nameIndex == len(msg) {
		return 0, newParseError(ErrSyntax, "unmatched '{' braces in message", msg, argStartIndex)
	}
	index = mp.skipIdentifier(nameIndex)
	length := index - nameIndex
	switch number := parseArgNumber(msg[nameIndex:index]); {
	case number >= 0:
		if length > MaxLength || number > MaxValue {
			return 0, newParseError(ErrLimitExceeded, "argument number too large", msg, nameIndex)
		}
		mp.hasArgNumbers = true
		mp.addPart(ArgNumber, nameIndex, length, number)
	case number == ArgNameNotNumber:
		if length > MaxLength {
			return 0, newParseError(ErrLimitExceeded, "argument name too long", msg, nameIndex)
		}
		mp.hasArgNames = true
		mp.addPart(ArgName, nameIndex, length, 0)
	default:
		return 0, newParseError(ErrSyntax, "bad argument syntax", msg, nameIndex)
	}

	index = mp.skipWhiteSpace(index)
	if index == len(msg) {
		return 0, newParseError(ErrSyntax, "unmatched '{' braces in message", msg, argStartIndex)
	}
	switch msg[index] {
	case '}':
	case ',':
		typeIndex := mp.skipWhiteSpace(index + 1)
		index = typeIndex
		for index < len(msg) && isArgTypeChar(msg[index]) {
			index++
		}
		length := index - typeIndex
		index = mp.skipWhiteSpace(index)
		if index == len(msg) {
			return 0, newParseError(ErrSyntax, "unmatched '{' braces in message", msg, argStartIndex)
		}
		c := msg[index]
		if length == 0 || (c != ',' && c != '}') {
			return 0, newParseError(ErrSyntax, "bad argument syntax", msg, nameIndex)
		}
		if length > MaxLength {
			return 0, newParseError(ErrLimitExceeded, "argument type name too long", msg, nameIndex)
		}
		argType = argKindForKeyword(msg[typeIndex : typeIndex+length])
		// The type is only known now; patch the ArgStart emitted above.
		mp.parts[argStart].value = int16(argType)
		if argType == ArgTypeSimple {
			mp.addPart(ArgType, typeIndex, length, 0)
		}
		if c == '}' {
			if argType != ArgTypeSimple {
				return 0, newParseError(ErrSyntax, "no style field for complex argument", msg, nameIndex)
			}
			break
		}
		var err error
		switch argType {
		case ArgTypeSimple:
			index, err = mp.parseSimpleStyle(index + 1)
		case ArgTypeChoice:
			index, err = mp.parseChoiceStyle(index+1, nestingLevel)
		default:
			index, err = mp.parsePluralOrSelectStyle(argType, index+1, nestingLevel)
		}
		if err != nil {
			return 0, err
		}
	default:
		return 0, newParseError(ErrSyntax, "bad argument syntax", msg, nameIndex)
	}
	// Argument parsing stopped on the closing '}'.
	mp.addLimitPart(argStart, ArgLimit, index, 1, int(argType))
	return index + 1, nil
}

// argKindForKeyword maps a type keyword to its ArgKind. Complex type names
// are matched case-insensitively; any other keyword is a simple type.
func argKindForKeyword(keyword string) ArgKind {
	switch {
	case strings.EqualFold(keyword, "choice"):
		return ArgTypeChoice
	case strings.EqualFold(keyword, "plural"):
		return ArgTypePlural
	case strings.EqualFold(keyword, "select"):
		return ArgTypeSelect
	case strings.EqualFold(keyword, "selectordinal"):
		return ArgTypeSelectOrdinal
	default:
		return ArgTypeSimple
	}
}

// parseSimpleStyle captures the opaque style text up to the '}' that closes
// the argument and returns the index of that '}'.
func (mp *MessagePattern) parseSimpleStyle(index int) (int, error) {
	msg := mp.msg
	start := index
	nestedBraces := 0
	for index < len(msg) {
		c := msg[index]
		index++
		switch c {
		case '\'':
			// Quoted text stays in the style but hides braces.
			end := strings.IndexByte(msg[index:], '\'')
			if end < 0 {
				return 0, newParseError(ErrSyntax,
					"quoted literal argument style text reaches to the end of the message", msg, start)
			}
			index += end + 1
		case '{':
			nestedBraces++
		case '}':
			if nestedBraces > 0 {
				nestedBraces--
				continue
			}
			index--
			length := index - start
			if length > MaxLength {
				return 0, newParseError(ErrLimitExceeded, "argument style text too long", msg, start)
			}
			mp.addPart(ArgStyle, start, length, 0)
			return index, nil
		}
	}
	return 0, newParseError(ErrSyntax, "unmatched '{' braces in message", msg, start)
}

// parseChoiceStyle parses |-separated (number, separator, message) triples.
func (mp *MessagePattern) parseChoiceStyle(index, nestingLevel int) (int, error) {
	msg := mp.msg
	start := index
	index = mp.skipWhiteSpace(index)
	if index == len(msg) || msg[index] == '}' {
		return 0, newParseError(ErrSyntax, "missing choice argument pattern", msg, start)
	}
	for {
		numberIndex := index
		index = mp.skipDouble(index)
		length := index - numberIndex
		if length == 0 {
			return 0, newParseError(ErrSyntax, "bad choice pattern syntax", msg, start)
		}
		if length > MaxLength {
			return 0, newParseError(ErrLimitExceeded, "choice number too long", msg, numberIndex)
		}
		if err := mp.parseDouble(numberIndex, index, true); err != nil {
			return 0, err
		}

		index = mp.skipWhiteSpace(index)
		if index == len(msg) {
			return 0, newParseError(ErrSyntax, "bad choice pattern syntax", msg, start)
		}
		sepLength := 1
		switch {
		case msg[index] == '#' || msg[index] == '<':
		case strings.HasPrefix(msg[index:], choiceLessOrEqual):
			sepLength = len(choiceLessOrEqual)
		default:
			r, _ := utf8.DecodeRuneInString(msg[index:])
			return 0, newParseError(ErrSyntax,
				"expected choice separator (#<≤) instead of '"+string(r)+"' in choice pattern", msg, start)
		}
		mp.addPart(ArgSelector, index, sepLength, 0)

		var err error
		if index, err = mp.parseMessage(index+sepLength, 0, nestingLevel+1, ArgTypeChoice); err != nil {
			return 0, err
		}
		// parseMessage returned the index of the terminator or len(msg).
		if index == len(msg) {
			return index, nil
		}
		if msg[index] == '}' {
			if !mp.inMessageFormatPattern(nestingLevel) {
				return 0, newParseError(ErrSyntax, "bad choice pattern syntax", msg, start)
			}
			return index, nil
		}
		// The terminator is '|': another triple follows.
		index = mp.skipWhiteSpace(index + 1)
	}
}

// parsePluralOrSelectStyle parses (selector, {message}) pairs, with an
// optional leading "offset:N" for plural-family styles.
func (mp *MessagePattern) parsePluralOrSelectStyle(argType ArgKind, index, nestingLevel int) (int, error) {
	msg := mp.msg
	start := index
	styleName := strings.ToLower(argType.String())
	isEmpty := true
	hasOther := false
	for {
		index = mp.skipWhiteSpace(index)
		eos := index == len(msg)
		if eos || msg[index] == '}' {
			// '}' closes a nested style; end of string closes a standalone one.
			if eos == mp.inMessageFormatPattern(nestingLevel) {
				return 0, newParseError(ErrSyntax, "bad "+styleName+" pattern syntax", msg, start)
			}
			if !hasOther {
				return 0, newParseError(ErrSyntax, "missing 'other' keyword in "+styleName+" pattern", msg, start)
			}
			return index, nil
		}

		selectorIndex := index
		if argType.HasPluralStyle() && msg[selectorIndex] == '=' {
			// Explicit-value selector: =number
			index = mp.skipDouble(index + 1)
			length := index - selectorIndex
			if length == 1 {
				return 0, newParseError(ErrSyntax, "bad "+styleName+" pattern syntax", msg, start)
			}
			if length > MaxLength {
				return 0, newParseError(ErrLimitExceeded, "argument selector too long", msg, selectorIndex)
			}
			mp.addPart(ArgSelector, selectorIndex, length, 0)
			if err := mp.parseDouble(selectorIndex+1, index, false); err != nil {
				return 0, err
			}
		} else {
			index = mp.skipIdentifier(index)
			length := index - selectorIndex
			if length == 0 {
				return 0, newParseError(ErrSyntax, "bad "+styleName+" pattern syntax", msg, start)
			}
			// The ':' of "offset:" is a pattern syntax char and ends the identifier.
			if argType.HasPluralStyle() && length == 6 && strings.HasPrefix(msg[selectorIndex:], "offset:") {
				if !isEmpty {
					return 0, newParseError(ErrSyntax,
						"plural argument 'offset:' (if present) must precede key-message pairs", msg, start)
				}
				valueIndex := mp.skipWhiteSpace(index + 1)
				index = mp.skipDouble(valueIndex)
				if index == valueIndex {
					return 0, newParseError(ErrSyntax, "missing value for plural 'offset:'", msg, start)
				}
				if index-valueIndex > MaxLength {
					return 0, newParseError(ErrLimitExceeded, "plural offset value too long", msg, valueIndex)
				}
				if err := mp.parseDouble(valueIndex, index, false); err != nil {
					return 0, err
				}
				isEmpty = false
				continue
			}
			if length > MaxLength {
				return 0, newParseError(ErrLimitExceeded, "argument selector too long", msg, selectorIndex)
			}
			mp.addPart(ArgSelector, selectorIndex, length, 0)
			if msg[selectorIndex:index] == "other" {
				hasOther = true
			}
		}

		index = mp.skipWhiteSpace(index)
		if index == len(msg) || msg[index] != '{' {
			return 0, newParseError(ErrSyntax, "no message fragment after "+styleName+" selector", msg, selectorIndex)
		}
		var err error
		if index, err = mp.parseMessage(index, 1, nestingLevel+1, argType); err != nil {
			return 0, err
		}
		isEmpty = false
	}
}

// inMessageFormatPattern reports whether the style being parsed is nested in
// a MessageFormat pattern rather than parsed standalone.
func (mp *MessagePattern) inMessageFormatPattern(nestingLevel int) bool {
	return nestingLevel > 0 || (len(mp.parts) > 0 && mp.parts[0].kind == MessageStart)
}

// inTopLevelChoiceMessage reports whether a choice sub-message belongs to a
// standalone choice style, where it may end at the end of the string.
func (mp *MessagePattern) inTopLevelChoiceMessage(nestingLevel int, parentType ArgKind) bool {
	return nestingLevel == 1 &&
		parentType == ArgTypeChoice &&
		(len(mp.parts) == 0 || mp.parts[0].kind != MessageStart)
}

func (mp *MessagePattern) skipWhiteSpace(index int) int {
	return skipWhiteSpace(mp.msg, index)
}

func (mp *MessagePattern) skipIdentifier(index int) int {
	return skipIdentifier(mp.msg, index)
}

func skipWhiteSpace(s string, index int) int {
	for index < len(s) {
		r, size := utf8.DecodeRuneInString(s[index:])
		if !unicode.Is(unicode.Pattern_White_Space, r) {
			break
		}
		index += size
	}
	return index
}

func skipIdentifier(s string, index int) int {
	for index < len(s) {
		r, size := utf8.DecodeRuneInString(s[index:])
		if unicode.Is(unicode.Pattern_White_Space, r) || unicode.Is(unicode.Pattern_Syntax, r) {
			break
		}
		index += size
	}
	return index
}

// isIdentifier reports whether s is a non-empty pattern identifier.
func isIdentifier(s string) bool {
	return s != "" && skipIdentifier(s, 0) == len(s)
}

func isArgTypeChar(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// parseArgNumber returns the argument number for an all-ASCII-digit
// identifier, ArgNameNotNumber when s has a non-digit, and ArgNameNotValid
// for empty input, leading zeros or int32 overflow.
func parseArgNumber(s string) int {
	if s == "" {
		return ArgNameNotValid
	}
	var number int
	var badNumber bool
	switch c := s[0]; {
	case c == '0':
		if len(s) == 1 {
			return 0
		}
		badNumber = true
	case '1' <= c && c <= '9':
		number = int(c - '0')
	default:
		return ArgNameNotNumber
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return ArgNameNotNumber
		}
		if number >= math.MaxInt32/10 {
			badNumber = true
		}
		number = number*10 + int(c-'0')
	}
	if badNumber {
		return ArgNameNotValid
	}
	return number
}

// ValidateArgumentName checks a string as an argument name or number.
// It returns the number (>= 0) for a well-formed argument number,
// ArgNameNotNumber for a pattern identifier that is not a number,
// and ArgNameNotValid otherwise (including numbers with leading zeros).
func ValidateArgumentName(name string) int {
	if !isIdentifier(name) {
		return ArgNameNotValid
	}
	return parseArgNumber(name)
}
