package messagepattern

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// infinity is accepted as a ChoiceFormat boundary.
const infinity = "∞"

// skipDouble skips characters that may belong to a numeric literal.
func (mp *MessagePattern) skipDouble(index int) int {
	msg := mp.msg
	for index < len(msg) {
		c := msg[index]
		switch {
		case '0' <= c && c <= '9', c == '+', c == '-', c == '.', c == 'e', c == 'E':
			index++
		case strings.HasPrefix(msg[index:], infinity):
			index += len(infinity)
		default:
			return index
		}
	}
	return index
}

// parseDouble adds an ArgInt part for small integers and an ArgDouble part
// (plus a side-table entry) for anything else in msg[start:limit].
func (mp *MessagePattern) parseDouble(start, limit int, allowInfinity bool) error {
	s := mp.msg[start:limit]
	if value, ok := parseSmallInt(s); ok {
		mp.addPart(ArgInt, start, limit-start, value)
		return nil
	}

	unsigned := s
	if unsigned != "" && (unsigned[0] == '+' || unsigned[0] == '-') {
		unsigned = unsigned[1:]
	}
	if unsigned == infinity {
		if !allowInfinity {
			return newParseError(ErrNumericFormat, "bad syntax for numeric value "+strconv.Quote(s), mp.msg, start)
		}
		value := math.Inf(1)
		if s[0] == '-' {
			value = math.Inf(-1)
		}
		return mp.addArgDoublePart(value, start, limit-start)
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return newParseError(ErrNumericFormat, "bad syntax for numeric value "+strconv.Quote(s), mp.msg, start)
	}
	return mp.addArgDoublePart(value, start, limit-start)
}

// parseSmallInt parses an optionally signed run of ASCII digits whose value
// fits in a Part value. Negative values may reach -MaxValue-1.
func parseSmallInt(s string) (int, bool) {
	i, negative := 0, 0
	if s != "" && (s[0] == '-' || s[0] == '+') {
		if s[0] == '-' {
			negative = 1
		}
		i++
	}
	if i == len(s) {
		return 0, false
	}
	value := 0
	for ; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		value = value*10 + int(c-'0')
		if value > MaxValue+negative {
			return 0, false
		}
	}
	if negative != 0 {
		value = -value
	}
	return value, true
}
