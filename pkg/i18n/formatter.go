package i18n

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/msgfmt/pkg/messagepattern"
)

// M holds named message arguments. Numbered arguments use decimal keys: {0} reads M["0"].
type M = map[string]any

// Formatter renders parsed message patterns with runtime arguments.
// It only reads the pattern through its query API and never re-parses it.
// A Formatter is immutable and safe for concurrent use.
type Formatter struct {
	format   *LocaleFormat
	cardinal PluralRule
	ordinal  PluralRule
}

// FormatterOption configures a Formatter.
type FormatterOption func(*Formatter)

// WithLocaleFormat sets the number and date format. Default: FormatForLanguage(lang).
func WithLocaleFormat(format *LocaleFormat) FormatterOption {
	return func(f *Formatter) {
		if format != nil {
			f.format = format
		}
	}
}

// WithCardinalRule overrides the rule used by plural arguments.
func WithCardinalRule(rule PluralRule) FormatterOption {
	return func(f *Formatter) {
		if rule != nil {
			f.cardinal = rule
		}
	}
}

// WithFormatterOrdinalRule overrides the rule used by selectordinal arguments.
func WithFormatterOrdinalRule(rule PluralRule) FormatterOption {
	return func(f *Formatter) {
		if rule != nil {
			f.ordinal = rule
		}
	}
}

// NewFormatter creates a Formatter with the CLDR rules and locale format of lang.
func NewFormatter(lang string, opts ...FormatterOption) *Formatter {
	f := &Formatter{
		format:   FormatForLanguage(lang),
		cardinal: CardinalRule(lang),
		ordinal:  OrdinalRule(lang),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format renders a message pattern.
func (f *Formatter) Format(mp *messagepattern.MessagePattern, args M) (string, error) {
	if mp.CountParts() == 0 || mp.PartKind(0) != messagepattern.MessageStart {
		return "", fmt.Errorf("%w: not a message pattern", ErrInvalidPattern)
	}
	var b strings.Builder
	if err := f.formatMessage(&b, mp, 0, nil, args); err != nil {
		return "", err
	}
	return b.String(), nil
}

// FormatChoice renders the sub-message of a standalone choice style selected by n.
func (f *Formatter) FormatChoice(mp *messagepattern.MessagePattern, n float64, args M) (string, error) {
	if mp.CountParts() == 0 || !mp.PartKind(0).HasNumericValue() {
		return "", fmt.Errorf("%w: not a choice pattern", ErrInvalidPattern)
	}
	var b strings.Builder
	if err := f.formatMessage(&b, mp, choiceSubMessage(mp, 0, n), nil, args); err != nil {
		return "", err
	}
	return b.String(), nil
}

// FormatPlural renders the sub-message of a standalone plural style selected by n.
// A '#' in the sub-message renders n minus the offset.
func (f *Formatter) FormatPlural(mp *messagepattern.MessagePattern, n float64, args M) (string, error) {
	if mp.CountParts() == 0 {
		return "", fmt.Errorf("%w: not a plural pattern", ErrInvalidPattern)
	}
	offset := mp.PluralOffset(0)
	var b strings.Builder
	msgStart := pluralSubMessage(mp, 0, f.cardinal, n)
	if err := f.formatMessage(&b, mp, msgStart, &pluralNumber{value: n, offset: offset}, args); err != nil {
		return "", err
	}
	return b.String(), nil
}

// FormatSelect renders the sub-message of a standalone select style matching keyword.
func (f *Formatter) FormatSelect(mp *messagepattern.MessagePattern, keyword string, args M) (string, error) {
	if mp.CountParts() == 0 || mp.PartKind(0) != messagepattern.ArgSelector {
		return "", fmt.Errorf("%w: not a select pattern", ErrInvalidPattern)
	}
	var b strings.Builder
	if err := f.formatMessage(&b, mp, selectSubMessage(mp, 0, keyword), nil, args); err != nil {
		return "", err
	}
	return b.String(), nil
}

type pluralNumber struct {
	value  float64
	offset float64
}

// formatMessage appends the message starting at part msgStart. Literal text is
// the pattern between consecutive parts; SkipSyntax and InsertChar parts are
// stepped over.
func (f *Formatter) formatMessage(b *strings.Builder, mp *messagepattern.MessagePattern, msgStart int, number *pluralNumber, args M) error {
	msg := mp.PatternString()
	prevIndex := mp.Part(msgStart).Limit()
	for i := msgStart + 1; ; i++ {
		part := mp.Part(i)
		b.WriteString(msg[prevIndex:part.Index()])
		kind := part.Kind()
		if kind == messagepattern.MessageLimit {
			return nil
		}
		prevIndex = part.Limit()

		switch kind {
		case messagepattern.ReplaceNumber:
			if number != nil {
				b.WriteString(f.format.FormatNumber(number.value - number.offset))
			}
			continue
		case messagepattern.ArgStart:
		default:
			continue
		}

		argLimit := mp.LimitPartIndex(i)
		if err := f.formatArgument(b, mp, i, args); err != nil {
			return err
		}
		i = argLimit
		prevIndex = mp.Part(argLimit).Limit()
	}
}

func (f *Formatter) formatArgument(b *strings.Builder, mp *messagepattern.MessagePattern, argStart int, args M) error {
	argType := mp.Part(argStart).ArgType()
	namePart := mp.Part(argStart + 1)

	name := mp.Substring(namePart)
	if namePart.Kind() == messagepattern.ArgNumber {
		name = strconv.Itoa(namePart.Value())
	}
	value, ok := args[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrMissingArgument, name)
	}

	styleStart := argStart + 2
	switch argType {
	case messagepattern.ArgTypeNone:
		b.WriteString(f.formatValue(value))
	case messagepattern.ArgTypeSimple:
		keyword := mp.Substring(mp.Part(styleStart))
		var style string
		if next := mp.Part(styleStart + 1); next.Kind() == messagepattern.ArgStyle {
			style = strings.TrimSpace(mp.Substring(next))
		}
		b.WriteString(f.formatSimple(keyword, style, value))
	case messagepattern.ArgTypeChoice:
		n, ok := toFloat(value)
		if !ok {
			return fmt.Errorf("%w: %q", ErrBadArgument, name)
		}
		return f.formatMessage(b, mp, choiceSubMessage(mp, styleStart, n), nil, args)
	case messagepattern.ArgTypePlural, messagepattern.ArgTypeSelectOrdinal:
		n, ok := toFloat(value)
		if !ok {
			return fmt.Errorf("%w: %q", ErrBadArgument, name)
		}
		rule := f.cardinal
		if argType == messagepattern.ArgTypeSelectOrdinal {
			rule = f.ordinal
		}
		number := &pluralNumber{value: n, offset: mp.PluralOffset(styleStart)}
		return f.formatMessage(b, mp, pluralSubMessage(mp, styleStart, rule, n), number, args)
	case messagepattern.ArgTypeSelect:
		keyword := fmt.Sprint(value)
		return f.formatMessage(b, mp, selectSubMessage(mp, styleStart, keyword), nil, args)
	}
	return nil
}

// formatValue renders an argument without a type keyword.
func (f *Formatter) formatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case time.Time:
		return f.format.FormatDateTime(v)
	case fmt.Stringer:
		return v.String()
	}
	if n, ok := toFloat(value); ok {
		return f.format.FormatNumber(n)
	}
	return fmt.Sprint(value)
}

// formatSimple renders {arg, keyword, style}. Unknown keywords fall back to
// formatValue.
func (f *Formatter) formatSimple(keyword, style string, value any) string {
	switch strings.ToLower(keyword) {
	case "number":
		n, ok := toFloat(value)
		if !ok {
			return f.formatValue(value)
		}
		switch strings.ToLower(style) {
		case "integer":
			return f.format.FormatNumber(math.Round(n))
		case "percent":
			return f.format.FormatPercent(n)
		case "currency":
			return f.format.FormatCurrency(n)
		default:
			return f.format.FormatNumber(n)
		}
	case "date":
		if t, ok := value.(time.Time); ok {
			return f.format.FormatDate(t)
		}
	case "time":
		if t, ok := value.(time.Time); ok {
			return f.format.FormatTime(t)
		}
	}
	return f.formatValue(value)
}

// choiceSubMessage returns the MessageStart index of the choice sub-message
// for n. partIndex is the first part of the choice style. A number below the
// first boundary selects the first sub-message; NaN selects the first too.
func choiceSubMessage(mp *messagepattern.MessagePattern, partIndex int, n float64) int {
	msg := mp.PatternString()
	count := mp.CountParts()
	// Skip the first boundary and separator; start on the first sub-message.
	partIndex += 2
	for {
		msgStart := partIndex
		partIndex = mp.LimitPartIndex(partIndex) + 1
		if partIndex >= count {
			return msgStart
		}
		part := mp.Part(partIndex)
		partIndex++
		if part.Kind() == messagepattern.ArgLimit {
			return msgStart
		}
		boundary := mp.NumericValue(part)
		sep := msg[mp.PatternIndex(partIndex)]
		partIndex++
		// !(a>b) rather than a<=b so that NaN stops here.
		if sep == '<' && !(n > boundary) || sep != '<' && !(n >= boundary) {
			return msgStart
		}
	}
}

// pluralSubMessage returns the MessageStart index of the plural sub-message
// for n. Explicit =N selectors compare against n itself; keywords are chosen
// by rule on n minus the offset; "other" is the fallback.
func pluralSubMessage(mp *messagepattern.MessagePattern, partIndex int, rule PluralRule, n float64) int {
	count := mp.CountParts()
	offset := 0.0
	if mp.PartKind(partIndex).HasNumericValue() {
		offset = mp.NumericValue(mp.Part(partIndex))
		partIndex++
	}

	var keyword string
	haveKeyword := false
	msgStart := 0
	for partIndex < count {
		selector := mp.Part(partIndex)
		partIndex++
		if selector.Kind() == messagepattern.ArgLimit {
			break
		}
		switch {
		case mp.PartKind(partIndex).HasNumericValue():
			explicit := mp.Part(partIndex)
			partIndex++
			if n == mp.NumericValue(explicit) {
				return partIndex
			}
		case haveKeyword:
		case mp.PartSubstringMatches(selector, PluralOther):
			if msgStart == 0 {
				msgStart = partIndex
				if keyword == PluralOther {
					haveKeyword = true
				}
			}
		default:
			if keyword == "" {
				keyword = rule(n - offset)
				if msgStart != 0 && keyword == PluralOther {
					haveKeyword = true
				}
			}
			if !haveKeyword && mp.PartSubstringMatches(selector, keyword) {
				msgStart = partIndex
				haveKeyword = true
			}
		}
		partIndex = mp.LimitPartIndex(partIndex) + 1
	}
	return msgStart
}

// selectSubMessage returns the MessageStart index of the sub-message whose
// selector equals keyword, or of the "other" sub-message.
func selectSubMessage(mp *messagepattern.MessagePattern, partIndex int, keyword string) int {
	count := mp.CountParts()
	msgStart := 0
	for partIndex < count {
		selector := mp.Part(partIndex)
		partIndex++
		if selector.Kind() == messagepattern.ArgLimit {
			break
		}
		if mp.PartSubstringMatches(selector, keyword) {
			return partIndex
		}
		if msgStart == 0 && mp.PartSubstringMatches(selector, PluralOther) {
			msgStart = partIndex
		}
		partIndex = mp.LimitPartIndex(partIndex) + 1
	}
	return msgStart
}

// toFloat converts numeric arguments, including numeric strings, to float64.
func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return n, err == nil
	case interface{ Float64() (float64, error) }:
		n, err := v.Float64()
		return n, err == nil
	default:
		return 0, false
	}
}
