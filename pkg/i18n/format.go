package i18n

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// LocaleFormat holds the separators, symbols and layouts used to render
// numbers and dates in message arguments.
// It is immutable after creation and safe for concurrent use.
type LocaleFormat struct {
	decimalSeparator  string
	thousandSeparator string
	currencySymbol    string
	currencyPosition  string // "before" or "after"
	percentSymbol     string
	dateFormat        string
	timeFormat        string
	dateTimeFormat    string
	maxFractionDigits int
}

// LocaleFormatOption configures a LocaleFormat during construction.
type LocaleFormatOption func(*LocaleFormat)

// NewLocaleFormat creates a LocaleFormat. Without options it formats like en-US.
func NewLocaleFormat(opts ...LocaleFormatOption) *LocaleFormat {
	lf := &LocaleFormat{
		decimalSeparator:  ".",
		thousandSeparator: ",",
		currencySymbol:    "$",
		currencyPosition:  "before",
		percentSymbol:     "%",
		dateFormat:        "01/02/2006",
		timeFormat:        "3:04 PM",
		dateTimeFormat:    "01/02/2006 3:04 PM",
		maxFractionDigits: 3,
	}
	for _, opt := range opts {
		opt(lf)
	}
	return lf
}

// WithDecimalSeparator sets the decimal separator.
func WithDecimalSeparator(sep string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.decimalSeparator = sep
	}
}

// WithThousandSeparator sets the digit grouping separator.
func WithThousandSeparator(sep string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.thousandSeparator = sep
	}
}

// WithCurrencySymbol sets the currency symbol.
func WithCurrencySymbol(symbol string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.currencySymbol = symbol
	}
}

// WithCurrencyPosition sets the currency position ("before" or "after").
// Other values are ignored.
func WithCurrencyPosition(pos string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		if pos == "before" || pos == "after" {
			lf.currencyPosition = pos
		}
	}
}

// WithPercentSymbol sets the percent symbol.
func WithPercentSymbol(symbol string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.percentSymbol = symbol
	}
}

// WithDateFormat sets the date layout (Go time layout).
func WithDateFormat(layout string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.dateFormat = layout
	}
}

// WithTimeFormat sets the time layout (Go time layout).
func WithTimeFormat(layout string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.timeFormat = layout
	}
}

// WithDateTimeFormat sets the date and time layout (Go time layout).
func WithDateTimeFormat(layout string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.dateTimeFormat = layout
	}
}

// WithMaxFractionDigits sets how many fraction digits FormatNumber keeps.
// Default: 3, as in ICU's default decimal format.
func WithMaxFractionDigits(n int) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		if n >= 0 {
			lf.maxFractionDigits = n
		}
	}
}

// FormatNumber renders n with grouping and at most the configured number of
// fraction digits, dropping trailing zeros.
func (lf *LocaleFormat) FormatNumber(n float64) string {
	return lf.formatDecimal(n, lf.maxFractionDigits, false)
}

// FormatCurrency renders an amount with two fraction digits and the currency symbol.
func (lf *LocaleFormat) FormatCurrency(amount float64) string {
	negative := amount < 0
	num := lf.formatDecimal(math.Abs(amount), 2, true)

	var result string
	switch {
	case lf.currencyPosition == "after":
		result = num + " " + lf.currencySymbol
	case tightCurrencySymbol(lf.currencySymbol):
		result = lf.currencySymbol + num
	default:
		result = lf.currencySymbol + " " + num
	}
	if negative {
		return "-" + result
	}
	return result
}

// FormatPercent renders a ratio as a percentage; 0.5 becomes "50%".
func (lf *LocaleFormat) FormatPercent(n float64) string {
	return lf.formatDecimal(n*100, 1, false) + lf.percentSymbol
}

// FormatDate formats a date with the locale's date layout.
func (lf *LocaleFormat) FormatDate(t time.Time) string {
	return t.Format(lf.dateFormat)
}

// FormatTime formats a time with the locale's time layout.
func (lf *LocaleFormat) FormatTime(t time.Time) string {
	return t.Format(lf.timeFormat)
}

// FormatDateTime formats a timestamp with the locale's date and time layout.
func (lf *LocaleFormat) FormatDateTime(t time.Time) string {
	return t.Format(lf.dateTimeFormat)
}

// formatDecimal rounds n to digits fraction digits. With fixed set, trailing
// zeros are kept.
func (lf *LocaleFormat) formatDecimal(n float64, digits int, fixed bool) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "∞"
	case math.IsInf(n, -1):
		return "-∞"
	}

	s := strconv.FormatFloat(math.Abs(n), 'f', digits, 64)
	intPart, frac, _ := strings.Cut(s, ".")
	if !fixed {
		frac = strings.TrimRight(frac, "0")
	}

	var b strings.Builder
	if n < 0 && (strings.Trim(intPart, "0") != "" || frac != "") {
		b.WriteByte('-')
	}
	lf.writeGrouped(&b, intPart)
	if frac != "" {
		b.WriteString(lf.decimalSeparator)
		b.WriteString(frac)
	}
	return b.String()
}

// writeGrouped writes a run of digits with a separator every three digits.
func (lf *LocaleFormat) writeGrouped(b *strings.Builder, digits string) {
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(digits[:min(head, len(digits))])
	for i := head; i < len(digits); i += 3 {
		b.WriteString(lf.thousandSeparator)
		b.WriteString(digits[i : i+3])
	}
}

// tightCurrencySymbol reports whether the symbol is written without a space
// before the amount ($5, ¥5, £5, ₩5, R$5).
func tightCurrencySymbol(symbol string) bool {
	switch {
	case strings.HasSuffix(symbol, "$"):
		return true
	case symbol == "¥", symbol == "£", symbol == "₩":
		return true
	default:
		return false
	}
}
