package i18n

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// PluralRule maps a number to its CLDR plural category keyword.
type PluralRule func(n float64) string

// Plural category constants as defined by Unicode CLDR.
// Not all languages use all categories.
const (
	PluralZero  = "zero"
	PluralOne   = "one"
	PluralTwo   = "two"
	PluralFew   = "few"
	PluralMany  = "many"
	PluralOther = "other"
)

// DefaultPluralRule selects "one" for 1 and "other" for everything else.
var DefaultPluralRule PluralRule = func(n float64) string {
	if n == 1 {
		return PluralOne
	}
	return PluralOther
}

// CardinalRule returns the CLDR cardinal rule ("1 file", "2 files") for a
// BCP 47 language tag. Unknown tags fall back to DefaultPluralRule.
func CardinalRule(lang string) PluralRule {
	return cldrRule(plural.Cardinal, lang)
}

// OrdinalRule returns the CLDR ordinal rule ("1st", "2nd") for a BCP 47
// language tag, as used by selectordinal arguments.
func OrdinalRule(lang string) PluralRule {
	return cldrRule(plural.Ordinal, lang)
}

func cldrRule(rules *plural.Rules, lang string) PluralRule {
	tag, err := language.Parse(lang)
	if err != nil {
		return DefaultPluralRule
	}
	return func(n float64) string {
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return PluralOther
		}
		i, v, w, f, t := operands(n)
		return formName(rules.MatchPlural(tag, i, v, w, f, t))
	}
}

// operands computes the CLDR plural operands of n in its shortest decimal form:
// integer digits i, visible fraction digit count v (w without trailing zeros),
// and the fraction digits f (t without trailing zeros).
func operands(n float64) (i, v, w, f, t int) {
	n = math.Abs(n)
	if n >= 1e15 {
		// Keep i%1000000 intact; rules never look at higher digits.
		return 1e15 + int(math.Mod(n, 1e6)), 0, 0, 0, 0
	}
	s := strconv.FormatFloat(n, 'f', -1, 64)
	intPart, frac, _ := strings.Cut(s, ".")
	i, _ = strconv.Atoi(intPart)
	if frac == "" {
		return i, 0, 0, 0, 0
	}
	v = len(frac)
	f, _ = strconv.Atoi(frac)
	trimmed := strings.TrimRight(frac, "0")
	w = len(trimmed)
	t, _ = strconv.Atoi(trimmed)
	return i, v, w, f, t
}

func formName(form plural.Form) string {
	switch form {
	case plural.Zero:
		return PluralZero
	case plural.One:
		return PluralOne
	case plural.Two:
		return PluralTwo
	case plural.Few:
		return PluralFew
	case plural.Many:
		return PluralMany
	default:
		return PluralOther
	}
}

// SupportedPluralForms returns the categories a rule produces for a sample of
// integers, in CLDR order. Useful to validate translations.
func SupportedPluralForms(rule PluralRule) []string {
	forms := make(map[string]bool)
	for _, n := range []float64{0, 1, 2, 3, 4, 5, 6, 10, 11, 12, 13, 14, 20, 21, 22, 100, 101, 102, 1000, 1000000} {
		forms[rule(n)] = true
	}

	var result []string
	for _, form := range []string{PluralZero, PluralOne, PluralTwo, PluralFew, PluralMany, PluralOther} {
		if forms[form] {
			result = append(result, form)
		}
	}
	return result
}
