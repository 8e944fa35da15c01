package i18n

import "golang.org/x/text/language"

// FormatEnUS returns the US English format: $, MM/DD/YYYY, 12h.
func FormatEnUS() *LocaleFormat {
	return NewLocaleFormat()
}

// FormatEnGB returns the British English format: £, DD/MM/YYYY, 24h.
func FormatEnGB() *LocaleFormat {
	return NewLocaleFormat(
		WithCurrencySymbol("£"),
		clock24("02/01/2006"),
	)
}

// FormatDeDE returns the German format: 1.234,5 and € after the amount.
func FormatDeDE() *LocaleFormat {
	return euroFormat(".", "02.01.2006")
}

// FormatFrFR returns the French format: 1 234,5 and € after the amount.
func FormatFrFR() *LocaleFormat {
	return euroFormat(" ", "02/01/2006")
}

// FormatEsES returns the Spanish format: 1.234,5 and € after the amount.
func FormatEsES() *LocaleFormat {
	return euroFormat(".", "02/01/2006")
}

// FormatPtBR returns the Brazilian Portuguese format: R$1.234,50.
func FormatPtBR() *LocaleFormat {
	return NewLocaleFormat(
		WithDecimalSeparator(","),
		WithThousandSeparator("."),
		WithCurrencySymbol("R$"),
		clock24("02/01/2006"),
	)
}

// FormatJaJP returns the Japanese format: ¥, YYYY/MM/DD, 24h.
func FormatJaJP() *LocaleFormat {
	return NewLocaleFormat(WithCurrencySymbol("¥"), clock24("2006/01/02"))
}

// FormatZhCN returns the Simplified Chinese format: ¥, YYYY-MM-DD, 24h.
func FormatZhCN() *LocaleFormat {
	return NewLocaleFormat(WithCurrencySymbol("¥"), clock24("2006-01-02"))
}

// FormatKoKR returns the Korean format: ₩, YYYY.MM.DD, 24h.
func FormatKoKR() *LocaleFormat {
	return NewLocaleFormat(WithCurrencySymbol("₩"), clock24("2006.01.02"))
}

// FormatPlPL returns the Polish format: 1 234,5 zł.
func FormatPlPL() *LocaleFormat {
	return spaceGroupedFormat("zł")
}

// FormatRuRU returns the Russian format: 1 234,5 ₽.
func FormatRuRU() *LocaleFormat {
	return spaceGroupedFormat("₽")
}

// FormatArSA returns the Saudi Arabic format with Western digits: 1,234.5 SAR.
func FormatArSA() *LocaleFormat {
	return NewLocaleFormat(
		WithCurrencySymbol("SAR"),
		WithCurrencyPosition("after"),
		WithDateFormat("02/01/2006"),
		WithDateTimeFormat("02/01/2006 3:04 PM"),
	)
}

// FormatForLanguage picks a predefined format for a BCP 47 tag by base
// language, using the region only to tell en-GB from en-US.
// Unknown or malformed tags get FormatEnUS.
func FormatForLanguage(lang string) *LocaleFormat {
	tag, err := language.Parse(lang)
	if err != nil {
		return FormatEnUS()
	}
	base, _ := tag.Base()
	switch base.String() {
	case "en":
		if region, conf := tag.Region(); conf == language.Exact && region.String() != "US" {
			return FormatEnGB()
		}
		return FormatEnUS()
	case "de":
		return FormatDeDE()
	case "fr":
		return FormatFrFR()
	case "es":
		return FormatEsES()
	case "pt":
		return FormatPtBR()
	case "ja":
		return FormatJaJP()
	case "zh":
		return FormatZhCN()
	case "ko":
		return FormatKoKR()
	case "pl":
		return FormatPlPL()
	case "ru":
		return FormatRuRU()
	case "ar":
		return FormatArSA()
	default:
		return FormatEnUS()
	}
}

// clock24 sets a 24h clock with the given date layout.
func clock24(dateLayout string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.dateFormat = dateLayout
		lf.timeFormat = "15:04"
		lf.dateTimeFormat = dateLayout + " 15:04"
	}
}

func euroFormat(thousands, dateLayout string) *LocaleFormat {
	return NewLocaleFormat(
		WithDecimalSeparator(","),
		WithThousandSeparator(thousands),
		WithCurrencySymbol("€"),
		WithCurrencyPosition("after"),
		clock24(dateLayout),
	)
}

func spaceGroupedFormat(currency string) *LocaleFormat {
	return NewLocaleFormat(
		WithDecimalSeparator(","),
		WithThousandSeparator(" "),
		WithCurrencySymbol(currency),
		WithCurrencyPosition("after"),
		clock24("02.01.2006"),
	)
}
