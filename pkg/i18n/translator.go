package i18n

import (
	"context"
	"time"
)

// Translator binds an I18n catalog to one language and namespace.
// Messages are rendered with the translator's LocaleFormat, so {n, number}
// arguments and the FormatX helpers agree.
type Translator struct {
	i18n      *I18n
	format    *LocaleFormat
	formatter *Formatter
	language  string
	namespace string
}

// NewTranslator creates a new Translator with the specified language, namespace, and optional format.
// If format is nil, it defaults to FormatForLanguage(language).
// If language is empty, it defaults to the I18n instance's default language.
func NewTranslator(i18n *I18n, language, namespace string, format *LocaleFormat) *Translator {
	if i18n == nil {
		panic("i18n: service is not provided")
	}
	if language == "" {
		language = i18n.DefaultLanguage()
	}
	if format == nil {
		format = FormatForLanguage(language)
	}
	base := i18n.formatterFor(language)
	return &Translator{
		i18n:      i18n,
		language:  language,
		namespace: namespace,
		format:    format,
		formatter: &Formatter{format: format, cardinal: base.cardinal, ordinal: base.ordinal},
	}
}

// T translates a key using the translator's language and namespace context.
func (t *Translator) T(key string, args ...M) string {
	return t.i18n.translate(t.language, t.namespace, key, t.formatter, mergeArgs(nil, args))
}

// TranslateMessage translates a key with a single argument map, for callers
// that take a func(key string, values map[string]any) string.
func (t *Translator) TranslateMessage(key string, values map[string]any) string {
	return t.T(key, values)
}

// Tn translates a key with pluralization using the translator's language and namespace context.
func (t *Translator) Tn(key string, n int, args ...M) string {
	return t.i18n.translateCount(t.language, t.namespace, key, n, t.formatter, args)
}

// Format translates a key and reports missing keys and formatting failures.
func (t *Translator) Format(ctx context.Context, key string, args M) (string, error) {
	mp, ok := t.i18n.Message(t.language, t.namespace, key)
	if !ok {
		return t.i18n.Format(ctx, t.language, t.namespace, key, args)
	}
	return t.formatter.Format(mp, args)
}

// FormatNumber formats a number with locale-specific separators.
func (t *Translator) FormatNumber(n float64) string {
	return t.format.FormatNumber(n)
}

// FormatCurrency formats a currency amount with locale-specific formatting.
func (t *Translator) FormatCurrency(amount float64) string {
	return t.format.FormatCurrency(amount)
}

// FormatPercent formats a percentage with locale-specific formatting.
// The input should be a decimal (0.5 for 50%).
func (t *Translator) FormatPercent(n float64) string {
	return t.format.FormatPercent(n)
}

// FormatDate formats a date with locale-specific formatting.
func (t *Translator) FormatDate(date time.Time) string {
	return t.format.FormatDate(date)
}

// FormatTime formats a time with locale-specific formatting.
func (t *Translator) FormatTime(tm time.Time) string {
	return t.format.FormatTime(tm)
}

// FormatDateTime formats a datetime with locale-specific formatting.
func (t *Translator) FormatDateTime(datetime time.Time) string {
	return t.format.FormatDateTime(datetime)
}

// Language returns the translator's language.
func (t *Translator) Language() string {
	return t.language
}

// Namespace returns the translator's namespace.
func (t *Translator) Namespace() string {
	return t.namespace
}

// LocaleFormat returns the LocaleFormat used by this translator.
func (t *Translator) LocaleFormat() *LocaleFormat {
	return t.format
}
