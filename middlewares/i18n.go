package middlewares

import (
	"github.com/dmitrymomot/msgfmt/internal"
	"github.com/dmitrymomot/msgfmt/pkg/i18n"
)

// I18nConfig configures the I18n middleware.
type I18nConfig struct {
	FormatMap    map[string]*i18n.LocaleFormat
	Namespace    string
	Extractor    internal.Extractor
	extractorSet bool
}

// I18nOption configures I18nConfig.
type I18nOption func(*I18nConfig)

// WithI18nNamespace sets the default namespace for the context translator.
func WithI18nNamespace(ns string) I18nOption {
	return func(cfg *I18nConfig) {
		cfg.Namespace = ns
	}
}

// WithI18nExtractor replaces the language extractor chain.
func WithI18nExtractor(ext internal.Extractor) I18nOption {
	return func(cfg *I18nConfig) {
		cfg.Extractor = ext
		cfg.extractorSet = true
	}
}

// WithI18nFormatMap overrides the locale format per language. Languages
// missing from the map use i18n.FormatForLanguage.
func WithI18nFormatMap(m map[string]*i18n.LocaleFormat) I18nOption {
	return func(cfg *I18nConfig) {
		cfg.FormatMap = m
	}
}

// FromAcceptLanguage returns an ExtractorSource that matches the
// Accept-Language header against the available languages.
func FromAcceptLanguage(available []string) internal.ExtractorSource {
	return func(c internal.Context) (string, bool) {
		header := c.Header("Accept-Language")
		if header == "" {
			return "", false
		}
		lang := i18n.ParseAcceptLanguage(header, available)
		return lang, lang != ""
	}
}

// I18n returns middleware that resolves the request language, builds a
// Translator and stores both in the request context.
// The default chain is the "lang" query parameter, the "lang" cookie and
// then Accept-Language.
func I18n(svc *i18n.I18n, opts ...I18nOption) internal.Middleware {
	cfg := &I18nConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if !cfg.extractorSet {
		cfg.Extractor = internal.NewExtractor(
			internal.FromQuery("lang"),
			internal.FromCookie("lang"),
			FromAcceptLanguage(svc.Languages()),
		)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			lang, ok := cfg.Extractor.Extract(c)
			if !ok {
				lang = svc.DefaultLanguage()
			}

			tr := i18n.NewTranslator(svc, lang, cfg.Namespace, cfg.FormatMap[lang])

			c.Set(internal.TranslatorKey{}, tr)
			c.Set(internal.LanguageKey{}, tr.Language())

			return next(c)
		}
	}
}

// GetTranslator extracts the Translator from the context.
// Returns nil if the I18n middleware is not used.
func GetTranslator(c internal.Context) *i18n.Translator {
	return c.Translator()
}

// GetLanguage extracts the resolved language from the context.
// Returns an empty string if the I18n middleware is not used.
func GetLanguage(c internal.Context) string {
	return c.Language()
}
