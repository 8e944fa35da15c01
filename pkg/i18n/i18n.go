package i18n

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sort"
	"strings"

	"github.com/dmitrymomot/msgfmt/pkg/logger"
	"github.com/dmitrymomot/msgfmt/pkg/messagepattern"
	"github.com/dmitrymomot/msgfmt/pkg/patterncache"
)

// DefaultLang is the default language code used when no default language is specified.
const DefaultLang = "en"

// I18n is a catalog of message patterns keyed by language, namespace and key.
// Every translation is parsed once in New; lookups format the frozen pattern.
// It is immutable after creation, making it safe for concurrent use.
type I18n struct {
	// Parsed translations, keyed "lang:namespace:key.path".
	messages map[string]*messagepattern.MessagePattern

	// Formatter per language that has translations, plus the default language.
	formatters map[string]*Formatter

	// Optional handler called when a translation key is not found.
	missingKeyHandler func(lang, namespace, key string)

	defaultLang string
	languages   []string
	logger      *slog.Logger

	// Construction state, dropped once New returns.
	raw          map[string]string
	pluralRules  map[string]PluralRule
	ordinalRules map[string]PluralRule
	formats      map[string]*LocaleFormat
	mode         messagepattern.ApostropheMode
	compiler     *patterncache.Compiler
}

// Option configures the I18n instance during construction.
type Option func(*I18n) error

// New creates a new I18n instance with the given options.
// All translations are parsed here; every invalid pattern is reported in the
// returned error, each wrapping ErrInvalidPattern.
func New(opts ...Option) (*I18n, error) {
	i := &I18n{
		raw:          make(map[string]string),
		pluralRules:  make(map[string]PluralRule),
		ordinalRules: make(map[string]PluralRule),
		formats:      make(map[string]*LocaleFormat),
		defaultLang:  DefaultLang,
		mode:         messagepattern.DefaultApostropheMode,
		logger:       logger.NewNope(),
	}

	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if i.defaultLang == "" {
		return nil, ErrEmptyLanguage
	}

	if err := i.compile(context.Background()); err != nil {
		return nil, err
	}
	i.formatters = i.buildFormatters()
	i.languages = i.buildLanguagesList()

	i.raw, i.pluralRules, i.ordinalRules, i.formats, i.compiler = nil, nil, nil, nil, nil

	return i, nil
}

// WithDefaultLanguage sets the default/fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		i.defaultLang = lang
		return nil
	}
}

// WithLanguages sets the supported languages for the I18n instance.
// The default language will always be included and placed first in the list.
// Other languages will be sorted alphabetically.
func WithLanguages(langs ...string) Option {
	return func(i *I18n) error {
		if len(langs) == 0 {
			return nil
		}

		langSet := make(map[string]bool)
		for _, lang := range langs {
			if lang != "" {
				langSet[lang] = true
			}
		}

		i.languages = make([]string, 0, len(langSet)+1)
		i.languages = append(i.languages, i.defaultLang)

		delete(langSet, i.defaultLang)

		if len(langSet) > 0 {
			otherLangs := make([]string, 0, len(langSet))
			for lang := range langSet {
				otherLangs = append(otherLangs, lang)
			}
			sort.Strings(otherLangs)
			i.languages = append(i.languages, otherLangs...)
		}

		return nil
	}
}

// WithTranslations loads translations for a specific language and namespace.
// The translations map can be nested; it will be flattened internally for
// efficient lookups. Values are MessageFormat patterns.
func WithTranslations(lang, namespace string, translations map[string]any) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if namespace == "" {
			return ErrEmptyNamespace
		}
		i.addTranslations(lang, namespace, translations)
		return nil
	}
}

// WithPluralRule registers a custom cardinal rule for a language.
// Without it the CLDR rule of the language is used.
func WithPluralRule(lang string, rule PluralRule) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if rule == nil {
			return ErrNilPluralRule
		}
		i.pluralRules[lang] = rule
		return nil
	}
}

// WithOrdinalRule registers a custom rule for selectordinal arguments.
func WithOrdinalRule(lang string, rule PluralRule) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if rule == nil {
			return ErrNilPluralRule
		}
		i.ordinalRules[lang] = rule
		return nil
	}
}

// WithFormat sets the number and date format for a language.
// Default: FormatForLanguage(lang).
func WithFormat(lang string, format *LocaleFormat) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if format != nil {
			i.formats[lang] = format
		}
		return nil
	}
}

// WithApostropheMode sets how apostrophes in translations are parsed.
// Default: messagepattern.DefaultApostropheMode.
func WithApostropheMode(mode messagepattern.ApostropheMode) Option {
	return func(i *I18n) error {
		i.mode = mode
		return nil
	}
}

// WithCompiler parses translations through a shared pattern cache.
func WithCompiler(c *patterncache.Compiler) Option {
	return func(i *I18n) error {
		i.compiler = c
		return nil
	}
}

// WithLogger sets the logger used to report formatting failures in T and Tn.
func WithLogger(l *slog.Logger) Option {
	return func(i *I18n) error {
		if l != nil {
			i.logger = l
		}
		return nil
	}
}

// WithMissingKeyHandler sets a handler function that will be called when a translation
// key is not found in any language (including the default fallback).
func WithMissingKeyHandler(handler func(lang, namespace, key string)) Option {
	return func(i *I18n) error {
		i.missingKeyHandler = handler
		return nil
	}
}

// T translates a key. The arguments are merged left to right.
// Falls back to the base language, then the default language; returns the
// key itself if no translation exists. If the message cannot be formatted,
// the failure is logged and the raw pattern is returned.
func (i *I18n) T(lang, namespace, key string, args ...M) string {
	return i.translate(lang, namespace, key, nil, mergeArgs(nil, args))
}

// Tn translates a key for a count, injected as the "count" argument.
// A message at key is expected to use {count, plural, ...}. Without one, the
// key is treated as a group of plural forms ("key.one", "key.other") and the
// form is chosen by the language's cardinal rule.
func (i *I18n) Tn(lang, namespace, key string, n int, args ...M) string {
	return i.translateCount(lang, namespace, key, n, nil, args)
}

// Format is like T but reports missing keys and formatting failures.
func (i *I18n) Format(ctx context.Context, lang, namespace, key string, args M) (string, error) {
	mp, found, ok := i.lookup(lang, namespace, key)
	if !ok {
		return "", fmt.Errorf("%w: %s:%s:%s", ErrKeyNotFound, lang, namespace, key)
	}
	s, err := i.formatterFor(found).Format(mp, args)
	if err != nil {
		i.logger.DebugContext(ctx, "message format failed",
			slog.String("lang", lang),
			slog.String("namespace", namespace),
			slog.String("key", key),
			slog.Any("error", err),
		)
		return "", fmt.Errorf("%s:%s:%s: %w", lang, namespace, key, err)
	}
	return s, nil
}

// Message returns the parsed pattern for a key after language fallback.
func (i *I18n) Message(lang, namespace, key string) (*messagepattern.MessagePattern, bool) {
	mp, _, ok := i.lookup(lang, namespace, key)
	return mp, ok
}

// Languages returns the list of available languages.
func (i *I18n) Languages() []string {
	return i.languages
}

// DefaultLanguage returns the default/fallback language.
func (i *I18n) DefaultLanguage() string {
	return i.defaultLang
}

// translate formats a key with f, or with the formatter of the language the
// translation was found in when f is nil.
func (i *I18n) translate(lang, namespace, key string, f *Formatter, args M) string {
	mp, found, ok := i.lookup(lang, namespace, key)
	if !ok {
		i.missingKey(lang, namespace, key)
		return key
	}
	return i.render(mp, found, namespace, key, f, args)
}

func (i *I18n) translateCount(lang, namespace, key string, n int, f *Formatter, args []M) string {
	merged := mergeArgs(M{"count": n}, args)

	if mp, found, ok := i.lookup(lang, namespace, key); ok {
		return i.render(mp, found, namespace, key, f, merged)
	}

	for _, candidate := range i.fallbackChain(lang) {
		rule := i.formatterFor(candidate).cardinal
		if mp, formKey, ok := i.findPluralForm(candidate, namespace, key, rule(float64(n))); ok {
			return i.render(mp, candidate, namespace, formKey, f, merged)
		}
	}

	i.missingKey(lang, namespace, key)
	return key
}

func (i *I18n) render(mp *messagepattern.MessagePattern, lang, namespace, key string, f *Formatter, args M) string {
	if f == nil {
		f = i.formatterFor(lang)
	}
	s, err := f.Format(mp, args)
	if err != nil {
		i.logger.Warn("message format failed",
			slog.String("lang", lang),
			slog.String("namespace", namespace),
			slog.String("key", key),
			slog.Any("error", err),
		)
		return mp.PatternString()
	}
	return s
}

func (i *I18n) missingKey(lang, namespace, key string) {
	if i.missingKeyHandler != nil {
		i.missingKeyHandler(lang, namespace, key)
	}
}

// lookup resolves a key through the fallback chain and reports the language
// it was found in.
func (i *I18n) lookup(lang, namespace, key string) (*messagepattern.MessagePattern, string, bool) {
	for _, candidate := range i.fallbackChain(lang) {
		if mp, ok := i.messages[buildKey(candidate, namespace, key)]; ok {
			return mp, candidate, true
		}
	}
	return nil, "", false
}

// fallbackChain lists lang, its base language and the default language,
// without duplicates.
func (i *I18n) fallbackChain(lang string) []string {
	chain := make([]string, 0, 3)
	chain = append(chain, lang)
	if base := baseLanguage(lang); base != lang {
		chain = append(chain, base)
	}
	if lang != i.defaultLang && baseLanguage(lang) != i.defaultLang {
		chain = append(chain, i.defaultLang)
	}
	return chain
}

// findPluralForm finds "key.form" in one language, then the forms form falls back to.
func (i *I18n) findPluralForm(lang, namespace, key, form string) (*messagepattern.MessagePattern, string, bool) {
	for _, f := range append([]string{form}, getPluralFallbackForms(form)...) {
		formKey := key + "." + f
		if mp, ok := i.messages[buildKey(lang, namespace, formKey)]; ok {
			return mp, formKey, true
		}
	}
	return nil, "", false
}

// formatterFor returns the formatter for lang or its base language, falling
// back to a formatter built on demand.
func (i *I18n) formatterFor(lang string) *Formatter {
	if f, ok := i.formatters[lang]; ok {
		return f
	}
	if f, ok := i.formatters[baseLanguage(lang)]; ok {
		return f
	}
	return NewFormatter(lang)
}

func (i *I18n) addTranslations(lang, namespace string, translations map[string]any) {
	for key, value := range flattenTranslations(translations, "") {
		i.raw[buildKey(lang, namespace, key)] = value
	}
}

// compile parses every raw translation and freezes it.
func (i *I18n) compile(ctx context.Context) error {
	i.messages = make(map[string]*messagepattern.MessagePattern, len(i.raw))

	var errs []error
	for _, key := range slices.Sorted(maps.Keys(i.raw)) {
		var (
			mp  *messagepattern.MessagePattern
			err error
		)
		if i.compiler != nil {
			mp, err = i.compiler.CompileWithMode(ctx, i.mode, patterncache.KindMessage, i.raw[key])
		} else {
			mp, err = messagepattern.Parse(i.raw[key], messagepattern.WithApostropheMode(i.mode))
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %w", ErrInvalidPattern, key, err))
			continue
		}
		i.messages[key] = mp.Freeze()
	}
	return errors.Join(errs...)
}

func (i *I18n) buildFormatters() map[string]*Formatter {
	langs := map[string]bool{i.defaultLang: true}
	for key := range i.messages {
		lang, _, _ := strings.Cut(key, ":")
		langs[lang] = true
	}
	for _, m := range []map[string]PluralRule{i.pluralRules, i.ordinalRules} {
		for lang := range m {
			langs[lang] = true
		}
	}
	for lang := range i.formats {
		langs[lang] = true
	}

	formatters := make(map[string]*Formatter, len(langs))
	for lang := range langs {
		formatters[lang] = NewFormatter(lang,
			WithLocaleFormat(i.formats[lang]),
			WithCardinalRule(i.pluralRules[lang]),
			WithFormatterOrdinalRule(i.ordinalRules[lang]),
		)
	}
	return formatters
}

// buildLanguagesList returns the explicit language list, or the default
// language followed by every other language that has translations.
func (i *I18n) buildLanguagesList() []string {
	if len(i.languages) > 0 {
		return i.languages
	}
	others := make(map[string]struct{})
	for key := range i.raw {
		if lang, _, ok := strings.Cut(key, ":"); ok && lang != i.defaultLang {
			others[lang] = struct{}{}
		}
	}
	return append([]string{i.defaultLang}, slices.Sorted(maps.Keys(others))...)
}

func buildKey(lang, namespace, key string) string {
	return lang + ":" + namespace + ":" + key
}

func flattenTranslations(data map[string]any, prefix string) map[string]string {
	result := make(map[string]string)

	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			maps.Copy(result, flattenTranslations(v, fullKey))
		case map[string]string:
			for subKey, subVal := range v {
				result[fullKey+"."+subKey] = subVal
			}
		default:
			result[fullKey] = fmt.Sprintf("%v", v)
		}
	}

	return result
}

// mergeArgs copies args over base. Later maps win.
func mergeArgs(base M, args []M) M {
	if len(args) == 0 {
		return base
	}
	merged := make(M, len(base)+len(args[0]))
	maps.Copy(merged, base)
	for _, a := range args {
		maps.Copy(merged, a)
	}
	return merged
}

// baseLanguage strips the region from a language tag (e.g., "en-US" → "en").
// Returns the input unchanged if there is no region.
func baseLanguage(lang string) string {
	if i := strings.IndexByte(lang, '-'); i > 0 {
		return lang[:i]
	}
	return lang
}

func getPluralFallbackForms(form string) []string {
	switch form {
	case PluralTwo:
		return []string{PluralFew, PluralMany, PluralOther}
	case PluralFew:
		return []string{PluralMany, PluralOther}
	case PluralOther:
		return nil
	default:
		return []string{PluralOther}
	}
}
