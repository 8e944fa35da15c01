// Package i18n renders MessageFormat patterns parsed by package messagepattern
// and keeps them in an immutable translation catalog.
//
// Every translation is parsed and frozen once, in New; a malformed pattern
// fails construction instead of surfacing at request time. Lookups are O(1)
// and walk a fallback chain: requested language, base language, default
// language, then the key itself.
//
// # Basic Usage
//
//	catalog, err := i18n.New(
//		i18n.WithDefaultLanguage("en"),
//		i18n.WithTranslations("en", "app", map[string]any{
//			"goodbye": "Goodbye, {name}!",
//			"files":   "{count, plural, =0{No files} one{# file} other{# files}}",
//		}),
//		i18n.WithTranslations("pl", "app", map[string]any{
//			"files": "{count, plural, one{# plik} few{# pliki} many{# plików} other{# pliku}}",
//		}),
//	)
//
//	catalog.T("en", "app", "goodbye", i18n.M{"name": "Ann"}) // "Goodbye, Ann!"
//	catalog.Tn("pl", "app", "files", 5)                       // "5 plików"
//
// T and Tn never fail: a missing key yields the key, a formatting failure is
// logged and yields the raw pattern. Format returns the error instead.
//
// # Formatter
//
// Formatter renders a single parsed pattern. Plural arguments use CLDR rules
// from golang.org/x/text; explicit =N selectors win over keywords, '#' prints
// the number minus the offset, and "other" is the fallback.
//
//	mp := messagepattern.MustParse("{n, selectordinal, one{#st} two{#nd} few{#rd} other{#th}}")
//	s, err := i18n.NewFormatter("en").Format(mp, i18n.M{"n": 22}) // "22nd"
//
// Simple arguments understand number (integer, percent, currency), date and
// time; other types fall back to the value's default rendering.
//
// # File-Based Translations
//
//	//go:embed translations
//	var translationsFS embed.FS
//
//	subFS, _ := fs.Sub(translationsFS, "translations")
//	catalog, err := i18n.New(i18n.WithYAMLDir(subFS))
//
// File convention: {lang}/{namespace}.json (or .yaml/.yml).
//
// # Plural Form Groups
//
// Tn also accepts keys that group one pattern per plural category:
//
//	"items": map[string]any{"one": "{count} item", "other": "{count} items"}
//
// A missing category falls back towards "other".
//
// # Accept-Language
//
//	lang := i18n.ParseAcceptLanguage("es-ES,es;q=0.9,en;q=0.8", catalog.Languages())
package i18n
