package i18n_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/msgfmt/pkg/i18n"
	"github.com/dmitrymomot/msgfmt/pkg/messagepattern"
)

func TestFormatter_Format(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, 1, 2, 15, 4, 0, 0, time.UTC)

	tests := []struct {
		name     string
		pattern  string
		args     i18n.M
		expected string
	}{
		{"plain text", "Hello, world", nil, "Hello, world"},
		{"named argument", "Hello, {name}!", i18n.M{"name": "Ann"}, "Hello, Ann!"},
		{"numbered arguments", "{1} before {0}", i18n.M{"0": "a", "1": "b"}, "b before a"},
		{"number without style", "{n}", i18n.M{"n": 1234.5}, "1,234.5"},
		{"integer argument", "{n}", i18n.M{"n": 42}, "42"},
		{"number style", "{n, number}", i18n.M{"n": 1234567}, "1,234,567"},
		{"integer style", "{n, number, integer}", i18n.M{"n": 2.6}, "3"},
		{"percent style", "{n, number, percent}", i18n.M{"n": 0.25}, "25%"},
		{"currency style", "{n, number, currency}", i18n.M{"n": 5}, "$5.00"},
		{"date", "{d, date}", i18n.M{"d": date}, "01/02/2024"},
		{"time", "{d, time}", i18n.M{"d": date}, "3:04 PM"},
		{"time value without type", "{d}", i18n.M{"d": date}, "01/02/2024 3:04 PM"},
		{"unknown type keyword", "{x, spellout}", i18n.M{"x": "seven"}, "seven"},
		{"quoted braces", "'{name}' is literal", i18n.M{}, "{name} is literal"},
		{"doubled apostrophe", "it''s {x}", i18n.M{"x": "here"}, "it's here"},
		{"literal apostrophe", "I don't {verb}", i18n.M{"verb": "know"}, "I don't know"},
		{
			"select",
			"{g, select, female{She} male{He} other{They}} liked it",
			i18n.M{"g": "female"},
			"She liked it",
		},
		{
			"select falls back to other",
			"{g, select, female{She} male{He} other{They}} liked it",
			i18n.M{"g": "robot"},
			"They liked it",
		},
		{
			"choice",
			"{n, choice, 0#none|1#one|1<many}",
			i18n.M{"n": 1.5},
			"many",
		},
		{
			"nested plural in select",
			"{g, select, female{{n, plural, one{She has # cat} other{She has # cats}}} other{{n, plural, one{They have # cat} other{They have # cats}}}}",
			i18n.M{"g": "female", "n": 2},
			"She has 2 cats",
		},
		{
			"argument inside plural sub-message",
			"{n, plural, one{# message from {who}} other{# messages from {who}}}",
			i18n.M{"n": 3, "who": "Bob"},
			"3 messages from Bob",
		},
		{
			"hash outside plural is text",
			"#{n}",
			i18n.M{"n": 1},
			"#1",
		},
	}

	f := i18n.NewFormatter("en")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mp, err := messagepattern.Parse(tt.pattern)
			require.NoError(t, err)
			got, err := f.Format(mp, tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatter_Plural(t *testing.T) {
	t.Parallel()

	t.Run("english with explicit zero", func(t *testing.T) {
		t.Parallel()
		mp := messagepattern.MustParse("{count, plural, =0{No files} one{# file} other{# files}}")
		f := i18n.NewFormatter("en")

		for n, expected := range map[int]string{0: "No files", 1: "1 file", 5: "5 files", 1234: "1,234 files"} {
			got, err := f.Format(mp, i18n.M{"count": n})
			require.NoError(t, err)
			assert.Equal(t, expected, got)
		}
	})

	t.Run("offset applies to keywords and hash but not explicit values", func(t *testing.T) {
		t.Parallel()
		mp := messagepattern.MustParse("{n, plural, offset:1 =1{only you} one{you and # other} other{you and # others}}")
		f := i18n.NewFormatter("en")

		for n, expected := range map[int]string{1: "only you", 2: "you and 1 other", 3: "you and 2 others"} {
			got, err := f.Format(mp, i18n.M{"n": n})
			require.NoError(t, err)
			assert.Equal(t, expected, got)
		}
	})

	t.Run("polish categories", func(t *testing.T) {
		t.Parallel()
		mp := messagepattern.MustParse("{n, plural, one{# plik} few{# pliki} many{# plików} other{# pliku}}")
		f := i18n.NewFormatter("pl")

		for n, expected := range map[float64]string{1: "1 plik", 3: "3 pliki", 5: "5 plików", 22: "22 pliki", 1.5: "1,5 pliku"} {
			got, err := f.Format(mp, i18n.M{"n": n})
			require.NoError(t, err)
			assert.Equal(t, expected, got)
		}
	})

	t.Run("missing keyword falls back to other", func(t *testing.T) {
		t.Parallel()
		mp := messagepattern.MustParse("{n, plural, other{# things}}")
		got, err := i18n.NewFormatter("en").Format(mp, i18n.M{"n": 1})
		require.NoError(t, err)
		assert.Equal(t, "1 things", got)
	})

	t.Run("selectordinal", func(t *testing.T) {
		t.Parallel()
		mp := messagepattern.MustParse("{n, selectordinal, one{#st} two{#nd} few{#rd} other{#th}}")
		f := i18n.NewFormatter("en")

		for n, expected := range map[int]string{1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 11: "11th", 22: "22nd"} {
			got, err := f.Format(mp, i18n.M{"n": n})
			require.NoError(t, err)
			assert.Equal(t, expected, got)
		}
	})

	t.Run("numeric string argument", func(t *testing.T) {
		t.Parallel()
		mp := messagepattern.MustParse("{n, plural, one{# file} other{# files}}")
		got, err := i18n.NewFormatter("en").Format(mp, i18n.M{"n": "3"})
		require.NoError(t, err)
		assert.Equal(t, "3 files", got)
	})

	t.Run("custom cardinal rule", func(t *testing.T) {
		t.Parallel()
		mp := messagepattern.MustParse("{n, plural, few{few} other{lots}}")
		f := i18n.NewFormatter("en", i18n.WithCardinalRule(func(n float64) string {
			if n < 5 {
				return i18n.PluralFew
			}
			return i18n.PluralOther
		}))
		got, err := f.Format(mp, i18n.M{"n": 2})
		require.NoError(t, err)
		assert.Equal(t, "few", got)
	})

	t.Run("locale format renders hash", func(t *testing.T) {
		t.Parallel()
		mp := messagepattern.MustParse("{n, plural, other{# Dateien}}")
		got, err := i18n.NewFormatter("de").Format(mp, i18n.M{"n": 1234})
		require.NoError(t, err)
		assert.Equal(t, "1.234 Dateien", got)
	})
}

func TestFormatter_Errors(t *testing.T) {
	t.Parallel()

	f := i18n.NewFormatter("en")

	t.Run("missing argument", func(t *testing.T) {
		t.Parallel()
		mp := messagepattern.MustParse("{a} and {b}")
		_, err := f.Format(mp, i18n.M{"a": 1})
		require.ErrorIs(t, err, i18n.ErrMissingArgument)
		require.Contains(t, err.Error(), `"b"`)
	})

	t.Run("missing numbered argument", func(t *testing.T) {
		t.Parallel()
		mp := messagepattern.MustParse("{0} {1}")
		_, err := f.Format(mp, i18n.M{"0": "x"})
		require.ErrorIs(t, err, i18n.ErrMissingArgument)
	})

	t.Run("plural argument is not a number", func(t *testing.T) {
		t.Parallel()
		mp := messagepattern.MustParse("{n, plural, other{#}}")
		_, err := f.Format(mp, i18n.M{"n": "many"})
		require.ErrorIs(t, err, i18n.ErrBadArgument)
	})

	t.Run("choice argument is not a number", func(t *testing.T) {
		t.Parallel()
		mp := messagepattern.MustParse("{n, choice, 0#a|1#b}")
		_, err := f.Format(mp, i18n.M{"n": struct{}{}})
		require.ErrorIs(t, err, i18n.ErrBadArgument)
	})

	t.Run("standalone style given to Format", func(t *testing.T) {
		t.Parallel()
		mp := messagepattern.New()
		require.NoError(t, mp.ParseSelectStyle("a{A} other{B}"))
		_, err := f.Format(mp, nil)
		require.ErrorIs(t, err, i18n.ErrInvalidPattern)
	})

	t.Run("empty pattern instance", func(t *testing.T) {
		t.Parallel()
		_, err := f.Format(messagepattern.New(), nil)
		require.ErrorIs(t, err, i18n.ErrInvalidPattern)
	})
}

func TestFormatter_StandaloneStyles(t *testing.T) {
	t.Parallel()

	f := i18n.NewFormatter("en")

	t.Run("choice", func(t *testing.T) {
		t.Parallel()
		mp := messagepattern.New()
		require.NoError(t, mp.ParseChoiceStyle("0#no files|1#one file|1<{0} files"))

		for n, expected := range map[float64]string{-1: "no files", 0: "no files", 1: "one file", 7: "7 files"} {
			got, err := f.FormatChoice(mp, n, i18n.M{"0": n})
			require.NoError(t, err)
			assert.Equal(t, expected, got)
		}
	})

	t.Run("plural", func(t *testing.T) {
		t.Parallel()
		mp := messagepattern.New()
		require.NoError(t, mp.ParsePluralStyle("offset:1 =0{nobody} one{# guest} other{# guests}"))

		for n, expected := range map[float64]string{0: "nobody", 2: "1 guest", 4: "3 guests"} {
			got, err := f.FormatPlural(mp, n, nil)
			require.NoError(t, err)
			assert.Equal(t, expected, got)
		}
	})

	t.Run("select", func(t *testing.T) {
		t.Parallel()
		mp := messagepattern.New()
		require.NoError(t, mp.ParseSelectStyle("admin{Welcome back, {name}} other{Hello}"))

		got, err := f.FormatSelect(mp, "admin", i18n.M{"name": "Root"})
		require.NoError(t, err)
		assert.Equal(t, "Welcome back, Root", got)

		got, err = f.FormatSelect(mp, "guest", nil)
		require.NoError(t, err)
		assert.Equal(t, "Hello", got)
	})

	t.Run("wrong entry point", func(t *testing.T) {
		t.Parallel()
		mp := messagepattern.MustParse("plain")
		_, err := f.FormatChoice(mp, 1, nil)
		require.ErrorIs(t, err, i18n.ErrInvalidPattern)
		_, err = f.FormatSelect(mp, "x", nil)
		require.ErrorIs(t, err, i18n.ErrInvalidPattern)
	})
}

func TestFormatter_ConcurrentUse(t *testing.T) {
	t.Parallel()

	mp := messagepattern.MustParse("{n, plural, one{# item} other{# items}}").Freeze()
	f := i18n.NewFormatter("en")

	results := make([]string, 64)
	done := make(chan struct{})
	for i := range results {
		go func() {
			defer func() { done <- struct{}{} }()
			results[i], _ = f.Format(mp, i18n.M{"n": i})
		}()
	}
	for range results {
		<-done
	}

	assert.Equal(t, "1 item", results[1])
	assert.True(t, strings.HasSuffix(results[63], " items"))
}
