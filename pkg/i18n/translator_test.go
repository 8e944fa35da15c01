package i18n_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/msgfmt/pkg/i18n"
)

func TestNewTranslator(t *testing.T) {
	t.Parallel()

	inst := newCatalog(t)

	t.Run("panics with nil i18n", func(t *testing.T) {
		t.Parallel()
		require.Panics(t, func() {
			i18n.NewTranslator(nil, "en", "app", nil)
		})
	})

	t.Run("defaults to i18n default language when empty", func(t *testing.T) {
		t.Parallel()
		tr := i18n.NewTranslator(inst, "", "app", nil)
		require.Equal(t, "en", tr.Language())
		require.Equal(t, "app", tr.Namespace())
	})

	t.Run("defaults to the language's format", func(t *testing.T) {
		t.Parallel()
		tr := i18n.NewTranslator(inst, "de", "app", nil)
		require.Equal(t, "1.234,50 €", tr.FormatCurrency(1234.5))
		require.Equal(t, "Summe: 1.234,5", tr.T("total", i18n.M{"n": 1234.5}))
	})

	t.Run("uses provided format for messages too", func(t *testing.T) {
		t.Parallel()
		format := i18n.FormatFrFR()
		tr := i18n.NewTranslator(inst, "en", "app", format)
		require.Same(t, format, tr.LocaleFormat())
		require.Equal(t, "Total: 1 234,5", tr.T("total", i18n.M{"n": 1234.5}))
	})

	t.Run("keeps the language's plural rules", func(t *testing.T) {
		t.Parallel()
		tr := i18n.NewTranslator(inst, "pl", "app", i18n.FormatEnUS())
		require.Equal(t, "22 pliki", tr.Tn("files", 22))
		require.Equal(t, "5 rzeczy!", tr.Tn("items", 5))
	})

	t.Run("translates keys", func(t *testing.T) {
		t.Parallel()
		tr := i18n.NewTranslator(inst, "en", "app", nil)
		require.Equal(t, "Hello", tr.T("hello"))
		require.Equal(t, "Hello, Ann!", tr.T("greet", i18n.M{"name": "Ann"}))
		require.Equal(t, "Hello, Ann!", tr.TranslateMessage("greet", map[string]any{"name": "Ann"}))
		require.Equal(t, "missing", tr.T("missing"))
	})

	t.Run("Format reports errors", func(t *testing.T) {
		t.Parallel()
		tr := i18n.NewTranslator(inst, "en", "app", nil)
		ctx := context.Background()

		got, err := tr.Format(ctx, "greet", i18n.M{"name": "Ann"})
		require.NoError(t, err)
		require.Equal(t, "Hello, Ann!", got)

		_, err = tr.Format(ctx, "greet", nil)
		require.ErrorIs(t, err, i18n.ErrMissingArgument)

		_, err = tr.Format(ctx, "ghost", nil)
		require.ErrorIs(t, err, i18n.ErrKeyNotFound)
	})
}

func TestTranslatorFormatting(t *testing.T) {
	t.Parallel()

	inst := newCatalog(t)
	date := time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

	t.Run("default English format", func(t *testing.T) {
		t.Parallel()
		tr := i18n.NewTranslator(inst, "en", "app", nil)

		require.Equal(t, "1,234.5", tr.FormatNumber(1234.5))
		require.Equal(t, "$1,234.50", tr.FormatCurrency(1234.5))
		require.Equal(t, "50%", tr.FormatPercent(0.5))
		require.Equal(t, "03/15/2024", tr.FormatDate(date))
		require.Equal(t, "2:30 PM", tr.FormatTime(date))
		require.Equal(t, "03/15/2024 2:30 PM", tr.FormatDateTime(date))
	})

	t.Run("custom format", func(t *testing.T) {
		t.Parallel()
		tr := i18n.NewTranslator(inst, "en", "app", i18n.NewLocaleFormat(
			i18n.WithDecimalSeparator(","),
			i18n.WithThousandSeparator("."),
			i18n.WithCurrencySymbol("€"),
			i18n.WithCurrencyPosition("after"),
			i18n.WithPercentSymbol(" %"),
			i18n.WithDateFormat("02.01.2006"),
			i18n.WithTimeFormat("15:04"),
			i18n.WithDateTimeFormat("02.01.2006 15:04"),
		))

		require.Equal(t, "1.234,5", tr.FormatNumber(1234.5))
		require.Equal(t, "1.234,50 €", tr.FormatCurrency(1234.5))
		require.Equal(t, "50 %", tr.FormatPercent(0.5))
		require.Equal(t, "15.03.2024", tr.FormatDate(date))
		require.Equal(t, "14:30", tr.FormatTime(date))
		require.Equal(t, "15.03.2024 14:30", tr.FormatDateTime(date))
	})
}
