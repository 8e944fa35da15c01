package i18n_test

import (
	"embed"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/msgfmt/pkg/i18n"
)

//go:embed testdata
var testdataFS embed.FS

func testdata(t *testing.T) fs.FS {
	t.Helper()
	subFS, err := fs.Sub(testdataFS, "testdata")
	require.NoError(t, err)
	return subFS
}

func TestWithJSONDir(t *testing.T) {
	t.Parallel()

	inst, err := i18n.New(
		i18n.WithDefaultLanguage("en"),
		i18n.WithJSONDir(testdata(t)),
	)
	require.NoError(t, err)

	t.Run("loads messages", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Hello", inst.T("en", "common", "hello"))
		require.Equal(t, "Welcome, Alice!", inst.T("en", "common", "welcome", i18n.M{"name": "Alice"}))
		require.Equal(t, "Save", inst.T("en", "common", "buttons.save"))
		require.Equal(t, "Cancel", inst.T("en", "common", "buttons.cancel"))
	})

	t.Run("loads multiple namespaces", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Resource not found", inst.T("en", "errors", "not_found"))
		require.Equal(t, "Field email is required", inst.T("en", "errors", "validation.required", i18n.M{"field": "email"}))
		require.Equal(t, "Password must be at least 1,000 characters",
			inst.T("en", "errors", "validation.min", i18n.M{"field": "Password", "min": 1000}))
	})

	t.Run("loads multiple languages", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Hallo", inst.T("de", "common", "hello"))
		require.Equal(t, "Willkommen, Hans!", inst.T("de", "common", "welcome", i18n.M{"name": "Hans"}))
		require.Equal(t, "Cancel", inst.T("de", "common", "buttons.cancel"))
	})

	t.Run("plural messages", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Your cart is empty", inst.Tn("en", "common", "cart", 0))
		require.Equal(t, "1 item in your cart", inst.Tn("en", "common", "cart", 1))
		require.Equal(t, "1.500 Artikel im Warenkorb", inst.Tn("de", "common", "cart", 1500))
	})

	t.Run("ignores YAML files", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "quote", inst.T("fr", "common", "quote"))
	})
}

func TestWithYAMLDir(t *testing.T) {
	t.Parallel()

	inst, err := i18n.New(
		i18n.WithDefaultLanguage("fr"),
		i18n.WithYAMLDir(testdata(t)),
	)
	require.NoError(t, err)

	require.Equal(t, "Bonjour", inst.T("fr", "common", "hello"))
	require.Equal(t, "Bienvenue, Marie!", inst.T("fr", "common", "welcome", i18n.M{"name": "Marie"}))
	require.Equal(t, "Enregistrer", inst.T("fr", "common", "buttons.save"))
	require.Equal(t, "C'est Marie", inst.T("fr", "common", "quote", i18n.M{"name": "Marie"}))

	t.Run("yml extension and multi-line patterns", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Cześć", inst.T("pl", "common", "hello"))
		require.Equal(t, "3 produkty w koszyku", inst.Tn("pl", "common", "cart", 3))
		require.Equal(t, "5 produktów w koszyku", inst.Tn("pl", "common", "cart", 5))
	})
}

func TestWithJSONDirAndYAMLDir(t *testing.T) {
	t.Parallel()

	inst, err := i18n.New(
		i18n.WithDefaultLanguage("en"),
		i18n.WithJSONDir(testdata(t)),
		i18n.WithYAMLDir(testdata(t)),
		i18n.WithTranslations("en", "extra", map[string]any{"test": "Test value"}),
	)
	require.NoError(t, err)

	require.Equal(t, "Hello", inst.T("en", "common", "hello"))
	require.Equal(t, "Hallo", inst.T("de", "common", "hello"))
	require.Equal(t, "Bonjour", inst.T("fr", "common", "hello"))
	require.Equal(t, "Test value", inst.T("en", "extra", "test"))
	require.Equal(t, []string{"en", "de", "fr", "pl"}, inst.Languages())
}

func TestLoaderErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fsys fstest.MapFS
		opt  func(fs.FS) i18n.Option
		err  error
	}{
		{
			name: "file outside a language directory",
			fsys: fstest.MapFS{"common.json": {Data: []byte(`{"a":"b"}`)}},
			opt:  i18n.WithJSONDir,
			err:  i18n.ErrInvalidFile,
		},
		{
			name: "malformed JSON",
			fsys: fstest.MapFS{"en/common.json": {Data: []byte(`{"a":`)}},
			opt:  i18n.WithJSONDir,
			err:  i18n.ErrInvalidFile,
		},
		{
			name: "malformed YAML",
			fsys: fstest.MapFS{"en/common.yaml": {Data: []byte("a: [b")}},
			opt:  i18n.WithYAMLDir,
			err:  i18n.ErrInvalidFile,
		},
		{
			name: "invalid message pattern",
			fsys: fstest.MapFS{"en/common.yaml": {Data: []byte(`broken: "{count, plural, one{x}}"`)}},
			opt:  i18n.WithYAMLDir,
			err:  i18n.ErrInvalidPattern,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := i18n.New(tt.opt(tt.fsys))
			require.ErrorIs(t, err, tt.err)
		})
	}
}
