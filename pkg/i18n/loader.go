package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// WithJSONDir returns an Option that loads message patterns from JSON files in an fs.FS.
// The fs.FS root must contain language directories directly.
// File convention: {lang}/{namespace}.json
//
// Example structure:
//
//	en/common.json
//	en/errors.json
//	de/common.json
func WithJSONDir(fsys fs.FS) Option {
	return func(i *I18n) error {
		return loadDir(i, fsys, []string{".json"}, func(data []byte, v any) error {
			return json.Unmarshal(data, v)
		})
	}
}

// WithYAMLDir returns an Option that loads message patterns from YAML files in an fs.FS.
// Block scalars keep multi-line plural and select patterns readable.
// The fs.FS root must contain language directories directly.
// File convention: {lang}/{namespace}.yaml or {lang}/{namespace}.yml
//
// Example structure:
//
//	en/common.yaml
//	fr/common.yml
func WithYAMLDir(fsys fs.FS) Option {
	return func(i *I18n) error {
		return loadDir(i, fsys, []string{".yaml", ".yml"}, func(data []byte, v any) error {
			return yaml.Unmarshal(data, v)
		})
	}
}

// loadDir reads every {lang}/{namespace}{ext} file below the root.
// Nested directories are allowed; the language is the file's parent directory.
func loadDir(i *I18n, fsys fs.FS, exts []string, unmarshal func([]byte, any) error) error {
	return fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !slices.Contains(exts, strings.ToLower(path.Ext(filePath))) {
			return nil
		}

		dir := path.Dir(filePath)
		if dir == "." || dir == "" {
			return fmt.Errorf("%w: file %q must be inside a language directory", ErrInvalidFile, filePath)
		}

		lang := path.Base(dir)
		namespace := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}

		var translations map[string]any
		if err := unmarshal(data, &translations); err != nil {
			return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, filePath, err)
		}

		i.addTranslations(lang, namespace, translations)

		return nil
	})
}
