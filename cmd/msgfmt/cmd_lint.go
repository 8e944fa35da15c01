package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/msgfmt/pkg/i18n"
	"github.com/dmitrymomot/msgfmt/pkg/messagepattern"
)

func newLintCmd() *cobra.Command {
	var mode string
	var defaultLang string

	cmd := &cobra.Command{
		Use:   "lint <dir>",
		Short: "Check every pattern in a translation directory",
		Long: `Check every pattern in a translation directory.

The directory holds one sub-directory per language with one JSON or YAML
file per namespace, e.g. locales/en/app.yaml. Every invalid pattern is
reported, not just the first one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			apostropheMode, err := messagepattern.ParseApostropheMode(mode)
			if err != nil {
				return err
			}

			fsys := os.DirFS(args[0])
			catalog, err := i18n.New(
				i18n.WithDefaultLanguage(defaultLang),
				i18n.WithApostropheMode(apostropheMode),
				i18n.WithJSONDir(fsys),
				i18n.WithYAMLDir(fsys),
			)
			if err != nil {
				return reportLintErrors(cmd, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d language(s)\n", len(catalog.Languages()))
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "apostrophe mode: DOUBLE_OPTIONAL (default) or DOUBLE_REQUIRED")
	cmd.Flags().StringVar(&defaultLang, "default-lang", i18n.DefaultLang, "default language of the catalog")

	return cmd
}

// reportLintErrors prints each joined error on its own line.
func reportLintErrors(cmd *cobra.Command, err error) error {
	errs := []error{err}
	if joined, ok := unwrapJoined(err); ok {
		errs = joined
	}
	for _, e := range errs {
		fmt.Fprintln(cmd.ErrOrStderr(), e)
	}
	return fmt.Errorf("%d problem(s) found", len(errs))
}

func unwrapJoined(err error) ([]error, bool) {
	for err != nil {
		if j, ok := err.(interface{ Unwrap() []error }); ok {
			return j.Unwrap(), true
		}
		err = errors.Unwrap(err)
	}
	return nil, false
}
