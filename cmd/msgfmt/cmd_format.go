package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/msgfmt/pkg/i18n"
	"github.com/dmitrymomot/msgfmt/pkg/patterncache"
)

func newFormatCmd() *cobra.Command {
	var flags patternFlags
	var lang string
	var argPairs []string
	var argsJSON string
	var value string

	cmd := &cobra.Command{
		Use:   "format <pattern>",
		Short: "Format a pattern with arguments",
		Long: `Format a pattern with arguments.

Arguments are given as --arg name=value (numbers are detected) or as a
JSON object with --args. Standalone choice and plural styles take the
selecting number from --value, select styles take the keyword.`,
		Example: `  msgfmt format '{n, plural, one{# file} other{# files}}' --arg n=3
  msgfmt format --lang pl '{n, plural, one{# plik} few{# pliki} other{# plików}}' --arg n=5
  msgfmt format --style select 'admin{Hi} other{Hello}' --value admin`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern, err := readPattern(cmd, args)
			if err != nil {
				return err
			}
			mp, kind, err := flags.parse(pattern)
			if err != nil {
				return err
			}

			values, err := parseArgs(argsJSON, argPairs)
			if err != nil {
				return err
			}

			f := i18n.NewFormatter(lang)
			var result string
			switch kind {
			case patterncache.KindChoice, patterncache.KindPlural:
				n, err := strconv.ParseFloat(value, 64)
				if err != nil {
					return fmt.Errorf("--value must be a number for %s styles: %w", kind, err)
				}
				if kind == patterncache.KindChoice {
					result, err = f.FormatChoice(mp, n, values)
				} else {
					result, err = f.FormatPlural(mp, n, values)
				}
				if err != nil {
					return err
				}
			case patterncache.KindSelect:
				result, err = f.FormatSelect(mp, value, values)
				if err != nil {
					return err
				}
			default:
				result, err = f.Format(mp, values)
				if err != nil {
					return err
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&lang, "lang", "l", "en", "language for plural rules and number formatting")
	cmd.Flags().StringArrayVarP(&argPairs, "arg", "a", nil, "argument as name=value (repeatable)")
	cmd.Flags().StringVar(&argsJSON, "args", "", "arguments as a JSON object")
	cmd.Flags().StringVar(&value, "value", "", "selector for standalone styles")

	return cmd
}

// parseArgs merges a JSON object with name=value pairs; pairs win.
func parseArgs(argsJSON string, pairs []string) (i18n.M, error) {
	values := i18n.M{}
	if argsJSON != "" {
		if err := json.Unmarshal([]byte(argsJSON), &values); err != nil {
			return nil, fmt.Errorf("--args: %w", err)
		}
	}
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("--arg %q: expected name=value", pair)
		}
		if n, err := strconv.ParseFloat(raw, 64); err == nil {
			values[name] = n
		} else {
			values[name] = raw
		}
	}
	return values, nil
}
