package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/msgfmt/internal/api"
)

func newParseCmd() *cobra.Command {
	var flags patternFlags
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse [pattern]",
		Short: "Parse a pattern and dump its parts",
		Long: `Parse a pattern and dump its parts.

If no pattern is given, it is read from stdin.
Use --style to parse a standalone choice, plural or select style.`,
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

			resp := api.NewParseResponse(mp, kind)
			out := cmd.OutOrStdout()

			switch outputFormat {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(resp); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
			case "text":
				for i, p := range resp.Parts {
					line := fmt.Sprintf("%3d %-13s %4d +%-3d value=%d", i, p.Kind, p.Index, p.Length, p.Value)
					if p.ArgType != "" {
						line += " type=" + p.ArgType
					}
					if p.NumericValue != "" {
						line += " number=" + p.NumericValue
					}
					if p.Substring != "" {
						line += fmt.Sprintf(" %q", p.Substring)
					}
					fmt.Fprintln(out, line)
				}
				fmt.Fprintf(out, "named=%t numbered=%t autoquote=%t\n",
					resp.HasNamedArguments, resp.HasNumberedArguments, resp.NeedsAutoQuoting)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format: text or json")

	return cmd
}
