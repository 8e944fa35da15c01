package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errNeedsAutoQuoting = errors.New("pattern needs auto-quoting")

func newAutoQuoteCmd() *cobra.Command {
	var flags patternFlags
	var check bool

	cmd := &cobra.Command{
		Use:   "autoquote [pattern]",
		Short: "Print the pattern with every literal apostrophe explicitly quoted",
		Long: `Print the pattern with every literal and dangling apostrophe quoted,
so that it means the same in DOUBLE_REQUIRED mode.

Use --check to exit non-zero instead when the pattern would change.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern, err := readPattern(cmd, args)
			if err != nil {
				return err
			}
			mp, _, err := flags.parse(pattern)
			if err != nil {
				return err
			}

			if check {
				if mp.NeedsAutoQuoting() {
					return errNeedsAutoQuoting
				}
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), mp.AutoQuoteApostropheDeep())
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&check, "check", false, "fail when the pattern needs auto-quoting")

	return cmd
}
