package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/msgfmt/pkg/messagepattern"
)

func newValidateNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate-name <name>...",
		Short: "Check argument names and numbers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			invalid := 0
			for _, name := range args {
				switch n := messagepattern.ValidateArgumentName(name); {
				case n >= 0:
					fmt.Fprintf(out, "%s\tnumber %d\n", name, n)
				case n == messagepattern.ArgNameNotNumber:
					fmt.Fprintf(out, "%s\tname\n", name)
				default:
					fmt.Fprintf(out, "%s\tinvalid\n", name)
					invalid++
				}
			}
			if invalid > 0 {
				return fmt.Errorf("%d invalid argument name(s)", invalid)
			}
			return nil
		},
	}
}
