// Command msgfmt parses, checks and formats ICU MessageFormat patterns and
// serves the same operations over HTTP.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "msgfmt",
		Short:         "Parse, check and format ICU MessageFormat patterns",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newAutoQuoteCmd())
	rootCmd.AddCommand(newValidateNameCmd())
	rootCmd.AddCommand(newFormatCmd())
	rootCmd.AddCommand(newLintCmd())
	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}
