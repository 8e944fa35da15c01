package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/msgfmt/pkg/messagepattern"
	"github.com/dmitrymomot/msgfmt/pkg/patterncache"
)

// patternFlags are shared by the commands that parse a single pattern.
type patternFlags struct {
	style string
	mode  string
}

func (f *patternFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.style, "style", "message", "pattern style: message, choice, plural or select")
	cmd.Flags().StringVar(&f.mode, "mode", "", "apostrophe mode: DOUBLE_OPTIONAL (default) or DOUBLE_REQUIRED")
}

func (f *patternFlags) parse(pattern string) (*messagepattern.MessagePattern, patterncache.Kind, error) {
	kind, err := patterncache.ParseKind(f.style)
	if err != nil {
		return nil, kind, err
	}
	mode, err := messagepattern.ParseApostropheMode(f.mode)
	if err != nil {
		return nil, kind, err
	}
	mp, err := kind.Parse(pattern, messagepattern.WithApostropheMode(mode))
	if err != nil {
		return nil, kind, describeParseError(pattern, err)
	}
	return mp, kind, nil
}

// readPattern returns the first argument, or stdin without its trailing
// newline when no argument is given.
func readPattern(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimSuffix(strings.TrimSuffix(string(data), "\n"), "\r"), nil
}

// describeParseError adds a caret line under the failing offset.
func describeParseError(pattern string, err error) error {
	var perr *messagepattern.ParseError
	if !errors.As(err, &perr) || strings.ContainsAny(pattern, "\n\r") {
		return err
	}
	return fmt.Errorf("%w\n  %s\n  %s^", err, pattern, strings.Repeat(" ", caretColumn(pattern, perr.Offset)))
}

// caretColumn converts a byte offset to a rune column.
func caretColumn(pattern string, offset int) int {
	if offset > len(pattern) {
		offset = len(pattern)
	}
	return len([]rune(pattern[:offset]))
}
