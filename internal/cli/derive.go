// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sl2word/word"
)

// NewDeriveCommand creates the derive command.
func NewDeriveCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "derive <p> <q>",
		Short: "Print the canonical Stern-Brocot word of a rational p/q",
		Long: `Derive the canonical word of a rational p/q by descending the
Stern-Brocot tree to its node. The word has exactly p 'b's and q 'a's;
(p, q) must be coprime positive integers.

Example:
  sl2word derive 3 2`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDerive(args, cmd)
		},
	}

	return cmd
}

func runDerive(args []string, cmd *cobra.Command) error {
	p, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("numerator %q", args[0]), err)
	}
	q, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("denominator %q", args[1]), err)
	}

	w, err := word.Derive(p, q)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("derive %d/%d", p, q), err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), w.String())

	return nil
}
