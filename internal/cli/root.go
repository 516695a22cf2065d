// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by all subcommands.
type RootOptions struct {
	Verbose bool
	Config  string
}

// NewRootCommand creates the sl2word root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "sl2word",
		Short: "Evaluate free-group words under SL(2,C) representations",
		Long: `sl2word evaluates words over {a, b, A, B} — elements of the free group
on two generators with formal inverses — under a 2x2 complex-matrix
representation parametrized by a complex value z, at an arbitrary bit
precision. Words can be given literally, derived from a rational p/q by
Stern-Brocot tree descent, or drawn uniformly at random.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if opts.Verbose {
				level = slog.LevelDebug
			}
			handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(handler))
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose diagnostics on stderr")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "YAML run-configuration file")

	cmd.AddCommand(NewEvalCommand(opts))
	cmd.AddCommand(NewDeriveCommand(opts))

	return cmd
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)

		return GetExitCode(err)
	}

	return ExitSuccess
}
