// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"log/slog"
	"math/big"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sl2word/bigcplx"
	"github.com/katalvlaran/sl2word/rep"
	"github.com/katalvlaran/sl2word/word"
)

// defaultSeed reproduces the same random draws across runs unless the
// caller overrides --seed.
const defaultSeed int64 = 2

// eigenEps is the fixed residual tolerance for the eigenvector sanity
// check on the printed eigenpair.
const eigenEps = "1e-6"

// EvalOptions holds flags for the eval command.
type EvalOptions struct {
	*RootOptions
	Precision  uint
	Z          []string
	RandomZ    bool
	Word       string
	Rational   []uint
	RandomWord int
	Seed       int64
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate a word to a matrix, trace, and dominant eigenpair",
		Long: `Evaluate a word under the standard representation at parameter z.

The word comes from exactly one source: --word (literal), --rational p,q
(Stern-Brocot derivation), or --random-word N (uniform letters). z comes
from --z re,im or --random-z. Output is the 2x2 result matrix (one row
per line), its trace, and the dominant eigenvalue and eigenvector.

Examples:
  sl2word eval -p 100 --z 1,2 --word aBabb
  sl2word eval -p 100 --z 1,2 --rational 3,2
  sl2word eval -p 256 --random-z --random-word 20 --seed 7`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(opts, cmd)
		},
	}

	cmd.Flags().UintVarP(&opts.Precision, "precision", "p", 0, "bits of floating-point precision (required)")
	cmd.Flags().StringSliceVarP(&opts.Z, "z", "z", nil, "z as re,im (decimal strings, parsed at full precision)")
	cmd.Flags().BoolVar(&opts.RandomZ, "random-z", false, "draw z uniformly from [0,1)+[0,1)i")
	cmd.Flags().StringVar(&opts.Word, "word", "", "literal word over {a,b,A,B}")
	cmd.Flags().UintSliceVarP(&opts.Rational, "rational", "r", nil, "rational p,q to derive the word from")
	cmd.Flags().IntVar(&opts.RandomWord, "random-word", 0, "length of a uniform random word")
	cmd.Flags().Int64Var(&opts.Seed, "seed", defaultSeed, "seed for random z and random words")

	return cmd
}

func runEval(opts *EvalOptions, cmd *cobra.Command) error {
	if opts.Config != "" {
		cfg, err := LoadConfig(opts.Config)
		if err != nil {
			return WrapExitError(ExitCommandError, "config", err)
		}
		applyConfig(opts, cfg, cmd)
	}

	if opts.Precision == 0 {
		return NewExitError(ExitCommandError, "a positive --precision is required")
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	slog.Debug("run parameters", "precision", opts.Precision, "seed", opts.Seed)

	z, err := resolveZ(opts, rng)
	if err != nil {
		return err
	}

	w, err := resolveWord(opts, cmd, rng)
	if err != nil {
		return err
	}
	slog.Debug("word resolved", "word", w.String(), "length", len(w))

	m, tr, err := rep.EvaluateWord(w, rep.Standard{}, z)
	if err != nil {
		return WrapExitError(ExitFailure, "evaluation", err)
	}

	digits := bigcplx.Digits(opts.Precision)
	fmt.Fprintln(cmd.OutOrStdout(), m.Format(digits))
	fmt.Fprintf(cmd.OutOrStdout(), "trace = %s\n", tr.Format(digits))

	lambda, vx, vy := m.Dominant()
	eps, _, _ := big.ParseFloat(eigenEps, 10, opts.Precision, big.ToNearestEven)
	if !m.IsEigenvector(vx, vy, eps) {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning: output is not very close to an eigenvector, increase precision")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "dominant_eigenvalue = %s\n", lambda.Format(digits))
	fmt.Fprintf(cmd.OutOrStdout(), "dominant_eigenvector = %s %s\n", vx.Format(digits), vy.Format(digits))

	return nil
}

// applyConfig fills options the user did not set on the command line
// from the YAML file. Explicit flags always win.
func applyConfig(opts *EvalOptions, cfg *RunConfig, cmd *cobra.Command) {
	flags := cmd.Flags()

	if !flags.Changed("precision") && cfg.Precision > 0 {
		opts.Precision = cfg.Precision
	}
	if !flags.Changed("z") && !flags.Changed("random-z") {
		if cfg.Z.Random {
			opts.RandomZ = true
		} else if cfg.Z.Re != "" || cfg.Z.Im != "" {
			opts.Z = []string{cfg.Z.Re, cfg.Z.Im}
		}
	}
	if !flags.Changed("word") && cfg.Word != "" {
		opts.Word = cfg.Word
	}
	if !flags.Changed("rational") && cfg.Rational.P != 0 {
		opts.Rational = []uint{uint(cfg.Rational.P), uint(cfg.Rational.Q)}
	}
	if !flags.Changed("random-word") && cfg.RandomWord > 0 {
		opts.RandomWord = cfg.RandomWord
	}
	if !flags.Changed("seed") && cfg.Seed != 0 {
		opts.Seed = cfg.Seed
	}
}

// resolveZ produces the representation parameter from --z or --random-z.
func resolveZ(opts *EvalOptions, rng *rand.Rand) (*bigcplx.Complex, error) {
	switch {
	case opts.RandomZ:
		z := bigcplx.FromFloat64(rng.Float64(), rng.Float64(), opts.Precision)
		slog.Debug("random z drawn", "z", z.String())

		return z, nil
	case len(opts.Z) == 2:
		z, err := bigcplx.Parse(opts.Z[0], opts.Z[1], opts.Precision)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "parse z", err)
		}

		return z, nil
	case len(opts.Z) != 0:
		return nil, NewExitError(ExitCommandError, "--z needs exactly two values: re,im")
	default:
		return nil, NewExitError(ExitCommandError, "one of --z, --random-z must be provided")
	}
}

// resolveWord produces the word from exactly one of the three sources.
// The literal source counts as selected whenever --word was set, even to
// the empty string: the empty word is valid and evaluates to the
// identity matrix.
func resolveWord(opts *EvalOptions, cmd *cobra.Command, rng *rand.Rand) (word.Word, error) {
	literal := cmd.Flags().Changed("word") || opts.Word != ""

	sources := 0
	if literal {
		sources++
	}
	if len(opts.Rational) != 0 {
		sources++
	}
	if opts.RandomWord > 0 {
		sources++
	}
	if sources != 1 {
		return nil, NewExitError(ExitCommandError,
			"exactly one of --word, --rational, --random-word must be provided")
	}

	switch {
	case literal:
		w, err := word.Parse(opts.Word)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "parse word", err)
		}

		return w, nil
	case len(opts.Rational) != 0:
		if len(opts.Rational) != 2 {
			return nil, NewExitError(ExitCommandError, "--rational needs exactly two values: p,q")
		}
		w, err := word.Derive(uint64(opts.Rational[0]), uint64(opts.Rational[1]))
		if err != nil {
			return nil, WrapExitError(ExitCommandError,
				fmt.Sprintf("derive %d/%d", opts.Rational[0], opts.Rational[1]), err)
		}

		return w, nil
	default:
		return word.Random(opts.RandomWord, rng), nil
	}
}
