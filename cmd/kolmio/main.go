// Command kolmio solves the nine-card triangular matching puzzle and prints
// every valid arrangement, one bracketed row of card names per line, in
// discovery order. Diagnostics go to stderr, solutions to stdout.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lvkoski/kolmio/megakolmio"
	"github.com/lvkoski/kolmio/solver"
)

var (
	maxSolutions int
	quiet        bool
	timeout      time.Duration
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kolmio",
		Short: "Solve the nine-card triangular matching puzzle",
		Long: `Exhaustively search all placements, rotations, and replacements of the
nine triangular cards on the nine-slot board, printing every arrangement
in which each pair of touching edges joins a head with a body of the same
animal.

Examples:
  kolmio
  kolmio -n 1
  kolmio --timeout 5s --quiet`,
		Args:          cobra.NoArgs,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().IntVarP(&maxSolutions, "max", "n", 0, "Stop after this many solutions (0 = all)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress diagnostics on stderr")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Abort the search after this duration (0 = none)")

	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
		With().Timestamp().Logger()
	if quiet {
		logger = zerolog.Nop()
	}

	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	logger.Info().Int("cards", megakolmio.Slots).Msg("starting exhaustive search")
	start := time.Now()

	res, err := solver.Solve(megakolmio.Board(), megakolmio.Deck(),
		solver.WithContext(ctx),
		solver.WithMaxSolutions(maxSolutions),
		solver.WithOnSolution(func(sol solver.Solution) error {
			_, werr := fmt.Fprintln(cmd.OutOrStdout(), sol)

			return werr
		}),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			logger.Warn().Dur("elapsed", time.Since(start)).Msg("search timed out")

			return err
		}

		return err
	}

	logger.Info().
		Int("solutions", len(res.Solutions)).
		Int("visited", res.Visited).
		Int("pruned", res.Pruned).
		Dur("elapsed", time.Since(start)).
		Msg("search exhausted")

	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "kolmio:", err)
		os.Exit(1)
	}
}
