package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zorak1103/hanoi/internal/board"
	"github.com/zorak1103/hanoi/internal/hanoi"
)

// ErrVerificationFailed is returned when a replayed solution does not solve the puzzle.
var ErrVerificationFailed = errors.New("verification failed")

var verifyCmd = &cobra.Command{
	Use:   "verify [disks]",
	Short: "Replay a solution on a three-peg board and check it",
	Long: `Verify solves the puzzle, then replays every move on an explicit model of
the three pegs. The run passes when no move places a larger disk on a smaller
one, every disk ends on the destination peg in order, and exactly 2^n - 1
moves were produced.`,
	Example: `  # Verify the 10-disk solution
  hanoi verify 10

  # Verify the explicit-stack solver with custom labels
  hanoi verify 8 --iterative --from left --via middle --to right`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := loadConfig()
		if err != nil {
			return err
		}

		sc, err := newSolveConfig(cmd, args, base)
		if err != nil {
			return err
		}

		b, err := board.New(sc.disks, sc.pegs)
		if err != nil {
			return err
		}

		expected, err := hanoi.MoveCount(sc.disks)
		if err != nil {
			return err
		}

		if err := sc.solver()(sc.disks, sc.pegs, b.Emitter()); err != nil {
			return fmt.Errorf("%w: %w", ErrVerificationFailed, err)
		}
		produced := uint64(b.MovesApplied())

		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintf(out, "Disks:          %d\n", sc.disks)
		_, _ = fmt.Fprintf(out, "Pegs:           %s -> %s (via %s)\n", sc.pegs.Source, sc.pegs.Destination, sc.pegs.Auxiliary)
		_, _ = fmt.Fprintf(out, "Moves:          %d\n", produced)
		_, _ = fmt.Fprintf(out, "Expected moves: %d\n", expected)

		if produced != expected {
			return fmt.Errorf("%w: produced %d moves, expected %d", ErrVerificationFailed, produced, expected)
		}
		if !b.Solved() {
			return fmt.Errorf("%w: disks are not all on %s", ErrVerificationFailed, sc.pegs.Destination)
		}

		_, _ = fmt.Fprintln(out, "✅ Solution verified")
		return nil
	},
}

// nolint:gochecknoinits // Standard Cobra pattern for command registration
func init() {
	rootCmd.AddCommand(verifyCmd)

	addSolveFlags(verifyCmd)
}
