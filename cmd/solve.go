package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zorak1103/hanoi/internal/reporting"
)

var solveCmd = &cobra.Command{
	Use:   "solve [disks]",
	Short: "Print the moves that solve the puzzle",
	Long: `Solve prints, in order, every move needed to transfer a stack of disks from
the source peg to the destination peg. Only one disk moves at a time and a
larger disk never rests on a smaller one.

The disk count defaults to solver.disks from the configuration. A count of 0
prints nothing; negative counts are rejected. Peg labels can be any distinct,
non-empty strings.`,
	Example: `  # Solve three disks on pegs A, B and C
  hanoi solve 3

  # Use descriptive peg names
  hanoi solve 4 --from Source --via Auxiliary --to Destination

  # Emit the moves as JSON
  hanoi solve 5 --format json`,
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
		if err := reporting.CheckDisks(sc.format, sc.disks); err != nil {
			return err
		}

		logf(cmd, "Solving %d disk(s) from %s to %s via %s (format: %s, iterative: %t)",
			sc.disks, sc.pegs.Source, sc.pegs.Destination, sc.pegs.Auxiliary, sc.format, sc.iterative)

		count, err := reporting.Write(cmd.OutOrStdout(), sc.format, reporting.Puzzle{
			Disks: sc.disks,
			Pegs:  sc.pegs,
		}, sc.solver())
		if err != nil {
			return fmt.Errorf("failed to solve: %w", err)
		}

		logf(cmd, "Wrote %d move(s)", count)
		return nil
	},
}

// nolint:gochecknoinits // Standard Cobra pattern for command registration
func init() {
	rootCmd.AddCommand(solveCmd)

	addSolveFlags(solveCmd)
	solveCmd.Flags().StringP("format", "f", "", "output format: text, markdown, json or yaml (default from config)")
}
