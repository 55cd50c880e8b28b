package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zorak1103/hanoi/internal/config"
	apperrors "github.com/zorak1103/hanoi/internal/errors"
	"github.com/zorak1103/hanoi/internal/hanoi"
	"github.com/zorak1103/hanoi/internal/reporting"
)

// demoPuzzles are the fixed runs printed by the demo command.
var demoPuzzles = []reporting.Puzzle{
	{
		Title: "Towers of Hanoi (3 disks)",
		Disks: 3,
		Pegs:  hanoi.Pegs{Source: "A", Auxiliary: "B", Destination: "C"},
	},
	{
		Title: "Towers of Hanoi (4 disks)",
		Disks: 4,
		Pegs:  hanoi.Pegs{Source: "Source", Auxiliary: "Auxiliary", Destination: "Destination"},
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the reference 3-disk and 4-disk examples",
	Long: `Demo solves two fixed puzzles, one after the other:

  - 3 disks on pegs A, B and C
  - 4 disks on pegs Source, Auxiliary and Destination

Configuration does not affect the puzzles, only the output format.`,
	Example: `  # Print both demo runs
  hanoi demo

  # Print both demo runs as markdown
  hanoi demo --format markdown`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		format := config.FormatText
		if base, err := loadConfig(); err == nil {
			format = base.Output.Format
		}
		if cmd.Flags().Changed("format") {
			format, _ = cmd.Flags().GetString("format")
		}
		if !config.IsValidFormat(format) {
			return &apperrors.InvalidArgumentError{
				Argument: "format",
				Value:    format,
				Err:      fmt.Errorf("must be one of %v", config.Formats),
			}
		}

		out := cmd.OutOrStdout()
		for i, p := range demoPuzzles {
			if i > 0 {
				_, _ = fmt.Fprintln(out)
			}
			if _, err := reporting.Write(out, format, p, hanoi.Solve); err != nil {
				return fmt.Errorf("demo %q failed: %w", p.Title, err)
			}
		}
		return nil
	},
}

// nolint:gochecknoinits // Standard Cobra pattern for command registration
func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().StringP("format", "f", "", "output format: text, markdown, json or yaml (default from config)")
}
