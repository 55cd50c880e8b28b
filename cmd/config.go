package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zorak1103/hanoi/internal/config"
	"github.com/zorak1103/hanoi/internal/hanoi"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display the effective configuration",
	Long: `Display the effective configuration that hanoi will use at runtime.

This shows the merged configuration from:
  1. Default values
  2. Configuration file (config.yaml)
  3. Environment variables (highest priority)`,
	Example: `  # Show current configuration
  hanoi config

  # Show with custom config file
  hanoi config --config /etc/hanoi/config.yaml`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("%w\n\nTo create a configuration file, run: hanoi init", err)
		}

		displayConfig(cmd, cfg)
		return nil
	},
}

// nolint:gochecknoinits // Standard Cobra pattern for command registration
func init() {
	rootCmd.AddCommand(configCmd)
}

func displayConfig(cmd *cobra.Command, cfg *config.Config) {
	out := cmd.OutOrStdout()

	source := cfg.ConfigFilePath
	if source == "" {
		source = "(defaults/environment)"
	}

	// Write output to stdout; errors writing to stdout are not actionable in CLI context
	_, _ = fmt.Fprintln(out, "=== hanoi Effective Configuration ===")
	_, _ = fmt.Fprintf(out, "Source: %s\n", source)
	_, _ = fmt.Fprintln(out)

	moves, _ := hanoi.MoveCount(cfg.Solver.Disks) // range already validated by config.Load

	_, _ = fmt.Fprintln(out, "🧩 Solver Configuration:")
	_, _ = fmt.Fprintf(out, "   Disks:          %d (%d moves)\n", cfg.Solver.Disks, moves)
	_, _ = fmt.Fprintf(out, "   Iterative:      %v\n", cfg.Solver.Iterative)
	_, _ = fmt.Fprintln(out)

	_, _ = fmt.Fprintln(out, "📍 Peg Labels:")
	_, _ = fmt.Fprintf(out, "   Source:         %s\n", cfg.Pegs.Source)
	_, _ = fmt.Fprintf(out, "   Auxiliary:      %s\n", cfg.Pegs.Auxiliary)
	_, _ = fmt.Fprintf(out, "   Destination:    %s\n", cfg.Pegs.Destination)
	_, _ = fmt.Fprintln(out)

	_, _ = fmt.Fprintln(out, "📝 Output Configuration:")
	_, _ = fmt.Fprintf(out, "   Format:         %s\n", cfg.Output.Format)
}
