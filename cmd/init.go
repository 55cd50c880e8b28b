package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zorak1103/hanoi/internal/templates"
)

var (
	force bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample configuration",
	Long: `Init writes sample configuration files to the current directory.

This command will create:
  - config.yaml (sample configuration file)
  - .env (environment variable template)

Existing files are left untouched unless --force is given.`,
	Example: `  # Initialize in current directory
  hanoi init

  # Force overwrite existing files
  hanoi init --force`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintln(out, "🔧 Initializing hanoi...")

		files := []struct {
			name    string
			content []byte
		}{
			{"config.yaml", templates.ConfigYAML},
			{".env", templates.EnvFile},
		}

		for _, f := range files {
			if _, err := os.Stat(f.name); err == nil && !force {
				_, _ = fmt.Fprintf(out, "⚠️  Skipping %s (already exists, use --force to overwrite)\n", f.name)
				continue
			}

			if err := os.WriteFile(f.name, f.content, 0o600); err != nil {
				return fmt.Errorf("failed to write %s: %w", f.name, err)
			}

			_, _ = fmt.Fprintf(out, "✅ Created %s\n", f.name)
		}

		_, _ = fmt.Fprintln(out, "\n🎉 Initialization complete!")
		_, _ = fmt.Fprintln(out, "\n📝 Next steps:")
		_, _ = fmt.Fprintln(out, "   1. Edit config.yaml to change the default disks and peg labels")
		_, _ = fmt.Fprintln(out, "   2. Run 'hanoi config' to check the effective configuration")
		_, _ = fmt.Fprintln(out, "   3. Run 'hanoi solve' to print the moves")

		return nil
	},
}

// nolint:gochecknoinits // Standard Cobra pattern for command registration
func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration files")
}
