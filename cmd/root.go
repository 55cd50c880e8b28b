// Package cmd implements the CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zorak1103/hanoi/internal/config"
	"github.com/zorak1103/hanoi/internal/version"
)

var (
	cfgFile       string
	verbose       bool
	cfg           *config.Config
	errConfigLoad error
)

var rootCmd = &cobra.Command{
	Use:   "hanoi",
	Short: "Towers of Hanoi solver",
	Long: `hanoi prints the sequence of moves that solves the Towers of Hanoi puzzle.

It features:
  - Recursive divide-and-conquer solver with an explicit-stack alternative
  - Arbitrary peg labels (single letters or whole words)
  - Replay verification against a three-peg board model
  - Text, markdown, JSON and YAML output`,
	Version:      version.GetFullVersion(),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		skipConfig := cmd.Name() == "init" || cmd.Name() == "help" || cmd.Name() == "version"
		if skipConfig {
			return nil
		}

		var err error
		cfg, err = config.Load(cfgFile)
		errConfigLoad = err
		if err != nil {
			// Commands that need configuration fail in loadConfig.
			if verbose {
				fmt.Fprintf(os.Stderr, "Warning: Could not load config: %v\n", err)
			}
			return nil
		}

		if verbose {
			source := cfg.ConfigFilePath
			if source == "" {
				source = "(defaults/environment)"
			}
			fmt.Fprintf(os.Stderr, "Loaded configuration from: %s\n", source)
		}

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// nolint:gochecknoinits // Standard Cobra pattern for command registration
func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// GetConfig returns the loaded configuration or nil if not loaded.
// Must be called after rootCmd.PersistentPreRunE has executed.
func GetConfig() *config.Config {
	return cfg
}

// GetConfigLoadError returns any error encountered during config loading.
// Returns nil if configuration loaded successfully or was not attempted.
func GetConfigLoadError() error {
	return errConfigLoad
}

// IsVerbose returns whether verbose mode is enabled via the -v flag.
func IsVerbose() bool {
	return verbose
}

// loadConfig returns the loaded configuration, or the error that prevented loading it.
func loadConfig() (*config.Config, error) {
	if err := GetConfigLoadError(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if loaded := GetConfig(); loaded != nil {
		return loaded, nil
	}
	return config.Default()
}

// logf writes a diagnostic line to stderr when verbose mode is enabled.
func logf(cmd *cobra.Command, format string, args ...any) {
	if !IsVerbose() {
		return
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
}
