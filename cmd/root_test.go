package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/zorak1103/hanoi/internal/config"
)

func TestRootCmd_Structure(t *testing.T) {
	t.Parallel()

	cmd := rootCmd

	if cmd.Use != "hanoi" {
		t.Errorf("Expected command use 'hanoi', got '%s'", cmd.Use)
	}

	if cmd.Short == "" {
		t.Error("Expected command short description to be set")
	}

	if cmd.Long == "" {
		t.Error("Expected command long description to be set")
	}

	if cmd.Version == "" {
		t.Error("Expected command version to be set")
	}
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	t.Parallel()

	flags := rootCmd.PersistentFlags()

	configFlag := flags.Lookup("config")
	if configFlag == nil {
		t.Error("Expected 'config' flag to be defined")
	} else if configFlag.DefValue != "" {
		t.Errorf("Expected 'config' flag default to be empty, got '%s'", configFlag.DefValue)
	}

	verboseFlag := flags.Lookup("verbose")
	if verboseFlag == nil {
		t.Fatal("Expected 'verbose' flag to be defined")
	}

	if verboseFlag.DefValue != "false" {
		t.Errorf("Expected 'verbose' flag default to be 'false', got '%s'", verboseFlag.DefValue)
	}

	if verboseFlag.Shorthand != "v" {
		t.Errorf("Expected 'verbose' flag shorthand to be 'v', got '%s'", verboseFlag.Shorthand)
	}
}

func TestRootCmd_HelpOutput(t *testing.T) {
	output, err := executeCommand(t, "--help")
	if err != nil {
		t.Errorf("Expected no error executing help command, got: %v", err)
	}

	expectedStrings := []string{
		"Towers of Hanoi",
		"solve",
		"verify",
		"demo",
		"--config",
		"--verbose",
	}

	for _, expected := range expectedStrings {
		if !containsString(output, expected) {
			t.Errorf("Expected help output to contain %q, got:\n%s", expected, output)
		}
	}
}

func TestRootCmd_VersionOutput(t *testing.T) {
	output, err := executeCommand(t, "--version")
	if err != nil {
		t.Errorf("Expected no error executing version command, got: %v", err)
	}

	if !containsString(output, "hanoi") {
		t.Errorf("Expected version output to contain 'hanoi', got:\n%s", output)
	}
}

func TestRootCmd_SubcommandsList(t *testing.T) {
	t.Parallel()

	expectedSubcommands := []string{"init", "solve", "demo", "verify", "config"}
	foundSubcommands := make(map[string]bool)

	for _, subcmd := range rootCmd.Commands() {
		foundSubcommands[subcmd.Name()] = true
	}

	for _, expected := range expectedSubcommands {
		if !foundSubcommands[expected] {
			t.Errorf("Expected subcommand '%s' to be registered", expected)
		}
	}
}

func TestGetConfig(t *testing.T) {
	originalCfg := cfg
	defer func() { cfg = originalCfg }()

	cfg = nil
	if result := GetConfig(); result != nil {
		t.Error("Expected GetConfig() to return nil when cfg is nil")
	}

	testConfig := &config.Config{Solver: config.SolverConfig{Disks: 7}}
	cfg = testConfig

	result := GetConfig()
	if result != testConfig {
		t.Error("Expected GetConfig() to return the set config")
	}
}

func TestIsVerbose(t *testing.T) {
	originalVerbose := verbose
	defer func() { verbose = originalVerbose }()

	verbose = false
	if IsVerbose() {
		t.Error("Expected IsVerbose() to return false")
	}

	verbose = true
	if !IsVerbose() {
		t.Error("Expected IsVerbose() to return true")
	}
}

func TestRootCmd_PersistentPreRunE_SkipConfigForInit(t *testing.T) {
	originalCfg := cfg
	defer func() { cfg = originalCfg }()
	cfg = nil

	err := rootCmd.PersistentPreRunE(&cobra.Command{Use: "init"}, []string{})
	if err != nil {
		t.Errorf("Expected no error for init command, got: %v", err)
	}
	if cfg != nil {
		t.Error("Expected init to skip configuration loading")
	}
}

func TestRootCmd_PersistentPreRunE_StoresLoadError(t *testing.T) {
	originalCfg := cfg
	originalErr := errConfigLoad
	originalCfgFile := cfgFile
	defer func() {
		cfg = originalCfg
		errConfigLoad = originalErr
		cfgFile = originalCfgFile
	}()

	cfgFile = "nonexistent.yaml"

	err := rootCmd.PersistentPreRunE(&cobra.Command{Use: "solve"}, []string{})
	if err != nil {
		t.Errorf("Expected no error with missing config, got: %v", err)
	}
	if GetConfigLoadError() == nil {
		t.Error("Expected explicit missing config file to be recorded as a load error")
	}

	if _, err := loadConfig(); err == nil {
		t.Error("Expected loadConfig to surface the stored error")
	}
}

func TestLoadConfig_DefaultsWhenNotLoaded(t *testing.T) {
	originalCfg := cfg
	originalErr := errConfigLoad
	defer func() {
		cfg = originalCfg
		errConfigLoad = originalErr
	}()

	cfg = nil
	errConfigLoad = nil

	got, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if got.Solver.Disks != 3 {
		t.Errorf("Expected default disks 3, got %d", got.Solver.Disks)
	}
}

func TestLogf_RespectsVerbose(t *testing.T) {
	originalVerbose := verbose
	defer func() { verbose = originalVerbose }()

	var buf bytes.Buffer
	c := &cobra.Command{Use: "solve"}
	c.SetErr(&buf)

	verbose = false
	logf(c, "Solving %d disk(s)", 3)
	if buf.Len() != 0 {
		t.Errorf("Expected no output without verbose, got %q", buf.String())
	}

	verbose = true
	logf(c, "Solving %d disk(s)", 3)
	if buf.String() != "Solving 3 disk(s)\n" {
		t.Errorf("Expected verbose line, got %q", buf.String())
	}
}

func TestLoadConfig_UsesLoadedConfig(t *testing.T) {
	originalCfg := cfg
	originalErr := errConfigLoad
	defer func() {
		cfg = originalCfg
		errConfigLoad = originalErr
	}()

	loaded := &config.Config{Solver: config.SolverConfig{Disks: 5}}
	cfg = loaded
	errConfigLoad = nil

	got, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if got != loaded {
		t.Error("Expected loadConfig to return the configuration loaded by the root command")
	}
}
