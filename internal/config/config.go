// Package config handles configuration loading and validation.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	apperrors "github.com/zorak1103/hanoi/internal/errors"
	"github.com/zorak1103/hanoi/internal/hanoi"
)

// Common errors
var (
	Err = errors.New("config error")
)

// Supported output formats
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
)

// Formats lists every accepted value of output.format.
var Formats = []string{FormatText, FormatMarkdown, FormatJSON, FormatYAML}

// Config represents the application configuration
type Config struct {
	Solver SolverConfig `mapstructure:"solver"`
	Pegs   PegsConfig   `mapstructure:"pegs"`
	Output OutputConfig `mapstructure:"output"`

	// ConfigFilePath stores the path to the loaded config file (not marshaled from YAML)
	ConfigFilePath string `mapstructure:"-"`
}

// SolverConfig contains solver settings
type SolverConfig struct {
	Disks     int  `mapstructure:"disks"`
	Iterative bool `mapstructure:"iterative"`
}

// PegsConfig contains the default peg labels
type PegsConfig struct {
	Source      string `mapstructure:"source"`
	Auxiliary   string `mapstructure:"auxiliary"`
	Destination string `mapstructure:"destination"`
}

// OutputConfig contains output rendering settings
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// PegLabels converts the configured labels into solver pegs.
func (c *Config) PegLabels() hanoi.Pegs {
	return hanoi.Pegs{
		Source:      hanoi.Peg(c.Pegs.Source),
		Auxiliary:   hanoi.Peg(c.Pegs.Auxiliary),
		Destination: hanoi.Peg(c.Pegs.Destination),
	}
}

// Default returns the configuration used when no file or environment overrides exist.
func Default() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &apperrors.ConfigurationError{
			ConfigPath: configSource(""),
			Err:        fmt.Errorf("%w: unmarshaling defaults: %w", Err, err),
		}
	}
	return &cfg, nil
}

// Load reads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load() // nolint:errcheck // .env file is optional

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/hanoi")
		v.AddConfigPath("/etc/hanoi")
	}

	setDefaults(v)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			configFile := v.ConfigFileUsed()
			if configFile == "" {
				configFile = configPath
			}
			return nil, &apperrors.ConfigurationError{
				ConfigPath: configFile,
				Err:        fmt.Errorf("%w: reading file: %w", Err, err),
			}
		}
		// Config file not found; using defaults and env vars
	}

	v.SetEnvPrefix("HANOI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &apperrors.ConfigurationError{
			ConfigPath: configSource(v.ConfigFileUsed()),
			Err:        fmt.Errorf("%w: unmarshaling: %w", Err, err),
		}
	}

	cfg.ConfigFilePath = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func configSource(path string) string {
	if path == "" {
		return "(defaults/environment)"
	}
	return path
}

func setDefaults(v *viper.Viper) {
	// Solver defaults
	v.SetDefault("solver.disks", 3)
	v.SetDefault("solver.iterative", false)

	// Peg defaults
	v.SetDefault("pegs.source", "A")
	v.SetDefault("pegs.auxiliary", "B")
	v.SetDefault("pegs.destination", "C")

	// Output defaults
	v.SetDefault("output.format", FormatText)
}

// Validate ensures all required fields are set and values are within valid ranges.
func (c *Config) Validate() error {
	source := configSource(c.ConfigFilePath)

	if c.Solver.Disks < 0 || c.Solver.Disks > hanoi.MaxDisks {
		return &apperrors.ConfigurationError{
			ConfigPath: source,
			Key:        "solver.disks",
			Err:        fmt.Errorf("%w: must be between 0 and %d, got %d", Err, hanoi.MaxDisks, c.Solver.Disks),
		}
	}

	if err := c.PegLabels().Validate(); err != nil {
		return &apperrors.ConfigurationError{
			ConfigPath: source,
			Key:        "pegs",
			Err:        fmt.Errorf("%w: %w", Err, err),
		}
	}

	if !IsValidFormat(c.Output.Format) {
		return &apperrors.ConfigurationError{
			ConfigPath: source,
			Key:        "output.format",
			Err:        fmt.Errorf("%w: unknown format %q (want one of %s)", Err, c.Output.Format, strings.Join(Formats, ", ")),
		}
	}

	return nil
}

// IsValidFormat reports whether format is one of Formats.
func IsValidFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}
