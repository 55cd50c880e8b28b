// Package templates holds the sample files written by the init command.
package templates

import (
	_ "embed"
)

// ConfigYAML is the sample config.yaml with every key at its default.
//
//go:embed config.template
var ConfigYAML []byte

// EnvFile lists the HANOI_* environment overrides, all commented out.
//
//go:embed env.template
var EnvFile []byte
