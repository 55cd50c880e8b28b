// Package apperrors provides domain-specific error types for the hanoi application.
// These error types include contextual information to aid debugging and error reporting.
package apperrors

import "fmt"

// ConfigurationError represents configuration-related errors.
// It includes the configuration file path and specific key that caused the error.
type ConfigurationError struct {
	ConfigPath string // Path to the configuration file
	Key        string // Configuration key that caused the error
	Err        error  // Underlying error
}

// Error implements the error interface for ConfigurationError.
func (e *ConfigurationError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("configuration error in %s (key: %s): %v", e.ConfigPath, e.Key, e.Err)
	}
	return fmt.Sprintf("configuration error in %s: %v", e.ConfigPath, e.Err)
}

// Unwrap returns the underlying error for error wrapping chains.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// InvalidArgumentError reports an argument rejected at the boundary,
// before any work was done.
type InvalidArgumentError struct {
	Argument string // Name of the offending argument (e.g., "disks")
	Value    string // Rejected value as given
	Err      error  // Underlying error
}

// Error implements the error interface for InvalidArgumentError.
func (e *InvalidArgumentError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid argument %s=%q: %v", e.Argument, e.Value, e.Err)
	}
	return fmt.Sprintf("invalid argument %s: %v", e.Argument, e.Err)
}

// Unwrap returns the underlying error for error wrapping chains.
func (e *InvalidArgumentError) Unwrap() error {
	return e.Err
}

// IllegalMoveError reports a move that breaks the puzzle rules when replayed.
type IllegalMoveError struct {
	Index  int    // Zero-based position of the move in the sequence
	Move   string // Human-readable form of the move
	Reason string // Why the move was rejected
	Err    error  // Underlying error
}

// Error implements the error interface for IllegalMoveError.
func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("move #%d (%s) rejected: %s: %v", e.Index+1, e.Move, e.Reason, e.Err)
}

// Unwrap returns the underlying error for error wrapping chains.
func (e *IllegalMoveError) Unwrap() error {
	return e.Err
}
