package config

import (
	"errors"
	"fmt"
)

// Configuration validation errors.
// These errors are returned by Config.Validate() and File.Validate() and can
// be checked with errors.Is().
var (
	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrNoDBDir is returned when history is enabled but no database
	// directory could be determined.
	ErrNoDBDir = errors.New("history is enabled but no database directory is set")

	// ErrInvalidFormat is returned when the config file names an unknown
	// report format.
	ErrInvalidFormat = errors.New("invalid report format: must be text, json or markdown")
)

// InvalidPatternError is returned for a malformed ignore pattern.
type InvalidPatternError struct {
	Pattern string
	Err     error
}

// Error implements the error interface.
func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid ignore pattern %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying filepath.Match error.
func (e *InvalidPatternError) Unwrap() error {
	return e.Err
}
