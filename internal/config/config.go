package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName is the application name used for XDG directory paths.
const AppName = "stkscan"

// Config holds all configuration options for one stkscan run.
// It is populated from the config file and CLI flags, then passed down
// explicitly rather than kept in global state.
type Config struct {
	// Detail prints every non-standard element as it is found.
	Detail bool

	// RestrictedOnly leaves elements without a palette restriction out of
	// both counts. By default they count as standard.
	RestrictedOnly bool

	// Verbose enables debug logging.
	// When false, only warnings and errors are logged.
	Verbose bool

	// LogJSON switches the log output on stderr to JSON lines.
	LogJSON bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, .stkscan is searched in the current directory and then in
	// the user's home directory.
	ConfigFilePath string

	// JSONReport replaces the summary lines with a JSON document.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport replaces the summary lines with a Markdown document.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string

	// SaveToDB stores every audited world in the history database.
	SaveToDB bool

	// DBDir is the directory holding the history database.
	// Defaults to the XDG data directory (~/.local/share/stkscan on Linux).
	DBDir string

	// Ignore lists glob patterns of world file names skipped by the
	// directory commands.
	Ignore []string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		SaveToDB: true,
		DBDir:    XDGDataDir(),
		Ignore:   make([]string, 0),
	}
}

// XDGDataDir returns the XDG data directory for stkscan.
// On Linux: ~/.local/share/stkscan
// On macOS: ~/Library/Application Support/stkscan
// On Windows: %LOCALAPPDATA%\stkscan
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// Format returns the report format selected by the flags.
func (c *Config) Format() Format {
	switch {
	case c.JSONReport:
		return FormatJSON
	case c.MarkdownReport:
		return FormatMarkdown
	default:
		return FormatText
	}
}

// SetFormat selects a report format. FormatText clears both report flags.
func (c *Config) SetFormat(f Format) {
	c.JSONReport = f == FormatJSON
	c.MarkdownReport = f == FormatMarkdown
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	if c.SaveToDB && c.DBDir == "" {
		return ErrNoDBDir
	}

	for _, p := range c.Ignore {
		if _, err := filepath.Match(p, ""); err != nil {
			return &InvalidPatternError{Pattern: p, Err: err}
		}
	}

	return nil
}
