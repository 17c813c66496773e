package config

import "fmt"

// Format names a report format.
type Format string

// Report formats accepted in the config file.
const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// File represents the structure of the .stkscan configuration file.
// Unset keys leave the corresponding defaults alone.
type File struct {
	// RestrictedOnly leaves unrestricted element types out of the counts.
	RestrictedOnly *bool `yaml:"restrictedOnly,omitempty"`

	// History enables the audit history database.
	History *bool `yaml:"history,omitempty"`

	// Format selects the report format: text, json or markdown.
	Format Format `yaml:"format,omitempty"`

	// Ignore lists glob patterns of world file names skipped by the
	// directory commands.
	Ignore []string `yaml:"ignore,omitempty"`
}

// Validate checks the values read from the file.
func (f *File) Validate() error {
	switch f.Format {
	case "", FormatText, FormatJSON, FormatMarkdown:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, f.Format)
	}
	return nil
}

// Apply copies the keys set in the file onto c.
// Flags given on the command line are applied afterwards and win.
func (f *File) Apply(c *Config) {
	if f.RestrictedOnly != nil {
		c.RestrictedOnly = *f.RestrictedOnly
	}
	if f.History != nil {
		c.SaveToDB = *f.History
	}
	if f.Format != "" {
		c.SetFormat(f.Format)
	}
	if len(f.Ignore) > 0 {
		c.Ignore = append(c.Ignore, f.Ignore...)
	}
}
