package main

import (
	"errors"
	"strings"
)

// Usage errors. Each one is answered with the syntax help.
var (
	// ErrNoArgs is returned when stkscan is run without a command.
	ErrNoArgs = errors.New("no arguments given")

	// ErrMissingWorld is returned when world or detail lacks its file argument.
	ErrMissingWorld = errors.New("world file argument is required")

	// ErrMissingDir is returned when dir lacks its directory argument.
	ErrMissingDir = errors.New("directory argument is required")

	// ErrNoWorldsFound is returned when all or dir finds no world files.
	ErrNoWorldsFound = errors.New("no world files found")

	// ErrUnknownCommand is returned for a first argument that names no command.
	ErrUnknownCommand = errors.New("unknown command")
)

// usageMessages maps usage errors to the line shown above the syntax help.
var usageMessages = []struct {
	err     error
	message string
}{
	{ErrNoArgs, "No arguments given."},
	{ErrMissingWorld, "World argument requires valid .zzt file as argument."},
	{ErrNoWorldsFound, "Called 'all' or 'dir' but no .ZZT files were found in requested directory."},
	{ErrMissingDir, "Dir argument requires directory as argument."},
	{ErrUnknownCommand, "Unspecified."},
}

// syntaxLines are the command summaries of the syntax help.
var syntaxLines = []string{
	"stkscan world WORLD.ZZT - analyze WORLD.ZZT",
	"stkscan detail WORLD.ZZT - analyze WORLD.ZZT in excruciating detail",
	"stkscan all - analyze all .ZZT files in directory",
	"stkscan dir SUBDIR - analyze all .ZZT files in subdirectory SUBDIR",
	"stkscan history WORLD.ZZT - compare the last two audits of WORLD.ZZT",
}

// usageMessage returns the help message for err, or false when err is not
// a usage error.
func usageMessage(err error) (string, bool) {
	for _, u := range usageMessages {
		if errors.Is(err, u.err) {
			return u.message, true
		}
	}
	return "", false
}

// helpText renders the error line followed by the syntax help.
func helpText(message string) string {
	var sb strings.Builder

	sb.WriteString("\nError: " + message + "\n")
	sb.WriteString("\nSyntax help:\n\n")
	for _, line := range syntaxLines {
		sb.WriteString("\t" + line + "\n")
	}
	sb.WriteString("\nHappy hunting!\n")

	return sb.String()
}
