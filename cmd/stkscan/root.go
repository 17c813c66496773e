package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	// "stkscan WORLD town.zzt" works like the lowercase form.
	cobra.EnableCaseInsensitive = true
}

// NewRootCmd creates the root command for stkscan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stkscan",
		Short: "Find non-standard (STK) colors in ZZT worlds",
		Long: `stkscan reads ZZT world files and checks the color of every element
against the colors the ZZT editor can produce for that element type.
Elements outside that palette were usually placed with an external editor
(STK colors).

For every world it prints the number of standard and non-standard elements
and the share of non-standard ones. Boards whose data turns out to be
corrupted are reported and skipped from the first bad element on.

Colors 159 and 249 (blinking water) count as standard on water only.
Older STK checkers accepted them on every element type sharing the common
palette, so their counts may differ for worlds using those colors.`,
		Version:       getVersion(),
		Args:          cobra.ArbitraryArgs,
		RunE:          runRootCmd,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("log-json", false, "Write log records as JSON lines")

	// Add subcommands
	cmd.AddCommand(NewWorldCmd())
	cmd.AddCommand(NewDetailCmd())
	cmd.AddCommand(NewAllCmd())
	cmd.AddCommand(NewDirCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// runRootCmd is reached only when no subcommand matched.
func runRootCmd(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return ErrNoArgs
	}
	return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
}

// Execute runs the root command and exits with its status.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes stkscan with args and returns the process exit status.
// Usage errors print the syntax help on stdout; other errors go to stderr.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		if message, ok := usageMessage(err); ok {
			fmt.Fprint(stdout, helpText(message))
			return 1
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
