package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nao1215/stkscan/internal/audit"
	"github.com/nao1215/stkscan/internal/config"
	"github.com/nao1215/stkscan/internal/database"
	applog "github.com/nao1215/stkscan/internal/log"
	"github.com/nao1215/stkscan/internal/model"
	"github.com/nao1215/stkscan/internal/report"
	"github.com/nao1215/stkscan/internal/zzt"
	"github.com/spf13/cobra"
)

// targetFunc resolves the worlds an audit command should check.
type targetFunc func(cfg *config.Config, args []string) ([]model.Target, error)

// NewWorldCmd creates the world command.
func NewWorldCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "world WORLD.ZZT [WORLD.ZZT...]",
		Short: "Audit one world file",
		Long: `World audits the given world file and prints its summary line.

Examples:
  # Audit a single world
  stkscan world TOWN.ZZT

  # Write a Markdown report to a file
  stkscan world -m -o reports/town.md TOWN.ZZT`,
		Args: requireArgs(ErrMissingWorld),
		RunE: auditRunE(false, worldTargets),
	}
	addAuditFlags(cmd)
	return cmd
}

// NewDetailCmd creates the detail command.
func NewDetailCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detail WORLD.ZZT [WORLD.ZZT...]",
		Short: "Audit one world file and list every STK element",
		Long: `Detail audits the given world file like world does, and also prints one
line per element using a non-standard color, with its board and position.

Examples:
  # List every STK element of a world
  stkscan detail TOWN.ZZT`,
		Args: requireArgs(ErrMissingWorld),
		RunE: auditRunE(true, worldTargets),
	}
	addAuditFlags(cmd)
	return cmd
}

// NewAllCmd creates the all command.
func NewAllCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Audit every world file in the current directory",
		Long: `All audits every .ZZT file in the current directory, in name order.
Subdirectories are not searched. Files matching an ignore pattern from the
configuration file are skipped.

Examples:
  # Audit every world here and print run totals
  stkscan all --totals`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w %q for all", ErrUnknownCommand, args[0])
			}
			return nil
		},
		RunE: auditRunE(false, func(cfg *config.Config, _ []string) ([]model.Target, error) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get working directory: %w", err)
			}
			return discoverTargets(cwd, cfg.Ignore)
		}),
	}
	addAuditFlags(cmd)
	return cmd
}

// NewDirCmd creates the dir command.
func NewDirCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dir SUBDIR",
		Short: "Audit every world file in a subdirectory",
		Long: `Dir audits every .ZZT file in SUBDIR, which is taken relative to the
current directory. A leading slash is allowed and ignored.

Examples:
  # Audit the worlds in ./games
  stkscan dir games`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("%w: got %d arguments", ErrMissingDir, len(args))
			}
			return nil
		},
		RunE: auditRunE(false, func(cfg *config.Config, args []string) ([]model.Target, error) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get working directory: %w", err)
			}
			return discoverTargets(filepath.Join(cwd, args[0]), cfg.Ignore)
		}),
	}
	addAuditFlags(cmd)
	return cmd
}

// addAuditFlags registers the flags shared by the audit commands.
func addAuditFlags(cmd *cobra.Command) {
	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .stkscan in current or home directory)")

	// Audit behavior flags
	cmd.Flags().Bool("restricted-only", false,
		"Count only element types with a palette restriction")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().Bool("totals", false,
		"Append a line summing all worlds to the summary")

	// History flags
	cmd.Flags().Bool("no-history", false,
		"Do not record this run in the history database")
	cmd.Flags().String("db-dir", "",
		"History database directory (default: XDG data directory)")
}

// requireArgs fails with missing when no positional argument is given.
func requireArgs(missing error) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) == 0 {
			return missing
		}
		return nil
	}
}

// worldTargets turns file arguments into targets named as given.
func worldTargets(_ *config.Config, args []string) ([]model.Target, error) {
	targets := make([]model.Target, 0, len(args))
	for _, arg := range args {
		targets = append(targets, model.Target{Name: arg, Path: arg})
	}
	return targets, nil
}

// discoverTargets lists the worlds in dir. Finding none, including when dir
// cannot be read, is a usage error.
func discoverTargets(dir string, ignore []string) ([]model.Target, error) {
	targets, err := zzt.Discover(dir, ignore)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoWorldsFound, err)
	}
	if len(targets) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoWorldsFound, dir)
	}
	return targets, nil
}

// auditRunE builds the RunE of an audit command.
func auditRunE(detail bool, resolve targetFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig(cmd)
		if err != nil {
			return err
		}
		cfg.Detail = detail

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}

		targets, err := resolve(cfg, args)
		if err != nil {
			return err
		}

		totals, err := cmd.Flags().GetBool("totals")
		if err != nil {
			return err
		}

		logger := setupLogger(cmd.ErrOrStderr(), cfg)
		return runAudit(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, targets, totals, logger)
	}
}

// buildConfig creates a Config from the configuration file and the flags.
// Flags given on the command line override file values.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	var err error
	cfg.ConfigFilePath, err = flags.GetString("config")
	if err != nil {
		return nil, err
	}

	// If the user named a config file, it must exist.
	// Otherwise a missing file just means defaults.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		file.Apply(cfg)
	} else if cfg.ConfigFilePath != "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	if flags.Changed("restricted-only") {
		if cfg.RestrictedOnly, err = flags.GetBool("restricted-only"); err != nil {
			return nil, err
		}
	}

	// Either format flag replaces the format chosen in the file.
	if flags.Changed("json") || flags.Changed("markdown") {
		if cfg.JSONReport, err = flags.GetBool("json"); err != nil {
			return nil, err
		}
		if cfg.MarkdownReport, err = flags.GetBool("markdown"); err != nil {
			return nil, err
		}
	}

	if cfg.ReportFile, err = flags.GetString("output"); err != nil {
		return nil, err
	}

	if flags.Changed("no-history") {
		noHistory, err := flags.GetBool("no-history")
		if err != nil {
			return nil, err
		}
		cfg.SaveToDB = !noHistory
	}

	dbDir, err := flags.GetString("db-dir")
	if err != nil {
		return nil, err
	}
	if dbDir != "" {
		cfg.DBDir = dbDir
	}

	cfg.Verbose = getBoolFlag(cmd, "verbose")
	cfg.LogJSON = getBoolFlag(cmd, "log-json")

	return cfg, nil
}

// getBoolFlag retrieves a boolean flag from the command or its parents.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		value, err = cmd.Root().PersistentFlags().GetBool(name)
		if err != nil {
			return false
		}
	}
	return value
}

// setupLogger creates a structured logger writing to w.
func setupLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	if cfg.LogJSON {
		return applog.NewJSONLogger(w, cfg.Verbose)
	}
	return applog.NewLogger(w, cfg.Verbose)
}

// runAudit checks targets one after another, records each world in the
// history database and writes the report once every world is done.
//
// Progress lines go to stdout next to the summary. When a JSON or Markdown
// document is written to stdout, they move to stderr so the document stays
// parseable.
func runAudit(ctx context.Context, stdout, stderr io.Writer, cfg *config.Config, targets []model.Target, totals bool, logger *slog.Logger) error {
	logger.Info("starting audit",
		"targets", len(targets),
		"detail", cfg.Detail,
		"restrictedOnly", cfg.RestrictedOnly,
		"saveToDB", cfg.SaveToDB,
	)

	var db *database.HistoryDB
	if cfg.SaveToDB {
		var err error
		db, err = database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			// History is optional. The worlds are still checked.
			logger.Warn("history disabled: failed to open history database",
				"dir", cfg.DBDir,
				"error", err,
			)
			db = nil
		} else {
			defer db.Close()
			logger.Info("history database opened", "path", db.Path())
		}
	}

	progressOut := stdout
	if cfg.Format() != config.FormatText && cfg.ReportFile == "" {
		progressOut = stderr
	}
	progress := report.NewProgressWriter(progressOut)

	scanner := audit.NewScanner(nil,
		audit.WithDetail(cfg.Detail),
		audit.WithRestrictedOnly(cfg.RestrictedOnly),
		audit.WithObserver(progress),
		audit.WithLogger(logger),
	)
	runner := audit.NewRunner(zzt.NewLoader(logger), scanner,
		audit.WithRunnerObserver(progress),
		audit.WithRunnerLogger(logger),
		audit.WithReportCallback(func(r *model.WorldReport) {
			if err := saveWorldReport(ctx, db, r, logger); err != nil {
				logger.Error("failed to save audit", "world", r.Stats.WorldName, "error", err)
			}
		}),
	)

	reports := runner.Run(targets)
	if err := progress.Err(); err != nil {
		return fmt.Errorf("failed to write progress: %w", err)
	}

	return outputReport(stdout, cfg, reports, totals)
}

// saveWorldReport stores one report in the history database.
// It is a no-op when the database is disabled or the world failed to load.
func saveWorldReport(ctx context.Context, db *database.HistoryDB, r *model.WorldReport, logger *slog.Logger) error {
	if db == nil || r.Failed() {
		return nil
	}

	id, err := db.SaveWorldReport(ctx, r)
	if err != nil {
		return err
	}

	logger.Debug("audit saved", "world", r.Stats.WorldName, "id", id)
	return nil
}

// outputReport writes the reports in the requested format.
func outputReport(stdout io.Writer, cfg *config.Config, reports []*model.WorldReport, totals bool) error {
	output := stdout
	if cfg.ReportFile != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	}

	writer := newReportWriter(output, cfg.Format(), totals)
	if cfg.ReportFile != "" {
		// The summary block still reaches the terminal.
		writer = report.NewMultiWriter(writer, report.NewSimpleWriter(stdout, report.WithTotals(totals)))
	}

	if _, err := writer.Write(reports); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// newReportWriter returns the report writer for format.
func newReportWriter(output io.Writer, format config.Format, totals bool) report.Writer {
	switch format {
	case config.FormatJSON:
		return report.NewJSONWriter(output, report.WithPrettyPrint(), report.WithVersion(getVersion()))
	case config.FormatMarkdown:
		return report.NewMarkdownWriter(output)
	default:
		return report.NewSimpleWriter(output, report.WithTotals(totals))
	}
}
