package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/nao1215/stkscan/internal/config"
	"github.com/nao1215/stkscan/internal/database"
	"github.com/nao1215/stkscan/internal/model"
	"github.com/spf13/cobra"
)

// Directions of the STK share between two audits.
const (
	stkDirectionWorsened  = "worsened"
	stkDirectionImproved  = "improved"
	stkDirectionUnchanged = "unchanged"
)

// digestWidth is the number of digest characters shown in history tables.
const digestWidth = 12

// NewHistoryCmd creates the history command.
// This command shows audits stored in the history database.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [world]",
		Short: "Show stored audits of a world",
		Long: `History lists the audits of a world recorded by earlier runs and compares
the latest two:
- whether the share of STK elements went up, down or stayed the same
- whether the world file itself changed between the runs

Worlds are stored under the name they were audited with: the file name for
'all' and 'dir', the argument as typed for 'world' and 'detail'.

Examples:
  # Show the audit history of a world
  stkscan history TOWN.ZZT

  # List every audited world
  stkscan history --list-worlds

  # Output the history in JSON format
  stkscan history --json TOWN.ZZT

  # Print the full report stored with audit 42
  stkscan history --show 42 --markdown`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistoryCmd,
	}

	cmd.Flags().BoolP("list-worlds", "L", false,
		"List all worlds in the history database")
	cmd.Flags().IntP("limit", "n", 0,
		"Show at most this many audits (0 shows all)")
	cmd.Flags().Int64P("show", "s", 0,
		"Print the stored report of the audit with this ID")
	cmd.Flags().BoolP("json", "j", false,
		"Output history in JSON format")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output the --show report in Markdown format")
	cmd.Flags().String("db-dir", "",
		"History database directory (default: XDG data directory)")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, args []string) error {
	listWorlds, err := cmd.Flags().GetBool("list-worlds")
	if err != nil {
		return err
	}

	show, err := cmd.Flags().GetInt64("show")
	if err != nil {
		return err
	}

	// Validate arguments before opening the database.
	if !listWorlds && show == 0 && len(args) == 0 {
		return errors.New("world name is required (use --list-worlds to see audited worlds)")
	}

	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	jsonOutput, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	markdownOutput, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return err
	}
	if jsonOutput && markdownOutput {
		return config.ErrConflictingReportFormats
	}

	dbDir, err := cmd.Flags().GetString("db-dir")
	if err != nil {
		return err
	}
	if dbDir == "" {
		dbDir = config.XDGDataDir()
	}

	db, err := database.Open(dbDir, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if listWorlds {
		return listAuditedWorlds(ctx, out, db, jsonOutput)
	}

	if show != 0 {
		format := config.FormatText
		switch {
		case jsonOutput:
			format = config.FormatJSON
		case markdownOutput:
			format = config.FormatMarkdown
		}
		return showAudit(ctx, out, db, show, format)
	}

	result, err := loadHistory(ctx, db, args[0], limit)
	if err != nil {
		return err
	}

	if jsonOutput {
		return outputHistoryJSON(out, result)
	}
	return outputHistoryText(out, result)
}

// HistoryResult holds the stored audits of one world.
type HistoryResult struct {
	// World is the name the audits are stored under.
	World string `json:"world"`

	// Audits lists the audits, newest first.
	Audits []database.AuditRecord `json:"audits"`

	// Comparison compares the latest two audits.
	// Nil when fewer than two audits exist.
	Comparison *Comparison `json:"comparison,omitempty"`
}

// Comparison describes the change between two audits of a world.
type Comparison struct {
	// Previous is the older audit.
	Previous database.AuditRecord `json:"previous"`

	// Current is the newer audit.
	Current database.AuditRecord `json:"current"`

	// Direction is "improved", "worsened", or "unchanged".
	Direction string `json:"direction"`

	// StandardDelta is the change in standard element count.
	StandardDelta int `json:"standard_delta"`

	// NonStandardDelta is the change in STK element count.
	NonStandardDelta int `json:"non_standard_delta"`

	// PercentageDelta is the change in STK share, in percentage points.
	PercentageDelta float64 `json:"percentage_delta"`

	// FileChanged reports whether the world file digests differ.
	FileChanged bool `json:"file_changed"`
}

// loadHistory reads the audits of world. A name with a directory part that
// has no audits is retried with its base name, so "games/TOWN.ZZT" finds
// audits recorded by 'all'.
func loadHistory(ctx context.Context, db *database.HistoryDB, world string, limit int) (*HistoryResult, error) {
	records, err := db.GetAuditHistory(ctx, world, limit)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		if base := filepath.Base(world); base != world {
			records, err = db.GetAuditHistory(ctx, base, limit)
			if err != nil {
				return nil, err
			}
			if len(records) > 0 {
				world = base
			}
		}
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no audit history found for %s", world)
	}

	result := &HistoryResult{World: world, Audits: records}
	if len(records) >= 2 {
		result.Comparison = compareAudits(records[1], records[0])
	}
	return result, nil
}

// compareAudits compares an older audit with a newer one.
func compareAudits(previous, current database.AuditRecord) *Comparison {
	c := &Comparison{
		Previous:         previous,
		Current:          current,
		StandardDelta:    current.Standard - previous.Standard,
		NonStandardDelta: current.NonStandard - previous.NonStandard,
		PercentageDelta:  current.STKPercentage() - previous.STKPercentage(),
		FileChanged:      previous.Digest != current.Digest,
	}

	switch {
	case current.STKPercentage() < previous.STKPercentage():
		c.Direction = stkDirectionImproved
	case current.STKPercentage() > previous.STKPercentage():
		c.Direction = stkDirectionWorsened
	default:
		c.Direction = stkDirectionUnchanged
	}

	return c
}

// showAudit prints the report stored with audit id.
func showAudit(ctx context.Context, out io.Writer, db *database.HistoryDB, id int64, format config.Format) error {
	stored, err := db.GetWorldReport(ctx, id)
	if err != nil {
		return err
	}
	if stored == nil {
		return fmt.Errorf("no audit found with ID %d", id)
	}

	if _, err := newReportWriter(out, format, false).Write([]*model.WorldReport{stored}); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// listAuditedWorlds prints the names of all audited worlds.
func listAuditedWorlds(ctx context.Context, out io.Writer, db *database.HistoryDB, jsonOutput bool) error {
	worlds, err := db.ListAuditedWorlds(ctx)
	if err != nil {
		return fmt.Errorf("failed to list worlds: %w", err)
	}

	if jsonOutput {
		if worlds == nil {
			worlds = make([]string, 0)
		}
		return writeJSON(out, worlds)
	}

	if len(worlds) == 0 {
		fmt.Fprintln(out, "No audited worlds found in the history database.")
		fmt.Fprintln(out, "\nUse 'stkscan world <file>' to audit a world.")
		return nil
	}

	fmt.Fprintf(out, "Audited worlds (%d):\n\n", len(worlds))
	for _, world := range worlds {
		fmt.Fprintf(out, "  • %s\n", world)
	}
	fmt.Fprintln(out, "\nUse 'stkscan history <world>' to see the audits of a world.")

	return nil
}

// outputHistoryText prints the audit table and the comparison.
func outputHistoryText(out io.Writer, result *HistoryResult) error {
	fmt.Fprintf(out, "Audit history for %s (%d audits):\n\n", result.World, len(result.Audits))
	fmt.Fprintf(out, "  %-6s  %-19s  %-8s  %-8s  %-7s  %s\n", "ID", "Date", "non-STK", "STK", "% STK", "Digest")
	fmt.Fprintln(out, "  "+strings.Repeat("-", 72))

	for _, rec := range result.Audits {
		fmt.Fprintf(out, "  %-6d  %-19s  %-8d  %-8d  %-7.1f  %s\n",
			rec.ID,
			rec.Timestamp.Format("2006-01-02 15:04:05"),
			rec.Standard,
			rec.NonStandard,
			rec.STKPercentage(),
			shortDigest(rec.Digest),
		)
	}

	c := result.Comparison
	if c == nil {
		fmt.Fprintln(out, "\nOnly one audit recorded; run another to compare.")
		return nil
	}

	fmt.Fprintf(out, "\nSTK usage %s: %.1f%% -> %.1f%% (%s points)\n",
		c.Direction, c.Previous.STKPercentage(), c.Current.STKPercentage(), formatDelta(c.PercentageDelta))
	fmt.Fprintf(out, "STK elements: %d -> %d (%s)\n",
		c.Previous.NonStandard, c.Current.NonStandard, formatIntDelta(c.NonStandardDelta))
	if c.FileChanged {
		fmt.Fprintln(out, "World file changed since the previous audit.")
	} else {
		fmt.Fprintln(out, "World file unchanged since the previous audit.")
	}

	return nil
}

// outputHistoryJSON outputs the history in JSON format.
func outputHistoryJSON(out io.Writer, result *HistoryResult) error {
	return writeJSON(out, result)
}

// writeJSON encodes v as indented JSON.
func writeJSON(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// shortDigest truncates a digest for table display.
func shortDigest(digest string) string {
	if digest == "" {
		return "-"
	}
	if len(digest) > digestWidth {
		return digest[:digestWidth]
	}
	return digest
}

// formatDelta formats a percentage point change with an explicit sign.
func formatDelta(delta float64) string {
	return fmt.Sprintf("%+.1f", delta)
}

// formatIntDelta formats a count change with an explicit sign.
func formatIntDelta(delta int) string {
	return fmt.Sprintf("%+d", delta)
}
