package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/stkscan/internal/model"
)

// FileName is the name of the database file inside the database directory.
const FileName = "stkscan.db"

// timeLayout is fixed width so stored timestamps sort chronologically as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// ErrFailedReport is returned when saving a report of a world that could
// not be read. Such reports carry no counts worth keeping.
var ErrFailedReport = errors.New("refusing to store a failed audit")

// HistoryDB provides SQLite-based storage for audit results.
type HistoryDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string

	// now stamps saved audits.
	now func() time.Time
}

// Options configures HistoryDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	EnableWAL bool

	// Clock replaces time.Now for audit timestamps. Mainly for tests.
	Clock func() time.Time
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a HistoryDB in dbDir.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*HistoryDB, error) {
	dbPath := filepath.Join(dbDir, FileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// mode=rw refuses to create a missing file, mode=rwc allows it.
	dsn := dbPath + "?mode=rw"
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	hdb := &HistoryDB{
		db:     db,
		dbPath: dbPath,
		now:    time.Now,
	}
	if opts.Clock != nil {
		hdb.now = opts.Clock
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := hdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return hdb, nil
}

// Close closes the database connection.
func (h *HistoryDB) Close() error {
	return h.db.Close()
}

// Path returns the location of the database file.
func (h *HistoryDB) Path() string {
	return h.dbPath
}

// createTables creates the database schema if it doesn't exist.
func (h *HistoryDB) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS audits (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		world_name TEXT NOT NULL,
		world_path TEXT NOT NULL,
		digest TEXT NOT NULL DEFAULT '',
		standard_count INTEGER NOT NULL,
		nonstandard_count INTEGER NOT NULL,
		corrupted_boards INTEGER NOT NULL,
		report_json TEXT NOT NULL,
		timestamp TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_audits_world ON audits(world_name);
	CREATE INDEX IF NOT EXISTS idx_audits_timestamp ON audits(timestamp);
	`

	_, err := h.db.ExecContext(context.Background(), schema)
	return err
}

// AuditRecord is the summary of one stored audit.
type AuditRecord struct {
	ID              int64     `json:"id"`
	WorldName       string    `json:"world_name"`
	WorldPath       string    `json:"world_path"`
	Digest          string    `json:"digest"`
	Standard        int       `json:"standard"`
	NonStandard     int       `json:"non_standard"`
	CorruptedBoards int       `json:"corrupted_boards"`
	Timestamp       time.Time `json:"timestamp"`
}

// STKPercentage returns the share of non-standard elements in the audit.
func (r AuditRecord) STKPercentage() float64 {
	stats := model.WorldStats{Standard: r.Standard, NonStandard: r.NonStandard}
	return stats.STKPercentage()
}

// SaveWorldReport stores the report of one audited world and returns the
// new row id. Reports of unreadable worlds are rejected with ErrFailedReport.
func (h *HistoryDB) SaveWorldReport(ctx context.Context, report *model.WorldReport) (int64, error) {
	if report.Failed() {
		return 0, ErrFailedReport
	}

	reportJSON, err := json.Marshal(report)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize report: %w", err)
	}

	query := `
	INSERT INTO audits (world_name, world_path, digest, standard_count, nonstandard_count, corrupted_boards, report_json, timestamp)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := h.db.ExecContext(ctx, query,
		report.Stats.WorldName,
		report.Path,
		report.Digest,
		report.Stats.Standard,
		report.Stats.NonStandard,
		report.CorruptedBoards(),
		string(reportJSON),
		h.now().UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save audit: %w", err)
	}

	return result.LastInsertId()
}

// GetAuditHistory returns the stored audits of a world, newest first.
// limit <= 0 returns every audit.
func (h *HistoryDB) GetAuditHistory(ctx context.Context, worldName string, limit int) ([]AuditRecord, error) {
	query := `
	SELECT id, world_name, world_path, digest, standard_count, nonstandard_count, corrupted_boards, timestamp
	FROM audits
	WHERE world_name = ?
	ORDER BY timestamp DESC, id DESC
	`
	args := []any{worldName}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := h.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get audit history: %w", err)
	}
	defer rows.Close()

	var records []AuditRecord
	for rows.Next() {
		var rec AuditRecord
		var timestamp string

		if err := rows.Scan(
			&rec.ID,
			&rec.WorldName,
			&rec.WorldPath,
			&rec.Digest,
			&rec.Standard,
			&rec.NonStandard,
			&rec.CorruptedBoards,
			&timestamp,
		); err != nil {
			return nil, fmt.Errorf("failed to scan audit: %w", err)
		}

		rec.Timestamp = parseTimestamp(timestamp)
		records = append(records, rec)
	}

	return records, rows.Err()
}

// GetWorldReport returns the full stored report of an audit by id.
// It returns nil without error when no such audit exists.
func (h *HistoryDB) GetWorldReport(ctx context.Context, id int64) (*model.WorldReport, error) {
	query := `SELECT report_json FROM audits WHERE id = ?`

	var reportJSON string
	err := h.db.QueryRowContext(ctx, query, id).Scan(&reportJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get audit: %w", err)
	}

	var report model.WorldReport
	if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
		return nil, fmt.Errorf("failed to parse report: %w", err)
	}

	return &report, nil
}

// ListAuditedWorlds returns the names of every world with stored audits.
func (h *HistoryDB) ListAuditedWorlds(ctx context.Context) ([]string, error) {
	query := `
	SELECT DISTINCT world_name FROM audits
	ORDER BY world_name
	`

	rows, err := h.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list worlds: %w", err)
	}
	defer rows.Close()

	var worlds []string
	for rows.Next() {
		var world string
		if err := rows.Scan(&world); err != nil {
			return nil, fmt.Errorf("failed to scan world: %w", err)
		}
		worlds = append(worlds, world)
	}

	return worlds, rows.Err()
}

// timestampFormats contains the timestamp formats the audits table may hold.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05", // SQLite default datetime format
	"2006-01-02T15:04:05",
}

// parseTimestamp attempts to parse a timestamp string using multiple formats.
// If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
