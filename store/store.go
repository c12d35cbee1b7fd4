// Package store keeps generated event lists in a SQLite database so they can
// be queried without regenerating them.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/robertmeta/heca-cli/model"
	"github.com/robertmeta/heca-cli/render"
)

// ErrNotFound is returned when an export does not exist.
var ErrNotFound = errors.New("not found")

// Store manages the SQLite database.
type Store struct {
	db *sql.DB
}

// Export describes one generated list.
type Export struct {
	ID       int64           `json:"id"`
	Created  time.Time       `json:"created"`
	Calendar string          `json:"calendar"` // "hebrew" or "gregorian"
	Year     int             `json:"year"`
	Amount   int             `json:"amount"`
	Language render.Language `json:"language"`
	Count    int             `json:"count"`
}

// Row is a stored event. Payload holds the event's JSON wire form.
type Row struct {
	ID       int64            `json:"id"`
	ExportID int64            `json:"export_id"`
	Day      time.Time        `json:"day"`
	Kind     string           `json:"kind"`
	Type     string           `json:"type"`
	Label    string           `json:"label"`
	Candle   model.WireCandle `json:"candle_lighting"`
	Payload  json.RawMessage  `json:"payload"`
}

// QueryOptions specifies how to query events.
type QueryOptions struct {
	Limit    int
	Offset   int
	ExportID int64  // 0 means every export
	Kind     string // a LabelKind name
	From     *int64 // Unix timestamp, inclusive
	Until    *int64 // Unix timestamp, exclusive
}

// New creates a new Store with the given database path.
// Use ":memory:" for an in-memory database (useful for testing).
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Every connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	schema := `
	PRAGMA foreign_keys = ON;

	CREATE TABLE IF NOT EXISTS exports (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created INTEGER NOT NULL,
		calendar TEXT NOT NULL,
		year INTEGER NOT NULL,
		amount INTEGER NOT NULL,
		language TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		export_id INTEGER NOT NULL,
		day INTEGER NOT NULL,
		kind TEXT NOT NULL,
		type TEXT NOT NULL,
		label TEXT NOT NULL,
		candle_applicable INTEGER NOT NULL,
		candle_time INTEGER,
		payload TEXT NOT NULL,
		FOREIGN KEY (export_id) REFERENCES exports(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_events_day ON events(day);
	CREATE INDEX IF NOT EXISTS idx_events_export ON events(export_id, day);
	`

	_, err := s.db.Exec(schema)
	return err
}

// SaveExport stores an export and every event in it in one transaction.
// Labels are stored rendered in the export's language.
func (s *Store) SaveExport(export *Export, events []model.Event) (err error) {
	if export.Created.IsZero() {
		export.Created = time.Now()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	result, err := tx.Exec(
		"INSERT INTO exports (created, calendar, year, amount, language) VALUES (?, ?, ?, ?, ?)",
		export.Created.Unix(), export.Calendar, export.Year, export.Amount, export.Language.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to save export: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get export id: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO events (export_id, day, kind, type, label, candle_applicable, candle_time, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range events {
		w := e.Wire()
		payload, err := json.Marshal(w)
		if err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
		var candleTime sql.NullInt64
		if w.CandleLighting.Time != nil {
			candleTime = sql.NullInt64{Int64: w.CandleLighting.Time.Unix(), Valid: true}
		}
		_, err = stmt.Exec(
			id,
			e.Day.Unix(),
			e.Name.Kind().String(),
			w.Name.Type,
			render.Label(e.Name, export.Language),
			boolToInt(w.CandleLighting.Applicable),
			candleTime,
			string(payload),
		)
		if err != nil {
			return fmt.Errorf("failed to save event: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit export: %w", err)
	}
	export.ID = id
	export.Count = len(events)
	return nil
}

// GetExport retrieves an export by ID along with its event count.
func (s *Store) GetExport(id int64) (*Export, error) {
	export := &Export{}
	var created int64
	var language string

	err := s.db.QueryRow(`
		SELECT x.id, x.created, x.calendar, x.year, x.amount, x.language,
			(SELECT COUNT(*) FROM events e WHERE e.export_id = x.id)
		FROM exports x WHERE x.id = ?
	`, id).Scan(&export.ID, &created, &export.Calendar, &export.Year, &export.Amount, &language, &export.Count)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("export %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get export: %w", err)
	}

	export.Created = unixToTime(created)
	export.Language = languageOf(language)
	return export, nil
}

// GetAllExports retrieves every export, newest first.
func (s *Store) GetAllExports() ([]*Export, error) {
	rows, err := s.db.Query(`
		SELECT x.id, x.created, x.calendar, x.year, x.amount, x.language,
			(SELECT COUNT(*) FROM events e WHERE e.export_id = x.id)
		FROM exports x ORDER BY x.id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query exports: %w", err)
	}
	defer rows.Close()

	var exports []*Export
	for rows.Next() {
		export := &Export{}
		var created int64
		var language string
		if err := rows.Scan(&export.ID, &created, &export.Calendar, &export.Year, &export.Amount, &language, &export.Count); err != nil {
			return nil, fmt.Errorf("failed to scan export: %w", err)
		}
		export.Created = unixToTime(created)
		export.Language = languageOf(language)
		exports = append(exports, export)
	}

	return exports, rows.Err()
}

// DeleteExport deletes an export and its events.
func (s *Store) DeleteExport(id int64) error {
	result, err := s.db.Exec("DELETE FROM exports WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete export: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete export: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("export %d: %w", id, ErrNotFound)
	}
	return nil
}

// Events retrieves stored events in day order with optional filtering and
// pagination.
func (s *Store) Events(opts QueryOptions) ([]Row, error) {
	query := "SELECT id, export_id, day, kind, type, label, candle_applicable, candle_time, payload FROM events WHERE 1=1"
	args := []any{}

	if opts.ExportID != 0 {
		query += " AND export_id = ?"
		args = append(args, opts.ExportID)
	}
	if opts.Kind != "" {
		query += " AND kind = ?"
		args = append(args, opts.Kind)
	}
	if opts.From != nil {
		query += " AND day >= ?"
		args = append(args, *opts.From)
	}
	if opts.Until != nil {
		query += " AND day < ?"
		args = append(args, *opts.Until)
	}

	// Insertion order breaks ties, so a stored list reads back as it was written.
	query += " ORDER BY day, id"

	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}
	if opts.Offset > 0 {
		if opts.Limit <= 0 {
			query += " LIMIT -1"
		}
		query += " OFFSET ?"
		args = append(args, opts.Offset)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		var day int64
		var applicable int
		var candleTime sql.NullInt64
		var payload string

		err := rows.Scan(&r.ID, &r.ExportID, &day, &r.Kind, &r.Type, &r.Label, &applicable, &candleTime, &payload)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}

		r.Day = unixToTime(day)
		r.Candle.Applicable = intToBool(applicable)
		if candleTime.Valid {
			t := unixToTime(candleTime.Int64)
			r.Candle.Time = &t
		}
		r.Payload = json.RawMessage(payload)
		out = append(out, r)
	}

	return out, rows.Err()
}

func languageOf(s string) render.Language {
	if s == render.Hebrew.String() {
		return render.Hebrew
	}
	return render.English
}

// SQLite has no BOOLEAN type.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int) bool {
	return i != 0
}

func unixToTime(unix int64) time.Time {
	return time.Unix(unix, 0).UTC()
}
