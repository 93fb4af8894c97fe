// Package journal persists run history to a SQLite database so
// regressions across builds can be compared after the fact. Only run
// totals and per-section tallies are stored.
package journal

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/twbaty/winix/internal/harness"
)

//go:embed schema.sql
var schemaSQL string

// Journal is a handle to the run history database.
type Journal struct {
	db *sql.DB
}

// RunRecord is one persisted harness run.
type RunRecord struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	BuildDir   string
	Passed     int
	Failed     int
	Sections   []harness.SectionResult
}

// NewRunID returns a fresh run identifier.
func NewRunID() string {
	return uuid.NewString()
}

// Open creates or opens the journal database at path.
//
// The database uses WAL mode with a single writer connection, the
// same configuration trade-offs as any small embedded history store:
// concurrent readers, NORMAL synchronous, 5-second busy timeout.
// Open is idempotent.
func Open(path string) (*Journal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to journal: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Journal{db: db}, nil
}

// Close closes the database connection.
func (j *Journal) Close() error {
	if j.db == nil {
		return nil
	}
	return j.db.Close()
}

// Record persists one run and its section breakdown in a single
// transaction.
func (j *Journal) Record(ctx context.Context, rec RunRecord) error {
	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin journal tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, finished_at, build_dir, passed, failed)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.StartedAt.UTC().Format(time.RFC3339Nano),
		rec.FinishedAt.UTC().Format(time.RFC3339Nano),
		rec.BuildDir,
		rec.Passed,
		rec.Failed,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, section := range rec.Sections {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO run_sections (run_id, name, passed, failed)
			 VALUES (?, ?, ?, ?)`,
			rec.ID, section.Name, section.Passed, section.Failed,
		)
		if err != nil {
			return fmt.Errorf("insert section %q: %w", section.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit journal tx: %w", err)
	}
	return nil
}

// LastRun returns the most recently started run, or sql.ErrNoRows if
// the journal is empty.
func (j *Journal) LastRun(ctx context.Context) (*RunRecord, error) {
	var (
		rec      RunRecord
		started  string
		finished string
	)
	err := j.db.QueryRowContext(ctx,
		`SELECT id, started_at, finished_at, build_dir, passed, failed
		 FROM runs ORDER BY started_at DESC LIMIT 1`,
	).Scan(&rec.ID, &started, &finished, &rec.BuildDir, &rec.Passed, &rec.Failed)
	if err != nil {
		return nil, err
	}

	if rec.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
		return nil, fmt.Errorf("parse started_at: %w", err)
	}
	if rec.FinishedAt, err = time.Parse(time.RFC3339Nano, finished); err != nil {
		return nil, fmt.Errorf("parse finished_at: %w", err)
	}

	rows, err := j.db.QueryContext(ctx,
		`SELECT name, passed, failed FROM run_sections WHERE run_id = ? ORDER BY name`,
		rec.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("query sections: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s harness.SectionResult
		if err := rows.Scan(&s.Name, &s.Passed, &s.Failed); err != nil {
			return nil, fmt.Errorf("scan section: %w", err)
		}
		rec.Sections = append(rec.Sections, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &rec, nil
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	return nil
}
