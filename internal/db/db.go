// Package db appends finished placement runs to a sqlite file so coverage
// can be compared across traces and parameter sweeps. It is a write-only
// artifact sink invoked after a run completes; the planner itself never
// reads from it.
package db

import (
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// DB wraps the run-history database handle.
type DB struct {
	*sql.DB
}

// Open opens (creating if needed) the run store at path and applies any
// pending schema migrations.
func Open(path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open run store: %w", err)
	}

	db := &DB{sqlDB}
	if err := db.migrateUp(); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// migrateUp applies the embedded migrations up to the latest version.
func (db *DB) migrateUp() error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}
	driver, err := migratesqlite.WithInstance(db.DB, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up failed: %w", err)
	}
	return nil
}

// Run is one finished optimization run.
type Run struct {
	RunID       string
	TraceFile   string
	TargetCount int
	UnitCount   int
	Radius      float64
	Strategy    string
	Covered     int
	Total       int
	Percent     float64
	Units       interface{} // JSON-encoded into units_json
	Scores      interface{} // JSON-encoded into scores_json
	CreatedAt   time.Time
}

// RecordRun inserts one run row. A missing RunID is filled with a fresh
// uuid; a zero CreatedAt is filled with the current time. It returns the
// run id actually stored.
func (db *DB) RecordRun(run Run) (string, error) {
	if run.RunID == "" {
		run.RunID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	unitsJSON, err := json.Marshal(run.Units)
	if err != nil {
		return "", fmt.Errorf("marshal units: %w", err)
	}
	scoresJSON, err := json.Marshal(run.Scores)
	if err != nil {
		return "", fmt.Errorf("marshal scores: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO runs (
			run_id, trace_file, target_count, unit_count, range_m,
			strategy, covered, total, coverage_pct,
			units_json, scores_json, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RunID, run.TraceFile, run.TargetCount, run.UnitCount, run.Radius,
		run.Strategy, run.Covered, run.Total, run.Percent,
		string(unitsJSON), string(scoresJSON), run.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	return run.RunID, nil
}
