package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"TickerLens/internal/model"
)

// SQLiteRecorder journals snapshot metadata to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external readers don't block journal writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS snapshots (
			id          TEXT PRIMARY KEY,
			timestamp   INTEGER NOT NULL,
			symbol      TEXT NOT NULL,
			bars        INTEGER,
			headlines   INTEGER,
			has_cloud   INTEGER,
			diagnostic  TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_ts ON snapshots(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_symbol ON snapshots(symbol)`,
	}
	for _, stmt := range stmts {
		if _, err := r.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec migration: %w", err)
		}
	}
	return nil
}

// RecordSnapshot journals one published snapshot.
func (r *SQLiteRecorder) RecordSnapshot(snap *model.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	bars := 0
	if !snap.Price.Placeholder && len(snap.Price.Lines) > 0 {
		bars = len(snap.Price.Lines[0].Y)
	}
	hasCloud := 0
	if !snap.WordCloud.Empty() {
		hasCloud = 1
	}

	_, err := r.db.Exec(
		`INSERT OR REPLACE INTO snapshots (id, timestamp, symbol, bars, headlines, has_cloud, diagnostic)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		snap.ID, time.Now().Unix(), snap.Symbol, bars, len(snap.Headlines), hasCloud, snap.Diagnostic,
	)
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
