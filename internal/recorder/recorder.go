// Package recorder persists warning computer runs to SQLite: the injected
// parameters, the per-tick outputs and the non-volatile latches that must
// survive a power cycle.
package recorder

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/fwcsim/fwc/internal/params"
	"github.com/fwcsim/fwc/internal/runtime"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id       TEXT PRIMARY KEY,
	started_at   TEXT NOT NULL,
	config_json  TEXT NOT NULL,
	closed_at    TEXT
);

CREATE TABLE IF NOT EXISTS ticks (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id       TEXT NOT NULL,
	seq          INTEGER NOT NULL,
	delta_ms     INTEGER NOT NULL,
	outputs_json TEXT NOT NULL,
	created_at   TEXT NOT NULL,
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);

CREATE TABLE IF NOT EXISTS injections (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id         TEXT NOT NULL,
	seq            INTEGER NOT NULL,
	injection_json TEXT NOT NULL,
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);

CREATE TABLE IF NOT EXISTS nvm (
	key          TEXT PRIMARY KEY,
	value        INTEGER NOT NULL,
	updated_at   TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_ticks_run ON ticks(run_id, seq);
CREATE INDEX IF NOT EXISTS idx_injections_run ON injections(run_id, seq);
`
// #endregion schema

// #region types

// RunRecord describes one recorded run.
type RunRecord struct {
	RunID     string
	StartedAt time.Time
	Config    runtime.Config
	ClosedAt  time.Time
}

// TickRecord is one recorded tick with its outputs.
type TickRecord struct {
	Seq       int
	Delta     time.Duration
	Outputs   runtime.Snapshot
	CreatedAt time.Time
}

// InjectionRecord is one recorded parameter write, tagged with the tick
// it preceded.
type InjectionRecord struct {
	Seq       int
	Injection params.Injection
}

// #endregion types

// #region store

// Store manages the trace database.
type Store struct {
	db *sql.DB
}

// Open opens a SQLite trace database and runs migrations.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other packages.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion store

// #region runs

// BeginRun creates a run row and returns its id.
func (s *Store) BeginRun(cfg runtime.Config) (string, error) {
	id := uuid.New().String()
	cfgJSON, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO runs (run_id, started_at, config_json) VALUES (?, ?, ?)`,
		id, time.Now().UTC().Format(time.RFC3339Nano), string(cfgJSON),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	return id, nil
}

// CloseRun marks a run as finished.
func (s *Store) CloseRun(runID string) error {
	res, err := s.db.Exec(
		`UPDATE runs SET closed_at = ? WHERE run_id = ?`,
		time.Now().UTC().Format(time.RFC3339Nano), runID,
	)
	if err != nil {
		return fmt.Errorf("close run: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("run %s not found", runID)
	}
	return nil
}

// GetRun loads a single run by id.
func (s *Store) GetRun(runID string) (RunRecord, error) {
	var rec RunRecord
	var startedStr, cfgJSON string
	var closedStr sql.NullString

	err := s.db.QueryRow(
		`SELECT run_id, started_at, config_json, closed_at FROM runs WHERE run_id = ?`,
		runID,
	).Scan(&rec.RunID, &startedStr, &cfgJSON, &closedStr)
	if err == sql.ErrNoRows {
		return rec, fmt.Errorf("run %s not found", runID)
	}
	if err != nil {
		return rec, fmt.Errorf("get run: %w", err)
	}
	rec.StartedAt, _ = time.Parse(time.RFC3339Nano, startedStr)
	if err := json.Unmarshal([]byte(cfgJSON), &rec.Config); err != nil {
		return rec, fmt.Errorf("unmarshal config: %w", err)
	}
	if closedStr.Valid {
		rec.ClosedAt, _ = time.Parse(time.RFC3339Nano, closedStr.String)
	}
	return rec, nil
}

// ListRuns returns the most recent runs.
func (s *Store) ListRuns(limit int) ([]RunRecord, error) {
	rows, err := s.db.Query(
		`SELECT run_id, started_at, config_json, closed_at
		 FROM runs ORDER BY started_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var rec RunRecord
		var startedStr, cfgJSON string
		var closedStr sql.NullString

		if err := rows.Scan(&rec.RunID, &startedStr, &cfgJSON, &closedStr); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		rec.StartedAt, _ = time.Parse(time.RFC3339Nano, startedStr)
		if err := json.Unmarshal([]byte(cfgJSON), &rec.Config); err != nil {
			return nil, fmt.Errorf("unmarshal config: %w", err)
		}
		if closedStr.Valid {
			rec.ClosedAt, _ = time.Parse(time.RFC3339Nano, closedStr.String)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// #endregion runs

// #region ticks

// RecordTick stores one tick and the injections that preceded it
// atomically.
func (s *Store) RecordTick(runID string, seq int, delta time.Duration, outputs runtime.Snapshot, injections []params.Injection) error {
	outJSON, err := json.Marshal(outputs)
	if err != nil {
		return fmt.Errorf("marshal outputs: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, in := range injections {
		inJSON, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal injection: %w", err)
		}
		_, err = tx.Exec(
			`INSERT INTO injections (run_id, seq, injection_json) VALUES (?, ?, ?)`,
			runID, seq, string(inJSON),
		)
		if err != nil {
			return fmt.Errorf("insert injection: %w", err)
		}
	}

	_, err = tx.Exec(
		`INSERT INTO ticks (run_id, seq, delta_ms, outputs_json, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		runID, seq, delta.Milliseconds(), string(outJSON),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert tick: %w", err)
	}

	return tx.Commit()
}

// Ticks returns the recorded ticks of a run in sequence order.
func (s *Store) Ticks(runID string) ([]TickRecord, error) {
	rows, err := s.db.Query(
		`SELECT seq, delta_ms, outputs_json, created_at
		 FROM ticks WHERE run_id = ? ORDER BY seq`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("list ticks: %w", err)
	}
	defer rows.Close()

	var records []TickRecord
	for rows.Next() {
		var rec TickRecord
		var deltaMs int64
		var outJSON, createdStr string

		if err := rows.Scan(&rec.Seq, &deltaMs, &outJSON, &createdStr); err != nil {
			return nil, fmt.Errorf("scan tick: %w", err)
		}
		rec.Delta = time.Duration(deltaMs) * time.Millisecond
		if err := json.Unmarshal([]byte(outJSON), &rec.Outputs); err != nil {
			return nil, fmt.Errorf("unmarshal outputs: %w", err)
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Injections returns the recorded injections of a run in sequence order.
func (s *Store) Injections(runID string) ([]InjectionRecord, error) {
	rows, err := s.db.Query(
		`SELECT seq, injection_json FROM injections WHERE run_id = ? ORDER BY seq, id`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("list injections: %w", err)
	}
	defer rows.Close()

	var records []InjectionRecord
	for rows.Next() {
		var rec InjectionRecord
		var inJSON string
		if err := rows.Scan(&rec.Seq, &inJSON); err != nil {
			return nil, fmt.Errorf("scan injection: %w", err)
		}
		if err := json.Unmarshal([]byte(inJSON), &rec.Injection); err != nil {
			return nil, fmt.Errorf("unmarshal injection: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// #endregion ticks

// #region nvm

// SaveNvm upserts the non-volatile latches.
func (s *Store) SaveNvm(state map[string]bool) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for key, value := range state {
		v := 0
		if value {
			v = 1
		}
		_, err = tx.Exec(
			`INSERT INTO nvm (key, value, updated_at) VALUES (?, ?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
			key, v, now,
		)
		if err != nil {
			return fmt.Errorf("upsert nvm %s: %w", key, err)
		}
	}
	return tx.Commit()
}

// LoadNvm reads the persisted non-volatile latches.
func (s *Store) LoadNvm() (map[string]bool, error) {
	rows, err := s.db.Query(`SELECT key, value FROM nvm`)
	if err != nil {
		return nil, fmt.Errorf("load nvm: %w", err)
	}
	defer rows.Close()

	state := make(map[string]bool)
	for rows.Next() {
		var key string
		var value int
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan nvm: %w", err)
		}
		state[key] = value != 0
	}
	return state, rows.Err()
}

// #endregion nvm
