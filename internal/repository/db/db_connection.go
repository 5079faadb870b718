package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// InitDB opens/creates the mock API database and ensures tables exist.
// ":memory:" gives a private in-memory database; the pool is pinned to one
// connection so it stays the same database.
func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// Conservative pool settings for SQLite
	db.SetMaxOpenConns(1) // SQLite is not great with many writers
	db.SetMaxIdleConns(1)

	// Pragmas to improve reliability
	if _, err := db.Exec("PRAGMA journal_mode = WAL;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set PRAGMA journal_mode=WAL: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set PRAGMA foreign_keys=ON: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set PRAGMA busy_timeout=5000: %w", err)
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	// Fail fast if the DB cannot be reached
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

const sqliteDriverName = "sqlite"

const schemaUsers = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL
);
`

const schemaMotorModels = `
CREATE TABLE IF NOT EXISTS motor_models (
    id TEXT PRIMARY KEY,
    name TEXT UNIQUE NOT NULL,
    payload TEXT NOT NULL,
    created_ms INTEGER NOT NULL
);
`

const schemaDevices = `
CREATE TABLE IF NOT EXISTS devices (
    device_id TEXT PRIMARY KEY,
    name TEXT NOT NULL
);
`

const schemaMotorInstances = `
CREATE TABLE IF NOT EXISTS motor_instances (
    id TEXT PRIMARY KEY,
    model_id TEXT NOT NULL REFERENCES motor_models(id),
    device_id TEXT NOT NULL,
    name TEXT NOT NULL,
    location TEXT,
    install_date TEXT,
    asset_number TEXT,
    created_ms INTEGER NOT NULL,
    UNIQUE (device_id, name)
);
`

const schemaParameterMappings = `
CREATE TABLE IF NOT EXISTS parameter_mappings (
    instance_id TEXT NOT NULL REFERENCES motor_instances(id) ON DELETE CASCADE,
    parameter INTEGER NOT NULL,
    tag_id TEXT NOT NULL,
    scale_factor REAL NOT NULL,
    value_offset REAL NOT NULL,
    used_for_diagnosis BOOLEAN NOT NULL,
    PRIMARY KEY (instance_id, parameter)
);
`

const schemaOperationModes = `
CREATE TABLE IF NOT EXISTS operation_modes (
    instance_id TEXT NOT NULL REFERENCES motor_instances(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    description TEXT,
    trigger_tag_id TEXT NOT NULL,
    trigger_min REAL NOT NULL,
    trigger_max REAL NOT NULL,
    min_duration_ms INTEGER NOT NULL,
    max_duration_ms INTEGER NOT NULL,
    priority INTEGER NOT NULL,
    PRIMARY KEY (instance_id, name)
);
`

const schemaBaselines = `
CREATE TABLE IF NOT EXISTS baselines (
    id TEXT PRIMARY KEY,
    instance_id TEXT NOT NULL REFERENCES motor_instances(id) ON DELETE CASCADE,
    mode TEXT NOT NULL,
    start_ts INTEGER NOT NULL,
    end_ts INTEGER NOT NULL,
    status TEXT NOT NULL,
    requested_ms INTEGER NOT NULL,
    learned_ms INTEGER,
    UNIQUE (instance_id, mode)
);
`

func ensureSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for i, stmt := range []string{
		schemaUsers,
		schemaMotorModels,
		schemaDevices,
		schemaMotorInstances,
		schemaParameterMappings,
		schemaOperationModes,
		schemaBaselines,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}
