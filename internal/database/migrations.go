package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/yhdklf/tbasa/internal/logging"
)

// Migration represents a database schema migration
type Migration struct {
	Version     int
	Description string
	Up          func(*sql.Tx) error
	Down        func(*sql.Tx) error
}

// migrations is the ordered list of all database migrations
var migrations = []Migration{
	{
		Version:     1,
		Description: "Create schema_version table",
		Up:          migration001Up,
		Down:        migration001Down,
	},
	{
		Version:     2,
		Description: "Create cycles table",
		Up:          migration002Up,
		Down:        migration002Down,
	},
	{
		Version:     3,
		Description: "Create account_runs table",
		Up:          migration003Up,
		Down:        migration003Down,
	},
}

// LatestVersion is the schema version after every migration has run
func LatestVersion() int {
	return migrations[len(migrations)-1].Version
}

var migrationLog = logging.NewLogger("Database")

// RunMigrations runs all pending database migrations
func (db *DB) RunMigrations() error {
	currentVersion, err := db.getCurrentVersion()
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}

	migrationLog.Debugf("Current journal version: %d", currentVersion)

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		migrationLog.Debugf("Running migration %d: %s", migration.Version, migration.Description)

		err := db.ExecTx(func(tx *sql.Tx) error {
			if err := migration.Up(tx); err != nil {
				return fmt.Errorf("migration %d failed: %w", migration.Version, err)
			}

			_, err := tx.Exec(`
				INSERT INTO schema_version (version, description, applied_at)
				VALUES (?, ?, ?)
			`, migration.Version, migration.Description, time.Now())

			return err
		})

		if err != nil {
			return err
		}
	}

	return nil
}

// getCurrentVersion returns the current schema version
func (db *DB) getCurrentVersion() (int, error) {
	var tableExists bool
	err := db.conn.QueryRow(`
		SELECT COUNT(*) > 0
		FROM sqlite_master
		WHERE type='table' AND name='schema_version'
	`).Scan(&tableExists)

	if err != nil {
		return 0, err
	}

	if !tableExists {
		return 0, nil
	}

	var version int
	err = db.conn.QueryRow(`
		SELECT COALESCE(MAX(version), 0)
		FROM schema_version
	`).Scan(&version)

	if err != nil {
		return 0, err
	}

	return version, nil
}

// Migration 001: Schema version tracking table
func migration001Up(tx *sql.Tx) error {
	_, err := tx.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			version INTEGER NOT NULL UNIQUE,
			description TEXT NOT NULL,
			applied_at DATETIME NOT NULL
		)
	`)
	return err
}

func migration001Down(tx *sql.Tx) error {
	_, err := tx.Exec(`DROP TABLE IF EXISTS schema_version`)
	return err
}

// Migration 002: one row per pass over the credential file
func migration002Up(tx *sql.Tx) error {
	_, err := tx.Exec(`
		CREATE TABLE cycles (
			id TEXT PRIMARY KEY,
			started_at DATETIME NOT NULL,
			completed_at DATETIME,
			accounts_total INTEGER NOT NULL DEFAULT 0,
			accounts_ok INTEGER NOT NULL DEFAULT 0
		);

		CREATE INDEX idx_cycles_started ON cycles(started_at);
	`)
	return err
}

func migration002Down(tx *sql.Tx) error {
	_, err := tx.Exec(`
		DROP INDEX IF EXISTS idx_cycles_started;
		DROP TABLE IF EXISTS cycles;
	`)
	return err
}

// Migration 003: one row per credential per cycle. Step outcomes only.
func migration003Up(tx *sql.Tx) error {
	_, err := tx.Exec(`
		CREATE TABLE account_runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			cycle_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			display_name TEXT,

			-- Step outcomes
			started INTEGER NOT NULL DEFAULT 0,
			tapped INTEGER NOT NULL DEFAULT 0,
			reward_claimed INTEGER NOT NULL DEFAULT 0,
			upgrades_bought INTEGER NOT NULL DEFAULT 0,

			status TEXT NOT NULL,
			error_message TEXT,
			started_at DATETIME NOT NULL,
			completed_at DATETIME NOT NULL,

			FOREIGN KEY (cycle_id) REFERENCES cycles(id) ON DELETE CASCADE
		);

		CREATE INDEX idx_account_runs_cycle ON account_runs(cycle_id);
		CREATE INDEX idx_account_runs_status ON account_runs(status);
	`)
	return err
}

func migration003Down(tx *sql.Tx) error {
	_, err := tx.Exec(`
		DROP INDEX IF EXISTS idx_account_runs_status;
		DROP INDEX IF EXISTS idx_account_runs_cycle;
		DROP TABLE IF EXISTS account_runs;
	`)
	return err
}
