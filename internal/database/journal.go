package database

import (
	"database/sql"
	"fmt"
	"time"
)

// Run journal operations

// StartCycle inserts a new cycle row
func (db *DB) StartCycle(cycleID string, accountsTotal int) error {
	return db.ExecTx(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO cycles (id, started_at, accounts_total)
			VALUES (?, ?, ?)
		`, cycleID, time.Now(), accountsTotal)
		if err != nil {
			return fmt.Errorf("failed to insert cycle: %w", err)
		}
		return nil
	})
}

// CompleteCycle stamps the completion time and success count of a cycle
func (db *DB) CompleteCycle(cycleID string, accountsOK int) error {
	return db.ExecTx(func(tx *sql.Tx) error {
		result, err := tx.Exec(`
			UPDATE cycles
			SET completed_at = ?,
				accounts_ok = ?
			WHERE id = ?
		`, time.Now(), accountsOK, cycleID)
		if err != nil {
			return err
		}

		n, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("cycle %s not found", cycleID)
		}
		return nil
	})
}

// RecordAccountRun inserts the outcome of one credential and returns its ID
func (db *DB) RecordAccountRun(run *AccountRun) (int64, error) {
	var runID int64
	err := db.ExecTx(func(tx *sql.Tx) error {
		result, err := tx.Exec(`
			INSERT INTO account_runs (
				cycle_id, position, display_name,
				started, tapped, reward_claimed, upgrades_bought,
				status, error_message, started_at, completed_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, run.CycleID, run.Position, run.DisplayName,
			run.Started, run.Tapped, run.RewardClaimed, run.UpgradesBought,
			run.Status, run.ErrorMessage, run.StartedAt, run.CompletedAt)

		if err != nil {
			return fmt.Errorf("failed to insert account run: %w", err)
		}

		runID, err = result.LastInsertId()
		return err
	})

	if err != nil {
		return 0, err
	}

	run.ID = runID
	return runID, nil
}

// GetCycle retrieves a cycle by ID
func (db *DB) GetCycle(cycleID string) (*Cycle, error) {
	cycle := &Cycle{}
	err := db.conn.QueryRow(`
		SELECT id, started_at, completed_at, accounts_total, accounts_ok
		FROM cycles
		WHERE id = ?
	`, cycleID).Scan(
		&cycle.ID, &cycle.StartedAt, &cycle.CompletedAt,
		&cycle.AccountsTotal, &cycle.AccountsOK,
	)

	if err != nil {
		return nil, err
	}

	return cycle, nil
}

// GetRecentCycles returns the most recent cycles, newest first
func (db *DB) GetRecentCycles(limit int) ([]*Cycle, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.conn.Query(`
		SELECT id, started_at, completed_at, accounts_total, accounts_ok
		FROM cycles
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cycles := []*Cycle{}
	for rows.Next() {
		cycle := &Cycle{}
		err := rows.Scan(
			&cycle.ID, &cycle.StartedAt, &cycle.CompletedAt,
			&cycle.AccountsTotal, &cycle.AccountsOK,
		)
		if err != nil {
			return nil, err
		}
		cycles = append(cycles, cycle)
	}

	return cycles, rows.Err()
}

// GetAccountRuns returns the runs of a cycle in file order
func (db *DB) GetAccountRuns(cycleID string) ([]*AccountRun, error) {
	rows, err := db.conn.Query(`
		SELECT
			id, cycle_id, position, display_name,
			started, tapped, reward_claimed, upgrades_bought,
			status, error_message, started_at, completed_at
		FROM account_runs
		WHERE cycle_id = ?
		ORDER BY position ASC
	`, cycleID)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := []*AccountRun{}
	for rows.Next() {
		run := &AccountRun{}
		err := rows.Scan(
			&run.ID, &run.CycleID, &run.Position, &run.DisplayName,
			&run.Started, &run.Tapped, &run.RewardClaimed, &run.UpgradesBought,
			&run.Status, &run.ErrorMessage, &run.StartedAt, &run.CompletedAt,
		)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}
