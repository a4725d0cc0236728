package database

import (
	"time"
)

// Account run statuses
const (
	RunStatusCompleted = "completed" // start succeeded; later steps may still have failed
	RunStatusSkipped   = "skipped"   // start failed, nothing else was attempted
)

// Cycle is one pass over the credential file
type Cycle struct {
	ID            string     `db:"id"`
	StartedAt     time.Time  `db:"started_at"`
	CompletedAt   *time.Time `db:"completed_at"`
	AccountsTotal int        `db:"accounts_total"`
	AccountsOK    int        `db:"accounts_ok"`
}

// AccountRun records which steps succeeded for one credential in one cycle.
// It carries no balances.
type AccountRun struct {
	ID             int64     `db:"id"`
	CycleID        string    `db:"cycle_id"`
	Position       int       `db:"position"`
	DisplayName    *string   `db:"display_name"`
	Started        bool      `db:"started"`
	Tapped         bool      `db:"tapped"`
	RewardClaimed  bool      `db:"reward_claimed"`
	UpgradesBought int       `db:"upgrades_bought"`
	Status         string    `db:"status"`
	ErrorMessage   *string   `db:"error_message"`
	StartedAt      time.Time `db:"started_at"`
	CompletedAt    time.Time `db:"completed_at"`
}
