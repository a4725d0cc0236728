package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Session carries per-run authentication state. It is a value: calls that
// learn something new return an updated copy instead of mutating shared state.
type Session struct {
	MasterHash string
}

// withMasterHash returns s with hash applied; an empty hash leaves s unchanged.
func (s Session) withMasterHash(hash string) Session {
	if hash == "" {
		return s
	}
	s.MasterHash = hash
	return s
}

// GameState is the player snapshot returned by start and tap.
type GameState struct {
	TotalCoins      int64
	Energy          int64
	MaxEnergy       int64
	CoinsPerTap     int64
	ProfitPerSecond float64
}

// TaskID accepts both numeric and string ids.
type TaskID string

func (id *TaskID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = TaskID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("task id: %w", err)
	}
	*id = TaskID(n.String())
	return nil
}

// Task status values reported in task_info.
const (
	TaskStatusPending = 0
	TaskStatusActive  = 1
)

// Task is one entry of the start response's task list.
type Task struct {
	ID     TaskID `json:"id"`
	Status int    `json:"status"`
}

// Open reports whether the task is still pending or active.
func (t Task) Open() bool {
	return t.Status == TaskStatusPending || t.Status == TaskStatusActive
}

// StartResult is the decoded start response.
type StartResult struct {
	State        GameState
	PendingTasks []Task
}

// Wire schemas

type startRequest struct {
	LangCode string `json:"lang_code"`
	InitData string `json:"initData"`
}

type tapRequest struct {
	TapCount int64  `json:"tapCount"`
	InitData string `json:"initData"`
}

type claimRequest struct {
	InitData string `json:"initData"`
}

type userStats struct {
	TotalCoins      int64   `json:"total_coins"`
	Energy          int64   `json:"energy"`
	MaxEnergy       int64   `json:"max_energy"`
	CoinsPerTap     int64   `json:"coins_per_tap"`
	ProfitPerSecond float64 `json:"profit_per_second"`
}

type gameData struct {
	User *userStats `json:"user"`
}

type startResponse struct {
	GameData   *gameData `json:"game_data"`
	MasterHash string    `json:"master_hash"`
	TaskInfo   []Task    `json:"task_info"`
}

type tapResponse struct {
	GameData *gameData `json:"game_data"`
}

func (g *gameData) state() (GameState, error) {
	if g == nil {
		return GameState{}, fmt.Errorf("%w: missing game_data", ErrMalformed)
	}
	if g.User == nil {
		return GameState{}, fmt.Errorf("%w: missing game_data.user", ErrMalformed)
	}
	return GameState{
		TotalCoins:      g.User.TotalCoins,
		Energy:          g.User.Energy,
		MaxEnergy:       g.User.MaxEnergy,
		CoinsPerTap:     g.User.CoinsPerTap,
		ProfitPerSecond: g.User.ProfitPerSecond,
	}, nil
}
