package bot

import (
	"github.com/yhdklf/tbasa/internal/accounts"
	"github.com/yhdklf/tbasa/internal/api"
	"github.com/yhdklf/tbasa/internal/cards"
)

// AccountResult is the outcome of processing one credential. Every failed
// call is captured here instead of being returned as an error.
type AccountResult struct {
	Credential accounts.Credential
	Name       string
	NameErr    error

	// Start
	Started  bool
	StartErr error
	Start    api.GameState
	Tasks    []api.Task

	// Tap
	Tapped   bool
	TapErr   error
	AfterTap api.GameState

	// Daily reward
	RewardClaimed bool
	ClaimErr      error

	// Upgrades
	Upgrade cards.Result
}

// Balance returns the balance the upgrade pass should start from: the tap
// response's balance when the tap succeeded, otherwise the start balance.
func (r *AccountResult) Balance() int64 {
	if r.Tapped {
		return r.AfterTap.TotalCoins
	}
	return r.Start.TotalCoins
}

// FirstError returns the first failure recorded for the account, if any.
func (r *AccountResult) FirstError() error {
	for _, err := range []error{r.StartErr, r.TapErr, r.ClaimErr} {
		if err != nil {
			return err
		}
	}
	return nil
}

// CycleSummary aggregates one pass over the credential list
type CycleSummary struct {
	ID        string
	Attempted int
	Started   int
	Results   []*AccountResult
}
