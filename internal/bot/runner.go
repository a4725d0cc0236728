package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/yhdklf/tbasa/internal/accounts"
	"github.com/yhdklf/tbasa/internal/api"
	"github.com/yhdklf/tbasa/internal/cards"
	"github.com/yhdklf/tbasa/internal/database"
	"github.com/yhdklf/tbasa/internal/logging"
)

// GameClient is the subset of the API client the runner drives
type GameClient interface {
	Start(ctx context.Context, session api.Session, token string) (*api.StartResult, api.Session, error)
	Tap(ctx context.Context, session api.Session, token string, count int64) (*api.GameState, error)
	ClaimDailyReward(ctx context.Context, session api.Session, token string) (bool, error)
}

// Journal receives run bookkeeping. database.DB satisfies it.
type Journal interface {
	StartCycle(cycleID string, accountsTotal int) error
	CompleteCycle(cycleID string, accountsOK int) error
	RecordAccountRun(run *database.AccountRun) (int64, error)
}

// Waiter blocks for the inter-cycle interval
type Waiter interface {
	Wait(d time.Duration)
}

// Runner processes the credential list one account at a time, forever.
type Runner struct {
	config  *Config
	client  GameClient
	catalog *cards.Catalog
	journal Journal
	logger  *logging.Logger
	waiter  Waiter

	sleep      func(time.Duration)
	newCycleID func() string
}

// Option customises a Runner
type Option func(*Runner)

// WithJournal records every cycle and account run in j
func WithJournal(j Journal) Option {
	return func(r *Runner) { r.journal = j }
}

// WithLogger replaces the default "Runner" logger
func WithLogger(l *logging.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// WithWaiter replaces the console countdown between cycles
func WithWaiter(w Waiter) Option {
	return func(r *Runner) { r.waiter = w }
}

// WithSleep replaces the per-account pacing sleep
func WithSleep(sleep func(time.Duration)) Option {
	return func(r *Runner) { r.sleep = sleep }
}

// NewRunner creates a runner. catalog may be nil for the built-in cards.
func NewRunner(config *Config, client GameClient, catalog *cards.Catalog, opts ...Option) *Runner {
	if catalog == nil {
		catalog = cards.DefaultCatalog()
	}

	r := &Runner{
		config:     config,
		client:     client,
		catalog:    catalog,
		logger:     logging.NewLogger("Runner"),
		sleep:      time.Sleep,
		newCycleID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.waiter == nil {
		r.waiter = NewCountdown(nil)
	}
	return r
}

// LogConfiguration echoes the upgrade settings at startup
func (r *Runner) LogConfiguration() {
	r.logger.Info("Configuration:")
	r.logger.Infof("Card upgrades enabled: %t", r.config.EnableCardUpgrades)
	r.logger.Infof("Max cost for upgrading: %d", r.config.MaxUpgradeCost)
}

// Run loops over creds until ctx is cancelled. Cancellation is only observed
// between cycles; calls in flight are never interrupted.
func (r *Runner) Run(ctx context.Context, creds []accounts.Credential) error {
	r.logger.Info("Starting Client...")

	var session api.Session
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		_, session = r.RunCycle(ctx, session, creds)

		r.waiter.Wait(r.config.LoopInterval)
	}
}

// RunCycle processes every credential once, in order, and returns the
// session to carry into the next cycle.
func (r *Runner) RunCycle(ctx context.Context, session api.Session, creds []accounts.Credential) (*CycleSummary, api.Session) {
	summary := &CycleSummary{ID: r.newCycleID()}

	if r.journal != nil {
		if err := r.journal.StartCycle(summary.ID, len(creds)); err != nil {
			r.logger.Error("Failed to journal cycle start", err)
		}
	}

	for _, cred := range creds {
		startedAt := time.Now()

		var result *AccountResult
		result, session = r.ProcessAccount(ctx, session, cred)

		summary.Attempted++
		if result.Started {
			summary.Started++
		}
		summary.Results = append(summary.Results, result)

		r.journalAccount(summary.ID, result, startedAt)

		r.sleep(r.config.AccountDelay)
	}

	if r.journal != nil {
		if err := r.journal.CompleteCycle(summary.ID, summary.Started); err != nil {
			r.logger.Error("Failed to journal cycle completion", err)
		}
	}

	return summary, session
}

// ProcessAccount runs start, tap, daily claim and the upgrade pass for one
// credential. It never returns an error: failures are logged and recorded
// in the result.
func (r *Runner) ProcessAccount(ctx context.Context, session api.Session, cred accounts.Credential) (*AccountResult, api.Session) {
	result := &AccountResult{Credential: cred}

	start, next, err := r.client.Start(ctx, session, cred.Token)
	if err != nil {
		result.StartErr = err
		r.logger.Error("Error calling start API", err)
		return result, session
	}
	session = next
	result.Started = true
	result.Start = start.State
	result.Tasks = start.PendingTasks

	name, err := accounts.DisplayName(cred.Token)
	if err != nil {
		result.NameErr = err
		r.logger.Errorf("Error getting account name for account %d: %v", cred.Index, err)
		name = accounts.UnknownName
	}
	result.Name = name

	state := start.State
	r.logger.Infof("Account %d | %s", cred.Index, name)
	r.logger.Infof("Balance: %d", state.TotalCoins)
	r.logger.Infof("Energy: %d/%d", state.Energy, state.MaxEnergy)
	r.logger.Infof("Coins per tap: %d", state.CoinsPerTap)
	r.logger.Infof("Profit per second: %v", state.ProfitPerSecond)

	for _, task := range start.PendingTasks {
		r.logger.Infof("Performing task: %s", task.ID)
	}

	if state.Energy > 0 {
		tapped, err := r.client.Tap(ctx, session, cred.Token, state.Energy)
		if err != nil {
			result.TapErr = err
			r.logger.Error("Error pressing button", err)
		} else {
			result.Tapped = true
			result.AfterTap = *tapped
			r.logger.Infof("Tap successful | Remaining Energy: %d/%d | Balance: %d",
				tapped.Energy, tapped.MaxEnergy, tapped.TotalCoins)
		}
	}

	claimed, err := r.client.ClaimDailyReward(ctx, session, cred.Token)
	if err != nil {
		result.ClaimErr = err
		r.logger.Error("Error claiming daily reward", err)
	}
	result.RewardClaimed = claimed
	if claimed {
		r.logger.Info("Successfully claimed daily reward")
	} else {
		r.logger.Info("You have already claimed your reward today")
	}

	result.Upgrade = r.levelUpCards(result.Balance())
	r.logger.Infof("Finished upgrading all eligible cards | Balance: %d", result.Upgrade.Balance)

	return result, session
}

// levelUpCards runs the greedy upgrade pass and logs each purchase
func (r *Runner) levelUpCards(balance int64) cards.Result {
	policy := cards.Policy{
		Enabled: r.config.EnableCardUpgrades,
		MaxCost: r.config.MaxUpgradeCost,
	}

	res := cards.Upgrade(balance, r.catalog, policy)
	if !policy.Enabled {
		r.logger.Info("Card upgrades are disabled in config.")
		return res
	}

	for _, p := range res.Purchases {
		r.logger.Infof("Upgrading card | %s | New level: %d | Remaining balance: %d",
			p.Card.Name, p.Card.Level, p.Remaining)
	}

	if len(res.Purchases) > 0 {
		r.logger.Info("Successfully upgraded all eligible cards.")
	} else {
		r.logger.Info("No cards are eligible for upgrade.")
	}

	return res
}

func (r *Runner) journalAccount(cycleID string, result *AccountResult, startedAt time.Time) {
	if r.journal == nil {
		return
	}

	run := &database.AccountRun{
		CycleID:        cycleID,
		Position:       result.Credential.Index,
		Started:        result.Started,
		Tapped:         result.Tapped,
		RewardClaimed:  result.RewardClaimed,
		UpgradesBought: len(result.Upgrade.Purchases),
		Status:         database.RunStatusCompleted,
		StartedAt:      startedAt,
		CompletedAt:    time.Now(),
	}
	if !result.Started {
		run.Status = database.RunStatusSkipped
	}
	if result.Name != "" {
		name := result.Name
		run.DisplayName = &name
	}
	if err := result.FirstError(); err != nil {
		msg := err.Error()
		run.ErrorMessage = &msg
	}

	if _, err := r.journal.RecordAccountRun(run); err != nil {
		r.logger.Error(fmt.Sprintf("Failed to journal account %d", result.Credential.Index), err)
	}
}
