package bot

import (
	"fmt"
	"net/url"
	"time"
)

// Config holds the process-wide settings read once at startup. It is never
// mutated after Validate succeeds.
type Config struct {
	// Card upgrades
	EnableCardUpgrades bool
	MaxUpgradeCost     int64
	CardCatalog        string // optional YAML catalog; empty uses the built-in one

	// Accounts
	DataFile string // one session token per line

	// Game API
	BaseURL        string
	LangCode       string
	UserAgent      string
	RequestTimeout time.Duration
	ProxyURL       string // http, https or socks5; empty for direct

	// Pacing
	LoopInterval time.Duration // countdown between passes over the account list
	AccountDelay time.Duration // pause after each account

	// Run journal
	JournalPath string // sqlite file; empty disables the journal

	// Display
	ClearScreen bool
	ShowBanner  bool

	// Logging
	LogLevel string // "DEBUG", "INFO", "WARNING", "ERROR"
	LogFile  string // optional rotated log file
}

// Validate rejects settings the runner cannot honour.
func (c *Config) Validate() error {
	if c.MaxUpgradeCost < 0 {
		return fmt.Errorf("maxUpgradeCost must be >= 0, got %d", c.MaxUpgradeCost)
	}
	if c.DataFile == "" {
		return fmt.Errorf("dataFile cannot be empty")
	}
	if c.BaseURL == "" {
		return fmt.Errorf("baseURL cannot be empty")
	}
	if _, err := url.ParseRequestURI(c.BaseURL); err != nil {
		return fmt.Errorf("invalid baseURL %q: %w", c.BaseURL, err)
	}
	if c.LoopInterval < 0 {
		return fmt.Errorf("loop interval must be >= 0, got %s", c.LoopInterval)
	}
	if c.AccountDelay < 0 {
		return fmt.Errorf("account delay must be >= 0, got %s", c.AccountDelay)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be > 0, got %s", c.RequestTimeout)
	}

	if c.ProxyURL != "" {
		u, err := url.Parse(c.ProxyURL)
		if err != nil {
			return fmt.Errorf("invalid proxyURL: %w", err)
		}
		switch u.Scheme {
		case "http", "https", "socks5":
		default:
			return fmt.Errorf("unsupported proxy scheme: %q", u.Scheme)
		}
	}

	return nil
}
