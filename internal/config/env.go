package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/yhdklf/tbasa/internal/bot"
)

// LoadDotEnv loads variables from the given .env files into the process
// environment. Missing files are not an error; existing variables win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	var present []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	if len(present) == 0 {
		return nil
	}
	return godotenv.Load(present...)
}

// ApplyEnv overrides config values from TSUBASA_* environment variables.
// Unset or unparsable variables leave the current value alone.
func ApplyEnv(config *bot.Config) {
	if v, ok := lookupBool("TSUBASA_ENABLE_CARD_UPGRADES"); ok {
		config.EnableCardUpgrades = v
	}
	if v, ok := lookupInt("TSUBASA_MAX_UPGRADE_COST"); ok {
		config.MaxUpgradeCost = v
	}
	if v := os.Getenv("TSUBASA_CARD_CATALOG"); v != "" {
		config.CardCatalog = v
	}
	if v := os.Getenv("TSUBASA_DATA_FILE"); v != "" {
		config.DataFile = v
	}
	if v := os.Getenv("TSUBASA_BASE_URL"); v != "" {
		config.BaseURL = strings.TrimRight(v, "/")
	}
	if v := os.Getenv("TSUBASA_PROXY_URL"); v != "" {
		config.ProxyURL = v
	}
	if v, ok := lookupInt("TSUBASA_LOOP_INTERVAL_SECONDS"); ok {
		config.LoopInterval = time.Duration(v) * time.Second
	}
	if v, ok := lookupInt("TSUBASA_ACCOUNT_DELAY_MS"); ok {
		config.AccountDelay = time.Duration(v) * time.Millisecond
	}
	if v := os.Getenv("TSUBASA_JOURNAL_PATH"); v != "" {
		config.JournalPath = v
	}
	if v := os.Getenv("TSUBASA_LOG_LEVEL"); v != "" {
		config.LogLevel = v
	}
	if v := os.Getenv("TSUBASA_LOG_FILE"); v != "" {
		config.LogFile = v
	}
}

func lookupInt(key string) (int64, bool) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func lookupBool(key string) (bool, bool) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return false, false
	}
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, false
	}
	return v, true
}
