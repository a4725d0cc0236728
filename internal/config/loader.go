package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/yhdklf/tbasa/internal/bot"
	"gopkg.in/ini.v1"
)

const (
	DefaultBaseURL   = "https://app.ton.tsubasa-rivals.com"
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/115.0.0.0 Safari/537.36"

	sectionName = "UserSettings"
)

// LoadFromINI loads configuration from a Settings.ini file
func LoadFromINI(path string) (*bot.Config, error) {
	// User agents carry ';' so inline comments are not honoured.
	cfg, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	section := cfg.Section(sectionName)
	defaults := NewDefaultConfig()

	config := &bot.Config{}

	// Card upgrades
	config.EnableCardUpgrades = section.Key("enableCardUpgrades").MustBool(defaults.EnableCardUpgrades)
	config.MaxUpgradeCost = section.Key("maxUpgradeCost").MustInt64(defaults.MaxUpgradeCost)
	config.CardCatalog = section.Key("cardCatalog").MustString(defaults.CardCatalog)

	// Accounts
	config.DataFile = section.Key("dataFile").MustString(defaults.DataFile)

	// Game API
	config.BaseURL = section.Key("baseURL").MustString(defaults.BaseURL)
	config.LangCode = section.Key("langCode").MustString(defaults.LangCode)
	config.UserAgent = section.Key("userAgent").MustString(defaults.UserAgent)
	config.RequestTimeout = time.Duration(section.Key("requestTimeoutSeconds").MustInt(30)) * time.Second
	config.ProxyURL = section.Key("proxyURL").MustString(defaults.ProxyURL)

	// Pacing
	config.LoopInterval = time.Duration(section.Key("loopIntervalSeconds").MustInt(30)) * time.Second
	config.AccountDelay = time.Duration(section.Key("accountDelayMs").MustInt(1000)) * time.Millisecond

	// Journal
	config.JournalPath = section.Key("journalPath").MustString(defaults.JournalPath)

	// Display
	config.ClearScreen = section.Key("clearScreen").MustBool(defaults.ClearScreen)
	config.ShowBanner = section.Key("showBanner").MustBool(defaults.ShowBanner)

	// Logging
	config.LogLevel = section.Key("logLevel").MustString(defaults.LogLevel)
	config.LogFile = section.Key("logFile").MustString(defaults.LogFile)

	return config, nil
}

// NewDefaultConfig creates a config with default values
func NewDefaultConfig() *bot.Config {
	return &bot.Config{
		EnableCardUpgrades: true,
		MaxUpgradeCost:     500000,
		DataFile:           "data.txt",
		BaseURL:            DefaultBaseURL,
		LangCode:           "en",
		UserAgent:          DefaultUserAgent,
		RequestTimeout:     30 * time.Second,
		LoopInterval:       30 * time.Second,
		AccountDelay:       time.Second,
		ClearScreen:        true,
		ShowBanner:         true,
		LogLevel:           "INFO",
	}
}

// SaveToINI saves configuration to an INI file
func SaveToINI(config *bot.Config, path string) error {
	cfg := ini.Empty()
	section := cfg.Section(sectionName)

	// Card upgrades
	section.Key("enableCardUpgrades").SetValue(strconv.FormatBool(config.EnableCardUpgrades))
	section.Key("maxUpgradeCost").SetValue(strconv.FormatInt(config.MaxUpgradeCost, 10))
	section.Key("cardCatalog").SetValue(config.CardCatalog)

	// Accounts
	section.Key("dataFile").SetValue(config.DataFile)

	// Game API
	section.Key("baseURL").SetValue(config.BaseURL)
	section.Key("langCode").SetValue(config.LangCode)
	section.Key("userAgent").SetValue(config.UserAgent)
	section.Key("requestTimeoutSeconds").SetValue(fmt.Sprintf("%d", int(config.RequestTimeout/time.Second)))
	section.Key("proxyURL").SetValue(config.ProxyURL)

	// Pacing
	section.Key("loopIntervalSeconds").SetValue(fmt.Sprintf("%d", int(config.LoopInterval/time.Second)))
	section.Key("accountDelayMs").SetValue(fmt.Sprintf("%d", config.AccountDelay.Milliseconds()))

	// Journal
	section.Key("journalPath").SetValue(config.JournalPath)

	// Display
	section.Key("clearScreen").SetValue(strconv.FormatBool(config.ClearScreen))
	section.Key("showBanner").SetValue(strconv.FormatBool(config.ShowBanner))

	// Logging
	section.Key("logLevel").SetValue(config.LogLevel)
	section.Key("logFile").SetValue(config.LogFile)

	return cfg.SaveTo(path)
}

// LoadOrCreate loads path, writing a default Settings.ini there first when it
// does not exist yet.
func LoadOrCreate(path string) (*bot.Config, bool, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		defaults := NewDefaultConfig()
		if err := SaveToINI(defaults, path); err != nil {
			return nil, false, fmt.Errorf("failed to write default config: %w", err)
		}
		return defaults, true, nil
	}

	config, err := LoadFromINI(path)
	return config, false, err
}
