package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/yhdklf/tbasa/internal/accounts"
	"github.com/yhdklf/tbasa/internal/api"
	"github.com/yhdklf/tbasa/internal/bot"
	"github.com/yhdklf/tbasa/internal/cards"
	"github.com/yhdklf/tbasa/internal/config"
	"github.com/yhdklf/tbasa/internal/database"
	"github.com/yhdklf/tbasa/internal/logging"
)

func main() {
	configPath := flag.String("config", "Settings.ini", "Path to settings file (created with defaults if missing)")
	dataPath := flag.String("data", "", "Path to credential file (overrides dataFile in settings)")
	flag.Parse()

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}

	cfg, created, err := config.LoadOrCreate(*configPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	config.ApplyEnv(cfg)
	if *dataPath != "" {
		cfg.DataFile = *dataPath
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}

	logger := logging.NewLogger("Runner").SetMinLevel(logging.ParseLevel(cfg.LogLevel))
	if cfg.LogFile != "" {
		out, err := logging.NewFileOutput(cfg.LogFile)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer out.Close()
		logger.AddOutput(out)
	}

	if cfg.ClearScreen {
		bot.ClearScreen()
	}
	if cfg.ShowBanner {
		bot.PrintBanner(os.Stdout)
	}
	if created {
		logger.Infof("Created default settings at %s", *configPath)
	}

	creds, err := accounts.LoadCredentials(cfg.DataFile)
	if err != nil {
		log.Fatalf("Failed to load credentials: %v", err)
	}
	if len(creds) == 0 {
		logger.Warn("No credentials found in " + cfg.DataFile)
	}

	var catalog *cards.Catalog
	if cfg.CardCatalog != "" {
		catalog, err = cards.LoadCatalog(cfg.CardCatalog)
		if err != nil {
			log.Fatalf("Failed to load card catalog: %v", err)
		}
	}

	client, err := api.NewClient(api.Options{
		BaseURL:   cfg.BaseURL,
		LangCode:  cfg.LangCode,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.RequestTimeout,
		ProxyURL:  cfg.ProxyURL,
	})
	if err != nil {
		log.Fatalf("Failed to create API client: %v", err)
	}

	opts := []bot.Option{bot.WithLogger(logger)}
	if cfg.JournalPath != "" {
		db, err := database.OpenJournal(cfg.JournalPath)
		if err != nil {
			log.Fatalf("Failed to open journal: %v", err)
		}
		defer db.Close()
		opts = append(opts, bot.WithJournal(db))
	}

	runner := bot.NewRunner(cfg, client, catalog, opts...)
	runner.LogConfiguration()

	// Ctrl-C keeps its default behaviour and exits immediately
	if err := runner.Run(context.Background(), creds); err != nil {
		logger.Fatal("Runner stopped", err)
		os.Exit(1)
	}
}
