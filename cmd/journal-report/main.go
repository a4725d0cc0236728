package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/yhdklf/tbasa/internal/database"
)

func main() {
	dbPath := flag.String("db", "journal.db", "Path to journal database")
	limit := flag.Int("n", 5, "Number of recent cycles to show")
	flag.Parse()

	if _, err := os.Stat(*dbPath); err != nil {
		log.Fatalf("Journal not found: %v", err)
	}

	db, err := database.OpenJournal(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open journal: %v", err)
	}
	defer db.Close()

	stats, err := db.GetStats()
	if err != nil {
		log.Fatalf("Failed to read stats: %v", err)
	}
	fmt.Printf("Journal: %s (%d cycles, %d account runs)\n\n",
		db.Path(), stats["cycles"], stats["account_runs"])

	cycles, err := db.GetRecentCycles(*limit)
	if err != nil {
		log.Fatalf("Failed to read cycles: %v", err)
	}

	for _, cycle := range cycles {
		completed := "running"
		if cycle.CompletedAt != nil {
			completed = cycle.CompletedAt.Format("2006-01-02 15:04:05")
		}
		fmt.Printf("Cycle %s\n", cycle.ID)
		fmt.Printf("  Started: %s | Completed: %s | Accounts: %d/%d\n",
			cycle.StartedAt.Format("2006-01-02 15:04:05"), completed,
			cycle.AccountsOK, cycle.AccountsTotal)

		runs, err := db.GetAccountRuns(cycle.ID)
		if err != nil {
			log.Printf("Failed to read runs for %s: %v", cycle.ID, err)
			continue
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "  #\tName\tStatus\tTapped\tReward\tUpgrades\tError")
		for _, run := range runs {
			name := "-"
			if run.DisplayName != nil {
				name = *run.DisplayName
			}
			errMsg := ""
			if run.ErrorMessage != nil {
				errMsg = *run.ErrorMessage
			}
			fmt.Fprintf(tw, "  %d\t%s\t%s\t%s\t%s\t%d\t%s\n",
				run.Position, name, run.Status, mark(run.Tapped), mark(run.RewardClaimed),
				run.UpgradesBought, errMsg)
		}
		tw.Flush()
		fmt.Println()
	}

	if len(cycles) == 0 {
		fmt.Println("No cycles recorded yet")
	}
}

func mark(ok bool) string {
	if ok {
		return "✓"
	}
	return "-"
}
