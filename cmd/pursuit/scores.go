package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pursuit/internal/platform/tui"
	"github.com/vovakirdan/tui-pursuit/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show results for a level",
	Long: `Display the top 10 results for the specified level.
Without a level, opens an interactive results browser.

Examples:
  pursuit scores classic
  pursuit scores`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(_ *cobra.Command, args []string) {
	reg, err := loadLevels()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		width, height := terminalSize()
		if err := tui.RunScoreboard(reg, store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	levelID := args[0]
	title := lookupLevel(reg, levelID).Title()

	results, err := store.TopResults(levelID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		return
	}

	fmt.Printf("Results - %s\n", title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'pursuit play %s' to set the first high score!\n", levelID)
		return
	}

	fmt.Printf("  %-4s  %-7s  %-7s  %-6s  %s\n", "Rank", "Score", "Outcome", "Turns", "Date")
	fmt.Printf("  %-4s  %-7s  %-7s  %-6s  %s\n", "----", "-----", "-------", "-----", "----")
	for i, r := range results {
		fmt.Printf("  %-4d  %-7d  %-7s  %-6d  %s\n",
			i+1, r.Score, r.Outcome, r.Turns, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetLevelStats(levelID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Sessions: %d  Win rate: %.0f%%\n",
			stats.HighScore, stats.Sessions, stats.WinRate()*100)
	}
}
