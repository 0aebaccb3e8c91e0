package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/precinct-outbreak/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the top 10 runs and aggregate stats.

Examples:
  outbreak scores
  outbreak scores --db ./runs.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Precinct Outbreak - Run History")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'outbreak play' to get on the board!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-5s  %-6s  %-6s  %-6s  %s\n",
		"Rank", "Score", "Wave", "Kills", "Doors", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-6s  %-6s  %-6s  %s\n",
		"----", "-----", "----", "-----", "-----", "----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-5d  %-6d  %-6d  %d:%02d    %s\n",
			i+1, r.Score, r.Wave, r.Kills, r.DoorsOpened,
			r.DurationSecs/60, r.DurationSecs%60,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	// Aggregate stats
	if stats, err := store.Stats(); err == nil && stats.RunsCount > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Avg: %.0f  Best wave: %d  Total kills: %d\n",
			stats.RunsCount, stats.HighScore, stats.AvgScore,
			stats.BestWave, stats.TotalKills)
	}
}
