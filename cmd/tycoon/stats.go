package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tycoon/internal/profile"
	"github.com/vovakirdan/tui-tycoon/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show sprint scores and worth history",
	Long: `Display the top sprint results and the profile's net worth over time.

Examples:
  tycoon stats
  tycoon stats --profile alice`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	profileName := profile.Sanitize(flagProfile)

	// Open storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	printSprintScores(store)
	fmt.Println()
	printWorthHistory(store, profileName)
}

// printSprintScores lists the top sprint results across all profiles.
func printSprintScores(store *storage.Store) {
	scores, err := store.TopScores("venture_sprint", 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Println("Sprint Scores")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No sprint results yet.")
		fmt.Println("Play 'tycoon play venture_sprint' to set the first score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-12s  %s\n", "Rank", "Score", "Player", "Date")
	fmt.Printf("  %-4s  %-10s  %-12s  %s\n", "----", "-----", "------", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-12s  %s\n", i+1, entry.Score, entry.Profile, dateStr)
	}

	// Show the aggregate line
	if agg, err := store.GetGameStats("venture_sprint"); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Sprints: %d  Average: %.0f\n", agg.HighScore, agg.GamesCount, agg.AvgScore)
	}
}

// printWorthHistory lists the profile's recorded net worth samples.
func printWorthHistory(store *storage.Store, profileName string) {
	samples, err := store.WorthHistory(profileName, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving worth history: %v\n", err)
		return
	}

	fmt.Printf("Worth History - %s\n", profileName)
	fmt.Println()

	if len(samples) == 0 {
		fmt.Println("No worth recorded yet.")
		fmt.Println("Play 'tycoon play venture' to start the ledger!")
		return
	}

	fmt.Printf("  %-14s  %s\n", "Worth", "Date")
	fmt.Printf("  %-14s  %s\n", "-----", "----")

	for _, s := range samples {
		dateStr := s.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  $%-13.2f  %s\n", s.Worth, dateStr)
	}
}
