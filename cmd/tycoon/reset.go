package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tycoon/internal/profile"
	"github.com/vovakirdan/tui-tycoon/internal/storage"
)

var (
	flagResetYes    bool
	flagResetScores bool
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe a profile's venture save",
	Long: `Delete the profile's venture save and worth history, starting the
empire over from the configured opening balance.

Sprint scores are kept; they are results, not progress. Pass --scores
to also clear the sprint leaderboard (all profiles).

Examples:
  tycoon reset --yes
  tycoon reset --profile alice --yes
  tycoon reset --yes --scores`,
	Args: cobra.NoArgs,
	Run:  runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagResetYes, "yes", false, "Confirm the wipe")
	resetCmd.Flags().BoolVar(&flagResetScores, "scores", false, "Also clear the shared sprint leaderboard")
}

func runReset(cmd *cobra.Command, args []string) {
	profileName := profile.Sanitize(flagProfile)

	if !flagResetYes {
		fmt.Printf("This wipes the venture save and worth history for profile %q.\n", profileName)
		if flagResetScores {
			fmt.Println("--scores also clears the sprint leaderboard for every profile.")
		} else {
			fmt.Println("Sprint scores are kept.")
		}
		fmt.Println("Re-run with --yes to confirm.")
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.DeleteSave(profileName); err != nil {
		fmt.Fprintf(os.Stderr, "Error wiping save: %v\n", err)
		os.Exit(1)
	}

	if flagResetScores {
		if err := store.ClearScores("venture_sprint"); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Sprint leaderboard cleared.")
	}

	fmt.Printf("Profile %q reset.\n", profileName)
}
