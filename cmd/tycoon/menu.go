package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tycoon/internal/config"
	"github.com/vovakirdan/tui-tycoon/internal/core"
	"github.com/vovakirdan/tui-tycoon/internal/games/tycoon"
	"github.com/vovakirdan/tui-tycoon/internal/platform/tui"
	"github.com/vovakirdan/tui-tycoon/internal/profile"
	"github.com/vovakirdan/tui-tycoon/internal/registry"
	"github.com/vovakirdan/tui-tycoon/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the tycoon with a mode picker menu",
	Long: `Start the tycoon in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - Stats screen
  Q            - Quit

Examples:
  tycoon menu
  tycoon menu --fps 60
  tycoon menu --profile alice --db ./tycoon.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom venture config YAML")
}

func runMenu(_ *cobra.Command, _ []string) {
	// Load and validate the venture config once for the whole session
	gameCfg, err := config.LoadTycoon(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := gameCfg.Validate(tycoon.IconExists); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	tycoon.SetConfig(gameCfg)

	// Open storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		store = nil
	}

	profileName := profile.Sanitize(flagProfile)
	if store != nil {
		tycoon.SetStore(store.SaveSlot(profileName))
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Menu loop
	for {
		// Show menu and get selection
		menuResult, err := tui.RunMenu(store, profileName, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		// Check if user quit
		if menuResult.Quit {
			break
		}

		// Check if user wants the stats screen
		if menuResult.WantsStats {
			goBack, statsErr := tui.RunStats(store, profileName, cfg.ScreenW, cfg.ScreenH)
			if statsErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", statsErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from stats
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		// Create game instance
		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Run the game
		if err := tui.Run(game, store, profileName, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
