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

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a game mode",
	Long: `Start playing the specified mode.

Controls:
  Up/Down    - Select a venture
  Enter      - Work the selected venture's cycle
  B          - Buy a unit
  H          - Hire a manager
  P          - Pause
  R          - Restart (after a finished sprint)
  Esc        - Leave (venture progress is saved)
  Q/Ctrl+C   - Quit

Modes:
  venture        - Persistent empire: progress and offline earnings are saved
  venture_sprint - Timed score attack, nothing is saved

Examples:
  tycoon play venture
  tycoon play venture_sprint
  tycoon play venture --profile alice
  tycoon play venture --config ./my-ventures.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom venture config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tycoon list' to see available modes.")
		os.Exit(1)
	}

	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
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

	// Load and validate the venture config before anything starts
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
		// Continue without storage - game still works, nothing persists
		store = nil
	}

	// Bind the profile's save slot
	profileName := profile.Sanitize(flagProfile)
	if store != nil {
		tycoon.SetStore(store.SaveSlot(profileName))
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Run the game
	runErr := tui.Run(game, store, profileName, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
