// tycoon is a terminal idle-tycoon: build ventures, hire managers and
// watch the money come in, locally or over SSH.
//
// Usage:
//
//	tycoon list              - List available game modes
//	tycoon play <mode>       - Play a mode
//	tycoon menu              - Start menu to pick modes interactively
//	tycoon serve             - Start SSH server for remote play
//	tycoon stats             - Show sprint scores and worth history
//	tycoon reset             - Wipe a profile's venture save
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 30)
//	--seed <value>     - Set RNG seed (reserved, the simulation is deterministic)
//	--db <path>        - Set database path (default: ~/.tycoon/tycoon.db)
//	--profile <name>   - Save profile to play as (default: local)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game modes to register them
	_ "github.com/vovakirdan/tui-tycoon/internal/games/tycoon"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagProfile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tycoon",
	Short: "Venture Tycoon - an idle business empire in your terminal",
	Long: `Venture Tycoon is a terminal idle game. Buy ventures, run their
production cycles, hire managers to automate them and keep earning
while you are away.

Available commands:
  list     - Show all available game modes
  play     - Play a mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  stats    - View sprint scores and worth history
  reset    - Wipe a profile's venture save

Examples:
  tycoon list
  tycoon play venture
  tycoon play venture_sprint
  tycoon menu
  tycoon serve --ssh :2222
  tycoon stats`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tycoon/tycoon.db", "Path to saves and scores database")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "local", "Save profile name")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
}
