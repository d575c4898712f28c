package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/memory-arcade/internal/games/memory"
	"github.com/vovakirdan/memory-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a difficulty picker menu",
	Long: `Start in interactive menu mode.

Pick a difficulty with the arrow keys or j/k and press Enter to play.
After a game ends, press Esc to return to the menu. Tab opens the
scoreboard.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play
  Tab          - Scoreboard
  Q            - Quit

Examples:
  memory menu
  memory menu --fps 60
  memory menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	opts := tui.Options{Store: store, Logger: logger, Player: currentUser()}

	err := tui.RunSession(gameFactory, memory.ID, opts, runtimeConfig())

	if store != nil {
		store.Close()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
