package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/memory-arcade/internal/config"
	"github.com/vovakirdan/memory-arcade/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing right away.

Controls:
  Mouse          - Click a tile to flip it
  Arrows/WASD    - Move the cursor
  Space          - Flip the tile under the cursor
  Enter          - Start
  P              - Pause
  R              - Restart (after game over)
  Ctrl+S         - Save a screenshot
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Longer peeks, bigger time bonuses
  normal - The classic rules
  hard   - Quick peeks, half the bonuses

Examples:
  memory play
  memory play --difficulty easy
  memory play --seed 42
  memory play --config ./my-memory.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := newGame(preset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	opts := tui.Options{Store: store, Logger: logger, Player: currentUser()}

	logger.Info("game started", "player", opts.Player, "difficulty", preset, "seed", flagSeed)
	runErr := tui.Run(game, opts, runtimeConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
