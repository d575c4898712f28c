// memory is a tile-matching memory game for the terminal.
//
// Usage:
//
//	memory play              - Play a game
//	memory menu              - Pick a difficulty, play, browse scores
//	memory serve             - Start SSH server for remote play
//	memory scores            - Show best and recent runs
//	memory levels            - Print the level table
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 30)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.memory/scores.db)
//	--config <path>      - Custom memory.yaml
//	--difficulty <name>  - easy, normal or hard
//	--log-file <path>    - Write logs to a file ("-" for stderr)
//	--log-level <level>  - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/memory-arcade/internal/config"
	"github.com/vovakirdan/memory-arcade/internal/core"
	"github.com/vovakirdan/memory-arcade/internal/games/memory"
	"github.com/vovakirdan/memory-arcade/internal/logging"
	"github.com/vovakirdan/memory-arcade/internal/platform/tui"
	"github.com/vovakirdan/memory-arcade/internal/storage"
)

const defaultDBPath = "~/.memory/scores.db"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string

	logger    = log.New(io.Discard)
	logCloser io.Closer
)

func main() {
	// A missing .env is fine.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "memory",
	Short: "Memory - match pairs of tiles against the clock",
	Long: `Memory is a terminal tile-matching game. Flip two tiles at a time,
match their colors, and clear the board before the countdown runs out.
Every cleared level adds time and a bigger board.

Available commands:
  play     - Play right away
  menu     - Difficulty picker, game and scoreboard
  serve    - Start SSH server for remote play
  scores   - View best and recent runs
  levels   - Print the level table

Environment:
  MEMORY_DB        - Default for --db
  MEMORY_SSH_ADDR  - Default for serve --ssh
  Both may be set in a .env file in the working directory.

Examples:
  memory play
  memory play --difficulty hard --seed 42
  memory menu
  memory serve --ssh :2222
  memory levels -n 12`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to scores database (env MEMORY_DB)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom memory.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (\"-\" for stderr, empty to disable)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}

// setup applies environment defaults and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	if v := os.Getenv("MEMORY_DB"); v != "" && !cmd.Flags().Changed("db") {
		flagDBPath = v
	}

	l, closer, err := logging.New(logging.Options{
		File:   flagLogFile,
		Level:  flagLogLevel,
		Prefix: "memory",
	})
	if err != nil {
		return err
	}
	logger, logCloser = l, closer
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	if logCloser != nil {
		return logCloser.Close()
	}
	return nil
}

// loadRules loads the config and applies the preset.
func loadRules(preset config.DifficultyPreset) (memory.Rules, error) {
	cfg, err := config.LoadMemory(flagConfig)
	if err != nil {
		return memory.Rules{}, err
	}
	config.ApplyMemoryPreset(&cfg, preset)
	return memory.RulesFromConfig(cfg)
}

// newGame builds a game for the preset.
func newGame(preset config.DifficultyPreset) (*memory.Game, error) {
	rules, err := loadRules(preset)
	if err != nil {
		return nil, err
	}

	game := memory.New(rules)
	game.SetDifficulty(string(preset))
	return game, nil
}

// gameFactory adapts newGame for the session screens.
func gameFactory(preset config.DifficultyPreset) (tui.Game, error) {
	game, err := newGame(preset)
	if err != nil {
		return nil, err
	}
	return game, nil
}

// openStore opens the score database. A failure is reported and the
// game runs without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// currentUser names the local player for the run history.
func currentUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}
