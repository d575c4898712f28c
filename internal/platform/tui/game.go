package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/memory-arcade/internal/config"
	"github.com/vovakirdan/memory-arcade/internal/core"
	"github.com/vovakirdan/memory-arcade/internal/storage"
)

// Game is the interface the platform drives.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game, used for score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// The RuntimeConfig provides screen dimensions, tick rate and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// Resizer is implemented by games that can adapt to a new screen size
// without losing their state. Other games are reset on resize.
type Resizer interface {
	Resize(w, h int)
}

// Reporter is implemented by games that describe their sessions for the
// run history and the log.
type Reporter interface {
	Summary() core.RunSummary
	DrainLog() []core.LogEntry
}

// GameFactory builds a game for the chosen difficulty.
type GameFactory func(preset config.DifficultyPreset) (Game, error)

// Options carries the shared services a game screen uses.
type Options struct {
	Store  *storage.Store // May be nil; scores are then not saved
	Logger *log.Logger    // May be nil
	Player string         // Recorded with each run

	// ScreenshotDir is where Ctrl+S writes screen dumps.
	// Empty means ~/.memory/screenshots.
	ScreenshotDir string
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}
