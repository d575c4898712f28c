package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/memory-arcade/internal/core"
	"github.com/vovakirdan/memory-arcade/internal/storage"
)

// GameModel is the Bubble Tea model that runs one game: it collects input
// between ticks, steps the game at a fixed rate and saves finished runs.
type GameModel struct {
	game       Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current game over has been recorded
	lastRun    *storage.Run
	gen        int
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game Game, opts Options, cfg core.RuntimeConfig) GameModel {
	cfg = cfg.Normalize(time.Now())

	game.Reset(cfg)

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		keys:       DefaultKeyMap(),
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickDuration(), m.gen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu only when nothing is in progress. A session model
	// intercepts this before the quit command reaches the program.
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(Resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	m.flushLog()

	// A restarted game can be recorded again.
	if !m.gameState.GameOver {
		m.runSaved = false
	}
	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	return m, tickCmd(m.config.TickDuration(), m.gen)
}

// flushLog forwards game log entries to the logger.
func (m *GameModel) flushLog() {
	rep, ok := m.game.(Reporter)
	if !ok {
		return
	}
	logger := m.opts.logger()
	for _, e := range rep.DrainLog() {
		logger.Debug(e.Msg, append([]any{"player", m.opts.Player}, e.KeyVals...)...)
	}
}

// saveRun records the finished session. Storage failures are logged and
// otherwise ignored; the game goes on without persistence.
func (m *GameModel) saveRun() {
	logger := m.opts.logger()
	if m.opts.Store == nil {
		return
	}

	rep, ok := m.game.(Reporter)
	if !ok {
		if m.gameState.Score > 0 {
			if _, err := m.opts.Store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
				logger.Warn("could not save score", "error", err)
			}
		}
		return
	}

	sum := rep.Summary()
	run, err := m.opts.Store.SaveRun(m.game.ID(), storage.Run{
		Player:     m.opts.Player,
		Difficulty: sum.Difficulty,
		Level:      sum.Level,
		Pairs:      sum.Pairs,
		Mismatches: sum.Mismatches,
		Flips:      sum.Flips,
		Duration:   sum.Played,
	})
	if err != nil {
		logger.Warn("could not save run", "error", err)
		return
	}
	m.lastRun = &run
	logger.Info("run saved", "run", run.RunID, "player", run.Player, "level", run.Level, "pairs", run.Pairs)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return
		}
		dir = filepath.Join(home, ".memory", "screenshots")
	}
	logger := m.opts.logger()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		logger.Warn("could not save screenshot", "error", err)
		return
	}
	logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// LastRun returns the most recently saved run, or nil.
func (m GameModel) LastRun() *storage.Run {
	return m.lastRun
}

// Run starts a Bubble Tea program for a single game.
func Run(game Game, opts Options, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, opts, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
