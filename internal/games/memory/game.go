package memory

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/memory-arcade/internal/core"
	"github.com/vovakirdan/memory-arcade/internal/sched"
)

// ID is the game identifier used for score storage.
const ID = "memory"

// Game adapts a Controller to the arcade loop: it maps keys and clicks to
// tile flips, advances virtual time once per tick and draws the board.
type Game struct {
	rules      Rules
	difficulty string

	ctrl  *Controller
	clock *sched.Scheduler

	tick       uint64
	activeTick uint64 // Ticks that advanced game time (not paused)
	tickRate   int

	screenW int
	screenH int
	lay     layout

	cursor   Pos
	paused   bool
	tooSmall bool
	lastOut  Outcome
	log      []core.LogEntry // Platform-side entries not tied to controller events
}

// New creates a memory game with the given rules.
func New(rules Rules) *Game {
	return &Game{rules: rules, difficulty: "normal"}
}

// NewDefault creates a memory game with the built-in rules.
func NewDefault() *Game {
	return New(DefaultRules())
}

// SetDifficulty labels runs with the preset the rules were built from.
func (g *Game) SetDifficulty(name string) {
	g.difficulty = name
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Memory"
}

// Reset initializes/restarts the game. The session waits for Confirm before
// the first board is dealt.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if g.ctrl != nil {
		g.ctrl.Stop()
	}
	g.clock = sched.New()
	g.ctrl = NewController(g.rules, rand.New(rand.NewSource(cfg.Seed)), g.clock)

	g.tick = 0
	g.activeTick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultTickRate
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.cursor = Pos{}
	g.paused = false
	g.lastOut = OutcomeIgnored
	g.log = nil
	g.lay = layout{}
	g.checkScreenSize()
}

// Resize updates the screen dimensions and recomputes the layout.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize recomputes the layout. Before the first board the
// level 0 dimensions are used.
func (g *Game) checkScreenSize() {
	rows, cols := g.boardDims()
	lay, ok := computeLayout(g.screenW, g.screenH, rows, cols)
	if ok {
		lay.scrollTo(g.lay.top)
		lay.follow(g.cursor.Row)
	}
	g.lay = lay
	g.tooSmall = !ok
}

func (g *Game) boardDims() (int, int) {
	if b := g.ctrl.Board(); b != nil {
		return b.Rows(), b.Cols()
	}
	spec := g.rules.Levels.Level(0)
	return spec.Rows, spec.Cols
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionPause) {
		switch g.ctrl.Phase() {
		case PhasePlaying, PhaseTransition:
			g.paused = !g.paused
		}
	}

	// Boards grow between levels, so the fit is rechecked every tick.
	g.checkScreenSize()
	if g.tooSmall || g.paused {
		return core.StepResult{State: g.State()}
	}

	switch g.ctrl.Phase() {
	case PhaseIdle:
		if in.Has(core.ActionConfirm) {
			g.start()
		}
	case PhaseGameOver:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			g.start()
		}
	case PhasePlaying:
		g.handlePlayInput(in)
	}

	g.activeTick++
	// Multiply first: summing a rounded per-tick duration would drift.
	g.clock.AdvanceTo(time.Duration(g.activeTick) * time.Second / time.Duration(g.tickRate))

	return core.StepResult{State: g.State()}
}

func (g *Game) start() {
	if !g.ctrl.Start() {
		if err := g.ctrl.Err(); err != nil {
			g.log = append(g.log, core.LogEntry{Msg: "cannot start", KeyVals: []any{"error", err}})
		}
		return
	}
	g.cursor = Pos{}
	g.lay.top = 0
	g.checkScreenSize()
}

// handlePlayInput moves the cursor and applies flips from keys and clicks.
func (g *Game) handlePlayInput(in core.InputFrame) {
	b := g.ctrl.Board()

	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row--
	case in.Has(core.ActionDown):
		g.cursor.Row++
	case in.Has(core.ActionLeft):
		g.cursor.Col--
	case in.Has(core.ActionRight):
		g.cursor.Col++
	}
	g.cursor.Row = core.Clamp(g.cursor.Row, 0, b.Rows()-1)
	g.cursor.Col = core.Clamp(g.cursor.Col, 0, b.Cols()-1)
	g.lay.follow(g.cursor.Row)

	if in.Has(core.ActionFlip) {
		g.flip(g.cursor, HalfRight)
	}

	for _, c := range in.Clicks {
		// An earlier click may have cleared the board this frame.
		if g.ctrl.Phase() != PhasePlaying {
			return
		}
		pos, half, ok := g.lay.hit(c.X, c.Y)
		if !ok {
			continue
		}
		g.cursor = pos
		g.flip(pos, half)
	}
}

func (g *Game) flip(pos Pos, half Half) {
	if out := g.ctrl.ClickTile(pos, half); out != OutcomeIgnored {
		g.lastOut = out
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	phase := g.ctrl.Phase()
	return core.GameState{
		Score:    g.ctrl.Stats().Pairs,
		Level:    g.ctrl.Level(),
		GameOver: phase == PhaseGameOver,
		Paused:   g.paused || g.tooSmall || phase == PhaseIdle,
	}
}

// Summary describes the session for the run history.
func (g *Game) Summary() core.RunSummary {
	st := g.ctrl.Stats()
	return core.RunSummary{
		Level:      g.ctrl.Level(),
		Pairs:      st.Pairs,
		Mismatches: st.Mismatches,
		Flips:      st.Flips,
		Played:     g.ctrl.Played(),
		Difficulty: g.difficulty,
	}
}

// DrainLog returns log entries for controller events since the last call.
func (g *Game) DrainLog() []core.LogEntry {
	events := g.ctrl.Events()
	if len(events) == 0 && len(g.log) == 0 {
		return nil
	}
	entries := make([]core.LogEntry, 0, len(g.log)+len(events))
	entries = append(entries, g.log...)
	g.log = g.log[:0]
	for _, e := range events {
		var msg string
		switch e.Kind {
		case EventLevelStarted:
			spec := g.rules.Levels.Level(e.Level)
			entries = append(entries, core.LogEntry{
				Msg:     "level started",
				KeyVals: []any{"level", e.Level, "rows", spec.Rows, "cols", spec.Cols, "time", e.Time},
			})
			continue
		case EventMatched:
			msg = "pair matched"
		case EventMismatched:
			msg = "pair mismatched"
		case EventLevelCleared:
			msg = "level cleared"
		case EventGameOver:
			kv := []any{"level", e.Level, "time", e.Time}
			if err := g.ctrl.Err(); err != nil {
				kv = append(kv, "error", err)
			}
			entries = append(entries, core.LogEntry{Msg: "game over", KeyVals: kv})
			continue
		}
		entries = append(entries, core.LogEntry{Msg: msg, KeyVals: []any{"level", e.Level, "time", e.Time}})
	}
	return entries
}

// Controller exposes the underlying session, mainly for tests.
func (g *Game) Controller() *Controller {
	return g.ctrl
}
