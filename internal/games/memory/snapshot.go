package memory

// GameStateType represents the current game state.
type GameStateType string

const (
	StateIdle         GameStateType = "idle"
	StatePlaying      GameStateType = "playing"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StatePaused       GameStateType = "paused"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// TileSnapshot is the visible state of one cell.
type TileSnapshot struct {
	Blank   bool
	Shape   Shape
	Color   Color
	Exposed bool
	Angle   int
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Level     int
	TimeLeft  int
	Remaining int
	Pairs     int
	Rows      int
	Cols      int
	Tiles     []TileSnapshot // Row-major
	Selection []Pos
	Cursor    Pos
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	default:
		switch g.ctrl.Phase() {
		case PhaseIdle:
			state = StateIdle
		case PhaseTransition:
			state = StateLevelCleared
		case PhaseGameOver:
			state = StateGameOver
		}
	}

	s := Snapshot{
		Tick:      g.tick,
		Level:     g.ctrl.Level(),
		TimeLeft:  g.ctrl.TimeLeft(),
		Remaining: g.ctrl.Remaining(),
		Pairs:     g.ctrl.Stats().Pairs,
		Selection: g.ctrl.Selection(),
		Cursor:    g.cursor,
		State:     state,
	}

	b := g.ctrl.Board()
	if b == nil {
		return s
	}
	s.Rows, s.Cols = b.Rows(), b.Cols()
	s.Tiles = make([]TileSnapshot, 0, b.Cells())
	for row := range b.Rows() {
		for col := range b.Cols() {
			t := b.Tile(Pos{Row: row, Col: col})
			if t == nil {
				s.Tiles = append(s.Tiles, TileSnapshot{Blank: true})
				continue
			}
			s.Tiles = append(s.Tiles, TileSnapshot{
				Shape:   t.Shape,
				Color:   t.Color,
				Exposed: t.Exposed,
				Angle:   t.Angle,
			})
		}
	}
	return s
}
