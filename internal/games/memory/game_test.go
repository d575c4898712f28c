package memory

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/memory-arcade/internal/core"
)

func newTestGame(seed int64) *Game {
	g := NewDefault()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: seed})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func clickFrame(x, y int) core.InputFrame {
	in := core.NewInputFrame()
	in.AddClick(x, y)
	return in
}

func TestGameWaitsForConfirm(t *testing.T) {
	g := newTestGame(1)

	for range 60 {
		g.Step(frame())
	}
	if s := g.Snapshot(); s.State != StateIdle {
		t.Fatalf("State = %v, expected %v", s.State, StateIdle)
	}
	if g.ctrl.TimeLeft() != 0 {
		t.Errorf("TimeLeft() = %d before start, expected 0", g.ctrl.TimeLeft())
	}

	g.Step(frame(core.ActionConfirm))
	s := g.Snapshot()
	if s.State != StatePlaying {
		t.Fatalf("State = %v, expected %v", s.State, StatePlaying)
	}
	if s.TimeLeft != 20 || s.Rows != 3 || s.Cols != 3 {
		t.Errorf("after start: time=%d board=%dx%d, expected 20 and 3x3", s.TimeLeft, s.Rows, s.Cols)
	}
	if !s.Tiles[4].Blank {
		t.Error("center cell of the 3x3 board should be blank")
	}
}

func TestGameCountdownFollowsTicks(t *testing.T) {
	g := newTestGame(2)
	g.Step(frame(core.ActionConfirm))

	for range 28 {
		g.Step(frame())
	}
	if g.ctrl.TimeLeft() != 20 {
		t.Fatalf("TimeLeft() after 29 ticks = %d, expected 20", g.ctrl.TimeLeft())
	}
	g.Step(frame())
	if g.ctrl.TimeLeft() != 19 {
		t.Errorf("TimeLeft() after 30 ticks = %d, expected 19", g.ctrl.TimeLeft())
	}
}

func TestGameMouseClicks(t *testing.T) {
	g := newTestGame(3)
	g.Step(frame(core.ActionConfirm))

	// 3x3 board on 80x24: 9x5 tiles, first tile frame spans x 25..33, y 5..9.
	r := g.lay.tileRect(Pos{})
	if r != core.NewRect(25, 5, 9, 5) {
		t.Fatalf("tileRect(0,0) = %+v", r)
	}

	// The frame itself is not clickable.
	g.Step(clickFrame(25, 5))
	if len(g.ctrl.Selection()) != 0 {
		t.Fatal("click on tile frame flipped a tile")
	}

	// Background between tiles is not clickable either.
	g.Step(clickFrame(34, 7))
	if len(g.ctrl.Selection()) != 0 {
		t.Fatal("click on gap flipped a tile")
	}

	g.Step(clickFrame(27, 7))
	tile := g.ctrl.Board().Tile(Pos{})
	if !tile.Exposed || tile.Angle != -180 {
		t.Errorf("left-half click: exposed=%v angle=%d, expected true and -180", tile.Exposed, tile.Angle)
	}

	// Tile (0,2) right half.
	r = g.lay.tileRect(Pos{Row: 0, Col: 2})
	g.Step(clickFrame(r.X+r.W-2, r.Y+2))
	if g.ctrl.Stats().Flips != 2 {
		t.Errorf("Flips = %d, expected 2", g.ctrl.Stats().Flips)
	}
}

func TestGameKeyboardFlip(t *testing.T) {
	g := newTestGame(4)
	g.Step(frame(core.ActionConfirm))

	g.Step(frame(core.ActionFlip))
	tile := g.ctrl.Board().Tile(Pos{})
	if !tile.Exposed || tile.Angle != 180 {
		t.Errorf("Flip at cursor: exposed=%v angle=%d, expected true and 180", tile.Exposed, tile.Angle)
	}

	// Cursor onto the blank center: flipping does nothing.
	g.Step(frame(core.ActionRight))
	g.Step(frame(core.ActionDown))
	if g.cursor != (Pos{Row: 1, Col: 1}) {
		t.Fatalf("cursor = %v, expected {1 1}", g.cursor)
	}
	g.Step(frame(core.ActionFlip))
	if g.ctrl.Stats().Flips != 1 {
		t.Errorf("Flips = %d after flipping blank cell, expected 1", g.ctrl.Stats().Flips)
	}

	// Cursor stays on the board.
	for range 10 {
		g.Step(frame(core.ActionLeft))
	}
	if g.cursor.Col != 0 {
		t.Errorf("cursor col = %d, expected 0", g.cursor.Col)
	}
}

func TestGamePauseFreezesTime(t *testing.T) {
	g := newTestGame(5)
	g.Step(frame(core.ActionConfirm))
	g.Step(frame(core.ActionPause))

	if !g.State().Paused {
		t.Fatal("State().Paused = false after pause")
	}
	for range 120 {
		g.Step(frame())
	}
	if g.ctrl.TimeLeft() != 20 {
		t.Errorf("TimeLeft() = %d while paused, expected 20", g.ctrl.TimeLeft())
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("State().Paused = true after unpause")
	}
}

func TestGameTooSmall(t *testing.T) {
	g := NewDefault()
	g.Reset(core.RuntimeConfig{ScreenW: 8, ScreenH: 10, TickRate: 30, Seed: 1})

	g.Step(frame(core.ActionConfirm))
	if s := g.Snapshot(); s.State != StatePausedSmall {
		t.Fatalf("State = %v, expected %v", s.State, StatePausedSmall)
	}

	g.Resize(80, 24)
	g.Step(frame(core.ActionConfirm))
	if s := g.Snapshot(); s.State != StatePlaying {
		t.Errorf("State after resize = %v, expected %v", s.State, StatePlaying)
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := newTestGame(6)
	g.Step(frame(core.ActionConfirm))

	for range 20*30 + 1 {
		g.Step(frame())
	}
	if !g.State().GameOver {
		t.Fatalf("State().GameOver = false after 20s, time left %d", g.ctrl.TimeLeft())
	}
	sum := g.Summary()
	if sum.Played.Seconds() != 20 {
		t.Errorf("Summary().Played = %v, expected 20s", sum.Played)
	}

	g.Step(frame(core.ActionRestart))
	if g.State().GameOver || g.ctrl.TimeLeft() != 20 {
		t.Errorf("after restart: gameOver=%v time=%d", g.State().GameOver, g.ctrl.TimeLeft())
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := []core.InputFrame{
		frame(core.ActionConfirm),
		frame(core.ActionFlip),
		frame(core.ActionRight),
		frame(core.ActionFlip),
		clickFrame(27, 17),
		clickFrame(47, 12),
	}

	run := func() Snapshot {
		g := newTestGame(12345)
		for _, in := range inputs {
			g.Step(in)
		}
		for range 45 {
			g.Step(frame())
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if a.Tick != b.Tick || a.TimeLeft != b.TimeLeft || a.Remaining != b.Remaining || a.Pairs != b.Pairs {
		t.Fatalf("snapshots differ: %+v vs %+v", a, b)
	}
	for i := range a.Tiles {
		if a.Tiles[i] != b.Tiles[i] {
			t.Errorf("tile %d differs: %+v vs %+v", i, a.Tiles[i], b.Tiles[i])
		}
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(7)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if out := screen.String(); !strings.Contains(out, "Press Enter to start") {
		t.Errorf("idle render missing start popup:\n%s", out)
	}

	g.Step(frame(core.ActionConfirm))
	g.Step(frame(core.ActionFlip))
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"MEMORY", "Level: 0", "Time: 20 +20", "■", "░"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}

	cell := screen.GetCell(29, 7)
	if !cell.TrueColor || cell.Rune != '■' {
		t.Errorf("face-up glyph cell = %+v, expected true-color square", cell)
	}
}

func TestGameDrainLog(t *testing.T) {
	g := newTestGame(8)
	g.Step(frame(core.ActionConfirm))

	entries := g.DrainLog()
	if len(entries) != 1 || entries[0].Msg != "level started" {
		t.Fatalf("DrainLog() = %+v, expected one level start", entries)
	}
	if g.DrainLog() != nil {
		t.Error("DrainLog() returned entries twice")
	}
}

func TestGameLargeBoardsKeepTime(t *testing.T) {
	g := newTestGame(13)
	g.Step(frame(core.ActionConfirm))

	for range 9 {
		clearBoard(t, g.ctrl)
		for range 30 {
			g.Step(frame())
		}
	}
	if g.ctrl.Level() != 9 || g.ctrl.Board().Rows() != 7 {
		t.Fatalf("Level() = %d rows = %d, expected level 9 with 7 rows", g.ctrl.Level(), g.ctrl.Board().Rows())
	}
	if g.tooSmall {
		t.Fatal("7x7 board reported too small for 80x24")
	}
	if g.lay.framed {
		t.Error("7x7 board on 80x24 should use compact tiles")
	}

	before := g.ctrl.TimeLeft()
	for range 60 {
		g.Step(frame())
	}
	if got := g.ctrl.TimeLeft(); got != before-2 {
		t.Errorf("TimeLeft() after 60 ticks = %d, expected %d", got, before-2)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if out := screen.String(); !strings.Contains(out, "▓") {
		t.Errorf("compact render missing cursor tint:\n%s", out)
	}
}

func TestGameScrollsTallBoards(t *testing.T) {
	rules := DefaultRules()
	rules.Levels = NewLevelTable([]LevelSpec{{Rows: 12, Cols: 4, Bonus: 20}}, 2)
	g := New(rules)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 10, TickRate: 30, Seed: 14})
	g.Step(frame(core.ActionConfirm))

	if g.tooSmall {
		t.Fatal("tall board reported too small")
	}
	if g.lay.visible != 6 {
		t.Fatalf("visible rows = %d, expected 6", g.lay.visible)
	}
	if above, below := g.lay.scrolled(); above || !below {
		t.Errorf("scrolled() = %v, %v at the top, expected false, true", above, below)
	}

	screen := core.NewScreen(80, 10)
	g.Render(screen)
	if out := screen.String(); !strings.Contains(out, "▼") {
		t.Errorf("render missing scroll marker:\n%s", out)
	}

	for range 11 {
		g.Step(frame(core.ActionDown))
	}
	if g.cursor.Row != 11 || !g.lay.shown(g.cursor.Row) {
		t.Fatalf("cursor row %d shown=%v, expected 11 on screen", g.cursor.Row, g.lay.shown(g.cursor.Row))
	}
	if g.lay.top != 6 {
		t.Errorf("top = %d, expected 6", g.lay.top)
	}

	// A click lands on the scrolled row, not the one drawn there first.
	r := g.lay.tileRect(Pos{Row: 6, Col: 0})
	g.Step(clickFrame(r.X, r.Y))
	if tile := g.ctrl.Board().Tile(Pos{Row: 6, Col: 0}); !tile.Exposed {
		t.Errorf("click on first visible row did not flip row 6: %+v", *tile)
	}

	for range 11 {
		g.Step(frame(core.ActionUp))
	}
	if g.lay.top != 0 {
		t.Errorf("top = %d after moving back up, expected 0", g.lay.top)
	}
}

func TestGameShowsDealFailure(t *testing.T) {
	rules := DefaultRules()
	rules.Levels = NewLevelTable([]LevelSpec{undealable}, 2)
	g := New(rules)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 15})

	g.Step(frame(core.ActionConfirm))
	if g.ctrl.Phase() != PhaseIdle {
		t.Fatalf("Phase() = %v, expected %v", g.ctrl.Phase(), PhaseIdle)
	}

	entries := g.DrainLog()
	if len(entries) != 1 || entries[0].Msg != "cannot start" {
		t.Fatalf("DrainLog() = %+v, expected one cannot start entry", entries)
	}
	if err, _ := entries[0].KeyVals[1].(error); !errors.Is(err, ErrPaletteExhausted) {
		t.Errorf("logged error = %v, expected %v", entries[0].KeyVals[1], ErrPaletteExhausted)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if out := screen.String(); !strings.Contains(out, "Cannot deal the board") {
		t.Errorf("render missing deal failure:\n%s", out)
	}
}
