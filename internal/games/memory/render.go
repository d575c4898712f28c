package memory

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/memory-arcade/internal/core"
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	if g.ctrl.Board() != nil {
		g.renderBoard(dst)
	}
	g.renderFooter(dst)
	g.renderOverlays(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	rows, cols := g.boardDims()
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Resize to fit a %dx%d board", rows, cols))
}

// renderHUD draws the title, level, countdown and floating bonuses.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, "MEMORY")

	b := g.lay.bounds()
	d := g.ctrl.Display()

	dst.DrawTextColored(b.X, 1, "Level: "+d.LevelText, core.ColorCyan)

	timer := "Time: " + d.TimerText
	timerColor := core.ColorWhite
	switch {
	case d.TimerText == GameOverText:
		timer = d.TimerText
		timerColor = core.ColorBrightRed
	case g.ctrl.TimeLeft() <= 5 && g.ctrl.Phase() == PhasePlaying:
		timerColor = core.ColorYellow
	}

	var bonuses strings.Builder
	for _, amount := range d.Bonuses {
		fmt.Fprintf(&bonuses, " +%d", amount)
	}

	width := utf8.RuneCountInString(timer) + bonuses.Len()
	x := max(b.Right()-width, b.X)
	dst.DrawTextColored(x, 1, timer, timerColor)
	dst.DrawTextColored(x+utf8.RuneCountInString(timer), 1, bonuses.String(), core.ColorBrightGreen)
}

// renderBoard draws the visible tiles and, when the board scrolls, arrows
// beside it pointing at the hidden rows.
func (g *Game) renderBoard(dst *core.Screen) {
	board := g.ctrl.Board()
	selected := make(map[Pos]bool, 2)
	for _, p := range g.ctrl.Selection() {
		selected[p] = true
	}

	for row := range board.Rows() {
		if !g.lay.shown(row) {
			continue
		}
		for col := range board.Cols() {
			p := Pos{Row: row, Col: col}
			t := board.Tile(p)
			if t == nil {
				continue // blank cell
			}
			r := g.lay.tileRect(p)

			accent := core.ColorGray
			switch {
			case g.ctrl.Phase() == PhasePlaying && p == g.cursor:
				accent = core.ColorBrightYellow
			case selected[p]:
				accent = core.ColorBrightCyan
			case t.Exposed:
				accent = core.ColorWhite
			}
			if g.lay.framed {
				dst.DrawBox(r, accent)
			}
			g.renderFace(dst, g.lay.face(r), t, accent)
		}
	}

	b := g.lay.bounds()
	above, below := g.lay.scrolled()
	if above {
		dst.SetColored(b.Right()+1, b.Y, '▲', core.ColorBrightWhite)
	}
	if below {
		dst.SetColored(b.Right()+1, b.Bottom()-1, '▼', core.ColorBrightWhite)
	}
}

// renderFace fills a tile's face. Compact tiles have no frame, so the
// cursor and selection tint the face instead.
func (g *Game) renderFace(dst *core.Screen, inner core.Rect, t *Tile, accent core.Color) {
	tinted := !g.lay.framed && accent != core.ColorGray

	if t.Exposed || t.Peeking {
		if tinted {
			dst.FillRect(inner, core.Cell{Rune: '·', Color: accent})
		}
		rgb := core.RGB{R: t.Color.R, G: t.Color.G, B: t.Color.B}
		cx, cy := inner.Center()
		dst.SetRGB(cx, cy, t.Shape.Glyph(), rgb)
		if inner.H >= 3 {
			dst.SetRGB(cx-1, cy-1, t.Shape.Glyph(), rgb)
			dst.SetRGB(cx+1, cy-1, t.Shape.Glyph(), rgb)
			dst.SetRGB(cx-1, cy+1, t.Shape.Glyph(), rgb)
			dst.SetRGB(cx+1, cy+1, t.Shape.Glyph(), rgb)
		}
		return
	}
	if tinted {
		dst.FillRect(inner, core.Cell{Rune: '▓', Color: accent})
		return
	}
	dst.FillRect(inner, core.Cell{Rune: '░', Color: core.ColorBlue})
}

// renderFooter draws the control hints and the last outcome.
func (g *Game) renderFooter(dst *core.Screen) {
	y := g.screenH - 1
	hint := g.Controls()
	if g.ctrl.Phase() == PhasePlaying {
		switch g.lastOut {
		case OutcomeMatched:
			hint = "Match! " + hint
		case OutcomeMismatched:
			hint = "No match. " + hint
		}
	}
	dst.DrawTextCentered(y, hint)
}

// renderOverlays draws the start popup and state overlays.
func (g *Game) renderOverlays(dst *core.Screen) {
	cx, cy := g.screenW/2, g.screenH/2

	if g.paused {
		g.drawOverlay(dst, cx, cy, "PAUSED", "Press P to resume")
		return
	}

	if err := g.ctrl.Err(); err != nil && g.ctrl.Phase() != PhasePlaying {
		lines := []string{"Cannot deal the board", err.Error(), "Check the levels in your config"}
		if g.ctrl.Phase() == PhaseGameOver {
			lines = append(lines, "Press R to restart")
		}
		g.drawOverlay(dst, cx, cy, lines...)
		return
	}

	switch g.ctrl.Phase() {
	case PhaseIdle:
		g.drawOverlay(dst, cx, cy,
			"MEMORY",
			"Find every pair before time runs out",
			"Each match adds "+fmt.Sprintf("%d", g.rules.MatchBonus)+" seconds",
			"",
			"Press Enter to start",
		)
	case PhaseTransition:
		g.drawOverlay(dst, cx, cy,
			fmt.Sprintf("Level %d cleared!", g.ctrl.Level()),
			fmt.Sprintf("Next: Level %d", g.ctrl.Level()+1),
		)
	case PhaseGameOver:
		st := g.ctrl.Stats()
		g.drawOverlay(dst, cx, cy,
			"GAME OVER",
			fmt.Sprintf("Level %d  Pairs %d", g.ctrl.Level(), st.Pairs),
			"Press R to restart",
		)
	}
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.FillRect(box, core.Cell{Rune: ' '})
	dst.DrawBox(box, core.ColorBrightWhite)

	for i, line := range lines {
		x := centerX - utf8.RuneCountInString(line)/2
		dst.DrawText(x, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Click/Space: Flip | Arrows: Move | P: Pause | Q: Quit"
}
