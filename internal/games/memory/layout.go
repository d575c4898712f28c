package memory

import "github.com/vovakirdan/memory-arcade/internal/core"

const (
	hudHeight    = 3 // Title, status line, spacer
	footerHeight = 1

	minTileW = 5 // Frame plus three columns, so each half has a column
	minTileH = 3
	maxTileW = 9
	maxTileH = 5

	// Compact tiles drop the frame: one row high, two columns wide at least
	// so each half still has a column.
	minCompactW = 2
	maxCompactW = 5
)

// layout places board tiles on screen. Framed tiles have a border and the
// clickable area is inside it; compact tiles are bare one-row cells. When
// the board is taller than the screen only rows [top, top+visible) are
// shown.
type layout struct {
	originX, originY int
	tileW, tileH     int
	gapX, gapY       int
	framed           bool
	rows, cols       int
	top, visible     int
}

// computeLayout fits a rows x cols board into the screen. Framed tiles are
// preferred; otherwise compact tiles are used and the board scrolls
// vertically. It reports false only when one row of compact tiles does not
// fit.
func computeLayout(screenW, screenH, rows, cols int) (layout, bool) {
	if rows <= 0 || cols <= 0 {
		return layout{}, false
	}
	availW := screenW - 2
	availH := screenH - hudHeight - footerHeight

	if l, ok := framedLayout(availW, availH, rows, cols); ok {
		l.center(screenW, availH)
		return l, true
	}

	tileW := min(maxCompactW, (availW+1)/cols-1)
	if tileW < minCompactW || availH < 1 {
		return layout{}, false
	}
	l := layout{
		tileW:   tileW,
		tileH:   1,
		gapX:    1,
		rows:    rows,
		cols:    cols,
		visible: min(rows, availH),
	}
	l.center(screenW, availH)
	return l, true
}

func framedLayout(availW, availH, rows, cols int) (layout, bool) {
	const gapX, gapY = 1, 0
	tileW := min(maxTileW, (availW+gapX)/cols-gapX)
	tileH := min(maxTileH, (availH+gapY)/rows-gapY)
	if tileW < minTileW || tileH < minTileH {
		return layout{}, false
	}
	// Keep an odd width so the glyph sits in the middle column.
	if tileW%2 == 0 {
		tileW--
	}
	return layout{
		tileW:   tileW,
		tileH:   tileH,
		gapX:    gapX,
		gapY:    gapY,
		framed:  true,
		rows:    rows,
		cols:    cols,
		visible: rows,
	}, true
}

// center positions the visible part of the board in the play area.
func (l *layout) center(screenW, availH int) {
	b := l.bounds()
	l.originX = (screenW - b.W) / 2
	l.originY = hudHeight + (availH-b.H)/2
}

// scrollTo sets the first visible row, clamped to the board.
func (l *layout) scrollTo(top int) {
	l.top = core.Clamp(top, 0, l.rows-l.visible)
}

// follow scrolls the least amount needed to show row.
func (l *layout) follow(row int) {
	switch {
	case row < l.top:
		l.scrollTo(row)
	case row >= l.top+l.visible:
		l.scrollTo(row - l.visible + 1)
	}
}

// scrolled reports whether rows are hidden above or below.
func (l layout) scrolled() (above, below bool) {
	return l.top > 0, l.top+l.visible < l.rows
}

// shown reports whether board row is on screen.
func (l layout) shown(row int) bool {
	return row >= l.top && row < l.top+l.visible
}

// bounds returns the screen area covered by the visible rows.
func (l layout) bounds() core.Rect {
	return core.NewRect(l.originX, l.originY,
		l.cols*(l.tileW+l.gapX)-l.gapX,
		l.visible*(l.tileH+l.gapY)-l.gapY)
}

// tileRect returns the screen area of the tile at p. It is only
// meaningful for shown rows.
func (l layout) tileRect(p Pos) core.Rect {
	return core.NewRect(
		l.originX+p.Col*(l.tileW+l.gapX),
		l.originY+(p.Row-l.top)*(l.tileH+l.gapY),
		l.tileW, l.tileH,
	)
}

// face returns the part of a tile that shows its face and takes clicks.
func (l layout) face(r core.Rect) core.Rect {
	if l.framed {
		return r.Inset(1)
	}
	return r
}

// hit maps a screen cell to a tile position and half. Only a tile's face
// counts; frames, gaps and background miss.
func (l layout) hit(x, y int) (Pos, Half, bool) {
	if !l.bounds().Contains(x, y) {
		return Pos{}, HalfLeft, false
	}
	p := Pos{
		Row: l.top + (y-l.originY)/(l.tileH+l.gapY),
		Col: (x - l.originX) / (l.tileW + l.gapX),
	}
	if !l.shown(p.Row) || p.Col >= l.cols {
		return Pos{}, HalfLeft, false
	}
	r := l.tileRect(p)
	if !l.face(r).Contains(x, y) {
		return Pos{}, HalfLeft, false
	}
	if r.InLeftHalf(x) {
		return p, HalfLeft, true
	}
	return p, HalfRight, true
}
