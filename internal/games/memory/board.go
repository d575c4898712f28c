package memory

import (
	"fmt"
	"math/rand"
)

// Pos addresses a board cell.
type Pos struct {
	Row, Col int
}

// Tile is one card on the board.
type Tile struct {
	Identity

	// Exposed is the logical face-up state. It is never derived from Angle.
	Exposed bool

	// Angle is the accumulated flip rotation in degrees. Its sign records
	// which half of the tile the last flip started from.
	Angle int

	// Peeking keeps a mismatched tile's face visible for a moment after it
	// has been turned back.
	Peeking bool
}

// Board is a rows x cols grid of tiles. When rows*cols is odd the center
// cell is blank so the tile count stays even.
type Board struct {
	rows, cols int
	tiles      []Tile
	blank      int // index of the blank cell, -1 if none
}

// NewBoard deals a fresh board for the given level.
func NewBoard(rng *rand.Rand, spec LevelSpec) (*Board, error) {
	if spec.Rows <= 0 || spec.Cols <= 0 {
		return nil, fmt.Errorf("memory: invalid board %dx%d", spec.Rows, spec.Cols)
	}

	cells := spec.Cells()
	blank := -1
	tileCount := cells
	if cells%2 == 1 {
		blank = cells / 2
		tileCount--
	}

	ids, err := NewTileSet(rng, tileCount, spec.Shape)
	if err != nil {
		return nil, fmt.Errorf("memory: deal %dx%d board: %w", spec.Rows, spec.Cols, err)
	}

	b := &Board{
		rows:  spec.Rows,
		cols:  spec.Cols,
		tiles: make([]Tile, cells),
		blank: blank,
	}
	next := 0
	for i := range b.tiles {
		if i == blank {
			continue
		}
		b.tiles[i] = Tile{Identity: ids[next]}
		next++
	}
	return b, nil
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// Cells returns rows*cols.
func (b *Board) Cells() int { return len(b.tiles) }

// TileCount returns the number of tiles, excluding the blank cell.
func (b *Board) TileCount() int {
	if b.blank >= 0 {
		return len(b.tiles) - 1
	}
	return len(b.tiles)
}

// InBounds reports whether p is on the board.
func (b *Board) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < b.rows && p.Col >= 0 && p.Col < b.cols
}

func (b *Board) index(p Pos) int {
	return p.Row*b.cols + p.Col
}

// IsBlank reports whether p is the blank cell.
func (b *Board) IsBlank(p Pos) bool {
	return b.InBounds(p) && b.index(p) == b.blank
}

// Tile returns the tile at p, or nil for the blank cell and off-board positions.
func (b *Board) Tile(p Pos) *Tile {
	if !b.InBounds(p) || b.index(p) == b.blank {
		return nil
	}
	return &b.tiles[b.index(p)]
}

// Exposed returns the number of face-up tiles.
func (b *Board) Exposed() int {
	n := 0
	for i, t := range b.tiles {
		if i != b.blank && t.Exposed {
			n++
		}
	}
	return n
}
