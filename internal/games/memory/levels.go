package memory

import (
	"fmt"

	"github.com/vovakirdan/memory-arcade/internal/config"
)

// LevelSpec describes the board and start bonus of one level.
type LevelSpec struct {
	Rows  int
	Cols  int
	Bonus int   // Seconds added when the level starts
	Shape Shape // Forced shape, ShapeAny for random per pair
}

// Cells returns rows*cols.
func (l LevelSpec) Cells() int {
	return l.Rows * l.Cols
}

// LevelTable maps level numbers to board specs. Levels past the end of the
// table add one row per level and keep the last column count.
type LevelTable struct {
	entries []LevelSpec
	growth  int
}

// NewLevelTable builds a table. entries must not be empty.
func NewLevelTable(entries []LevelSpec, growthBonus int) LevelTable {
	return LevelTable{
		entries: append([]LevelSpec(nil), entries...),
		growth:  growthBonus,
	}
}

// DefaultLevelTable returns the built-in level progression.
func DefaultLevelTable() LevelTable {
	t, err := LevelTableFromConfig(config.DefaultMemoryConfig().Levels)
	if err != nil {
		panic(err)
	}
	return t
}

// LevelTableFromConfig converts the YAML level section.
func LevelTableFromConfig(cfg config.LevelsConfig) (LevelTable, error) {
	if len(cfg.Table) == 0 {
		return LevelTable{}, fmt.Errorf("%w: empty level table", config.ErrInvalidLevel)
	}
	entries := make([]LevelSpec, 0, len(cfg.Table))
	for i, e := range cfg.Table {
		shape, err := ParseShape(e.Shape)
		if err != nil {
			return LevelTable{}, fmt.Errorf("level %d: %w", i, err)
		}
		entries = append(entries, LevelSpec{Rows: e.Rows, Cols: e.Cols, Bonus: e.Bonus, Shape: shape})
	}
	return NewLevelTable(entries, cfg.GrowthBonus), nil
}

// Len returns the number of explicit table entries.
func (t LevelTable) Len() int {
	return len(t.entries)
}

// Level returns the board settings for level n (0-based). Negative n is level 0.
func (t LevelTable) Level(n int) LevelSpec {
	if n < 0 {
		n = 0
	}
	if n < len(t.entries) {
		return t.entries[n]
	}
	last := t.entries[len(t.entries)-1]
	return LevelSpec{
		Rows:  last.Rows + n - (len(t.entries) - 1),
		Cols:  last.Cols,
		Bonus: t.growth,
		Shape: ShapeAny,
	}
}
