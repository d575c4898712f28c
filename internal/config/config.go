// Package config provides YAML-based game configuration loading and
// difficulty presets for the memory game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidLevel is returned when a level table entry cannot produce a board.
var ErrInvalidLevel = errors.New("config: invalid level")

// MemoryConfig contains all configuration for the memory game.
type MemoryConfig struct {
	Levels     LevelsConfig     `yaml:"levels"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// LevelsConfig defines the level progression.
type LevelsConfig struct {
	Table       []LevelEntry `yaml:"table"`
	GrowthBonus int          `yaml:"growth_bonus"` // Start bonus for levels past the table
}

// LevelEntry is one row of the level table.
type LevelEntry struct {
	Rows  int    `yaml:"rows"`
	Cols  int    `yaml:"cols"`
	Bonus int    `yaml:"bonus"` // Seconds added when the level starts
	Shape string `yaml:"shape"` // Forced shape, empty for random
}

// TimingConfig defines countdown and transient timer durations.
type TimingConfig struct {
	Countdown       time.Duration `yaml:"countdown"`   // Countdown tick period
	MatchBonus      int           `yaml:"match_bonus"` // Seconds awarded per match
	BonusDisplay    time.Duration `yaml:"bonus_display"`
	TransitionDelay time.Duration `yaml:"transition_delay"`
	Peek            time.Duration `yaml:"peek"` // How long a mismatched pair stays visible
}

// DifficultyConfig selects a preset applied on top of the loaded values.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// Validate checks that the configuration can drive a game.
func (c MemoryConfig) Validate() error {
	if len(c.Levels.Table) == 0 {
		return fmt.Errorf("%w: empty level table", ErrInvalidLevel)
	}
	for i, lvl := range c.Levels.Table {
		if lvl.Rows <= 0 || lvl.Cols <= 0 {
			return fmt.Errorf("%w: level %d has %dx%d board", ErrInvalidLevel, i, lvl.Rows, lvl.Cols)
		}
		if lvl.Rows*lvl.Cols < 2 {
			return fmt.Errorf("%w: level %d has fewer than two cells", ErrInvalidLevel, i)
		}
		if !knownShape(lvl.Shape) {
			return fmt.Errorf("%w: level %d has unknown shape %q", ErrInvalidLevel, i, lvl.Shape)
		}
		if lvl.Bonus < 0 {
			return fmt.Errorf("%w: level %d has negative bonus %d", ErrInvalidLevel, i, lvl.Bonus)
		}
	}
	if c.Levels.GrowthBonus < 0 {
		return fmt.Errorf("%w: negative growth bonus %d", ErrInvalidLevel, c.Levels.GrowthBonus)
	}

	t := c.Timing
	if t.Countdown <= 0 {
		return fmt.Errorf("config: countdown period must be positive, got %s", t.Countdown)
	}
	if t.MatchBonus < 0 {
		return fmt.Errorf("config: negative match bonus %d", t.MatchBonus)
	}
	if t.BonusDisplay <= 0 || t.TransitionDelay < 0 || t.Peek < 0 {
		return fmt.Errorf("config: invalid timer durations (bonus_display=%s transition_delay=%s peek=%s)",
			t.BonusDisplay, t.TransitionDelay, t.Peek)
	}
	return nil
}

// knownShape reports whether name is a tile shape or empty (random per pair).
func knownShape(name string) bool {
	switch name {
	case "", "square", "circle", "triangle", "heart":
		return true
	}
	return false
}
