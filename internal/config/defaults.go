package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/memory.yaml
var defaultMemoryYAML []byte

// DefaultMemoryConfig returns the built-in memory game configuration.
// It mirrors defaults/memory.yaml and is used if the embedded file fails to parse.
func DefaultMemoryConfig() MemoryConfig {
	return MemoryConfig{
		Levels: LevelsConfig{
			Table: []LevelEntry{
				{Rows: 3, Cols: 3, Bonus: 20, Shape: "square"},
				{Rows: 3, Cols: 3, Bonus: 2, Shape: "heart"},
				{Rows: 3, Cols: 3, Bonus: 2},
				{Rows: 3, Cols: 4, Bonus: 3},
				{Rows: 4, Cols: 4, Bonus: 4},
				{Rows: 5, Cols: 5, Bonus: 5},
				{Rows: 5, Cols: 6, Bonus: 6},
				{Rows: 5, Cols: 7, Bonus: 7},
			},
			GrowthBonus: 10,
		},
		Timing: TimingConfig{
			Countdown:       time.Second,
			MatchBonus:      2,
			BonusDisplay:    time.Second,
			TransitionDelay: time.Second,
			Peek:            700 * time.Millisecond,
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyNormal,
		},
	}
}

// DefaultYAML returns the embedded default YAML, used by `memory config`
// style dumps and tests.
func DefaultYAML() []byte {
	return defaultMemoryYAML
}
