package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyMemoryPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyMemoryPreset(cfg *MemoryConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = preset
	// Copy so presets never leak into a table shared with another config.
	cfg.Levels.Table = append([]LevelEntry(nil), cfg.Levels.Table...)

	switch preset {
	case DifficultyEasy:
		cfg.Timing.MatchBonus++
		cfg.Timing.Peek = cfg.Timing.Peek * 2
		cfg.Levels.GrowthBonus += cfg.Levels.GrowthBonus / 2
		for i := range cfg.Levels.Table {
			cfg.Levels.Table[i].Bonus += cfg.Levels.Table[i].Bonus / 2
		}
	case DifficultyHard:
		if cfg.Timing.MatchBonus > 1 {
			cfg.Timing.MatchBonus--
		}
		cfg.Timing.Peek = cfg.Timing.Peek / 2
		cfg.Levels.GrowthBonus = halveKeepOne(cfg.Levels.GrowthBonus)
		for i := range cfg.Levels.Table {
			cfg.Levels.Table[i].Bonus = halveKeepOne(cfg.Levels.Table[i].Bonus)
		}
	}
}

// halveKeepOne halves a positive bonus but never below one second.
func halveKeepOne(v int) int {
	if v <= 0 {
		return v
	}
	return max(1, v/2)
}
