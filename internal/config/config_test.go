package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultMemoryConfig()
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))

	assert.Equal(t, DefaultMemoryConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMemoryCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.yaml")
	data := []byte(`
timing:
  match_bonus: 5
  peek: 250ms
levels:
  growth_bonus: 3
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadMemory(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Timing.MatchBonus)
	assert.Equal(t, 250*time.Millisecond, cfg.Timing.Peek)
	assert.Equal(t, 3, cfg.Levels.GrowthBonus)
	// Untouched keys keep their defaults.
	assert.Equal(t, time.Second, cfg.Timing.TransitionDelay)
	assert.Len(t, cfg.Levels.Table, 8)
}

func TestLoadMemoryCustomPathReplacesTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.yaml")
	data := []byte(`
levels:
  table:
    - { rows: 2, cols: 2, bonus: 9, shape: circle }
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadMemory(path)
	require.NoError(t, err)
	require.Len(t, cfg.Levels.Table, 1)
	assert.Equal(t, LevelEntry{Rows: 2, Cols: 2, Bonus: 9, Shape: "circle"}, cfg.Levels.Table[0])
}

func TestLoadMemoryCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadMemory(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("levels: [oops"), 0o600))
	_, err = LoadMemory(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("levels:\n  table:\n    - { rows: 0, cols: 3 }\n"), 0o600))
	_, err = LoadMemory(invalid)
	assert.ErrorIs(t, err, ErrInvalidLevel)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*MemoryConfig)
		ok     bool
	}{
		{"defaults", func(*MemoryConfig) {}, true},
		{"empty table", func(c *MemoryConfig) { c.Levels.Table = nil }, false},
		{"single cell", func(c *MemoryConfig) { c.Levels.Table = []LevelEntry{{Rows: 1, Cols: 1}} }, false},
		{"negative bonus", func(c *MemoryConfig) { c.Levels.Table[0].Bonus = -1 }, false},
		{"unknown shape", func(c *MemoryConfig) { c.Levels.Table[2].Shape = "star" }, false},
		{"zero countdown", func(c *MemoryConfig) { c.Timing.Countdown = 0 }, false},
		{"negative match bonus", func(c *MemoryConfig) { c.Timing.MatchBonus = -2 }, false},
		{"zero peek allowed", func(c *MemoryConfig) { c.Timing.Peek = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultMemoryConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyNormal, p)

	p, err = ParsePreset("hard")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, p)

	_, err = ParsePreset("nightmare")
	assert.Error(t, err)
}

func TestApplyMemoryPreset(t *testing.T) {
	base := DefaultMemoryConfig()

	easy := DefaultMemoryConfig()
	ApplyMemoryPreset(&easy, DifficultyEasy)
	assert.Equal(t, 3, easy.Timing.MatchBonus)
	assert.Equal(t, 30, easy.Levels.Table[0].Bonus)
	assert.Equal(t, 3, easy.Levels.Table[1].Bonus)
	assert.Equal(t, 15, easy.Levels.GrowthBonus)
	assert.Equal(t, 2*base.Timing.Peek, easy.Timing.Peek)

	hard := DefaultMemoryConfig()
	ApplyMemoryPreset(&hard, DifficultyHard)
	assert.Equal(t, 1, hard.Timing.MatchBonus)
	assert.Equal(t, 10, hard.Levels.Table[0].Bonus)
	assert.Equal(t, 1, hard.Levels.Table[1].Bonus)
	assert.Equal(t, 5, hard.Levels.GrowthBonus)

	normal := DefaultMemoryConfig()
	ApplyMemoryPreset(&normal, DifficultyNormal)
	assert.Equal(t, base, normal)
}

func TestApplyMemoryPresetDoesNotAliasTable(t *testing.T) {
	shared := DefaultMemoryConfig()
	copyCfg := shared

	ApplyMemoryPreset(&copyCfg, DifficultyHard)
	assert.Equal(t, 20, shared.Levels.Table[0].Bonus)
}
