package core

import "time"

// DefaultTickRate is the simulation rate used when none is configured.
const DefaultTickRate = 30

// RuntimeConfig is what the platform hands a game on Reset: the screen it
// draws into, how often Step runs and the seed for its RNG.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int   // Steps per second
	Seed     int64 // 0 lets the platform pick a time-based seed
}

// DefaultConfig returns an 80x24 screen at the default tick rate.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: DefaultTickRate}
}

// Normalize fills in a missing tick rate and, when seed is 0, a seed taken
// from now.
func (c RuntimeConfig) Normalize(now time.Time) RuntimeConfig {
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	if c.Seed == 0 {
		c.Seed = now.UnixNano()
	}
	return c
}

// TickDuration is the virtual time one Step covers.
func (c RuntimeConfig) TickDuration() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}

// GameState is the part of a game the platform acts on.
type GameState struct {
	Score    int // Pairs matched so far
	Level    int // 0-based
	GameOver bool
	Paused   bool // Paused, waiting to start, or the window is too small
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
}

// LogEntry is a notable game moment the platform may write to its log.
// KeyVals alternate keys and values.
type LogEntry struct {
	Msg     string
	KeyVals []any
}

// RunSummary describes a finished session for persistence.
type RunSummary struct {
	Level      int           // Highest level reached (0-based)
	Pairs      int           // Pairs matched
	Mismatches int           // Failed comparisons
	Flips      int           // Tiles turned face up
	Played     time.Duration // Game time from start to game over
	Difficulty string
}
