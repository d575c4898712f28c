package memory

import (
	"fmt"
	"time"

	"github.com/vovakirdan/memory-arcade/internal/config"
)

// Rules holds the tunable parameters of a session.
type Rules struct {
	Levels LevelTable

	Countdown       time.Duration // Period of the one-second countdown
	MatchBonus      int           // Seconds awarded per matched pair
	BonusDisplay    time.Duration // How long a "+N" indicator stays visible
	TransitionDelay time.Duration // Pause between clearing a board and the next level
	Peek            time.Duration // How long a mismatched pair keeps showing its faces
}

// DefaultRules returns the rules of the built-in configuration.
func DefaultRules() Rules {
	r, err := RulesFromConfig(config.DefaultMemoryConfig())
	if err != nil {
		panic(err)
	}
	return r
}

// RulesFromConfig converts a loaded configuration into rules.
func RulesFromConfig(cfg config.MemoryConfig) (Rules, error) {
	if err := cfg.Validate(); err != nil {
		return Rules{}, err
	}
	table, err := LevelTableFromConfig(cfg.Levels)
	if err != nil {
		return Rules{}, fmt.Errorf("memory: levels: %w", err)
	}
	return Rules{
		Levels:          table,
		Countdown:       cfg.Timing.Countdown,
		MatchBonus:      cfg.Timing.MatchBonus,
		BonusDisplay:    cfg.Timing.BonusDisplay,
		TransitionDelay: cfg.Timing.TransitionDelay,
		Peek:            cfg.Timing.Peek,
	}, nil
}
