package core

import (
	"testing"
	"time"
)

func TestColorANSI(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{ColorDefault, ""},
		{ColorRed, "1"},
		{ColorBlue, "4"},
		{ColorBrightCyan, "14"},
		{ColorGray, "245"},
		{Color(200), ""},
	}

	for _, tt := range tests {
		if got := tt.c.ANSI(); got != tt.want {
			t.Errorf("Color(%d).ANSI() = %q, expected %q", tt.c, got, tt.want)
		}
	}
}

func TestRuntimeConfigNormalize(t *testing.T) {
	now := time.Unix(100, 5)

	cfg := RuntimeConfig{ScreenW: 80, ScreenH: 24}.Normalize(now)
	if cfg.TickRate != DefaultTickRate {
		t.Errorf("TickRate = %d, expected %d", cfg.TickRate, DefaultTickRate)
	}
	if cfg.Seed != now.UnixNano() {
		t.Errorf("Seed = %d, expected %d", cfg.Seed, now.UnixNano())
	}

	kept := RuntimeConfig{TickRate: 60, Seed: 7}.Normalize(now)
	if kept.TickRate != 60 || kept.Seed != 7 {
		t.Errorf("Normalize() changed explicit values: %+v", kept)
	}
}

func TestRuntimeConfigTickDuration(t *testing.T) {
	if got := (RuntimeConfig{TickRate: 50}).TickDuration(); got != 20*time.Millisecond {
		t.Errorf("TickDuration() = %v, expected 20ms", got)
	}
	if got := (RuntimeConfig{}).TickDuration(); got != time.Second/DefaultTickRate {
		t.Errorf("TickDuration() = %v, expected default", got)
	}
}
