package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/memory-arcade/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"w", runeKey("w"), core.ActionUp, false},
		{"j", runeKey("j"), core.ActionDown, false},
		{"a", runeKey("a"), core.ActionLeft, false},
		{"l", runeKey("l"), core.ActionRight, false},
		{"space", runeKey(" "), core.ActionFlip, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"pause", runeKey("p"), core.ActionPause, false},
		{"restart", runeKey("r"), core.ActionRestart, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionBack, false},
		{"b", runeKey("b"), core.ActionBack, false},
		{"q", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("z"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := keys.MapKey(tt.msg)
			assert.Equal(t, tt.action, action)
			assert.Equal(t, tt.quit, quit)
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	keys := DefaultKeyMap()
	frame := core.NewInputFrame()

	assert.False(t, keys.MapKeyToFrame(runeKey(" "), &frame))
	assert.False(t, keys.MapKeyToFrame(runeKey("z"), &frame))
	assert.True(t, frame.Has(core.ActionFlip))
	assert.False(t, frame.Has(core.ActionNone))

	assert.True(t, keys.MapKeyToFrame(runeKey("q"), &frame))
}

func TestMapMouseToFrame(t *testing.T) {
	frame := core.NewInputFrame()

	press := tea.MouseMsg{X: 27, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	assert.True(t, MapMouseToFrame(press, &frame))

	ignored := []tea.MouseMsg{
		{X: 1, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
		{X: 1, Y: 1, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone},
		{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
	}
	for _, msg := range ignored {
		assert.False(t, MapMouseToFrame(msg, &frame))
	}

	assert.Equal(t, []core.Click{{X: 27, Y: 7}}, frame.Clicks)
	assert.False(t, frame.Has(core.ActionUp))

	wheel := tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}
	assert.True(t, MapMouseToFrame(wheel, &frame))
	assert.True(t, frame.Has(core.ActionDown))
	assert.Len(t, frame.Clicks, 1)
}

func TestMapKeyToMenuAction(t *testing.T) {
	assert.Equal(t, MenuActionUp, MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyUp}))
	assert.Equal(t, MenuActionDown, MapKeyToMenuAction(runeKey("s")))
	assert.Equal(t, MenuActionSelect, MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, MenuActionBack, MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEscape}))
	assert.Equal(t, MenuActionScoreboard, MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}))
	assert.Equal(t, MenuActionQuit, MapKeyToMenuAction(runeKey("q")))
	assert.Equal(t, MenuActionNone, MapKeyToMenuAction(runeKey("x")))
}
