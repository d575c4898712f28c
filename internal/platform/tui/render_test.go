package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/memory-arcade/internal/core"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "Time")
	s.SetRGB(5, 1, '■', core.RGB{R: 255, G: 128, B: 127})
	s.SetColored(0, 1, 'x', core.ColorGreen)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)

	// Escape sequences vary with the terminal profile; the text does not.
	plain := []string{"Time  ", "x    ■"}
	for i, line := range lines {
		assert.Equal(t, plain[i], stripANSI(line))
		assert.Equal(t, 6, lipgloss.Width(line))
	}
}

func TestStyleOf(t *testing.T) {
	rgb := core.RGB{R: 1, G: 2, B: 3}
	a := styleOf(core.Cell{Rune: 'a', RGB: rgb, TrueColor: true})
	b := styleOf(core.Cell{Rune: 'b', RGB: rgb, TrueColor: true, Color: core.ColorRed})
	c := styleOf(core.Cell{Rune: 'c', Color: core.ColorRed})

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func stripANSI(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEsc = false
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
