package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/memory-arcade/internal/core"
)

// paletteStyles holds one lipgloss style per palette entry.
var paletteStyles = func() [core.PaletteSize]lipgloss.Style {
	var styles [core.PaletteSize]lipgloss.Style
	for i := range styles {
		styles[i] = lipgloss.NewStyle()
		if code := core.Color(i).ANSI(); code != "" {
			styles[i] = styles[i].Foreground(lipgloss.Color(code))
		}
	}
	return styles
}()

// cellStyle is the part of a cell that decides its ANSI styling.
type cellStyle struct {
	color     core.Color
	rgb       core.RGB
	trueColor bool
}

func styleOf(c core.Cell) cellStyle {
	if c.TrueColor {
		return cellStyle{rgb: c.RGB, trueColor: true}
	}
	return cellStyle{color: c.Color}
}

// lipglossStyle resolves a cell style. True-color cells are degraded by
// lipgloss to whatever the terminal profile supports.
func (s cellStyle) lipglossStyle() lipgloss.Style {
	if s.trueColor {
		hex := colorful.Color{
			R: float64(s.rgb.R) / 255,
			G: float64(s.rgb.G) / 255,
			B: float64(s.rgb.B) / 255,
		}.Hex()
		return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	}
	if int(s.color) >= core.PaletteSize {
		return paletteStyles[core.ColorDefault]
	}
	return paletteStyles[s.color]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := styleOf(s.GetCell(x, y))

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if styleOf(cell) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(start.lipglossStyle().Render(run.String()))
		}
	}
	return sb.String()
}
