package core

// Color is a palette entry for text, frames and overlays. Tile faces carry
// their own RGB instead.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
	ColorGray

	paletteSize
)

// PaletteSize is the number of palette entries, ColorDefault included.
const PaletteSize = int(paletteSize)

var ansiCodes = [paletteSize]string{
	ColorRed:          "1",
	ColorGreen:        "2",
	ColorYellow:       "3",
	ColorBlue:         "4",
	ColorCyan:         "6",
	ColorWhite:        "7",
	ColorBrightRed:    "9",
	ColorBrightGreen:  "10",
	ColorBrightYellow: "11",
	ColorBrightCyan:   "14",
	ColorBrightWhite:  "15",
	ColorGray:         "245",
}

// ANSI returns the 256-color code for c, or "" for the terminal default
// and for values outside the palette.
func (c Color) ANSI() string {
	if c >= paletteSize {
		return ""
	}
	return ansiCodes[c]
}

// RGB is a 24-bit color. Cells carrying an RGB value are drawn in true color
// and take precedence over the palette Color.
type RGB struct {
	R, G, B uint8
}
