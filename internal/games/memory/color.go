package memory

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque RGB tile color.
type Color struct {
	R, G, B uint8
}

// pastelLevels is the number of values a pastel channel can take (127..255).
const pastelLevels = 129

// paletteSize is the number of distinct pastel colors.
const paletteSize = pastelLevels * pastelLevels * pastelLevels

// Alpha is always fully opaque.
func (c Color) Alpha() float64 {
	return 1
}

// Colorful converts the color for perceptual math.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// Hex returns the color as #rrggbb.
func (c Color) Hex() string {
	return c.Colorful().Hex()
}

// Distance returns the CIE94 distance between two colors.
func (c Color) Distance(o Color) float64 {
	return c.Colorful().DistanceCIE94(o.Colorful())
}

// randomPastel mixes a uniform channel value with white.
func randomPastel(rng *rand.Rand) Color {
	channel := func() uint8 {
		return uint8((rng.Intn(256) + 255) / 2)
	}
	return Color{R: channel(), G: channel(), B: channel()}
}
