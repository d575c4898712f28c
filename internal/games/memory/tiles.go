package memory

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	// ErrOddTileCount is returned when a tile set cannot be split into pairs.
	ErrOddTileCount = errors.New("memory: tile count must be even and non-negative")

	// ErrPaletteExhausted is returned when more pairs are requested than
	// there are distinct pastel colors.
	ErrPaletteExhausted = errors.New("memory: not enough distinct colors")
)

const (
	// minPairDistance is the CIE94 distance below which two pair colors are
	// considered too alike to tell apart at a glance.
	minPairDistance = 0.06

	// spreadAttempts bounds the re-rolls spent looking for a well separated color.
	spreadAttempts = 24

	// spreadWindow is how many of the most recent picks a new color is
	// compared against. Larger boards would otherwise cost a comparison
	// against every pair on each draw.
	spreadWindow = 32
)

// Identity is what makes two tiles a pair.
type Identity struct {
	Shape Shape
	Color Color
}

// NewTileSet returns count identities, each appearing exactly twice, shuffled.
// Every pair gets its own color. When forced is ShapeAny each pair picks a
// random shape, otherwise every tile carries forced.
func NewTileSet(rng *rand.Rand, count int, forced Shape) ([]Identity, error) {
	if count < 0 || count%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrOddTileCount, count)
	}
	pairs := count / 2
	if pairs > paletteSize {
		return nil, fmt.Errorf("%w: %d pairs requested", ErrPaletteExhausted, pairs)
	}

	tiles := make([]Identity, 0, count)
	used := make(map[Color]struct{}, pairs)
	colors := make([]Color, 0, pairs)

	for range pairs {
		c := pickColor(rng, used, colors)
		used[c] = struct{}{}
		colors = append(colors, c)

		shape := forced
		if shape == ShapeAny {
			shape = Shape(1 + rng.Intn(shapeCount))
		}
		id := Identity{Shape: shape, Color: c}
		tiles = append(tiles, id, id)
	}

	Shuffle(rng, tiles)
	return tiles, nil
}

// pickColor draws a pastel color not in used. It prefers colors far from the
// last spreadWindow picks, settling for the best seen after spreadAttempts
// draws.
func pickColor(rng *rand.Rand, used map[Color]struct{}, picked []Color) Color {
	picked = picked[max(0, len(picked)-spreadWindow):]

	var best Color
	bestDist := -1.0

	for attempt := 0; ; attempt++ {
		c := randomPastel(rng)
		if _, dup := used[c]; dup {
			continue
		}

		d := nearest(c, picked)
		if d >= minPairDistance {
			return c
		}
		if d > bestDist {
			best, bestDist = c, d
		}
		if attempt >= spreadAttempts {
			return best
		}
	}
}

// nearest returns the distance from c to the closest color in picked.
func nearest(c Color, picked []Color) float64 {
	if len(picked) == 0 {
		return minPairDistance
	}
	closest := c.Distance(picked[0])
	for _, p := range picked[1:] {
		if d := c.Distance(p); d < closest {
			closest = d
		}
	}
	return closest
}

// Shuffle permutes s in place (Fisher-Yates).
func Shuffle[T any](rng *rand.Rand, s []T) {
	rng.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}
