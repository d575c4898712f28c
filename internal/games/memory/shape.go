// Package memory implements the tile-matching memory game: a grid of
// face-down tiles revealed two at a time against a countdown.
package memory

import "fmt"

// Shape is the glyph painted on a tile face.
type Shape uint8

const (
	ShapeAny Shape = iota // No forced shape; each pair picks one at random
	ShapeSquare
	ShapeCircle
	ShapeTriangle
	ShapeHeart
)

// shapeCount is the number of drawable shapes (ShapeAny excluded).
const shapeCount = 4

// String returns the config name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeAny:
		return ""
	case ShapeSquare:
		return "square"
	case ShapeCircle:
		return "circle"
	case ShapeTriangle:
		return "triangle"
	case ShapeHeart:
		return "heart"
	default:
		return "unknown"
	}
}

// Glyph returns the rune drawn for the shape.
func (s Shape) Glyph() rune {
	switch s {
	case ShapeSquare:
		return '■'
	case ShapeCircle:
		return '●'
	case ShapeTriangle:
		return '▲'
	case ShapeHeart:
		return '♥'
	default:
		return '?'
	}
}

// ParseShape converts a config name to a Shape. The empty string is ShapeAny.
func ParseShape(name string) (Shape, error) {
	switch name {
	case "":
		return ShapeAny, nil
	case "square":
		return ShapeSquare, nil
	case "circle":
		return ShapeCircle, nil
	case "triangle":
		return ShapeTriangle, nil
	case "heart":
		return ShapeHeart, nil
	default:
		return ShapeAny, fmt.Errorf("memory: unknown shape %q", name)
	}
}
