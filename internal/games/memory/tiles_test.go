package memory

import (
	"errors"
	"math/rand"
	"testing"
)

func TestNewTileSetPairs(t *testing.T) {
	for _, count := range []int{0, 2, 8, 16, 34, 120} {
		rng := rand.New(rand.NewSource(int64(count)))
		tiles, err := NewTileSet(rng, count, ShapeAny)
		if err != nil {
			t.Fatalf("NewTileSet(%d) error = %v", count, err)
		}
		if len(tiles) != count {
			t.Errorf("NewTileSet(%d) len = %d, expected %d", count, len(tiles), count)
		}

		seen := make(map[Identity]int)
		colors := make(map[Color]Shape)
		for _, id := range tiles {
			seen[id]++
			if id.Shape == ShapeAny {
				t.Errorf("NewTileSet(%d) produced a tile without a shape", count)
			}
			if prev, ok := colors[id.Color]; ok && prev != id.Shape {
				t.Errorf("color %v used by two pairs", id.Color)
			}
			colors[id.Color] = id.Shape
		}
		for id, n := range seen {
			if n != 2 {
				t.Errorf("identity %v appears %d times, expected 2", id, n)
			}
		}
	}
}

func TestNewTileSetForcedShape(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tiles, err := NewTileSet(rng, 12, ShapeHeart)
	if err != nil {
		t.Fatalf("NewTileSet() error = %v", err)
	}
	for _, id := range tiles {
		if id.Shape != ShapeHeart {
			t.Errorf("tile shape = %v, expected heart", id.Shape)
		}
	}
}

func TestNewTileSetPastelColors(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	tiles, err := NewTileSet(rng, 200, ShapeAny)
	if err != nil {
		t.Fatalf("NewTileSet() error = %v", err)
	}
	for _, id := range tiles {
		for _, ch := range []uint8{id.Color.R, id.Color.G, id.Color.B} {
			if ch < 127 {
				t.Fatalf("channel %d below pastel range in %v", ch, id.Color)
			}
		}
		if id.Color.Alpha() != 1 {
			t.Errorf("Alpha() = %v, expected 1", id.Color.Alpha())
		}
	}
}

func TestNewTileSetErrors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, count := range []int{-2, 1, 9} {
		if _, err := NewTileSet(rng, count, ShapeAny); !errors.Is(err, ErrOddTileCount) {
			t.Errorf("NewTileSet(%d) error = %v, expected ErrOddTileCount", count, err)
		}
	}

	if _, err := NewTileSet(rng, 2*(paletteSize+1), ShapeAny); !errors.Is(err, ErrPaletteExhausted) {
		t.Errorf("NewTileSet(oversized) error = %v, expected ErrPaletteExhausted", err)
	}
}

func TestNewTileSetLarge(t *testing.T) {
	const pairs = 2000
	rng := rand.New(rand.NewSource(21))

	ids, err := NewTileSet(rng, 2*pairs, ShapeAny)
	if err != nil {
		t.Fatalf("NewTileSet(%d) error = %v", 2*pairs, err)
	}

	counts := make(map[Color]int, pairs)
	for _, id := range ids {
		counts[id.Color]++
	}
	if len(counts) != pairs {
		t.Fatalf("got %d colors, expected %d", len(counts), pairs)
	}
	for c, n := range counts {
		if n != 2 {
			t.Errorf("color %v appears %d times, expected 2", c, n)
		}
	}
}

func TestPickColorComparesRecentPicks(t *testing.T) {
	rng := rand.New(rand.NewSource(22))
	used := make(map[Color]struct{})
	var picked []Color
	for range spreadWindow * 3 {
		c := pickColor(rng, used, picked)
		used[c] = struct{}{}
		picked = append(picked, c)
	}
	if len(used) != len(picked) {
		t.Fatalf("pickColor() repeated a color: %d distinct of %d", len(used), len(picked))
	}

	// Older picks do not influence the draw.
	full := pickColor(rand.New(rand.NewSource(23)), used, picked)
	recent := pickColor(rand.New(rand.NewSource(23)), used, picked[len(picked)-spreadWindow:])
	if full != recent {
		t.Errorf("pickColor() = %v with full history, %v with the last %d", full, recent, spreadWindow)
	}
}

func TestNewTileSetDeterministic(t *testing.T) {
	a, _ := NewTileSet(rand.New(rand.NewSource(99)), 30, ShapeAny)
	b, _ := NewTileSet(rand.New(rand.NewSource(99)), 30, ShapeAny)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tile %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestShufflePermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	s := make([]int, 50)
	for i := range s {
		s[i] = i
	}

	Shuffle(rng, s)

	seen := make([]bool, len(s))
	moved := 0
	for i, v := range s {
		if seen[v] {
			t.Fatalf("value %d appears twice", v)
		}
		seen[v] = true
		if v != i {
			moved++
		}
	}
	if moved == 0 {
		t.Error("Shuffle() left every element in place")
	}
}

func TestColorHex(t *testing.T) {
	c := Color{R: 255, G: 128, B: 127}
	if got := c.Hex(); got != "#ff807f" {
		t.Errorf("Hex() = %q, expected %q", got, "#ff807f")
	}
}

func TestParseShape(t *testing.T) {
	tests := []struct {
		in      string
		want    Shape
		wantErr bool
	}{
		{"", ShapeAny, false},
		{"square", ShapeSquare, false},
		{"circle", ShapeCircle, false},
		{"triangle", ShapeTriangle, false},
		{"heart", ShapeHeart, false},
		{"star", ShapeAny, true},
	}
	for _, tt := range tests {
		got, err := ParseShape(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseShape(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseShape(%q) = %v, expected %v", tt.in, got, tt.want)
		}
		if !tt.wantErr && got.String() != tt.in {
			t.Errorf("%v.String() = %q, expected %q", got, got.String(), tt.in)
		}
	}
}
