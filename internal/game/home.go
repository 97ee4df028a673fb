package game

import (
	"fmt"
	"image/color"
)

// Home is the fixed goal region: an axis-aligned square the player must
// reach. It never moves after creation.
type Home struct {
	x, y float64
	size float64
}

// NewHome creates a home square centred on (x,y). size is the full side
// length and must be positive.
func NewHome(x, y, size float64) (*Home, error) {
	if size <= 0 {
		return nil, fmt.Errorf("home size %.2f: %w", size, ErrInvalidConfiguration)
	}
	return &Home{x: x, y: y, size: size}, nil
}

// Contains reports whether the point (x,y) lies inside the home square,
// bounds inclusive. Pure query, no state change.
func (h *Home) Contains(x, y float64) bool {
	return inSquare(x, y, h.x, h.y, h.size)
}

// Update is a no-op: home is static.
func (h *Home) Update(_ *TickContext) Outcome { return OutcomeNone }

func (h *Home) Pos() (float64, float64) { return h.x, h.y }
func (h *Home) Size() float64           { return h.size }
func (h *Home) Shape() Shape            { return ShapeRect }

func (h *Home) Color() color.RGBA {
	return color.RGBA{R: 150, G: 75, B: 0, A: 255} // brown outline
}
