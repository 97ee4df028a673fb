package game

import "image/color"

// Shape tells the rendering boundary which visual to draw for an entity.
// The simulation core never draws; it only reports geometry.
type Shape int

const (
	ShapeCross  Shape = iota // waypoint marker
	ShapeRect                // home square
	ShapeTurtle              // player token
	ShapeCircle              // enemies
)

// TickContext is the read-only session view handed to every entity update.
// Entities see only the query surface they need (arena bounds, player
// position, home, waypoint) rather than the whole session.
type TickContext struct {
	Tick        int
	ArenaWidth  int
	ArenaHeight int

	// Player position as of this tick. The session refreshes these after the
	// player moves, so enemy pursuit and collision always see the post-update
	// position, never a stale one.
	PlayerX float64
	PlayerY float64

	Home     *Home
	Waypoint *Waypoint
}

// Entity is the per-tick lifecycle contract every simulated object follows.
// Update returns OutcomeNone while play continues; the first non-none result
// in a tick terminates the session.
type Entity interface {
	Update(ctx *TickContext) Outcome
	Pos() (x, y float64)
	Size() float64
	Color() color.RGBA
	Shape() Shape
}
