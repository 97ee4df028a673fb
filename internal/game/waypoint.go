package game

import "image/color"

// waypointArm is the half-length of the cross marker the host draws.
const waypointArm = 10.0

// Waypoint is the player's current navigation target. It starts inactive,
// is activated by a click, and is deactivated by the player on arrival. The
// stored coordinates are meaningful only while active.
type Waypoint struct {
	x, y   float64
	active bool
}

func NewWaypoint() *Waypoint { return &Waypoint{} }

// Activate sets the target to (x,y). Reactivating while already active
// simply overwrites the target, abandoning progress toward the previous one.
func (w *Waypoint) Activate(x, y float64) {
	w.x = x
	w.y = y
	w.active = true
}

// Deactivate marks the waypoint inactive. The stored coordinates are kept;
// only the rendering boundary ever looks at them while inactive.
func (w *Waypoint) Deactivate() { w.active = false }

// Active reports whether the waypoint currently has a live target.
func (w *Waypoint) Active() bool { return w.active }

// Target returns the current target and ok=true while active. While
// inactive it returns the (0,0,false) sentinel; callers must not treat this
// as fatal.
func (w *Waypoint) Target() (x, y float64, ok bool) {
	if !w.active {
		return 0, 0, false
	}
	return w.x, w.y, true
}

// Update is a no-op: a waypoint is fixed once placed.
func (w *Waypoint) Update(_ *TickContext) Outcome { return OutcomeNone }

func (w *Waypoint) Pos() (float64, float64) { return w.x, w.y }
func (w *Waypoint) Size() float64           { return waypointArm * 2 }
func (w *Waypoint) Shape() Shape            { return ShapeCross }

func (w *Waypoint) Color() color.RGBA {
	return color.RGBA{R: 30, G: 180, B: 30, A: 255}
}
