package game

import (
	"fmt"
	"image/color"
	"math"
)

// defaultPlayerSpeed is the player's walk speed in world units per tick.
const defaultPlayerSpeed = 5.0

// Player is the token the user steers by placing waypoints. It walks toward
// the active waypoint at constant speed and wins by entering Home.
type Player struct {
	x, y  float64
	speed float64
}

// NewPlayer creates the player at (x,y). speed must be positive.
func NewPlayer(x, y, speed float64) (*Player, error) {
	if speed <= 0 {
		return nil, fmt.Errorf("player speed %.2f: %w", speed, ErrInvalidConfiguration)
	}
	return &Player{x: x, y: y, speed: speed}, nil
}

// Update runs the player's tick: arrival check first, then one step toward
// the active waypoint. With no active waypoint the player does not move.
//
// The arrival check happens before any movement, so a tick that starts
// inside Home emits Win without computing a step. The waypoint is released
// when the pre-move remaining distance drops below one step length, which
// can overshoot the target by up to one step — accepted behaviour.
func (p *Player) Update(ctx *TickContext) Outcome {
	if ctx.Home.Contains(p.x, p.y) {
		return OutcomeWin
	}
	wx, wy, ok := ctx.Waypoint.Target()
	if !ok {
		return OutcomeNone
	}
	remaining := Dist(p.x, p.y, wx, wy)
	heading := HeadingTo(p.x, p.y, wx, wy)
	p.x += p.speed * math.Cos(heading)
	p.y += p.speed * math.Sin(heading)
	if remaining < p.speed {
		ctx.Waypoint.Deactivate()
	}
	return OutcomeNone
}

// Speed returns the player's walk speed in world units per tick.
func (p *Player) Speed() float64 { return p.speed }

func (p *Player) Pos() (float64, float64) { return p.x, p.y }
func (p *Player) Size() float64           { return 16 }
func (p *Player) Shape() Shape            { return ShapeTurtle }

func (p *Player) Color() color.RGBA {
	return color.RGBA{R: 30, G: 160, B: 60, A: 255}
}
