package game

import (
	"fmt"
	"image/color"
	"math"
)

const (
	chaseSpeed = 3.0 // chasing enemy, world units per tick
	walkSpeed  = 3.0 // random / gate-guard walkers
	fenceSpeed = 2.0 // fencing patrol

	// patrolHalfExtent is half the side length of the square patrol box a
	// fencing enemy walks around Home.
	patrolHalfExtent = 50.0

	// initialWalkAngle is the starting walk angle of random and gate-guard
	// enemies, in radians. The value is 45 radians, not 45 degrees: the
	// walkers wander on a large effective angle rather than a neat diagonal.
	initialWalkAngle = 45.0
)

// EnemyKind selects one of the four motion policies. The set is closed: a
// single dispatch in Update covers every variant exhaustively.
type EnemyKind int

const (
	EnemyChasing EnemyKind = iota
	EnemyFencing
	EnemyRandom
	EnemyGateGuard
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyChasing:
		return "chasing"
	case EnemyFencing:
		return "fencing"
	case EnemyRandom:
		return "random"
	case EnemyGateGuard:
		return "gateguard"
	default:
		return "unknown"
	}
}

// Enemy is one hostile entity. All four kinds share the same record:
// position, collision box size, cosmetic colour, and the behaviour state
// only some kinds use (walk angle, patrol step, patrol corners).
type Enemy struct {
	x, y  float64
	size  float64
	kind  EnemyKind
	color color.RGBA
	label string // assigned when added to a session; "" until then

	angle   float64       // random / gate-guard walk angle, radians
	step    int           // fencing patrol phase, 0..3
	corners [4][2]float64 // fencing patrol corners, clockwise from top-left
}

func newEnemy(kind EnemyKind, x, y, size float64, col color.RGBA) (*Enemy, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%s enemy size %.2f: %w", kind, size, ErrInvalidConfiguration)
	}
	return &Enemy{x: x, y: y, size: size, kind: kind, color: col}, nil
}

// NewChasingEnemy creates a pure-pursuit enemy at (x,y).
func NewChasingEnemy(x, y, size float64, col color.RGBA) (*Enemy, error) {
	return newEnemy(EnemyChasing, x, y, size, col)
}

// NewFencingEnemy creates a perimeter-patrol enemy at (x,y). The patrol
// corners are computed once here from Home's position at construction time;
// Home never moves, so they are never re-derived.
func NewFencingEnemy(x, y, size float64, col color.RGBA, homeX, homeY float64) (*Enemy, error) {
	e, err := newEnemy(EnemyFencing, x, y, size, col)
	if err != nil {
		return nil, err
	}
	c := patrolHalfExtent
	e.corners = [4][2]float64{
		{homeX - c, homeY - c},
		{homeX + c, homeY - c},
		{homeX + c, homeY + c},
		{homeX - c, homeY + c},
	}
	return e, nil
}

// NewRandomEnemy creates a bounded random walker at (x,y).
func NewRandomEnemy(x, y, size float64, col color.RGBA) (*Enemy, error) {
	e, err := newEnemy(EnemyRandom, x, y, size, col)
	if err != nil {
		return nil, err
	}
	e.angle = initialWalkAngle
	return e, nil
}

// NewGateGuardEnemy creates a walker confined to the gate region near Home's
// side of the arena.
func NewGateGuardEnemy(x, y, size float64, col color.RGBA) (*Enemy, error) {
	e, err := newEnemy(EnemyGateGuard, x, y, size, col)
	if err != nil {
		return nil, err
	}
	e.angle = initialWalkAngle
	return e, nil
}

// HitsPlayer is the shared box collision test: the player's point position
// against the enemy's own half-size box, strict inequality on both axes. A
// player exactly on the boundary does not count as hit. The test depends
// only on relative position.
func (e *Enemy) HitsPlayer(px, py float64) bool {
	return inSquareStrict(px, py, e.x, e.y, e.size)
}

// Update runs the enemy's collision check and one motion step. On a hit the
// motion step is skipped and Lose is emitted. The chasing kind uses a
// circular threshold (distance below size) instead of the box test.
func (e *Enemy) Update(ctx *TickContext) Outcome {
	switch e.kind {
	case EnemyChasing:
		if Dist(e.x, e.y, ctx.PlayerX, ctx.PlayerY) < e.size {
			return OutcomeLose
		}
		a := HeadingTo(e.x, e.y, ctx.PlayerX, ctx.PlayerY)
		e.x += chaseSpeed * math.Cos(a)
		e.y += chaseSpeed * math.Sin(a)

	case EnemyFencing:
		if e.HitsPlayer(ctx.PlayerX, ctx.PlayerY) {
			return OutcomeLose
		}
		e.stepPatrol()

	case EnemyRandom:
		if e.HitsPlayer(ctx.PlayerX, ctx.PlayerY) {
			return OutcomeLose
		}
		e.walk(0, float64(ctx.ArenaWidth), 0, float64(ctx.ArenaHeight))

	case EnemyGateGuard:
		if e.HitsPlayer(ctx.PlayerX, ctx.PlayerY) {
			return OutcomeLose
		}
		w := ctx.ArenaWidth
		h := ctx.ArenaHeight
		e.walk(float64(w-w/4), float64(w), float64(h/3), float64(h-h/3))
	}
	return OutcomeNone
}

// stepPatrol advances the fencing patrol: phase 0 walks +x along the top
// edge, 1 walks +y down the right edge, 2 walks -x along the bottom, 3 walks
// -y up the left edge, then wraps.
func (e *Enemy) stepPatrol() {
	switch e.step {
	case 0:
		e.x += fenceSpeed
		if e.x >= e.corners[1][0] {
			e.step++
		}
	case 1:
		e.y += fenceSpeed
		if e.y >= e.corners[2][1] {
			e.step++
		}
	case 2:
		e.x -= fenceSpeed
		if e.x <= e.corners[3][0] {
			e.step++
		}
	case 3:
		e.y -= fenceSpeed
		if e.y <= e.corners[0][1] {
			e.step = 0
		}
	}
}

// walk advances one step along the stored angle, then reflects the angle off
// whichever bounds the position has left: pi-a off the x bounds, -a off the
// y bounds. Both reflections may apply in the same tick. Position is never
// clamped, so a walker can sit outside the box by up to one step before the
// reflection walks it back.
func (e *Enemy) walk(minX, maxX, minY, maxY float64) {
	e.x += walkSpeed * math.Cos(e.angle)
	e.y += walkSpeed * math.Sin(e.angle)
	if e.x < minX || e.x > maxX {
		e.angle = math.Pi - e.angle
	}
	if e.y < minY || e.y > maxY {
		e.angle = -e.angle
	}
}

// Kind returns the enemy's motion policy tag.
func (e *Enemy) Kind() EnemyKind { return e.kind }

// Label returns the session-assigned identifier, e.g. "random0".
func (e *Enemy) Label() string { return e.label }

func (e *Enemy) Pos() (float64, float64) { return e.x, e.y }
func (e *Enemy) Size() float64           { return e.size }
func (e *Enemy) Shape() Shape            { return ShapeCircle }
func (e *Enemy) Color() color.RGBA       { return e.color }
