package game

import "image/color"

// TestSim is a headless session harness used by tests and the headless
// reporter. It wraps a real Session, feeds it scripted clicks at scheduled
// ticks, and exposes the session's SimLog for assertions.
type TestSim struct {
	Session *Session
	SimLog  *SimLog

	clicks []scheduledClick
}

type scheduledClick struct {
	tick int
	x, y float64
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptConfig simOptionKind = iota // mutate the Config — applied first
	simOptEntity                      // pre-place enemies, script clicks — applied after the session exists
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	cfg  func(*Config)
	fn   func(*TestSim)
}

// WithArenaSize sets the arena dimensions.
func WithArenaSize(w, h int) SimOption {
	return SimOption{kind: simOptConfig, cfg: func(c *Config) {
		c.ArenaWidth = w
		c.ArenaHeight = h
	}}
}

// WithLevel sets the level number carried by the session and spawner.
func WithLevel(level int) SimOption {
	return SimOption{kind: simOptConfig, cfg: func(c *Config) { c.Level = level }}
}

// WithPlayerSpeed overrides the player's walk speed.
func WithPlayerSpeed(speed float64) SimOption {
	return SimOption{kind: simOptConfig, cfg: func(c *Config) { c.PlayerSpeed = speed }}
}

// WithHomeSize overrides the home square side length.
func WithHomeSize(size float64) SimOption {
	return SimOption{kind: simOptConfig, cfg: func(c *Config) { c.HomeSize = size }}
}

// WithSpawnDelay sets the tick at which the enemy spawner fires.
func WithSpawnDelay(ticks int) SimOption {
	return SimOption{kind: simOptConfig, cfg: func(c *Config) { c.SpawnDelay = ticks }}
}

// WithVerbose enables per-tick verbose logging.
func WithVerbose(v bool) SimOption {
	return SimOption{kind: simOptConfig, cfg: func(c *Config) { c.Verbose = v }}
}

// testEnemyColor is the cosmetic colour for harness-placed enemies.
var testEnemyColor = color.RGBA{R: 200, G: 200, B: 200, A: 255}

// WithChasingEnemy pre-places a chasing enemy before tick 1.
func WithChasingEnemy(x, y, size float64) SimOption {
	return SimOption{kind: simOptEntity, fn: func(ts *TestSim) {
		e, err := NewChasingEnemy(x, y, size, testEnemyColor)
		if err != nil {
			panic(err)
		}
		ts.Session.AddEnemy(e)
	}}
}

// WithFencingEnemy pre-places a fencing enemy patrolling the session's home.
func WithFencingEnemy(x, y, size float64) SimOption {
	return SimOption{kind: simOptEntity, fn: func(ts *TestSim) {
		hx, hy := ts.Session.Home().Pos()
		e, err := NewFencingEnemy(x, y, size, testEnemyColor, hx, hy)
		if err != nil {
			panic(err)
		}
		ts.Session.AddEnemy(e)
	}}
}

// WithRandomEnemy pre-places a random-walk enemy.
func WithRandomEnemy(x, y, size float64) SimOption {
	return SimOption{kind: simOptEntity, fn: func(ts *TestSim) {
		e, err := NewRandomEnemy(x, y, size, testEnemyColor)
		if err != nil {
			panic(err)
		}
		ts.Session.AddEnemy(e)
	}}
}

// WithGateGuardEnemy pre-places a gate-guard enemy.
func WithGateGuardEnemy(x, y, size float64) SimOption {
	return SimOption{kind: simOptEntity, fn: func(ts *TestSim) {
		e, err := NewGateGuardEnemy(x, y, size, testEnemyColor)
		if err != nil {
			panic(err)
		}
		ts.Session.AddEnemy(e)
	}}
}

// WithClick schedules a click at (x,y) delivered just before the given tick
// runs.
func WithClick(tick int, x, y float64) SimOption {
	return SimOption{kind: simOptEntity, fn: func(ts *TestSim) {
		ts.ScheduleClick(tick, x, y)
	}}
}

// NewTestSim constructs a TestSim in two ordered passes: config options
// first, then a real Session, then entity/click options. Invalid harness
// configuration panics; tests always pass literal valid values.
func NewTestSim(opts ...SimOption) *TestSim {
	cfg := DefaultConfig()
	for _, o := range opts {
		if o.kind == simOptConfig {
			o.cfg(&cfg)
		}
	}
	s, err := NewSession(cfg)
	if err != nil {
		panic(err)
	}
	ts := &TestSim{Session: s, SimLog: s.Log()}
	for _, o := range opts {
		if o.kind == simOptEntity {
			o.fn(ts)
		}
	}
	return ts
}

// ScheduleClick queues a click for delivery just before the given tick runs.
func (ts *TestSim) ScheduleClick(tick int, x, y float64) {
	ts.clicks = append(ts.clicks, scheduledClick{tick: tick, x: x, y: y})
}

// Click forwards a click to the session immediately.
func (ts *TestSim) Click(x, y float64) {
	ts.Session.Click(x, y)
}

// deliverClicks sends every scheduled click due at the upcoming tick.
func (ts *TestSim) deliverClicks(upcoming int) {
	for _, c := range ts.clicks {
		if c.tick == upcoming {
			ts.Session.Click(c.x, c.y)
		}
	}
}

// RunTicks advances the session n ticks, delivering scheduled clicks.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ts.deliverClicks(ts.Session.Tick() + 1)
		ts.Session.AdvanceTick()
	}
}

// RunUntil advances the session up to maxTicks, stopping early if predicate
// returns true. Returns the tick at which the predicate was satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		ts.deliverClicks(ts.Session.Tick() + 1)
		ts.Session.AdvanceTick()
		if predicate(ts) {
			return ts.Session.Tick()
		}
	}
	return -1
}

// RunUntilOutcome advances until the session terminates, up to maxTicks.
// Returns the termination tick, or -1 if the session is still running.
func (ts *TestSim) RunUntilOutcome(maxTicks int) int {
	return ts.RunUntil(func(ts *TestSim) bool {
		return ts.Session.Outcome().Terminal()
	}, maxTicks)
}

// Snapshot captures a lightweight state summary for comparisons.
type SimSnapshot struct {
	Tick           int
	Outcome        Outcome
	PlayerX        float64
	PlayerY        float64
	WaypointActive bool
	Enemies        []EnemySnapshot
}

// EnemySnapshot is a lightweight copy of one enemy's state at a tick.
type EnemySnapshot struct {
	Label string
	Kind  EnemyKind
	X, Y  float64
}

// Snapshot returns the current state of the session.
func (ts *TestSim) Snapshot() SimSnapshot {
	s := ts.Session
	px, py := s.Player().Pos()
	snap := SimSnapshot{
		Tick:           s.Tick(),
		Outcome:        s.Outcome(),
		PlayerX:        px,
		PlayerY:        py,
		WaypointActive: s.Waypoint().Active(),
	}
	for _, e := range s.Enemies() {
		ex, ey := e.Pos()
		snap.Enemies = append(snap.Enemies, EnemySnapshot{
			Label: e.Label(),
			Kind:  e.Kind(),
			X:     ex,
			Y:     ey,
		})
	}
	return snap
}
