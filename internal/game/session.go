package game

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned by constructors when a speed, size, or
// dimension violates its invariant. It is the only error class in the core:
// all geometry is well-defined for any finite input.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Config carries the knobs a session is built from. Zero values are not
// defaulted; start from DefaultConfig and override.
type Config struct {
	ArenaWidth  int
	ArenaHeight int
	Level       int
	PlayerSpeed float64
	HomeSize    float64
	SpawnDelay  int  // ticks until the enemy spawner fires
	Verbose     bool // per-tick position logging in the SimLog
}

// DefaultConfig returns the standard arena: 800x600, home on the right edge
// side, player on the left, spawner at tick 100.
func DefaultConfig() Config {
	return Config{
		ArenaWidth:  800,
		ArenaHeight: 600,
		Level:       1,
		PlayerSpeed: defaultPlayerSpeed,
		HomeSize:    20,
		SpawnDelay:  defaultSpawnDelay,
	}
}

// Session owns the full simulation state: home, player, waypoint, the
// insertion-ordered enemy list, arena dimensions, level, and the terminal
// flag. It is single-threaded and cooperative; the host drives it through
// AdvanceTick and Click, and reads entity state back for drawing.
type Session struct {
	cfg      Config
	tick     int
	outcome  Outcome
	endTick  int
	endDesc  string
	home     *Home
	player   *Player
	waypoint *Waypoint
	enemies  []*Enemy
	spawner  *EnemySpawner
	log      *SimLog
}

// NewSession builds a session from cfg. Home sits 100 units in from the
// right edge at mid-height; the player starts 50 units in from the left at
// mid-height.
func NewSession(cfg Config) (*Session, error) {
	if cfg.ArenaWidth <= 0 || cfg.ArenaHeight <= 0 {
		return nil, fmt.Errorf("arena %dx%d: %w", cfg.ArenaWidth, cfg.ArenaHeight, ErrInvalidConfiguration)
	}
	home, err := NewHome(float64(cfg.ArenaWidth-100), float64(cfg.ArenaHeight/2), cfg.HomeSize)
	if err != nil {
		return nil, err
	}
	player, err := NewPlayer(50, float64(cfg.ArenaHeight/2), cfg.PlayerSpeed)
	if err != nil {
		return nil, err
	}
	s := &Session{
		cfg:      cfg,
		home:     home,
		player:   player,
		waypoint: NewWaypoint(),
		spawner:  NewEnemySpawner(cfg.Level, cfg.SpawnDelay),
		log:      NewSimLog(cfg.Verbose),
	}
	return s, nil
}

// Click forwards a host click to the waypoint. Ignored after termination.
func (s *Session) Click(x, y float64) {
	if s.outcome.Terminal() {
		return
	}
	s.waypoint.Activate(x, y)
	s.log.Add(s.tick, "waypoint", "waypoint", "activate", fmt.Sprintf("(%.0f,%.0f)", x, y), 0)
}

// AddEnemy appends an enemy to the session in insertion order and assigns
// its label. Enemies are only ever appended between ticks, never removed
// during play.
func (s *Session) AddEnemy(e *Enemy) {
	e.label = fmt.Sprintf("%s%d", e.kind, len(s.enemies))
	s.enemies = append(s.enemies, e)
	ex, ey := e.Pos()
	s.log.Add(s.tick, e.label, "spawn", "enemy", fmt.Sprintf("(%.0f,%.0f)", ex, ey), 0)
}

// AdvanceTick runs one simulation tick: pending spawn first, then Player,
// then Home (static no-op), then each enemy in insertion order. The first
// terminal signal wins and stops the tick. Calling after termination is a
// no-op, not an error.
func (s *Session) AdvanceTick() {
	if s.outcome.Terminal() {
		return
	}
	s.tick++
	s.spawner.maybeSpawn(s, s.tick)

	px, py := s.player.Pos()
	ctx := &TickContext{
		Tick:        s.tick,
		ArenaWidth:  s.cfg.ArenaWidth,
		ArenaHeight: s.cfg.ArenaHeight,
		PlayerX:     px,
		PlayerY:     py,
		Home:        s.home,
		Waypoint:    s.waypoint,
	}

	wasActive := s.waypoint.Active()
	if out := s.player.Update(ctx); out.Terminal() {
		s.finish(out, "player_reached_home")
		return
	}
	s.home.Update(ctx)

	// Enemies always see the post-update player position for this tick.
	ctx.PlayerX, ctx.PlayerY = s.player.Pos()

	for _, e := range s.enemies {
		if out := e.Update(ctx); out.Terminal() {
			s.finish(out, "caught_by_"+e.label)
			return
		}
	}

	if wasActive && !s.waypoint.Active() {
		s.log.Add(s.tick, "waypoint", "waypoint", "deactivate", "arrived", 0)
	}
	px, py = s.player.Pos()
	s.log.AddVerbose(s.tick, "player", "move", "position", fmt.Sprintf("(%.1f,%.1f)", px, py), 0)
}

func (s *Session) finish(out Outcome, desc string) {
	s.outcome = out
	s.endTick = s.tick
	s.endDesc = desc
	s.log.Add(s.tick, "session", "outcome", out.String(), desc, float64(s.tick))
}

// Outcome returns the terminal flag: OutcomeNone while running.
func (s *Session) Outcome() Outcome { return s.outcome }

// Report returns the termination payload for the host banner and headless
// reporting. Valid at any time; Outcome is OutcomeNone while running.
func (s *Session) Report() OutcomeReport {
	tick := s.endTick
	if !s.outcome.Terminal() {
		tick = s.tick
	}
	return OutcomeReport{
		Outcome:     s.outcome,
		Tick:        tick,
		Level:       s.cfg.Level,
		EnemyCount:  len(s.enemies),
		Description: s.endDesc,
	}
}

// Entities returns every entity in draw order: home and waypoint below,
// then enemies, then the player on top.
func (s *Session) Entities() []Entity {
	out := make([]Entity, 0, 3+len(s.enemies))
	out = append(out, s.home, s.waypoint)
	for _, e := range s.enemies {
		out = append(out, e)
	}
	out = append(out, s.player)
	return out
}

func (s *Session) Tick() int          { return s.tick }
func (s *Session) Level() int         { return s.cfg.Level }
func (s *Session) ArenaWidth() int    { return s.cfg.ArenaWidth }
func (s *Session) ArenaHeight() int   { return s.cfg.ArenaHeight }
func (s *Session) Home() *Home        { return s.home }
func (s *Session) Player() *Player    { return s.player }
func (s *Session) Waypoint() *Waypoint { return s.waypoint }
func (s *Session) Enemies() []*Enemy  { return s.enemies }
func (s *Session) Log() *SimLog       { return s.log }
