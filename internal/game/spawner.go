package game

import "image/color"

const (
	// defaultSpawnDelay is the number of ticks after session start at which
	// the spawner populates the arena.
	defaultSpawnDelay = 100

	spawnedEnemySize = 20.0
)

// EnemySpawner populates the arena on a single delayed trigger: one enemy of
// each kind at fixed positions derived from the arena dimensions. The level
// number is carried and reported but does not currently vary the spawn mix.
//
// The trigger runs on the session's own tick dispatch (checked at the top of
// AdvanceTick, before any entity updates), so the enemy list is never
// mutated concurrently with iteration and a terminated session cancels any
// pending spawn implicitly.
type EnemySpawner struct {
	level   int
	delay   int
	spawned bool
}

// NewEnemySpawner creates a spawner firing once at tick delay. delay <= 0
// falls back to the default.
func NewEnemySpawner(level, delay int) *EnemySpawner {
	if delay <= 0 {
		delay = defaultSpawnDelay
	}
	return &EnemySpawner{level: level, delay: delay}
}

// Level returns the level the spawner was created for.
func (sp *EnemySpawner) Level() int { return sp.level }

// Delay returns the trigger tick.
func (sp *EnemySpawner) Delay() int { return sp.delay }

// Pending reports whether the spawn trigger has not fired yet.
func (sp *EnemySpawner) Pending() bool { return !sp.spawned }

// maybeSpawn fires the trigger once tick reaches the configured delay.
func (sp *EnemySpawner) maybeSpawn(s *Session, tick int) {
	if sp.spawned || tick < sp.delay {
		return
	}
	sp.spawned = true
	sp.createEnemies(s)
}

// createEnemies constructs one enemy of each kind at its fixed spawn
// position and appends all four to the session. Spawn positions and sizes
// are valid for any positive arena, so the constructors cannot fail here.
func (sp *EnemySpawner) createEnemies(s *Session) {
	w := s.ArenaWidth()
	h := s.ArenaHeight()
	hx, hy := s.Home().Pos()

	random, _ := NewRandomEnemy(100, 100, spawnedEnemySize,
		color.RGBA{R: 220, G: 40, B: 40, A: 255})
	chasing, _ := NewChasingEnemy(200, 200, spawnedEnemySize,
		color.RGBA{R: 40, G: 80, B: 220, A: 255})
	fencing, _ := NewFencingEnemy(float64(w-150), float64(h/2)-50, spawnedEnemySize,
		color.RGBA{R: 240, G: 150, B: 20, A: 255}, hx, hy)
	gate, _ := NewGateGuardEnemy(float64(w-100), float64(h/2), spawnedEnemySize,
		color.RGBA{R: 240, G: 130, B: 180, A: 255})

	s.AddEnemy(random)
	s.AddEnemy(chasing)
	s.AddEnemy(fencing)
	s.AddEnemy(gate)
}
