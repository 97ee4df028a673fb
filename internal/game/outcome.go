package game

// Outcome is the terminal-state signal of a session. A session starts at
// OutcomeNone and moves exactly once to OutcomeWin or OutcomeLose; there are
// no transitions out of a terminal state.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLose
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "running"
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Terminal reports whether the outcome ends the session.
func (o Outcome) Terminal() bool {
	return o == OutcomeWin || o == OutcomeLose
}

// OutcomeReport is the payload the core emits to the host on termination:
// the outcome, the tick it happened on, the level number for the banner, and
// a short machine-readable description of what ended the session.
type OutcomeReport struct {
	Outcome     Outcome
	Tick        int
	Level       int
	EnemyCount  int
	Description string
}
