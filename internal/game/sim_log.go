package game

import (
	"fmt"
	"strings"
)

// SimLogEntry is one recorded event during a session.
type SimLogEntry struct {
	Tick     int
	Entity   string  // label e.g. "player", "chasing1", or "session" for global events
	Category string  // waypoint, spawn, move, outcome
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] waypoint  waypoint  activate  (400,300)
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-10s %-9s %-12s %s",
		e.Tick, e.Entity, e.Category, e.Key, e.Value)
}

// SimLog collects structured events during a session. It is unbounded and
// machine-readable; tests and the headless reporter filter it, the windowed
// host dumps recent windows of it into the debug report.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. If verbose is true, per-tick position entries
// are also recorded (useful for detailed debugging).
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Add records a new entry.
func (sl *SimLog) Add(tick int, entity, category, key, value string, numVal float64) {
	sl.entries = append(sl.entries, SimLogEntry{
		Tick:     tick,
		Entity:   entity,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(tick int, entity, category, key, value string, numVal float64) {
	if !sl.verbose {
		return
	}
	sl.Add(tick, entity, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterEntity returns entries for a specific entity label.
func (sl *SimLog) FilterEntity(label string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Entity == label {
			out = append(out, e)
		}
	}
	return out
}

// FilterTickRange returns entries within [fromTick, toTick] inclusive.
func (sl *SimLog) FilterTickRange(fromTick, toTick int) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Tick >= fromTick && e.Tick <= toTick {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many entries match the given category and key.
func (sl *SimLog) CountCategory(category, key string) int {
	return len(sl.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	entries := sl.Filter(category, key)
	if len(entries) == 0 {
		return SimLogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the full log as a single string for t.Log output.
func (sl *SimLog) Format() string {
	var sb strings.Builder
	for _, e := range sl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatRange returns a log string filtered to a tick range.
func (sl *SimLog) FormatRange(fromTick, toTick int) string {
	var sb strings.Builder
	for _, e := range sl.FilterTickRange(fromTick, toTick) {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Summary returns a short human-readable summary of the session state.
func (sl *SimLog) Summary(s *Session) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Summary at T=%03d ---\n", s.Tick())

	px, py := s.Player().Pos()
	fmt.Fprintf(&sb, "Player: (%.1f,%.1f) speed=%.1f\n", px, py, s.Player().Speed())

	if wx, wy, ok := s.Waypoint().Target(); ok {
		fmt.Fprintf(&sb, "Waypoint: active (%.1f,%.1f)  dist=%.1f\n", wx, wy, Dist(px, py, wx, wy))
	} else {
		sb.WriteString("Waypoint: inactive\n")
	}

	hx, hy := s.Home().Pos()
	fmt.Fprintf(&sb, "Home: (%.0f,%.0f) size=%.0f  contains_player=%v\n",
		hx, hy, s.Home().Size(), s.Home().Contains(px, py))

	if len(s.Enemies()) == 0 {
		sb.WriteString("Enemies: none\n")
	} else {
		for _, e := range s.Enemies() {
			ex, ey := e.Pos()
			fmt.Fprintf(&sb, "Enemy %s: (%.1f,%.1f) size=%.0f dist_to_player=%.1f\n",
				e.Label(), ex, ey, e.Size(), Dist(ex, ey, px, py))
		}
	}

	fmt.Fprintf(&sb, "Outcome: %s", s.Outcome())
	if rep := s.Report(); rep.Outcome.Terminal() {
		fmt.Fprintf(&sb, " (T=%d, %s)", rep.Tick, rep.Description)
	}
	sb.WriteByte('\n')
	return sb.String()
}
