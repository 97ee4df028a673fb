package game

import (
	"fmt"
	"strings"
)

// DebugReport builds a plain-text report of the last lastTicks ticks: the
// session summary plus the event log window. The windowed host copies this
// to the clipboard on demand.
func (s *Session) DebugReport(lastTicks int) string {
	if lastTicks <= 0 {
		lastTicks = 120
	}
	toTick := s.tick
	fromTick := toTick - lastTicks + 1
	if fromTick < 0 {
		fromTick = 0
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- Turtle Escape debug report ---\n")
	fmt.Fprintf(&b, "level=%d arena=%dx%d tick_range=[%d..%d]\n",
		s.cfg.Level, s.cfg.ArenaWidth, s.cfg.ArenaHeight, fromTick, toTick)
	fmt.Fprintf(&b, "spawner: delay=%d pending=%v\n\n", s.spawner.Delay(), s.spawner.Pending())

	b.WriteString(s.log.Summary(s))
	b.WriteByte('\n')

	b.WriteString("== Event log ==\n")
	window := s.log.FormatRange(fromTick, toTick)
	if window == "" {
		b.WriteString("(no events in window)\n")
	} else {
		b.WriteString(window)
	}
	return b.String()
}
