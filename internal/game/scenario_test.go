package game

import (
	"testing"
)

// dumpLog prints the full SimLog so failures come with the event trail.
func dumpLog(t *testing.T, ts *TestSim) {
	t.Helper()
	if len(ts.SimLog.Entries()) == 0 {
		t.Log("(no log entries)")
		return
	}
	t.Log("\n" + ts.SimLog.Format())
}

// dumpSummary prints the end-of-run summary block.
func dumpSummary(t *testing.T, ts *TestSim) {
	t.Helper()
	t.Log("\n" + ts.SimLog.Summary(ts.Session))
}

// --- Scenario: straight run home ---

func TestScenario_StraightRunHomeWin(t *testing.T) {
	t.Log("=== TestScenario_StraightRunHomeWin ===")
	t.Log("--- Setup: default arena, one click on the home centre at tick 1 ---")

	ts := NewTestSim(
		WithClick(1, 700, 300),
	)
	end := ts.RunUntilOutcome(300)
	dumpLog(t, ts)
	dumpSummary(t, ts)

	if end < 0 {
		t.Fatal("session never terminated")
	}
	rep := ts.Session.Report()
	if rep.Outcome != OutcomeWin {
		t.Fatalf("outcome = %s (%s), want win", rep.Outcome, rep.Description)
	}
	// The player walks +5/tick from x=50 along y=300. Home spans x in
	// [690,710], so the player stands inside after 128 steps and the arrival
	// check fires at the start of the following tick.
	if rep.Tick != 129 {
		t.Errorf("win tick = %d, want 129", rep.Tick)
	}
	// The tick-100 spawn happened, and none of the four caught the runner.
	if rep.EnemyCount != 4 {
		t.Errorf("enemy count at win = %d, want 4", rep.EnemyCount)
	}
	if rep.Description != "player_reached_home" {
		t.Errorf("description = %q", rep.Description)
	}
}

// --- Scenario: idle player gets run down ---

func TestScenario_IdlePlayerGetsCaught(t *testing.T) {
	t.Log("=== TestScenario_IdlePlayerGetsCaught ===")
	t.Log("--- Setup: default arena, no clicks; the chaser hunts the idle player ---")

	ts := NewTestSim()
	end := ts.RunUntilOutcome(400)
	dumpLog(t, ts)
	dumpSummary(t, ts)

	if end < 0 {
		t.Fatal("session never terminated")
	}
	rep := ts.Session.Report()
	if rep.Outcome != OutcomeLose {
		t.Fatalf("outcome = %s, want lose", rep.Outcome)
	}
	if rep.Description != "caught_by_chasing1" {
		t.Errorf("description = %q, want caught_by_chasing1", rep.Description)
	}
	// Spawn fires at tick 100. The chaser starts 180.3 from the idle player
	// at (50,300) and closes exactly 3 per tick until the separation drops
	// under its size-20 catch radius.
	if rep.Tick != 154 {
		t.Errorf("lose tick = %d, want 154", rep.Tick)
	}
}

// --- Scenario: rerouted run ---

func TestScenario_ReroutedRunStillWins(t *testing.T) {
	t.Log("=== TestScenario_ReroutedRunStillWins ===")
	t.Log("--- Setup: detour click at tick 1, overridden by a home click at tick 40 ---")

	ts := NewTestSim(
		WithSpawnDelay(100000),
		WithClick(1, 400, 500),
		WithClick(40, 700, 300),
	)
	end := ts.RunUntilOutcome(500)
	dumpSummary(t, ts)

	if end < 0 {
		t.Fatal("session never terminated")
	}
	if out := ts.Session.Outcome(); out != OutcomeWin {
		t.Errorf("outcome = %s, want win", out)
	}
	// Both clicks landed: the second overwrote the first mid-run.
	if n := ts.SimLog.CountCategory("waypoint", "activate"); n != 2 {
		t.Errorf("waypoint activations = %d, want 2", n)
	}
}

// --- Scenario: verbose movement trace ---

func TestScenario_VerboseTraceRecordsPositions(t *testing.T) {
	ts := NewTestSim(
		WithVerbose(true),
		WithSpawnDelay(100000),
		WithClick(1, 152, 300),
	)
	ts.RunTicks(30)

	positions := ts.SimLog.Filter("move", "position")
	if len(positions) != 30 {
		t.Fatalf("verbose position entries = %d, want 30", len(positions))
	}
	if !ts.SimLog.HasEntry("waypoint", "deactivate", "arrived") {
		t.Error("arrival deactivation not logged")
	}
	last, ok := ts.SimLog.LastOf("move", "position")
	if !ok {
		t.Fatal("LastOf found no position entries")
	}
	if last.Tick != 30 {
		t.Errorf("last position entry at tick %d, want 30", last.Tick)
	}
}

// --- Harness: scheduled click delivery ---

func TestHarness_ScheduleClickDelivery(t *testing.T) {
	ts := NewTestSim(
		WithSpawnDelay(100000),
		WithClick(5, 300, 300),
	)
	ts.RunTicks(4)
	if ts.Session.Waypoint().Active() {
		t.Fatal("waypoint active before its scheduled tick")
	}
	ts.RunTicks(1)
	if !ts.Session.Waypoint().Active() {
		t.Fatal("waypoint not active after its scheduled tick")
	}
	wx, wy, ok := ts.Session.Waypoint().Target()
	if !ok || wx != 300 || wy != 300 {
		t.Errorf("waypoint target = (%v,%v,%v), want (300,300,true)", wx, wy, ok)
	}
}
