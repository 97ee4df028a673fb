package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pakin/turtle-escape/internal/game"
)

func main() {
	var ticks int
	var width int
	var height int
	var level int
	var spawnDelay int
	var clicks string
	var verbose bool

	flag.IntVar(&ticks, "ticks", 1000, "maximum ticks to simulate")
	flag.IntVar(&width, "width", 800, "arena width in world units")
	flag.IntVar(&height, "height", 600, "arena height in world units")
	flag.IntVar(&level, "level", 1, "level number")
	flag.IntVar(&spawnDelay, "spawn-delay", 100, "ticks until enemies spawn")
	flag.StringVar(&clicks, "clicks", "1@700,300",
		"scripted waypoint clicks, semicolon-separated tick@x,y entries")
	flag.BoolVar(&verbose, "verbose", false, "record per-tick positions in the event log")
	flag.Parse()

	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		os.Exit(1)
	}
	script, err := parseClicks(clicks)
	if err != nil {
		fmt.Printf("error: -clicks: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("=== Turtle Escape headless report ===\n")
	fmt.Printf("arena=%dx%d level=%d spawn_delay=%d ticks=%d clicks=%q\n\n",
		width, height, level, spawnDelay, ticks, clicks)

	opts := []game.SimOption{
		game.WithArenaSize(width, height),
		game.WithLevel(level),
		game.WithSpawnDelay(spawnDelay),
		game.WithVerbose(verbose),
	}
	for _, c := range script {
		opts = append(opts, game.WithClick(c.tick, c.x, c.y))
	}
	ts := game.NewTestSim(opts...)

	endTick := ts.RunUntilOutcome(ticks)

	fmt.Print(ts.SimLog.Format())
	fmt.Println()
	fmt.Print(ts.SimLog.Summary(ts.Session))
	fmt.Println()

	rep := ts.Session.Report()
	if endTick < 0 {
		fmt.Printf("result: still running after %d ticks (enemies=%d)\n", ticks, rep.EnemyCount)
		return
	}
	fmt.Printf("result: %s at T=%d (%s, level=%d, enemies=%d)\n",
		rep.Outcome, rep.Tick, rep.Description, rep.Level, rep.EnemyCount)
}

type click struct {
	tick int
	x    float64
	y    float64
}

// parseClicks parses "tick@x,y;tick@x,y" into scripted clicks.
func parseClicks(s string) ([]click, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var out []click
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		at := strings.SplitN(part, "@", 2)
		if len(at) != 2 {
			return nil, fmt.Errorf("entry %q: want tick@x,y", part)
		}
		tick, err := strconv.Atoi(strings.TrimSpace(at[0]))
		if err != nil || tick < 1 {
			return nil, fmt.Errorf("entry %q: bad tick", part)
		}
		xy := strings.SplitN(at[1], ",", 2)
		if len(xy) != 2 {
			return nil, fmt.Errorf("entry %q: want tick@x,y", part)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xy[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("entry %q: bad x", part)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(xy[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("entry %q: bad y", part)
		}
		out = append(out, click{tick: tick, x: x, y: y})
	}
	return out, nil
}
