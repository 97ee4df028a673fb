package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/pakin/turtle-escape/internal/game"
)

func main() {
	var width int
	var height int
	var level int
	var spawnDelay int

	flag.IntVar(&width, "width", 800, "arena width in world units")
	flag.IntVar(&height, "height", 600, "arena height in world units")
	flag.IntVar(&level, "level", 1, "starting level")
	flag.IntVar(&spawnDelay, "spawn-delay", 100, "ticks until enemies spawn")
	flag.Parse()

	cfg := game.DefaultConfig()
	cfg.ArenaWidth = width
	cfg.ArenaHeight = height
	cfg.Level = level
	cfg.SpawnDelay = spawnDelay

	g, err := game.NewWithConfig(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("Turtle Escape")
	ebiten.SetWindowSize(g.Layout(0, 0))
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
