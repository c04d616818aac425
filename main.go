package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"dungeon-forge/config"
	"dungeon-forge/generation"
)

func main() {
	defaults := config.DefaultDungeonConfig()

	width := flag.Int("width", defaults.Width, "grid column count")
	height := flag.Int("height", defaults.Height, "grid row count")
	minSize := flag.Int("min", defaults.MinPartitionSize, "smallest partition side before it stops splitting")
	seed := flag.Int64("seed", defaults.Seed, "random seed")
	proportional := flag.Bool("proportional-doors", false, "spread doors along the whole wall")
	verbose := flag.Bool("v", false, "log partition processing to stderr")
	view := flag.Bool("view", false, "open an interactive viewer window")
	cave := flag.Bool("cave", false, "print a cellular automata cave instead of a dungeon")
	flag.Parse()

	cfg := config.DungeonConfig{
		Width:            *width,
		Height:           *height,
		MinPartitionSize: *minSize,
		Seed:             *seed,
		Verbose:          *verbose,
	}
	if *proportional {
		cfg.DoorOffset = config.DoorOffsetProportional
	}

	if *view {
		viewer, err := NewDungeonViewer(cfg)
		if err != nil {
			log.Fatal(err)
		}
		windowWidth, windowHeight := config.GetWindowSize()
		ebiten.SetWindowSize(windowWidth, windowHeight)
		ebiten.SetWindowTitle("Dungeon Viewer")
		if err := ebiten.RunGame(viewer); err != nil && !errors.Is(err, ebiten.Termination) {
			log.Fatal(err)
		}
		return
	}

	generator, err := generation.NewDungeonGenerator(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if *cave {
		caveMap := generator.GenerateCave(cfg.Width, cfg.Height, generation.DefaultCaveSteps)
		if err := generation.WriteText(os.Stdout, caveMap); err != nil {
			log.Fatal(err)
		}
		return
	}

	dungeon, err := generator.Generate()
	if err != nil {
		log.Fatal(err)
	}
	if err := generation.WriteText(os.Stdout, dungeon.Map); err != nil {
		log.Fatal(err)
	}
}
