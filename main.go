package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"dungeon-layout/config"
	"dungeon-layout/generation"
	"dungeon-layout/logs"
	"dungeon-layout/tilemap"
)

func main() {
	seed := flag.Int64("seed", 0, "seed (0 will cause the current unix nano epoch to be used)")
	sizeName := flag.String("size", generation.SizeNormal.String(), "dungeon size (small, normal, large, huge)")
	headless := flag.Bool("headless", false, "generate one layout and print it as text instead of opening a window")
	flag.Parse()

	size, err := generation.ParseDungeonSize(*sizeName)
	if err != nil {
		log.Fatal(err)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("seed: %d", *seed)

	messageLog := logs.NewMessageLog()
	messageLog.Tee(func(m string) { log.Print(m) })

	generator := generation.NewDungeonGenerator(generation.ConfigForSize(size), messageLog.Add)
	generator.SetSeed(*seed)

	if *headless {
		if err := runHeadless(generator); err != nil {
			log.Fatal(err)
		}
		return
	}

	game, err := NewGame(generator, messageLog)
	if err != nil {
		log.Fatal(err)
	}
	windowWidth, windowHeight := config.GetScreenDimensions()
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle(fmt.Sprintf("Dungeon Layout - %s", size))
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// runHeadless drives one pipeline to completion and prints the tile map
func runHeadless(generator *generation.DungeonGenerator) error {
	pipeline, err := generator.NextPipeline()
	if err != nil {
		return fmt.Errorf("start pipeline: %w", err)
	}
	layout, err := pipeline.Run()
	if err != nil {
		return fmt.Errorf("generate layout (seed %d): %w", pipeline.Config().Seed, err)
	}
	fmt.Println(tilemap.Rasterize(layout, generator.Config().TileSize))
	return nil
}
