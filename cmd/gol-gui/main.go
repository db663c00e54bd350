//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lopezrodolfo/GOL/gui"
	"github.com/lopezrodolfo/GOL/model"
	"github.com/lopezrodolfo/GOL/utils"
)

func main() {
	config := utils.DefaultConfig()
	config.Bind(flag.CommandLine)
	scale := flag.Int("scale", 8, "pixel scale multiplier")
	flag.Parse()

	if err := config.Validate(); err != nil {
		log.Fatal(err)
	}

	world, err := model.Loader{Alive: config.AliveMarkers}.Load(config.WorldFile)
	if err != nil {
		log.Fatalf("Error initializing world: %v", err)
	}

	s := *scale
	game := gui.New(world, config, s)

	ebiten.SetWindowTitle("gol: " + config.WorldFile)
	ebiten.SetWindowSize(world.Width()*s, world.Height()*s)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
