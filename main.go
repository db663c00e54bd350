package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/pkg/errors"

	"github.com/lopezrodolfo/GOL/model"
)

func main() {
	name := filepath.Base(os.Args[0])

	config, err := parseConfig(name, os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(1)
	}

	displayGameInfo(os.Stdout, config)

	world, err := model.Loader{Alive: config.AliveMarkers}.Load(config.WorldFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing world: %v\n", err)
		os.Exit(1)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	renderer := model.NewTerminalRenderer()
	g := newGame(config, world, renderer, os.Stdin, os.Stdout)

	turn, err := g.run(ctx)
	switch {
	case errors.Is(err, context.Canceled):
		fmt.Println("\nShutting down gracefully...")
		fmt.Printf("Final stats: %d generations in %.1f seconds, %.1f avg population\n",
			turn, g.stats.Runtime().Seconds(), g.stats.AveragePopulation)
		return
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", err)
		os.Exit(1)
	}

	renderer.Message("Press any key to end the program.")
	if err := g.waitForKey(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
	}
}
