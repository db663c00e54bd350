// Command golgen writes a random world file for gol, seeding live cells
// from Perlin noise so they form clusters instead of static.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/aquilax/go-perlin"
	"github.com/pkg/errors"

	"github.com/lopezrodolfo/GOL/model"
)

const (
	perlinAlpha      = 2.0
	perlinBeta       = 2.0
	perlinIterations = 3
)

type options struct {
	height    int
	width     int
	seed      int64
	threshold float64
	zoom      float64
	output    string
}

// generate builds a world where a cell is alive when the noise at its
// position exceeds threshold. Equal options always yield the same world.
func generate(opts options) *model.World {
	noise := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinIterations, opts.seed)
	world := model.NewWorld(opts.width, opts.height)
	for r := range opts.height {
		for c := range opts.width {
			v := noise.Noise2D(float64(c)/opts.zoom, float64(r)/opts.zoom)
			world.Set(r, c, v > opts.threshold)
		}
	}
	return world
}

func run(opts options, stdout io.Writer) error {
	if opts.height <= 0 || opts.width <= 0 {
		return errors.Errorf("dimensions must be positive, got %dx%d", opts.height, opts.width)
	}
	if opts.zoom <= 0 {
		return errors.Errorf("zoom must be positive, got %v", opts.zoom)
	}

	world := generate(opts)

	out := stdout
	if opts.output != "" && opts.output != "-" {
		f, err := os.Create(opts.output)
		if err != nil {
			return errors.Wrapf(err, "[golgen] failed to create %s", opts.output)
		}
		defer f.Close()
		out = f
	}

	if err := model.WriteWorld(out, world, 'X', '.'); err != nil {
		return err
	}
	if opts.output != "" && opts.output != "-" {
		fmt.Fprintf(os.Stderr, "wrote %dx%d world with %d living cells to %s\n",
			opts.height, opts.width, world.CountLivingCells(), opts.output)
	}
	return nil
}

func main() {
	var opts options
	flag.IntVar(&opts.height, "rows", 30, "number of rows")
	flag.IntVar(&opts.width, "cols", 60, "number of columns")
	flag.Int64Var(&opts.seed, "seed", 42, "noise seed")
	flag.Float64Var(&opts.threshold, "threshold", 0.1, "noise level above which a cell is alive")
	flag.Float64Var(&opts.zoom, "zoom", 6, "cells per noise unit; larger values give bigger clusters")
	flag.StringVar(&opts.output, "o", "", "output file (default stdout)")
	flag.Parse()

	if err := run(opts, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
