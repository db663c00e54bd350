package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/lopezrodolfo/GOL/model"
	"github.com/lopezrodolfo/GOL/utils"
)

const usageFormat = "usage: %s [-s] -c <config-file> -t <number of turns> -d <delay in ms>\n"

// parseConfig builds the run configuration from the command line. Settings
// from -settings are applied first so explicit flags override them.
// Problems are reported to output with the usage line; -h yields flag.ErrHelp.
func parseConfig(name string, args []string, output io.Writer) (utils.Config, error) {
	parse := func(base utils.Config) (utils.Config, string, error) {
		var settings string
		fs := flag.NewFlagSet(name, flag.ContinueOnError)
		fs.SetOutput(output)
		fs.Usage = func() {
			fmt.Fprintf(output, usageFormat, name)
			fs.PrintDefaults()
		}
		base.Bind(fs)
		fs.StringVar(&settings, "settings", "", "JSON settings `file` applied before flags")
		err := fs.Parse(args)
		return base, settings, err
	}

	config, settings, err := parse(utils.DefaultConfig())
	if err != nil {
		return config, err
	}
	if settings != "" {
		base, err := utils.LoadConfig(settings)
		if err != nil {
			fmt.Fprintln(output, err)
			return config, err
		}
		if config, _, err = parse(base); err != nil {
			return config, err
		}
	}

	if err := config.Validate(); err != nil {
		fmt.Fprintln(output, err)
		fmt.Fprintf(output, usageFormat, name)
		return config, err
	}
	return config, nil
}

// displayGameInfo prints a summary of the simulation options
func displayGameInfo(out io.Writer, config utils.Config) {
	fmt.Fprintf(out, "Config Filename: %s\n", config.WorldFile)
	fmt.Fprintf(out, "Number of turns: %d\n", config.Turns)
	if config.StepMode {
		fmt.Fprintln(out, "Step mode: Enabled")
	} else {
		fmt.Fprintln(out, "Step mode: Disabled")
		fmt.Fprintf(out, "Delay between turns: %d ms\n", config.Delay.Milliseconds())
	}
}

// game carries everything one run needs
type game struct {
	config  utils.Config
	world   *model.World
	sink    model.Sink
	out     io.Writer
	in      *bufio.Reader
	pending chan error
	stats   *utils.Stats
	history *model.History
}

func newGame(config utils.Config, world *model.World, sink model.Sink, in io.Reader, out io.Writer) *game {
	return &game{
		config:  config,
		world:   world,
		sink:    sink,
		out:     out,
		in:      bufio.NewReader(in),
		stats:   utils.NewStats(),
		history: model.NewHistory(config.HistorySize),
	}
}

// advance computes the next generation with the configured engine
func (g *game) advance() {
	if g.config.UseParallel {
		g.world.AdvanceParallel(g.config.Workers)
		return
	}
	g.world.Advance()
}

// updateGameState records the current generation and reports whether it is stagnant
func (g *game) updateGameState(turn int, frameDuration time.Duration) (string, bool) {
	population := g.world.CountLivingCells()
	g.stats.Update(turn, population, g.world.Width()*g.world.Height(), frameDuration)

	isStagnant := g.history.Stagnant(g.world)
	g.history.Record(g.world)

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if population == 0 {
		status = "Extinct"
	}
	return status, isStagnant
}

// displayGameStatus shows the status line under the frame
func (g *game) displayGameStatus(status string) {
	fmt.Fprintf(g.out, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		g.stats.TotalGenerations, g.stats.Population, g.stats.Density, status)
}

// wait blocks between turns: for Enter in step mode, otherwise for the delay
func (g *game) wait(ctx context.Context) error {
	if g.config.StepMode {
		return g.waitForKey(ctx)
	}

	timer := time.NewTimer(g.config.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// waitForKey reads one line of input. EOF counts as a key press.
// A read left running by a cancelled wait is picked up by the next call,
// so at most one read is ever in flight on g.in.
func (g *game) waitForKey(ctx context.Context) error {
	if g.pending == nil {
		done := make(chan error, 1)
		go func() {
			_, err := g.in.ReadString('\n')
			if err == io.EOF {
				err = nil
			}
			done <- err
		}()
		g.pending = done
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-g.pending:
		g.pending = nil
		return errors.Wrap(err, "[waitForKey] failed to read input")
	}
}

// run renders turns 0 through config.Turns, advancing between them. It
// returns the number of the last rendered turn.
func (g *game) run(ctx context.Context) (int, error) {
	lastFrame := time.Now()

	for turn := 0; turn <= g.config.Turns; turn++ {
		if err := g.sink.Render(g.world, turn); err != nil {
			return turn, err
		}

		frameStart := time.Now()
		status, isStagnant := g.updateGameState(turn, frameStart.Sub(lastFrame))
		lastFrame = frameStart
		if g.config.ShowStatus {
			g.displayGameStatus(status)
		}

		if g.config.StopWhenStagnant && (isStagnant || status == "Extinct") {
			fmt.Fprintf(g.out, "Stopping early at turn %d: %s\n", turn, status)
			return turn, nil
		}

		if err := g.wait(ctx); err != nil {
			return turn, err
		}

		if turn < g.config.Turns {
			g.advance()
		}
	}

	return g.config.Turns, nil
}
