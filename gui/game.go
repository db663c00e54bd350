//go:build ebiten

package gui

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lopezrodolfo/GOL/model"
	"github.com/lopezrodolfo/GOL/utils"
)

// Game adapts a world to the ebiten.Game interface, advancing it on a timer
// or on key presses in step mode.
type Game struct {
	world   *model.World
	config  utils.Config
	painter *Painter
	scale   int

	turn     int
	lastStep time.Time
	finished bool
	err      error
}

// New constructs a Game and renders turn 0.
func New(world *model.World, config utils.Config, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	g := &Game{
		world:   world,
		config:  config,
		painter: NewPainter(world.Width(), world.Height()),
		scale:   scale,
	}
	g.err = g.painter.Render(world, 0)
	g.lastStep = time.Now()
	return g
}

func (g *Game) advance() {
	if g.config.UseParallel {
		g.world.AdvanceParallel(g.config.Workers)
	} else {
		g.world.Advance()
	}
	g.turn++
	g.err = g.painter.Render(g.world, g.turn)
	g.lastStep = time.Now()
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.finished {
		if len(inpututil.AppendJustPressedKeys(nil)) > 0 {
			return ebiten.Termination
		}
		return nil
	}

	if g.turn >= g.config.Turns {
		g.finished = true
		return nil
	}

	if g.config.StepMode {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.advance()
		}
		return nil
	}

	if time.Since(g.lastStep) >= g.config.Delay {
		g.advance()
	}
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.scale)

	msg := fmt.Sprintf("Time step: %d", g.painter.Turn())
	if g.finished {
		msg += "\nPress any key to end the program."
	}
	ebitenutil.DebugPrint(screen, msg)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.world.Width() * g.scale, g.world.Height() * g.scale
}
