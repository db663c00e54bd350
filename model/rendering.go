package model

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	// ANSI: cursor home, then clear screen
	ansiClear = "\x1b[H\x1b[2J"
)

// Sink receives each settled generation for display
type Sink interface {
	Render(w *World, turn int) error
}

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out io.Writer

	// NoClear leaves earlier frames on screen, which is handy when piping output
	NoClear bool
}

// NewTerminalRenderer renders to stdout
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout}
}

// Render draws one frame: the time step header followed by the grid
func (r *TerminalRenderer) Render(w *World, turn int) error {
	out := r.Out
	if out == nil {
		out = os.Stdout
	}
	bw := bufio.NewWriter(out)

	if !r.NoClear {
		bw.WriteString(ansiClear)
	}
	fmt.Fprintf(bw, "Time step: %d\n", turn)
	for _, row := range w.Rows() {
		for _, alive := range row {
			if alive {
				bw.WriteString(gridPosBlock)
			} else {
				bw.WriteString(gridPosEmpty)
			}
		}
		bw.WriteByte('\n')
	}

	return errors.Wrapf(bw.Flush(), "[TerminalRenderer.Render] failed to draw turn %d", turn)
}

// Message prints a line below the grid
func (r *TerminalRenderer) Message(msg string) {
	out := r.Out
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintln(out, msg)
}
