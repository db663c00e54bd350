package model

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// WriteWorld writes w in the format read by Loader, using alive and dead as
// the cell characters.
func WriteWorld(out io.Writer, w *World, alive, dead byte) error {
	bw := bufio.NewWriter(out)

	bw.WriteString(strconv.Itoa(w.height))
	bw.WriteByte(' ')
	bw.WriteString(strconv.Itoa(w.width))
	bw.WriteByte('\n')

	for _, row := range w.Rows() {
		for _, cell := range row {
			if cell {
				bw.WriteByte(alive)
			} else {
				bw.WriteByte(dead)
			}
		}
		bw.WriteByte('\n')
	}

	return errors.Wrap(bw.Flush(), "[WriteWorld] failed to write world")
}
