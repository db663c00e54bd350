package model

import (
	"crypto/md5"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lopezrodolfo/GOL/rules"
)

// World is a bounded grid of cells stored row-major: cells[r*width+c] is
// true iff the cell at row r, column c is alive.
type World struct {
	width  int
	height int
	cells  []bool
}

// NewWorld creates an all-dead world with the given dimensions.
// Non-positive dimensions are clamped to 1.
func NewWorld(width, height int) *World {
	width = max(1, width)
	height = max(1, height)
	return &World{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

// Width returns the number of columns
func (w *World) Width() int {
	return w.width
}

// Height returns the number of rows
func (w *World) Height() int {
	return w.height
}

// Set marks the cell at (row, col) alive or dead. Out-of-range coordinates are ignored.
func (w *World) Set(row, col int, alive bool) {
	if row >= 0 && row < w.height && col >= 0 && col < w.width {
		w.cells[row*w.width+col] = alive
	}
}

// Alive reports the state of a cell; everything outside the grid is dead.
func (w *World) Alive(row, col int) bool {
	if row < 0 || row >= w.height || col < 0 || col >= w.width {
		return false
	}
	return w.cells[row*w.width+col]
}

// Clone returns an independent copy of the world
func (w *World) Clone() *World {
	cells := make([]bool, len(w.cells))
	copy(cells, w.cells)
	return &World{width: w.width, height: w.height, cells: cells}
}

// Equal reports whether both worlds have the same dimensions and cell states
func (w *World) Equal(other *World) bool {
	if other == nil || w.width != other.width || w.height != other.height {
		return false
	}
	for i, alive := range w.cells {
		if other.cells[i] != alive {
			return false
		}
	}
	return true
}

// Rows exposes the current generation one row at a time. The returned slices
// alias the world's buffer and are only valid until the next advance.
func (w *World) Rows() [][]bool {
	rows := make([][]bool, w.height)
	for r := range w.height {
		rows[r] = w.cells[r*w.width : (r+1)*w.width : (r+1)*w.width]
	}
	return rows
}

// CountNeighbors counts living neighbors of (row, col). Cells beyond the
// edges count as dead, so corners see at most 3 and edges at most 5.
func (w *World) CountNeighbors(row, col int) int {
	count := 0

	minR := max(0, row-1)
	maxR := min(w.height-1, row+1)
	minC := max(0, col-1)
	maxC := min(w.width-1, col+1)

	for r := minR; r <= maxR; r++ {
		base := r * w.width
		for c := minC; c <= maxC; c++ {
			if r == row && c == col {
				continue
			}
			if w.cells[base+c] {
				count++
			}
		}
	}

	return count
}

// nextRows writes the next state of rows [start, end) into next.
// It only reads w.cells, which is never written while a generation is computed.
func (w *World) nextRows(next []bool, start, end int) {
	for r := start; r < end; r++ {
		base := r * w.width
		for c := range w.width {
			next[base+c] = rules.ApplyConwayRules(w.CountNeighbors(r, c), w.cells[base+c])
		}
	}
}

// swap installs next as the current generation and releases the old buffer.
func (w *World) swap(next []bool) {
	prev := w.cells
	w.cells = next
	buffers.Put(prev)
}

// Advance moves the world forward one generation. Every next state is
// computed from the previous generation into a separate buffer before it
// replaces the current one.
func (w *World) Advance() {
	next := buffers.Get(len(w.cells))
	w.nextRows(next, 0, w.height)
	w.swap(next)
}

// AdvanceParallel produces the same generation as Advance, splitting the rows
// into bands computed concurrently. workers <= 0 uses one band per CPU.
func (w *World) AdvanceParallel(workers int) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	next := buffers.Get(len(w.cells))

	var (
		eg            errgroup.Group
		rowsPerWorker = (w.height + workers - 1) / workers // Ceiling division
	)

	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, w.height)
		)
		if startRow >= w.height {
			break
		}

		eg.Go(func() error {
			w.nextRows(next, startRow, endRow)
			return nil
		})
	}

	// bands never fail; Wait is only the barrier before the swap
	_ = eg.Wait()

	w.swap(next)
}

// CountLivingCells returns the total number of living cells
func (w *World) CountLivingCells() (count int) {
	for _, alive := range w.cells {
		if alive {
			count++
		}
	}
	return
}

// Hash returns an MD5 digest of the current generation
func (w *World) Hash() string {
	h := md5.New()
	buf := make([]byte, len(w.cells))
	for i, alive := range w.cells {
		if alive {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}
