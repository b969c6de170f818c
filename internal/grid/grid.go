// Package grid implements the shared state array for a wavefront run: a
// rectangular field of cells, each guarded by its own mutex and condition
// variable. Producers publish into cells; dependents block on them. The
// package is a pure synchronization primitive and does no logging.
package grid

import (
	"fmt"
	"sync"
)

// cell is one slot of the field. The value is meaningful only while ready
// is set; Reset clears both between rounds. A separate ready flag (rather
// than a zero-value sentinel) means a legitimately published zero can never
// strand a waiter.
type cell struct {
	mu    sync.Mutex
	cond  *sync.Cond
	value int
	ready bool
}

// Grid is a rows×cols field of cells in row-major order. Cells in the last
// row and last column are border cells: they are seeded, never computed.
// Every other cell has exactly one producer and at most three dependent
// readers, which is why publishing broadcasts instead of signaling once.
type Grid struct {
	rows  int
	cols  int
	cells []cell
}

// New allocates a rows×cols grid with every cell unpublished.
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("grid: dimensions must be positive, got %dx%d", rows, cols)
	}

	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]cell, rows*cols),
	}
	for i := range g.cells {
		g.cells[i].cond = sync.NewCond(&g.cells[i].mu)
	}
	return g, nil
}

// Rows returns the number of rows in the grid.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns in the grid.
func (g *Grid) Cols() int { return g.cols }

// Len returns the total cell count.
func (g *Grid) Len() int { return len(g.cells) }

// Index maps a row/column pair to the cell's position in the backing array.
func (g *Grid) Index(r, c int) int { return r*g.cols + c }

// East returns the index of the cell immediately to the east of i.
//
// The neighbor helpers do no bounds checking: only interior cells ask for
// neighbors, and an interior cell's east, south, and south-east neighbors
// all exist by construction.
func (g *Grid) East(i int) int { return i + 1 }

// South returns the index of the cell immediately to the south of i.
func (g *Grid) South(i int) int { return i + g.cols }

// SouthEast returns the index of the cell diagonally south-east of i.
func (g *Grid) SouthEast(i int) int { return g.South(i) + 1 }

// WaitReady blocks until cell i holds a published value for the current
// round, then returns that value. The predicate is re-checked on every
// wakeup; a single un-looped wait would be unsound against spurious wakeups
// and broadcasts aimed at earlier rounds.
func (g *Grid) WaitReady(i int) int {
	c := &g.cells[i]
	c.mu.Lock()
	defer c.mu.Unlock()
	for !c.ready {
		c.cond.Wait()
	}
	return c.value
}

// Publish stores the computed value for cell i, marks it ready, and wakes
// every goroutine blocked on the cell. Broadcast rather than Signal: up to
// three dependents can be parked on the same producer.
func (g *Grid) Publish(i, value int) {
	c := &g.cells[i]
	c.mu.Lock()
	c.value = value
	c.ready = true
	c.cond.Broadcast()
	c.mu.Unlock()
}

// Value returns the current value of cell i, published or not.
func (g *Grid) Value(i int) int {
	c := &g.cells[i]
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Ready reports whether cell i currently holds a published value.
func (g *Grid) Ready(i int) bool {
	c := &g.cells[i]
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ready
}

// Reset returns every cell to the unpublished state. The caller must
// guarantee no worker is mid-read or mid-write of any cell; during a run
// that caller is the barrier completion action, which executes only while
// every worker is parked at the round boundary.
func (g *Grid) Reset() {
	for i := range g.cells {
		c := &g.cells[i]
		c.mu.Lock()
		c.value = 0
		c.ready = false
		c.mu.Unlock()
	}
}

// SeedBorders publishes the fixed value 1 into every border cell. Seeding
// does double duty: it stores the round's input data and it triggers the
// wave, because dependents blocked on border cells wake here.
func (g *Grid) SeedBorders() {
	lastRow := g.rows - 1
	lastCol := g.cols - 1
	for c := 0; c < g.cols; c++ {
		g.Publish(g.Index(lastRow, c), 1)
	}
	for r := 0; r < lastRow; r++ {
		g.Publish(g.Index(r, lastCol), 1)
	}
}
