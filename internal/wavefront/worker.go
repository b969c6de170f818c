package wavefront

import (
	"github.com/vk/wavegridgo/internal/barrier"
	"github.com/vk/wavegridgo/internal/grid"
)

// worker computes one interior cell for every round of a run. Its home
// index and the three dependency indices are fixed at construction; the
// three dependency reads are mutually independent, so their order carries
// no meaning.
type worker struct {
	field     *grid.Grid
	gate      *barrier.Barrier
	home      int
	east      int
	south     int
	southEast int
	rounds    int
}

func newWorker(field *grid.Grid, gate *barrier.Barrier, home, rounds int) *worker {
	return &worker{
		field:     field,
		gate:      gate,
		home:      home,
		east:      field.East(home),
		south:     field.South(home),
		southEast: field.SouthEast(home),
		rounds:    rounds,
	}
}

// run executes the per-round protocol: wait for the three dependencies,
// publish the sum into the home cell, then park at the round barrier.
// Release from the barrier implies the completion action has already reset
// and reseeded the grid, so re-entering the wait phase can never observe a
// stale value from the previous round.
//
// There are no retries and no timeouts. A dependency that is never
// published blocks its dependents forever; on this fixed acyclic graph that
// cannot happen as long as the borders are seeded each round.
func (w *worker) run() {
	for round := 0; round < w.rounds; round++ {
		east := w.field.WaitReady(w.east)
		south := w.field.WaitReady(w.south)
		southEast := w.field.WaitReady(w.southEast)

		w.field.Publish(w.home, east+south+southEast)

		w.gate.Wait()
	}
}
