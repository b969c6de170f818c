package wavefront

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/vk/wavegridgo/internal/barrier"
	"github.com/vk/wavegridgo/internal/ctxlog"
	"github.com/vk/wavegridgo/internal/grid"
)

// Spec describes one wavefront run.
type Spec struct {
	// Name identifies the run in logs.
	Name string
	// Rows and Cols are the grid dimensions, borders included. Both must be
	// at least 1; with a single row or column the grid is all border and
	// every round's result is the seed value.
	Rows int
	Cols int
	// Rounds is the number of independent repetitions. Zero is valid and
	// runs nothing.
	Rounds int
	// Expect, when set, is checked against every round's result after the
	// run completes.
	Expect *int
}

// Option configures a Runner.
type Option func(*Runner)

// WithOutput directs the per-round result lines to w. The default discards
// them, which suits callers that only consume the returned slice.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) { r.outW = w }
}

// Runner owns the shared grid, the round barrier, and the workers for one
// run. It is itself a barrier party: its Wait returns in the window between
// a round's completion action and the next round's publishes, which is the
// only time the captured result is stable.
type Runner struct {
	spec     Spec
	outW     io.Writer
	field    *grid.Grid
	gate     *barrier.Barrier
	interior int

	// result is written only by the barrier completion action. Reads in the
	// round loop are ordered after the write by the barrier itself, so the
	// slot needs no lock of its own.
	result int
}

// New validates the spec and builds the grid and barrier for it. The
// barrier's party count is the interior worker count plus one: the runner
// participates so that it can observe each round's result between the
// completion action and the next round.
func New(spec Spec, opts ...Option) (*Runner, error) {
	if spec.Rounds < 0 {
		return nil, fmt.Errorf("wavefront: rounds must be non-negative, got %d", spec.Rounds)
	}

	field, err := grid.New(spec.Rows, spec.Cols)
	if err != nil {
		return nil, err
	}

	r := &Runner{
		spec:     spec,
		outW:     io.Discard,
		field:    field,
		interior: (spec.Rows - 1) * (spec.Cols - 1),
	}

	gate, err := barrier.New(r.interior+1, r.finishRound)
	if err != nil {
		return nil, err
	}
	r.gate = gate

	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// finishRound is the barrier completion action. It runs exactly once per
// round, while every worker is parked at the round boundary, so it is the
// only code that may touch the whole grid at once. Capture order matters:
// the result must be read out before the reset wipes it.
func (r *Runner) finishRound() {
	r.result = r.field.Value(0)
	r.field.Reset()
	r.field.SeedBorders()
}

// Run launches one worker per interior cell, seeds the borders to start the
// first wave, and then observes one result per round. It returns the
// per-round results in order.
//
// The protocol has no cancellation: blocking waits run to completion, and a
// round in flight cannot be abandoned without stranding its workers. The
// context is used for logging only.
func (r *Runner) Run(ctx context.Context) ([]int, error) {
	logger := ctxlog.FromContext(ctx)
	if r.spec.Name != "" {
		logger = logger.With("wave", r.spec.Name)
	}
	logger.Info("Starting wavefront run.",
		"rows", r.spec.Rows, "cols", r.spec.Cols,
		"rounds", r.spec.Rounds, "workers", r.interior)
	logger.Debug("State grid allocated.", "cells", r.field.Len())

	var wg sync.WaitGroup
	wg.Add(r.interior)
	for row := 0; row < r.spec.Rows-1; row++ {
		for col := 0; col < r.spec.Cols-1; col++ {
			w := newWorker(r.field, r.gate, r.field.Index(row, col), r.spec.Rounds)
			go func() {
				defer wg.Done()
				w.run()
			}()
		}
	}

	// Workers are parked on their dependencies; seeding the borders starts
	// the first wave.
	r.field.SeedBorders()

	results := make([]int, 0, r.spec.Rounds)
	for round := 0; round < r.spec.Rounds; round++ {
		r.gate.Wait()
		results = append(results, r.result)
		fmt.Fprintf(r.outW, "Round %d, result is %d\n", round, r.result)
		logger.Debug("Round completed.", "round", round, "result", r.result)
	}

	wg.Wait()
	logger.Info("Wavefront run finished.", "rounds", len(results))

	if err := r.verify(results); err != nil {
		return results, err
	}
	return results, nil
}

// verify checks every round's result against the spec's expectation, when
// one was configured.
func (r *Runner) verify(results []int) error {
	if r.spec.Expect == nil {
		return nil
	}
	want := *r.spec.Expect
	for round, got := range results {
		if got != want {
			return fmt.Errorf("wavefront: round %d produced %d, expected %d", round, got, want)
		}
	}
	return nil
}
