// Package barrier provides a reusable cyclic barrier with an optional
// completion action run by the last arriving party, strictly before any
// party is released into the next cycle.
package barrier

import (
	"fmt"
	"sync"
)

// Barrier blocks parties until a fixed number of them have arrived, then
// releases them all and rearms itself for the next cycle. The zero value is
// not usable; construct with New.
type Barrier struct {
	mu         sync.Mutex
	cond       *sync.Cond
	parties    int
	arrived    int
	generation uint64
	action     func()
}

// New creates a barrier for exactly parties participants. The optional
// action runs synchronously inside the final arrival of every cycle, before
// any party is released: state it mutates is visible to every released
// party, and no party can have re-entered the barrier yet. The action runs
// with the barrier's lock held and must not call Wait on the same barrier.
func New(parties int, action func()) (*Barrier, error) {
	if parties < 1 {
		return nil, fmt.Errorf("barrier: parties must be positive, got %d", parties)
	}

	b := &Barrier{
		parties: parties,
		action:  action,
	}
	b.cond = sync.NewCond(&b.mu)
	return b, nil
}

// Parties returns the configured participant count.
func (b *Barrier) Parties() int { return b.parties }

// Generation returns the number of completed cycles.
func (b *Barrier) Generation() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.generation
}

// Wait blocks until parties goroutines have called it, then returns in all
// of them. The final arrival rearms the arrival count, advances the
// generation, runs the completion action, and wakes the rest. Waiters block
// on the generation they arrived in, so spurious wakeups and parties racing
// ahead into the next cycle are both tolerated.
func (b *Barrier) Wait() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.arrived++
	if b.arrived == b.parties {
		b.arrived = 0
		b.generation++
		if b.action != nil {
			b.action()
		}
		b.cond.Broadcast()
		return
	}

	gen := b.generation
	for gen == b.generation {
		b.cond.Wait()
	}
}
