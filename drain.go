package memoseq

import (
	"iter"

	"github.com/memoseq/memoseq/internal/chain"
)

// Drainer is the exclusive, single-pass counterpart of [Seq]. It is built
// directly from a producer and owns the one segment it allocates, so at a
// segment boundary it refills that segment's storage in place instead of
// growing a chain. Peak memory is one block regardless of stream length.
//
// Exclusivity is structural: a Drainer cannot be derived from a shared Seq
// and hands out no positions, so the in-place reuse can never race with
// another holder. A Drainer and a Seq over the same elements yield identical
// sequences.
//
// A Drainer is not safe for concurrent use.
type Drainer[E any] struct {
	cfg    *config[E]
	chain  *chain.Chain[E]
	seg    *chain.Segment[E]
	offset int
	done   bool
}

// NewDrainer adapts produce into an exclusive drain. Like [New], it pulls
// once immediately; an already exhausted producer yields an empty drainer
// with no segment allocated.
func NewDrainer[E any](produce Producer[E], options ...Option[E]) *Drainer[E] {
	cfg := newConfig(options...)
	c := chain.New(produce, cfg.blockSize, cfg.observer())

	return &Drainer[E]{
		cfg:   cfg,
		chain: c,
		seg:   c.Head(),
		done:  c.Head() == nil,
	}
}

// Next returns the stream's next element, refilling the drainer's segment in
// place at block boundaries. It returns false once the producer is exhausted
// and keeps returning false after that.
func (d *Drainer[E]) Next() (zero E, _ bool) {
	if d.done {
		return zero, false
	}

	if d.offset < d.seg.Count() {
		e := d.seg.At(d.offset)
		d.offset++
		d.cfg.elementDrained()
		return e, true
	}

	if !d.chain.Refill(d.seg) {
		d.done = true
		return zero, false
	}
	d.offset = 1
	d.cfg.elementDrained()
	return d.seg.At(0), true
}

// All returns a single-use iterator draining the remaining elements.
func (d *Drainer[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for {
			e, ok := d.Next()
			if !ok {
				return
			}
			if !yield(e) {
				return
			}
		}
	}
}
