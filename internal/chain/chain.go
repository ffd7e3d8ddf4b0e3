// Package chain implements the segmented buffer chain behind a memoized
// sequence: fixed-capacity segments that are filled from a single-pass pull
// function and linked by one-shot resolved next pointers.
//
// The pull function is never invoked concurrently. Only the last segment of a
// chain has an unresolved link, and resolution of that link is serialized by
// the segment's own once token, so every pull happens inside exactly one
// resolution (or inside construction, before the chain is shared).
package chain

import (
	"github.com/memoseq/memoseq/internal"
)

// Observer receives chain lifecycle events. Implementations must be safe for
// concurrent use. Use [NopObserver] when no instrumentation is wanted.
type Observer interface {
	// ElementProduced records one successful pull.
	ElementProduced()
	// ExhaustionProbed records the single pull that reported exhaustion.
	ExhaustionProbed()
	// SegmentAllocated records allocation of a segment's storage.
	SegmentAllocated()
	// SegmentReused records an in-place refill of an exclusively owned segment.
	SegmentReused()
}

// NopObserver is an Observer that does nothing.
type NopObserver struct{}

func (NopObserver) ElementProduced()  {}
func (NopObserver) ExhaustionProbed() {}
func (NopObserver) SegmentAllocated() {}
func (NopObserver) SegmentReused()    {}

// Chain owns the pull function and the head of the segment list. Segments
// hold no backward links, so a prefix that no holder references anymore
// becomes unreachable and collectible while the rest of the chain stays live.
type Chain[E any] struct {
	id    string
	block int
	pull  func() (E, bool)
	obs   Observer
	head  *Segment[E] // nil when the first pull reported exhaustion
}

// New builds a chain over pull with the given fixed segment capacity. It
// performs the first pull immediately: if the stream is exhausted from the
// start, no segment is allocated and Head returns nil.
func New[E any](pull func() (E, bool), block int, obs Observer) *Chain[E] {
	c := &Chain[E]{
		id:    internal.ChainID(),
		block: block,
		pull:  pull,
		obs:   obs,
	}

	first, ok := c.pull()
	if !ok {
		c.obs.ExhaustionProbed()
		return c
	}
	c.obs.ElementProduced()
	c.head = c.newSegment(first, 0)

	return c
}

// ID returns the chain's identity tag. Positions carry it so that using a
// position against the wrong chain can be detected instead of silently
// reading unrelated storage.
func (c *Chain[E]) ID() string {
	return c.id
}

// Head returns the first segment, or nil for an empty chain.
func (c *Chain[E]) Head() *Segment[E] {
	return c.head
}

// Resolve returns s's chain successor, pulling it into existence on first
// call. It is safe under concurrent invocation: exactly one caller runs the
// pull, all callers observe the identical result. The second return is false
// once the stream past s is exhausted; exhaustion is recorded on the link so
// the pull function is never probed again.
func (c *Chain[E]) Resolve(s *Segment[E]) (*Segment[E], bool) {
	switch s.state.Load() {
	case linkResolved:
		return s.next.Load(), true
	case linkTerminal:
		return nil, false
	}

	s.once.Do(func() {
		first, ok := c.pull()
		if !ok {
			c.obs.ExhaustionProbed()
			s.state.Store(linkTerminal)
			return
		}
		c.obs.ElementProduced()

		next := c.newSegment(first, s.ordinal+1)
		s.next.Store(next)
		s.state.Store(linkResolved)
	})

	switch s.state.Load() {
	case linkResolved:
		return s.next.Load(), true
	case linkTerminal:
		return nil, false
	}

	// The once token is consumed but the link never transitioned: the pull
	// panicked out of an earlier resolution and the chain cannot make
	// progress past this boundary anymore.
	panic("memoseq: chain poisoned by a producer panic")
}

// Refill reuses s's storage in place for the next run of elements and
// advances its ordinal. It returns false without pulling when the stream is
// already known to be exhausted, and false after recording exhaustion when
// the refilling pull reports it.
//
// Refill is only legal while the caller is the sole holder of s. That is a
// caller-enforced precondition: a shared segment must go through Resolve
// instead.
func (c *Chain[E]) Refill(s *Segment[E]) bool {
	if s.state.Load() == linkTerminal {
		return false
	}

	first, ok := c.pull()
	if !ok {
		c.obs.ExhaustionProbed()
		s.state.Store(linkTerminal)
		return false
	}
	c.obs.ElementProduced()
	c.obs.SegmentReused()

	clear(s.elems)
	s.elems = s.elems[:1]
	s.elems[0] = first
	s.ordinal++
	s.state.Store(linkUnresolved)
	c.fill(s)

	return true
}

func (c *Chain[E]) newSegment(first E, ordinal int64) *Segment[E] {
	s := &Segment[E]{
		elems:   make([]E, 1, c.block),
		ordinal: ordinal,
	}
	s.elems[0] = first
	c.obs.SegmentAllocated()
	c.fill(s)
	return s
}

// fill pulls elements into s until it is full or the stream is exhausted.
// Exhaustion discovered here pre-resolves s's link to terminal, which both
// publishes the fact and guarantees the exhausted pull function is never
// called again.
func (c *Chain[E]) fill(s *Segment[E]) {
	for len(s.elems) < cap(s.elems) {
		e, ok := c.pull()
		if !ok {
			c.obs.ExhaustionProbed()
			s.state.Store(linkTerminal)
			return
		}
		c.obs.ElementProduced()
		s.elems = append(s.elems, e)
	}
}
