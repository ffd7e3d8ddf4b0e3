package memoseq

import (
	"iter"

	"github.com/memoseq/memoseq/internal/chain"
)

// Producer supplies one element per call and reports exhaustion by returning
// false. It matches the next function of [iter.Pull], so any iter.Seq bridges
// directly.
//
// A producer is never called again after it reports exhaustion, and all calls
// are mutually exclusive, so it does not need to be thread-safe itself.
type Producer[E any] = func() (E, bool)

// Seq is a view over a memoized chain of segments fed by a producer. The zero
// value is not usable; construct with [New] or [Seq.Slice].
//
// A Seq value and every position and slice derived from it share one chain:
// any element is produced at most once across all of them. Methods are safe
// for concurrent use as long as each goroutine works on its own Seq value or
// position (PopFirst mutates the receiver's start).
type Seq[E any] struct {
	cfg   *config[E]
	chain *chain.Chain[E]
	start Position[E]
	end   Position[E]
}

// New adapts produce into a multi-pass sequence. The producer is pulled once
// immediately: if it is already exhausted the sequence is empty and no
// segment is allocated.
func New[E any](produce Producer[E], options ...Option[E]) *Seq[E] {
	cfg := newConfig(options...)
	c := chain.New(produce, cfg.blockSize, cfg.observer())

	s := Seq[E]{cfg: cfg, chain: c}
	s.end = endPosition[E](c.ID())
	if head := c.Head(); head != nil {
		s.start = Position[E]{chain: c.ID(), seg: head}
	} else {
		s.start = s.end
	}

	return &s
}

// Start returns the position of the view's first element, or End for an
// empty view.
func (s *Seq[E]) Start() Position[E] {
	return s.start
}

// End returns the view's past-the-end position.
func (s *Seq[E]) End() Position[E] {
	return s.end
}

// Empty reports whether the view has no elements.
func (s *Seq[E]) Empty() bool {
	return s.start.Compare(s.end) >= 0
}

// At returns the element at p in O(1). p must be a position of this view's
// chain inside [Start, End); anything else panics.
func (s *Seq[E]) At(p Position[E]) E {
	s.check(p)
	if p.seg == nil {
		panic("memoseq: subscript of the end position")
	}
	if p.Compare(s.start) < 0 || p.Compare(s.end) >= 0 {
		panic("memoseq: position out of view range")
	}
	return p.seg.At(p.offset)
}

// Slice returns a sub-view spanning [lo, hi). The sub-view shares the chain
// and producer with s: overlapping slices never cause duplicate production.
// Both bounds must be positions of this view's chain inside its own range.
func (s *Seq[E]) Slice(lo, hi Position[E]) *Seq[E] {
	s.check(lo)
	s.check(hi)
	if lo.Compare(hi) > 0 {
		panic("memoseq: inverted slice bounds")
	}
	if lo.Compare(s.start) < 0 || hi.Compare(s.end) > 0 {
		panic("memoseq: slice bounds out of view range")
	}
	return &Seq[E]{cfg: s.cfg, chain: s.chain, start: lo, end: hi}
}

// PopFirst returns and removes the view's first element, advancing its start.
// It returns false once the view is empty. Other views and positions over the
// same chain are unaffected.
func (s *Seq[E]) PopFirst() (zero E, _ bool) {
	if s.Empty() {
		return zero, false
	}
	e := s.start.seg.At(s.start.offset)
	s.Advance(&s.start)
	s.cfg.elementDrained()
	return e, true
}

// All returns a multi-pass iterator over the view. Ranging over it again
// re-reads the memoized chain; the producer is only pulled for elements that
// were never materialized before.
func (s *Seq[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for p := s.start; p.Compare(s.end) < 0; s.Advance(&p) {
			if !yield(p.seg.At(p.offset)) {
				return
			}
		}
	}
}

func (s *Seq[E]) check(p Position[E]) {
	if p.chain != s.chain.ID() {
		panic("memoseq: position belongs to a different chain")
	}
}
