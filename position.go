package memoseq

import (
	"cmp"
	"math"

	"github.com/memoseq/memoseq/internal/chain"
)

// Position is an ordered handle identifying one element's location within a
// chain. Positions stay valid for the lifetime of their chain and compare by
// (segment ordinal, offset); the end position sorts after every element
// position.
//
// A Position is only meaningful with the Seq family it came from. Using it
// with a Seq over a different chain panics.
type Position[E any] struct {
	chain   string
	ordinal int64
	offset  int
	seg     *chain.Segment[E] // nil marks the end position
}

func endPosition[E any](chainID string) Position[E] {
	return Position[E]{chain: chainID, ordinal: math.MaxInt64}
}

// Compare orders p against q: negative when p is before q, zero when equal,
// positive when after. Both positions must come from the same chain.
func (p Position[E]) Compare(q Position[E]) int {
	if p.chain != q.chain {
		panic("memoseq: comparing positions of different chains")
	}
	if c := cmp.Compare(p.ordinal, q.ordinal); c != 0 {
		return c
	}
	return cmp.Compare(p.offset, q.offset)
}

// Advance moves p to the next element in place. Within a segment this is a
// pure field bump; at a segment boundary it resolves the successor, pulling
// the producer if that part of the chain was never materialized. Advancing
// the end position panics.
//
// Replaying Advance over an already materialized chain is deterministic: the
// same starting position always reaches the same element.
func (s *Seq[E]) Advance(p *Position[E]) {
	s.check(*p)
	if p.seg == nil {
		panic("memoseq: advancing past the end position")
	}

	if p.offset+1 < p.seg.Count() {
		p.offset++
		return
	}

	next, ok := s.chain.Resolve(p.seg)
	if !ok {
		*p = endPosition[E](p.chain)
		return
	}
	p.seg = next
	p.offset = 0
	p.ordinal++
}

// Next returns the position after p without mutating it. It is the pure form
// of [Seq.Advance]; both observe identical chains and elements.
func (s *Seq[E]) Next(p Position[E]) Position[E] {
	s.Advance(&p)
	return p
}
