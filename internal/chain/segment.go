package chain

import (
	"sync"
	"sync/atomic"
)

// Link states of a segment's next pointer. A segment starts unresolved and
// moves to exactly one of resolved or terminal, never back.
const (
	linkUnresolved int32 = iota
	linkResolved
	linkTerminal
)

// Segment is a fixed-capacity block of materialized elements. Its storage and
// count are immutable once the segment is observable by more than one holder;
// the next link is the only field mutated after that, and only through
// [Chain.Resolve].
type Segment[E any] struct {
	elems   []E // len is the live count, cap is fixed at creation
	ordinal int64

	state atomic.Int32
	next  atomic.Pointer[Segment[E]]
	once  sync.Once
}

// Count returns the number of live elements in the segment.
func (s *Segment[E]) Count() int {
	return len(s.elems)
}

// At returns the element at offset i. Offsets are 0..Count()-1; anything else
// panics via the bounds check.
func (s *Segment[E]) At(i int) E {
	return s.elems[i]
}

// Ordinal returns the segment's rank in its chain, starting at 0.
func (s *Segment[E]) Ordinal() int64 {
	return s.ordinal
}
