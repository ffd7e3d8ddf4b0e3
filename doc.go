/*
Package memoseq adapts a single-pass producer into a multi-pass, lazily
materialized sequence with stable positions.

A [Producer] can be pulled once: a volatile stream, a database cursor, an
expensive generation procedure. [New] wraps it in a [Seq] that materializes
elements on demand into a chain of fixed-capacity segments and never invokes
the producer twice for the same logical element, no matter how many positions,
slices, or goroutines traverse the chain.

	next, stop := iter.Pull(values)
	defer stop()

	s := memoseq.New(next)
	for v := range s.All() {
		// first traversal pulls from the producer
	}
	for v := range s.All() {
		// second traversal re-reads the memoized chain
	}

Positions ([Seq.Start], [Seq.Next], [Seq.At]) are ordered, comparable handles
into the chain, so algorithms that need indices or slicing can run over data
that is otherwise gone after one pass. [Drainer] is the complementary
single-pass form: it owns its one segment exclusively and drains with constant
memory by refilling that segment in place.
*/
package memoseq
