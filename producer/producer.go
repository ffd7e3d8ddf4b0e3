// Package producer provides adapters that turn common element sources into
// producer functions accepted by memoseq.
package producer

import "iter"

// Slice returns a producer over the elements of s, in order.
func Slice[E any](s []E) func() (E, bool) {
	i := 0
	return func() (zero E, _ bool) {
		if i >= len(s) {
			return zero, false
		}
		e := s[i]
		i++
		return e, true
	}
}

// Seq bridges any iterator via [iter.Pull]. Callers that abandon the producer
// before exhaustion should call stop to release the underlying iteration.
func Seq[E any](seq iter.Seq[E]) (produce func() (E, bool), stop func()) {
	return iter.Pull(seq)
}

// Chan returns a producer that receives from ch until it is closed.
func Chan[E any](ch <-chan E) func() (E, bool) {
	return func() (E, bool) {
		e, ok := <-ch
		return e, ok
	}
}

// Func returns a producer that calls generate with 0, 1, 2, ... until it
// reports exhaustion.
func Func[E any](generate func(i int) (E, bool)) func() (E, bool) {
	i := 0
	return func() (E, bool) {
		e, ok := generate(i)
		i++
		return e, ok
	}
}
