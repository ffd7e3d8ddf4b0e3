package memoseq

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Prefetch materializes up to ahead segments past the view's start in a
// background goroutine, so that a later traversal finds them already
// resolved. It returns a wait function that blocks until prefetching stops
// and reports the context error, if any.
//
// Prefetching goes through the same one-shot resolution as traversal:
// elements already materialized, or materialized concurrently by readers, are
// not produced again. Cancellation is checked between segments; it cannot
// interrupt an in-flight producer call.
func (s *Seq[E]) Prefetch(ctx context.Context, ahead int) func() error {
	if ahead < 1 {
		panic("prefetch ahead can't be < 1")
	}

	g, ctx := errgroup.WithContext(ctx)
	seg := s.start.seg

	g.Go(func() error {
		if seg == nil {
			return nil
		}
		for range ahead {
			if err := ctx.Err(); err != nil {
				return err
			}
			next, ok := s.chain.Resolve(seg)
			if !ok {
				return nil
			}
			seg = next
		}
		return nil
	})

	return g.Wait
}
