package memoseq_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/memoseq/memoseq"
	"github.com/memoseq/memoseq/internal/testing/require"
)

func TestPrefetchMaterializesAhead(t *testing.T) {
	const n = 100
	produce, calls, probes := countingInts(n)

	s := memoseq.New(produce, memoseq.WithBlockSize[int](10))
	require.Equal(t, calls.Load(), int64(10))

	wait := s.Prefetch(t.Context(), 3)
	require.Nil(t, wait())

	// Head plus three prefetched segments.
	require.Equal(t, calls.Load(), int64(40))
	require.Equal(t, probes.Load(), int64(0))

	// Traversal finds the prefix resolved and produces only the tail.
	require.Equal(t, slices.Collect(s.All()), intsUpTo(n))
	require.Equal(t, calls.Load(), int64(n))
	require.Equal(t, probes.Load(), int64(1))
}

func TestPrefetchStopsAtExhaustion(t *testing.T) {
	const n = 25
	produce, calls, probes := countingInts(n)

	s := memoseq.New(produce, memoseq.WithBlockSize[int](10))

	wait := s.Prefetch(t.Context(), 100)
	require.Nil(t, wait())

	require.Equal(t, calls.Load(), int64(n))
	require.Equal(t, probes.Load(), int64(1))
}

func TestPrefetchEmptySequence(t *testing.T) {
	produce, _, probes := countingInts(0)

	s := memoseq.New(produce)

	wait := s.Prefetch(t.Context(), 5)
	require.Nil(t, wait())
	require.Equal(t, probes.Load(), int64(1))
}

func TestPrefetchCancellation(t *testing.T) {
	const n = 1000
	produce, _, _ := countingInts(n)

	s := memoseq.New(produce, memoseq.WithBlockSize[int](10))

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	wait := s.Prefetch(ctx, 50)
	require.True(t, errors.Is(wait(), context.Canceled))
}

func TestPrefetchValidation(t *testing.T) {
	produce, _, _ := countingInts(3)
	s := memoseq.New(produce)

	require.PanicWithError(t, "prefetch ahead can't be < 1", func() {
		s.Prefetch(t.Context(), 0)
	})
}
