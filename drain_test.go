package memoseq_test

import (
	"slices"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/memoseq/memoseq"
	"github.com/memoseq/memoseq/internal/testing/require"
)

func TestDrainerMatchesSharedTraversal(t *testing.T) {
	const n = 100

	exclusive, _, _ := countingInts(n)
	shared, _, _ := countingInts(n)

	d := memoseq.NewDrainer(exclusive, memoseq.WithBlockSize[int](8))
	s := memoseq.New(shared, memoseq.WithBlockSize[int](8))

	require.Equal(t, slices.Collect(d.All()), slices.Collect(s.All()))
}

func TestDrainerReusesSingleSegment(t *testing.T) {
	const n = 100
	produce, calls, probes := countingInts(n)
	reg := prometheus.NewRegistry()

	d := memoseq.NewDrainer(produce,
		memoseq.WithBlockSize[int](8),
		memoseq.WithMetrics[int](memoseq.Prometheus(reg)),
	)

	var got []int
	for {
		e, ok := d.Next()
		if !ok {
			break
		}
		got = append(got, e)
	}

	require.Equal(t, got, intsUpTo(n))
	require.Equal(t, calls.Load(), int64(n))
	require.Equal(t, probes.Load(), int64(1))

	// 100 elements in blocks of 8: one allocation, twelve in-place refills.
	requireCounter(t, reg, "memoseq_segments_allocated",
		"Number of chain segments allocated", 1)
	requireCounter(t, reg, "memoseq_segment_reuses",
		"Number of in-place segment refills by exclusive drainers", 12)
	requireCounter(t, reg, "memoseq_elements_drained",
		"Number of elements removed by pops and drains", 100)
}

func TestDrainerBlockBoundaryExhaustion(t *testing.T) {
	// Stream length divisible by the block size: exhaustion is discovered by
	// a refill attempt, not mid-fill.
	const n = 16
	produce, calls, probes := countingInts(n)

	d := memoseq.NewDrainer(produce, memoseq.WithBlockSize[int](4))

	require.Equal(t, slices.Collect(d.All()), intsUpTo(n))
	require.Equal(t, calls.Load(), int64(n))
	require.Equal(t, probes.Load(), int64(1))
}

func TestDrainerStaysExhausted(t *testing.T) {
	produce, _, probes := countingInts(3)

	d := memoseq.NewDrainer(produce, memoseq.WithBlockSize[int](2))
	require.Len(t, slices.Collect(d.All()), 3)

	for range 5 {
		_, ok := d.Next()
		require.False(t, ok)
	}
	require.Equal(t, probes.Load(), int64(1))
}

func TestDrainerEmptyProducer(t *testing.T) {
	produce, calls, probes := countingInts(0)
	reg := prometheus.NewRegistry()

	d := memoseq.NewDrainer(produce, memoseq.WithMetrics[int](memoseq.Prometheus(reg)))

	_, ok := d.Next()
	require.False(t, ok)
	require.Equal(t, calls.Load(), int64(0))
	require.Equal(t, probes.Load(), int64(1))
	requireCounter(t, reg, "memoseq_segments_allocated",
		"Number of chain segments allocated", 0)
}
