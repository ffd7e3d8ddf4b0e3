package producer_test

import (
	"slices"
	"testing"

	"github.com/memoseq/memoseq"
	"github.com/memoseq/memoseq/internal/testing/require"
	"github.com/memoseq/memoseq/producer"
)

func TestSlice(t *testing.T) {
	produce := producer.Slice([]int{1, 2, 3})

	var got []int
	for {
		e, ok := produce()
		if !ok {
			break
		}
		got = append(got, e)
	}
	require.Equal(t, got, []int{1, 2, 3})

	// Stays exhausted.
	_, ok := produce()
	require.False(t, ok)
}

func TestSliceEmpty(t *testing.T) {
	produce := producer.Slice([]string{})
	_, ok := produce()
	require.False(t, ok)
}

func TestSeq(t *testing.T) {
	produce, stop := producer.Seq(slices.Values([]int{4, 5, 6}))
	defer stop()

	s := memoseq.New(produce)
	require.Equal(t, slices.Collect(s.All()), []int{4, 5, 6})
	require.Equal(t, slices.Collect(s.All()), []int{4, 5, 6})
}

func TestChan(t *testing.T) {
	ch := make(chan int, 3)
	ch <- 7
	ch <- 8
	ch <- 9
	close(ch)

	s := memoseq.New(producer.Chan(ch))
	require.Equal(t, slices.Collect(s.All()), []int{7, 8, 9})
}

func TestFunc(t *testing.T) {
	produce := producer.Func(func(i int) (int, bool) {
		if i >= 4 {
			return 0, false
		}
		return i * i, true
	})

	s := memoseq.New(produce)
	require.Equal(t, slices.Collect(s.All()), []int{0, 1, 4, 9})
}
