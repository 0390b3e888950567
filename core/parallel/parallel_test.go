package parallel

import (
	"sync/atomic"
	"testing"
)

func TestParallelizeCoversAllItems(t *testing.T) {
	for _, items := range []int{0, 1, 7, 100, 1000} {
		var count int64
		Parallelize(items, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt64(&count, 1)
			}
		})
		if count != int64(items) {
			t.Errorf("items=%d: visited %d", items, count)
		}
	}
}

func TestParallelizeDisjointRanges(t *testing.T) {
	const items = 523
	seen := make([]int32, items)
	Parallelize(items, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&seen[i], 1)
		}
	})
	for i, v := range seen {
		if v != 1 {
			t.Fatalf("index %d visited %d times", i, v)
		}
	}
}

func TestParallelizeWithThresholdSequential(t *testing.T) {
	calls := 0
	ParallelizeWithThreshold(10, 100, func(start, end int) {
		calls++
		if start != 0 || end != 10 {
			t.Errorf("sequential path got range [%d, %d)", start, end)
		}
	})
	if calls != 1 {
		t.Errorf("expected a single sequential call, got %d", calls)
	}
}
