// Package parallel provides CPU-parallel execution helpers for
// embarrassingly parallel numerical loops.
package parallel

import (
	"runtime"
	"sync"
)

// Parallelize splits the half-open range [0, items) across the available
// CPU cores and runs fn on each chunk concurrently. fn receives the
// start (inclusive) and end (exclusive) of its chunk and must not write
// to memory owned by another chunk.
func Parallelize(items int, fn func(start, end int)) {
	if items == 0 {
		return
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > items {
		numWorkers = items
	}

	// Ceiling division so every item is covered.
	chunkSize := (items + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > items {
			end = items
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}

// ParallelizeWithThreshold runs fn over [0, items) sequentially when the
// item count is at or below threshold, and in parallel otherwise. Small
// loops stay on the caller's goroutine to avoid scheduling overhead.
func ParallelizeWithThreshold(items, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}

	Parallelize(items, fn)
}
