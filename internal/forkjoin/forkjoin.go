// Package forkjoin factors out the one concurrency pattern every
// parallel kernel in this module needs: split a contiguous range of
// indices into GOMAXPROCS disjoint chunks, run one goroutine per chunk,
// and block until all of them finish. It is the single shared home for
// what the teacher repo open-coded separately in each cgo call site.
package forkjoin

import (
	"runtime"
	"sync"
)

// Run splits [0, n) into contiguous chunks, one per available processor,
// and calls fn(start, end) for each chunk concurrently. It blocks until
// every chunk has completed. fn must be safe to call concurrently with
// itself over disjoint [start, end) ranges.
//
// If n is small enough that a single chunk would cover it, or only one
// processor is available, fn is called once, synchronously, over the
// whole range.
func Run(n uint64, fn func(start, end uint64)) {
	workers := uint64(runtime.GOMAXPROCS(0))
	if workers <= 1 || n <= 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	if chunk == 0 {
		fn(0, n)
		return
	}

	var wg sync.WaitGroup
	for start := uint64(0); start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}

		wg.Add(1)
		go func(start, end uint64) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}
	wg.Wait()
}
