// Package workpool adapts the engine's worker-pool machinery to the
// column/row concurrency seam described for the render passes: within a
// single pass, columns (or rows) don't observe each other's writes and
// touch disjoint pixels, so a pass may be partitioned across goroutines
// without any synchronization beyond waiting for the batch to finish.
package workpool

import (
	"runtime"
	"sync"

	"raycastengine/internal/mathutil"
)

// Pool runs indexed work items across a fixed number of worker goroutines,
// reusing them across frames instead of spawning goroutines per call.
type Pool struct {
	numWorkers int
	jobs       chan func()
	wg         sync.WaitGroup
	quit       chan struct{}
}

// New creates a Pool with numWorkers goroutines. numWorkers <= 0 defaults
// to runtime.NumCPU().
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	p := &Pool{
		numWorkers: numWorkers,
		jobs:       make(chan func(), numWorkers*2),
		quit:       make(chan struct{}),
	}
	for i := 0; i < numWorkers; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for {
		select {
		case job := <-p.jobs:
			job()
			p.wg.Done()
		case <-p.quit:
			return
		}
	}
}

func (p *Pool) submit(job func()) {
	p.wg.Add(1)
	p.jobs <- job
}

// NumWorkers reports the number of worker goroutines.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// ForEach calls fn(i) for every i in [start, end), partitioned into
// contiguous batches of roughly equal size and run across the pool's
// workers. It blocks until every batch has completed. A single-worker Pool
// runs fn in index order on the calling goroutine's behalf, making
// Render's default configuration deterministic for golden-output tests.
func (p *Pool) ForEach(start, end int, fn func(int)) {
	if start >= end {
		return
	}
	if p.numWorkers == 1 {
		for i := start; i < end; i++ {
			fn(i)
		}
		return
	}

	total := end - start
	batchSize := mathutil.IntMax(1, total/p.numWorkers)

	for i := start; i < end; i += batchSize {
		chunkStart := i
		chunkEnd := mathutil.IntMin(i+batchSize, end)
		p.submit(func() {
			for j := chunkStart; j < chunkEnd; j++ {
				fn(j)
			}
		})
	}
	p.wg.Wait()
}

// Close shuts down the pool's workers. A closed Pool must not be used again.
func (p *Pool) Close() {
	close(p.quit)
}
