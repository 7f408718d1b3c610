// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for filling noise
// grids. A Pool is created once and its goroutines are reused by every call,
// so rendering many small tiles does not pay goroutine spawn costs per tile.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelForAtomicBatched(height, 4, func(start, end int) {
//	    for y := start; y < end; y++ {
//	        fillRow(y)
//	    }
//	})
package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned by New and live
// until Close.
type Pool struct {
	numWorkers int
	tasks      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

type task struct {
	run  func()
	done *sync.WaitGroup
}

// New creates a pool with numWorkers goroutines. If numWorkers <= 0 it uses
// GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		tasks:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.loop()
	}
	return p
}

func (p *Pool) loop() {
	for t := range p.tasks {
		t.run()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers once queued work has finished. Calling Close more
// than once is safe. A closed pool still accepts work and runs it on the
// calling goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.tasks)
	})
}

// fanOut runs body on `workers` pool goroutines and waits for all of them.
func (p *Pool) fanOut(workers int, body func(worker int)) {
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := range workers {
		p.tasks <- task{run: func() { body(w) }, done: &wg}
	}
	wg.Wait()
}

// ParallelFor splits [0, n) into one contiguous range per worker and calls
// fn(start, end) for each. It blocks until every range is done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	p.fanOut(workers, func(w int) {
		start := w * chunk
		if start >= n {
			return
		}
		fn(start, min(start+chunk, n))
	})
}

// ParallelForAtomicBatched hands out [0, n) in batches of batchSize through
// an atomic counter, so fast workers take more batches than slow ones. fn
// receives each batch as [start, end). batchSize <= 0 is treated as 1.
func (p *Pool) ParallelForAtomicBatched(n int, batchSize int, fn func(start, end int)) {
	_ = p.ParallelForBatchedCtx(context.Background(), n, batchSize, func(start, end int) error {
		fn(start, end)
		return nil
	})
}

// ParallelForBatchedCtx is ParallelForAtomicBatched for work that can fail
// or be cancelled. No new batch is started once ctx is done or fn has
// returned an error; batches already running finish. The first error wins,
// and ctx.Err() is returned when cancellation stopped the loop.
func (p *Pool) ParallelForBatchedCtx(ctx context.Context, n int, batchSize int, fn func(start, end int) error) error {
	if n <= 0 {
		return ctx.Err()
	}
	batchSize = max(batchSize, 1)
	batches := (n + batchSize - 1) / batchSize

	var (
		next     atomic.Int64
		errOnce  sync.Once
		firstErr error
		stop     atomic.Bool
	)
	fail := func(err error) {
		errOnce.Do(func() { firstErr = err })
		stop.Store(true)
	}
	drain := func(int) {
		for !stop.Load() {
			if err := ctx.Err(); err != nil {
				fail(err)
				return
			}
			b := int(next.Add(1)) - 1
			if b >= batches {
				return
			}
			start := b * batchSize
			if err := fn(start, min(start+batchSize, n)); err != nil {
				fail(err)
				return
			}
		}
	}

	workers := min(p.numWorkers, batches)
	if workers == 1 || p.closed.Load() {
		drain(0)
	} else {
		p.fanOut(workers, drain)
	}
	return firstErr
}
