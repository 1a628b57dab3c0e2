// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool bounds the concurrency of recursive fork/join work.
//
// Unlike a fixed-size channel-backed worker pool, tasks here are plain
// goroutines gated by a counting semaphore: a task that spawns children and
// blocks on their completion never occupies a "worker slot" that those
// children would also need, so arbitrarily deep recursive fork/join trees
// cannot deadlock the way they would against a pool of persistent workers
// draining a single work channel.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	var wg sync.WaitGroup
//	pool.Go(&wg, func() { process(item) })
//	wg.Wait()
package workerpool

import (
	"runtime"
	"sync"
)

// Pool bounds the number of fork/join tasks running concurrently.
type Pool struct {
	sem chan struct{}
}

// New creates a pool that runs at most numWorkers tasks concurrently.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	return &Pool{sem: make(chan struct{}, numWorkers)}
}

// NumWorkers returns the pool's concurrency bound.
func (p *Pool) NumWorkers() int {
	return cap(p.sem)
}

// Go runs fn, either in a new goroutine registered on wg, or inline on the
// calling goroutine if the pool's concurrency bound is already saturated.
// The caller is responsible for calling wg.Wait().
func (p *Pool) Go(wg *sync.WaitGroup, fn func()) {
	select {
	case p.sem <- struct{}{}:
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-p.sem }()
			fn()
		}()
	default:
		fn()
	}
}

// TrySpawn reports whether the pool has a free slot for another concurrent
// task without blocking; it does not reserve the slot.
func (p *Pool) TrySpawn() bool {
	return len(p.sem) < cap(p.sem)
}
