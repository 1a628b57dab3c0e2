// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package walk

import (
	"sync"

	"github.com/go-numonoid/numonoid/hwy/contrib/workerpool"
	"github.com/go-numonoid/numonoid/monoid"
)

// DefaultStackBound is the remaining-depth threshold below which the
// parallel walker stops spawning tasks and delegates to the sequential
// sub-walker. The genus tree is severely unbalanced near the leaves;
// spawning a task per node all the way down would create far more
// goroutines than useful parallel work.
const DefaultStackBound = 11

// WalkParallel tallies start's descendants into results, spawning one task
// per child generator while the remaining depth (cfg.Genus - start.Genus())
// exceeds stackBound, and falling back to the sequential walker once it
// doesn't. start itself must already be tallied by the caller.
//
// pool bounds how many of those spawned tasks run concurrently; results is
// mutated in place and must not be read concurrently with this call.
func WalkParallel(cfg monoid.Config, pool *workerpool.Pool, start *monoid.State, stackBound int, results Results) {
	if cfg.Genus-start.Genus() <= stackBound {
		walkSequential(cfg, start, results)
		return
	}

	it := monoid.NewChildrenIterator(start)
	var wg sync.WaitGroup
	var mu sync.Mutex
	merged := NewResults(cfg.Genus)

	for it.Advance() {
		g := it.Gen()
		pool.Go(&wg, func() {
			child := monoid.NewState(cfg)
			monoid.RemoveGenerator(child, start, g)

			local := NewResults(cfg.Genus)
			local[child.Genus()]++
			WalkParallel(cfg, pool, child, stackBound, local)

			mu.Lock()
			merged.Merge(local)
			mu.Unlock()
		})
	}
	wg.Wait()

	results.Merge(merged)
}

// Run computes the full per-genus tally for cfg.Genus, using a worker pool
// of the given size (0 selects GOMAXPROCS) and the given spawn-depth
// threshold. Setting stackBound >= cfg.Genus disables spawning entirely and
// is equivalent to a purely sequential walk.
func Run(cfg monoid.Config, workers, stackBound int) Results {
	results := NewResults(cfg.Genus)
	results[0] = 1 // the trivial monoid N itself

	if cfg.Genus == 1 {
		return results
	}

	n := monoid.NewRoot(cfg)
	n1 := monoid.NewState(cfg)
	monoid.RemoveGenerator(n1, n, 1)
	results[n1.Genus()]++

	pool := workerpool.New(workers)
	WalkParallel(cfg, pool, n1, stackBound, results)
	return results
}
