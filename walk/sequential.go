// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package walk

import (
	"fmt"

	"github.com/go-numonoid/numonoid/monoid"
)

// walkSequential performs a single-threaded depth-first walk of start's
// subtree, tallying every descendant's genus into results. start itself
// must already be tallied by the caller; walkSequential only accounts for
// its descendants.
//
// The stack holds pointers into a fixed pool of preallocated monoid.States
// rather than owning fresh state per push, the way Nathann's stack-walk
// trick avoids copying a monoid when it is pushed: a popped node's pool
// slot is only handed back to the free list once every one of its children
// has been derived from it, so the node stays addressable for the whole of
// that derivation and no allocation happens on the hot path.
func walkSequential(cfg monoid.Config, start *monoid.State, results Results) {
	bound := cfg.Genus
	if start.Genus() >= bound-1 {
		return
	}

	capacity := bound + 10
	freeList := make([]*monoid.State, capacity)
	for i := range freeList {
		freeList[i] = monoid.NewState(cfg)
	}
	freeTop := capacity

	acquire := func() *monoid.State {
		if freeTop == 0 {
			panic(fmt.Sprintf("walk: sequential stack exhausted (capacity %d) for genus bound %d", capacity, bound))
		}
		freeTop--
		return freeList[freeTop]
	}
	release := func(s *monoid.State) {
		freeList[freeTop] = s
		freeTop++
	}

	stack := make([]*monoid.State, 0, capacity)
	stack = append(stack, start)

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch {
		case cur.Genus() >= bound-1:
			// A leaf: its children would have genus == bound, outside the
			// reported range, so there is nothing left to tally or expand.

		case cur.Genus() == bound-2:
			// One level above the reported boundary: every child is a leaf
			// in turn, so only their count is needed, not their state.
			it := monoid.NewChildrenIterator(cur)
			results[bound-1] += uint64(it.Count())

		default:
			it := monoid.NewChildrenIterator(cur)
			for it.Advance() {
				g := it.Gen()
				child := acquire()
				monoid.RemoveGenerator(child, cur, g)
				results[child.Genus()]++
				stack = append(stack, child)
			}
		}

		if cur != start {
			release(cur)
		}
	}
}
