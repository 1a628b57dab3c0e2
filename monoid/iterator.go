// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package monoid

import "github.com/go-numonoid/numonoid/block"

// GeneratorIter enumerates the indices i where a monoid's decs[i] == 1, in
// strictly increasing order. Construct with NewAllIterator or
// NewChildrenIterator, then call Advance in a loop:
//
//	it := monoid.NewChildrenIterator(s)
//	for it.Advance() {
//		g := it.Gen()
//		...
//	}
type GeneratorIter struct {
	state  *State
	iblock int
	mask   uint16
	gen    int
	bound  int
}

// boundFor returns the clamped block-index bound used by both iterator
// constructions: every index >= conductor+min is necessarily a non-generator
// because conductor+min and above already lie in the monoid, so blocks past
// this bound never need to be examined. Clamped to the last valid block of
// the Config's array, since for some (conductor, min) pairs the raw bound
// can exceed the array the way the array is sized for 3*(Genus-1) rather
// than for conductor+min directly.
func boundFor(s *State) int {
	raw := (s.conductor + s.min + 15) / 16
	if last := s.cfg.NumBlocks - 1; raw > last {
		return last
	}
	return raw
}

// NewAllIterator enumerates every generator of s, excluding index 0 (the
// identity element, never a generator).
func NewAllIterator(s *State) *GeneratorIter {
	blk := s.loadBlock(0)
	mask := block.EqOneMask(blk) &^ 1
	return &GeneratorIter{state: s, iblock: 1, mask: mask, gen: -1, bound: boundFor(s)}
}

// NewChildrenIterator enumerates only the generators >= s's conductor: the
// ones whose removal yields a child monoid.
func NewChildrenIterator(s *State) *GeneratorIter {
	iblock := s.conductor / 16
	k := s.conductor % 16
	blk := block.MaskLowBytes(s.loadBlock(iblock), k)
	mask := block.EqOneMask(blk)
	gen := iblock*16 - 1
	return &GeneratorIter{state: s, iblock: iblock + 1, mask: mask, gen: gen, bound: boundFor(s)}
}

// Advance moves to the next generator and reports whether one was found.
// Once it returns false the iterator is exhausted; further calls keep
// returning false.
func (it *GeneratorIter) Advance() bool {
	for it.mask == 0 {
		if it.iblock > it.bound {
			return false
		}
		it.gen = it.iblock*16 - 1
		blk := it.state.loadBlock(it.iblock)
		it.mask = block.EqOneMask(blk)
		it.iblock++
	}
	s := block.TrailingZeroPlusOne(it.mask)
	it.gen += s
	it.mask >>= uint(s)
	return true
}

// Gen returns the generator index found by the most recent successful
// Advance call.
func (it *GeneratorIter) Gen() int { return it.gen }

// IsFinished reports whether every block up to the bound has been loaded and
// no generator of the current block is left to yield, without consuming one.
// It reports false while blocks remain to be loaded, even when those blocks
// hold no generator.
func (it *GeneratorIter) IsFinished() bool {
	return it.iblock > it.bound && it.mask == 0
}

// Count returns the number of generators remaining (including one not yet
// consumed by Advance, if any) without materializing them. This is the
// shortcut the walker uses at leaves of the search tree, where only the
// child count and not the children themselves is needed.
func (it *GeneratorIter) Count() int {
	n := block.PopCount16(it.mask)
	for i := it.iblock; i <= it.bound; i++ {
		n += block.PopCount16(block.EqOneMask(it.state.loadBlock(i)))
	}
	return n
}
