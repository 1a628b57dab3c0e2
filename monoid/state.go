// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package monoid represents numerical monoids by their decomposition-count
// array and provides the primitives the tree walker needs: construction of
// the full monoid N, the generator iterator, and generator removal.
package monoid

import (
	"fmt"

	"github.com/go-numonoid/numonoid/block"
)

// Config fixes the array sizing for a run targeting genus bound Genus. Every
// State sharing a Config has the same decs length, so States can be
// cross-compared and copied without a size check on the hot path.
type Config struct {
	Genus     int // G: genus values in [0, Genus) are reported.
	SizeBound int // SB = 3*(Genus-1), raised to at least 16: highest index the walker can reach.
	NumBlocks int // B = ceil(SizeBound/16).
	ArraySize int // S = 16*B.
}

// NewConfig derives the array sizing for genus bound g. g must be >= 1.
func NewConfig(g int) Config {
	if g < 1 {
		panic(fmt.Sprintf("monoid: NewConfig: genus bound %d must be >= 1", g))
	}
	sizeBound := 3 * (g - 1)
	if sizeBound < 16 {
		sizeBound = 16
	}
	numBlocks := (sizeBound + 15) / 16
	return Config{
		Genus:     g,
		SizeBound: sizeBound,
		NumBlocks: numBlocks,
		ArraySize: numBlocks * 16,
	}
}

// State is a numerical monoid: the decomposition-count array plus the three
// scalars that summarize it. States are value-like; callers own their own
// storage and pass *State only to avoid copying the backing array on every
// call.
type State struct {
	decs      []byte
	min       int
	conductor int
	genus     int
	cfg       Config
}

// NewState allocates a zeroed State sized for cfg. Its decs array is not a
// valid monoid until initialized by NewRoot or populated by RemoveGenerator.
func NewState(cfg Config) *State {
	return &State{decs: make([]byte, cfg.ArraySize), cfg: cfg}
}

// NewRoot returns the full monoid N = {0, 1, 2, ...}: decs[i] = i/2 + 1,
// conductor = 1, min = 1, genus = 0.
func NewRoot(cfg Config) *State {
	s := NewState(cfg)
	for i := range s.decs {
		s.decs[i] = byte(i/2 + 1)
	}
	s.min = 1
	s.conductor = 1
	s.genus = 0
	return s
}

// CopyFrom overwrites s's decs, min, conductor and genus with src's. src and
// s must share the same Config.
func (s *State) CopyFrom(src *State) {
	copy(s.decs, src.decs)
	s.min = src.min
	s.conductor = src.conductor
	s.genus = src.genus
	s.cfg = src.cfg
}

// Min returns the monoid's multiplicity.
func (s *State) Min() int { return s.min }

// Conductor returns the smallest integer from which on every integer
// belongs to the monoid.
func (s *State) Conductor() int { return s.conductor }

// Genus returns the number of gaps below the conductor.
func (s *State) Genus() int { return s.genus }

// Dec returns decs[i], the number of ways to write i as a sum of two
// non-gaps of the monoid. A value of 0 marks a gap, 1 marks a generator.
func (s *State) Dec(i int) byte { return s.decs[i] }

func (s *State) loadBlock(iblock int) block.Lane16 {
	return s.loadAt(iblock * 16)
}

func (s *State) loadAt(start int) block.Lane16 {
	var b block.Lane16
	if start >= len(s.decs) {
		return b
	}
	end := start + 16
	if end > len(s.decs) {
		copy(b[:], s.decs[start:])
		return b
	}
	copy(b[:], s.decs[start:end])
	return b
}

func (s *State) storeBlock(iblock int, b block.Lane16) {
	start := iblock * 16
	block.Store(s.decs[start:start+16], b)
}
