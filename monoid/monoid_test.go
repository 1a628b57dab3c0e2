// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package monoid

import "testing"

func TestNewRoot(t *testing.T) {
	cfg := NewConfig(10)
	n := NewRoot(cfg)
	if n.Genus() != 0 || n.Conductor() != 1 || n.Min() != 1 {
		t.Fatalf("NewRoot = genus %d conductor %d min %d, want 0 1 1", n.Genus(), n.Conductor(), n.Min())
	}
	for i := 0; i < 20; i++ {
		want := byte(i/2 + 1)
		if got := n.Dec(i); got != want {
			t.Errorf("Dec(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestRemoveGeneratorFromRoot(t *testing.T) {
	cfg := NewConfig(10)
	n := NewRoot(cfg)
	child := NewState(cfg)
	RemoveGenerator(child, n, 1)

	if child.Genus() != 1 {
		t.Errorf("genus = %d, want 1", child.Genus())
	}
	if child.Conductor() != 2 {
		t.Errorf("conductor = %d, want 2", child.Conductor())
	}
	if child.Min() != 2 {
		t.Errorf("min = %d, want 2", child.Min())
	}
	wantDecs := []byte{1, 0, 1, 1, 2}
	for i, want := range wantDecs {
		if got := child.Dec(i); got != want {
			t.Errorf("Dec(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestRemoveGeneratorTwice(t *testing.T) {
	cfg := NewConfig(10)
	n := NewRoot(cfg)
	m1 := NewState(cfg)
	RemoveGenerator(m1, n, 1)

	m2 := NewState(cfg)
	RemoveGenerator(m2, m1, 2)

	if m2.Genus() != 2 {
		t.Errorf("genus = %d, want 2", m2.Genus())
	}
	if m2.Conductor() != 3 {
		t.Errorf("conductor = %d, want 3", m2.Conductor())
	}
	if m2.Min() != 3 {
		t.Errorf("min = %d, want 3", m2.Min())
	}
}

func TestRemoveGeneratorPanicsOnNonGenerator(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic removing a non-generator")
		}
	}()
	cfg := NewConfig(10)
	n := NewRoot(cfg)
	child := NewState(cfg)
	RemoveGenerator(child, n, 4) // decs[4] = 3, not a generator
}

func TestRemoveGeneratorRejectsGap(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic removing a gap")
		}
	}()
	cfg := NewConfig(10)
	n := NewRoot(cfg)
	m1 := NewState(cfg)
	RemoveGenerator(m1, n, 1) // m1.decs[1] == 0 now
	m2 := NewState(cfg)
	RemoveGenerator(m2, m1, 1)
}

func checkInvariants(t *testing.T, s *State) {
	t.Helper()
	if s.Dec(0) != 1 {
		t.Errorf("decs[0] = %d, want 1", s.Dec(0))
	}
	// The root N has conductor 1 and decs[0] = 1, so the sharp-conductor
	// check applies only to monoids with at least one gap.
	if s.Conductor() > 1 && s.Dec(s.Conductor()-1) != 0 {
		t.Errorf("decs[conductor-1=%d] = %d, want 0", s.Conductor()-1, s.Dec(s.Conductor()-1))
	}
	gaps := 0
	for i := 1; i < s.Conductor(); i++ {
		if s.Dec(i) == 0 {
			gaps++
		}
	}
	if gaps != s.Genus() {
		t.Errorf("counted %d gaps below conductor, genus field says %d", gaps, s.Genus())
	}
}

func TestInvariantsHoldAcrossDerivation(t *testing.T) {
	cfg := NewConfig(12)
	n := NewRoot(cfg)
	checkInvariants(t, n)

	cur := n
	for _, g := range []int{1, 2, 4} {
		next := NewState(cfg)
		RemoveGenerator(next, cur, g)
		checkInvariants(t, next)
		cur = next
	}
}

func TestChildrenIteratorOnlyYieldsAtOrAboveConductor(t *testing.T) {
	cfg := NewConfig(12)
	n := NewRoot(cfg)
	m1 := NewState(cfg)
	RemoveGenerator(m1, n, 1)

	it := NewChildrenIterator(m1)
	count := 0
	for it.Advance() {
		if it.Gen() < m1.Conductor() {
			t.Errorf("children iterator yielded %d below conductor %d", it.Gen(), m1.Conductor())
		}
		count++
	}
	if count == 0 {
		t.Fatal("expected at least one child generator")
	}
}

func TestAllIteratorExcludesZero(t *testing.T) {
	cfg := NewConfig(10)
	n := NewRoot(cfg)
	it := NewAllIterator(n)
	for it.Advance() {
		if it.Gen() == 0 {
			t.Fatal("all-iterator yielded index 0")
		}
	}
}

func TestCountMatchesMaterializedChildren(t *testing.T) {
	cfg := NewConfig(10)
	n := NewRoot(cfg)
	m1 := NewState(cfg)
	RemoveGenerator(m1, n, 1)

	it := NewChildrenIterator(m1)
	want := it.Count()

	it2 := NewChildrenIterator(m1)
	got := 0
	for it2.Advance() {
		got++
	}
	if got != want {
		t.Errorf("materialized %d children, Count() said %d", got, want)
	}
}
