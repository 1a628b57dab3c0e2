// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package block implements the fixed 16-byte lane kernel the decomposition
// walker runs its hot loop on: an equality-to-one mask, shift-by-k with a
// zero-filled low end, unaligned load, and byte-wise saturating subtract of
// a 0/1 mask. Every operation here works on exactly 16 bytes regardless of
// what SIMD width the host CPU exposes (see package hwy for that report);
// widening to the CPU's native vector width is future work, not correctness.
package block

import "math/bits"

// Lane16 is a single 16-byte SIMD lane, the unit the decomposition-count
// array is walked in.
type Lane16 = [16]byte

// Load reads 16 bytes from p at an arbitrary offset into a Lane16. p must
// have at least 16 bytes remaining from its start; callers that read past
// the logical end of a decomposition array rely on its padding to S bytes.
func Load(p []byte) Lane16 {
	var b Lane16
	copy(b[:], p[:16])
	return b
}

// Store writes b's 16 bytes into p.
func Store(p []byte, b Lane16) {
	copy(p[:16], b[:])
}

// EqOneMask sets bit j of the returned mask iff b[j] == 1.
func EqOneMask(b Lane16) uint16 {
	var mask uint16
	for j, v := range b {
		if v == 1 {
			mask |= 1 << uint(j)
		}
	}
	return mask
}

// PopCount16 returns the number of set bits in mask.
func PopCount16(mask uint16) int {
	return bits.OnesCount16(mask)
}

// TrailingZeroPlusOne returns one plus the index of the lowest set bit of
// mask. mask must be non-zero.
func TrailingZeroPlusOne(mask uint16) int {
	return bits.TrailingZeros16(mask) + 1
}

// ShiftRightBytes returns a lane whose byte j equals b[j-k] for j >= k, and
// zero for j < k. This is the "safer" zero-sentinel convention the
// decomposition subtraction step relies on (see package monoid,
// RemoveGenerator): blank lanes introduced by the shift must read as
// "not a non-gap" so that clamp-and-subtract leaves positions below the
// removed generator untouched.
func ShiftRightBytes(b Lane16, k int) Lane16 {
	var out Lane16
	if k <= 0 {
		return b
	}
	if k >= 16 {
		return out
	}
	for j := 15; j >= k; j-- {
		out[j] = b[j-k]
	}
	return out
}

// MaskLowBytes zeroes the low k byte lanes of b, leaving the rest untouched.
func MaskLowBytes(b Lane16, k int) Lane16 {
	if k <= 0 {
		return b
	}
	out := b
	if k > 16 {
		k = 16
	}
	for j := 0; j < k; j++ {
		out[j] = 0
	}
	return out
}

// ClampToBit maps every non-zero lane of b to 1 and every zero lane to 0.
func ClampToBit(b Lane16) Lane16 {
	var out Lane16
	for j, v := range b {
		if v != 0 {
			out[j] = 1
		}
	}
	return out
}

// SaturatingSubBit subtracts mask (each lane 0 or 1, as produced by
// ClampToBit) from dst in place, saturating at 0 rather than wrapping.
func SaturatingSubBit(dst *Lane16, mask Lane16) {
	for j := range dst {
		if mask[j] != 0 && dst[j] > 0 {
			dst[j]--
		}
	}
}
