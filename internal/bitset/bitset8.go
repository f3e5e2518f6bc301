// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package bitset implements a tiny fixed-size bitset over the eight
// octants of an octree node.
//
// Studied [github.com/bits-and-blooms/bitset] inside out
// and rewrote the needed parts from scratch for this project.
// A single byte is all an octree level ever needs.
package bitset

import (
	"fmt"
	"math/bits"
)

// BitSet8 represents a fixed size bitset from [0..7],
// one bit per octant.
type BitSet8 uint8

func (b BitSet8) String() string {
	return fmt.Sprint(b.All())
}

// MustSet sets the bit, values > 7 silently wrap by intention,
// octants are always masked to three bits by the callers.
func (b *BitSet8) MustSet(bit uint8) {
	*b |= 1 << (bit & 7)
}

// MustClear clears the bit.
func (b *BitSet8) MustClear(bit uint8) {
	*b &^= 1 << (bit & 7)
}

// Test if the bit is set.
func (b BitSet8) Test(bit uint8) bool {
	return b&(1<<(bit&7)) != 0
}

// IsEmpty returns true if no bit is set.
func (b BitSet8) IsEmpty() bool {
	return b == 0
}

// Size returns the number of bits set.
func (b BitSet8) Size() int {
	return bits.OnesCount8(uint8(b))
}

// FirstSet returns the first bit set along with an ok code.
func (b BitSet8) FirstSet() (first uint8, ok bool) {
	if b == 0 {
		return 0, false
	}
	return uint8(bits.TrailingZeros8(uint8(b))), true
}

// NextSet returns the next bit set from the specified start bit,
// including possibly the current bit along with an ok code.
func (b BitSet8) NextSet(bit uint8) (uint8, bool) {
	if bit > 7 {
		return 0, false
	}
	rest := uint8(b) >> bit
	if rest == 0 {
		return 0, false
	}
	return bit + uint8(bits.TrailingZeros8(rest)), true
}

// Rank returns the number of bits set up to and including bit.
//
// Rank is the key of the popcount compression algorithm, mapping
// between octant number and slot in a compressed items slice.
func (b BitSet8) Rank(bit uint8) int {
	mask := uint8(1<<((bit&7)+1)) - 1
	return bits.OnesCount8(uint8(b) & mask)
}

// AsSlice returns all set bits as slice of uint8 without
// heap allocations.
//
// It panics if the capacity of buf is < b.Size().
func (b BitSet8) AsSlice(buf []uint8) []uint8 {
	buf = buf[:cap(buf)]

	size := 0
	word := uint8(b)
	for ; word != 0; size++ {
		buf[size] = uint8(bits.TrailingZeros8(word))

		// clear the rightmost set bit
		word &= word - 1
	}

	return buf[:size]
}

// All returns all set bits as a freshly allocated slice,
// in ascending octant order.
func (b BitSet8) All() []uint8 {
	return b.AsSlice(make([]uint8, 0, 8))
}
