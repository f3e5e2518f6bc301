// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package zoct

import (
	"fmt"

	"github.com/aukilabs/go-tooling/pkg/errors"
)

// CoordBits128 is the bit budget per coordinate component of a [Code128].
const CoordBits128 = 42

// coordMask128 selects the CoordBits128 low bits of a component.
const coordMask128 = 1<<CoordBits128 - 1

// Code128 is a 126-bit Morton code for three 42-bit components, stored as
// two uint64 words. The interleaving is the same cyclic scheme as [Code],
// code bit i holds bit i/3 of x, y or z.
//
// Go has no native uint128; the two-word struct with [Code128.Compare]
// provides the total Z-order over the wider domain.
type Code128 struct {
	Hi, Lo uint64
}

// Encode128 interleaves x, y and z into a 128-bit Morton code.
// Components must fit in [CoordBits128] bits.
func Encode128(x, y, z uint64) (Code128, error) {
	if x > coordMask128 || y > coordMask128 || z > coordMask128 {
		return Code128{}, errors.New("coordinate out of range").
			WithType(ErrTypeCoordinateOutOfRange).
			WithTag("x", x).
			WithTag("y", y).
			WithTag("z", z).
			WithTag("bits", CoordBits128)
	}

	// interleave the low and the high 21 bits of each component
	// separately, the halves meet at code bit 63.
	low := spread21(x) | spread21(y)<<1 | spread21(z)<<2
	high := spread21(x>>CoordBits) | spread21(y>>CoordBits)<<1 | spread21(z>>CoordBits)<<2

	return Code128{
		Lo: low | high<<63,
		Hi: high >> 1,
	}, nil
}

// Decode128 is the exact inverse of [Encode128].
func (c Code128) Decode128() (x, y, z uint64) {
	low := c.Lo & (1<<63 - 1)
	high := c.Hi<<1 | c.Lo>>63

	x = compact21(low) | compact21(high)<<CoordBits
	y = compact21(low>>1) | compact21(high>>1)<<CoordBits
	z = compact21(low>>2) | compact21(high>>2)<<CoordBits
	return x, y, z
}

// Compare returns -1, 0 or 1 comparing c and other in Z-order.
func (c Code128) Compare(other Code128) int {
	switch {
	case c.Hi < other.Hi:
		return -1
	case c.Hi > other.Hi:
		return 1
	case c.Lo < other.Lo:
		return -1
	case c.Lo > other.Lo:
		return 1
	}
	return 0
}

// Less reports whether c sorts before other in Z-order.
func (c Code128) Less(other Code128) bool {
	return c.Compare(other) < 0
}

// String implements fmt.Stringer as a 32-digit hex number.
func (c Code128) String() string {
	return fmt.Sprintf("%016x%016x", c.Hi, c.Lo)
}
