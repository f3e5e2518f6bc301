// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package zoct

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
)

// CoordBits is the bit budget per coordinate component of a 64-bit [Code].
const CoordBits = 21

// coordMask selects the CoordBits low bits of a component.
const coordMask = 1<<CoordBits - 1

// Code is a 63-bit Morton (Z-order) code, the bits of three 21-bit
// coordinate components interleaved cyclically: code bit i holds bit i/3
// of x, y or z for i%3 == 0, 1, 2.
//
// The natural uint64 order of codes is the Z-order curve and is used
// directly as sort and lookup key. Locality is preserved within octants
// but not across all curve boundaries.
type Code uint64

// Encode interleaves x, y and z into a Morton code.
// Components must fit in [CoordBits] bits.
func Encode(x, y, z uint32) (Code, error) {
	if x > coordMask || y > coordMask || z > coordMask {
		return 0, errors.New("coordinate out of range").
			WithType(ErrTypeCoordinateOutOfRange).
			WithTag("x", x).
			WithTag("y", y).
			WithTag("z", z).
			WithTag("bits", CoordBits)
	}
	return Code(spread21(uint64(x)) |
		spread21(uint64(y))<<1 |
		spread21(uint64(z))<<2), nil
}

// MustEncode is like [Encode] but panics on out-of-range components.
// Use it only with coordinates already known to be in range.
func MustEncode(x, y, z uint32) Code {
	code, err := Encode(x, y, z)
	if err != nil {
		panic(err)
	}
	return code
}

// Decode is the exact inverse of [Encode].
func (c Code) Decode() (x, y, z uint32) {
	x = uint32(compact21(uint64(c)))
	y = uint32(compact21(uint64(c) >> 1))
	z = uint32(compact21(uint64(c) >> 2))
	return x, y, z
}

// spread21 distributes the 21 low bits of v over every third bit,
// bit j moves to bit 3j.
func spread21(v uint64) uint64 {
	v &= coordMask
	v = (v | v<<32) & 0x1f00000000ffff
	v = (v | v<<16) & 0x1f0000ff0000ff
	v = (v | v<<8) & 0x100f00f00f00f00f
	v = (v | v<<4) & 0x10c30c30c30c30c3
	v = (v | v<<2) & 0x1249249249249249
	return v
}

// compact21 is the inverse of spread21, bit 3j moves to bit j.
func compact21(v uint64) uint64 {
	v &= 0x1249249249249249
	v = (v | v>>2) & 0x10c30c30c30c30c3
	v = (v | v>>4) & 0x100f00f00f00f00f
	v = (v | v>>8) & 0x1f0000ff0000ff
	v = (v | v>>16) & 0x1f00000000ffff
	v = (v | v>>32) & coordMask
	return v
}
