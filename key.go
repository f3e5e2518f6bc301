// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package zoct

import (
	"fmt"

	"cogentcore.org/core/math32"
)

const (
	// strideLen is the branching stride in bits, one bit per axis.
	strideLen = 3

	// maxLevels is the deepest subdivision level a 64-bit code can
	// address, one 3-bit group per level.
	maxLevels = CoordBits
)

// Key addresses a node in a hash-addressed tree. Code holds the Level most
// significant 3-bit groups of a full-depth Morton code, the path of octants
// from the root down to the node.
//
// Parent and child keys are derived arithmetically from a Key, no tree
// access is ever needed.
type Key struct {
	Code  Code
	Level uint8
}

// RootKey is the key of the root node, the zero value.
func RootKey() Key {
	return Key{}
}

// IsRoot reports whether k addresses the root node.
func (k Key) IsRoot() bool {
	return k.Level == 0
}

// Parent returns the key of the parent node, one 3-bit group shifted out.
// Parent of the root is the root itself.
func (k Key) Parent() Key {
	if k.IsRoot() {
		return k
	}
	return Key{Code: k.Code >> strideLen, Level: k.Level - 1}
}

// Child returns the key of the child node in octant oct.
func (k Key) Child(oct uint8) Key {
	return Key{Code: k.Code<<strideLen | Code(oct&7), Level: k.Level + 1}
}

// Octant returns the octant of k within its parent,
// the three least significant code bits.
func (k Key) Octant() uint8 {
	return uint8(k.Code & 7)
}

// CellBox returns the node's cell as a bounding box over the full
// 2^21 grid, in grid units.
func (k Key) CellBox() math32.Box3 {
	shift := uint(maxLevels - k.Level)
	x, y, z := (k.Code << (strideLen * shift)).Decode()

	side := float32(uint32(1) << shift)
	min := math32.Vec3(float32(x), float32(y), float32(z))

	return math32.Box3{Min: min, Max: min.AddScalar(side)}
}

// String prints the key as level and octal code, one octal
// digit per octant on the path from the root.
func (k Key) String() string {
	return fmt.Sprintf("%d/%o", k.Level, uint64(k.Code))
}

// prefix returns the level most significant 3-bit groups of c,
// the code part of the node key at that level.
func (c Code) prefix(level uint8) Code {
	return c >> (strideLen * uint(maxLevels-level))
}

// keyAt returns the ancestor node key of a full-depth code at level.
func (c Code) keyAt(level uint8) Key {
	return Key{Code: c.prefix(level), Level: level}
}

// octantAt returns the octant chosen when descending
// from depth level to level+1.
func (c Code) octantAt(level uint8) uint8 {
	return uint8(c>>(strideLen*uint(maxLevels-1-level))) & 7
}
