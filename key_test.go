// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package zoct

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootKey(t *testing.T) {
	t.Parallel()

	root := RootKey()
	require.True(t, root.IsRoot())
	require.Equal(t, root, root.Parent())
	require.Equal(t, "0/0", root.String())
}

func TestKeyParentChild(t *testing.T) {
	t.Parallel()

	k := RootKey()
	for _, oct := range []uint8{3, 0, 7, 5, 1} {
		child := k.Child(oct)
		require.Equal(t, k.Level+1, child.Level)
		require.Equal(t, oct, child.Octant())
		require.Equal(t, k, child.Parent())
		k = child
	}
	require.Equal(t, "5/30751", k.String())
}

func TestKeyFromCode(t *testing.T) {
	t.Parallel()

	code := MustEncode(coordMask, 0, 0) // octant 1 on every level

	for level := range uint8(maxLevels + 1) {
		k := code.keyAt(level)
		require.Equal(t, level, k.Level)

		if level > 0 {
			require.Equal(t, uint8(1), k.Octant())
			require.Equal(t, code.keyAt(level-1), k.Parent())
		}
	}

	// the full-depth key's code is the code itself
	require.Equal(t, code, code.keyAt(maxLevels).Code)
}

func TestCodeOctantAt(t *testing.T) {
	t.Parallel()

	// descending by octantAt must reproduce the full-depth key
	code := MustEncode(0x12345, 0xabcd, 0x1f2f3)

	k := RootKey()
	for level := range uint8(maxLevels) {
		k = k.Child(code.octantAt(level))
	}
	require.Equal(t, code.keyAt(maxLevels), k)
}

func TestKeyCellBox(t *testing.T) {
	t.Parallel()

	const grid = 1 << CoordBits

	// the root cell spans the whole grid
	root := RootKey().CellBox()
	require.Equal(t, float32(0), root.Min.X)
	require.Equal(t, float32(grid), root.Max.X)

	// child 0 is the low half cube, child 7 the high half cube
	c0 := RootKey().Child(0).CellBox()
	require.Equal(t, float32(0), c0.Min.X)
	require.Equal(t, float32(grid/2), c0.Max.X)
	require.Equal(t, float32(grid/2), c0.Max.Y)
	require.Equal(t, float32(grid/2), c0.Max.Z)

	c7 := RootKey().Child(7).CellBox()
	require.Equal(t, float32(grid/2), c7.Min.X)
	require.Equal(t, float32(grid/2), c7.Min.Y)
	require.Equal(t, float32(grid/2), c7.Min.Z)
	require.Equal(t, float32(grid), c7.Max.X)

	// a full-depth cell is the unit cube at its grid point
	code := MustEncode(5, 7, 11)
	cell := code.keyAt(maxLevels).CellBox()
	require.Equal(t, float32(5), cell.Min.X)
	require.Equal(t, float32(7), cell.Min.Y)
	require.Equal(t, float32(11), cell.Min.Z)
	require.Equal(t, float32(6), cell.Max.X)
}

func TestKeyCellBoxNesting(t *testing.T) {
	t.Parallel()

	// every child cell is contained in its parent's cell
	code := MustEncode(123456, 654321, 999999)

	for level := uint8(1); level <= maxLevels; level++ {
		parent := code.keyAt(level - 1).CellBox()
		child := code.keyAt(level).CellBox()
		require.True(t, parent.ContainsBox(child),
			"level %d cell must nest in its parent", level)
	}
}

func TestKeyString(t *testing.T) {
	t.Parallel()

	k := RootKey().Child(7).Child(0).Child(3)
	require.Equal(t, "3/703", k.String())
}
