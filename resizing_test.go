// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package zoct

import (
	"math/rand/v2"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/require"
)

func TestResizingTreeInsertGet(t *testing.T) {
	t.Parallel()

	tree, err := NewResizingTree[string](Config{}, CenteredRegion{Region: Region{Level: 0}})
	require.NoError(t, err)

	points := []math32.Vector3{
		math32.Vec3(0, 0, 0),
		math32.Vec3(0.5, -0.5, 0.25),
		math32.Vec3(-0.9, 0.9, 0),
	}
	for i, p := range points {
		require.NoError(t, tree.Insert(p, string(rune('a'+i))))
	}
	require.Equal(t, len(points), tree.Len())

	for i, p := range points {
		val, ok, err := tree.Get(p)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, string(rune('a'+i)), val)
	}
}

func TestResizingTreeGrowsOnOutOfBounds(t *testing.T) {
	t.Parallel()

	tree, err := NewResizingTree[int](Config{}, CenteredRegion{Region: Region{Level: 0}})
	require.NoError(t, err)

	require.NoError(t, tree.Insert(math32.Vec3(0, 0, 0), 1))
	require.Equal(t, int32(0), tree.Region().Region.Level)

	// far outside the unit region, forces several growth notches
	far := math32.Vec3(5, 0, 0)
	require.NoError(t, tree.Insert(far, 2))
	require.Greater(t, tree.Region().Region.Level, int32(0))
	require.True(t, tree.Region().Bounds().ContainsPoint(far))

	// both points survive the rebuild
	val, ok, err := tree.Get(math32.Vec3(0, 0, 0))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, val)

	val, ok, err = tree.Get(far)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2, val)
}

func TestResizingTreeGetOutsideRegion(t *testing.T) {
	t.Parallel()

	tree, err := NewResizingTree[int](Config{}, CenteredRegion{Region: Region{Level: 0}})
	require.NoError(t, err)
	require.NoError(t, tree.Insert(math32.Vec3(0, 0, 0), 1))

	// lookups never grow the region
	_, ok, err := tree.Get(math32.Vec3(100, 100, 100))
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, int32(0), tree.Region().Region.Level)
}

func TestResizingTreeSameCellReplaces(t *testing.T) {
	t.Parallel()

	tree, err := NewResizingTree[int](Config{}, CenteredRegion{Region: Region{Level: 10}})
	require.NoError(t, err)

	// two floats in the same grid cell, the second insert wins
	p := math32.Vec3(1, 2, 3)
	eps := math32.Vec3(1e-6, 0, 0)

	require.NoError(t, tree.Insert(p, 1))
	require.NoError(t, tree.Insert(p.Add(eps), 2))
	require.Equal(t, 1, tree.Len())

	val, ok, err := tree.Get(p)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2, val)
}

func TestResizingTreeRemove(t *testing.T) {
	t.Parallel()

	tree, err := NewResizingTree[int](Config{}, CenteredRegion{Region: Region{Level: 0}})
	require.NoError(t, err)

	p := math32.Vec3(0.25, 0.25, 0.25)
	require.NoError(t, tree.Insert(p, 7))

	val, ok, err := tree.Remove(p)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 7, val)
	require.Zero(t, tree.Len())

	_, ok, err = tree.Remove(p)
	require.NoError(t, err)
	require.False(t, ok)

	// a removed point does not reappear after a later growth rebuild
	require.NoError(t, tree.Insert(math32.Vec3(50, 0, 0), 8))
	_, ok, err = tree.Get(p)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestResizingTreeFoldAndIterate(t *testing.T) {
	t.Parallel()

	tree, err := NewResizingTree[int](Config{LeafCapacity: 2}, CenteredRegion{Region: Region{Level: 0}})
	require.NoError(t, err)

	prng := rand.New(rand.NewPCG(90, 91))
	want := 0
	for i := range 100 {
		p := math32.Vec3(
			prng.Float32()*20-10,
			prng.Float32()*20-10,
			prng.Float32()*20-10,
		)
		require.NoError(t, tree.Insert(p, i))
	}

	// duplicates within one grid cell replace, recompute the expectation
	// from the tree's own iteration
	count := 0
	for _, val := range tree.All() {
		want += val
		count++
	}
	require.Equal(t, tree.Len(), count)

	sum, err := Fold[int, int](tree, sumFolder)
	require.NoError(t, err)
	require.Equal(t, want, sum)

	got, err := Gather[int, int](tree, sumFolder, DescendAll, 0, nil)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestResizingTreeManyGrowths(t *testing.T) {
	t.Parallel()

	tree, err := NewResizingTree[int](Config{}, CenteredRegion{Region: Region{Level: 0}})
	require.NoError(t, err)

	// each insert doubles the needed bound, every point must survive
	// every subsequent rebuild
	points := []math32.Vector3{
		math32.Vec3(0.5, 0.5, 0.5),
		math32.Vec3(-3, 1, 0),
		math32.Vec3(10, -10, 5),
		math32.Vec3(-80, 40, -60),
		math32.Vec3(500, 500, 500),
	}
	for i, p := range points {
		require.NoError(t, tree.Insert(p, i))
	}

	require.Equal(t, len(points), tree.Len())
	for i, p := range points {
		val, ok, err := tree.Get(p)
		require.NoError(t, err)
		require.True(t, ok, "point %v lost in a rebuild", p)
		require.Equal(t, i, val)
	}
}
