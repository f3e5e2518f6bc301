// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package zoct

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/require"
)

func TestMarshalJSONEmptyTree(t *testing.T) {
	t.Parallel()

	tree, err := NewTree[int](Config{})
	require.NoError(t, err)

	data, err := json.Marshal(tree)
	require.NoError(t, err)
	require.JSONEq(t, "null", string(data))
}

func TestMarshalJSONFlatBucket(t *testing.T) {
	t.Parallel()

	tree, err := NewTree[int](Config{})
	require.NoError(t, err)
	require.NoError(t, tree.Insert(math32.Vec3i(0, 0, 0), 1))
	require.NoError(t, tree.Insert(math32.Vec3i(1, 0, 0), 2))

	data, err := json.Marshal(tree)
	require.NoError(t, err)

	want := `{
	  "key": "0/0",
	  "items": [
	    {"x": 0, "y": 0, "z": 0, "value": 1},
	    {"x": 1, "y": 0, "z": 0, "value": 2}
	  ]
	}`
	require.JSONEq(t, want, string(data))
}

func TestMarshalJSONSplitTree(t *testing.T) {
	t.Parallel()

	tree, err := NewLinearTree[int](Config{LeafCapacity: 1})
	require.NoError(t, err)
	require.NoError(t, tree.Insert(math32.Vec3i(0, 0, 0), 1))
	require.NoError(t, tree.Insert(math32.Vec3i(1<<20, 0, 0), 2))

	data, err := json.Marshal(tree)
	require.NoError(t, err)

	var dump DumpNode[int]
	require.NoError(t, json.Unmarshal(data, &dump))

	require.Equal(t, "0/0", dump.Key)
	require.Empty(t, dump.Items)
	require.Len(t, dump.Children, 2)

	require.Equal(t, "1/0", dump.Children[0].Key)
	require.Len(t, dump.Children[0].Items, 1)
	require.Equal(t, uint32(0), dump.Children[0].Items[0].X)
	require.Equal(t, 1, dump.Children[0].Items[0].Value)

	require.Equal(t, "1/1", dump.Children[1].Key)
	require.Equal(t, uint32(1<<20), dump.Children[1].Items[0].X)
	require.Equal(t, 2, dump.Children[1].Items[0].Value)
}

func TestDumpList(t *testing.T) {
	t.Parallel()

	tree, err := NewTree[string](Config{})
	require.NoError(t, err)

	_, ok := tree.DumpList()
	require.False(t, ok, "empty tree has no dump")

	require.NoError(t, tree.Insert(math32.Vec3i(7, 8, 9), "x"))

	dump, ok := tree.DumpList()
	require.True(t, ok)
	require.Equal(t, "0/0", dump.Key)
	require.Len(t, dump.Items, 1)
	require.Equal(t, DumpItem[string]{X: 7, Y: 8, Z: 9, Value: "x"}, dump.Items[0])
}
