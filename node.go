// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package zoct

import (
	"cmp"
	"slices"

	"github.com/gaissmai/zoct/internal/sparse"
)

// item is a stored point, the full-depth Morton code and its payload.
type item[V any] struct {
	code Code
	val  V
}

// findItem returns the index of code in the sorted bucket along with an
// ok code.
func findItem[V any](bucket []item[V], code Code) (int, bool) {
	return slices.BinarySearchFunc(bucket, code, func(it item[V], c Code) int {
		return cmp.Compare(it.code, c)
	})
}

// insertItem inserts it into the sorted bucket,
// an item with equal code is replaced.
func insertItem[V any](bucket []item[V], it item[V]) (_ []item[V], exists bool) {
	i, found := findItem(bucket, it.code)
	if found {
		bucket[i] = it
		return bucket, true
	}
	return slices.Insert(bucket, i, it), false
}

// deleteItem removes the bucket item at index i.
func deleteItem[V any](bucket []item[V], i int) []item[V] {
	return slices.Delete(bucket, i, i+1)
}

// node is one octree level node in the pointer tree.
//
// A node is a leaf iff it has no children. Leaves hold their items in a
// bucket sorted ascending by code, interior nodes never hold a bucket.
//
// Each node exclusively owns its children through a popcount-compressed
// sparse array, there are no parent pointers anywhere. Ancestor context
// during traversal is carried on an explicit stack.
type node[V any] struct {
	// children holds the subnodes for the 8 octants.
	children sparse.Array8[*node[V]]

	// bucket holds the leaf items, nil on interior nodes.
	bucket []item[V]
}

// isLeaf returns true if the node has no children.
func (n *node[V]) isLeaf() bool {
	return n.children.Len() == 0
}

// isEmpty returns true if the node holds neither children nor items.
func (n *node[V]) isEmpty() bool {
	return n.children.Len() == 0 && len(n.bucket) == 0
}

// mustChild returns the child in octant oct, creating it if missing.
func (n *node[V]) mustChild(oct uint8) *node[V] {
	if child, ok := n.children.Get(oct); ok {
		return child
	}
	child := new(node[V])
	n.children.InsertAt(oct, child)
	return child
}
