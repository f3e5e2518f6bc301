// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package sparse implements a generic sparse array
// with popcount compression for the max. 8 octants of an octree node.
package sparse

import (
	"github.com/gaissmai/zoct/internal/bitset"
)

// Array8 is a generic implementation of a sparse array with popcount
// compression for max. 8 items with payload T.
//
// The bitset and the items slice are coupled: bit i set means octant i
// occupies the slot at Rank(i)-1 in Items. Never mutate the bitset
// directly, use InsertAt and DeleteAt.
type Array8[T any] struct {
	bitset.BitSet8
	Items []T
}

// Len returns the number of items in the sparse array.
func (a *Array8[T]) Len() int {
	return len(a.Items)
}

// rank maps between octant number and slice index.
func (a *Array8[T]) rank(oct uint8) int {
	// adjust offset by one to slice index
	return a.Rank(oct) - 1
}

// InsertAt inserts a value at octant oct into the sparse array.
// If a value already exists, overwrite it with val and return true.
func (a *Array8[T]) InsertAt(oct uint8, val T) (exists bool) {
	if a.Len() != 0 && a.Test(oct) {
		a.Items[a.rank(oct)] = val
		return true
	}

	// new, insert into bitset and slice
	a.MustSet(oct)
	a.insertItem(val, a.rank(oct))

	return false
}

// DeleteAt deletes the value at octant oct from the sparse array.
func (a *Array8[T]) DeleteAt(oct uint8) (val T, exists bool) {
	var zero T
	if a.Len() == 0 || !a.Test(oct) {
		return zero, false
	}

	rnk := a.rank(oct)
	val = a.Items[rnk]

	a.deleteItem(rnk)
	a.MustClear(oct)

	return val, true
}

// Get the value at octant oct from the sparse array.
func (a *Array8[T]) Get(oct uint8) (val T, ok bool) {
	var zero T
	if a.Len() != 0 && a.Test(oct) {
		return a.Items[a.rank(oct)], true
	}
	return zero, false
}

// MustGet, use it only after a successful Test
// or the behavior is undefined, maybe it panics.
func (a *Array8[T]) MustGet(oct uint8) T {
	return a.Items[a.rank(oct)]
}

// insertItem inserts the item at slice index i, shifting the rest.
func (a *Array8[T]) insertItem(val T, i int) {
	if len(a.Items) < cap(a.Items) {
		a.Items = a.Items[:len(a.Items)+1]
	} else {
		var zero T
		a.Items = append(a.Items, zero)
	}
	copy(a.Items[i+1:], a.Items[i:])
	a.Items[i] = val
}

// deleteItem deletes the item at slice index i, shifting the rest.
func (a *Array8[T]) deleteItem(i int) {
	var zero T

	l := len(a.Items) - 1
	copy(a.Items[i:], a.Items[i+1:])

	a.Items[l] = zero // avoid memory leak
	a.Items = a.Items[:l]
}
