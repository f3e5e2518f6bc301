// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package zoct

import (
	"iter"
)

// All returns an iterator over all stored points in depth-first Z-order,
// octants ascending, yielding the full-depth Morton code and the value.
//
// Every call returns an independent sequence with no shared cursor, the
// iteration is restartable and lazy. Multiple concurrent iterations are
// safe while no writer is active.
func (t *Tree[V]) All() iter.Seq2[Code, V] {
	return func(yield func(Code, V) bool) {
		if root, ok := t.rootCursor(); ok {
			allRec(root, yield)
		}
	}
}

// All returns an iterator over all stored points in depth-first Z-order,
// see [Tree.All].
func (t *LinearTree[V]) All() iter.Seq2[Code, V] {
	return func(yield func(Code, V) bool) {
		if root, ok := t.rootCursor(); ok {
			allRec(root, yield)
		}
	}
}

// allRec yields the subtree under c, the ok code propagates a premature
// exit upwards. A structurally broken tree terminates the sequence, an
// iterator has no error channel.
func allRec[V any](c cursor[V], yield func(Code, V) bool) bool {
	if c.isLeaf() {
		for _, it := range c.items() {
			if !yield(it.code, it.val) {
				return false
			}
		}
		return true
	}

	for _, oct := range c.childOctants() {
		child, err := c.child(oct)
		if err != nil {
			return false
		}
		if !allRec(child, yield) {
			return false
		}
	}
	return true
}
