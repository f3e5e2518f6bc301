// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package zoct

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
)

// Folder turns stored items into aggregates of type A and combines them
// bottom-up, the accumulator of [Fold] and [Gather].
//
// Typical aggregates are centers of mass for N-body approximation or
// bounding summaries for a collision broad-phase.
type Folder[V, A any] interface {
	// Leaf converts one stored item into an aggregate.
	Leaf(code Code, val V) (A, error)

	// Combine folds the aggregates of the present children of a node,
	// octants ascending, into one aggregate. It is also applied to the
	// item aggregates of a multi-item bucket. Combine is never called
	// with an empty parts slice and should be associative in intent:
	// an interior node's aggregate always equals Combine over its
	// children's aggregates.
	Combine(parts []A) (A, error)
}

// FolderFuncs adapts two plain functions to the [Folder] interface.
type FolderFuncs[V, A any] struct {
	LeafFn    func(code Code, val V) (A, error)
	CombineFn func(parts []A) (A, error)
}

func (f FolderFuncs[V, A]) Leaf(code Code, val V) (A, error) { return f.LeafFn(code, val) }
func (f FolderFuncs[V, A]) Combine(parts []A) (A, error)     { return f.CombineFn(parts) }

// Fold computes the exact aggregate of the whole tree, a post-order
// traversal visiting every node, children ascending by octant for
// determinism.
//
// Over a [LinearTree] with an attached cache, clean subtree aggregates
// are reused and missing ones are stored for subsequent calls.
//
// Failures of the caller-supplied Leaf and Combine functions surface
// wrapped as [ErrTypeAggregateFailed]; on a structurally valid tree Fold
// itself cannot fail. An empty tree folds to the zero aggregate.
func Fold[V, A any](t Octree[V], f Folder[V, A]) (A, error) {
	var zero A
	root, ok := t.rootCursor()
	if !ok {
		return zero, nil
	}
	return foldNode(t.aggCache(), root, f)
}

// foldNode computes the exact aggregate of the subtree under c,
// consulting and populating the cache if one is attached.
func foldNode[V, A any](cache *Cache, c cursor[V], f Folder[V, A]) (A, error) {
	var zero A

	if cache != nil {
		if agg, ok := cache.get(c.key()); ok {
			if a, ok := agg.(A); ok {
				return a, nil
			}
			// the aggregate type changed between folds, recompute
		}
	}

	a, err := foldSubtree(cache, c, f)
	if err != nil {
		return zero, err
	}

	if cache != nil {
		cache.add(c.key(), a)
	}
	return a, nil
}

// foldSubtree is foldNode without the cache lookup for c itself.
func foldSubtree[V, A any](cache *Cache, c cursor[V], f Folder[V, A]) (A, error) {
	var zero A

	if c.isLeaf() {
		return foldBucket(c, f)
	}

	parts := make([]A, 0, 8)
	for _, oct := range c.childOctants() {
		child, err := c.child(oct)
		if err != nil {
			return zero, err
		}
		a, err := foldNode(cache, child, f)
		if err != nil {
			return zero, err
		}
		parts = append(parts, a)
	}

	a, err := f.Combine(parts)
	if err != nil {
		return zero, wrapCombineErr(c.key(), err)
	}
	return a, nil
}

// foldBucket aggregates the items of a leaf bucket: a single item maps
// through Leaf directly, a multi-item bucket additionally combines the
// item aggregates.
func foldBucket[V, A any](c cursor[V], f Folder[V, A]) (A, error) {
	var zero A

	items := c.items()
	if len(items) == 0 {
		// only the empty root, callers cut this off early
		return zero, nil
	}

	parts := make([]A, 0, len(items))
	for _, it := range items {
		a, err := f.Leaf(it.code, it.val)
		if err != nil {
			return zero, wrapLeafErr(c.key(), err)
		}
		parts = append(parts, a)
	}

	if len(parts) == 1 {
		return parts[0], nil
	}

	a, err := f.Combine(parts)
	if err != nil {
		return zero, wrapCombineErr(c.key(), err)
	}
	return a, nil
}

// wrapLeafErr wraps a Leaf failure, the cause stays unwrappable.
func wrapLeafErr(k Key, err error) error {
	return errors.New("leaf aggregation failed").
		WithType(ErrTypeAggregateFailed).
		WithTag("key", k.String()).
		Wrap(err)
}

// wrapCombineErr wraps a Combine failure, the cause stays unwrappable.
func wrapCombineErr(k Key, err error) error {
	return errors.New("combine failed").
		WithType(ErrTypeAggregateFailed).
		WithTag("key", k.String()).
		Wrap(err)
}
