// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package zoct

import (
	"cogentcore.org/core/math32"
	"github.com/aukilabs/go-tooling/pkg/errors"
)

// Tree is an owned pointer octree with payload V over the integer grid
// [0, 2^21)^3, points addressed by their Morton code.
//
// Points whose codes share a common prefix deeper than MaxDepth end up in
// the same terminal bucket; such buckets grow without bound, insertion
// never fails with depth exhaustion. Distinct points stay individually
// addressable by their exact code even inside a shared bucket.
//
// Tree is not safe for concurrent mutation. Multiple concurrent readers
// are fine while no writer is active.
type Tree[V any] struct {
	cfg  Config
	root *node[V]
	size int
}

// NewTree returns a pointer octree configured by cfg.
func NewTree[V any](cfg Config) (*Tree[V], error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}
	return &Tree[V]{cfg: cfg, root: new(node[V])}, nil
}

// Len returns the number of stored points.
func (t *Tree[V]) Len() int {
	return t.size
}

// Insert adds the point p with value val to the tree.
// If p is already present its value is replaced.
func (t *Tree[V]) Insert(p math32.Vector3i, val V) error {
	code, err := codeOf(p)
	if err != nil {
		return err
	}

	// descend along the code's octant path to the responsible leaf
	n := t.root
	depth := 0
	for !n.isLeaf() {
		n = n.mustChild(code.octantAt(uint8(depth)))
		depth++
	}

	var exists bool
	if n.bucket, exists = insertItem(n.bucket, item[V]{code: code, val: val}); !exists {
		t.size++
	}

	t.split(n, depth)
	return nil
}

// split subdivides an overfull leaf, redistributing its bucket into
// octant children, recursively until every bucket respects the capacity
// or MaxDepth is reached.
func (t *Tree[V]) split(n *node[V], depth int) {
	if len(n.bucket) <= t.cfg.LeafCapacity || depth >= t.cfg.MaxDepth {
		return
	}

	bucket := n.bucket
	n.bucket = nil

	// buckets are sorted by code, redistribution preserves the order
	for _, it := range bucket {
		child := n.mustChild(it.code.octantAt(uint8(depth)))
		child.bucket = append(child.bucket, it)
	}

	for _, child := range n.children.Items {
		t.split(child, depth+1)
	}
}

// Get returns the value stored for point p along with an ok code.
func (t *Tree[V]) Get(p math32.Vector3i) (val V, ok bool, err error) {
	var zero V
	code, err := codeOf(p)
	if err != nil {
		return zero, false, err
	}

	n := t.root
	depth := 0
	for !n.isLeaf() {
		child, exists := n.children.Get(code.octantAt(uint8(depth)))
		if !exists {
			return zero, false, nil
		}
		n = child
		depth++
	}

	i, found := findItem(n.bucket, code)
	if !found {
		return zero, false, nil
	}
	return n.bucket[i].val, true, nil
}

// Remove deletes the point p from the tree and returns its value along
// with an ok code. Nodes left empty are collapsed bottom-up, interior
// nodes are never re-merged into buckets.
func (t *Tree[V]) Remove(p math32.Vector3i) (val V, ok bool, err error) {
	var zero V
	code, err := codeOf(p)
	if err != nil {
		return zero, false, err
	}

	// stack of the traversed child path in order to
	// purge dangling paths after deletion
	stack := [maxLevels + 1]*node[V]{}

	n := t.root
	depth := 0
	for !n.isLeaf() {
		stack[depth] = n
		child, exists := n.children.Get(code.octantAt(uint8(depth)))
		if !exists {
			return zero, false, nil
		}
		n = child
		depth++
	}

	i, found := findItem(n.bucket, code)
	if !found {
		return zero, false, nil
	}
	val = n.bucket[i].val
	n.bucket = deleteItem(n.bucket, i)
	t.size--

	// unwind the stack, delete empty nodes from their parents
	for ; depth > 0 && n.isEmpty(); depth-- {
		parent := stack[depth-1]
		parent.children.DeleteAt(code.octantAt(uint8(depth - 1)))
		n = parent
	}

	return val, true, nil
}

// codeOf validates the grid point and computes its full-depth code.
func codeOf(p math32.Vector3i) (Code, error) {
	if p.X < 0 || p.Y < 0 || p.Z < 0 {
		return 0, errors.New("coordinate out of range").
			WithType(ErrTypeCoordinateOutOfRange).
			WithTag("x", p.X).
			WithTag("y", p.Y).
			WithTag("z", p.Z).
			WithTag("bits", CoordBits)
	}
	return Encode(uint32(p.X), uint32(p.Y), uint32(p.Z))
}
