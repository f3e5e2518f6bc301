// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package zoct

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
)

// compile time check
var (
	_ Octree[any] = (*Tree[any])(nil)
	_ Octree[any] = (*LinearTree[any])(nil)
)

// Octree is the shared capability set of both tree variants: enumerate
// present children, fetch payload, derive the node key. The gather/fold
// engine and the iterators are implemented once against this abstraction
// instead of per variant.
//
// The interface is sealed, only the tree types of this package
// implement it.
type Octree[V any] interface {
	// rootCursor positions a cursor at the root,
	// ok is false on an empty tree.
	rootCursor() (cursor[V], bool)

	// aggCache returns the attached aggregate cache, nil if none.
	aggCache() *Cache
}

// cursor is a read position at one node during traversal. Ancestor
// context (the key) travels with the cursor, nodes store no
// back-references.
type cursor[V any] interface {
	key() Key
	isLeaf() bool

	// items returns the leaf bucket, ascending by code.
	items() []item[V]

	// childOctants returns the present octants, ascending.
	childOctants() []uint8

	// child positions a cursor at the child in octant oct, which must
	// be present; in the hash-addressed tree a missing map entry for a
	// set presence bit surfaces here as an internal error.
	child(oct uint8) (cursor[V], error)
}

// nodeCursor implements cursor over the pointer tree.
type nodeCursor[V any] struct {
	n *node[V]
	k Key
}

func (c nodeCursor[V]) key() Key              { return c.k }
func (c nodeCursor[V]) isLeaf() bool          { return c.n.isLeaf() }
func (c nodeCursor[V]) items() []item[V]      { return c.n.bucket }
func (c nodeCursor[V]) childOctants() []uint8 { return c.n.children.All() }

func (c nodeCursor[V]) child(oct uint8) (cursor[V], error) {
	child, ok := c.n.children.Get(oct)
	if !ok {
		return nil, errors.New("child slot unexpectedly empty").
			WithType(ErrTypeInternal).
			WithTag("key", c.k.Child(oct).String())
	}
	return nodeCursor[V]{n: child, k: c.k.Child(oct)}, nil
}

func (t *Tree[V]) rootCursor() (cursor[V], bool) {
	if t.root.isEmpty() {
		return nil, false
	}
	return nodeCursor[V]{n: t.root, k: RootKey()}, true
}

// aggCache returns nil, folds over the pointer tree are always computed.
func (t *Tree[V]) aggCache() *Cache { return nil }

// entryCursor implements cursor over the hash-addressed tree.
type entryCursor[V any] struct {
	t *LinearTree[V]
	e *entry[V]
	k Key
}

func (c entryCursor[V]) key() Key              { return c.k }
func (c entryCursor[V]) isLeaf() bool          { return c.e.isLeaf() }
func (c entryCursor[V]) items() []item[V]      { return c.e.bucket }
func (c entryCursor[V]) childOctants() []uint8 { return c.e.kids.All() }

func (c entryCursor[V]) child(oct uint8) (cursor[V], error) {
	ck, ce, err := c.t.child(c.k, oct)
	if err != nil {
		return nil, err
	}
	return entryCursor[V]{t: c.t, e: ce, k: ck}, nil
}

func (t *LinearTree[V]) rootCursor() (cursor[V], bool) {
	root := t.nodes[RootKey()]
	if root.isEmpty() {
		return nil, false
	}
	return entryCursor[V]{t: t, e: root, k: RootKey()}, true
}

func (t *LinearTree[V]) aggCache() *Cache { return t.cache }
