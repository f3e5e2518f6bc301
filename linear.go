// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package zoct

import (
	"cogentcore.org/core/math32"
	"github.com/aukilabs/go-tooling/pkg/errors"

	"github.com/gaissmai/zoct/internal/bitset"
)

// LinearTree is a hash-addressed (linear hashed) octree with payload V.
// It has the same external surface and semantics as [Tree], but nodes are
// entries in a map keyed by [Key]; parent and child relationships are
// computed arithmetically from the key, never stored as links. Lookup of
// a child or parent is an expected O(1) map access instead of a pointer
// follow.
//
// Absence of a map entry is ambiguous between "empty subtree" and "never
// created", so every entry carries an explicit child presence bitmap. A
// bitmap disagreeing with map membership is a library defect and surfaces
// as an [ErrTypeInternal] error, never silently masked.
//
// With Config.CacheCapacity > 0 the tree attaches an LRU aggregate
// [Cache]; every mutation invalidates the cached aggregates along the
// full ancestor chain of the mutated leaf before returning.
//
// Removal eagerly prunes now-empty ancestor entries, the map never
// accumulates empty markers.
type LinearTree[V any] struct {
	cfg   Config
	nodes map[Key]*entry[V]
	cache *Cache
	size  int
}

// entry is one octree node in the hash-addressed tree.
type entry[V any] struct {
	// kids is the explicit child presence bitmap, one bit per octant.
	kids bitset.BitSet8

	// bucket holds the leaf items sorted ascending by code,
	// nil on interior entries.
	bucket []item[V]
}

// isLeaf returns true if the entry has no children.
func (e *entry[V]) isLeaf() bool {
	return e.kids.IsEmpty()
}

// isEmpty returns true if the entry holds neither children nor items.
func (e *entry[V]) isEmpty() bool {
	return e.kids.IsEmpty() && len(e.bucket) == 0
}

// NewLinearTree returns a hash-addressed octree configured by cfg.
func NewLinearTree[V any](cfg Config) (*LinearTree[V], error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}

	t := &LinearTree[V]{
		cfg:   cfg,
		nodes: map[Key]*entry[V]{RootKey(): {}},
	}

	if cfg.CacheCapacity > 0 {
		if t.cache, err = NewCache(cfg.CacheCapacity); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Len returns the number of stored points.
func (t *LinearTree[V]) Len() int {
	return t.size
}

// Cache returns the attached aggregate cache, nil if caching is disabled.
func (t *LinearTree[V]) Cache() *Cache {
	return t.cache
}

// child returns the entry for the child of k in octant oct. The caller
// must have tested the presence bit first, a missing map entry is then an
// invariant violation.
func (t *LinearTree[V]) child(k Key, oct uint8) (Key, *entry[V], error) {
	ck := k.Child(oct)
	ce, ok := t.nodes[ck]
	if !ok {
		return ck, nil, errors.New("presence bitmap disagrees with map membership").
			WithType(ErrTypeInternal).
			WithTag("key", ck.String())
	}
	return ck, ce, nil
}

// mustChild returns the child entry of k in octant oct, creating the map
// entry and setting the presence bit if absent.
func (t *LinearTree[V]) mustChild(k Key, e *entry[V], oct uint8) (Key, *entry[V], error) {
	if e.kids.Test(oct) {
		return t.child(k, oct)
	}

	ck := k.Child(oct)
	ce := new(entry[V])
	t.nodes[ck] = ce
	e.kids.MustSet(oct)
	return ck, ce, nil
}

// Insert adds the point p with value val to the tree.
// If p is already present its value is replaced.
func (t *LinearTree[V]) Insert(p math32.Vector3i, val V) error {
	code, err := codeOf(p)
	if err != nil {
		return err
	}

	k, e := RootKey(), t.nodes[RootKey()]
	for !e.isLeaf() {
		if k, e, err = t.mustChild(k, e, code.octantAt(k.Level)); err != nil {
			return err
		}
	}

	var exists bool
	if e.bucket, exists = insertItem(e.bucket, item[V]{code: code, val: val}); !exists {
		t.size++
	}

	if err := t.split(k, e); err != nil {
		return err
	}

	if t.cache != nil {
		t.cache.InvalidatePath(code.keyAt(uint8(t.cfg.MaxDepth)))
	}
	return nil
}

// split subdivides overfull leaves top-down, like Tree.split but over
// map entries.
func (t *LinearTree[V]) split(k Key, e *entry[V]) error {
	if len(e.bucket) <= t.cfg.LeafCapacity || int(k.Level) >= t.cfg.MaxDepth {
		return nil
	}

	bucket := e.bucket
	e.bucket = nil

	// buckets are sorted by code, redistribution preserves the order
	for _, it := range bucket {
		_, ce, err := t.mustChild(k, e, it.code.octantAt(k.Level))
		if err != nil {
			return err
		}
		ce.bucket = append(ce.bucket, it)
	}

	for _, oct := range e.kids.All() {
		ck, ce, err := t.child(k, oct)
		if err != nil {
			return err
		}
		if err := t.split(ck, ce); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the value stored for point p along with an ok code.
func (t *LinearTree[V]) Get(p math32.Vector3i) (val V, ok bool, err error) {
	var zero V
	code, err := codeOf(p)
	if err != nil {
		return zero, false, err
	}

	k, e := RootKey(), t.nodes[RootKey()]
	for !e.isLeaf() {
		oct := code.octantAt(k.Level)
		if !e.kids.Test(oct) {
			return zero, false, nil
		}
		if k, e, err = t.child(k, oct); err != nil {
			return zero, false, err
		}
	}

	i, found := findItem(e.bucket, code)
	if !found {
		return zero, false, nil
	}
	return e.bucket[i].val, true, nil
}

// Remove deletes the point p from the tree and returns its value along
// with an ok code. Now-empty entries are eagerly pruned from the map,
// bottom-up along the ancestor chain derived purely from the key.
func (t *LinearTree[V]) Remove(p math32.Vector3i) (val V, ok bool, err error) {
	var zero V
	code, err := codeOf(p)
	if err != nil {
		return zero, false, err
	}

	k, e := RootKey(), t.nodes[RootKey()]
	for !e.isLeaf() {
		oct := code.octantAt(k.Level)
		if !e.kids.Test(oct) {
			return zero, false, nil
		}
		if k, e, err = t.child(k, oct); err != nil {
			return zero, false, err
		}
	}

	i, found := findItem(e.bucket, code)
	if !found {
		return zero, false, nil
	}
	val = e.bucket[i].val
	e.bucket = deleteItem(e.bucket, i)
	t.size--

	// eager pruning
	for !k.IsRoot() && e.isEmpty() {
		delete(t.nodes, k)

		pk := k.Parent()
		pe, exists := t.nodes[pk]
		if !exists {
			return zero, false, errors.New("dangling child key, parent entry missing").
				WithType(ErrTypeInternal).
				WithTag("key", k.String())
		}
		pe.kids.MustClear(k.Octant())
		k, e = pk, pe
	}

	if t.cache != nil {
		t.cache.InvalidatePath(code.keyAt(uint8(t.cfg.MaxDepth)))
	}
	return val, true, nil
}
