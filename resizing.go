// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package zoct

import (
	"iter"

	"cogentcore.org/core/math32"
	"github.com/aukilabs/go-tooling/pkg/errors"
)

// compile time check
var _ Octree[any] = (*ResizingTree[any])(nil)

// ResizingTree is a convenience wrapper around a pointer [Tree] that
// accepts raw float points over a growable [CenteredRegion]. Inserting a
// point outside the current bounds expands the region, notch by notch,
// until the point fits; the wrapped tree is then rebuilt by
// re-discretizing every stored point into the coarser grid.
//
// Growing halves the grid resolution per notch; distinct points may
// collapse into the same grid cell afterwards, the most recently
// inserted one wins. Folds, gathers and iteration work directly on a
// ResizingTree through the shared traversal abstraction.
type ResizingTree[V any] struct {
	cfg    Config
	region CenteredRegion
	tree   *Tree[V]
	items  []regionItem[V] // insertion order, the rebuild source
}

// regionItem keeps the raw float position for rebuilds.
type regionItem[V any] struct {
	pos  math32.Vector3
	code Code
	val  V
}

// NewResizingTree returns a resizing octree over the given start region.
func NewResizingTree[V any](cfg Config, region CenteredRegion) (*ResizingTree[V], error) {
	tree, err := NewTree[V](cfg)
	if err != nil {
		return nil, err
	}
	return &ResizingTree[V]{cfg: tree.cfg, region: region, tree: tree}, nil
}

// Region returns the current, possibly expanded region.
func (t *ResizingTree[V]) Region() CenteredRegion {
	return t.region
}

// Len returns the number of stored points.
func (t *ResizingTree[V]) Len() int {
	return t.tree.Len()
}

// Insert adds the float point p with value val, expanding the region
// first if p lies outside the current bounds.
func (t *ResizingTree[V]) Insert(p math32.Vector3, val V) error {
	grown := false
	for {
		oct, grow := t.region.ExpandOctant(p)
		if !grow {
			break
		}
		t.region.Expand(oct)
		grown = true
	}
	if grown {
		if err := t.rebuild(); err != nil {
			return err
		}
	}

	code, ok := t.region.DiscretizeCode(p)
	if !ok {
		return errors.New("point escapes the expanded region").
			WithType(ErrTypeInternal)
	}

	if i, found := t.findCell(code); found {
		t.items[i] = regionItem[V]{pos: p, code: code, val: val}
	} else {
		t.items = append(t.items, regionItem[V]{pos: p, code: code, val: val})
	}
	return t.tree.Insert(gridPoint(code), val)
}

// Get returns the value stored in the grid cell of p along with an ok
// code, false also if p lies outside the region.
func (t *ResizingTree[V]) Get(p math32.Vector3) (val V, ok bool, err error) {
	var zero V
	code, inside := t.region.DiscretizeCode(p)
	if !inside {
		return zero, false, nil
	}
	return t.tree.Get(gridPoint(code))
}

// Remove deletes the point in the grid cell of p and returns its value
// along with an ok code.
func (t *ResizingTree[V]) Remove(p math32.Vector3) (val V, ok bool, err error) {
	var zero V
	code, inside := t.region.DiscretizeCode(p)
	if !inside {
		return zero, false, nil
	}

	if i, found := t.findCell(code); found {
		t.items = append(t.items[:i], t.items[i+1:]...)
	}
	return t.tree.Remove(gridPoint(code))
}

// All returns an iterator over all stored points, see [Tree.All].
func (t *ResizingTree[V]) All() iter.Seq2[Code, V] {
	return t.tree.All()
}

// rebuild re-discretizes every stored point into the grown region and
// rebuilds the wrapped tree. Points collapsing into the same cell keep
// the most recently inserted value.
func (t *ResizingTree[V]) rebuild() error {
	tree, err := NewTree[V](t.cfg)
	if err != nil {
		return err
	}

	kept := t.items[:0]
	seen := make(map[Code]int, len(t.items))

	for _, it := range t.items {
		code, ok := t.region.DiscretizeCode(it.pos)
		if !ok {
			return errors.New("stored point escapes the expanded region").
				WithType(ErrTypeInternal)
		}
		it.code = code

		if i, dup := seen[code]; dup {
			kept[i] = it // later insert wins
			continue
		}
		seen[code] = len(kept)
		kept = append(kept, it)
	}

	t.items = kept
	for _, it := range t.items {
		if err := tree.Insert(gridPoint(it.code), it.val); err != nil {
			return err
		}
	}

	t.tree = tree
	return nil
}

// findCell returns the items index of the point stored in the cell of
// code along with an ok code.
func (t *ResizingTree[V]) findCell(code Code) (int, bool) {
	for i := range t.items {
		if t.items[i].code == code {
			return i, true
		}
	}
	return 0, false
}

// gridPoint converts a full-depth code back to its grid point.
func gridPoint(code Code) math32.Vector3i {
	x, y, z := code.Decode()
	return math32.Vec3i(int32(x), int32(y), int32(z))
}

func (t *ResizingTree[V]) rootCursor() (cursor[V], bool) { return t.tree.rootCursor() }
func (t *ResizingTree[V]) aggCache() *Cache              { return t.tree.aggCache() }
