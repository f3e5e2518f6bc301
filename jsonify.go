// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package zoct

import (
	"github.com/segmentio/encoding/json"
)

// DumpNode is the JSON representation of one octree node,
// an empty tree marshals as null.
type DumpNode[V any] struct {
	Key      string        `json:"key"`
	Items    []DumpItem[V] `json:"items,omitempty"`
	Children []DumpNode[V] `json:"children,omitempty"`
}

// DumpItem is the JSON representation of one stored point.
type DumpItem[V any] struct {
	X     uint32 `json:"x"`
	Y     uint32 `json:"y"`
	Z     uint32 `json:"z"`
	Value V      `json:"value"`
}

// DumpList returns the tree structure as a nested [DumpNode] hierarchy,
// ok is false on an empty tree.
func (t *Tree[V]) DumpList() (DumpNode[V], bool) {
	return dumpList[V](t)
}

// DumpList returns the tree structure as a nested [DumpNode] hierarchy,
// ok is false on an empty tree.
func (t *LinearTree[V]) DumpList() (DumpNode[V], bool) {
	return dumpList[V](t)
}

// MarshalJSON implements the [json.Marshaler] interface.
func (t *Tree[V]) MarshalJSON() ([]byte, error) {
	return marshalJSON[V](t)
}

// MarshalJSON implements the [json.Marshaler] interface.
func (t *LinearTree[V]) MarshalJSON() ([]byte, error) {
	return marshalJSON[V](t)
}

func marshalJSON[V any](t Octree[V]) ([]byte, error) {
	dump, ok := dumpList[V](t)
	if !ok {
		return []byte("null"), nil
	}
	return json.Marshal(dump)
}

func dumpList[V any](t Octree[V]) (DumpNode[V], bool) {
	root, ok := t.rootCursor()
	if !ok {
		return DumpNode[V]{}, false
	}
	return dumpRec(root), true
}

func dumpRec[V any](c cursor[V]) DumpNode[V] {
	dump := DumpNode[V]{Key: c.key().String()}

	if c.isLeaf() {
		for _, it := range c.items() {
			x, y, z := it.code.Decode()
			dump.Items = append(dump.Items, DumpItem[V]{X: x, Y: y, Z: z, Value: it.val})
		}
		return dump
	}

	for _, oct := range c.childOctants() {
		child, err := c.child(oct)
		if err != nil {
			// a broken tree dumps what it can
			continue
		}
		dump.Children = append(dump.Children, dumpRec(child))
	}
	return dump
}
