// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package zoct

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// MarshalText implements the [encoding.TextMarshaler] interface,
// just a wrapper for [Tree.Fprint].
func (t *Tree[V]) MarshalText() ([]byte, error) {
	w := new(bytes.Buffer)
	if err := t.Fprint(w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// MarshalText implements the [encoding.TextMarshaler] interface,
// just a wrapper for [LinearTree.Fprint].
func (t *LinearTree[V]) MarshalText() ([]byte, error) {
	w := new(bytes.Buffer)
	if err := t.Fprint(w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// String returns a hierarchical tree diagram as string, just a wrapper
// for [Tree.Fprint]. If Fprint returns an error, String panics.
func (t *Tree[V]) String() string {
	w := new(strings.Builder)
	if err := t.Fprint(w); err != nil {
		panic(err)
	}
	return w.String()
}

// String returns a hierarchical tree diagram as string, just a wrapper
// for [LinearTree.Fprint]. If Fprint returns an error, String panics.
func (t *LinearTree[V]) String() string {
	w := new(strings.Builder)
	if err := t.Fprint(w); err != nil {
		panic(err)
	}
	return w.String()
}

// Fprint writes a hierarchical tree diagram of the octants and stored
// points to w, nodes labeled with their level and octal path, items with
// their grid coordinates and default formatted payload V.
//
//	▼
//	└─ 1/0
//	   ├─ (0,0,0): 1
//	   └─ (1,0,0): 2
func (t *Tree[V]) Fprint(w io.Writer) error {
	return fprint(w, t)
}

// Fprint writes a hierarchical tree diagram to w, see [Tree.Fprint].
func (t *LinearTree[V]) Fprint(w io.Writer) error {
	return fprint(w, t)
}

// fprint is the variant-independent printer, walking the shared
// traversal abstraction.
func fprint[V any](w io.Writer, t Octree[V]) error {
	if _, err := fmt.Fprintln(w, "▼"); err != nil {
		return err
	}

	root, ok := t.rootCursor()
	if !ok {
		return nil
	}
	return fprintRec(w, root, "")
}

func fprintRec[V any](w io.Writer, c cursor[V], pad string) error {
	if c.isLeaf() {
		items := c.items()
		for i, it := range items {
			glyph := "├─ "
			if i == len(items)-1 {
				glyph = "└─ "
			}
			x, y, z := it.code.Decode()
			if _, err := fmt.Fprintf(w, "%s%s(%d,%d,%d): %v\n", pad, glyph, x, y, z, it.val); err != nil {
				return err
			}
		}
		return nil
	}

	octs := c.childOctants()
	for i, oct := range octs {
		glyph, space := "├─ ", "│  "
		if i == len(octs)-1 {
			glyph, space = "└─ ", "   "
		}

		child, err := c.child(oct)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", pad, glyph, child.key()); err != nil {
			return err
		}
		if err := fprintRec(w, child, pad+space); err != nil {
			return err
		}
	}
	return nil
}
