// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package zoct

import (
	"math/rand/v2"
	"slices"

	"cogentcore.org/core/math32"
)

// Decision is the tri-state outcome of [Explorer.Explore] for one
// visited interior node during an approximate gather.
type Decision uint8

const (
	// Descend recurses into all present children.
	Descend Decision = iota

	// Sample recurses into a bounded, seed-reproducible subset of the
	// present children, up to the gather's sample limit.
	Sample

	// Stop substitutes the node's own aggregate, exact and possibly
	// cached, as an approximation of the whole subtree.
	Stop
)

// Explorer steers [Gather]. At every interior node Explore inspects the
// node's key, its cell bounds in grid units and the number of children
// sampled so far, and decides how to proceed.
type Explorer interface {
	Explore(k Key, cell math32.Box3, sampled int) Decision
}

// DescendAll is the Explorer that always descends fully. Gather with
// DescendAll is observably equal to [Fold].
var DescendAll Explorer = descendAll{}

type descendAll struct{}

func (descendAll) Explore(Key, math32.Box3, int) Decision { return Descend }

// BarnesHut returns an [Explorer] implementing the classic theta
// criterion: a cell whose edge length over distance to target falls
// below theta is approximated by its aggregate instead of being
// expanded. Distant or small subtrees are never walked, which bounds
// the interaction cost of N-body style queries.
//
// The target is in grid units, see [Region.Discretize].
// Typical theta values are 0.3 .. 1.0, zero never stops.
func BarnesHut(target math32.Vector3, theta float32) Explorer {
	return &barnesHut{target: target, theta: theta}
}

type barnesHut struct {
	target math32.Vector3
	theta  float32
}

func (b *barnesHut) Explore(_ Key, cell math32.Box3, _ int) Decision {
	if cell.ContainsPoint(b.target) {
		return Descend
	}

	size := cell.Size().X // cells are cubes
	dist := cell.Center().Sub(b.target).Length()

	if dist > 0 && size/dist < b.theta {
		return Stop
	}
	return Descend
}

// Gather computes an approximate (or exact, depending on the explorer)
// aggregate of the tree. At every interior node the explorer decides to
// descend fully, to sample at most sampleLimit children, or to stop and
// use the node's own aggregate.
//
// Sampling draws from rng, so gathers are reproducible with a seeded
// generator; a nil rng degrades to the ascending-octant prefix, which is
// deterministic but biased towards low octants. The node aggregates
// substituted on Stop are exact sub-folds, cached when the tree carries
// a cache.
//
// Gather with [DescendAll] equals [Fold] for the same tree and folder.
func Gather[V, A any](t Octree[V], f Folder[V, A], ex Explorer, sampleLimit int, rng *rand.Rand) (A, error) {
	var zero A
	root, ok := t.rootCursor()
	if !ok {
		return zero, nil
	}

	g := &gatherer[V, A]{
		cache: t.aggCache(),
		f:     f,
		ex:    ex,
		limit: sampleLimit,
		rng:   rng,
	}
	return g.gather(root)
}

// gatherer carries the per-call gather state, most notably the
// accumulated sample budget.
type gatherer[V, A any] struct {
	cache   *Cache
	f       Folder[V, A]
	ex      Explorer
	limit   int
	rng     *rand.Rand
	sampled int
}

func (g *gatherer[V, A]) gather(c cursor[V]) (A, error) {
	if c.isLeaf() {
		return foldBucket(c, g.f)
	}

	switch g.ex.Explore(c.key(), c.key().CellBox(), g.sampled) {
	case Stop:
		// exact aggregate of the subtree, from the cache if possible
		return foldNode(g.cache, c, g.f)

	case Sample:
		octs := c.childOctants()
		if g.limit > 0 && len(octs) > g.limit {
			octs = g.pick(octs)
		}
		g.sampled += len(octs)
		return g.combine(c, octs)

	default: // Descend
		return g.combine(c, c.childOctants())
	}
}

// combine recurses into the given octants and combines their aggregates,
// ascending octant order.
func (g *gatherer[V, A]) combine(c cursor[V], octs []uint8) (A, error) {
	var zero A

	parts := make([]A, 0, len(octs))
	for _, oct := range octs {
		child, err := c.child(oct)
		if err != nil {
			return zero, err
		}
		a, err := g.gather(child)
		if err != nil {
			return zero, err
		}
		parts = append(parts, a)
	}

	a, err := g.f.Combine(parts)
	if err != nil {
		return zero, wrapCombineErr(c.key(), err)
	}
	return a, nil
}

// pick selects limit octants from octs, reproducible for a seeded rng.
// The picked subset is re-sorted ascending so the combine order stays
// deterministic regardless of the draw order.
func (g *gatherer[V, A]) pick(octs []uint8) []uint8 {
	if g.rng == nil {
		return octs[:g.limit]
	}

	perm := g.rng.Perm(len(octs))[:g.limit]
	slices.Sort(perm)

	picked := make([]uint8, 0, g.limit)
	for _, i := range perm {
		picked = append(picked, octs[i])
	}
	return picked
}
