// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package zoct

import (
	"cogentcore.org/core/math32"
)

// Region is the cube [-2^Level, 2^Level)^3 around the origin. It maps
// raw float points onto the integer grid the trees index, one grid cell
// per full-depth Morton code.
type Region struct {
	Level int32
}

// Bound returns the half edge length 2^Level.
func (r Region) Bound() float32 {
	return math32.Pow(2, float32(r.Level))
}

// Discretize maps the float point p onto the [0, 2^21)^3 grid,
// ok is false if p lies outside the region.
func (r Region) Discretize(p math32.Vector3) (x, y, z uint32, ok bool) {
	bound := r.Bound()
	if math32.Abs(p.X) > bound || math32.Abs(p.Y) > bound || math32.Abs(p.Z) > bound {
		return 0, 0, 0, false
	}

	return cellOf(p.X, bound), cellOf(p.Y, bound), cellOf(p.Z, bound), true
}

// DiscretizeCode is [Region.Discretize] straight to the Morton code.
func (r Region) DiscretizeCode(p math32.Vector3) (Code, bool) {
	x, y, z, ok := r.Discretize(p)
	if !ok {
		return 0, false
	}
	return MustEncode(x, y, z), true
}

// cellOf maps v from [-bound, bound] to a grid cell, the upper border
// clamps into the last cell.
func cellOf(v, bound float32) uint32 {
	const cells = 1 << CoordBits

	cell := uint32((v + bound) / (2 * bound) * cells)
	if cell > coordMask {
		cell = coordMask
	}
	return cell
}

// CenteredRegion is a [Region] shifted so that it is centered at Center.
type CenteredRegion struct {
	Region Region
	Center math32.Vector3
}

// Bounds returns the region as a bounding box.
func (c CenteredRegion) Bounds() math32.Box3 {
	bound := c.Region.Bound()
	return math32.Box3{
		Min: c.Center.SubScalar(bound),
		Max: c.Center.AddScalar(bound),
	}
}

// Discretize maps the float point p onto the grid, taking the shifted
// center into account, ok is false if p lies outside the region.
func (c CenteredRegion) Discretize(p math32.Vector3) (x, y, z uint32, ok bool) {
	return c.Region.Discretize(p.Sub(c.Center))
}

// DiscretizeCode is [CenteredRegion.Discretize] straight to the code.
func (c CenteredRegion) DiscretizeCode(p math32.Vector3) (Code, bool) {
	x, y, z, ok := c.Discretize(p)
	if !ok {
		return 0, false
	}
	return MustEncode(x, y, z), true
}

// ExpandOctant returns the octant where the old region content lands
// when the region grows one notch towards p. grow is false if p is
// already inside the region.
//
// Per axis: a point below the region pushes the old content to the high
// half (bit set), a point above to the low half; on axes where p is
// within bounds the half closer to the old content is preferred.
func (c CenteredRegion) ExpandOctant(p math32.Vector3) (oct uint8, grow bool) {
	radius := c.Region.Bound()

	pnt := [3]float32{p.X, p.Y, p.Z}
	ctr := [3]float32{c.Center.X, c.Center.Y, c.Center.Z}

	for i := range 3 {
		switch {
		case pnt[i] < ctr[i]-radius:
			oct |= 1 << i
			grow = true
		case pnt[i] >= ctr[i]+radius:
			grow = true
		case pnt[i] < ctr[i]:
			oct |= 1 << i
		}
	}

	if !grow {
		return 0, false
	}
	return oct, true
}

// Expand grows the region by one notch, one level up. The octant from
// [CenteredRegion.ExpandOctant] names where the old content lands, the
// center shifts to the opposite side.
func (c *CenteredRegion) Expand(oct uint8) {
	shift := c.Region.Bound()

	adj := [3]float32{shift, shift, shift}
	for i := range 3 {
		// old content in the high half, center moves down
		if oct&(1<<i) != 0 {
			adj[i] = -shift
		}
	}

	c.Center = c.Center.Add(math32.Vec3(adj[0], adj[1], adj[2]))
	c.Region.Level++
}
