// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package zoct provides Z-order (Morton) indexed octrees with bottom-up
// aggregation for 3-D point and volume data.
//
// zoct offers two tree variants optimized for different use cases:
//
//   - Tree:       owned pointer octree with popcount-compressed octant arrays
//   - LinearTree: hash-addressed (linear hashed) octree, nodes are map
//     entries keyed by (code, level), parent/child derived arithmetically
//
// Both variants share one traversal abstraction, so the gather/fold engine
// ([Fold], [Gather]) behaves identically over either shape. LinearTree can
// attach an LRU [Cache] that memoizes per-node aggregates across repeated
// gathers and is invalidated along the ancestor chain on every mutation.
//
// [Gather] supports Barnes-Hut-style approximation: an [Explorer] decides
// per node whether to descend fully, sample a bounded, seed-reproducible
// subset of children, or stop and use the node's own aggregate.
//
// The Morton codec preserves spatial locality within octants but not across
// all Z-curve boundaries; this is a known characteristic of Z-order curves,
// not a defect.
//
// All operations are single-threaded and CPU-bound. Concurrent readers are
// safe while no writer is active; writers require external synchronization.
package zoct
