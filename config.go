// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package zoct

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
)

// defaultLeafCapacity is the bucket size before a leaf splits
// if none is configured.
const defaultLeafCapacity = 8

// Config carries the recognized tree options.
// The zero value selects usable defaults.
type Config struct {
	// MaxDepth limits the subdivision depth, 1..21.
	// Zero selects the full codec depth of 21 levels.
	//
	// Leaf buckets at MaxDepth hold unboundedly many items, insertion
	// never fails with depth exhaustion. See the Tree documentation
	// for the collision policy.
	MaxDepth int

	// LeafCapacity is the max number of items in a leaf bucket before
	// it splits into octant children. Zero selects 8.
	LeafCapacity int

	// CacheCapacity > 0 attaches an aggregate LRU cache of that many
	// entries, LinearTree only. Zero disables caching, negative values
	// are invalid.
	CacheCapacity int
}

// withDefaults validates cfg and fills in the defaults.
func (c Config) withDefaults() (Config, error) {
	if c.MaxDepth == 0 {
		c.MaxDepth = maxLevels
	}
	if c.MaxDepth < 0 || c.MaxDepth > maxLevels {
		return c, errors.New("tree depth exceeds codec addressing").
			WithType(ErrTypeDepthExceeded).
			WithTag("max_depth", c.MaxDepth).
			WithTag("limit", maxLevels)
	}

	if c.LeafCapacity == 0 {
		c.LeafCapacity = defaultLeafCapacity
	}
	if c.LeafCapacity < 0 {
		return c, errors.New("leaf capacity must be positive").
			WithTag("leaf_capacity", c.LeafCapacity)
	}

	if c.CacheCapacity < 0 {
		return c, errors.New("cache capacity must be positive").
			WithType(ErrTypeCacheCapacityInvalid).
			WithTag("cache_capacity", c.CacheCapacity)
	}

	return c, nil
}
