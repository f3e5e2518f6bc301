// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package zoct

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/golang/groupcache/lru"
)

// Cache is a bounded LRU cache mapping a hash-addressed tree's node [Key]
// to its most recently computed aggregate. It avoids recomputation of
// clean subtrees across repeated [Fold] and [Gather] calls.
//
// The entry count never exceeds the configured capacity; when an insert
// overflows it, the least-recently-used entry is evicted.
//
// Cache assumes single-writer use and is not internally synchronized.
// Multi-threaded gathers require external synchronization, a cache per
// goroutine, or no cache at all.
type Cache struct {
	lru *lru.Cache
}

// NewCache returns a cache bounded to capacity entries.
// A capacity <= 0 is invalid.
func NewCache(capacity int) (*Cache, error) {
	if capacity <= 0 {
		return nil, errors.New("cache capacity must be positive").
			WithType(ErrTypeCacheCapacityInvalid).
			WithTag("capacity", capacity)
	}
	return &Cache{lru: lru.New(capacity)}, nil
}

// Len returns the current number of cached aggregates.
func (c *Cache) Len() int {
	return c.lru.Len()
}

// GetOrCompute returns the cached aggregate for k, marking it most
// recently used. On a miss it invokes compute, stores the result and
// evicts the least-recently-used entry if the capacity is now exceeded.
//
// A compute error is returned verbatim and nothing is stored.
func (c *Cache) GetOrCompute(k Key, compute func() (any, error)) (any, error) {
	if agg, ok := c.lru.Get(k); ok {
		return agg, nil
	}

	agg, err := compute()
	if err != nil {
		return nil, err
	}
	c.lru.Add(k, agg)
	return agg, nil
}

// InvalidatePath removes the cached aggregates of k and of every ancestor
// up to the root. The chain is derived purely from the key, no tree
// access is needed.
//
// Every mutation beneath k must invalidate before any subsequent fold or
// gather is trusted; the trees do this on their own when the cache is
// attached via Config.CacheCapacity.
func (c *Cache) InvalidatePath(k Key) {
	for {
		c.lru.Remove(k)
		if k.IsRoot() {
			return
		}
		k = k.Parent()
	}
}

// get returns the cached aggregate for k, marking it most recently used.
func (c *Cache) get(k Key) (any, bool) {
	return c.lru.Get(k)
}

// add stores the aggregate for k, evicting the LRU entry on overflow.
func (c *Cache) add(k Key, agg any) {
	c.lru.Add(k, agg)
}
