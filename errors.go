// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package zoct

// Error types, check with [errors.IsType] from
// github.com/aukilabs/go-tooling/pkg/errors.
const (
	// ErrTypeCoordinateOutOfRange reports a coordinate component that
	// exceeds the codec's bit budget.
	ErrTypeCoordinateOutOfRange = "coordinate_out_of_range"

	// ErrTypeDepthExceeded reports a configured MaxDepth deeper than the
	// codec can address.
	ErrTypeDepthExceeded = "depth_exceeded"

	// ErrTypeAggregateFailed wraps a failure of a caller-supplied
	// Leaf or Combine function, propagated verbatim.
	ErrTypeAggregateFailed = "aggregate_computation_failed"

	// ErrTypeCacheCapacityInvalid reports a zero or negative cache
	// capacity while caching is requested.
	ErrTypeCacheCapacityInvalid = "cache_capacity_invalid"

	// ErrTypeInternal reports a library defect, e.g. a presence bitmap
	// disagreeing with map membership. Never raised for malformed input.
	ErrTypeInternal = "internal_invariant_violation"
)
