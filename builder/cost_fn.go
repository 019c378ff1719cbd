// SPDX-License-Identifier: MIT

// cost_fn.go - link-cost distributions for graph constructors.
//
// Every CostFn must return values > 0 so that core.Graph.Link accepts them.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultLinkCost is the cost assigned to each link when no CostFn is provided.
const DefaultLinkCost int64 = 1

// CostFn produces a link cost given an optional *rand.Rand source.
// It must return a value > 0 and be deterministic for a given RNG state.
type CostFn func(rng *rand.Rand) int64

// DefaultCostFn always returns DefaultLinkCost.
func DefaultCostFn(_ *rand.Rand) int64 {
	return DefaultLinkCost
}

// ConstantCostFn returns a CostFn that always yields value. Panics if value <= 0.
func ConstantCostFn(value int64) CostFn {
	if value <= 0 {
		panic(fmt.Sprintf("ConstantCostFn: value must be > 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformCostFn returns a CostFn sampling uniformly in [min, max] inclusive.
// Panics unless 1 ≤ min ≤ max. With a nil rng it yields min.
func UniformCostFn(min, max int64) CostFn {
	if min < 1 || max < min {
		panic(fmt.Sprintf("UniformCostFn: require 1 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}
