// SPDX-License-Identifier: MIT
// Package: netpath/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn   = DefaultIDFn        ("0","1","2",...)
//   • rng    = nil                (pure/deterministic unless seeded)
//   • costFn = DefaultCostFn      (constant DefaultLinkCost)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Node label strategy: index -> label.
	idFn func(int) string
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Link cost generator; must return values > 0.
	costFn CostFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:   DefaultIDFn,
		rng:    nil,
		costFn: DefaultCostFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
