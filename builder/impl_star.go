// SPDX-License-Identifier: MIT
// Package: netpath/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewNodes).
//   - Node 0 (label cfg.idFn(0)) is the hub; nodes 1..n-1 are leaves.
//   - Emits links hub — i for i=1..n-1.
//
// Complexity: O(n) nodes + O(n-1) links.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netpath/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewNodes)
		}

		ids := registerNodes(g, cfg, n)
		hub := ids[0]
		for _, leaf := range ids[1:] {
			if err := link(g, cfg, methodStar, hub, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
