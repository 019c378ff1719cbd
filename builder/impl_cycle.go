// SPDX-License-Identifier: MIT
// Package: netpath/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewNodes).
//   - Registers nodes via cfg.idFn in ascending index order (0..n-1).
//   - Emits links i — (i+1)%n for i=0..n-1.
//
// Complexity: O(n) nodes + O(n) links.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netpath/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-node simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewNodes)
		}

		ids := registerNodes(g, cfg, n)
		for i := 0; i < n; i++ {
			if err := link(g, cfg, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
