// SPDX-License-Identifier: MIT
// Package: netpath/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewNodes).
//   - Registers nodes via cfg.idFn in ascending index order (0..n-1).
//   - Emits links (i-1) — i for i=1..n-1 in increasing order.
//   - Cost policy: cfg.costFn(cfg.rng) per link.
//
// Complexity: O(n) nodes + O(n-1) links.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netpath/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// Validate parameter domain early.
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewNodes)
		}

		ids := registerNodes(g, cfg, n)

		// Emit path links 0—1—2—...—(n-1) in stable order.
		for i := 1; i < n; i++ {
			if err := link(g, cfg, methodPath, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
