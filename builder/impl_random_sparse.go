// SPDX-License-Identifier: MIT
// Package: netpath/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng is required when 0 < p < 1 (else ErrNeedRandSource).
//   - Considers pairs (i,j), i<j, i ascending then j ascending; one Bernoulli
//     draw per pair, then one cost draw per accepted pair.
//
// Determinism: identical seed and options ⇒ identical graph.
// Complexity: O(n²) pair checks.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netpath/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over n nodes with independent link probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (no side effects on invalid input).
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewNodes)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Register nodes.
		ids := registerNodes(g, cfg, n)

		// 3) Sample pairs in stable order.
		var accept bool
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == probMax:
					accept = true
				case p == probMin:
					accept = false
				default:
					accept = cfg.rng.Float64() < p
				}
				if !accept {
					continue
				}
				if err := link(g, cfg, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
