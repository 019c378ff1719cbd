// SPDX-License-Identifier: MIT
// Package: netpath/builder
//
// api.go - public entry-point and factory index for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(opts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Factories live in impl_*.go; each returns a Constructor closure.
//   - Determinism: same options/seed and constructor order ⇒ identical graphs
//     (same labels, same NodeIDs, same link costs).
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netpath/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST validate parameters before touching g,
// register nodes through cfg.idFn, and emit links in a documented order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration from
// opts, and applies all constructors in order. The first constructor error is
// wrapped as "BuildGraph: %w" and returned; no partial cleanup is attempted.
//
// Composition: each constructor registers its own fresh nodes, so composing
// Path(3) and Cycle(3) yields 6 nodes (ids 0..2 and 3..5). Labels restart per
// constructor; pick distinct WithIDScheme values if labels must be unique.
//
// Complexity: O(len(opts)) + Σ cost of each constructor.
func BuildGraph(opts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// Path(n)              P_n, n ≥ 2: links i-1 — i.
// Cycle(n)             C_n, n ≥ 3: links i — (i+1)%n.
// Star(n)              hub 0 plus n-1 leaves, n ≥ 2.
// Complete(n)          K_n, n ≥ 1: every pair i<j.
// Grid(rows, cols)     4-neighbourhood grid, labels "r,c".
// RandomSparse(n, p)   each pair i<j linked with probability p (needs an RNG for 0<p<1).

// registerNodes adds n nodes labeled cfg.idFn(0..n-1) and returns their ids.
func registerNodes(g *core.Graph, cfg builderConfig, n int) []core.NodeID {
	ids := make([]core.NodeID, n)
	for i := 0; i < n; i++ {
		ids[i] = g.RegisterNode(cfg.idFn(i)).ID
	}

	return ids
}

// link draws one cost from cfg and links u—v, wrapping failures with method context.
func link(g *core.Graph, cfg builderConfig, method string, u, v core.NodeID) error {
	c := cfg.costFn(cfg.rng)
	if _, err := g.Link(u, v, c); err != nil {
		return fmt.Errorf("%s: Link(%d—%d, cost=%d): %w", method, u, v, c, err)
	}

	return nil
}
