// SPDX-License-Identifier: MIT
//
// File: methods_links.go
// Role: Link creation (undirected completion) and edge read queries.
// Determinism:
//   - Edges() returns edges grouped by From ascending, insertion order within a node.
// Concurrency:
//   - Link under the write lock; queries under the read lock.

package core

import "fmt"

// Link connects a and b with cost and returns a, the origin node.
//
// Steps:
//  1. Validate cost > 0 and a != b.
//  2. Validate both ids are registered.
//  3. If a→b already exists: no-op for the same cost, ErrConflictingCost otherwise.
//  4. Add a→b.
//  5. Add b→a only if it is absent, so declaring both directions explicitly
//     never produces a duplicate reverse edge.
//
// Errors: ErrBadCost, ErrSelfLoop, ErrNodeNotFound, ErrConflictingCost
// (all wrap ErrInvalidArgument).
//
// Complexity: O(1) amortized.
func (g *Graph) Link(a, b NodeID, cost int64) (NodeID, error) {
	// 1) Argument validation that needs no lock.
	if cost <= 0 {
		return a, fmt.Errorf("Link(%d→%d, cost=%d): %w", a, b, cost, ErrBadCost)
	}
	if a == b {
		return a, fmt.Errorf("Link(%d→%d): %w", a, b, ErrSelfLoop)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Both endpoints must exist.
	if !g.hasNode(a) {
		return a, fmt.Errorf("Link(%d→%d): from: %w", a, b, ErrNodeNotFound)
	}
	if !g.hasNode(b) {
		return a, fmt.Errorf("Link(%d→%d): to: %w", a, b, ErrNodeNotFound)
	}

	// 3) One cost per pair.
	if existing, ok := g.costs[a][b]; ok {
		if existing != cost {
			return a, fmt.Errorf("Link(%d→%d, cost=%d): existing cost %d: %w", a, b, cost, existing, ErrConflictingCost)
		}
		return a, nil
	}

	// 4) Forward edge.
	g.addEdge(a, b, cost)

	// 5) Reverse edge, only when missing.
	if _, ok := g.costs[b][a]; !ok {
		g.addEdge(b, a, cost)
	}

	return a, nil
}

// addEdge records from→to in both the ordered list and the index. Caller holds g.mu.
func (g *Graph) addEdge(from, to NodeID, cost int64) {
	g.adj[from] = append(g.adj[from], Edge{From: from, To: to, Cost: cost})
	g.costs[from][to] = cost
}

// HasEdge reports whether a direct edge a→b exists.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b NodeID) bool {
	_, ok := g.Cost(a, b)

	return ok
}

// Cost returns the cost of the direct edge a→b.
// Unknown ids simply report false.
// Complexity: O(1).
func (g *Graph) Cost(a, b NodeID) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNode(a) || !g.hasNode(b) {
		return 0, false
	}
	c, ok := g.costs[a][b]

	return c, ok
}

// EdgesFrom returns a copy of the outgoing edges of id in insertion order.
func (g *Graph) EdgesFrom(id NodeID) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNode(id) {
		return nil, fmt.Errorf("EdgesFrom(%d): %w", id, ErrNodeNotFound)
	}
	out := make([]Edge, len(g.adj[id]))
	copy(out, g.adj[id])

	return out, nil
}

// Edges returns every directed edge record; each undirected link appears twice.
// Complexity: O(N + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCountLocked())
	for _, bucket := range g.adj {
		out = append(out, bucket...)
	}

	return out
}

// EdgeCount returns the number of directed edge records (twice the link count).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCountLocked()
}

func (g *Graph) edgeCountLocked() int {
	n := 0
	for _, bucket := range g.adj {
		n += len(bucket)
	}

	return n
}
