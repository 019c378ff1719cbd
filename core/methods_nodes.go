// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node registration and node read queries.
// Concurrency:
//   - RegisterNode takes the write lock; every query takes the read lock.
//   - Slices returned to callers are copies.

package core

import "fmt"

// RegisterNode appends a node with the next sequential id and returns it.
// It always succeeds; label uniqueness is the caller's responsibility.
//
// Complexity: O(1) amortized.
func (g *Graph) RegisterNode(label string) Node {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := Node{ID: NodeID(len(g.nodes)), Label: label}
	g.nodes = append(g.nodes, n)
	g.adj = append(g.adj, nil)
	g.costs = append(g.costs, make(map[NodeID]int64))

	return n
}

// NodeCount returns the number of registered nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Node returns the node with the given id, or ErrNodeNotFound.
func (g *Graph) Node(id NodeID) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNode(id) {
		return Node{}, fmt.Errorf("Node(%d): %w", id, ErrNodeNotFound)
	}

	return g.nodes[id], nil
}

// Nodes returns a copy of the node list in id order.
// Complexity: O(N).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Labels returns node labels in id order, so labels[i] names node i.
// Complexity: O(N).
func (g *Graph) Labels() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n.Label
	}

	return out
}

// IndexOf returns the id of the first node carrying label.
// Complexity: O(N).
func (g *Graph) IndexOf(label string) (NodeID, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, n := range g.nodes {
		if n.Label == label {
			return n.ID, true
		}
	}

	return -1, false
}

// hasNode reports whether id is registered. Caller holds g.mu.
func (g *Graph) hasNode(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}
