// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge and Graph declarations, sentinel errors and the NewGraph constructor.
// Invariants:
//   - Node ids are dense 0..N-1 and equal the node's position in g.nodes.
//   - Nodes are never removed.
//   - For every registered link a–b both a→b and b→a exist with the same cost,
//     and at most one edge exists per ordered pair.

package core

import (
	"errors"
	"fmt"
	"sync"
)

// ErrInvalidArgument is the umbrella sentinel for caller bugs: non-positive
// costs, self-loops and out-of-range node ids. Every argument error produced by
// core, matrix and dijkstra satisfies errors.Is(err, ErrInvalidArgument).
var ErrInvalidArgument = errors.New("invalid argument")

// Sentinel errors for core graph operations.
var (
	// ErrBadCost indicates a link cost that is zero or negative.
	ErrBadCost = fmt.Errorf("core: link cost must be positive: %w", ErrInvalidArgument)

	// ErrSelfLoop indicates an attempt to link a node to itself.
	ErrSelfLoop = fmt.Errorf("core: self-loop not allowed: %w", ErrInvalidArgument)

	// ErrNodeNotFound indicates a NodeID that was never registered.
	ErrNodeNotFound = fmt.Errorf("core: node not found: %w", ErrInvalidArgument)

	// ErrConflictingCost indicates a second link between the same pair with a
	// different cost. One cost governs a pair in both directions.
	ErrConflictingCost = fmt.Errorf("core: pair already linked with a different cost: %w", ErrInvalidArgument)
)

// NodeID is the dense index of a Node inside its Graph.
type NodeID int

// Node is a labeled vertex. ID is assigned at registration and never changes.
type Node struct {
	ID    NodeID
	Label string
}

// Edge is one directed half of an undirected link.
type Edge struct {
	From NodeID
	To   NodeID
	Cost int64
}

// Graph owns the node list and the edge relation.
//
// adj[id] keeps outgoing edges in insertion order (stable Edges() output);
// costs[id] indexes the same edges by target for O(1) pair lookups, which is
// what keeps adjacency-matrix materialization at O(N²).
type Graph struct {
	mu sync.RWMutex // guards everything below

	nodes []Node             // index == NodeID
	adj   [][]Edge           // adj[from] = outgoing edges, insertion order
	costs []map[NodeID]int64 // costs[from][to] = cost
}

// NewGraph returns an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{}
}
