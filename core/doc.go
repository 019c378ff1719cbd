// Package core provides the network model: labeled nodes with dense integer
// ids and weighted, undirected links between them.
//
// A Graph G = (V,E) here is deliberately narrow:
//
//   - Nodes are append-only; NodeID i is the i-th registered node.
//   - Links are undirected: Link(a,b,c) stores a→b and, if missing, b→a,
//     both with cost c. Declaring both directions explicitly is harmless.
//   - Costs are strictly positive integers. Zero, negative, self-loop and
//     parallel edges with conflicting costs are rejected.
//   - No removal, no directed-only edges, no multigraphs.
//
// Core Methods:
//
//	// Nodes
//	RegisterNode(label string) Node          // O(1)
//	Node(id NodeID) (Node, error)            // O(1)
//	Nodes() []Node, Labels() []string        // O(N)
//	IndexOf(label string) (NodeID, bool)     // O(N)
//
//	// Links
//	Link(a, b NodeID, cost int64) (NodeID, error) // O(1)
//	From(a).Link(b, 3).Link(c, 2).Err()           // fluent chaining
//	HasEdge(a, b), Cost(a, b)                      // O(1)
//	Edges(), EdgesFrom(id), EdgeCount()            // O(N+E)
//
// Errors:
//
//	ErrInvalidArgument  - umbrella sentinel, matched by every error below.
//	ErrBadCost          - cost <= 0.
//	ErrSelfLoop         - a == b.
//	ErrNodeNotFound     - id never registered.
//	ErrConflictingCost  - pair already linked with another cost.
//
// Concurrency:
//
// Graph guards its state with a sync.RWMutex, so reads from many goroutines
// are safe. Building a graph and deriving matrices from it concurrently is
// still the caller's problem: snapshots taken mid-build see a partial graph.
//
// Use matrix.NewAdjacencyMatrix to materialize a Graph and dijkstra.ShortestPath
// to query it.
package core
