// Package netpath is a small, deterministic least-cost routing toolkit for
// weighted, undirected networks.
//
// A network is built once, materialised into a dense adjacency matrix, and
// queried with Dijkstra's algorithm:
//
//	g := core.NewGraph()
//	a := g.RegisterNode("A").ID
//	b := g.RegisterNode("B").ID
//	_, _ = g.Link(a, b, 3)                // stores A→B and B→A
//	am, _ := matrix.NewAdjacencyMatrix(g) // immutable N×N snapshot
//	path, _ := dijkstra.ShortestPath(am, int(a), int(b))
//
// Subpackages:
//
//	core/        Node, Edge and the append-only Graph with symmetric links
//	matrix/      AdjacencyMatrix snapshots, path pricing, all-pairs closure
//	dijkstra/    single-source search, path reconstruction, batch queries
//	render/      text output: matrix table and "A [3] -> B (Cost: 3)" traces
//	network/     the 12-node reference network and YAML definitions
//	store/       SQLite persistence of named networks
//	builder/     deterministic fixture topologies for tests and benchmarks
//	cmd/netpath  command-line front end
//
// Determinism: among equally short routes the search settles the lowest node
// index first, so repeated queries return identical paths.
//
// Costs are strictly positive integers; a matrix cell of 0 means "no edge"
// and is never traversed.
package netpath
