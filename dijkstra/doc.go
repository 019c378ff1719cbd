// Package dijkstra computes least-cost paths on a matrix.AdjacencyMatrix
// with non-negative integer costs.
//
// Overview:
//
//   - Dijkstra(am, source) runs a full single-source search and returns a
//     *Result with distances and predecessors for every node.
//   - ShortestPath(am, source, target) returns the node indices of one
//     least-cost path, source first, target last; an empty slice when the
//     target is unreachable. It stops as soon as the target is settled.
//   - Runs are pure: no state survives between calls, and the input matrix is
//     only read.
//
// Determinism:
//
//   - Selection scans indices in ascending order and keeps the first minimum,
//     so among equally short candidates the lowest index is settled first.
//   - Relaxation uses a strict "<", so the first predecessor that reaches a
//     distance keeps it.
//   - Together these make repeated queries return identical paths even when
//     several least-cost paths exist.
//
// Edge semantics:
//
//   - Only cells > 0 are edges. matrix.NoEdge (0) is never traversed, which
//     also means a genuine zero-cost edge would be ignored. This is a known,
//     kept limitation of the adjacency representation.
//
// Performance and complexity:
//
//   - Time:  O(N²) for N nodes; the loop is bounded by N-1 rounds.
//   - Space: O(N).
//   - WithStopAtTarget(t) may end the loop early; the answer for t is unchanged.
//
// Error handling (sentinel errors):
//
//   - ErrNilMatrix:       nil adjacency matrix.
//   - ErrIndexOutOfRange: source or target outside the matrix.
//
// Unreachable targets are not errors. Both sentinels wrap core.ErrInvalidArgument.
//
// Thread safety:
//
//   - Concurrent queries on the same AdjacencyMatrix are safe; it is immutable.
//
// See also:
//
//   - matrix.NewAdjacencyMatrix: materialize a core.Graph.
//   - render.WritePath: format a path as "A [3] -> B (Cost: 3)".
package dijkstra
