// SPDX-License-Identifier: MIT

// Package matrix turns a core.Graph into an AdjacencyMatrix: a dense N×N
// table of direct edge costs captured at one point in time.
//
// Layout:
//
//	cell (i,j) = cost of the edge i→j, or NoEdge (0) when there is none.
//	row/col i  = node with NodeID i; Labels()[i] names it.
//
// Guarantees for matrices built by NewAdjacencyMatrix:
//
//   - Symmetric: At(i,j) == At(j,i) for every pair, because core links are undirected.
//   - Empty diagonal: At(i,i) == NoEdge.
//   - Snapshot semantics: later RegisterNode/Link calls do not show up.
//   - Immutable: every accessor returns copies, so sharing across goroutines is safe.
//
// FromRows accepts raw tables (e.g. hand-written fixtures); it validates shape,
// non-negative cells and an empty diagonal, but does not require symmetry.
//
// AllPairs computes every least cost at once (Floyd–Warshall, O(N³)); it is
// the brute-force counterpart of a single-source search.
//
// Known limitation: NoEdge and a literal zero cost are the same value, and only
// cells > 0 count as edges. A zero-cost edge is therefore invisible.
//
// Errors (all wrap core.ErrInvalidArgument):
//
//	ErrNilGraph, ErrIndexOutOfRange, ErrDimensionMismatch,
//	ErrNegativeCost, ErrDiagonal, ErrNoEdge.
package matrix
