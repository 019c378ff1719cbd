// SPDX-License-Identifier: MIT

// Package render formats adjacency matrices and shortest paths as plain text.
//
// Formats:
//
//	WriteMatrix:      A  B  C
//	               A | [ 0, 3, 2, ]
//	               B | [ 3, 0, 0, ]
//
//	WritePath:     B [2] -> D [1] -> F [8] -> K (Cost: 11)
//	               No path found
//
//	WriteQuery:    Shortest path from [B -> K] : B [2] -> D [1] -> F [8] -> K (Cost: 11)
//
// Cells without an edge (matrix.NoEdge) print as 0, the diagonal included. Nothing in core, matrix or
// dijkstra formats text; this package is the only presentation layer.
package render
