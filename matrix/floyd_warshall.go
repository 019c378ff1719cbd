// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense all-pairs least costs (Floyd–Warshall) over an AdjacencyMatrix.
//   - Used as an independent cross-check for single-source searches.
//
// Contract:
//   - Only cells > NoEdge are edges; the diagonal distance is 0.
//   - Unreachable pairs hold Unreachable.

package matrix

import "math"

// Unreachable marks a pair with no connecting path in AllPairs output.
const Unreachable int64 = math.MaxInt64

// AllPairs returns the least cost between every ordered pair (i,j).
//
// Loop order is fixed (k → i → j) and relaxation is strict, so the output is
// deterministic. Additions saturate: a candidate that would overflow is skipped.
//
// Complexity: Time O(N³), Space O(N²) for the result.
func (am *AdjacencyMatrix) AllPairs() [][]int64 {
	n := am.n

	// Initialise: diagonal 0, edges as-is, everything else Unreachable.
	dist := make([][]int64, n)
	var i, j, k int
	for i = 0; i < n; i++ {
		dist[i] = make([]int64, n)
		for j = 0; j < n; j++ {
			switch c := am.cells[i*n+j]; {
			case i == j:
				dist[i][j] = 0
			case c > NoEdge:
				dist[i][j] = c
			default:
				dist[i][j] = Unreachable
			}
		}
	}

	var ik, kj, cand int64
	for k = 0; k < n; k++ { // intermediate node
		for i = 0; i < n; i++ { // source
			ik = dist[i][k]
			if ik == Unreachable {
				continue
			}
			for j = 0; j < n; j++ { // destination
				kj = dist[k][j]
				if kj == Unreachable || kj > Unreachable-ik {
					continue
				}
				cand = ik + kj
				if cand < dist[i][j] {
					dist[i][j] = cand
				}
			}
		}
	}

	return dist
}
