// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/netpath/core"
)

// NoEdge is the cell value meaning "no direct edge".
//
// Absence and a literal zero share this marker. Link costs are always
// positive, so the two never collide for matrices built from a Graph; a raw
// zero-cost cell passed to FromRows is indistinguishable from absence and is
// never traversed by the shortest-path engine.
const NoEdge int64 = 0

// AdjacencyMatrix is an immutable snapshot of direct edge costs.
// cells is row-major: cells[i*n+j] is the cost of i→j, or NoEdge.
// labels[i] names row/column i.
type AdjacencyMatrix struct {
	n      int
	cells  []int64
	labels []string
}

// NewAdjacencyMatrix builds the adjacency snapshot of g.
//
// Stage 1 (Validate): g must be non-nil.
// Stage 2 (Prepare): snapshot labels and allocate N² cells, all NoEdge.
// Stage 3 (Execute): one pass over every node's outgoing edges; each edge
// fills exactly its (from,to) cell. The diagonal stays NoEdge because core
// rejects self-loops.
// Stage 4 (Finalize): return the snapshot; later graph mutations are not seen.
//
// Complexity: O(N² + E) time, O(N²) space.
func NewAdjacencyMatrix(g *core.Graph) (*AdjacencyMatrix, error) {
	// Stage 1
	if g == nil {
		return nil, fmt.Errorf("NewAdjacencyMatrix: %w", ErrNilGraph)
	}

	// Stage 2. Edges() and Labels() take separate read locks; a writer racing
	// between them is outside the contract (build first, then snapshot).
	labels := g.Labels()
	n := len(labels)
	am := &AdjacencyMatrix{
		n:      n,
		cells:  make([]int64, n*n),
		labels: labels,
	}

	// Stage 3
	for _, e := range g.Edges() {
		from, to := int(e.From), int(e.To)
		if from >= n || to >= n {
			// Node registered after the label snapshot; ignore it.
			continue
		}
		am.cells[from*n+to] = e.Cost
	}

	// Stage 4
	return am, nil
}

// FromRows builds a snapshot from raw cells. labels may be nil, in which case
// decimal labels "0","1",... are generated.
//
// Validation order: square shape, label count, non-negative cells, empty diagonal.
// The input is copied; later changes to rows do not affect the snapshot.
//
// Complexity: O(N²).
func FromRows(rows [][]int64, labels []string) (*AdjacencyMatrix, error) {
	const method = "FromRows"

	n := len(rows)
	if err := validateSquare(rows); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	if labels != nil && len(labels) != n {
		return nil, fmt.Errorf("%s: labels=%d, rows=%d: %w", method, len(labels), n, ErrDimensionMismatch)
	}

	am := &AdjacencyMatrix{n: n, cells: make([]int64, n*n), labels: make([]string, n)}
	for i, row := range rows {
		for j, c := range row {
			if c < 0 {
				return nil, fmt.Errorf("%s: cell (%d,%d)=%d: %w", method, i, j, c, ErrNegativeCost)
			}
			if i == j && c != NoEdge {
				return nil, fmt.Errorf("%s: cell (%d,%d)=%d: %w", method, i, j, c, ErrDiagonal)
			}
			am.cells[i*n+j] = c
		}
		if labels == nil {
			am.labels[i] = strconv.Itoa(i)
		} else {
			am.labels[i] = labels[i]
		}
	}

	return am, nil
}
