// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: read-only queries over an AdjacencyMatrix. Nothing here mutates the
// snapshot, so an AdjacencyMatrix may be shared across goroutines freely.

package matrix

import "fmt"

// Size returns N, the number of rows (and columns).
func (am *AdjacencyMatrix) Size() int { return am.n }

// At returns the cost of i→j, or NoEdge.
// Complexity: O(1).
func (am *AdjacencyMatrix) At(i, j int) (int64, error) {
	if err := am.validatePair(i, j); err != nil {
		return NoEdge, fmt.Errorf("At(%d,%d): %w", i, j, err)
	}

	return am.cells[i*am.n+j], nil
}

// HasEdge reports whether cell (i,j) is a traversable edge, i.e. holds a
// strictly positive cost. Out-of-range indices report false.
// Complexity: O(1).
func (am *AdjacencyMatrix) HasEdge(i, j int) bool {
	if am.validatePair(i, j) != nil {
		return false
	}

	return am.cells[i*am.n+j] > NoEdge
}

// Row returns a copy of row i.
// Complexity: O(N).
func (am *AdjacencyMatrix) Row(i int) ([]int64, error) {
	if err := validateIndex(i, am.n); err != nil {
		return nil, fmt.Errorf("Row(%d): %w", i, err)
	}
	out := make([]int64, am.n)
	copy(out, am.cells[i*am.n:(i+1)*am.n])

	return out, nil
}

// Rows returns a copy of the full table as [][]int64.
// Complexity: O(N²).
func (am *AdjacencyMatrix) Rows() [][]int64 {
	out := make([][]int64, am.n)
	for i := range out {
		out[i] = make([]int64, am.n)
		copy(out[i], am.cells[i*am.n:(i+1)*am.n])
	}

	return out
}

// Labels returns a copy of the labels captured at build time.
func (am *AdjacencyMatrix) Labels() []string {
	out := make([]string, len(am.labels))
	copy(out, am.labels)

	return out
}

// Label returns the label of row/column i.
func (am *AdjacencyMatrix) Label(i int) (string, error) {
	if err := validateIndex(i, am.n); err != nil {
		return "", fmt.Errorf("Label(%d): %w", i, err)
	}

	return am.labels[i], nil
}

// IndexOf returns the first index labeled label.
// Complexity: O(N).
func (am *AdjacencyMatrix) IndexOf(label string) (int, bool) {
	for i, l := range am.labels {
		if l == label {
			return i, true
		}
	}

	return -1, false
}

// PathCost sums the cell costs along consecutive pairs of path.
// An empty or single-node path costs 0. Every hop must be an edge (ErrNoEdge otherwise).
// Complexity: O(len(path)).
func (am *AdjacencyMatrix) PathCost(path []int) (int64, error) {
	var total int64
	for k, v := range path {
		if err := validateIndex(v, am.n); err != nil {
			return 0, fmt.Errorf("PathCost: path[%d]: %w", k, err)
		}
		if k == 0 {
			continue
		}
		u := path[k-1]
		if !am.HasEdge(u, v) {
			return 0, fmt.Errorf("PathCost: %s→%s: %w", am.labels[u], am.labels[v], ErrNoEdge)
		}
		total += am.cells[u*am.n+v]
	}

	return total, nil
}

// validatePair checks both coordinates.
func (am *AdjacencyMatrix) validatePair(i, j int) error {
	if err := validateIndex(i, am.n); err != nil {
		return err
	}

	return validateIndex(j, am.n)
}
