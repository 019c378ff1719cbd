// SPDX-License-Identifier: MIT
// Package: matrix
//
// validators.go - shape and index guards shared by constructors and queries.
// Validators return plain sentinels; call sites attach method context.

package matrix

import "fmt"

// validateSquare ensures every row has exactly len(rows) cells.
// Complexity: O(N).
func validateSquare(rows [][]int64) error {
	n := len(rows)
	for i, row := range rows {
		if len(row) != n {
			return fmt.Errorf("row %d has %d cells, want %d: %w", i, len(row), n, ErrDimensionMismatch)
		}
	}

	return nil
}

// validateIndex ensures 0 <= i < n.
// Complexity: O(1).
func validateIndex(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("index %d not in [0,%d): %w", i, n, ErrIndexOutOfRange)
	}

	return nil
}
