// SPDX-License-Identifier: MIT
// Package: matrix
//
// errors.go - sentinel errors for adjacency snapshots.
//
// Error policy:
//   - Only package-level sentinels are exposed; call sites attach context with %w.
//   - Argument errors wrap core.ErrInvalidArgument so callers can branch on the
//     whole class with a single errors.Is.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/netpath/core"
)

var (
	// ErrNilGraph is returned when a nil *core.Graph is passed to NewAdjacencyMatrix.
	ErrNilGraph = fmt.Errorf("matrix: graph is nil: %w", core.ErrInvalidArgument)

	// ErrIndexOutOfRange is returned for a row/column index outside [0, Size()).
	ErrIndexOutOfRange = fmt.Errorf("matrix: index out of range: %w", core.ErrInvalidArgument)

	// ErrDimensionMismatch is returned when rows are not square or labels do not match the size.
	ErrDimensionMismatch = fmt.Errorf("matrix: dimension mismatch: %w", core.ErrInvalidArgument)

	// ErrNegativeCost is returned when a raw cell holds a negative cost.
	ErrNegativeCost = fmt.Errorf("matrix: negative cost: %w", core.ErrInvalidArgument)

	// ErrDiagonal is returned when a raw diagonal cell is not NoEdge.
	ErrDiagonal = fmt.Errorf("matrix: diagonal must be empty: %w", core.ErrInvalidArgument)

	// ErrNoEdge is returned by PathCost when two consecutive path nodes are not adjacent.
	ErrNoEdge = fmt.Errorf("matrix: no edge between consecutive path nodes: %w", core.ErrInvalidArgument)
)
