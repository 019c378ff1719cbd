// SPDX-License-Identifier: MIT
// Package: netpath/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewNodes).
//   - Registers nodes in row-major order with fixed labels "r,c" (cfg.idFn is not used).
//   - For each cell emits the right link, then the bottom link, when they exist.
//
// Complexity: O(R*C) nodes + O(2*R*C) links.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netpath/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d" // "r,c" coordinate label scheme
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early.
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewNodes)
		}

		// 2) Register nodes in row-major order.
		ids := make([]core.NodeID, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				ids[r*cols+c] = g.RegisterNode(fmt.Sprintf(gridIDFmt, r, c)).ID
			}
		}

		// 3) Right and bottom neighbours.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := ids[r*cols+c]
				if c+1 < cols {
					if err := link(g, cfg, methodGrid, u, ids[r*cols+c+1]); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(g, cfg, methodGrid, u, ids[(r+1)*cols+c]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
