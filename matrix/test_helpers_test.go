// SPDX-License-Identifier: MIT
// Package matrix_test contains shared fixtures for matrix tests.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netpath/core"
	"github.com/katalvlaran/netpath/matrix"
)

// newSquare builds A–B(3), B–C(4), C–D(5), D–A(6) and returns its snapshot.
func newSquare(t *testing.T) (*core.Graph, *matrix.AdjacencyMatrix) {
	t.Helper()

	g := core.NewGraph()
	for _, l := range []string{"A", "B", "C", "D"} {
		g.RegisterNode(l)
	}
	require.NoError(t, g.From(0).Link(1, 3).Link(3, 6).Err())
	require.NoError(t, g.From(2).Link(1, 4).Link(3, 5).Err())

	am, err := matrix.NewAdjacencyMatrix(g)
	require.NoError(t, err)

	return g, am
}
