// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netpath/core"
)

// Common labels used across core tests.
const (
	LabelA = "A"
	LabelB = "B"
	LabelC = "C"
	LabelD = "D"
)

// Common costs used across core tests (avoid magic numbers in test bodies).
const (
	Cost1 = 1
	Cost2 = 2
	Cost3 = 3
	Cost5 = 5
)

// Concurrency sizes.
const (
	NReaders = 50
	NNodes   = 100
)

// newTriangle builds A–B(3), A–C(2), B–C(5) and returns the graph plus ids.
func newTriangle(t *testing.T) (*core.Graph, core.NodeID, core.NodeID, core.NodeID) {
	t.Helper()

	g := core.NewGraph()
	a := g.RegisterNode(LabelA).ID
	b := g.RegisterNode(LabelB).ID
	c := g.RegisterNode(LabelC).ID
	require.NoError(t, g.From(a).Link(b, Cost3).Link(c, Cost2).Err())
	_, err := g.Link(b, c, Cost5)
	require.NoError(t, err)

	return g, a, b, c
}
