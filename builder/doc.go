// SPDX-License-Identifier: MIT

// Package builder generates deterministic netpath networks for tests,
// examples and benchmarks.
//
// Usage:
//
//	g, err := builder.BuildGraph(
//	    []builder.BuilderOption{
//	        builder.WithSeed(42),
//	        builder.WithCostFn(builder.UniformCostFn(1, 9)),
//	    },
//	    builder.RandomSparse(8, 0.4),
//	)
//
// Topologies: Path, Cycle, Star, Complete, Grid, RandomSparse.
//
// Every constructor registers its nodes through the label scheme (WithIDScheme;
// decimal by default) and links them through core.Graph.Link, so all core
// invariants (positive costs, symmetric links, no self-loops) hold for every
// generated graph. Costs come from the CostFn (constant 1 by default).
//
// Determinism: identical options, seed and constructor order produce the same
// labels, NodeIDs and costs on every run.
package builder
