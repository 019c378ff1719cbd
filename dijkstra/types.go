// Package dijkstra defines the types, options and sentinel errors of the
// shortest-path engine.
//
// Options:
//
//	– WithStopAtTarget(t): stop the relaxation loop once t is settled.
//	   Distances and the path to t are unchanged; other nodes may be left
//	   with tentative distances (see Result.Final).
//
// Errors (sentinel, both wrap core.ErrInvalidArgument):
//
//	– ErrNilMatrix        if the adjacency matrix pointer is nil.
//	– ErrIndexOutOfRange  if a source or target index is outside the matrix.
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/netpath/core"
	"github.com/katalvlaran/netpath/matrix"
)

// Infinity marks an unreachable node in Result.Dist. It equals
// matrix.Unreachable, so Dist rows compare directly with AllPairs rows.
const Infinity = matrix.Unreachable

// NoPredecessor marks the source and unreachable nodes in Result.Prev.
const NoPredecessor = -1

// Sentinel errors returned by the engine.
var (
	// ErrNilMatrix indicates that a nil *matrix.AdjacencyMatrix was passed in.
	ErrNilMatrix = fmt.Errorf("dijkstra: adjacency matrix is nil: %w", core.ErrInvalidArgument)

	// ErrIndexOutOfRange indicates a source or target outside [0, Size()).
	ErrIndexOutOfRange = fmt.Errorf("dijkstra: node index out of range: %w", core.ErrInvalidArgument)
)

// panicBadTarget is raised by WithStopAtTarget for a negative index.
const panicBadTarget = "dijkstra: WithStopAtTarget: target must be non-negative"

// Options configures a single engine run.
//
// Target       – index whose settlement may end the run early; -1 means none.
// StopAtTarget – if true, stop as soon as Target is settled.
type Options struct {
	Target       int
	StopAtTarget bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithStopAtTarget ends the run once target is settled.
// Panics on a negative target (programmer error); a target beyond the matrix
// is reported by Dijkstra as ErrIndexOutOfRange.
func WithStopAtTarget(target int) Option {
	if target < 0 {
		panic(panicBadTarget)
	}

	return func(o *Options) {
		o.Target = target
		o.StopAtTarget = true
	}
}

// DefaultOptions returns the reference policy: full single-source run, no early exit.
func DefaultOptions() Options {
	return Options{
		Target:       -1,
		StopAtTarget: false,
	}
}

// Result holds the outcome of one run from Source.
//
// Dist[v] is the least cost from Source to v, or Infinity.
// Prev[v] is v's predecessor on that path, or NoPredecessor.
// Result values are never mutated after Dijkstra returns.
type Result struct {
	Source int
	Dist   []int64
	Prev   []int

	final []bool // final[v]: Dist[v] will not improve
}
