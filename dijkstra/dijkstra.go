// Package dijkstra implements the least-cost path engine over a
// matrix.AdjacencyMatrix.
//
// Algorithm (per run):
//
//   - dist[source] = 0, every other dist = Infinity; nothing visited; no predecessors.
//   - Up to N-1 rounds: pick the unvisited node with the smallest tentative
//     distance by linear scan (ties go to the lowest index), mark it visited,
//     and relax every neighbor j whose cell is > 0 with a strict "<".
//   - A round that finds no finite unvisited node ends the run: everything
//     left is unreachable.
//
// Complexity:
//
//   - Time:  O(N²) (N rounds × O(N) selection + O(N) relaxation).
//   - Space: O(N) for dist/prev/visited plus one row copy per round.
//
// Notes on implementation choices:
//
//   - Linear-scan selection instead of a heap: the input is already a dense
//     N×N table, so a heap would not lower the O(N²) bound, and the scan
//     gives the lowest-index tie-break for free.
//   - Cells equal to matrix.NoEdge (0) are never traversed.
//   - Additions saturate: an edge whose cost would overflow past Infinity is skipped.
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/netpath/matrix"
)

// Dijkstra computes least costs from source to every node of am.
//
// Preconditions and validation (in order):
//  1. am must be non-nil (ErrNilMatrix).
//  2. source must be a valid index (ErrIndexOutOfRange).
//  3. With WithStopAtTarget, the target must be a valid index (ErrIndexOutOfRange).
//
// Complexity: O(N²) time, O(N) space.
func Dijkstra(am *matrix.AdjacencyMatrix, source int, opts ...Option) (*Result, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if am == nil {
		return nil, ErrNilMatrix
	}
	n := am.Size()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: source=%d, size=%d", ErrIndexOutOfRange, source, n)
	}
	if cfg.StopAtTarget && cfg.Target >= n {
		return nil, fmt.Errorf("%w: target=%d, size=%d", ErrIndexOutOfRange, cfg.Target, n)
	}

	// 3) Run.
	r := &runner{
		am:      am,
		options: cfg,
		n:       n,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
	}
	r.init(source)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.result(source), nil
}

// ShortestPath returns the least-cost path from source to target as node
// indices, source first and target last. An empty, non-nil slice means no path.
// source == target yields [source].
//
// The search stops once target is settled (WithStopAtTarget); opts are
// applied after that and may override it.
//
// Complexity: O(N²).
func ShortestPath(am *matrix.AdjacencyMatrix, source, target int, opts ...Option) ([]int, error) {
	res, err := shortestPathResult(am, source, target, opts...)
	if err != nil {
		return nil, err
	}

	return res.PathTo(target)
}

// shortestPathResult validates target and runs the early-exit search ShortestPath reads from.
func shortestPathResult(am *matrix.AdjacencyMatrix, source, target int, opts ...Option) (*Result, error) {
	if am == nil {
		return nil, ErrNilMatrix
	}
	if target < 0 || target >= am.Size() {
		return nil, fmt.Errorf("%w: target=%d, size=%d", ErrIndexOutOfRange, target, am.Size())
	}

	return Dijkstra(am, source, append([]Option{WithStopAtTarget(target)}, opts...)...)
}

// runner holds the mutable state for a single run.
type runner struct {
	am      *matrix.AdjacencyMatrix // read-only input
	options Options                 // resolved options
	n       int                     // matrix size
	dist    []int64                 // best-known distance from source
	prev    []int                   // predecessor on the best-known path
	visited []bool                  // settled nodes
	stopped bool                    // run ended early at options.Target
}

// init sets dist=Infinity, prev=NoPredecessor everywhere, then dist[source]=0.
func (r *runner) init(source int) {
	for v := 0; v < r.n; v++ {
		r.dist[v] = Infinity
		r.prev[v] = NoPredecessor
		r.visited[v] = false
	}
	r.dist[source] = 0
}

// process runs the bounded N-1 relaxation rounds.
func (r *runner) process() error {
	var u, round int
	for round = 0; round < r.n-1; round++ {
		// 1) Select the closest unvisited node.
		u = r.closest()
		if u < 0 {
			// Only unreachable nodes remain.
			return nil
		}

		// 2) Settle it.
		r.visited[u] = true
		if r.options.StopAtTarget && u == r.options.Target {
			r.stopped = true
			return nil
		}

		// 3) Relax its outgoing edges.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// closest returns the unvisited node with the smallest finite distance, or -1.
// Strict "<" keeps the first (lowest) index among equal distances.
func (r *runner) closest() int {
	best, bestDist := -1, Infinity
	for v := 0; v < r.n; v++ {
		if r.visited[v] {
			continue
		}
		if r.dist[v] < bestDist {
			best, bestDist = v, r.dist[v]
		}
	}

	return best
}

// relax tries to improve every neighbor of u through u.
func (r *runner) relax(u int) error {
	row, err := r.am.Row(u)
	if err != nil {
		return fmt.Errorf("dijkstra: relax(%d): %w", u, err)
	}

	du := r.dist[u]
	var (
		j    int
		cost int64
		cand int64
	)
	for j, cost = range row {
		// Only strictly positive cells are edges.
		if cost <= matrix.NoEdge {
			continue
		}
		// Saturating add: du is finite here.
		if cost > Infinity-du {
			continue
		}
		cand = du + cost
		if cand < r.dist[j] {
			r.dist[j] = cand
			r.prev[j] = u
		}
	}

	return nil
}

// result freezes the runner state into a Result.
func (r *runner) result(source int) *Result {
	final := make([]bool, r.n)
	copy(final, r.visited)
	if !r.stopped {
		// A run that was not cut short leaves at most one node unvisited (the
		// last one), and its distance is final too; unreachable nodes are final
		// at Infinity.
		for v := range final {
			final[v] = true
		}
	}

	return &Result{
		Source: source,
		Dist:   r.dist,
		Prev:   r.prev,
		final:  final,
	}
}
