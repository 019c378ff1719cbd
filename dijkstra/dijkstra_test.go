// Package dijkstra_test contains unit tests for the shortest-path engine.
// These tests validate input checks, path reconstruction, the lowest-index
// tie-break, early exit, and optimality against an all-pairs oracle.
package dijkstra_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/netpath/builder"
	"github.com/katalvlaran/netpath/core"
	"github.com/katalvlaran/netpath/dijkstra"
	"github.com/katalvlaran/netpath/matrix"
	"github.com/katalvlaran/netpath/network"
)

// Reference network indices used below.
const (
	idxA = 0
	idxB = 1
	idxD = 3
	idxF = 5
	idxK = 10
	idxL = 11
)

// referenceMatrix returns the adjacency snapshot of the reference network.
func referenceMatrix(t testing.TB) *matrix.AdjacencyMatrix {
	t.Helper()
	g, err := network.Reference()
	if err != nil {
		t.Fatalf("Reference: %v", err)
	}
	am, err := matrix.NewAdjacencyMatrix(g)
	if err != nil {
		t.Fatalf("NewAdjacencyMatrix: %v", err)
	}

	return am
}

// mustRows builds a matrix from raw rows or fails the test.
func mustRows(t *testing.T, rows [][]int64) *matrix.AdjacencyMatrix {
	t.Helper()
	am, err := matrix.FromRows(rows, nil)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	return am
}

// ------------------------------------------------------------------------
// 1. Validation Tests: errors for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_NilMatrix(t *testing.T) {
	if _, err := dijkstra.Dijkstra(nil, 0); !errors.Is(err, dijkstra.ErrNilMatrix) {
		t.Fatalf("Expected ErrNilMatrix, got %v", err)
	}
	if _, err := dijkstra.ShortestPath(nil, 0, 0); !errors.Is(err, dijkstra.ErrNilMatrix) {
		t.Fatalf("Expected ErrNilMatrix from ShortestPath, got %v", err)
	}
}

func TestDijkstra_IndexOutOfRange(t *testing.T) {
	am := referenceMatrix(t)

	cases := []struct {
		name           string
		source, target int
	}{
		{"NegativeSource", -1, idxK},
		{"SourceTooLarge", am.Size(), idxK},
		{"NegativeTarget", idxB, -1},
		{"TargetTooLarge", idxB, am.Size()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dijkstra.ShortestPath(am, tc.source, tc.target)
			if !errors.Is(err, dijkstra.ErrIndexOutOfRange) {
				t.Fatalf("Expected ErrIndexOutOfRange, got %v", err)
			}
			if !errors.Is(err, core.ErrInvalidArgument) {
				t.Fatalf("Expected the error to match core.ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestDijkstra_StopTargetOutOfRange(t *testing.T) {
	am := referenceMatrix(t)
	_, err := dijkstra.Dijkstra(am, idxB, dijkstra.WithStopAtTarget(am.Size()))
	if !errors.Is(err, dijkstra.ErrIndexOutOfRange) {
		t.Fatalf("Expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestWithStopAtTarget_PanicsOnNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Expected panic for a negative target")
		}
	}()
	dijkstra.WithStopAtTarget(-1)
}

func TestDijkstra_EmptyMatrix(t *testing.T) {
	am := mustRows(t, [][]int64{})
	if _, err := dijkstra.Dijkstra(am, 0); !errors.Is(err, dijkstra.ErrIndexOutOfRange) {
		t.Fatalf("Expected ErrIndexOutOfRange on an empty matrix, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Basic Functionality: small graphs and the reference network.
// ------------------------------------------------------------------------

func TestDijkstra_SimpleTriangle(t *testing.T) {
	// A—B(1), B—C(2), A—C(5): A→C goes through B.
	am := mustRows(t, [][]int64{
		{0, 1, 5},
		{1, 0, 2},
		{5, 2, 0},
	})

	res, err := dijkstra.Dijkstra(am, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if want := []int64{0, 1, 3}; !reflect.DeepEqual(res.Dist, want) {
		t.Errorf("Dist = %v, want %v", res.Dist, want)
	}
	if want := []int{dijkstra.NoPredecessor, 0, 1}; !reflect.DeepEqual(res.Prev, want) {
		t.Errorf("Prev = %v, want %v", res.Prev, want)
	}
	path, err := res.PathTo(2)
	if err != nil || !reflect.DeepEqual(path, []int{0, 1, 2}) {
		t.Errorf("PathTo(2) = %v, %v; want [0 1 2]", path, err)
	}
}

func TestShortestPath_ReferenceBToK(t *testing.T) {
	am := referenceMatrix(t)

	path, err := dijkstra.ShortestPath(am, idxB, idxK)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if want := []int{idxB, idxD, idxF, idxK}; !reflect.DeepEqual(path, want) {
		t.Fatalf("path = %v, want %v", path, want)
	}
	cost, err := am.PathCost(path)
	if err != nil || cost != 11 {
		t.Fatalf("PathCost = %d, %v; want 11", cost, err)
	}
}

func TestDijkstra_ReferenceDistancesFromB(t *testing.T) {
	am := referenceMatrix(t)
	res, err := dijkstra.Dijkstra(am, idxB)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := []int64{3, 0, 5, 2, 7, 3, 7, 10, 13, 12, 11, 16}
	if !reflect.DeepEqual(res.Dist, want) {
		t.Fatalf("Dist = %v, want %v", res.Dist, want)
	}
	for v := range want {
		if !res.Final(v) || !res.Reachable(v) {
			t.Errorf("node %d: Final=%v Reachable=%v, want both true", v, res.Final(v), res.Reachable(v))
		}
	}
}

func TestShortestPath_SourceEqualsTarget(t *testing.T) {
	am := referenceMatrix(t)
	path, err := dijkstra.ShortestPath(am, idxA, idxA)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !reflect.DeepEqual(path, []int{idxA}) {
		t.Fatalf("path = %v, want [%d]", path, idxA)
	}
}

func TestShortestPath_SingleNode(t *testing.T) {
	am := mustRows(t, [][]int64{{0}})
	path, err := dijkstra.ShortestPath(am, 0, 0)
	if err != nil || !reflect.DeepEqual(path, []int{0}) {
		t.Fatalf("path = %v, %v; want [0]", path, err)
	}
}

// ------------------------------------------------------------------------
// 3. Unreachability and edge semantics.
// ------------------------------------------------------------------------

func TestShortestPath_Disconnected(t *testing.T) {
	// {0,1} and {2,3} are separate islands.
	am := mustRows(t, [][]int64{
		{0, 4, 0, 0},
		{4, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	})

	path, err := dijkstra.ShortestPath(am, 0, 3)
	if err != nil {
		t.Fatalf("Unreachable target must not be an error, got %v", err)
	}
	if path == nil || len(path) != 0 {
		t.Fatalf("path = %#v, want an empty non-nil slice", path)
	}

	res, _ := dijkstra.Dijkstra(am, 0)
	if d, ok := res.DistanceTo(3); ok || d != dijkstra.Infinity {
		t.Errorf("DistanceTo(3) = %d, %v; want Infinity, false", d, ok)
	}
	if res.Prev[3] != dijkstra.NoPredecessor {
		t.Errorf("Prev[3] = %d, want NoPredecessor", res.Prev[3])
	}
}

func TestDijkstra_ZeroCellIsNotTraversed(t *testing.T) {
	// The only link between 0 and 2 would be a zero cell; it is ignored.
	am := mustRows(t, [][]int64{
		{0, 0, 0},
		{0, 0, 3},
		{0, 3, 0},
	})
	if _, err := am.At(0, 1); err != nil {
		t.Fatalf("At: %v", err)
	}

	path, err := dijkstra.ShortestPath(am, 0, 2)
	if err != nil || len(path) != 0 {
		t.Fatalf("path = %v, %v; want empty", path, err)
	}
}

func TestDijkstra_DirectedRawTable(t *testing.T) {
	// FromRows allows one-way cells; the engine follows rows only.
	am := mustRows(t, [][]int64{
		{0, 2, 0},
		{0, 0, 2},
		{0, 0, 0},
	})
	if p, _ := dijkstra.ShortestPath(am, 0, 2); !reflect.DeepEqual(p, []int{0, 1, 2}) {
		t.Errorf("forward path = %v, want [0 1 2]", p)
	}
	if p, _ := dijkstra.ShortestPath(am, 2, 0); len(p) != 0 {
		t.Errorf("backward path = %v, want empty", p)
	}
}

func TestDijkstra_SaturatingAdd(t *testing.T) {
	huge := dijkstra.Infinity - 1
	am := mustRows(t, [][]int64{
		{0, huge, 0},
		{huge, 0, 5},
		{0, 5, 0},
	})
	res, err := dijkstra.Dijkstra(am, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if res.Dist[1] != huge {
		t.Errorf("Dist[1] = %d, want %d", res.Dist[1], huge)
	}
	if res.Reachable(2) {
		t.Errorf("node 2 must stay unreachable instead of overflowing, got %d", res.Dist[2])
	}
}

// ------------------------------------------------------------------------
// 4. Determinism: tie-break and repeatability.
// ------------------------------------------------------------------------

func TestShortestPath_TieBreakLowestIndex(t *testing.T) {
	// 0—1(1), 0—2(1), 1—3(1), 2—3(1): two paths of cost 2 to node 3.
	am := mustRows(t, [][]int64{
		{0, 1, 1, 0},
		{1, 0, 0, 1},
		{1, 0, 0, 1},
		{0, 1, 1, 0},
	})
	path, err := dijkstra.ShortestPath(am, 0, 3)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if want := []int{0, 1, 3}; !reflect.DeepEqual(path, want) {
		t.Fatalf("path = %v, want %v (lower index settled first)", path, want)
	}
}

func TestShortestPath_ReferenceTieToL(t *testing.T) {
	// B→L costs 16 both via J and via K; K is settled first and keeps L.
	am := referenceMatrix(t)
	path, err := dijkstra.ShortestPath(am, idxB, idxL)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if want := []int{idxB, idxD, idxF, idxK, idxL}; !reflect.DeepEqual(path, want) {
		t.Fatalf("path = %v, want %v", path, want)
	}
}

func TestShortestPath_Repeatable(t *testing.T) {
	am := referenceMatrix(t)
	first, err := dijkstra.ShortestPath(am, idxA, idxL)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for i := 0; i < 20; i++ {
		again, _ := dijkstra.ShortestPath(am, idxA, idxL)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d: path = %v, want %v", i, again, first)
		}
	}
}

// ------------------------------------------------------------------------
// 5. Early exit.
// ------------------------------------------------------------------------

func TestWithStopAtTarget_SameAnswer(t *testing.T) {
	am := referenceMatrix(t)
	full, err := dijkstra.Dijkstra(am, idxB)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for target := 0; target < am.Size(); target++ {
		early, err := dijkstra.Dijkstra(am, idxB, dijkstra.WithStopAtTarget(target))
		if err != nil {
			t.Fatalf("target %d: %v", target, err)
		}
		if !early.Final(target) {
			t.Errorf("target %d not final after early exit", target)
		}
		if early.Dist[target] != full.Dist[target] {
			t.Errorf("target %d: dist %d, want %d", target, early.Dist[target], full.Dist[target])
		}
		p1, _ := full.PathTo(target)
		p2, _ := early.PathTo(target)
		if !reflect.DeepEqual(p1, p2) {
			t.Errorf("target %d: path %v, want %v", target, p2, p1)
		}
	}
}

func TestShortestPath_StopsAtTarget(t *testing.T) {
	am := referenceMatrix(t)

	// From B, D (cost 2) is settled right after B; L is far from final then.
	res, err := dijkstra.ShortestPathResult(am, idxB, idxD)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !res.Final(idxD) {
		t.Errorf("target D not final")
	}
	if res.Final(idxL) {
		t.Errorf("L final: ShortestPath ran past its target")
	}

	path, err := dijkstra.ShortestPath(am, idxB, idxD)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if want := []int{idxB, idxD}; !reflect.DeepEqual(path, want) {
		t.Errorf("path %v, want %v", path, want)
	}
}

func TestWithStopAtTarget_LeavesOthersTentative(t *testing.T) {
	am := referenceMatrix(t)
	res, err := dijkstra.Dijkstra(am, idxB, dijkstra.WithStopAtTarget(idxD))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	// D (2) is the first node settled after B, so L is still far away.
	if res.Final(idxL) {
		t.Errorf("L must not be final after stopping at D")
	}
}

// ------------------------------------------------------------------------
// 6. Optimality against the all-pairs oracle.
// ------------------------------------------------------------------------

func TestDijkstra_MatchesAllPairs(t *testing.T) {
	for seed := int64(1); seed <= 12; seed++ {
		g, err := builder.BuildGraph(
			[]builder.BuilderOption{
				builder.WithSeed(seed),
				builder.WithCostFn(builder.UniformCostFn(1, 12)),
			},
			builder.RandomSparse(14, 0.25),
		)
		if err != nil {
			t.Fatalf("seed %d: BuildGraph: %v", seed, err)
		}
		am, err := matrix.NewAdjacencyMatrix(g)
		if err != nil {
			t.Fatalf("seed %d: NewAdjacencyMatrix: %v", seed, err)
		}
		oracle := am.AllPairs()

		for s := 0; s < am.Size(); s++ {
			res, err := dijkstra.Dijkstra(am, s)
			if err != nil {
				t.Fatalf("seed %d, source %d: %v", seed, s, err)
			}
			if !reflect.DeepEqual(res.Dist, oracle[s]) {
				t.Fatalf("seed %d, source %d: Dist %v, want %v", seed, s, res.Dist, oracle[s])
			}
			for v := 0; v < am.Size(); v++ {
				path, err := res.PathTo(v)
				if err != nil {
					t.Fatalf("seed %d: PathTo(%d): %v", seed, v, err)
				}
				if !res.Reachable(v) {
					if len(path) != 0 {
						t.Fatalf("seed %d: unreachable %d has path %v", seed, v, path)
					}
					continue
				}
				if path[0] != s || path[len(path)-1] != v {
					t.Fatalf("seed %d: path %v does not run %d→%d", seed, path, s, v)
				}
				cost, err := am.PathCost(path)
				if err != nil || cost != res.Dist[v] {
					t.Fatalf("seed %d: PathCost(%v) = %d, %v; want %d", seed, path, cost, err, res.Dist[v])
				}
			}
		}
	}
}

func TestDijkstra_GridUnitCosts(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Grid(4, 5))
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	am, err := matrix.NewAdjacencyMatrix(g)
	if err != nil {
		t.Fatalf("NewAdjacencyMatrix: %v", err)
	}
	res, err := dijkstra.Dijkstra(am, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	// Unit costs on a grid: distance is the Manhattan distance.
	for r := 0; r < 4; r++ {
		for c := 0; c < 5; c++ {
			if d := res.Dist[r*5+c]; d != int64(r+c) {
				t.Errorf("Dist[%d,%d] = %d, want %d", r, c, d, r+c)
			}
		}
	}
}

func TestResult_PathToOutOfRange(t *testing.T) {
	am := referenceMatrix(t)
	res, _ := dijkstra.Dijkstra(am, idxA)
	if _, err := res.PathTo(am.Size()); !errors.Is(err, dijkstra.ErrIndexOutOfRange) {
		t.Fatalf("Expected ErrIndexOutOfRange, got %v", err)
	}
	if res.Reachable(-1) || res.Final(-1) {
		t.Fatalf("negative index must be neither reachable nor final")
	}
}
