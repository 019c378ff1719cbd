package dijkstra

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/netpath/matrix"
)

// Query is one source→target request in a Batch.
type Query struct {
	Source int
	Target int
}

// Answer is the outcome of one Query. Path is empty and Cost is Infinity when
// the target is unreachable.
type Answer struct {
	Query
	Path []int
	Cost int64
}

// Batch answers queries concurrently on at most workers goroutines
// (workers <= 0 means one per query). Answers come back in query order.
//
// Every query runs its own early-exit search, so results equal those of
// ShortestPath. The first failing query cancels the rest and its error is
// returned; a cancelled ctx stops queries that have not started yet.
//
// Complexity: O(Q·N²) total work, spread over the workers.
func Batch(ctx context.Context, am *matrix.AdjacencyMatrix, queries []Query, workers int) ([]Answer, error) {
	if am == nil {
		return nil, ErrNilMatrix
	}
	n := am.Size()
	for k, q := range queries {
		k, q := k, q
		if q.Source < 0 || q.Source >= n || q.Target < 0 || q.Target >= n {
			return nil, fmt.Errorf("%w: queries[%d]=%d→%d, size=%d", ErrIndexOutOfRange, k, q.Source, q.Target, n)
		}
	}

	answers := make([]Answer, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for k, q := range queries {
		k, q := k, q
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := Dijkstra(am, q.Source, WithStopAtTarget(q.Target))
			if err != nil {
				return fmt.Errorf("queries[%d]: %w", k, err)
			}
			path, err := res.PathTo(q.Target)
			if err != nil {
				return fmt.Errorf("queries[%d]: %w", k, err)
			}
			answers[k] = Answer{Query: q, Path: path, Cost: res.Dist[q.Target]}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return answers, nil
}
