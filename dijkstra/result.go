package dijkstra

import "fmt"

// DistanceTo returns the least cost to target and whether it is reachable.
func (res *Result) DistanceTo(target int) (int64, bool) {
	if target < 0 || target >= len(res.Dist) {
		return Infinity, false
	}
	d := res.Dist[target]

	return d, d != Infinity
}

// Reachable reports whether target has a finite distance.
func (res *Result) Reachable(target int) bool {
	_, ok := res.DistanceTo(target)

	return ok
}

// Final reports whether target's distance is settled. After a full run every
// node is final; after WithStopAtTarget only the nodes settled up to the
// target are.
func (res *Result) Final(target int) bool {
	return target >= 0 && target < len(res.final) && res.final[target]
}

// PathTo rebuilds the path from Source to target by walking Prev backwards
// and reversing. Unreachable targets yield an empty, non-nil slice.
//
// Complexity: O(path length).
func (res *Result) PathTo(target int) ([]int, error) {
	n := len(res.Dist)
	if target < 0 || target >= n {
		return nil, fmt.Errorf("%w: target=%d, size=%d", ErrIndexOutOfRange, target, n)
	}
	if res.Dist[target] == Infinity {
		return []int{}, nil
	}

	// Walk backwards; a simple path never has more than n nodes.
	path := make([]int, 0, n)
	for v := target; v != NoPredecessor; v = res.Prev[v] {
		path = append(path, v)
		if len(path) > n {
			return nil, fmt.Errorf("dijkstra: predecessor cycle at %d", v)
		}
	}

	// Reverse in place so the path starts at Source.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
