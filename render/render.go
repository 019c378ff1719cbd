// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/netpath/core"
	"github.com/katalvlaran/netpath/dijkstra"
	"github.com/katalvlaran/netpath/matrix"
)

// Text fragments shared by the writers.
const (
	headerIndent = "     "
	noPath       = "No path found"
	hopArrow     = " -> "
)

var (
	// ErrUnknownLabel is returned by WriteQuery when a label is not in the matrix.
	ErrUnknownLabel = fmt.Errorf("render: unknown node label: %w", core.ErrInvalidArgument)

	// ErrNilMatrix is returned when a nil *matrix.AdjacencyMatrix is passed in.
	ErrNilMatrix = fmt.Errorf("render: adjacency matrix is nil: %w", core.ErrInvalidArgument)
)

// WriteMatrix writes a header of labels followed by one bracketed row per node.
// Complexity: O(N²).
func WriteMatrix(w io.Writer, am *matrix.AdjacencyMatrix) error {
	if am == nil {
		return fmt.Errorf("WriteMatrix: %w", ErrNilMatrix)
	}

	var sb strings.Builder
	labels := am.Labels()

	// 1) Header.
	sb.WriteString(headerIndent)
	for _, l := range labels {
		fmt.Fprintf(&sb, " %s ", l)
	}
	sb.WriteByte('\n')

	// 2) Rows.
	for i, row := range am.Rows() {
		fmt.Fprintf(&sb, " %s | [", labels[i])
		for _, c := range row {
			fmt.Fprintf(&sb, " %d,", c)
		}
		sb.WriteString(" ]\n")
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

// WritePath writes path as "X [c] -> Y [c] -> Z (Cost: total)", pricing every
// hop from am. An empty path writes "No path found".
// Complexity: O(len(path)).
func WritePath(w io.Writer, am *matrix.AdjacencyMatrix, path []int) error {
	if am == nil {
		return fmt.Errorf("WritePath: %w", ErrNilMatrix)
	}
	line, err := formatPath(am, path)
	if err != nil {
		return fmt.Errorf("WritePath: %w", err)
	}
	_, err = io.WriteString(w, line+"\n")

	return err
}

// WriteQuery resolves from/to labels, runs the shortest-path search and writes
// "Shortest path from [from -> to] : " followed by the WritePath line.
// Unknown labels fail with ErrUnknownLabel before anything is written.
func WriteQuery(w io.Writer, am *matrix.AdjacencyMatrix, from, to string, opts ...dijkstra.Option) error {
	if am == nil {
		return fmt.Errorf("WriteQuery: %w", ErrNilMatrix)
	}
	src, ok := am.IndexOf(from)
	if !ok {
		return fmt.Errorf("WriteQuery: from %q: %w", from, ErrUnknownLabel)
	}
	dst, ok := am.IndexOf(to)
	if !ok {
		return fmt.Errorf("WriteQuery: to %q: %w", to, ErrUnknownLabel)
	}

	path, err := dijkstra.ShortestPath(am, src, dst, opts...)
	if err != nil {
		return fmt.Errorf("WriteQuery(%s→%s): %w", from, to, err)
	}
	line, err := formatPath(am, path)
	if err != nil {
		return fmt.Errorf("WriteQuery(%s→%s): %w", from, to, err)
	}

	_, err = fmt.Fprintf(w, "Shortest path from [%s -> %s] : %s\n", from, to, line)

	return err
}

// formatPath renders one path line without a trailing newline.
func formatPath(am *matrix.AdjacencyMatrix, path []int) (string, error) {
	if len(path) == 0 {
		return noPath, nil
	}

	labels := am.Labels()
	var (
		sb    strings.Builder
		total int64
	)
	for k := 0; k < len(path)-1; k++ {
		u, v := path[k], path[k+1]
		c, err := am.At(u, v)
		if err != nil {
			return "", fmt.Errorf("hop %d: %w", k, err)
		}
		if c <= matrix.NoEdge {
			return "", fmt.Errorf("%s→%s: %w", labels[u], labels[v], matrix.ErrNoEdge)
		}
		total += c
		fmt.Fprintf(&sb, "%s [%d]%s", labels[u], c, hopArrow)
	}

	last, err := am.Label(path[len(path)-1])
	if err != nil {
		return "", err
	}
	fmt.Fprintf(&sb, "%s (Cost: %d)", last, total)

	return sb.String(), nil
}
