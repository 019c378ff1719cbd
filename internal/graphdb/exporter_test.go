package graphdb

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netpath/core"
	"github.com/katalvlaran/netpath/network"
)

func TestExporter_Export(t *testing.T) {
	mem := NewMemoryClient()
	exp := NewExporter(mem)

	g, err := network.Reference()
	require.NoError(t, err)
	require.NoError(t, exp.Export(context.Background(), "reference", g))

	calls := mem.WriteCalls()
	require.Len(t, calls, 3)
	require.True(t, strings.Contains(calls[0].Query, "DETACH DELETE"))
	require.Equal(t, "reference", calls[0].Params["network"])

	nodes, ok := calls[1].Params["nodes"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, nodes, 12)
	require.Equal(t, map[string]any{"idx": int64(1), "label": "B"}, nodes[1])

	links, ok := calls[2].Params["links"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, links, 21, "one relationship per undirected pair")
	require.Equal(t, map[string]any{"a": int64(0), "b": int64(1), "cost": int64(3)}, links[0])
	for _, l := range links {
		require.Less(t, l["a"].(int64), l["b"].(int64))
	}
}

func TestExporter_ExportValidation(t *testing.T) {
	client := NewMemoryClient()
	exp := NewExporter(client)

	err := exp.Export(context.Background(), "", core.NewGraph())
	require.ErrorIs(t, err, ErrEmptyName)
	require.ErrorIs(t, err, core.ErrInvalidArgument)

	err = exp.Export(context.Background(), "x", nil)
	require.ErrorIs(t, err, ErrNilGraph)
	require.ErrorIs(t, err, core.ErrInvalidArgument)

	require.Empty(t, client.WriteCalls(), "invalid arguments never reach the database")
}

func TestExporter_ExportPropagatesErrors(t *testing.T) {
	boom := errors.New("bolt down")
	exp := NewExporter(NewMemoryClient().WithError(boom))

	err := exp.Export(context.Background(), "x", core.NewGraph())
	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), "clear")
}

func TestExporter_Import(t *testing.T) {
	mem := NewMemoryClient()
	mem.PushReadResult(Result{Records: []Record{
		{"idx": int64(0), "label": "A"},
		{"idx": int64(1), "label": "B"},
		{"idx": int64(2), "label": "C"},
	}})
	mem.PushReadResult(Result{Records: []Record{
		{"a": int64(0), "b": int64(1), "cost": int64(3)},
		{"a": 1, "b": 2, "cost": 4},
	}})

	g, err := NewExporter(mem).Import(context.Background(), "tri")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, g.Labels())
	c, ok := g.Cost(2, 1)
	require.True(t, ok)
	require.Equal(t, int64(4), c)

	reads := mem.ReadCalls()
	require.Len(t, reads, 2)
	require.Equal(t, "tri", reads[1].Params["network"])
}

func TestExporter_ImportErrors(t *testing.T) {
	mem := NewMemoryClient()
	_, err := NewExporter(mem).Import(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNetworkNotFound)

	mem = NewMemoryClient()
	mem.PushReadResult(Result{Records: []Record{{"idx": "zero", "label": "A"}}})
	_, err = NewExporter(mem).Import(context.Background(), "bad")
	require.ErrorContains(t, err, `field "idx"`)

	mem = NewMemoryClient()
	mem.PushReadResult(Result{Records: []Record{{"idx": int64(0), "label": "A"}, {"idx": int64(1), "label": "B"}}})
	mem.PushReadResult(Result{Records: []Record{{"a": int64(0), "b": int64(1), "cost": int64(0)}}})
	_, err = NewExporter(mem).Import(context.Background(), "zero")
	require.ErrorIs(t, err, core.ErrBadCost)
}

func TestNewNeo4jClient_MissingURI(t *testing.T) {
	_, err := NewNeo4jClient(context.Background(), Options{})
	require.ErrorIs(t, err, ErrMissingURI)
}
