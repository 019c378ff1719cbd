package graphdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/netpath/core"
)

// Cypher statements. Nodes are keyed by (network, idx); each undirected pair
// is one :LINK relationship from the lower idx to the higher.
const (
	clearNetworkCypher = `
MATCH (n:NetNode {network: $network})
DETACH DELETE n`

	createNodesCypher = `
UNWIND $nodes AS node
CREATE (:NetNode {network: $network, idx: node.idx, label: node.label})`

	createLinksCypher = `
UNWIND $links AS link
MATCH (a:NetNode {network: $network, idx: link.a})
MATCH (b:NetNode {network: $network, idx: link.b})
CREATE (a)-[:LINK {cost: link.cost}]->(b)`

	readNodesCypher = `
MATCH (n:NetNode {network: $network})
RETURN n.idx AS idx, n.label AS label
ORDER BY n.idx`

	readLinksCypher = `
MATCH (a:NetNode {network: $network})-[r:LINK]->(b:NetNode {network: $network})
RETURN a.idx AS a, b.idx AS b, r.cost AS cost
ORDER BY a, b`
)

var (
	// ErrNetworkNotFound indicates that no nodes exist for the requested network.
	ErrNetworkNotFound = errors.New("graphdb: network not found")

	// ErrEmptyName is returned by Export when the network name is empty.
	ErrEmptyName = fmt.Errorf("graphdb: empty network name: %w", core.ErrInvalidArgument)

	// ErrNilGraph is returned by Export when the graph is nil.
	ErrNilGraph = fmt.Errorf("graphdb: graph is nil: %w", core.ErrInvalidArgument)
)

// Exporter mirrors netpath networks into a property graph database.
type Exporter struct {
	client Client
}

// NewExporter instantiates an Exporter backed by client.
func NewExporter(client Client) *Exporter {
	return &Exporter{client: client}
}

// Export replaces the stored copy of network name with g.
func (e *Exporter) Export(ctx context.Context, name string, g *core.Graph) error {
	if name == "" {
		return fmt.Errorf("Export: %w", ErrEmptyName)
	}
	if g == nil {
		return fmt.Errorf("Export(%s): %w", name, ErrNilGraph)
	}

	nodes := make([]map[string]any, 0, g.NodeCount())
	for _, n := range g.Nodes() {
		nodes = append(nodes, map[string]any{"idx": int64(n.ID), "label": n.Label})
	}
	links := make([]map[string]any, 0, g.EdgeCount()/2)
	for _, edge := range g.Edges() {
		if edge.From > edge.To {
			continue
		}
		links = append(links, map[string]any{"a": int64(edge.From), "b": int64(edge.To), "cost": edge.Cost})
	}

	steps := []struct {
		what   string
		cypher string
		params map[string]any
	}{
		{"clear", clearNetworkCypher, map[string]any{"network": name}},
		{"create nodes", createNodesCypher, map[string]any{"network": name, "nodes": nodes}},
		{"create links", createLinksCypher, map[string]any{"network": name, "links": links}},
	}
	for _, step := range steps {
		if _, err := e.client.ExecuteWrite(ctx, step.cypher, step.params); err != nil {
			return fmt.Errorf("export %s: %s: %w", name, step.what, err)
		}
	}

	return nil
}

// Import rebuilds network name from the database.
func (e *Exporter) Import(ctx context.Context, name string) (*core.Graph, error) {
	params := map[string]any{"network": name}

	nodeRes, err := e.client.ExecuteRead(ctx, readNodesCypher, params)
	if err != nil {
		return nil, fmt.Errorf("import %s: read nodes: %w", name, err)
	}
	if len(nodeRes.Records) == 0 {
		return nil, fmt.Errorf("import %s: %w", name, ErrNetworkNotFound)
	}

	g := core.NewGraph()
	for _, rec := range nodeRes.Records {
		idx, err := intField(rec, "idx")
		if err != nil {
			return nil, fmt.Errorf("import %s: %w", name, err)
		}
		label, _ := rec["label"].(string)
		if n := g.RegisterNode(label); int64(n.ID) != idx {
			return nil, fmt.Errorf("import %s: node index gap at %d", name, idx)
		}
	}

	linkRes, err := e.client.ExecuteRead(ctx, readLinksCypher, params)
	if err != nil {
		return nil, fmt.Errorf("import %s: read links: %w", name, err)
	}
	for _, rec := range linkRes.Records {
		a, errA := intField(rec, "a")
		b, errB := intField(rec, "b")
		cost, errC := intField(rec, "cost")
		if err := errors.Join(errA, errB, errC); err != nil {
			return nil, fmt.Errorf("import %s: %w", name, err)
		}
		if _, err := g.Link(core.NodeID(a), core.NodeID(b), cost); err != nil {
			return nil, fmt.Errorf("import %s: %w", name, err)
		}
	}

	return g, nil
}

// intField reads an integer column; Bolt returns int64, canned results may use int.
func intField(rec Record, key string) (int64, error) {
	switch v := rec[key].(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	default:
		return 0, fmt.Errorf("field %q: unexpected type %T", key, rec[key])
	}
}
