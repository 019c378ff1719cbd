// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/netpath/core"
)

// Sentinel errors for network definitions. All wrap core.ErrInvalidArgument.
var (
	ErrEmptyLabel     = fmt.Errorf("network: empty node label: %w", core.ErrInvalidArgument)
	ErrDuplicateLabel = fmt.Errorf("network: duplicate node label: %w", core.ErrInvalidArgument)
	ErrUnknownLabel   = fmt.Errorf("network: link references unknown node: %w", core.ErrInvalidArgument)
)

// Definition is the YAML file structure of a network.
type Definition struct {
	Name  string     `yaml:"name,omitempty"`
	Nodes []string   `yaml:"nodes"`
	Links []LinkYAML `yaml:"links"`
}

// LinkYAML is one undirected link between two labeled nodes.
type LinkYAML struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
	Cost int64  `yaml:"cost"`
}

// LoadYAML reads and parses a definition file.
func LoadYAML(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return ParseYAML(data)
}

// ParseYAML parses a definition from YAML bytes. Structural validation happens in Build.
func ParseYAML(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return &def, nil
}

// Encode renders the definition back to YAML.
func (d *Definition) Encode() ([]byte, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}

	return data, nil
}

// Build registers the nodes in file order and applies every link.
// Labels must be non-empty and unique within a definition.
func (d *Definition) Build() (*core.Graph, error) {
	g := core.NewGraph()
	index := make(map[string]core.NodeID, len(d.Nodes))

	for _, label := range d.Nodes {
		if label == "" {
			return nil, fmt.Errorf("Build(%s): %w", d.Name, ErrEmptyLabel)
		}
		if _, dup := index[label]; dup {
			return nil, fmt.Errorf("Build(%s): %q: %w", d.Name, label, ErrDuplicateLabel)
		}
		index[label] = g.RegisterNode(label).ID
	}

	for k, link := range d.Links {
		from, ok := index[link.From]
		if !ok {
			return nil, fmt.Errorf("Build(%s): links[%d].from %q: %w", d.Name, k, link.From, ErrUnknownLabel)
		}
		to, ok := index[link.To]
		if !ok {
			return nil, fmt.Errorf("Build(%s): links[%d].to %q: %w", d.Name, k, link.To, ErrUnknownLabel)
		}
		if _, err := g.Link(from, to, link.Cost); err != nil {
			return nil, fmt.Errorf("Build(%s): links[%d] %s-%s: %w", d.Name, k, link.From, link.To, err)
		}
	}

	return g, nil
}

// FromGraph describes g as a Definition. Each undirected link is listed once,
// oriented from the lower id to the higher, in Edges() order.
func FromGraph(name string, g *core.Graph) *Definition {
	labels := g.Labels()
	def := &Definition{Name: name, Nodes: labels}
	for _, e := range g.Edges() {
		if e.From > e.To {
			continue
		}
		def.Links = append(def.Links, LinkYAML{From: labels[e.From], To: labels[e.To], Cost: e.Cost})
	}

	return def
}
