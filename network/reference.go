package network

import (
	"errors"

	"github.com/katalvlaran/netpath/core"
)

// ReferenceName names the built-in network.
const ReferenceName = "reference"

// ReferenceLabels lists the reference network's nodes in id order.
var ReferenceLabels = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L"}

// Reference builds the 12-node reference network:
//
//	A-B=3 A-C=2 B-C=5 B-D=2 B-G=7 C-E=2 C-F=9 D-E=8 D-F=1 E-G=3 F-G=6
//	F-H=7 F-K=8 G-I=6 G-J=9 H-I=7 H-J=2 I-K=4 J-K=6 J-L=4 K-L=5
//
// Links are declared with fluent chains, one chain per origin node.
func Reference() (*core.Graph, error) {
	g := core.NewGraph()

	ids := make([]core.NodeID, len(ReferenceLabels))
	for i, label := range ReferenceLabels {
		ids[i] = g.RegisterNode(label).ID
	}
	a, b, c, d, e, f := ids[0], ids[1], ids[2], ids[3], ids[4], ids[5]
	gg, h, i, j, k, l := ids[6], ids[7], ids[8], ids[9], ids[10], ids[11]

	chains := []*core.Linker{
		g.From(a).Link(b, 3).Link(c, 2),
		g.From(b).Link(c, 5).Link(d, 2).Link(gg, 7),
		g.From(c).Link(e, 2).Link(f, 9),
		g.From(d).Link(e, 8).Link(f, 1),
		g.From(e).Link(gg, 3),
		g.From(f).Link(gg, 6).Link(h, 7).Link(k, 8),
		g.From(gg).Link(i, 6).Link(j, 9),
		g.From(h).Link(i, 7).Link(j, 2),
		g.From(i).Link(k, 4),
		g.From(j).Link(k, 6).Link(l, 4),
		g.From(k).Link(l, 5),
	}

	errs := make([]error, 0, len(chains))
	for _, ch := range chains {
		errs = append(errs, ch.Err())
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return g, nil
}
