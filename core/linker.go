// SPDX-License-Identifier: MIT

package core

// Linker chains Link calls from one origin node:
//
//	err := g.From(a).Link(b, 3).Link(c, 2).Err()
//
// The first failure sticks; later calls become no-ops.
type Linker struct {
	g    *Graph
	from NodeID
	err  error
}

// From starts a link chain at id.
func (g *Graph) From(id NodeID) *Linker {
	return &Linker{g: g, from: id}
}

// Link links the origin node to `to` with cost and returns the same Linker.
func (l *Linker) Link(to NodeID, cost int64) *Linker {
	if l.err != nil {
		return l
	}
	_, l.err = l.g.Link(l.from, to, cost)

	return l
}

// Node returns the origin node of the chain.
func (l *Linker) Node() NodeID { return l.from }

// Err returns the first error met by the chain, if any.
func (l *Linker) Err() error { return l.err }
