package parser

import "github.com/pseudomuto/qfmt/pkg/compare"

// Equal reports whether two documents have the same tree, ignoring positions and
// trailing separators inside groups.
func (d *Document) Equal(other *Document) bool {
	if eq, done := compare.NilCheck(d, other); !done {
		return eq
	}
	return compare.Slices(d.Nodes, other.Nodes, (*Node).Equal)
}

// Equal reports whether two nodes have the same shape and token values.
func (n *Node) Equal(other *Node) bool {
	if eq, done := compare.NilCheck(n, other); !done {
		return eq
	}

	return compare.PointersWithEqual(n.Atom, other.Atom, (*Atom).Equal) &&
		compare.PointersWithEqual(n.Group, other.Group, (*Group).Equal)
}

// Equal compares atom values.
func (a *Atom) Equal(other *Atom) bool {
	return a.Value == other.Value
}

// Equal compares bracket kinds and contents. A trailing `,` or `;` is insignificant.
func (g *Group) Equal(other *Group) bool {
	return g.Delim() == other.Delim() &&
		compare.Slices(g.content(), other.content(), (*Node).Equal)
}

func (g *Group) content() []*Node {
	if n := len(g.Nodes); n > 0 && (g.Nodes[n-1].Is(",") || g.Nodes[n-1].Is(";")) {
		return g.Nodes[:n-1]
	}
	return g.Nodes
}
