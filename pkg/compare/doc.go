// Package compare provides generic helpers for writing structural Equal methods.
//
// The helpers take care of nil handling and element-wise comparison so Equal methods
// on tree types only state what makes two nodes the same:
//
//	func (n *Node) Equal(other *Node) bool {
//		if eq, done := compare.NilCheck(n, other); !done {
//			return eq
//		}
//
//		return compare.PointersWithEqual(n.Atom, other.Atom, (*Atom).Equal) &&
//			compare.PointersWithEqual(n.Group, other.Group, (*Group).Equal)
//	}
package compare
