package Trees

import "golang.org/x/exp/constraints"

// Neighbors of a node: its structural parent and children.
// A field is meaningful only if the matching Has flag is true.
type Neighbors[K constraints.Integer] struct {
	Parent, Left, Right          K
	HasParent, HasLeft, HasRight bool
}

// neighbors of the node at curI. curI must not be 0.
func (u *base[K, S]) neighbors(curI S) (n Neighbors[K]) {
	cur := u.ifs[curI]
	if cur.p != 0 {
		n.Parent, n.HasParent = u.ifs[cur.p].k, true
	}
	if cur.l != 0 {
		n.Left, n.HasLeft = u.ifs[cur.l].k, true
	}
	if cur.r != 0 {
		n.Right, n.HasRight = u.ifs[cur.r].k, true
	}
	return
}
