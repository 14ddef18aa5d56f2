package Trees

import (
	"golang.org/x/exp/constraints"
)

// info is a node in the arena.
// The zero value is meaningful: ifs[0] is the empty sentinel and its
// fields must stay zero.
type info[K constraints.Integer, S constraints.Unsigned] struct {
	k       K
	l, r, p S   // 0 means no such neighbor.
	d       int // edges from the root, set at insertion.
}

type base[K constraints.Integer, S constraints.Unsigned] struct {
	root, free S            // free is the beginning of the linked list that contains all the free indexes; info::l represents next.
	ifs        []info[K, S] // all handles index ifs. len(ifs)=1+live+freed.
}

// addFree index once. The node content is discarded.
func (u *base[K, S]) addFree(a S) {
	u.ifs[a] = info[K, S]{l: u.free}
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[K, S]) popFree() S {
	b := u.free
	u.free = u.ifs[u.free].l
	return b
}

// alloc a zeroed node, reusing freed indexes first. Pointers into ifs taken
// before calling alloc are invalid afterwards.
func (u *base[K, S]) alloc() (S, error) {
	if a := u.popFree(); a != 0 {
		return a, nil
	}
	if uint64(len(u.ifs)) > uint64(^S(0)) {
		return 0, ErrArenaFull
	}
	u.ifs = append(u.ifs, info[K, S]{})
	return S(len(u.ifs) - 1), nil
}

// leftmost node of the subtree rooting at curI.
func (u *base[K, S]) leftmost(curI S) S {
	for u.ifs[curI].l != 0 {
		curI = u.ifs[curI].l
	}
	return curI
}

// decDepth of every node in the subtree rooting at curI by one. Recursive.
func (u *base[K, S]) decDepth(curI S) {
	if curI == 0 {
		return
	}
	u.decDepth(u.ifs[curI].l)
	u.ifs[curI].d--
	u.decDepth(u.ifs[curI].r)
}

// inOrder visits the subtree rooting at curI until f returns false. Recursive.
func (u *base[K, S]) inOrder(curI S, f func(S) bool) bool {
	if curI == 0 {
		return true
	}
	cur := u.ifs[curI]
	return u.inOrder(cur.l, f) && f(curI) && u.inOrder(cur.r, f)
}

func (u *base[K, S]) clrIfs() {
	u.ifs = u.ifs[:1]
	u.root, u.free = 0, 0
}
