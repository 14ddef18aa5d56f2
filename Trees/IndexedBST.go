package Trees

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"golang.org/x/exp/constraints"
)

// IndexedBST is an unbalanced binary search tree with no repeated keys.
// Every node keeps a back-reference to its parent and the number of
// edges from the root recorded when it was inserted.
// K is the type of the keys, S is the type of the handles addressing
// nodes in the arena. Handle 0 is never a node. Handles of live nodes are
// stable; a removed node's handle is recycled by later insertions.
// The depth of a node is set once at insertion. When a node with a single
// child is removed, every node of the promoted subtree has its depth
// decreased by one; no other depth is touched.
// This implementation is not safe for concurrent use.
type IndexedBST[K constraints.Integer, S constraints.Unsigned] struct {
	base[K, S]
	sz S
}

var _ Tree[int, uint32] = (*IndexedBST[int, uint32])(nil)

// New returns an empty tree with room for hint nodes.
func New[K constraints.Integer, S constraints.Unsigned](hint S) *IndexedBST[K, S] {
	return &IndexedBST[K, S]{base: base[K, S]{ifs: make([]info[K, S], 1, int(hint)+1)}}
}

// Size returns the size of the tree.
// Time: O(1); Space: O(1)
func (u *IndexedBST[K, S]) Size() uint {
	return uint(u.sz)
}

// Clear the tree. Doesn't allocate new arrays.
func (u *IndexedBST[K, S]) Clear() {
	u.clrIfs()
	u.sz = 0
}

// Insert [Tree.Insert]. A key already in the tree is rejected with ErrDuplicateKey.
// The new node's depth is the number of edges walked from the root.
// Time: O(D)
func (u *IndexedBST[K, S]) Insert(k K) (S, error) {
	var parI S
	d := 0
	for curI := u.root; curI != 0; d++ {
		cur := &u.ifs[curI]
		if k == cur.k {
			return 0, fmt.Errorf("%w: %d", ErrDuplicateKey, k)
		}
		parI = curI
		if cur.k > k {
			curI = cur.l
		} else {
			curI = cur.r
		}
	}
	n, err := u.alloc()
	if err != nil {
		return 0, err
	}
	u.ifs[n] = info[K, S]{k: k, p: parI, d: d}
	switch {
	case parI == 0:
		u.root = n
	case u.ifs[parI].k > k:
		u.ifs[parI].l = n
	default:
		u.ifs[parI].r = n
	}
	u.sz++
	return n, nil
}

// Search [Tree.Search]
// Time: O(D); Space: O(1)
func (u *IndexedBST[K, S]) Search(k K) (S, bool) {
	for curI := u.root; curI != 0; {
		if cur := &u.ifs[curI]; k < cur.k {
			curI = cur.l
		} else if k == cur.k {
			return curI, true
		} else {
			curI = cur.r
		}
	}
	return 0, false
}

// Has [Tree.Has]
func (u *IndexedBST[K, S]) Has(k K) bool {
	_, has := u.Search(k)
	return has
}

// Key held by the node n. n must be a live handle.
func (u *IndexedBST[K, S]) Key(n S) K {
	return u.ifs[n].k
}

// find is Search with the failure spelled out.
func (u *IndexedBST[K, S]) find(k K) (S, error) {
	if u.root == 0 {
		return 0, ErrEmptyTree
	}
	if n, has := u.Search(k); has {
		return n, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrKeyNotFound, k)
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *IndexedBST[K, S]) Minimum() (K, bool) {
	if u.root == 0 {
		return *new(K), false
	}
	return u.ifs[u.leftmost(u.root)].k, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *IndexedBST[K, S]) Maximum() (K, bool) {
	curI := u.root
	if curI == 0 {
		return *new(K), false
	}
	for u.ifs[curI].r != 0 {
		curI = u.ifs[curI].r
	}
	return u.ifs[curI].k, true
}

// InOrder [Tree.InOrder]
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *IndexedBST[K, S]) InOrder() func() (K, bool) {
	st := arraystack.New()
	for curI := u.root; curI != 0; curI = u.ifs[curI].l {
		st.Push(curI)
	}
	return func() (k K, has bool) {
		top, ok := st.Pop()
		if !ok {
			return
		}
		curI := top.(S)
		for next := u.ifs[curI].r; next != 0; next = u.ifs[next].l {
			st.Push(next)
		}
		return u.ifs[curI].k, true
	}
}

// Walk the keys in ascending order until f returns false. Recursive.
func (u *IndexedBST[K, S]) Walk(f func(K) bool) {
	u.inOrder(u.root, func(i S) bool {
		return f(u.ifs[i].k)
	})
}

// Keys in ascending order.
func (u *IndexedBST[K, S]) Keys() []K {
	ks := make([]K, 0, u.sz)
	u.Walk(func(k K) bool {
		ks = append(ks, k)
		return true
	})
	return ks
}

// Neighbors of the node holding k.
func (u *IndexedBST[K, S]) Neighbors(k K) (Neighbors[K], error) {
	n, err := u.find(k)
	if err != nil {
		return Neighbors[K]{}, err
	}
	return u.neighbors(n), nil
}

// DepthOf returns the depth stored in the node holding k.
func (u *IndexedBST[K, S]) DepthOf(k K) (int, error) {
	n, err := u.find(k)
	if err != nil {
		return 0, err
	}
	return u.ifs[n].d, nil
}

// Extrema returns the minimum of the tree and the last node reached by
// walking right from the root while the current key is below bound.
// hi is the root's key when the root's key isn't below bound.
// Time: O(D); Space: O(1)
func (u *IndexedBST[K, S]) Extrema(bound K) (lo, hi K, err error) {
	if u.root == 0 {
		return lo, hi, ErrEmptyTree
	}
	maxI := u.root
	for u.ifs[maxI].r != 0 && u.ifs[maxI].k < bound {
		maxI = u.ifs[maxI].r
	}
	return u.ifs[u.leftmost(u.root)].k, u.ifs[maxI].k, nil
}

// remove k from the subtree rooting at curI recursively. Returns the
// new root of the subtree and whether a node was removed.
// A node with two children takes the key of its in-order successor,
// and the successor is then removed from the right subtree the same way.
func (u *IndexedBST[K, S]) remove(curI S, k K) (S, bool) {
	if curI == 0 {
		return 0, false
	}
	cur := &u.ifs[curI]
	deleted := false
	if k < cur.k {
		cur.l, deleted = u.remove(cur.l, k)
	} else if k > cur.k {
		cur.r, deleted = u.remove(cur.r, k)
	} else if cur.l != 0 && cur.r != 0 {
		cur.k = u.ifs[u.leftmost(cur.r)].k
		cur.r, deleted = u.remove(cur.r, cur.k)
	} else {
		c := cur.l
		if c == 0 {
			c = cur.r
		}
		if c != 0 {
			u.ifs[c].p = cur.p
			u.decDepth(c)
		}
		u.addFree(curI)
		u.sz--
		return c, true
	}
	return curI, deleted
}

// Delete [Tree.Delete]. Recursive.
// Deleting an absent key does nothing.
// Time: O(D) plus the size of the promoted subtree.
func (u *IndexedBST[K, S]) Delete(k K) bool {
	var deleted bool
	u.root, deleted = u.remove(u.root, k)
	return deleted
}

// LCA returns the key of the shared parent reached by lifting the deeper
// of the two nodes until both depths are equal, then lifting both
// together until their parents agree. A query where either key is the
// root's key fails with ErrInvalidLCAQuery. When one node is an ancestor
// of the other, the result is that ancestor's parent.
// Depths are the stored ones, so the result follows Insert and Delete's
// depth bookkeeping.
// Time: O(D); Space: O(1)
func (u *IndexedBST[K, S]) LCA(a, b K) (K, error) {
	if u.root == 0 {
		return 0, ErrEmptyTree
	}
	if rk := u.ifs[u.root].k; a == rk || b == rk {
		return 0, ErrInvalidLCAQuery
	}
	ai, err := u.find(a)
	if err != nil {
		return 0, err
	}
	bi, err := u.find(b)
	if err != nil {
		return 0, err
	}
	for u.ifs[ai].d != u.ifs[bi].d {
		if u.ifs[ai].d > u.ifs[bi].d {
			ai = u.ifs[ai].p
		} else {
			bi = u.ifs[bi].p
		}
		if ai == 0 || bi == 0 {
			return 0, ErrNoCommonAncestor
		}
	}
	for u.ifs[ai].p != u.ifs[bi].p {
		ai, bi = u.ifs[ai].p, u.ifs[bi].p
		if ai == 0 || bi == 0 {
			return 0, ErrNoCommonAncestor
		}
	}
	if u.ifs[ai].p == 0 {
		return 0, ErrNoCommonAncestor
	}
	return u.ifs[u.ifs[ai].p].k, nil
}

// Corrupt [Tree.Corrupt]
// Checks the key order, the parent links, the stored depths, and the size.
// Time: O(n)
func (u *IndexedBST[K, S]) Corrupt() bool {
	if u.ifs[0] != (info[K, S]{}) {
		return true
	}
	if u.root != 0 && (u.ifs[u.root].p != 0 || u.ifs[u.root].d != 0) {
		return true
	}
	var cnt S
	var corrupt func(curI S, lo, hi *K) bool
	corrupt = func(curI S, lo, hi *K) bool {
		if curI == 0 {
			return false
		}
		cnt++
		cur := u.ifs[curI]
		if (lo != nil && cur.k <= *lo) || (hi != nil && cur.k >= *hi) {
			return true
		}
		for _, c := range [2]S{cur.l, cur.r} {
			if c != 0 && (u.ifs[c].p != curI || u.ifs[c].d != cur.d+1) {
				return true
			}
		}
		return corrupt(cur.l, lo, &cur.k) || corrupt(cur.r, &cur.k, hi)
	}
	return corrupt(u.root, nil, nil) || cnt != u.sz
}
