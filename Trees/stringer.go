package Trees

import (
	"fmt"
	"strings"
)

// String returns the tree drawn sideways, right subtree on top, each
// node shown with its stored depth.
// Should not be used to print out large trees.
func (u *IndexedBST[K, S]) String() string {
	if u == nil || u.root == 0 {
		return "────┤ empty"
	}
	var sb strings.Builder
	u.print(&sb, u.root, "", false, true)
	return sb.String()
}

func (u *IndexedBST[K, S]) print(sb *strings.Builder, curI S, prefix string, tail, isRoot bool) {
	cur := u.ifs[curI]
	if cur.r != 0 {
		u.print(sb, cur.r, rightNodePrefix(prefix, tail), false, false)
	}
	fmt.Fprintf(sb, "%s─┤ %d (depth %d)\n", perf(prefix, isRoot, tail), cur.k, cur.d)
	if cur.l != 0 {
		u.print(sb, cur.l, leftNodePrefix(prefix, tail, isRoot), true, false)
	}
}

func perf(prefix string, isRoot bool, tail bool) string {
	if isRoot {
		return prefix + "───"
	} else if tail {
		return prefix + "└──"
	}
	return prefix + "┌──"
}

func rightNodePrefix(prefix string, tail bool) string {
	if tail {
		return prefix + "│\t"
	}
	return prefix + "\t"
}

func leftNodePrefix(prefix string, tail bool, isRoot bool) string {
	if tail || isRoot {
		return prefix + "\t"
	}
	return prefix + "│\t"
}
