package Graphs

import (
	"strconv"
	"strings"
)

// List is a Graph stored as adjacency lists. Neighbors are in the order
// the edges were added; repeated edges are kept.
type List struct {
	adj [][]int
}

func NewList(n int) *List {
	return &List{make([][]int, n)}
}

func (u *List) Order() int {
	return len(u.adj)
}

func (u *List) AddEdge(a, b int) error {
	if err := checkVertex(u, a, b); err != nil {
		return err
	}
	u.adj[a] = append(u.adj[a], b)
	u.adj[b] = append(u.adj[b], a)
	return nil
}

func (u *List) Neighbors(a int) []int {
	return u.adj[a]
}

// String prints "v-> n1 n2 ..." per vertex.
func (u *List) String() string {
	var sb strings.Builder
	for v, ns := range u.adj {
		sb.WriteString(strconv.Itoa(v))
		sb.WriteString("-> ")
		for _, n := range ns {
			sb.WriteString(strconv.Itoa(n))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
