package Graphs

import (
	"strings"
)

// Matrix is a Graph stored as an adjacency matrix. Neighbors are in
// ascending order.
type Matrix struct {
	adj [][]byte
}

func NewMatrix(n int) *Matrix {
	adj := make([][]byte, n)
	for i := range adj {
		adj[i] = make([]byte, n)
	}
	return &Matrix{adj}
}

func (u *Matrix) Order() int {
	return len(u.adj)
}

func (u *Matrix) AddEdge(a, b int) error {
	if err := checkVertex(u, a, b); err != nil {
		return err
	}
	u.adj[a][b], u.adj[b][a] = 1, 1
	return nil
}

func (u *Matrix) Neighbors(a int) (ns []int) {
	for i, e := range u.adj[a] {
		if e != 0 {
			ns = append(ns, i)
		}
	}
	return
}

// String prints one row of the matrix per line.
func (u *Matrix) String() string {
	var sb strings.Builder
	for _, row := range u.adj {
		for _, e := range row {
			sb.WriteByte('0' + e)
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
