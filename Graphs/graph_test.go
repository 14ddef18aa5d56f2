package Graphs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// 0 - 1 - 3
// |   |
// 2 --+   4 - 5
var edges = [][2]int{{0, 1}, {0, 2}, {1, 2}, {1, 3}, {4, 5}}

func build(t *testing.T, g Graph) Graph {
	t.Helper()
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	return g
}

func TestTraversals(t *testing.T) {
	for name, g := range map[string]Graph{"matrix": NewMatrix(6), "list": NewList(6)} {
		t.Run(name, func(t *testing.T) {
			g := build(t, g)
			order, err := BFS(g, 0)
			require.NoError(t, err)
			require.Equal(t, []int{0, 1, 2, 3}, order)

			order, err = DFS(g, 0)
			require.NoError(t, err)
			require.Equal(t, []int{0, 1, 2, 3}, order)

			order, err = DFS(g, 3)
			require.NoError(t, err)
			require.Equal(t, []int{3, 1, 0, 2}, order)

			dist, err := Distances(g, 0)
			require.NoError(t, err)
			require.Equal(t, []int{0, 1, 1, 2, -1, -1}, dist)

			order, err = BFS(g, 5)
			require.NoError(t, err)
			require.Equal(t, []int{5, 4}, order)
		})
	}
}

func TestOutOfRange(t *testing.T) {
	for _, g := range []Graph{NewMatrix(3), NewList(3)} {
		require.ErrorIs(t, g.AddEdge(0, 3), ErrVertexOutOfRange)
		require.ErrorIs(t, g.AddEdge(-1, 0), ErrVertexOutOfRange)
		_, err := BFS(g, 3)
		require.ErrorIs(t, err, ErrVertexOutOfRange)
		_, err = DFS(g, -1)
		require.ErrorIs(t, err, ErrVertexOutOfRange)
		_, err = Distances(g, 7)
		require.ErrorIs(t, err, ErrVertexOutOfRange)
	}
}

func TestString(t *testing.T) {
	m := NewMatrix(3)
	require.NoError(t, m.AddEdge(0, 2))
	require.Equal(t, "0 0 1 \n0 0 0 \n1 0 0 \n", m.String())

	l := NewList(3)
	require.NoError(t, l.AddEdge(0, 2))
	require.NoError(t, l.AddEdge(1, 0))
	require.Equal(t, "0-> 2 1 \n1-> 0 \n2-> 0 \n", l.String())
}
