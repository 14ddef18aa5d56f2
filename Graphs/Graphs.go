package Graphs

import (
	"errors"
	"fmt"

	"github.com/g-m-twostay/dslab"
	"github.com/g-m-twostay/dslab/Queues"
)

var ErrVertexOutOfRange = errors.New("vertex out of range")

// Graph is an undirected graph over the vertices 0..Order()-1.
// Traversals visit the neighbors of a vertex in the order Neighbors gives them.
type Graph interface {
	//AddEdge between u and v in both directions.
	AddEdge(u, v int) error
	//Order is the number of vertices.
	Order() int
	//Neighbors of u. u must be in range.
	Neighbors(u int) []int
	String() string
}

func checkVertex(g Graph, vs ...int) error {
	for _, v := range vs {
		if v < 0 || v >= g.Order() {
			return fmt.Errorf("%w: %d not in [0, %d)", ErrVertexOutOfRange, v, g.Order())
		}
	}
	return nil
}

// BFS returns the vertices reachable from start in breadth first order.
func BFS(g Graph, start int) ([]int, error) {
	order, _, err := bfs(g, start)
	return order, err
}

// Distances returns the number of edges on a shortest path from start to
// every vertex, -1 for unreachable ones.
func Distances(g Graph, start int) ([]int, error) {
	_, dist, err := bfs(g, start)
	return dist, err
}

func bfs(g Graph, start int) (order, dist []int, err error) {
	if err = checkVertex(g, start); err != nil {
		return
	}
	visited := dslab.NewBitArray(g.Order())
	dist = make([]int, g.Order())
	for i := range dist {
		dist[i] = -1
	}
	q := Queues.MakeArrayQueue[int](uint(g.Order()))
	q.Push(start)
	visited.Up(start)
	dist[start] = 0
	for !q.Empty() {
		cur, _ := q.Pop()
		order = append(order, cur)
		for _, nei := range g.Neighbors(cur) {
			if !visited.Get(nei) {
				visited.Up(nei)
				dist[nei] = dist[cur] + 1
				q.Push(nei)
			}
		}
	}
	return
}

// DFS returns the vertices reachable from start in depth first preorder. Recursive.
func DFS(g Graph, start int) ([]int, error) {
	if err := checkVertex(g, start); err != nil {
		return nil, err
	}
	visited := dslab.NewBitArray(g.Order())
	var order []int
	var dfs func(int)
	dfs = func(cur int) {
		visited.Up(cur)
		order = append(order, cur)
		for _, nei := range g.Neighbors(cur) {
			if !visited.Get(nei) {
				dfs(nei)
			}
		}
	}
	dfs(start)
	return order, nil
}
