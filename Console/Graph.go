package Console

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/g-m-twostay/dslab/Graphs"
	"github.com/rs/zerolog"
)

var ErrBadGraph = errors.New("bad graph description")

// RunGraph reads "V E" followed by E pairs of vertices, then prints the
// adjacency matrix, the adjacency lists, both traversals and the
// distances from vertex 0.
func RunGraph(in io.Reader, out io.Writer, log zerolog.Logger) error {
	r := NewReader(in)
	var hdr [2]int
	if err := r.Ints(hdr[:]); err != nil {
		return fmt.Errorf("reading header: %w", err)
	}
	if hdr[0] < 0 || hdr[1] < 0 {
		return fmt.Errorf("%w: %d vertices, %d edges", ErrBadGraph, hdr[0], hdr[1])
	}
	mt, ls := Graphs.NewMatrix(hdr[0]), Graphs.NewList(hdr[0])
	for i := range hdr[1] {
		var e [2]int
		if err := r.Ints(e[:]); err != nil {
			return fmt.Errorf("reading edge %d: %w", i, err)
		}
		if err := errors.Join(mt.AddEdge(e[0], e[1]), ls.AddEdge(e[0], e[1])); err != nil {
			return fmt.Errorf("edge %d: %w", i, err)
		}
	}
	log.Debug().Int("vertices", hdr[0]).Int("edges", hdr[1]).Msg("graph loaded")

	fmt.Fprintln(out, mt)
	fmt.Fprintln(out, ls)
	if hdr[0] == 0 {
		return nil
	}
	bfs, _ := Graphs.BFS(ls, 0)
	dfs, _ := Graphs.DFS(ls, 0)
	dist, _ := Graphs.Distances(ls, 0)
	fmt.Fprintf(out, "BFS Traversal: %s\n", joinInts(bfs))
	fmt.Fprintf(out, "DFS Traversal: %s\n", joinInts(dfs))
	fmt.Fprintln(out, "Distance from Node 0")
	for v, d := range dist {
		fmt.Fprintf(out, "Node %d: %d\n", v, d)
	}
	return nil
}

func joinInts(vs []int) string {
	ss := make([]string, len(vs))
	for i, v := range vs {
		ss[i] = strconv.Itoa(v)
	}
	return strings.Join(ss, " ")
}
