package graph

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Generators for small deterministic graphs. Node IDs are decimal strings
// ("0", "1", ...) so generated graphs line up with explicit node and edge
// lists in calling code.

// ID formats an integer node index the way the generators do.
func ID(i int) string { return fmt.Sprintf("%d", i) }

// Path returns the path graph on n nodes: 0-1-2-...-(n-1).
// n = 0 yields the empty graph.
func Path(n int) *Graph {
	return PathInto(New(), n)
}

// PathInto builds the path graph on n nodes into an existing (typically
// empty) graph, preserving its directedness. This mirrors the
// "create_using" parameter of the classic generators.
func PathInto(g *Graph, n int) *Graph {
	for i := 0; i < n; i++ {
		g.AddNode(Node{ID: ID(i)})
	}
	for i := 0; i < n-1; i++ {
		g.AddEdge(Edge{From: ID(i), To: ID(i + 1)})
	}
	return g
}

// Cycle returns the cycle graph on n nodes.
func Cycle(n int) *Graph {
	g := Path(n)
	if n > 2 {
		g.AddEdge(Edge{From: ID(n - 1), To: ID(0)})
	}
	return g
}

// Complete returns the complete graph K_n.
func Complete(n int) *Graph {
	g := New()
	completeInto(g, 0, n)
	return g
}

// completeInto adds nodes [lo, hi) and all edges among them.
func completeInto(g *Graph, lo, hi int) {
	for i := lo; i < hi; i++ {
		g.AddNode(Node{ID: ID(i)})
	}
	for i := lo; i < hi; i++ {
		for j := i + 1; j < hi; j++ {
			g.AddEdge(Edge{From: ID(i), To: ID(j)})
		}
	}
}

// Barbell returns the barbell graph: two complete graphs K_m1 connected by
// a path of m2 nodes. Nodes are numbered 0..m1-1 (left bell), m1..m1+m2-1
// (path), m1+m2..2*m1+m2-1 (right bell). m1 must be at least 2.
func Barbell(m1, m2 int) *Graph {
	g := New()

	completeInto(g, 0, m1)

	// connecting path
	for i := m1; i < m1+m2; i++ {
		g.AddNode(Node{ID: ID(i)})
	}
	for i := m1; i < m1+m2-1; i++ {
		g.AddEdge(Edge{From: ID(i), To: ID(i + 1)})
	}

	completeInto(g, m1+m2, 2*m1+m2)

	// bridge the bells to the path ends (direct bell-to-bell when m2 == 0)
	if m2 > 0 {
		g.AddEdge(Edge{From: ID(m1 - 1), To: ID(m1)})
		g.AddEdge(Edge{From: ID(m1 + m2 - 1), To: ID(m1 + m2)})
	} else {
		g.AddEdge(Edge{From: ID(m1 - 1), To: ID(m1)})
	}
	return g
}

// Cubical returns the platonic cubical graph Q3: 8 nodes, 12 edges.
func Cubical() *Graph {
	g := New()
	edges := [][2]int{
		{0, 1}, {0, 3}, {0, 4},
		{1, 2}, {1, 7},
		{2, 3}, {2, 6},
		{3, 5},
		{4, 5}, {4, 7},
		{5, 6},
		{6, 7},
	}
	for i := 0; i < 8; i++ {
		g.AddNode(Node{ID: ID(i)})
	}
	for _, e := range edges {
		g.AddEdge(Edge{From: ID(e[0]), To: ID(e[1])})
	}
	return g
}

// Grid returns the rows x cols grid graph. Node (r, c) has ID "r*cols+c".
func Grid(rows, cols int) *Graph {
	g := New()
	id := func(r, c int) string { return ID(r*cols + c) }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.AddNode(Node{ID: id(r, c)})
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				g.AddEdge(Edge{From: id(r, c), To: id(r, c+1)})
			}
			if r+1 < rows {
				g.AddEdge(Edge{From: id(r, c), To: id(r+1, c)})
			}
		}
	}
	return g
}

// Gnp returns an Erdos-Renyi random graph: each of the n*(n-1)/2 possible
// edges is present with probability p. The same seed always produces the
// same graph.
func Gnp(n int, p float64, seed uint64) *Graph {
	g := New()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		g.AddNode(Node{ID: ID(i)})
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				g.AddEdge(Edge{From: ID(i), To: ID(j)})
			}
		}
	}
	return g
}
