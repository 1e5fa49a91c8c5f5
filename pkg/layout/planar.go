package layout

import (
	"math"

	"github.com/graphplot/graphplot/pkg/graph"
)

// Planar computes a straight-line drawing by Tutte's barycentric method:
// a cycle is pinned to a regular polygon as the outer face and every other
// node is iterated to the barycenter of its neighbors. For planar graphs
// whose interior is 3-connected this produces a crossing-free drawing.
// Acyclic graphs (trees, forests) fall back to layered BFS placement.
func Planar(g *graph.Graph) Positions {
	nodes := g.Nodes()
	n := len(nodes)
	pos := make(Positions, n)
	if n == 0 {
		return pos
	}
	if n == 1 {
		pos[nodes[0]] = Point{}
		return pos
	}

	outer := findCycle(g)
	if len(outer) == 0 {
		return layeredBFS(g)
	}

	onOuter := make(map[string]bool, len(outer))
	step := 2 * math.Pi / float64(len(outer))
	for i, id := range outer {
		theta := float64(i) * step
		pos[id] = Point{X: DefaultScale * math.Cos(theta), Y: DefaultScale * math.Sin(theta)}
		onOuter[id] = true
	}
	for _, id := range nodes {
		if !onOuter[id] {
			pos[id] = Point{}
		}
	}

	// Gauss-Seidel iteration of the barycentric equations
	const maxIter = 1000
	const tol = 1e-6
	for iter := 0; iter < maxIter; iter++ {
		var moved float64
		for _, id := range nodes {
			if onOuter[id] {
				continue
			}
			nbs := undirectedNeighbors(g, id)
			if len(nbs) == 0 {
				continue
			}
			var sx, sy float64
			for _, nb := range nbs {
				sx += pos[nb].X
				sy += pos[nb].Y
			}
			next := Point{X: sx / float64(len(nbs)), Y: sy / float64(len(nbs))}
			moved = math.Max(moved, math.Hypot(next.X-pos[id].X, next.Y-pos[id].Y))
			pos[id] = next
		}
		if moved < tol {
			break
		}
	}
	return pos
}

// findCycle returns the node sequence of some cycle, or nil if the graph is
// acyclic. DFS over the undirected structure; the first back edge closes the
// cycle. Node insertion order makes the result deterministic.
func findCycle(g *graph.Graph) []string {
	parent := map[string]string{}
	state := map[string]int{} // 0 unvisited, 1 on stack, 2 done

	var cycle []string
	var dfs func(id, from string) bool
	dfs = func(id, from string) bool {
		state[id] = 1
		for _, nb := range undirectedNeighbors(g, id) {
			if nb == from || nb == id {
				continue
			}
			switch state[nb] {
			case 0:
				parent[nb] = id
				if dfs(nb, id) {
					return true
				}
			case 1:
				// back edge id→nb closes the cycle
				cycle = []string{nb}
				for cur := id; cur != nb; cur = parent[cur] {
					cycle = append(cycle, cur)
				}
				return true
			}
		}
		state[id] = 2
		return false
	}

	for _, id := range g.Nodes() {
		if state[id] == 0 && dfs(id, "") {
			return cycle
		}
	}
	return nil
}

// layeredBFS places acyclic graphs in BFS layers, roots at the top, layers
// spread evenly down the frame.
func layeredBFS(g *graph.Graph) Positions {
	nodes := g.Nodes()
	pos := make(Positions, len(nodes))
	visited := map[string]bool{}
	var layers [][]string

	for _, root := range nodes {
		if visited[root] {
			continue
		}
		visited[root] = true
		frontier := []string{root}
		for depth := 0; len(frontier) > 0; depth++ {
			if depth >= len(layers) {
				layers = append(layers, nil)
			}
			layers[depth] = append(layers[depth], frontier...)
			var next []string
			for _, id := range frontier {
				for _, nb := range undirectedNeighbors(g, id) {
					if !visited[nb] {
						visited[nb] = true
						next = append(next, nb)
					}
				}
			}
			frontier = next
		}
	}

	for d, layer := range layers {
		y := 0.0
		if len(layers) > 1 {
			y = DefaultScale - 2*DefaultScale*float64(d)/float64(len(layers)-1)
		}
		for i, id := range layer {
			x := 0.0
			if len(layer) > 1 {
				x = -DefaultScale + 2*DefaultScale*float64(i)/float64(len(layer)-1)
			}
			pos[id] = Point{X: x, Y: y}
		}
	}
	return pos
}
