package layout

import (
	"math"

	"github.com/graphplot/graphplot/pkg/graph"
)

// Point is a 2D node position in layout space.
type Point struct {
	X, Y float64
}

// Positions maps node IDs to coordinates. Layout functions return positions
// rescaled to the [-Scale, Scale] square centered on the origin unless
// documented otherwise.
type Positions map[string]Point

// DefaultScale is the half-extent of the layout square.
const DefaultScale = 1.0

// Rescale translates positions so their centroid is at the origin and
// scales them uniformly so the largest absolute coordinate equals scale.
// Degenerate inputs (empty, or all points coincident) are returned centered
// without scaling.
func Rescale(pos Positions, scale float64) Positions {
	if len(pos) == 0 {
		return pos
	}
	var cx, cy float64
	for _, p := range pos {
		cx += p.X
		cy += p.Y
	}
	n := float64(len(pos))
	cx /= n
	cy /= n

	var max float64
	for id, p := range pos {
		p.X -= cx
		p.Y -= cy
		pos[id] = p
		max = math.Max(max, math.Max(math.Abs(p.X), math.Abs(p.Y)))
	}
	if max == 0 {
		return pos
	}
	f := scale / max
	for id, p := range pos {
		pos[id] = Point{X: p.X * f, Y: p.Y * f}
	}
	return pos
}

// bfsDistances returns hop distances from src to every reachable node.
func bfsDistances(g *graph.Graph, src string) map[string]int {
	dist := map[string]int{src: 0}
	queue := []string{src}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range undirectedNeighbors(g, cur) {
			if _, seen := dist[nb]; !seen {
				dist[nb] = dist[cur] + 1
				queue = append(queue, nb)
			}
		}
	}
	return dist
}

// undirectedNeighbors treats edges as undirected regardless of graph kind.
// Layout algorithms position directed graphs by their underlying structure.
func undirectedNeighbors(g *graph.Graph, id string) []string {
	if !g.IsDirected() {
		return g.Neighbors(id)
	}
	seen := map[string]bool{}
	var out []string
	for _, e := range g.Edges() {
		switch {
		case e.From == id && !seen[e.To]:
			seen[e.To] = true
			out = append(out, e.To)
		case e.To == id && !seen[e.From]:
			seen[e.From] = true
			out = append(out, e.From)
		}
	}
	return out
}
