package layout

import (
	"math"

	"github.com/graphplot/graphplot/pkg/graph"
)

// Circular places nodes evenly around a circle of radius [DefaultScale],
// in node insertion order starting at angle 0.
// A single node goes to the origin; an empty graph yields empty positions.
func Circular(g *graph.Graph) Positions {
	nodes := g.Nodes()
	pos := make(Positions, len(nodes))
	if len(nodes) == 0 {
		return pos
	}
	if len(nodes) == 1 {
		pos[nodes[0]] = Point{}
		return pos
	}
	step := 2 * math.Pi / float64(len(nodes))
	for i, id := range nodes {
		theta := float64(i) * step
		pos[id] = Point{X: DefaultScale * math.Cos(theta), Y: DefaultScale * math.Sin(theta)}
	}
	return pos
}

// Shell places nodes on concentric circles. Each entry of nlist is one
// shell, innermost first; nodes not mentioned are appended to the outermost
// shell. A nil nlist puts every node on a single shell, which matches
// [Circular]. A first shell containing a single node is placed at the origin.
func Shell(g *graph.Graph, nlist [][]string) Positions {
	nodes := g.Nodes()
	pos := make(Positions, len(nodes))
	if len(nodes) == 0 {
		return pos
	}
	if len(nlist) == 0 {
		return Circular(g)
	}

	shells := make([][]string, len(nlist))
	placed := map[string]bool{}
	for i, shell := range nlist {
		shells[i] = append([]string(nil), shell...)
		for _, id := range shell {
			placed[id] = true
		}
	}
	for _, id := range nodes {
		if !placed[id] {
			shells[len(shells)-1] = append(shells[len(shells)-1], id)
		}
	}

	// radius grows linearly per shell; a lone innermost node sits at center
	radius := 0.0
	if len(shells[0]) > 1 {
		radius = DefaultScale / float64(len(shells))
	}
	step := DefaultScale / float64(len(shells))

	for _, shell := range shells {
		if len(shell) == 0 {
			radius += step
			continue
		}
		angle := 2 * math.Pi / float64(len(shell))
		for i, id := range shell {
			theta := float64(i) * angle
			pos[id] = Point{X: radius * math.Cos(theta), Y: radius * math.Sin(theta)}
		}
		radius += step
	}
	return pos
}
