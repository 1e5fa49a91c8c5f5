package layout

import (
	"golang.org/x/exp/rand"

	"github.com/graphplot/graphplot/pkg/graph"
)

// Random places nodes uniformly at random in the unit square [0,1) x [0,1).
// The same seed always produces the same positions, node order being
// deterministic.
func Random(g *graph.Graph, seed uint64) Positions {
	rng := rand.New(rand.NewSource(seed))
	nodes := g.Nodes()
	pos := make(Positions, len(nodes))
	for _, id := range nodes {
		pos[id] = Point{X: rng.Float64(), Y: rng.Float64()}
	}
	return pos
}
