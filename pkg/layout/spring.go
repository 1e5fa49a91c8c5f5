package layout

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/graphplot/graphplot/pkg/graph"
)

// SpringOptions configures the force-directed [Spring] layout.
type SpringOptions struct {
	// Iterations is the number of simulation steps (default 50).
	Iterations int
	// K is the optimal node distance. Zero means 1/sqrt(n).
	K float64
	// Seed drives the random initial placement.
	Seed uint64
	// Initial provides starting positions for some or all nodes;
	// missing nodes start at seeded random points.
	Initial Positions
	// Fixed pins the listed nodes at their Initial position.
	Fixed []string
}

// Spring computes a Fruchterman-Reingold force-directed layout.
// Nodes repel each other with force k²/d and edges attract with d²/k;
// displacement per step is capped by a linearly cooling temperature.
// Output is rescaled to the [-1,1] square unless nodes are fixed.
func Spring(g *graph.Graph, opts SpringOptions) Positions {
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

	iterations := opts.Iterations
	if iterations <= 0 {
		iterations = 50
	}
	k := opts.K
	if k <= 0 {
		k = 1 / math.Sqrt(float64(n))
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	for _, id := range nodes {
		if p, ok := opts.Initial[id]; ok {
			pos[id] = p
			continue
		}
		pos[id] = Point{X: rng.Float64(), Y: rng.Float64()}
	}
	fixed := make(map[string]bool, len(opts.Fixed))
	for _, id := range opts.Fixed {
		fixed[id] = true
	}

	// linear cooling from a tenth of the frame down to zero
	temp := 0.1
	dt := temp / float64(iterations+1)

	disp := make(map[string]Point, n)
	for iter := 0; iter < iterations; iter++ {
		for _, id := range nodes {
			disp[id] = Point{}
		}

		// repulsion between all pairs
		for i, a := range nodes {
			for _, b := range nodes[i+1:] {
				dx := pos[a].X - pos[b].X
				dy := pos[a].Y - pos[b].Y
				d := math.Hypot(dx, dy)
				if d < 1e-9 {
					d = 1e-9
					dx = 1e-9
				}
				f := k * k / (d * d)
				disp[a] = Point{X: disp[a].X + dx*f, Y: disp[a].Y + dy*f}
				disp[b] = Point{X: disp[b].X - dx*f, Y: disp[b].Y - dy*f}
			}
		}

		// attraction along edges
		for _, e := range g.Edges() {
			if e.From == e.To {
				continue
			}
			dx := pos[e.From].X - pos[e.To].X
			dy := pos[e.From].Y - pos[e.To].Y
			d := math.Hypot(dx, dy)
			if d < 1e-9 {
				continue
			}
			f := d / k
			fx, fy := dx/d*f, dy/d*f
			disp[e.From] = Point{X: disp[e.From].X - fx, Y: disp[e.From].Y - fy}
			disp[e.To] = Point{X: disp[e.To].X + fx, Y: disp[e.To].Y + fy}
		}

		for _, id := range nodes {
			if fixed[id] {
				continue
			}
			d := math.Hypot(disp[id].X, disp[id].Y)
			if d < 1e-9 {
				continue
			}
			step := math.Min(d, temp)
			pos[id] = Point{
				X: pos[id].X + disp[id].X/d*step,
				Y: pos[id].Y + disp[id].Y/d*step,
			}
		}
		temp -= dt
	}

	if len(fixed) > 0 {
		return pos
	}
	return Rescale(pos, DefaultScale)
}
