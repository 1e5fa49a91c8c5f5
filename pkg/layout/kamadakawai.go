package layout

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/graphplot/graphplot/pkg/graph"
)

// KamadaKawaiOptions configures the [KamadaKawai] layout.
type KamadaKawaiOptions struct {
	// Iterations bounds the majorization steps (default 200).
	Iterations int
	// Tolerance stops early when the largest position change per step
	// drops below it (default 1e-4).
	Tolerance float64
	// Initial provides starting positions; default is the circular layout.
	Initial Positions
}

// KamadaKawai positions nodes so Euclidean distances approximate
// shortest-path distances, minimizing the weighted stress
// sum_ij w_ij (|x_i - x_j| - d_ij)² with w_ij = 1/d_ij² by SMACOF-style
// majorization. Disconnected node pairs are assigned the graph's
// diameter + 1 as their target distance.
func KamadaKawai(g *graph.Graph, opts KamadaKawaiOptions) Positions {
	nodes := g.Nodes()
	n := len(nodes)
	pos := make(Positions, n)
	switch n {
	case 0:
		return pos
	case 1:
		pos[nodes[0]] = Point{}
		return pos
	}

	iterations := opts.Iterations
	if iterations <= 0 {
		iterations = 200
	}
	tol := opts.Tolerance
	if tol <= 0 {
		tol = 1e-4
	}

	dist := pairwiseDistances(g, nodes)

	x := mat.NewDense(n, 2, nil)
	init := opts.Initial
	if init == nil {
		init = Circular(g)
	}
	for i, id := range nodes {
		p := init[id]
		x.Set(i, 0, p.X)
		x.Set(i, 1, p.Y)
	}

	// SMACOF update: x_i <- (1/W_i) * sum_j w_ij (x_j + d_ij * (x_i-x_j)/|x_i-x_j|)
	next := mat.NewDense(n, 2, nil)
	for iter := 0; iter < iterations; iter++ {
		var moved float64
		for i := 0; i < n; i++ {
			var sx, sy, wsum float64
			xi, yi := x.At(i, 0), x.At(i, 1)
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				d := dist.At(i, j)
				w := 1 / (d * d)
				xj, yj := x.At(j, 0), x.At(j, 1)
				dx, dy := xi-xj, yi-yj
				norm := math.Hypot(dx, dy)
				if norm < 1e-9 {
					// coincident nodes: nudge apart along x
					dx, norm = 1e-9, 1e-9
				}
				sx += w * (xj + d*dx/norm)
				sy += w * (yj + d*dy/norm)
				wsum += w
			}
			nx, ny := sx/wsum, sy/wsum
			moved = math.Max(moved, math.Hypot(nx-xi, ny-yi))
			next.Set(i, 0, nx)
			next.Set(i, 1, ny)
		}
		x.Copy(next)
		if moved < tol {
			break
		}
	}

	for i, id := range nodes {
		pos[id] = Point{X: x.At(i, 0), Y: x.At(i, 1)}
	}
	return Rescale(pos, DefaultScale)
}

// pairwiseDistances builds the all-pairs hop-distance matrix via BFS from
// each node. Unreachable pairs get the largest observed distance plus one so
// components stay apart without dominating the stress.
func pairwiseDistances(g *graph.Graph, nodes []string) *mat.SymDense {
	n := len(nodes)
	index := make(map[string]int, n)
	for i, id := range nodes {
		index[id] = i
	}

	d := mat.NewSymDense(n, nil)
	maxDist := 1.0
	unreachable := make([][2]int, 0)
	for i, id := range nodes {
		dist := bfsDistances(g, id)
		for j := i + 1; j < n; j++ {
			if hops, ok := dist[nodes[j]]; ok {
				v := float64(hops)
				d.SetSym(i, j, v)
				maxDist = math.Max(maxDist, v)
			} else {
				unreachable = append(unreachable, [2]int{i, j})
			}
		}
	}
	for _, ij := range unreachable {
		d.SetSym(ij[0], ij[1], maxDist+1)
	}
	return d
}
