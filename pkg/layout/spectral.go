package layout

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/graphplot/graphplot/pkg/graph"
)

// Spectral positions nodes using the eigenvectors of the graph Laplacian
// associated with its two smallest nonzero eigenvalues. Tightly connected
// clusters end up close together, making community structure visible.
// Graphs with fewer than three nodes fall back to fixed placements.
func Spectral(g *graph.Graph) Positions {
	nodes := g.Nodes()
	n := len(nodes)
	pos := make(Positions, n)
	switch n {
	case 0:
		return pos
	case 1:
		pos[nodes[0]] = Point{}
		return pos
	case 2:
		pos[nodes[0]] = Point{X: -DefaultScale}
		pos[nodes[1]] = Point{X: DefaultScale}
		return pos
	}

	index := make(map[string]int, n)
	for i, id := range nodes {
		index[id] = i
	}

	// Laplacian L = D - A over the undirected structure
	lap := mat.NewSymDense(n, nil)
	deg := make([]float64, n)
	for _, e := range g.Edges() {
		i, j := index[e.From], index[e.To]
		if i == j {
			continue
		}
		lap.SetSym(i, j, lap.At(i, j)-1)
		deg[i]++
		deg[j]++
	}
	for i := 0; i < n; i++ {
		lap.SetSym(i, i, deg[i])
	}

	var eig mat.EigenSym
	if !eig.Factorize(lap, true) {
		// factorization failure only happens for pathological inputs;
		// a circle is still a usable drawing
		return Circular(g)
	}
	vals := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	// two smallest strictly positive eigenvalues carry the coordinates
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return vals[order[a]] < vals[order[b]] })

	axes := make([]int, 0, 2)
	for _, i := range order {
		if vals[i] > 1e-9 {
			axes = append(axes, i)
			if len(axes) == 2 {
				break
			}
		}
	}
	// heavily disconnected graphs may lack two nonzero eigenvalues
	for len(axes) < 2 {
		axes = append(axes, order[len(axes)])
	}

	for i, id := range nodes {
		pos[id] = Point{X: vecs.At(i, axes[0]), Y: vecs.At(i, axes[1])}
	}
	return Rescale(pos, DefaultScale)
}
