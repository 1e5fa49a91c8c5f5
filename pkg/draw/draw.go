package draw

import (
	"github.com/graphplot/graphplot/pkg/graph"
	"github.com/graphplot/graphplot/pkg/layout"
)

// Graph draws edges, then nodes, then (optionally) node labels onto the
// axes. This is the composite entry point; call [Nodes], [Edges], [Labels],
// and [EdgeLabels] directly for finer control over each pass.
func Graph(ax *Axes, g *graph.Graph, pos layout.Positions, opts Options) error {
	ax.ensureLimits(pos)
	if err := Edges(ax, g, pos, opts.edgeOptions()); err != nil {
		return err
	}
	if err := Nodes(ax, g, pos, opts.nodeOptions()); err != nil {
		return err
	}
	if opts.WithLabels {
		if err := Labels(ax, g, pos, opts.labelOptions()); err != nil {
			return err
		}
	}
	return nil
}

// onFigure runs the composite pass against a fresh default figure.
func onFigure(g *graph.Graph, pos layout.Positions, opts Options) (*Figure, error) {
	fig := New()
	if err := Graph(fig.Axes(), g, pos, opts); err != nil {
		return nil, err
	}
	return fig, nil
}

// DrawCircular draws the graph on a new figure with nodes on a circle.
func DrawCircular(g *graph.Graph, opts Options) (*Figure, error) {
	return onFigure(g, layout.Circular(g), opts)
}

// DrawShell draws the graph on a new figure with nodes on concentric
// circles, one per shell. A nil nlist is a single shell.
func DrawShell(g *graph.Graph, nlist [][]string, opts Options) (*Figure, error) {
	return onFigure(g, layout.Shell(g, nlist), opts)
}

// DrawSpring draws the graph on a new figure using force-directed
// positions seeded for reproducibility.
func DrawSpring(g *graph.Graph, seed uint64, opts Options) (*Figure, error) {
	return onFigure(g, layout.Spring(g, layout.SpringOptions{Seed: seed}), opts)
}

// DrawSpectral draws the graph on a new figure using the Laplacian
// eigenvector embedding.
func DrawSpectral(g *graph.Graph, opts Options) (*Figure, error) {
	return onFigure(g, layout.Spectral(g), opts)
}

// DrawKamadaKawai draws the graph on a new figure using stress
// minimization over graph distances.
func DrawKamadaKawai(g *graph.Graph, opts Options) (*Figure, error) {
	return onFigure(g, layout.KamadaKawai(g, layout.KamadaKawaiOptions{}), opts)
}

// DrawPlanar draws the graph on a new figure using a crossing-free
// embedding when the graph structure admits one.
func DrawPlanar(g *graph.Graph, opts Options) (*Figure, error) {
	return onFigure(g, layout.Planar(g), opts)
}

// DrawRandom draws the graph on a new figure with seeded uniform random
// positions.
func DrawRandom(g *graph.Graph, seed uint64, opts Options) (*Figure, error) {
	return onFigure(g, layout.Random(g, seed), opts)
}
