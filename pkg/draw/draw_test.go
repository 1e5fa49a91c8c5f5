package draw

import (
	"testing"

	"github.com/graphplot/graphplot/pkg/graph"
	"github.com/graphplot/graphplot/pkg/imagetest"
	"github.com/graphplot/graphplot/pkg/layout"
	"github.com/graphplot/graphplot/pkg/style"
)

// Every test in this file renders onto a fixed geometry and compares the
// result against testdata/<name>.png. Layouts are seeded so reruns are
// pixel-identical; run with UPDATE_TEST_IMAGES set after an intentional
// rendering change.

const renderSeed = 42

func barbell() *graph.Graph { return graph.Barbell(4, 6) }

func TestDrawLayouts(t *testing.T) {
	opts := Options{
		NodeColor: style.One(style.MustParse("black")),
		NodeSize:  []float64{100},
		Width:     []float64{3},
	}

	layouts := []struct {
		name string
		fn   func(*graph.Graph, Options) (*Figure, error)
	}{
		{"circular", DrawCircular},
		{"kamadakawai", DrawKamadaKawai},
		{"planar", DrawPlanar},
		{"random", func(g *graph.Graph, o Options) (*Figure, error) {
			return DrawRandom(g, renderSeed, o)
		}},
		{"spectral", DrawSpectral},
		{"spring", func(g *graph.Graph, o Options) (*Figure, error) {
			return DrawSpring(g, renderSeed, o)
		}},
		{"shell", func(g *graph.Graph, o Options) (*Figure, error) {
			return DrawShell(g, nil, o)
		}},
	}
	for _, tc := range layouts {
		t.Run(tc.name, func(t *testing.T) {
			fig, err := tc.fn(barbell(), opts)
			if err != nil {
				t.Fatalf("draw %s: %v", tc.name, err)
			}
			imagetest.Assert(t, fig.Image(), "draw_"+tc.name)
		})
	}
}

func TestDrawShellNlist(t *testing.T) {
	nlist := [][]string{ids(0, 4), ids(4, 10), ids(10, 14)}
	fig, err := DrawShell(barbell(), nlist, Options{})
	if err != nil {
		t.Fatalf("draw shell: %v", err)
	}
	imagetest.Assert(t, fig.Image(), "draw_shell_nlist")
}

func TestEdgeColormap(t *testing.T) {
	g := barbell()
	colors := make([]float64, g.EdgeCount())
	for i := range colors {
		colors[i] = float64(i)
	}
	fig, err := DrawSpring(g, renderSeed, Options{
		EdgeColor:  style.Values(colors...),
		EdgeCmap:   style.Blues,
		Width:      []float64{4},
		WithLabels: true,
	})
	if err != nil {
		t.Fatalf("draw spring: %v", err)
	}
	imagetest.Assert(t, fig.Image(), "edge_colormap")
}

func TestArrows(t *testing.T) {
	fig, err := DrawSpring(barbell().ToDirected(), renderSeed, Options{})
	if err != nil {
		t.Fatalf("draw spring: %v", err)
	}
	imagetest.Assert(t, fig.Image(), "arrows")
}

// TestEdgeColorsAndWidths layers independent edge passes with every supported
// styling shape: nil defaults, single-entry lists, per-edge lists, shorter and
// longer lists than edges, explicit RGB and RGBA colors, names with global
// alpha, hex with embedded alpha, and numeric colors under explicit bounds.
func TestEdgeColorsAndWidths(t *testing.T) {
	for _, directed := range []bool{false, true} {
		name := "undirected"
		if directed {
			name = "directed"
		}
		t.Run(name, func(t *testing.T) {
			g := barbell()
			if directed {
				g = g.ToDirected()
			}
			pos := layout.Circular(g)
			fig := New()
			ax := fig.Axes()

			if err := Nodes(ax, g, pos, NodeOptions{
				Color: style.One(style.RGBA(1, 1, 0.2, 0.5)),
			}); err != nil {
				t.Fatalf("nodes: %v", err)
			}
			if err := Labels(ax, g, pos, LabelOptions{}); err != nil {
				t.Fatalf("labels: %v", err)
			}

			passes := []EdgeOptions{
				{Edges: refs([][2]int{{0, 1}})},
				{Edges: refs([][2]int{{0, 2}, {0, 3}}),
					Width: []float64{3}, Color: mustNames(t, "r")},
				{Edges: refs([][2]int{{0, 2}, {0, 3}}),
					Width: []float64{1, 3}, Color: mustNames(t, "r", "b")},
				{Edges: refs([][2]int{{1, 2}, {1, 3}, {2, 3}, {3, 4}}),
					Width: []float64{1, 3}, Color: mustNames(t, "g", "m", "c")},
				{Edges: refs([][2]int{{3, 4}}),
					Width: []float64{1, 2, 3, 4}, Color: mustNames(t, "r", "b", "g", "k")},
				{Edges: refs([][2]int{{4, 5}, {5, 6}, {6, 7}}),
					Color: style.One(style.RGB(1, 0.4, 0.3))},
				{Edges: refs([][2]int{{7, 8}, {8, 9}}),
					Color: style.List(style.RGB(0.4, 1, 0))},
				{Edges: refs([][2]int{{9, 10}, {10, 11}, {10, 12}, {10, 13}}),
					Color: style.One(style.RGBA(0, 1, 1, 0.5))},
				{Edges: refs([][2]int{{9, 10}, {10, 11}, {10, 12}, {10, 13}}),
					Color: style.List(style.RGBA(0, 1, 1, 0.5))},
				{Edges: refs([][2]int{{11, 12}, {11, 13}}),
					Color: mustNames(t, "purple"), Alpha: []float64{0.2}},
				{Edges: refs([][2]int{{11, 12}, {11, 13}}),
					Color: mustNames(t, "purple")},
				{Edges: refs([][2]int{{12, 13}}),
					Color: mustNames(t, "#1f78b4f0")},
				{Edges: refs([][2]int{{7, 8}, {8, 9}}),
					Color: style.Values(0.2, 0.5), Vmin: 0.1, Vmax: 0.6},
			}
			for i, opts := range passes {
				if err := Edges(ax, g, pos, opts); err != nil {
					t.Fatalf("edge pass %d: %v", i, err)
				}
			}
			imagetest.Assert(t, fig.Image(), "edge_colors_and_widths_"+name)
		})
	}
}

// TestLabelsAndColors draws the cubical graph in two colored halves with
// per-node alpha, layered edge passes, endpoint margins, greek node labels,
// and both default and explicit edge labels.
func TestLabelsAndColors(t *testing.T) {
	g := graph.Cubical()
	pos := layout.Spring(g, layout.SpringOptions{Seed: renderSeed})
	fig := New()
	ax := fig.Axes()

	if err := Nodes(ax, g, pos, NodeOptions{
		Nodes: ids(0, 4),
		Color: mustNames(t, "r"),
		Size:  []float64{500},
		Alpha: []float64{0.75},
	}); err != nil {
		t.Fatalf("red nodes: %v", err)
	}
	if err := Nodes(ax, g, pos, NodeOptions{
		Nodes: ids(4, 8),
		Color: mustNames(t, "b"),
		Size:  []float64{500},
		Alpha: []float64{0.25, 0.5, 0.75, 1.0},
	}); err != nil {
		t.Fatalf("blue nodes: %v", err)
	}

	if err := Edges(ax, g, pos, EdgeOptions{
		Width: []float64{1}, Alpha: []float64{0.5},
	}); err != nil {
		t.Fatalf("all edges: %v", err)
	}
	if err := Edges(ax, g, pos, EdgeOptions{
		Edges: refs([][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}),
		Width: []float64{8}, Alpha: []float64{0.5}, Color: mustNames(t, "r"),
	}); err != nil {
		t.Fatalf("red ring: %v", err)
	}
	if err := Edges(ax, g, pos, EdgeOptions{
		Edges: refs([][2]int{{4, 5}, {5, 6}, {6, 7}, {7, 4}}),
		Width: []float64{8}, Alpha: []float64{0.5}, Color: mustNames(t, "b"),
	}); err != nil {
		t.Fatalf("blue ring: %v", err)
	}
	if err := Edges(ax, g, pos, EdgeOptions{
		Edges: refs([][2]int{{4, 5}, {5, 6}, {6, 7}, {7, 4}}),
		Width: []float64{8}, Color: mustNames(t, "b"),
		MinSourceMargin: 0.5, MinTargetMargin: 0.75,
	}); err != nil {
		t.Fatalf("blue ring margins: %v", err)
	}

	labels := map[string]string{
		"0": "a", "1": "b", "2": "c", "3": "d",
		"4": "α", "5": "β", "6": "γ", "7": "δ",
	}
	if err := Labels(ax, g, pos, LabelOptions{Labels: labels, FontSize: 16}); err != nil {
		t.Fatalf("labels: %v", err)
	}
	if err := EdgeLabels(ax, g, pos, EdgeLabelOptions{}); err != nil {
		t.Fatalf("default edge labels: %v", err)
	}
	if err := EdgeLabels(ax, g, pos, EdgeLabelOptions{
		Labels: map[graph.Ref]string{graph.E("4", "5"): "4-5"},
		Rotate: true,
	}); err != nil {
		t.Fatalf("explicit edge label: %v", err)
	}
	imagetest.Assert(t, fig.Image(), "labels_and_colors")
}

func TestExplicitAxes(t *testing.T) {
	fig := NewFigure(320, 240)
	g := barbell()
	if err := Graph(fig.Axes(), g, layout.Circular(g), Options{}); err != nil {
		t.Fatalf("draw: %v", err)
	}
	imagetest.Assert(t, fig.Image(), "explicit_axes")
}

func TestEmptyGraph(t *testing.T) {
	g := graph.New()
	fig, err := DrawSpring(g, renderSeed, Options{})
	if err != nil {
		t.Fatalf("draw empty: %v", err)
	}
	imagetest.Assert(t, fig.Image(), "empty_graph")
}

func TestMultigraphEdgelistRefs(t *testing.T) {
	g := graph.PathInto(graph.NewMultiDigraph(), 3)
	pos := layout.Spring(g, layout.SpringOptions{Seed: renderSeed})
	fig := New()
	ax := fig.Axes()

	keyed := []graph.Ref{{From: "0", To: "1", Key: 0}}
	if err := Graph(ax, g, pos, Options{Edges: keyed, WithLabels: true}); err != nil {
		t.Fatalf("keyed edge list: %v", err)
	}
	// a zero size hides the node entirely
	if err := Graph(ax, g, pos, Options{
		Edges:      keyed,
		NodeSize:   []float64{10, 20, 0},
		WithLabels: true,
	}); err != nil {
		t.Fatalf("keyed edge list with sizes: %v", err)
	}
	imagetest.Assert(t, fig.Image(), "multigraph_edgelist")
}

func TestAlphaIter(t *testing.T) {
	g := barbell()
	pos := layout.Random(g, renderSeed)
	fig := New()

	// fewer alpha entries than nodes: entries cycle
	if err := Nodes(fig.Subplot(1, 3, 1), g, pos, NodeOptions{
		Alpha: []float64{0.1, 0.2},
	}); err != nil {
		t.Fatalf("fewer alphas: %v", err)
	}

	n := g.NodeCount()
	alpha := make([]float64, n)
	values := make([]float64, n)
	for i := range alpha {
		alpha[i] = float64(i) / float64(n)
		values[i] = float64(i)
	}
	if err := Nodes(fig.Subplot(1, 3, 2), g, pos, NodeOptions{
		Color: style.Values(values...),
		Alpha: alpha,
	}); err != nil {
		t.Fatalf("equal alphas: %v", err)
	}

	// more alpha entries than nodes: extras dropped
	if err := Nodes(fig.Subplot(1, 3, 3), g, pos, NodeOptions{
		Alpha: append(alpha, 1),
	}); err != nil {
		t.Fatalf("more alphas: %v", err)
	}
	imagetest.Assert(t, fig.Image(), "alpha_iter")
}

func TestNodesUnknownSubset(t *testing.T) {
	g := barbell()
	fig := New()
	err := Nodes(fig.Axes(), g, layout.Circular(g), NodeOptions{
		Nodes: []string{"nope"},
	})
	if err == nil {
		t.Fatal("unknown node in subset did not error")
	}
}

func TestEdgesUnknownSubset(t *testing.T) {
	g := barbell()
	fig := New()
	err := Edges(fig.Axes(), g, layout.Circular(g), EdgeOptions{
		Edges: []graph.Ref{graph.E("0", "99")},
	})
	if err == nil {
		t.Fatal("unknown edge in subset did not error")
	}
}

// ids lists node IDs for the half-open range [lo, hi).
func ids(lo, hi int) []string {
	out := make([]string, 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, graph.ID(i))
	}
	return out
}

// refs builds edge references from integer endpoint pairs.
func refs(pairs [][2]int) []graph.Ref {
	out := make([]graph.Ref, len(pairs))
	for i, p := range pairs {
		out[i] = graph.E(graph.ID(p[0]), graph.ID(p[1]))
	}
	return out
}

func mustNames(t *testing.T, names ...string) style.Spec {
	t.Helper()
	s, err := style.Names(names...)
	if err != nil {
		t.Fatalf("parse colors %v: %v", names, err)
	}
	return s
}
